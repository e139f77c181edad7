// Package reedsolomon 实现了一种基于 GF(2^16) 的系统码 Reed-Solomon 纠删码,
// 构造在 Lin-Chung-Han 提出的新型多项式基之上。
//
// 编码与解码都通过加法 FFT 完成,复杂度为 O(n log n),而不是经典
// Vandermonde/Cauchy 矩阵方案的 O(n^2)。
//
// Codec 将一份数据分成 n 个分片,任意 k 个分片即可还原原始数据,其中 k 按照
// 1/3 拜占庭容错门限选取: k = floor((n-1)/3) + 1。这个包面向验证人扇出场景:
// 将一个数据块分发给多达 65536 个对端节点,之后从任意足够多的分片子集中恢复,
// 不要求分片按顺序到达。
//
// 该包是一个纯计算库:没有网络层、没有持久化、也不对分片做任何认证。完整性
// 校验(例如对分片集合做 Merkle 承诺)和传输都由调用方负责。
package reedsolomon
