package reedsolomon

import "sync"

// maxValidators 是编解码器能寻址的最大码字宽度:域中每个非零元素对应
// 一个码字位置,再加上零元素。
const maxValidators = kFieldSize

// Codec 是一个不可变的 Reed-Solomon 实例,固定一组 (n, k, wantedN)。
// 它可以被多个 goroutine 并发使用:Encode 和 Reconstruct 只读借用实例,
// 各自使用独立的临时缓冲区。
type Codec struct {
	n       int // 码字宽度,2 的幂
	k       int // 数据分片数量,2 的幂
	wantedN int // 调用方请求的验证人数量,wantedN <= n

	tables *fieldTables
	afft   *afftTables

	opts *options

	scratch sync.Pool // 长度为 n 的 []Additive,跨调用复用
}

// RecoveryThreshold 返回把数据分发给 nValidators 个对端后,重建所需的
// 最少分片数量,按 1/3 拜占庭容错门限计算: floor((n-1)/3) + 1。
func RecoveryThreshold(nValidators uint64) (int, error) {
	if nValidators > maxValidators {
		return 0, ErrTooManyValidators
	}
	if nValidators <= 1 {
		return 0, ErrNotEnoughValidators
	}
	needed := (nValidators - 1) / 3
	return int(needed + 1), nil
}

// Create 为给定的验证人数量构建一个 Codec。先通过 RecoveryThreshold 推导
// 数据分片门限 k,再把两个数量归约到 2 的幂:n 向上取整,k 向下取整,
// 保证 2k <= n 恒成立。
func Create(nValidators uint64, opt ...Option) (*Codec, error) {
	k, err := RecoveryThreshold(nValidators)
	if err != nil {
		return nil, err
	}
	return create(nValidators, uint64(k), opt...)
}

// create 是更底层的构造函数:直接接收 (n, k) 而不是从验证人数量推导 k,
// 方便测试覆盖 RecoveryThreshold 自身不会产生的边界组合。
func create(n, k uint64, opt ...Option) (*Codec, error) {
	if n < 2 {
		return nil, ErrWantedShardCountTooLow
	}
	if k < 1 {
		return nil, ErrWantedPayloadShardCountTooLow
	}

	kPo2 := nextLowPowerOf2(k)
	nPo2 := nextHighPowerOf2(n)

	if nPo2 > maxValidators {
		return nil, ErrWantedShardCountTooHigh
	}
	if !isPowerOf2(nPo2) || !isPowerOf2(kPo2) {
		return nil, ErrArgsMustBePowOf2
	}

	o := defaultOptions()
	for _, fn := range opt {
		fn(o)
	}

	c := &Codec{
		n:       int(nPo2),
		k:       int(kPo2),
		wantedN: int(n),
		tables:  getFieldTables(),
		afft:    getAfftTables(),
		opts:    o,
	}
	c.scratch.New = func() interface{} {
		return make([]Additive, c.n)
	}

	if o.logger != nil {
		o.logger.Debugf("reedsolomon: 已创建编解码器 n=%d k=%d wantedN=%d", c.n, c.k, c.wantedN)
	}
	return c, nil
}

// N 返回码字宽度(2 的幂)。
func (c *Codec) N() int { return c.n }

// K 返回数据分片门限(2 的幂,2k <= n)。
func (c *Codec) K() int { return c.k }

// shardLen 返回编码给定长度数据所需的单个分片字节数:每 2k 个数据字节
// 对应一个大端 16 位符号,向上取整。
func (c *Codec) shardLen(payloadSize int) int {
	payloadSymbols := (payloadSize + 1) / 2
	shardSymbolsCeil := (payloadSymbols + c.k - 1) / c.k
	return shardSymbolsCeil * 2
}

// getScratch 从池中借出一个长度为 n 的 Additive 缓冲区并清零;
// 池化被关闭时直接分配新的。
func (c *Codec) getScratch() []Additive {
	if !c.opts.scratchPooled {
		return make([]Additive, c.n)
	}
	buf := c.scratch.Get().([]Additive)
	for i := range buf {
		buf[i] = Additive{}
	}
	return buf
}

// putScratch 归还 getScratch 借出的缓冲区。
func (c *Codec) putScratch(buf []Additive) {
	if c.opts.scratchPooled {
		c.scratch.Put(buf) //nolint:staticcheck // 切片按值复用,容量得以保留
	}
}

// shardGap 返回 n - received 的饱和差:调用方传入的分片槽位多于码字宽度
// 时不下溢,返回零。
func shardGap(n, received int) int {
	if received >= n {
		return 0
	}
	return n - received
}
