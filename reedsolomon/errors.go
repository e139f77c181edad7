package reedsolomon

import "errors"

// 构造阶段的错误,由 RecoveryThreshold 和 Create 返回。
var (
	// ErrArgsMustBePowOf2 在推导出的分片数量无法归约为二的幂时返回,
	// 即不满足 n_po2、k_po2 均为 2 的幂。
	ErrArgsMustBePowOf2 = errors.New("reedsolomon: n and k must reduce to powers of two")

	// ErrWantedShardCountTooLow 在请求的验证人数量少于 2 个时返回。
	ErrWantedShardCountTooLow = errors.New("reedsolomon: wanted shard count too low")

	// ErrWantedShardCountTooHigh 在 nextHighPowerOf2(n) 超过字段大小
	// (65536) 时返回。
	ErrWantedShardCountTooHigh = errors.New("reedsolomon: wanted shard count too high")

	// ErrWantedPayloadShardCountTooLow 在恢复门限计算结果小于 1 个数据
	// 分片时返回。
	ErrWantedPayloadShardCountTooLow = errors.New("reedsolomon: wanted payload shard count too low")

	// ErrTooManyValidators 在验证人数量超过字段大小 (65536) 时返回。
	ErrTooManyValidators = errors.New("reedsolomon: too many validators")

	// ErrNotEnoughValidators 在验证人数量 <= 1 时返回。
	ErrNotEnoughValidators = errors.New("reedsolomon: not enough validators")
)

// 调用阶段的错误,由 Encode 和 Reconstruct 返回。
var (
	// ErrPayloadSizeIsZero 在 Encode 收到空数据时返回。
	ErrPayloadSizeIsZero = errors.New("reedsolomon: payload size is zero")

	// ErrNeedMoreShards 在 Reconstruct 收到的非空分片少于 k 个时返回。
	ErrNeedMoreShards = errors.New("reedsolomon: need more shards")

	// ErrInconsistentShardLengths 在现有分片长度不一致时返回。
	ErrInconsistentShardLengths = errors.New("reedsolomon: inconsistent shard lengths")

	// ErrEmptyShard 在 ReconstructFromSystematic 收到的第一个分片长度为零时
	// 返回;Reconstruct 把零长度分片视为缺失,不返回此错误。
	ErrEmptyShard = errors.New("reedsolomon: empty shard")
)
