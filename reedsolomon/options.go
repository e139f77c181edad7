package reedsolomon

// eventLogger 描述本包实际会调用的日志方法子集,使 options 可以接受
// 注入的日志实例而不依赖 github.com/dep2p/log 的具体类型。
type eventLogger interface {
	Debugf(format string, args ...interface{})
	Warnf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
}

// options 保存 Codec 构造期的可选配置。它不影响编码和解码的结果,
// 只影响日志输出与临时缓冲区的复用方式。
type options struct {
	logger        eventLogger
	scratchPooled bool
}

// defaultOptions 使用包级日志实例并启用缓冲区池化。
func defaultOptions() *options {
	return &options{
		logger:        logger,
		scratchPooled: true,
	}
}

// Option 在构造期配置一个 Codec。
type Option func(*options)

// WithLogger 覆盖 Codec 实例使用的包级日志实例。
func WithLogger(l eventLogger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithScratchPooling 控制 Codec 是否通过内部的 sync.Pool 跨调用复用
// 临时缓冲区。关闭后每次调用都会分配新的缓冲区,适用于许多 goroutine
// 共享同一个 Codec 且消息大小差异很大的场景。
func WithScratchPooling(enabled bool) Option {
	return func(o *options) {
		o.scratchPooled = enabled
	}
}
