package inuge

import (
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	defaultAddr            = "0.0.0.0:8080"
	defaultStaticDir       = "static"
	defaultMaxCount        = 1000
	defaultShutdownTimeout = 5 * time.Second
)

type Option func(o *options)

type options struct {
	// 监听地址，默认所有网卡 8080
	addr string

	// 静态资源根目录，"/" 对应其中的 index.html
	staticDir string

	// 单次请求最多生成的个数，count 超出时静默截断
	maxCount int

	// 打印接口日志
	apiLog bool

	logger zerolog.Logger

	shutdownTimeout time.Duration
}

func defaultOptions() *options {
	return &options{
		addr:            defaultAddr,
		staticDir:       defaultStaticDir,
		maxCount:        defaultMaxCount,
		apiLog:          true,
		logger:          log.Logger,
		shutdownTimeout: defaultShutdownTimeout,
	}
}

// WithAddr 设置监听地址
func WithAddr(addr string) Option {
	return func(o *options) { o.addr = addr }
}

// WithStaticDir 设置静态资源目录
func WithStaticDir(dir string) Option {
	return func(o *options) { o.staticDir = dir }
}

// WithMaxCount 设置 count 上限，小于 1 时忽略
func WithMaxCount(n int) Option {
	return func(o *options) {
		if n >= 1 {
			o.maxCount = n
		}
	}
}

func WithApiLog(on bool) Option {
	return func(o *options) { o.apiLog = on }
}

func WithLogger(l zerolog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithShutdownTimeout 优雅退出等待时间
func WithShutdownTimeout(t time.Duration) Option {
	return func(o *options) { o.shutdownTimeout = t }
}
