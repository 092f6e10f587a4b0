package ilog

import (
	"io"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

type Option func(o *options)

type options struct {
	level   string
	console bool
	file    string

	// 单个日志文件大小上限 MB
	maxSize    int
	maxBackups int
	maxAge     int // 天
}

func defaultOptions() *options {
	return &options{
		level:      "info",
		console:    true,
		maxSize:    100,
		maxBackups: 7,
		maxAge:     30,
	}
}

// WithLevel 日志级别 debug/info/warn/error
func WithLevel(level string) Option {
	return func(o *options) { o.level = level }
}

// WithConsole 是否输出到终端
func WithConsole(on bool) Option {
	return func(o *options) { o.console = on }
}

// WithFile 输出到滚动文件，空字符串关闭
func WithFile(file string) Option {
	return func(o *options) { o.file = file }
}


// New 构造 zerolog.Logger
func New(opts ...Option) (zerolog.Logger, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	level, err := zerolog.ParseLevel(o.level)
	if err != nil {
		return zerolog.Nop(), errors.Wrapf(err, "ilog: bad level %q", o.level)
	}

	var writers []io.Writer
	if o.console {
		writers = append(writers, zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.DateTime})
	}
	if o.file != "" {
		writers = append(writers, &lumberjack.Logger{
			Filename:   o.file,
			MaxSize:    o.maxSize,
			MaxBackups: o.maxBackups,
			MaxAge:     o.maxAge,
		})
	}

	var w io.Writer = io.Discard
	switch len(writers) {
	case 0:
	case 1:
		w = writers[0]
	default:
		w = zerolog.MultiLevelWriter(writers...)
	}

	return zerolog.New(w).Level(level).With().Timestamp().Logger(), nil
}

// Init 构造并替换全局 logger
func Init(opts ...Option) error {
	l, err := New(opts...)
	if err != nil {
		return err
	}
	log.Logger = l
	return nil
}
