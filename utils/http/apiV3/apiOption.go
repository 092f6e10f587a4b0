package apiV3

import "github.com/rs/zerolog"

// Option 定義函數類型
type Option func(*api)

// WithLog 設置日誌開關
func WithLog(on bool) Option {
	return func(a *api) {
		a.isLogOn = on
	}
}

// WithLogger 指定 logger，默認全局 zerolog
func WithLogger(l zerolog.Logger) Option {
	return func(a *api) {
		a.logger = l
	}
}

// WithForceJSON 忽略 Content-Type，未知類型的 body 一律按 JSON 解析
func WithForceJSON(on bool) Option {
	return func(a *api) {
		a.forceJSON = on
	}
}
