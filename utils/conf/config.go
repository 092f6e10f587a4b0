package conf

import (
	"bytes"
	"fmt"
	"log"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cast"
	"github.com/spf13/viper"
)

const (
	KeyServerAddr     = "server.addr"
	KeyServerStatic   = "server.static"
	KeyRandomMaxCount = "random.max_count"
	KeyLogLevel       = "log.level"
	KeyLogFile        = "log.file"
	KeyLogConsole     = "log.console"
	KeyApiLog         = "api.log"
)

// Config 服务运行配置
type Config struct {
	Addr       string // 监听地址
	StaticDir  string // 静态资源根目录
	MaxCount   int    // 单次最多生成个数
	LogLevel   string
	LogFile    string // 为空不写文件
	LogConsole bool
	ApiLog     bool // 打印接口日志
}

// SetDefaults 写入默认值，需在读取配置前调用
func SetDefaults() {
	viper.SetDefault(KeyServerAddr, "0.0.0.0:8080")
	viper.SetDefault(KeyServerStatic, "static")
	viper.SetDefault(KeyRandomMaxCount, 1000)
	viper.SetDefault(KeyLogLevel, "info")
	viper.SetDefault(KeyLogFile, "")
	viper.SetDefault(KeyLogConsole, true)
	viper.SetDefault(KeyApiLog, true)
}

// LoadConfigFile 集成环境变量自动绑定
func LoadConfigFile(cfgFile string) error {
	viper.SetConfigFile(cfgFile)

	viper.AutomaticEnv()
	// 将配置的点路径映射到环境变量下划线 (如 server.addr -> SERVER_ADDR)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	err := viper.ReadInConfig()
	if err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Printf("Config file not found: %v", err)
		} else {
			log.Printf("Fatal error reading config: %v", err)
		}
	}
	return err
}

func MustLoadConfigFile(cfgFile string) {
	if err := LoadConfigFile(cfgFile); err != nil {
		panic(fmt.Errorf("MustLoadConfigFile failed: %w", err))
	}
}

// LoadConfigByte 支持 yaml/toml/json 等多种格式
func LoadConfigByte(data []byte, filetype string) error {
	viper.SetConfigType(filetype)
	return viper.ReadConfig(bytes.NewReader(data))
}

// MergeConfigWithMap 合并 Map 配置
func MergeConfigWithMap(cfg map[string]interface{}) error {
	return viper.MergeConfigMap(cfg)
}

// GetEnv 读取原始值
func GetEnv(key string) interface{} {
	return viper.Get(key)
}

// Load 读取为 Config，类型不符时报错而不是静默归零
func Load() (Config, error) {
	var c Config
	var err error

	if c.Addr, err = cast.ToStringE(viper.Get(KeyServerAddr)); err != nil {
		return c, errors.Wrap(err, KeyServerAddr)
	}
	if c.StaticDir, err = cast.ToStringE(viper.Get(KeyServerStatic)); err != nil {
		return c, errors.Wrap(err, KeyServerStatic)
	}
	if c.MaxCount, err = cast.ToIntE(viper.Get(KeyRandomMaxCount)); err != nil {
		return c, errors.Wrap(err, KeyRandomMaxCount)
	}
	if c.MaxCount < 1 {
		return c, errors.Errorf("%s must be >= 1, got %d", KeyRandomMaxCount, c.MaxCount)
	}
	if c.LogLevel, err = cast.ToStringE(viper.Get(KeyLogLevel)); err != nil {
		return c, errors.Wrap(err, KeyLogLevel)
	}
	if c.LogFile, err = cast.ToStringE(viper.Get(KeyLogFile)); err != nil {
		return c, errors.Wrap(err, KeyLogFile)
	}
	if c.LogConsole, err = cast.ToBoolE(viper.Get(KeyLogConsole)); err != nil {
		return c, errors.Wrap(err, KeyLogConsole)
	}
	if c.ApiLog, err = cast.ToBoolE(viper.Get(KeyApiLog)); err != nil {
		return c, errors.Wrap(err, KeyApiLog)
	}
	return c, nil
}
