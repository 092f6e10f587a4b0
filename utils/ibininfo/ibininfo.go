package ibininfo

import (
	"fmt"
	"runtime"
)

// 编译时注入：
//
//	go build -ldflags "-X 'github.com/cute-angelia/nuge/utils/ibininfo.Version=$(git describe --tags --always)' \
//	                   -X 'github.com/cute-angelia/nuge/utils/ibininfo.GitCommit=$(git rev-parse --short HEAD)' \
//	                   -X 'github.com/cute-angelia/nuge/utils/ibininfo.BuildTime=$(date '+%Y-%m-%d %H:%M:%S')'" ./cmd/nuge
var (
	Version   = "unknown"
	GitCommit = "unknown"
	BuildTime = "unknown"
)

// String 单行格式，用于 -version
func String() string {
	return fmt.Sprintf("Version=%s GitCommit=%s BuildTime=%s GoVersion=%s runtime=%s/%s",
		Version, GitCommit, BuildTime, runtime.Version(), runtime.GOOS, runtime.GOARCH)
}

// ToMap 健康检查接口输出
func ToMap() map[string]string {
	return map[string]string{
		"version":    Version,
		"git_commit": GitCommit,
		"build_time": BuildTime,
		"go_version": runtime.Version(),
		"os_arch":    runtime.GOOS + "/" + runtime.GOARCH,
	}
}
