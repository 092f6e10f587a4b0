package ipath

import (
	"path"
	"path/filepath"
	"strings"
)

// Clean 专门处理 URL 风格路径，去除参数并规范化
// 结果不带首尾斜杠，".." 不会越过根
func Clean(p string) string {
	v, _, _ := strings.Cut(p, "?")
	return strings.Trim(path.Clean("/"+v), "/")
}

// SafeJoin 把 URL 路径拼接到本地根目录下
// 清理后为空（即根本身）返回 ok=false
func SafeJoin(root, urlPath string) (string, bool) {
	rel := Clean(urlPath)
	if rel == "" || rel == "." {
		return "", false
	}
	// 反斜杠在 windows 上是分隔符，统一拒绝
	if strings.Contains(rel, "\\") {
		return "", false
	}
	return filepath.Join(root, filepath.FromSlash(rel)), true
}
