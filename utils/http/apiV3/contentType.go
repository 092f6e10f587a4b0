package apiV3

import (
	"net/http"
	"strings"
)

// TypeContent is an enumeration of common HTTP content types.
type TypeContent int

// ContentTypes handled by this package.
const (
	ContentTypeUnknown TypeContent = iota
	ContentTypePlainText
	ContentTypeHTML
	ContentTypeJSON
	ContentTypeXML
	ContentTypeForm
	ContentTypeEventStream
	ContentTypeMultipart // 文件上传 multipart/form-data
)

func GetContentType(s string) TypeContent {
	// 1. 全部轉為小寫並去除兩端空格
	s = strings.ToLower(strings.TrimSpace(s))

	// 2. 取分號前的主體部分
	s, _, _ = strings.Cut(s, ";")
	s = strings.TrimSpace(s)

	// 3. 匹配
	switch s {
	case "text/plain":
		return ContentTypePlainText
	case "text/html", "application/xhtml+xml":
		return ContentTypeHTML
	case "application/json", "text/javascript":
		return ContentTypeJSON
	case "text/xml", "application/xml":
		return ContentTypeXML
	case "application/x-www-form-urlencoded":
		return ContentTypeForm
	case "text/event-stream":
		return ContentTypeEventStream
	case "multipart/form-data":
		return ContentTypeMultipart
	default:
		return ContentTypeUnknown
	}
}

// GetRequestContentType 取請求頭 Content-Type
func GetRequestContentType(r *http.Request) TypeContent {
	return GetContentType(r.Header.Get("Content-Type"))
}
