package apiV3

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/cute-angelia/nuge/syntax/ijson"
)

// Int64Param 可选整数参数，同时支持 query/form (UnmarshalText) 和 JSON (UnmarshalJSON)
//
// 解析失败不会中断整体解码，错误记在 Err 里，由调用方按字段名统一报告。
// 超出 int64 范围时 Value 取饱和值，Err 包含 strconv.ErrRange。
type Int64Param struct {
	Set   bool
	Value int64
	Raw   string
	Err   error
}

// Or 未传时返回默认值
func (p Int64Param) Or(def int64) int64 {
	if !p.Set {
		return def
	}
	return p.Value
}

func (p *Int64Param) UnmarshalText(text []byte) error {
	p.Set = true
	p.Raw = string(text)
	p.Value, p.Err = parseInt(p.Raw)
	return nil
}

func (p *Int64Param) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	p.Set = true
	p.Raw = string(data)

	switch {
	case len(data) == 0:
		p.Err = fmt.Errorf("invalid integer %q", p.Raw)
	case data[0] == '"':
		var s string
		if err := ijson.Decode(data, &s); err != nil {
			p.Err = fmt.Errorf("invalid integer %s", p.Raw)
			return nil
		}
		p.Raw = s
		p.Value, p.Err = parseInt(s)
	case data[0] == '-' || (data[0] >= '0' && data[0] <= '9'):
		p.Value, p.Err = parseNumber(p.Raw)
	default:
		// true / false / null / 对象 / 数组
		p.Err = fmt.Errorf("invalid integer %s", p.Raw)
	}
	return nil
}

// MarshalJSON 日志里还原请求参数
func (p Int64Param) MarshalJSON() ([]byte, error) {
	switch {
	case !p.Set:
		return []byte("null"), nil
	case p.Err != nil:
		return ijson.Encode(p.Raw)
	default:
		return []byte(strconv.FormatInt(p.Value, 10)), nil
	}
}

// parseInt 十进制整数，允许前后空白和正负号
func parseInt(s string) (int64, error) {
	v, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		if ne, ok := err.(*strconv.NumError); ok {
			return v, fmt.Errorf("invalid integer %q: %w", s, ne.Err)
		}
		return v, err
	}
	return v, nil
}

// parseNumber JSON 数字：整数字面量，或值为整数的浮点字面量 (5.0, 1e3)
func parseNumber(s string) (int64, error) {
	if !strings.ContainsAny(s, ".eE") {
		return parseInt(s)
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, fmt.Errorf("invalid integer %q: %w", s, strconv.ErrSyntax)
	}
	if f != math.Trunc(f) {
		return 0, fmt.Errorf("invalid integer %q: not a whole number", s)
	}
	// float64 能精确表示 ±2^63
	if f >= 0x1p63 {
		return math.MaxInt64, fmt.Errorf("invalid integer %q: %w", s, strconv.ErrRange)
	}
	if f < -0x1p63 {
		return math.MinInt64, fmt.Errorf("invalid integer %q: %w", s, strconv.ErrRange)
	}
	return int64(f), nil
}
