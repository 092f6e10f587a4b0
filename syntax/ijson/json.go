package ijson

import "github.com/json-iterator/go"

// 使用 ConfigCompatibleWithStandardLibrary 确保与标准库行为一致
// (json.Unmarshaler / encoding.TextMarshaler 均会被调用)
var parser = jsoniter.ConfigCompatibleWithStandardLibrary

// Encode 编码
func Encode(v interface{}) ([]byte, error) {
	return parser.Marshal(v)
}

// Decode 解码
func Decode(data []byte, v interface{}) error {
	return parser.Unmarshal(data, v)
}
