package apiV3

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sort"

	"github.com/cute-angelia/nuge/syntax/ijson"
	"github.com/gorilla/schema"
)

var Decoder = decoder{}
var queryDecoder = schema.NewDecoder()

func init() {
	queryDecoder.IgnoreUnknownKeys(true)
}

type decoder struct {
	forceJSON bool
}

func (d decoder) Decode(r *http.Request, v interface{}) (resp interface{}, err error) {
	// 1. 处理 GET
	if r.Method == http.MethodGet {
		err = schemaError(queryDecoder.Decode(v, r.URL.Query()))
		return v, err
	}

	if r.Body == nil || r.Body == http.NoBody {
		return nil, errors.New("request body is empty")
	}

	// 2. 安全限制
	r.Body = http.MaxBytesReader(nil, r.Body, 10<<20)

	conType := GetRequestContentType(r)
	if d.forceJSON && conType != ContentTypeForm && conType != ContentTypeMultipart {
		conType = ContentTypeJSON
	}

	switch conType {
	case ContentTypeJSON:
		var data []byte
		if data, err = io.ReadAll(r.Body); err != nil {
			return nil, err
		}
		err = decodeJSONObject(data, v)

	case ContentTypeForm:
		if err := r.ParseForm(); err != nil {
			return nil, err
		}
		err = schemaError(queryDecoder.Decode(v, r.PostForm))

	case ContentTypeMultipart:
		if err := r.ParseMultipartForm(32 << 20); err != nil {
			return nil, err
		}
		err = schemaError(queryDecoder.Decode(v, r.MultipartForm.Value))

	default:
		err = fmt.Errorf("apiV3: unsupported content type [%v]", r.Header.Get("Content-Type"))
	}
	return v, err
}

// decodeJSONObject 只接受 JSON 对象，数组/标量/null 直接拒绝
func decodeJSONObject(data []byte, v interface{}) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return errors.New("request body is empty")
	}
	if data[0] != '{' {
		return errors.New("request body must be a JSON object")
	}
	return ijson.Decode(data, v)
}

// schemaError 把 schema.MultiError 收敛成一条稳定的错误（按 key 排序取第一条）
func schemaError(err error) error {
	var multi schema.MultiError
	if !errors.As(err, &multi) || len(multi) == 0 {
		return err
	}

	keys := make([]string, 0, len(multi))
	for k := range multi {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	first := multi[keys[0]]
	var conv schema.ConversionError
	if errors.As(first, &conv) {
		if conv.Err != nil {
			return fmt.Errorf("%s: %w", conv.Key, conv.Err)
		}
		return fmt.Errorf("%s: invalid value", conv.Key)
	}
	return first
}
