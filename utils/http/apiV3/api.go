package apiV3

import (
	"net/http"

	"github.com/cute-angelia/nuge/syntax/ijson"
	"github.com/go-chi/chi/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type api struct {
	w http.ResponseWriter
	r *http.Request

	isLogOn   bool // 打印日志
	forceJSON bool // body 强制按 JSON 解析
	logger    zerolog.Logger

	reqStruct any // 请求结构体
}

// ErrorRes 错误输出格式
type ErrorRes struct {
	Error string `json:"error"`
}

func NewApi(w http.ResponseWriter, r *http.Request, opts ...Option) *api {
	a := &api{
		w:       w,
		r:       r,
		isLogOn: true,       // 默認值
		logger:  log.Logger, // 默認值
	}
	// 應用所有傳入的選項
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Decode request
func (that *api) Decode(v interface{}) error {
	body, err := decoder{forceJSON: that.forceJSON}.Decode(that.r, v)
	that.reqStruct = body
	return err
}

// Success 200，data 原样编码输出，不做包装
func (that *api) Success(data interface{}) {
	that.write(http.StatusOK, data, "[success]")
}

// Error 输出 {"error": "..."}，状态码取自 ApiError，默认 400
func (that *api) Error(err error) {
	res := ErrorRes{}
	if err != nil {
		res.Error = err.Error()
	}
	that.write(StatusOf(err), res, "[error]")
}

func (that *api) write(status int, v interface{}, tag string) {
	data, err := ijson.Encode(v)
	if err != nil {
		// 编码失败属于服务器内部错误，记录日志但不发送给客户端
		that.logger.Error().Err(err).Str("path", that.r.URL.Path).Msg("JSON Encode Error")
		http.Error(that.w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	if that.isLogOn {
		that.logr(tag, status, data)
	}

	that.w.Header().Set("Content-Type", "application/json")
	that.w.WriteHeader(status)
	_, _ = that.w.Write(append(data, '\n'))
}

func (that *api) logr(tag string, status int, resp []byte) {
	ev := that.logger.Info()
	if status >= http.StatusBadRequest {
		ev = that.logger.Warn()
	}

	ev = ev.Str("tag", tag).
		Str("req_id", middleware.GetReqID(that.r.Context())).
		Str("method", that.r.Method).
		Str("path", that.r.URL.Path).
		Int("status", status)

	if that.reqStruct != nil {
		if dataReq, err := ijson.Encode(that.reqStruct); err == nil {
			ev = ev.RawJSON("req", dataReq)
		}
	}
	ev.RawJSON("resp", resp).Send()
}
