package apiV3

import (
	"errors"
	"net/http"
)

// ApiError 带 HTTP 状态码的业务错误
type ApiError struct {
	Code    int
	Message string
}

func (e *ApiError) Error() string {
	return e.Message
}

func NewApiError(code int, msg string) *ApiError {
	return &ApiError{Code: code, Message: msg}
}

// BadRequest 把任意错误包装为 400
func BadRequest(err error) *ApiError {
	return &ApiError{Code: http.StatusBadRequest, Message: err.Error()}
}

// StatusOf 取错误对应的状态码，非 ApiError 一律 400
func StatusOf(err error) int {
	var e *ApiError
	if errors.As(err, &e) && e.Code > 0 {
		return e.Code
	}
	return http.StatusBadRequest
}
