package errorx

import (
	"context"
	"errors"
	"net/http"

	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/rest/httpx"
)

// CodeError is a typed error that carries an HTTP status code.
// Logic functions return these so the global error handler can map
// them to the correct HTTP response.
type CodeError struct {
	Code int    `json:"code"`
	Msg  string `json:"msg"`
}

func (e *CodeError) Error() string {
	return e.Msg
}

// ErrBadRequest returns a 400 error.
func ErrBadRequest(msg string) error {
	return &CodeError{Code: http.StatusBadRequest, Msg: msg}
}

// ErrForbidden returns a 403 error.
func ErrForbidden(msg string) error {
	return &CodeError{Code: http.StatusForbidden, Msg: msg}
}

// ErrNotFound returns a 404 error.
func ErrNotFound(msg string) error {
	return &CodeError{Code: http.StatusNotFound, Msg: msg}
}

// ErrInternal returns a 500 error.
func ErrInternal(msg string) error {
	return &CodeError{Code: http.StatusInternalServerError, Msg: msg}
}

// IsBadRequest reports whether err is a 400 CodeError, returning its message.
func IsBadRequest(err error) (string, bool) {
	var ce *CodeError
	if errors.As(err, &ce) && ce.Code == http.StatusBadRequest {
		return ce.Msg, true
	}
	return "", false
}

// RegisterErrorHandler installs a global error handler that maps CodeError
// to the correct HTTP status code. Untyped errors become 500.
func RegisterErrorHandler() {
	httpx.SetErrorHandlerCtx(handle)
}

func handle(ctx context.Context, err error) (int, any) {
	var ce *CodeError
	if errors.As(err, &ce) {
		return ce.Code, &CodeError{Code: ce.Code, Msg: ce.Msg}
	}

	logx.WithContext(ctx).Errorf("unexpected error: %v", err)
	return http.StatusInternalServerError, &CodeError{
		Code: http.StatusInternalServerError,
		Msg:  "internal server error",
	}
}
