package errors

import (
	stderrors "errors"
	"net/http"
)

// Kind 业务错误分类
type Kind int

const (
	KindNotFound Kind = iota + 1
	KindValidation
	KindConflict
	KindUnauthorized
	KindForbidden
)

// HTTPStatus 返回错误分类对应的 HTTP 状态码
func (k Kind) HTTPStatus() int {
	switch k {
	case KindNotFound:
		return http.StatusNotFound
	case KindValidation:
		return http.StatusBadRequest
	case KindConflict:
		return http.StatusConflict
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

// Error 带分类与业务码的错误
// 各模块以包级变量声明哨兵错误，调用方使用 errors.Is 比较
type Error struct {
	Kind    Kind
	Code    int
	Message string
}

func (e *Error) Error() string { return e.Message }

func NotFound(code int, msg string) *Error     { return &Error{Kind: KindNotFound, Code: code, Message: msg} }
func Validation(code int, msg string) *Error   { return &Error{Kind: KindValidation, Code: code, Message: msg} }
func Conflict(code int, msg string) *Error     { return &Error{Kind: KindConflict, Code: code, Message: msg} }
func Unauthorized(code int, msg string) *Error { return &Error{Kind: KindUnauthorized, Code: code, Message: msg} }
func Forbidden(code int, msg string) *Error    { return &Error{Kind: KindForbidden, Code: code, Message: msg} }

// As 从错误链中提取业务错误
func As(err error) (*Error, bool) {
	var e *Error
	if stderrors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// IsKind 判断错误链中是否含有指定分类的业务错误
func IsKind(err error, kind Kind) bool {
	e, ok := As(err)
	return ok && e.Kind == kind
}
