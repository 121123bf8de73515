package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	pkgerrors "github.com/polidanilo/LNI/pkg/errors"
)

// ErrorBody 错误响应结构：HTTP 状态码 + 业务码 + 消息
// 成功响应直接返回实体或数组，不做包装
type ErrorBody struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// ── 成功响应 ──

// OK 200 成功响应
func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// Created 201 创建成功
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}

// NoContent 204 删除成功
func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// Attachment 以附件形式返回二进制文件
func Attachment(c *gin.Context, filename, contentType string, data []byte) {
	c.Header("Content-Description", "File Transfer")
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, contentType, data)
}

// ── 错误响应 ──

// Error 通用错误响应
func Error(c *gin.Context, httpStatus int, code int, message string) {
	c.JSON(httpStatus, ErrorBody{
		Code:    code,
		Message: message,
	})
}

// FromError 将业务错误映射为 HTTP 响应，未分类错误一律返回 500
func FromError(c *gin.Context, err error) {
	if e, ok := pkgerrors.As(err); ok {
		Error(c, e.Kind.HTTPStatus(), e.Code, e.Message)
		return
	}
	_ = c.Error(err)
	InternalError(c)
}

// ── 常见快捷方式 ──

// BadRequest 400
func BadRequest(c *gin.Context, code int, message string) {
	Error(c, http.StatusBadRequest, code, message)
}

// Unauthorized 401
func Unauthorized(c *gin.Context, code int, message string) {
	Error(c, http.StatusUnauthorized, code, message)
}

// Forbidden 403
func Forbidden(c *gin.Context, code int, message string) {
	Error(c, http.StatusForbidden, code, message)
}

// NotFound 404
func NotFound(c *gin.Context, code int, message string) {
	Error(c, http.StatusNotFound, code, message)
}

// InternalError 500
func InternalError(c *gin.Context) {
	Error(c, http.StatusInternalServerError, 50000, "服务器内部错误")
}
