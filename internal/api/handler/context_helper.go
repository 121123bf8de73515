package handler

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/polidanilo/LNI/internal/api/middleware"
	"github.com/polidanilo/LNI/internal/service"
	"github.com/polidanilo/LNI/pkg/response"
)

// 参数错误业务码
const (
	codeInvalidParams = 40001
	codeInvalidID     = 40008
)

// MustGetActor 从 Gin 上下文中提取当前用户。
// JWT 中间件未注入身份时写入 401 响应并返回 false，调用方应直接 return。
func MustGetActor(c *gin.Context) (service.Actor, bool) {
	id := c.GetInt64(middleware.CtxUserID)
	username := c.GetString(middleware.CtxUsername)
	if id <= 0 || username == "" {
		response.Unauthorized(c, 40100, "Not authenticated")
		return service.Actor{}, false
	}
	return service.Actor{ID: id, Username: username}, true
}

// mustGetToken 提取当前 Token 的 jti 与过期时间
func mustGetToken(c *gin.Context) (string, time.Time, bool) {
	jti := c.GetString(middleware.CtxTokenJTI)
	exp := c.GetTime(middleware.CtxTokenExp)
	if jti == "" {
		response.Unauthorized(c, 40100, "Not authenticated")
		return "", time.Time{}, false
	}
	return jti, exp, true
}

// parseID 解析路径中的正整数 ID，失败时写入 400
func parseID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		response.BadRequest(c, codeInvalidID, "Invalid "+name)
		return 0, false
	}
	return id, true
}

// bindError 绑定/校验失败统一响应
func bindError(c *gin.Context, err error) {
	response.BadRequest(c, codeInvalidParams, "Invalid request: "+err.Error())
}
