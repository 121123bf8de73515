package middleware

import (
	"crypto/subtle"

	"github.com/gin-gonic/gin"

	"github.com/polidanilo/LNI/pkg/response"
)

// AdminSecret 管理接口鉴权，比对 X-Admin-Secret 请求头
// secret 为空时接口禁用
func AdminSecret(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if secret == "" {
			response.Forbidden(c, 40302, "Admin endpoints are disabled")
			c.Abort()
			return
		}
		got := c.GetHeader("X-Admin-Secret")
		if subtle.ConstantTimeCompare([]byte(got), []byte(secret)) != 1 {
			response.Forbidden(c, 40303, "Invalid admin secret")
			c.Abort()
			return
		}
		c.Next()
	}
}
