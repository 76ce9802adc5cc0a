package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/souravmahato2004/Attendance-Management-System-sub000/pkg/response"
)

// CodeBodyTooLarge 请求体超限业务码
const CodeBodyTooLarge = 10005

// BodyLimit 全局请求体大小限制中间件
// maxBytes: 允许的最大请求体字节数（如 1<<20 = 1MB）
// Content-Length 已超限的请求直接拒绝；分块传输的请求在读取时由 MaxBytesReader 截断，
// 绑定阶段返回 *http.MaxBytesError
func BodyLimit(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.ContentLength > maxBytes {
			response.Error(c, http.StatusRequestEntityTooLarge, CodeBodyTooLarge, "请求体过大")
			c.Abort()
			return
		}
		if c.Request.Body != nil {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		}

		c.Next()
	}
}
