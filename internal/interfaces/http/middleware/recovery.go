// Package middleware 提供 HTTP 中间件
package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"prompt-studio-api/internal/interfaces/http/dto"
	"prompt-studio-api/pkg/errors"
	"prompt-studio-api/pkg/logger"
)

// Recovery Panic 恢复中间件，响应体与普通错误保持同一结构
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			logger.Error(c.Request.Context(), "panic recovered",
				fmt.Errorf("%v", rec),
				"stack", string(debug.Stack()),
				"path", c.Request.URL.Path,
				"method", c.Request.Method,
			)

			if c.Writer.Written() {
				c.Abort()
				return
			}
			dto.ErrorWithDetail(c, http.StatusInternalServerError, "internal server error", &dto.ErrorDetail{
				ErrorCode: string(errors.CodeInternalError),
			})
			c.Abort()
		}()

		c.Next()
	}
}
