package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"virtual-tryon-api/internal/interfaces/http/dto"
	"virtual-tryon-api/pkg/logger"

	"github.com/gin-gonic/gin"
)

// recoveredMessage panic 时返回给客户端的通用文案
const recoveredMessage = "virtual try-on failed, please retry"

// Recovery Panic 恢复中间件
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				logger.Error(c.Request.Context(), "panic recovered",
					fmt.Errorf("%v", err),
					"stack", string(debug.Stack()),
					"path", c.Request.URL.Path,
					"method", c.Request.Method,
				)

				// 已写出的跨域头保留在响应中
				dto.AbortWithError(c, http.StatusInternalServerError, recoveredMessage)
			}
		}()

		c.Next()
	}
}
