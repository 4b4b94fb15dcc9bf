// Package middleware 提供 HTTP 中间件
package middleware

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// 换装接口固定返回的跨域头，客户端 SDK 依赖这组精确取值
const (
	tryOnAllowOrigin  = "*"
	tryOnAllowHeaders = "authorization, x-client-info, apikey, content-type"
	tryOnAllowMethods = "POST, OPTIONS"
	tryOnMaxAge       = "86400"
)

// CORSConfig CORS 配置
type CORSConfig struct {
	AllowedOrigins []string
	AllowedMethods []string
	AllowedHeaders []string
}

// CORS 系统接口跨域中间件
func CORS(cfg CORSConfig) gin.HandlerFunc {
	if len(cfg.AllowedOrigins) == 0 {
		cfg.AllowedOrigins = []string{"*"}
	}
	if len(cfg.AllowedMethods) == 0 {
		cfg.AllowedMethods = []string{"GET", "OPTIONS"}
	}
	if len(cfg.AllowedHeaders) == 0 {
		cfg.AllowedHeaders = []string{"Origin", "Content-Type", "X-Request-ID"}
	}

	return cors.New(cors.Config{
		AllowOrigins:  cfg.AllowedOrigins,
		AllowMethods:  cfg.AllowedMethods,
		AllowHeaders:  cfg.AllowedHeaders,
		ExposeHeaders: []string{RequestIDHeader, TraceIDHeader},
		MaxAge:        12 * time.Hour,
	})
}

// TryOnCORS 换装接口跨域中间件
// 所有响应（含错误）都带固定跨域头；OPTIONS 预检直接返回空 200，不进入后续逻辑
func TryOnCORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.Writer.Header()
		h.Set("Access-Control-Allow-Origin", tryOnAllowOrigin)
		h.Set("Access-Control-Allow-Headers", tryOnAllowHeaders)
		h.Set("Access-Control-Allow-Methods", tryOnAllowMethods)
		h.Set("Access-Control-Max-Age", tryOnMaxAge)

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusOK)
			return
		}

		c.Next()
	}
}
