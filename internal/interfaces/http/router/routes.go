package router

import (
	"net/http"

	"virtual-tryon-api/internal/interfaces/http/dto"
	"virtual-tryon-api/internal/interfaces/http/handler"
	"virtual-tryon-api/internal/interfaces/http/middleware"

	"github.com/gin-gonic/gin"
)

// TryOnPath 换装接口主路径
const TryOnPath = "/v1/virtual-try-on"

// LegacyTryOnPath 旧版函数路径，兼容已有客户端
const LegacyTryOnPath = "/functions/v1/virtual-try-on"

// TryOnPaths 换装接口路径
var TryOnPaths = []string{TryOnPath, LegacyTryOnPath}

// RegisterTryOnRoutes 注册换装路由
func RegisterTryOnRoutes(g *gin.RouterGroup, tryOnHandler *handler.TryOnHandler) {
	g.Use(middleware.TryOnCORS())
	for _, path := range TryOnPaths {
		g.POST(path, tryOnHandler.Create)
		// 预检请求由 TryOnCORS 直接应答
		g.OPTIONS(path, func(*gin.Context) {})
	}
}

// RegisterFallback 未匹配的路由：任意路径的 OPTIONS 预检返回 200，其余返回 404
func RegisterFallback(engine *gin.Engine) {
	engine.NoRoute(middleware.TryOnCORS(), func(c *gin.Context) {
		dto.Error(c, http.StatusNotFound, "not found")
	})
}

// RegisterStyleRoutes 注册风格目录路由
func RegisterStyleRoutes(v1 *gin.RouterGroup, styleHandler *handler.StyleHandler) {
	styles := v1.Group("/styles")
	{
		styles.GET("", styleHandler.ListStyles)
		styles.GET("/:id", styleHandler.GetStyle)
	}
}
