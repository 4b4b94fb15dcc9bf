// Package router 提供 HTTP 路由配置
package router

import (
	"virtual-tryon-api/internal/config"
	"virtual-tryon-api/internal/interfaces/http/handler"
	"virtual-tryon-api/internal/interfaces/http/middleware"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Handlers 路由依赖的处理器
type Handlers struct {
	TryOn  *handler.TryOnHandler
	Style  *handler.StyleHandler
	Health *handler.HealthHandler
}

// Router HTTP 路由器
type Router struct {
	engine   *gin.Engine
	cfg      *config.Config
	handlers Handlers
}

// New 创建新的路由器
func New(cfg *config.Config, handlers Handlers) *Router {
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := &Router{
		engine:   gin.New(),
		cfg:      cfg,
		handlers: handlers,
	}

	r.setupMiddleware()
	r.setupRoutes()

	return r
}

// Engine 返回 Gin Engine
func (r *Router) Engine() *gin.Engine {
	return r.engine
}

// setupMiddleware 配置全局中间件
func (r *Router) setupMiddleware() {
	r.engine.Use(middleware.Recovery())
	r.engine.Use(middleware.RequestID())

	if r.cfg.Observability.Tracing.Enabled {
		r.engine.Use(middleware.Trace(r.cfg.App.Name))
		r.engine.Use(middleware.TraceContext())
	}

	if r.cfg.Observability.Metrics.Enabled {
		r.engine.Use(middleware.Metrics(middleware.MetricsOptions{
			PathAliases: map[string]string{LegacyTryOnPath: TryOnPath},
			SkipPaths:   []string{r.cfg.Observability.Metrics.Path},
		}))
	}
}

// setupRoutes 配置路由
func (r *Router) setupRoutes() {
	system := r.engine.Group("")
	system.Use(middleware.CORS(middleware.CORSConfig{
		AllowedOrigins: r.cfg.Security.CORS.AllowedOrigins,
		AllowedMethods: r.cfg.Security.CORS.AllowedMethods,
		AllowedHeaders: r.cfg.Security.CORS.AllowedHeaders,
	}))
	{
		system.GET("/health", r.handlers.Health.Health)
		system.GET("/ready", r.handlers.Health.Ready)
		system.GET("/live", r.handlers.Health.Live)

		if r.cfg.Observability.Metrics.Enabled {
			system.GET(r.cfg.Observability.Metrics.Path, gin.WrapH(promhttp.Handler()))
		}

		RegisterStyleRoutes(system.Group("/v1"), r.handlers.Style)
	}

	RegisterTryOnRoutes(r.engine.Group(""), r.handlers.TryOn)
	RegisterFallback(r.engine)
}
