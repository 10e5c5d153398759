// Package router 提供 HTTP 路由配置
package router

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"prompt-studio-api/internal/config"
	"prompt-studio-api/internal/interfaces/http/handler"
	"prompt-studio-api/internal/interfaces/http/middleware"
)

const defaultProxyPath = "/api/moonshot/chat/completions"

// RouterHandlers 路由依赖的全部处理器
type RouterHandlers struct {
	Health     *handler.HealthHandler
	Generation *handler.GenerationHandler
	Template   *handler.TemplateHandler
	LLM        *handler.LLMHandler
	Proxy      *handler.ProxyHandler
}

// Router HTTP 路由器
type Router struct {
	engine   *gin.Engine
	cfg      *config.Config
	handlers *RouterHandlers
}

// NewWithDeps 创建路由器并注册全部路由
func NewWithDeps(cfg *config.Config, handlers *RouterHandlers) *Router {
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

func (r *Router) setupMiddleware() {
	r.engine.Use(middleware.Recovery())
	r.engine.Use(middleware.RequestID())
	r.engine.Use(middleware.CORS(r.cfg.Security.CORS))

	if r.cfg.Observability.Tracing.Enabled {
		r.engine.Use(middleware.Trace(r.cfg.App.Name, "/health", "/ready", "/live", r.metricsPath()))
		r.engine.Use(middleware.TraceContext())
	}

	if r.cfg.Observability.Metrics.Enabled {
		r.engine.Use(middleware.Metrics())
	}
}

func (r *Router) setupRoutes() {
	h := r.handlers

	// 系统端点
	r.engine.GET("/health", h.Health.Health)
	r.engine.GET("/ready", h.Health.Ready)
	r.engine.GET("/live", h.Health.Live)

	if r.cfg.Observability.Metrics.Enabled {
		r.engine.GET(r.metricsPath(), gin.WrapH(promhttp.Handler()))
	}

	// 代理端点自行处理 OPTIONS 与 405
	proxyPath := r.cfg.LLM.Proxy.Path
	if proxyPath == "" {
		proxyPath = defaultProxyPath
	}
	r.engine.Any(proxyPath, h.Proxy.ChatCompletions)

	RegisterV1Routes(r.engine.Group("/v1"), h)
}

func (r *Router) metricsPath() string {
	if p := r.cfg.Observability.Metrics.Path; p != "" {
		return p
	}
	return "/metrics"
}
