// Package handler 提供 HTTP 请求处理器
package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"prompt-studio-api/internal/application/catalog"
	"prompt-studio-api/internal/config"
)

// HealthHandler 健康检查处理器
type HealthHandler struct {
	catalog *catalog.Catalog
	cfg     *config.Config
}

// NewHealthHandler 创建健康检查处理器
func NewHealthHandler(c *catalog.Catalog, cfg *config.Config) *HealthHandler {
	return &HealthHandler{
		catalog: c,
		cfg:     cfg,
	}
}

// HealthResponse 健康检查响应
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version,omitempty"`
}

type readinessCheck struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

type readinessResponse struct {
	Status string                     `json:"status"`
	Checks map[string]*readinessCheck `json:"checks,omitempty"`
}

// Health 健康检查接口
// @Summary 健康检查
// @Description 检查服务健康状态
// @Tags System
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	resp := HealthResponse{Status: "ok"}
	if h != nil && h.cfg != nil {
		resp.Version = h.cfg.App.Version
	}
	c.JSON(http.StatusOK, resp)
}

// Ready 就绪检查接口
// @Summary 就绪检查
// @Description 模板库必须可用；LLM 未配置时只标记为降级，本地模板仍可生成
// @Tags System
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /ready [get]
func (h *HealthHandler) Ready(c *gin.Context) {
	checks := map[string]*readinessCheck{
		"catalog": {Status: "unknown"},
		"llm":     {Status: "disabled"},
	}

	ready := true

	// 模板库（必需）
	if h == nil || h.catalog == nil || h.catalog.Len() == 0 {
		checks["catalog"].Status = "missing"
		checks["catalog"].Error = "template catalog is empty"
		ready = false
	} else {
		checks["catalog"].Status = "ok"
	}

	// LLM（可选，不影响就绪态）
	if h != nil && h.cfg != nil && h.cfg.Generation.RemoteEnabled {
		_, provider, ok := h.cfg.LLM.Provider("")
		switch {
		case !ok:
			checks["llm"] = &readinessCheck{Status: "degraded", Error: "default provider not configured"}
		case strings.TrimSpace(provider.APIKey) == "":
			checks["llm"] = &readinessCheck{Status: "degraded", Error: "api key not configured"}
		case h.cfg.LLM.Proxy.URL == "":
			checks["llm"] = &readinessCheck{Status: "degraded", Error: "proxy url not configured"}
		default:
			checks["llm"] = &readinessCheck{Status: "ok"}
		}
	}

	resp := readinessResponse{
		Status: "ok",
		Checks: checks,
	}
	if !ready {
		resp.Status = "not_ready"
		c.JSON(http.StatusServiceUnavailable, resp)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Live 存活检查接口
// @Summary 存活检查
// @Description 检查服务是否存活
// @Tags System
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /live [get]
func (h *HealthHandler) Live(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status: "ok",
	})
}
