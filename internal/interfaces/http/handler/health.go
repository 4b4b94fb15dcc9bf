package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"virtual-tryon-api/internal/config"
)

// HealthHandler 健康检查处理器
type HealthHandler struct {
	llm     *config.LLMConfig
	version string
}

// NewHealthHandler 创建健康检查处理器
func NewHealthHandler(cfg *config.Config) *HealthHandler {
	return &HealthHandler{
		llm:     &cfg.LLM,
		version: cfg.App.Version,
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
// @Tags System
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:  "ok",
		Version: h.version,
	})
}

// Ready 就绪检查接口
// 上游地址与模型均已配置才可接收流量，不主动探测上游
// @Summary 就绪检查
// @Tags System
// @Produce json
// @Success 200 {object} readinessResponse
// @Failure 503 {object} readinessResponse
// @Router /ready [get]
func (h *HealthHandler) Ready(c *gin.Context) {
	checks := map[string]*readinessCheck{
		"llm_base_url": {Status: "ok"},
		"llm_model":    {Status: "ok"},
	}

	ready := true
	if h.llm == nil || h.llm.BaseURL == "" {
		checks["llm_base_url"] = &readinessCheck{Status: "missing", Error: "llm.base_url not configured"}
		ready = false
	}
	if h.llm == nil || h.llm.Model == "" {
		checks["llm_model"] = &readinessCheck{Status: "missing", Error: "llm.model not configured"}
		ready = false
	}

	resp := readinessResponse{Status: "ok", Checks: checks}
	if !ready {
		resp.Status = "not_ready"
		c.JSON(http.StatusServiceUnavailable, resp)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Live 存活检查接口
// @Summary 存活检查
// @Tags System
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /live [get]
func (h *HealthHandler) Live(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{Status: "ok"})
}
