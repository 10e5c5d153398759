package handler

import (
	"strings"

	"github.com/gin-gonic/gin"

	"prompt-studio-api/internal/application/generation"
	"prompt-studio-api/internal/config"
	"prompt-studio-api/internal/interfaces/http/dto"
	"prompt-studio-api/pkg/errors"
)

// LLMHandler LLM 配置查看与连接测试
type LLMHandler struct {
	cfg    *config.Config
	pinger *generation.Pinger
}

// NewLLMHandler 创建 LLM 处理器
func NewLLMHandler(cfg *config.Config, pinger *generation.Pinger) *LLMHandler {
	return &LLMHandler{cfg: cfg, pinger: pinger}
}

// Config 返回脱敏后的 LLM 配置
// @Summary LLM 配置
// @Tags LLM
// @Produce json
// @Success 200 {object} dto.Response[dto.LLMConfigResponse]
// @Router /v1/llm/config [get]
func (h *LLMHandler) Config(c *gin.Context) {
	name, provider, _ := h.cfg.LLM.Provider("")
	dto.Success(c, &dto.LLMConfigResponse{
		Provider:      name,
		Model:         provider.Model,
		BaseURL:       provider.BaseURL,
		ProxyURL:      h.cfg.LLM.Proxy.URL,
		APIKey:        MaskAPIKey(provider.APIKey),
		HasAPIKey:     strings.TrimSpace(provider.APIKey) != "",
		RemoteEnabled: h.cfg.Generation.RemoteEnabled,
		DefaultMode:   string(generation.OptionsFromConfig(h.cfg.Generation).DefaultMode),
		Retries:       h.cfg.Generation.Retries,
	})
}

// Ping 经由代理发送一次连接测试
// @Summary 连接测试
// @Description 失败时仍返回 200，结果中带失败原因与处理建议
// @Tags LLM
// @Produce json
// @Success 200 {object} dto.Response[dto.PingResponse]
// @Router /v1/llm/ping [post]
func (h *LLMHandler) Ping(c *gin.Context) {
	res, err := h.pinger.Ping(c.Request.Context())
	if err != nil {
		if generation.IsCancelled(err) {
			respondError(c, err)
			return
		}
		respondError(c, errors.Wrap(err, errors.CodeLLMCallFailed, "connection test failed"))
		return
	}
	dto.Success(c, dto.ToPingResponse(res))
}

// MaskAPIKey 保留首尾各 4 位，其余替换为 *
func MaskAPIKey(key string) string {
	key = strings.TrimSpace(key)
	switch {
	case key == "":
		return ""
	case len(key) <= 8:
		return strings.Repeat("*", len(key))
	default:
		return key[:4] + strings.Repeat("*", len(key)-8) + key[len(key)-4:]
	}
}
