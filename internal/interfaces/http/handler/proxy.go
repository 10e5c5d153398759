package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"prompt-studio-api/internal/config"
	"prompt-studio-api/internal/interfaces/http/dto"
	"prompt-studio-api/pkg/logger"
	"prompt-studio-api/pkg/metrics"
)

const (
	chatCompletionsPath   = "/chat/completions"
	defaultProxyTimeout   = 60 * time.Second
	maxProviderErrorBytes = 64 << 10
)

// ProxyHandler chat-completion 代理，密钥只在服务端注入
type ProxyHandler struct {
	endpoint string
	apiKey   string
	client   *http.Client
}

// NewProxyHandler 创建代理处理器，转发目标为默认提供商的 base_url
func NewProxyHandler(cfg *config.Config) *ProxyHandler {
	_, provider, _ := cfg.LLM.Provider("")
	timeout := provider.Timeout
	if timeout <= 0 {
		timeout = defaultProxyTimeout
	}
	return &ProxyHandler{
		endpoint: strings.TrimRight(provider.BaseURL, "/") + chatCompletionsPath,
		apiKey:   strings.TrimSpace(provider.APIKey),
		client:   &http.Client{Timeout: timeout},
	}
}

// ChatCompletions 代理 chat-completion 请求
// @Summary Chat Completion 代理
// @Description OPTIONS 预检返回 200；仅接受 POST；上游成功时原样返回响应体
// @Tags Proxy
// @Accept json
// @Produce json
// @Param body body dto.ChatCompletionRequest true "chat-completion 请求"
// @Router /api/moonshot/chat/completions [post]
func (h *ProxyHandler) ChatCompletions(c *gin.Context) {
	c.Header("Access-Control-Allow-Origin", "*")
	c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
	c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")

	switch c.Request.Method {
	case http.MethodOptions:
		c.Status(http.StatusOK)
		return
	case http.MethodPost:
	default:
		c.JSON(http.StatusMethodNotAllowed, dto.ProxyError{Error: "Method not allowed"})
		return
	}

	var req dto.ChatCompletionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ProxyError{Error: "Invalid request body", Details: err.Error()})
		return
	}

	authorization := h.authorization(c.GetHeader("Authorization"))
	if authorization == "" {
		c.JSON(http.StatusUnauthorized, dto.ProxyError{
			Error:   "Missing API key",
			Details: "MOONSHOT_API_KEY is not configured and the request carries no bearer token",
		})
		return
	}

	start := time.Now()
	status, body, err := h.forward(c, &req, authorization)
	metrics.ProxyForwardDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.ProxyForwardTotal.WithLabelValues("transport_error").Inc()
		logger.Error(c.Request.Context(), "proxy forward failed", err, "endpoint", h.endpoint)
		c.JSON(http.StatusBadGateway, dto.ProxyError{Error: "Proxy error", Details: err.Error()})
		return
	}
	metrics.ProxyForwardTotal.WithLabelValues(strconv.Itoa(status)).Inc()

	if status < 200 || status > 299 {
		logger.Warn(c.Request.Context(), "provider returned error", "status", status)
		c.JSON(status, dto.ProxyError{
			Error:   fmt.Sprintf("Provider API error: %d", status),
			Details: string(body),
		})
		return
	}

	c.Data(http.StatusOK, "application/json", body)
}

// authorization 服务端配置的密钥优先；未配置时才使用请求自带的 Bearer token
func (h *ProxyHandler) authorization(inbound string) string {
	if h.apiKey != "" {
		return "Bearer " + h.apiKey
	}
	inbound = strings.TrimSpace(inbound)
	token := strings.TrimSpace(strings.TrimPrefix(inbound, "Bearer"))
	if inbound == "" || token == "" {
		return ""
	}
	return inbound
}

func (h *ProxyHandler) forward(c *gin.Context, req *dto.ChatCompletionRequest, authorization string) (int, []byte, error) {
	payload, err := json.Marshal(req)
	if err != nil {
		return 0, nil, fmt.Errorf("encode request: %w", err)
	}

	upstream, err := http.NewRequestWithContext(c.Request.Context(), http.MethodPost, h.endpoint, bytes.NewReader(payload))
	if err != nil {
		return 0, nil, fmt.Errorf("build request: %w", err)
	}
	upstream.Header.Set("Content-Type", "application/json")
	upstream.Header.Set("Authorization", authorization)

	resp, err := h.client.Do(upstream)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()

	reader := io.Reader(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		reader = io.LimitReader(resp.Body, maxProviderErrorBytes)
	}
	body, err := io.ReadAll(reader)
	if err != nil {
		return 0, nil, fmt.Errorf("read response: %w", err)
	}
	return resp.StatusCode, body, nil
}
