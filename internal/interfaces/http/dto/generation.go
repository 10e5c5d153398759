package dto

import (
	"time"

	"prompt-studio-api/internal/application/generation"
	"prompt-studio-api/internal/application/matcher"
	"prompt-studio-api/internal/domain/entity"
)

// ParamsRequest 生成参数；旋钮接受 0-10 或 0-1 两种刻度，缺省项使用服务端默认值
type ParamsRequest struct {
	Creativity      *float64 `json:"creativity,omitempty"`
	Professionalism *float64 `json:"professionalism,omitempty"`
	Detail          *float64 `json:"detail,omitempty"`
	ModelWeight     *float64 `json:"model_weight,omitempty"`
}

// Merge 将请求中的参数覆盖到默认值上
func (p *ParamsRequest) Merge(defaults entity.GenerationParams) entity.GenerationParams {
	out := defaults
	if p == nil {
		return out
	}
	if p.Creativity != nil {
		out.Creativity = entity.NormalizeDial(*p.Creativity)
	}
	if p.Professionalism != nil {
		out.Professionalism = entity.NormalizeDial(*p.Professionalism)
	}
	if p.Detail != nil {
		out.Detail = entity.NormalizeDial(*p.Detail)
	}
	if p.ModelWeight != nil {
		out.ModelWeight = *p.ModelWeight
	}
	return out
}

// GenerateRequest 生成提示词请求
type GenerateRequest struct {
	Input      string         `json:"input"`
	TemplateID string         `json:"template_id,omitempty"`
	Params     *ParamsRequest `json:"params,omitempty"`
	Mode       string         `json:"mode,omitempty"`
	TimeoutMs  int            `json:"timeout_ms,omitempty"`
	Retries    *int           `json:"retries,omitempty"`
}

// ToRequest 转换为编排请求
func (r *GenerateRequest) ToRequest(defaults entity.GenerationParams) generation.Request {
	req := generation.Request{
		Input:      r.Input,
		TemplateID: r.TemplateID,
		Timeout:    time.Duration(r.TimeoutMs) * time.Millisecond,
		Retries:    r.Retries,
	}
	if r.Mode != "" {
		req.Mode = entity.ParseGenerationMode(r.Mode)
	}
	if r.Params != nil {
		params := r.Params.Merge(defaults)
		req.Params = &params
	}
	return req
}

// UsageResponse Token 用量
type UsageResponse struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// GenerateResponse 生成结果
type GenerateResponse struct {
	ID            string         `json:"id"`
	Content       string         `json:"content"`
	Provenance    string         `json:"provenance"`
	TemplateID    string         `json:"template_id"`
	TemplateName  string         `json:"template_name"`
	Matched       bool           `json:"matched"`
	Mode          string         `json:"mode"`
	Attempts      int            `json:"attempts"`
	FallbackCause string         `json:"fallback_cause,omitempty"`
	FallbackHint  string         `json:"fallback_hint,omitempty"`
	Usage         *UsageResponse `json:"usage,omitempty"`
	DurationMs    int64          `json:"duration_ms"`
}

// ToGenerateResponse 转换生成结果
func ToGenerateResponse(r *entity.GenerationResult) *GenerateResponse {
	if r == nil {
		return nil
	}
	resp := &GenerateResponse{
		ID:            r.ID,
		Content:       r.Content,
		Provenance:    string(r.Provenance),
		TemplateID:    r.TemplateID,
		TemplateName:  r.TemplateName,
		Matched:       r.Matched,
		Mode:          string(r.Mode),
		Attempts:      r.Attempts,
		FallbackCause: r.FallbackCause,
		FallbackHint:  r.FallbackHint,
		DurationMs:    r.Duration.Milliseconds(),
	}
	if r.Usage != nil {
		resp.Usage = &UsageResponse{
			PromptTokens:     r.Usage.PromptTokens,
			CompletionTokens: r.Usage.CompletionTokens,
			TotalTokens:      r.Usage.TotalTokens,
		}
	}
	return resp
}

// MatchRequest 模板匹配请求
type MatchRequest struct {
	Input string `json:"input"`
}

// MatchResponse 模板匹配结果
type MatchResponse struct {
	Template entity.Template `json:"template"`
	Scores   []matcher.Score `json:"scores"`
}

// TemplateListResponse 模板列表
type TemplateListResponse struct {
	Templates []entity.Template `json:"templates"`
	Total     int               `json:"total"`
}

// LLMConfigResponse 脱敏后的 LLM 配置
type LLMConfigResponse struct {
	Provider      string `json:"provider"`
	Model         string `json:"model"`
	BaseURL       string `json:"base_url"`
	ProxyURL      string `json:"proxy_url"`
	APIKey        string `json:"api_key"`
	HasAPIKey     bool   `json:"has_api_key"`
	RemoteEnabled bool   `json:"remote_enabled"`
	DefaultMode   string `json:"default_mode"`
	Retries       int    `json:"retries"`
}

// PingResponse 连接测试结果
type PingResponse struct {
	OK         bool   `json:"ok"`
	Reply      string `json:"reply,omitempty"`
	LatencyMs  int64  `json:"latency_ms"`
	Cause      string `json:"cause,omitempty"`
	StatusCode int    `json:"status_code,omitempty"`
	Message    string `json:"message,omitempty"`
	Hint       string `json:"hint,omitempty"`
}

// ToPingResponse 转换连接测试结果
func ToPingResponse(r *generation.PingResult) *PingResponse {
	return &PingResponse{
		OK:         r.OK,
		Reply:      r.Reply,
		LatencyMs:  r.Latency.Milliseconds(),
		Cause:      string(r.Cause),
		StatusCode: r.StatusCode,
		Message:    r.Message,
		Hint:       r.Hint,
	}
}
