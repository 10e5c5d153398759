package entity

import (
	"math"
	"strings"
	"time"
)

// GenerationMode 生成模式
type GenerationMode string

const (
	GenerationModeStandard GenerationMode = "standard"
	GenerationModeFast     GenerationMode = "fast"
)

// ParseGenerationMode 解析生成模式，未知取值回落到 standard
func ParseGenerationMode(s string) GenerationMode {
	if GenerationMode(strings.ToLower(strings.TrimSpace(s))) == GenerationModeFast {
		return GenerationModeFast
	}
	return GenerationModeStandard
}

// IsFast 是否为快速模式
func (m GenerationMode) IsFast() bool {
	return m == GenerationModeFast
}

const (
	MinDial = 0
	MaxDial = 10
)

// GenerationParams 生成参数，三个旋钮统一使用 0-10 整数刻度
type GenerationParams struct {
	Creativity      int     `json:"creativity"`
	Professionalism int     `json:"professionalism"`
	Detail          int     `json:"detail"`
	ModelWeight     float64 `json:"model_weight"`
}

// DefaultGenerationParams 返回默认生成参数
func DefaultGenerationParams() GenerationParams {
	return GenerationParams{
		Creativity:      7,
		Professionalism: 8,
		Detail:          6,
		ModelWeight:     0.8,
	}
}

// Clamped 返回各旋钮被限制在 0-10 内的副本
func (p GenerationParams) Clamped() GenerationParams {
	p.Creativity = clampDial(p.Creativity)
	p.Professionalism = clampDial(p.Professionalism)
	p.Detail = clampDial(p.Detail)
	if math.IsNaN(p.ModelWeight) || math.IsInf(p.ModelWeight, 0) {
		p.ModelWeight = 0
	}
	return p
}

// NormalizeDial 将任意刻度的旋钮值归一到 0-10 整数
//
// 严格位于 (0, 1) 的值视为 0-1 小数刻度并放大 10 倍；1.0 按 0-10 刻度处理。
func NormalizeDial(v float64) int {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return MinDial
	}
	if v > 0 && v < 1 {
		v *= 10
	}
	return clampDial(int(math.Round(v)))
}

func clampDial(v int) int {
	if v < MinDial {
		return MinDial
	}
	if v > MaxDial {
		return MaxDial
	}
	return v
}

// Sampling 单次远程调用的采样参数
type Sampling struct {
	Temperature      float32 `json:"temperature"`
	MaxTokens        int     `json:"max_tokens"`
	TopP             float32 `json:"top_p"`
	FrequencyPenalty float32 `json:"frequency_penalty"`
	PresencePenalty  float32 `json:"presence_penalty"`
}

// TokenUsage Token 用量
type TokenUsage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// Provenance 生成结果来源
type Provenance string

const (
	ProvenanceRemote Provenance = "remote"
	ProvenanceLocal  Provenance = "local"
)

// GenerationResult 一次生成的结果，由调用方持有
type GenerationResult struct {
	ID            string         `json:"id"`
	Content       string         `json:"content"`
	Usage         *TokenUsage    `json:"usage,omitempty"`
	Provenance    Provenance     `json:"provenance"`
	TemplateID    string         `json:"template_id"`
	TemplateName  string         `json:"template_name"`
	Matched       bool           `json:"matched"`
	Mode          GenerationMode `json:"mode"`
	Attempts      int            `json:"attempts"`
	FallbackCause string         `json:"fallback_cause,omitempty"`
	FallbackHint  string         `json:"fallback_hint,omitempty"`
	Duration      time.Duration  `json:"duration"`
}
