package service

import "context"

// LLMUsageInput 一次模型调用的用量
type LLMUsageInput struct {
	Workflow string
	Provider string
	Model    string

	PromptTokens     int
	CompletionTokens int
	DurationMs       int
}

// TotalTokens 输入与输出 token 之和
func (in LLMUsageInput) TotalTokens() int {
	return in.PromptTokens + in.CompletionTokens
}

// LLMUsageRecorder 记录模型用量；实现应为 best-effort，不阻塞调用链路
type LLMUsageRecorder interface {
	Record(ctx context.Context, in LLMUsageInput) error
}
