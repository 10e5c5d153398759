package eino

import (
	"context"

	"prompt-studio-api/internal/domain/service"
	"prompt-studio-api/pkg/logger"
)

// LogUsageRecorder 将每次调用的用量写入结构化日志
type LogUsageRecorder struct{}

// Record 实现 service.LLMUsageRecorder
func (LogUsageRecorder) Record(ctx context.Context, in service.LLMUsageInput) error {
	logger.Info(ctx, "llm usage",
		"workflow", in.Workflow,
		"provider", in.Provider,
		"model", in.Model,
		"prompt_tokens", in.PromptTokens,
		"completion_tokens", in.CompletionTokens,
		"total_tokens", in.TotalTokens(),
		"duration_ms", in.DurationMs,
	)
	return nil
}
