// Package service 放置跨层共享的领域上下文约定
package service

import (
	"context"
	"strings"
)

type llmCtxKey string

const llmCtxKeyWorkflow llmCtxKey = "llm_workflow"

// 已知的模型调用场景，用作指标与追踪的 workflow 标签
const (
	WorkflowGenerateStandard = "generate_standard"
	WorkflowGenerateFast     = "generate_fast"
	WorkflowPing             = "ping"
)

// WorkflowForMode 返回生成模式对应的 workflow 标签
func WorkflowForMode(fast bool) string {
	if fast {
		return WorkflowGenerateFast
	}
	return WorkflowGenerateStandard
}

func WithWorkflow(ctx context.Context, workflow string) context.Context {
	if ctx == nil {
		return nil
	}
	w := strings.TrimSpace(workflow)
	if w == "" {
		return ctx
	}
	return context.WithValue(ctx, llmCtxKeyWorkflow, w)
}

func WorkflowFromContext(ctx context.Context) string {
	if ctx == nil {
		return "unknown"
	}
	v := ctx.Value(llmCtxKeyWorkflow)
	s, ok := v.(string)
	if !ok || strings.TrimSpace(s) == "" {
		return "unknown"
	}
	return strings.TrimSpace(s)
}
