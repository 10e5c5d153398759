// Package generation 编排一次提示词生成：匹配模板、构建消息、远程调用、失败时本地兜底
package generation

import (
	"context"

	"prompt-studio-api/internal/workflow/port"
	"prompt-studio-api/internal/workflow/prompt"
)

// ChatModelFactory 远程客户端依赖的 ChatModel 来源
type ChatModelFactory = port.ChatModelFactory

// Remote 远程生成能力，RemoteClient 为其默认实现
type Remote interface {
	Generate(ctx context.Context, msgs prompt.Messages, opts RemoteOptions) (*RemoteResult, error)
}
