// Package port 定义工作流层对基础设施的最小依赖
package port

import (
	"context"

	"github.com/cloudwego/eino/components/model"

	"prompt-studio-api/internal/domain/entity"
)

// ChatModelFactory 按采样参数提供 ChatModel，由 llm.EinoFactory 实现
type ChatModelFactory interface {
	Get(ctx context.Context, s entity.Sampling) (model.BaseChatModel, error)
}
