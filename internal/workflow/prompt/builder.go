// Package prompt 负责把模板、需求与生成参数渲染为发送给模型的系统/用户消息
package prompt

import (
	"context"
	"fmt"
	"strings"

	"github.com/cloudwego/eino/schema"

	"prompt-studio-api/internal/domain/entity"
)

// 标准模式下追加额外要求的阈值（0-10 刻度）
const (
	examplesDetailThreshold          = 6
	constraintsProfessionalThreshold = 5
)

// Messages 一次生成使用的两段消息
type Messages struct {
	System string `json:"system"`
	User   string `json:"user"`
}

// Schema 转换为 eino 消息序列
func (m Messages) Schema() []*schema.Message {
	return []*schema.Message{
		schema.SystemMessage(m.System),
		schema.UserMessage(m.User),
	}
}

// Builder 提示词构建器，只做字符串渲染，不访问网络
type Builder struct {
	registry *Registry
}

// NewBuilder 创建构建器；registry 为 nil 时使用新的内嵌模板注册表
func NewBuilder(registry *Registry) *Builder {
	if registry == nil {
		registry = NewRegistry()
	}
	return &Builder{registry: registry}
}

// Build 渲染系统消息与用户消息
func (b *Builder) Build(ctx context.Context, tpl entity.Template, input string, params entity.GenerationParams, mode entity.GenerationMode) (Messages, error) {
	params = params.Clamped()

	id := PromptGenerateStandardV1
	vars := standardVars(tpl, input, params)
	if mode.IsFast() {
		id = PromptGenerateFastV1
		vars = fastVars(tpl, input, params)
	}

	return b.render(ctx, id, vars)
}

// BuildPing 渲染连接测试消息
func (b *Builder) BuildPing(ctx context.Context, expected string) (Messages, error) {
	return b.render(ctx, PromptPingV1, map[string]any{"expected": expected})
}

func (b *Builder) render(ctx context.Context, id PromptID, vars map[string]any) (Messages, error) {
	chatTpl, err := b.registry.ChatTemplate(id)
	if err != nil {
		return Messages{}, err
	}
	msgs, err := chatTpl.Format(ctx, vars)
	if err != nil {
		return Messages{}, fmt.Errorf("format prompt %s: %w", id, err)
	}
	if len(msgs) != 2 || msgs[0] == nil || msgs[1] == nil {
		return Messages{}, fmt.Errorf("prompt %s: expected system and user messages, got %d", id, len(msgs))
	}
	return Messages{System: msgs[0].Content, User: msgs[1].Content}, nil
}

func fastVars(tpl entity.Template, input string, params entity.GenerationParams) map[string]any {
	return map[string]any{
		"template_name": tpl.Name,
		"creativity":    params.Creativity,
		"input":         input,
	}
}

func standardVars(tpl entity.Template, input string, params entity.GenerationParams) map[string]any {
	return map[string]any{
		"expertise":          ExpertiseLevel(params.Professionalism),
		"detail_level":       DetailLevel(params.Detail),
		"template_name":      tpl.Name,
		"description":        tpl.Description,
		"structure":          strings.Join(tpl.Structure, "、"),
		"use_cases":          strings.Join(tpl.UseCases, "、"),
		"complexity":         tpl.Complexity,
		"input":              input,
		"extra_requirements": extraRequirements(params),
	}
}

// ExpertiseLevel 专业度分档
func ExpertiseLevel(professionalism int) string {
	switch {
	case professionalism > 7:
		return "资深专家级"
	case professionalism > 4:
		return "专业级"
	default:
		return "入门级"
	}
}

// DetailLevel 详细度分档
func DetailLevel(detail int) string {
	switch {
	case detail > 7:
		return "极其详细和具体"
	case detail > 4:
		return "详细清晰"
	default:
		return "简洁明了"
	}
}

// extraRequirements 按阈值追加的生成要求，编号接在固定的 5 条之后
func extraRequirements(params entity.GenerationParams) string {
	var extra []string
	if params.Detail > examplesDetailThreshold {
		extra = append(extra, "在适当位置提供具体的示例说明")
	}
	if params.Professionalism > constraintsProfessionalThreshold {
		extra = append(extra, "明确指出执行约束和注意事项")
	}

	var sb strings.Builder
	for i, line := range extra {
		fmt.Fprintf(&sb, "\n%d. %s", 6+i, line)
	}
	return sb.String()
}
