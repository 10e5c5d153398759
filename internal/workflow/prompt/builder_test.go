package prompt

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"prompt-studio-api/internal/domain/entity"
)

func starTemplate() entity.Template {
	return entity.Template{
		ID:          "star",
		Name:        "STAR原则",
		Description: "情境-任务-行动-结果的结构化表达方法",
		Structure:   []string{"情境", "任务", "行动", "结果"},
		Category:    entity.TemplateCategoryBasic,
		Complexity:  2,
		UseCases:    []string{"问题分析", "经验总结"},
	}
}

func TestBuildStandardIncludesTemplateAndTiers(t *testing.T) {
	b := NewBuilder(nil)

	msgs, err := b.Build(context.Background(), starTemplate(), "分析一次线上故障", entity.DefaultGenerationParams(), entity.GenerationModeStandard)
	require.NoError(t, err)

	assert.Contains(t, msgs.System, "资深专家级")
	assert.Contains(t, msgs.System, "详细清晰")
	assert.Contains(t, msgs.System, "STAR原则")
	assert.Contains(t, msgs.System, "情境、任务、行动、结果")
	assert.Contains(t, msgs.System, "问题分析、经验总结")
	assert.Contains(t, msgs.System, "2/5")

	assert.Contains(t, msgs.User, "分析一次线上故障")
	assert.Contains(t, msgs.User, "6. 明确指出执行约束和注意事项")
	assert.NotContains(t, msgs.User, "示例说明")
	assert.Contains(t, msgs.User, "Markdown")
}

func TestBuildStandardExtraRequirementsByThreshold(t *testing.T) {
	b := NewBuilder(nil)
	ctx := context.Background()

	t.Run("both", func(t *testing.T) {
		msgs, err := b.Build(ctx, starTemplate(), "x", entity.GenerationParams{Professionalism: 9, Detail: 9}, entity.GenerationModeStandard)
		require.NoError(t, err)
		assert.Contains(t, msgs.User, "6. 在适当位置提供具体的示例说明")
		assert.Contains(t, msgs.User, "7. 明确指出执行约束和注意事项")
		assert.Contains(t, msgs.System, "极其详细和具体")
	})

	t.Run("none", func(t *testing.T) {
		msgs, err := b.Build(ctx, starTemplate(), "x", entity.GenerationParams{Professionalism: 3, Detail: 3}, entity.GenerationModeStandard)
		require.NoError(t, err)
		assert.NotContains(t, msgs.User, "6.")
		assert.Contains(t, msgs.System, "入门级")
		assert.Contains(t, msgs.System, "简洁明了")
	})

	t.Run("boundary values are exclusive", func(t *testing.T) {
		msgs, err := b.Build(ctx, starTemplate(), "x", entity.GenerationParams{Professionalism: 5, Detail: 6}, entity.GenerationModeStandard)
		require.NoError(t, err)
		assert.NotContains(t, msgs.User, "示例说明")
		assert.NotContains(t, msgs.User, "执行约束")
	})
}

func TestBuildFastIsShorter(t *testing.T) {
	b := NewBuilder(nil)
	ctx := context.Background()
	params := entity.DefaultGenerationParams()

	fast, err := b.Build(ctx, starTemplate(), "写一份复盘", params, entity.GenerationModeFast)
	require.NoError(t, err)
	standard, err := b.Build(ctx, starTemplate(), "写一份复盘", params, entity.GenerationModeStandard)
	require.NoError(t, err)

	assert.Less(t, len(fast.System), len(standard.System))
	assert.Contains(t, fast.System, "STAR原则")
	assert.Contains(t, fast.System, "7/10")
	assert.Contains(t, fast.User, "写一份复盘")
	assert.NotContains(t, fast.System, "资深专家级")
}

func TestBuildClampsParams(t *testing.T) {
	b := NewBuilder(nil)

	msgs, err := b.Build(context.Background(), starTemplate(), "x", entity.GenerationParams{Creativity: 42}, entity.GenerationModeFast)
	require.NoError(t, err)
	assert.Contains(t, msgs.User, "10/10")
}

func TestBuildKeepsBracesInInput(t *testing.T) {
	b := NewBuilder(nil)

	input := "输出 JSON {\"a\": 1}"
	msgs, err := b.Build(context.Background(), starTemplate(), input, entity.DefaultGenerationParams(), entity.GenerationModeStandard)
	require.NoError(t, err)
	assert.Contains(t, msgs.User, input)
}

func TestBuildPing(t *testing.T) {
	msgs, err := NewBuilder(nil).BuildPing(context.Background(), "连接成功")
	require.NoError(t, err)
	assert.Equal(t, "你好，请回复\"连接成功\"", msgs.User)
	assert.NotEmpty(t, msgs.System)
}

func TestMessagesSchema(t *testing.T) {
	m := Messages{System: "s", User: "u"}
	out := m.Schema()
	require.Len(t, out, 2)
	assert.Equal(t, "s", out[0].Content)
	assert.Equal(t, "u", out[1].Content)
	assert.True(t, strings.EqualFold(string(out[0].Role), "system"))
}

func TestTiers(t *testing.T) {
	assert.Equal(t, "资深专家级", ExpertiseLevel(8))
	assert.Equal(t, "专业级", ExpertiseLevel(7))
	assert.Equal(t, "专业级", ExpertiseLevel(5))
	assert.Equal(t, "入门级", ExpertiseLevel(4))

	assert.Equal(t, "极其详细和具体", DetailLevel(8))
	assert.Equal(t, "详细清晰", DetailLevel(5))
	assert.Equal(t, "简洁明了", DetailLevel(4))
}
