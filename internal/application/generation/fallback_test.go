package generation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"prompt-studio-api/internal/application/catalog"
	"prompt-studio-api/internal/domain/entity"
)

func TestRenderLocallyIsDeterministic(t *testing.T) {
	params := entity.DefaultGenerationParams()
	for _, tpl := range catalog.Default().List() {
		first := RenderLocally(tpl, "做一次产品复盘", params)
		second := RenderLocally(tpl, "做一次产品复盘", params)
		assert.Equal(t, first, second, tpl.ID)
		assert.Contains(t, first, "做一次产品复盘", tpl.ID)
	}
}

func TestRenderThreePartTiers(t *testing.T) {
	tpl, ok := catalog.Default().FindByID("three-part")
	require.True(t, ok)

	high := RenderLocally(tpl, "需求", entity.GenerationParams{Professionalism: 9, Detail: 9})
	assert.Contains(t, high, "资深专业的")
	assert.Contains(t, high, "详细具体")

	mid := RenderLocally(tpl, "需求", entity.GenerationParams{Professionalism: 5, Detail: 5})
	assert.Contains(t, mid, "经验丰富的")
	assert.Contains(t, mid, "清晰明确")

	low := RenderLocally(tpl, "需求", entity.GenerationParams{Professionalism: 1, Detail: 1})
	assert.Contains(t, low, "有一定经验的")
	assert.Contains(t, low, "简洁明了")
	assert.Contains(t, low, "## 任务目标\n需求")
}

func TestRenderDedicatedTemplates(t *testing.T) {
	c := catalog.Default()
	params := entity.DefaultGenerationParams()

	star, _ := c.FindByID("star")
	assert.Contains(t, RenderLocally(star, "x", params), "# STAR框架分析")

	w, _ := c.FindByID("5w1h")
	assert.Contains(t, RenderLocally(w, "x", params), "## How - 如何执行")

	smart, _ := c.FindByID("smart")
	assert.Contains(t, RenderLocally(smart, "x", params), "## Time-bound - 有时限")

	assert.True(t, HasDedicatedRenderer("three-part"))
	assert.False(t, HasDedicatedRenderer("swot"))
}

func TestRenderGenericListsEveryStructureLabel(t *testing.T) {
	tpl := entity.Template{
		ID:          "custom",
		Name:        "自定义",
		Description: "测试用框架",
		Structure:   []string{"甲", "乙", "丙"},
		Category:    entity.TemplateCategoryBasic,
		Complexity:  1,
		UseCases:    []string{"场景一", "场景二"},
	}

	out := RenderLocally(tpl, "输入内容", entity.DefaultGenerationParams())
	assert.Contains(t, out, "# 自定义框架应用")
	assert.Contains(t, out, "基于用户需求：输入内容")
	assert.Contains(t, out, "## 1. 甲\n[请在此处详细阐述甲相关内容]")
	assert.Contains(t, out, "## 2. 乙")
	assert.Contains(t, out, "## 3. 丙")
	assert.Contains(t, out, "**框架说明**：测试用框架")
	assert.Contains(t, out, "**适用场景**：场景一、场景二")
}
