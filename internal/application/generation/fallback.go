package generation

import (
	"fmt"
	"strings"

	"prompt-studio-api/internal/domain/entity"
)

type renderFunc func(tpl entity.Template, input string, params entity.GenerationParams) string

// localRenderers 有专用渲染的模板，其余模板走通用渲染
var localRenderers = map[string]renderFunc{
	"three-part": renderThreePart,
	"star":       renderSTAR,
	"5w1h":       render5W1H,
	"smart":      renderSMART,
}

// RenderLocally 不依赖网络的确定性渲染，远程失败时作为兜底
func RenderLocally(tpl entity.Template, input string, params entity.GenerationParams) string {
	params = params.Clamped()
	if fn, ok := localRenderers[tpl.ID]; ok {
		return fn(tpl, input, params)
	}
	return renderGeneric(tpl, input, params)
}

// HasDedicatedRenderer 模板是否有专用的本地渲染
func HasDedicatedRenderer(templateID string) bool {
	_, ok := localRenderers[templateID]
	return ok
}

func roleIntensity(professionalism int) string {
	switch {
	case professionalism > 7:
		return "资深专业的"
	case professionalism > 4:
		return "经验丰富的"
	default:
		return "有一定经验的"
	}
}

func answerDetail(detail int) string {
	switch {
	case detail > 7:
		return "详细具体"
	case detail > 4:
		return "清晰明确"
	default:
		return "简洁明了"
	}
}

func renderThreePart(_ entity.Template, input string, params entity.GenerationParams) string {
	return fmt.Sprintf(`# AI角色设定

## 角色定义
你是一位%s专业助手，具备深厚的专业知识和丰富的实践经验。

## 任务目标
%s

## 执行要求
- 回答要%s，逻辑清晰
- 提供实用可行的建议和方案
- 保持专业性和准确性
- 根据具体情况灵活调整策略

请基于以上设定，为用户提供高质量的专业服务。`, roleIntensity(params.Professionalism), input, answerDetail(params.Detail))
}

func renderSTAR(_ entity.Template, input string, _ entity.GenerationParams) string {
	return fmt.Sprintf(`# STAR框架分析

## 情境分析 (Situation)
请分析当前面临的具体情境和背景：
%s

## 任务定义 (Task)
明确需要完成的核心任务和目标。

## 行动方案 (Action)
制定具体的执行步骤和行动计划。

## 预期结果 (Result)
描述期望达到的效果和成果。

请按照STAR框架，系统性地分析和解决问题。`, input)
}

func render5W1H(_ entity.Template, input string, _ entity.GenerationParams) string {
	return fmt.Sprintf(`# 5W1H全面分析

基于用户需求：%s

请从以下六个维度进行全面分析：

## Who - 谁来执行
- 涉及的关键人员和角色
- 各方的职责和能力要求

## What - 做什么
- 具体的任务内容和范围
- 核心目标和关键成果

## When - 什么时候
- 时间安排和里程碑
- 优先级和紧急程度

## Where - 在哪里
- 执行地点和环境要求
- 相关的平台和工具

## Why - 为什么
- 背景原因和动机
- 价值和意义分析

## How - 如何执行
- 具体的方法和步骤
- 资源配置和风险控制

请确保分析全面、逻辑清晰。`, input)
}

func renderSMART(_ entity.Template, input string, _ entity.GenerationParams) string {
	return fmt.Sprintf(`# SMART目标设定

基于需求：%s

请按照SMART原则制定目标：

## Specific - 具体明确
- 明确定义要达成的具体目标
- 避免模糊和抽象的表述

## Measurable - 可衡量
- 设定量化的成功指标
- 建立可追踪的评估标准

## Achievable - 可实现
- 评估目标的可行性
- 考虑现有资源和能力

## Relevant - 相关性
- 确保目标与整体战略一致
- 分析目标的重要性和价值

## Time-bound - 有时限
- 设定明确的完成时间
- 制定阶段性的时间节点

请确保目标设定科学合理，具有可操作性。`, input)
}

func renderGeneric(tpl entity.Template, input string, _ entity.GenerationParams) string {
	sections := make([]string, 0, len(tpl.Structure))
	for i, section := range tpl.Structure {
		sections = append(sections, fmt.Sprintf("## %d. %s\n[请在此处详细阐述%s相关内容]", i+1, section, section))
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "# %s框架应用\n\n", tpl.Name)
	fmt.Fprintf(&sb, "基于用户需求：%s\n\n", input)
	fmt.Fprintf(&sb, "请按照%s的结构进行分析：\n\n", tpl.Name)
	sb.WriteString(strings.Join(sections, "\n\n"))
	sb.WriteString("\n\n---\n\n")
	fmt.Fprintf(&sb, "**框架说明**：%s\n\n", tpl.Description)
	fmt.Fprintf(&sb, "**适用场景**：%s\n\n", strings.Join(tpl.UseCases, "、"))
	sb.WriteString("请确保分析全面，逻辑清晰，具有实用价值。")
	return sb.String()
}
