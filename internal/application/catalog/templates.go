package catalog

import "prompt-studio-api/internal/domain/entity"

// DefaultTemplateID 无任何匹配信号时使用的三段式模板
const DefaultTemplateID = "three-part"

// builtinTemplates 内置沟通模型目录，顺序即目录顺序（匹配平分时先出现者胜出）
func builtinTemplates() []entity.Template {
	return []entity.Template{
		{
			ID:          "three-part",
			Name:        "三段式模型",
			Description: "最基础实用的提示词框架，适合快速构建清晰的AI指令",
			Structure:   []string{"我是谁（角色定位）", "我要干什么（任务目标）", "我有什么要求（具体约束）"},
			Category:    entity.TemplateCategoryBasic,
			Complexity:  1,
			UseCases:    []string{"日常对话", "简单任务", "快速原型"},
			Example:     "我是一名经验丰富的旅行博主，设计一份5天去川西旅行行程攻略。攻略内容要求：风趣幽默，擅长用生动的文字描绘旅途见闻，并给出实用的旅行建议。",
			Icon:        "MessageSquare",
		},
		{
			ID:          "star",
			Name:        "STAR模型",
			Description: "结构化描述情境和行动的经典框架，适合复杂场景分析",
			Structure:   []string{"情境（Situation）", "任务（Task）", "行动（Action）", "结果（Result）"},
			Category:    entity.TemplateCategoryAdvanced,
			Complexity:  3,
			UseCases:    []string{"项目管理", "问题解决", "案例分析"},
			Example:     "情境：公司需要提升客户满意度；任务：制定客户服务改进方案；行动：分析现状、设计流程、培训团队；结果：客户满意度提升20%",
			Icon:        "Target",
		},
		{
			ID:          "5w1h",
			Name:        "5W1H模型",
			Description: "全面分析问题的六要素框架，确保信息完整性",
			Structure:   []string{"Who（谁）", "What（什么）", "When（何时）", "Where（何地）", "Why（为什么）", "How（如何）"},
			Category:    entity.TemplateCategoryBasic,
			Complexity:  2,
			UseCases:    []string{"新闻写作", "需求分析", "计划制定"},
			Example:     "Who: 产品经理；What: 设计新功能；When: 下个季度；Where: 移动端应用；Why: 提升用户体验；How: 用户调研+原型设计",
			Icon:        "HelpCircle",
		},
		{
			ID:          "smart",
			Name:        "SMART模型",
			Description: "目标设定的黄金法则，确保目标可执行可衡量",
			Structure:   []string{"具体（Specific）", "可衡量（Measurable）", "可达成（Achievable）", "相关性（Relevant）", "时限性（Time-bound）"},
			Category:    entity.TemplateCategoryAdvanced,
			Complexity:  3,
			UseCases:    []string{"目标管理", "项目规划", "KPI设定"},
			Example:     "具体：提升网站转化率；可衡量：从2%提升到3%；可达成：基于历史数据可行；相关性：直接影响业务收入；时限性：3个月内完成",
			Icon:        "CheckCircle",
		},
		{
			ID:          "prep",
			Name:        "PREP模型",
			Description: "说服性表达的经典结构，适合论证和演讲",
			Structure:   []string{"观点（Point）", "理由（Reason）", "例证（Example）", "观点（Point）"},
			Category:    entity.TemplateCategoryBasic,
			Complexity:  2,
			UseCases:    []string{"演讲稿", "说服文案", "观点论证"},
			Example:     "观点：AI将改变教育；理由：个性化学习成为可能；例证：Khan Academy的成功案例；观点：因此我们应该拥抱AI教育",
			Icon:        "MessageCircle",
		},
		{
			ID:          "scamper",
			Name:        "SCAMPER模型",
			Description: "创新思维的七种方法，激发创意和改进思路",
			Structure:   []string{"替代（Substitute）", "组合（Combine）", "适应（Adapt）", "修改（Modify）", "其他用途（Put to other uses）", "消除（Eliminate）", "重新安排（Rearrange）"},
			Category:    entity.TemplateCategorySpecialized,
			Complexity:  4,
			UseCases:    []string{"产品创新", "流程优化", "创意设计"},
			Example:     "替代：用AI替代人工客服；组合：结合语音和文字；适应：适应不同行业需求；修改：调整响应速度；其他用途：用于销售支持；消除：去除重复问题；重新安排：优化对话流程",
			Icon:        "Lightbulb",
		},
		{
			ID:          "grow",
			Name:        "GROW模型",
			Description: "教练式对话框架，引导思考和行动",
			Structure:   []string{"目标（Goal）", "现实（Reality）", "选择（Options）", "意愿（Will）"},
			Category:    entity.TemplateCategoryAdvanced,
			Complexity:  3,
			UseCases:    []string{"教练对话", "问题解决", "决策支持"},
			Example:     "目标：提升团队效率；现实：当前存在沟通不畅；选择：改进工具、培训、流程优化；意愿：团队愿意配合改进",
			Icon:        "TrendingUp",
		},
		{
			ID:          "aida",
			Name:        "AIDA模型",
			Description: "营销传播的经典漏斗模型，引导用户行动",
			Structure:   []string{"注意（Attention）", "兴趣（Interest）", "欲望（Desire）", "行动（Action）"},
			Category:    entity.TemplateCategorySpecialized,
			Complexity:  3,
			UseCases:    []string{"营销文案", "广告策划", "销售话术"},
			Example:     "注意：你还在为写提示词发愁吗？兴趣：AI助手让提示词生成变得简单；欲望：专业模板+智能生成，效率提升10倍；行动：立即免费试用",
			Icon:        "Megaphone",
		},
		{
			ID:          "pdca",
			Name:        "PDCA模型",
			Description: "持续改进的循环模型，适合流程优化",
			Structure:   []string{"计划（Plan）", "执行（Do）", "检查（Check）", "行动（Act）"},
			Category:    entity.TemplateCategoryAdvanced,
			Complexity:  3,
			UseCases:    []string{"质量管理", "流程改进", "项目迭代"},
			Example:     "计划：制定用户体验改进方案；执行：实施新的界面设计；检查：收集用户反馈数据；行动：根据反馈调整优化",
			Icon:        "RotateCcw",
		},
		{
			ID:          "swot",
			Name:        "SWOT模型",
			Description: "战略分析的四维框架，全面评估内外部环境",
			Structure:   []string{"优势（Strengths）", "劣势（Weaknesses）", "机会（Opportunities）", "威胁（Threats）"},
			Category:    entity.TemplateCategorySpecialized,
			Complexity:  4,
			UseCases:    []string{"战略规划", "竞品分析", "决策评估"},
			Example:     "优势：技术团队强；劣势：市场推广弱；机会：AI市场爆发；威胁：大厂竞争激烈",
			Icon:        "Grid3X3",
		},
		{
			ID:          "mece",
			Name:        "MECE模型",
			Description: "逻辑分析的黄金原则，确保思考的完整性和独立性",
			Structure:   []string{"相互独立（Mutually Exclusive）", "完全穷尽（Collectively Exhaustive）"},
			Category:    entity.TemplateCategoryAdvanced,
			Complexity:  4,
			UseCases:    []string{"问题分析", "分类整理", "逻辑思考"},
			Example:     "用户分类：新用户（独立）、老用户（独立）；覆盖所有用户（穷尽）；按使用频率：高频、中频、低频用户",
			Icon:        "Layers",
		},
		{
			ID:          "pyramid",
			Name:        "金字塔原理",
			Description: "结构化表达的核心方法，让思路更清晰",
			Structure:   []string{"结论先行", "以上统下", "归类分组", "逻辑递进"},
			Category:    entity.TemplateCategoryAdvanced,
			Complexity:  4,
			UseCases:    []string{"报告写作", "演讲结构", "思维整理"},
			Example:     "结论：应该投资AI项目；理由1：市场前景好；理由2：技术可行；理由3：团队有经验；每个理由下有具体支撑",
			Icon:        "Triangle",
		},
		{
			ID:          "ogsm",
			Name:        "OGSM模型",
			Description: "战略执行的四层框架，从目标到措施的完整链条",
			Structure:   []string{"目标（Objective）", "目的（Goal）", "策略（Strategy）", "措施（Measure）"},
			Category:    entity.TemplateCategorySpecialized,
			Complexity:  4,
			UseCases:    []string{"战略规划", "目标分解", "执行管理"},
			Example:     "目标：成为行业领导者；目的：市场份额达到30%；策略：产品差异化+渠道扩张；措施：研发投入+销售团队扩充",
			Icon:        "Flag",
		},
		{
			ID:          "raci",
			Name:        "RACI模型",
			Description: "责任分工的清晰框架，避免职责混乱",
			Structure:   []string{"负责（Responsible）", "批准（Accountable）", "咨询（Consulted）", "知情（Informed）"},
			Category:    entity.TemplateCategorySpecialized,
			Complexity:  3,
			UseCases:    []string{"项目管理", "团队协作", "流程设计"},
			Example:     "负责：开发团队执行；批准：产品经理决策；咨询：设计师提供建议；知情：运营团队了解进展",
			Icon:        "Users",
		},
	}
}
