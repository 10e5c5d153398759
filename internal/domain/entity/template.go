package entity

import (
	"fmt"
	"strings"
)

// TemplateCategory 沟通模型分类
type TemplateCategory string

const (
	TemplateCategoryBasic       TemplateCategory = "basic"
	TemplateCategoryAdvanced    TemplateCategory = "advanced"
	TemplateCategorySpecialized TemplateCategory = "specialized"
)

// IsValid 检查分类是否合法
func (c TemplateCategory) IsValid() bool {
	switch c {
	case TemplateCategoryBasic, TemplateCategoryAdvanced, TemplateCategorySpecialized:
		return true
	default:
		return false
	}
}

const (
	MinComplexity = 1
	MaxComplexity = 5
)

// Template 结构化提示词框架（沟通模型），目录中的不可变条目
type Template struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Structure   []string         `json:"structure"`
	Category    TemplateCategory `json:"category"`
	Complexity  int              `json:"complexity"`
	UseCases    []string         `json:"use_cases"`
	Example     string           `json:"example"`
	Icon        string           `json:"icon"`
}

// Validate 校验模板的基本约束
func (t Template) Validate() error {
	if strings.TrimSpace(t.ID) == "" {
		return fmt.Errorf("template id is required")
	}
	if len(t.Structure) == 0 {
		return fmt.Errorf("template %s: structure must not be empty", t.ID)
	}
	if !t.Category.IsValid() {
		return fmt.Errorf("template %s: invalid category %q", t.ID, t.Category)
	}
	if t.Complexity < MinComplexity || t.Complexity > MaxComplexity {
		return fmt.Errorf("template %s: complexity %d out of range", t.ID, t.Complexity)
	}
	return nil
}

// Clone 返回深拷贝，调用方修改切片不会影响目录
func (t Template) Clone() Template {
	out := t
	out.Structure = append([]string(nil), t.Structure...)
	out.UseCases = append([]string(nil), t.UseCases...)
	return out
}
