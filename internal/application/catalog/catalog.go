// Package catalog 提供只读的沟通模型模板目录
package catalog

import (
	"fmt"
	"strings"
	"sync"

	"prompt-studio-api/internal/domain/entity"
)

// Catalog 进程启动时加载一次、运行期不可变的模板目录
//
// 所有读方法返回副本，因此可以在并发调用之间无锁共享。
type Catalog struct {
	templates []entity.Template
	index     map[string]int
	defaultID string
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
)

// Default 返回内置目录（进程级单例）
func Default() *Catalog {
	defaultOnce.Do(func() {
		c, err := New(builtinTemplates(), DefaultTemplateID)
		if err != nil {
			panic(fmt.Sprintf("invalid builtin catalog: %v", err))
		}
		defaultCatalog = c
	})
	return defaultCatalog
}

// New 基于给定模板构建目录，defaultID 必须存在于目录中
func New(templates []entity.Template, defaultID string) (*Catalog, error) {
	if len(templates) == 0 {
		return nil, fmt.Errorf("catalog must contain at least one template")
	}

	c := &Catalog{
		templates: make([]entity.Template, 0, len(templates)),
		index:     make(map[string]int, len(templates)),
		defaultID: defaultID,
	}
	for _, t := range templates {
		if err := t.Validate(); err != nil {
			return nil, err
		}
		if _, dup := c.index[t.ID]; dup {
			return nil, fmt.Errorf("duplicate template id: %s", t.ID)
		}
		c.index[t.ID] = len(c.templates)
		c.templates = append(c.templates, t.Clone())
	}
	if _, ok := c.index[defaultID]; !ok {
		return nil, fmt.Errorf("default template %s not found in catalog", defaultID)
	}
	return c, nil
}

// List 按目录顺序返回全部模板
func (c *Catalog) List() []entity.Template {
	return c.filter(func(entity.Template) bool { return true })
}

// Len 模板数量
func (c *Catalog) Len() int {
	return len(c.templates)
}

// FindByID 按 ID 查找模板
func (c *Catalog) FindByID(id string) (entity.Template, bool) {
	i, ok := c.index[id]
	if !ok {
		return entity.Template{}, false
	}
	return c.templates[i].Clone(), true
}

// DefaultTemplate 返回默认模板
func (c *Catalog) DefaultTemplate() entity.Template {
	return c.templates[c.index[c.defaultID]].Clone()
}

// FilterByCategory 按分类过滤
func (c *Catalog) FilterByCategory(category entity.TemplateCategory) []entity.Template {
	return c.filter(func(t entity.Template) bool { return t.Category == category })
}

// FilterByComplexity 按复杂度过滤
func (c *Catalog) FilterByComplexity(complexity int) []entity.Template {
	return c.filter(func(t entity.Template) bool { return t.Complexity == complexity })
}

// Recommend 按使用场景推荐：useCase 是任一场景的子串（忽略大小写）即命中
func (c *Catalog) Recommend(useCase string) []entity.Template {
	q := strings.ToLower(strings.TrimSpace(useCase))
	if q == "" {
		return []entity.Template{}
	}
	return c.filter(func(t entity.Template) bool {
		for _, uc := range t.UseCases {
			if strings.Contains(strings.ToLower(uc), q) {
				return true
			}
		}
		return false
	})
}

func (c *Catalog) filter(keep func(entity.Template) bool) []entity.Template {
	out := make([]entity.Template, 0, len(c.templates))
	for _, t := range c.templates {
		if keep(t) {
			out = append(out, t.Clone())
		}
	}
	return out
}
