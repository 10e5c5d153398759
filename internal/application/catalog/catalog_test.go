package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"prompt-studio-api/internal/domain/entity"
)

func TestDefaultCatalog(t *testing.T) {
	c := Default()

	all := c.List()
	require.Len(t, all, 14)
	assert.Equal(t, "three-part", all[0].ID)
	assert.Equal(t, "raci", all[len(all)-1].ID)

	seen := map[string]bool{}
	for _, tpl := range all {
		assert.False(t, seen[tpl.ID], "duplicate id %s", tpl.ID)
		seen[tpl.ID] = true
		assert.NotEmpty(t, tpl.Structure, tpl.ID)
	}

	def := c.DefaultTemplate()
	assert.Equal(t, DefaultTemplateID, def.ID)
	assert.Len(t, def.Structure, 3)
}

func TestFindByID(t *testing.T) {
	c := Default()

	tpl, ok := c.FindByID("smart")
	require.True(t, ok)
	assert.Equal(t, "SMART模型", tpl.Name)

	_, ok = c.FindByID("nope")
	assert.False(t, ok)
}

func TestReturnedTemplatesAreCopies(t *testing.T) {
	c := Default()

	tpl, ok := c.FindByID("star")
	require.True(t, ok)
	tpl.Structure[0] = "mutated"

	again, _ := c.FindByID("star")
	assert.Equal(t, "情境（Situation）", again.Structure[0])
}

func TestFilters(t *testing.T) {
	c := Default()

	basic := c.FilterByCategory(entity.TemplateCategoryBasic)
	ids := make([]string, 0, len(basic))
	for _, tpl := range basic {
		ids = append(ids, tpl.ID)
	}
	assert.Equal(t, []string{"three-part", "5w1h", "prep"}, ids)

	assert.Empty(t, c.FilterByCategory("creative"))

	for _, tpl := range c.FilterByComplexity(4) {
		assert.Equal(t, 4, tpl.Complexity)
	}
	assert.Len(t, c.FilterByComplexity(1), 1)
}

func TestRecommend(t *testing.T) {
	c := Default()

	got := c.Recommend("战略")
	ids := make([]string, 0, len(got))
	for _, tpl := range got {
		ids = append(ids, tpl.ID)
	}
	assert.Equal(t, []string{"swot", "ogsm"}, ids)

	kpi := c.Recommend("kpi")
	require.Len(t, kpi, 1)
	assert.Equal(t, "smart", kpi[0].ID)

	assert.Empty(t, c.Recommend("   "))
}

func TestNewRejectsInvalidCatalogs(t *testing.T) {
	valid := entity.Template{ID: "a", Structure: []string{"x"}, Category: entity.TemplateCategoryBasic, Complexity: 1}

	_, err := New(nil, "a")
	assert.Error(t, err)

	_, err = New([]entity.Template{valid, valid}, "a")
	assert.ErrorContains(t, err, "duplicate")

	noStructure := valid
	noStructure.ID = "b"
	noStructure.Structure = nil
	_, err = New([]entity.Template{valid, noStructure}, "a")
	assert.ErrorContains(t, err, "structure")

	_, err = New([]entity.Template{valid}, "missing")
	assert.ErrorContains(t, err, "default template")
}
