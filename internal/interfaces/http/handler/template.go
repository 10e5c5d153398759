package handler

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"prompt-studio-api/internal/application/catalog"
	"prompt-studio-api/internal/application/generation"
	"prompt-studio-api/internal/application/matcher"
	"prompt-studio-api/internal/domain/entity"
	"prompt-studio-api/internal/interfaces/http/dto"
	"prompt-studio-api/pkg/errors"
)

// TemplateHandler 模板目录与匹配处理器
type TemplateHandler struct {
	catalog *catalog.Catalog
	matcher *matcher.Matcher
}

// NewTemplateHandler 创建模板处理器
func NewTemplateHandler(c *catalog.Catalog, m *matcher.Matcher) *TemplateHandler {
	return &TemplateHandler{catalog: c, matcher: m}
}

// ListTemplates 获取模板列表
// @Summary 模板列表
// @Description 支持按分类、复杂度过滤，或按使用场景推荐
// @Tags Templates
// @Produce json
// @Param category query string false "basic/advanced/specialized"
// @Param complexity query int false "1-5"
// @Param use_case query string false "使用场景关键词"
// @Success 200 {object} dto.Response[dto.TemplateListResponse]
// @Router /v1/templates [get]
func (h *TemplateHandler) ListTemplates(c *gin.Context) {
	templates := h.catalog.List()

	if uc := strings.TrimSpace(c.Query("use_case")); uc != "" {
		templates = h.catalog.Recommend(uc)
	}
	if cat := strings.TrimSpace(c.Query("category")); cat != "" {
		category := entity.TemplateCategory(cat)
		if !category.IsValid() {
			respondError(c, errors.New(errors.CodeInvalidParam, "invalid category").WithDetail(cat))
			return
		}
		templates = keep(templates, func(t entity.Template) bool { return t.Category == category })
	}
	if raw := strings.TrimSpace(c.Query("complexity")); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < entity.MinComplexity || n > entity.MaxComplexity {
			respondError(c, errors.New(errors.CodeInvalidParam, "invalid complexity").
				WithDetail(fmt.Sprintf("complexity must be %d-%d", entity.MinComplexity, entity.MaxComplexity)))
			return
		}
		templates = keep(templates, func(t entity.Template) bool { return t.Complexity == n })
	}

	dto.Success(c, &dto.TemplateListResponse{Templates: templates, Total: len(templates)})
}

// GetTemplate 获取单个模板
// @Summary 模板详情
// @Tags Templates
// @Produce json
// @Param id path string true "模板 ID"
// @Success 200 {object} dto.Response[entity.Template]
// @Router /v1/templates/{id} [get]
func (h *TemplateHandler) GetTemplate(c *gin.Context) {
	id := c.Param("id")
	tpl, ok := h.catalog.FindByID(id)
	if !ok {
		respondError(c, fmt.Errorf("%w: %s", generation.ErrTemplateNotFound, id))
		return
	}
	dto.Success(c, tpl)
}

// MatchTemplate 为需求自动匹配模板
// @Summary 模板匹配
// @Tags Templates
// @Accept json
// @Produce json
// @Param body body dto.MatchRequest true "匹配请求"
// @Success 200 {object} dto.Response[dto.MatchResponse]
// @Router /v1/templates/match [post]
func (h *TemplateHandler) MatchTemplate(c *gin.Context) {
	var req dto.MatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	dto.Success(c, &dto.MatchResponse{
		Template: h.matcher.Match(req.Input),
		Scores:   h.matcher.Scores(req.Input),
	})
}

func keep(in []entity.Template, pred func(entity.Template) bool) []entity.Template {
	out := make([]entity.Template, 0, len(in))
	for _, t := range in {
		if pred(t) {
			out = append(out, t)
		}
	}
	return out
}
