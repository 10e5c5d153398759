package handler

import (
	"github.com/gin-gonic/gin"

	"prompt-studio-api/internal/application/generation"
	"prompt-studio-api/internal/interfaces/http/dto"
	"prompt-studio-api/pkg/logger"
)

// GenerationHandler 提示词生成处理器
type GenerationHandler struct {
	orchestrator *generation.Orchestrator
	opts         generation.Options
}

// NewGenerationHandler 创建生成处理器
func NewGenerationHandler(orchestrator *generation.Orchestrator, opts generation.Options) *GenerationHandler {
	return &GenerationHandler{orchestrator: orchestrator, opts: opts}
}

// Generate 生成结构化提示词
// @Summary 生成提示词
// @Description 按模板（或自动匹配）生成结构化提示词，远程失败时返回本地模板结果
// @Tags Generation
// @Accept json
// @Produce json
// @Param body body dto.GenerateRequest true "生成请求"
// @Success 200 {object} dto.Response[dto.GenerateResponse]
// @Router /v1/prompts/generate [post]
func (h *GenerationHandler) Generate(c *gin.Context) {
	var req dto.GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	// 客户端断开即取消
	result, err := h.orchestrator.Generate(c.Request.Context(), req.ToRequest(h.opts.DefaultParams))
	if err != nil {
		if generation.IsCancelled(err) {
			logger.Info(c.Request.Context(), "client cancelled generation")
		}
		respondError(c, err)
		return
	}

	dto.Success(c, dto.ToGenerateResponse(result))
}
