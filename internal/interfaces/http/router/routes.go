package router

import (
	"github.com/gin-gonic/gin"
)

// RegisterV1Routes 注册 v1 版本路由
func RegisterV1Routes(v1 *gin.RouterGroup, h *RouterHandlers) {
	// 提示词生成
	prompts := v1.Group("/prompts")
	{
		prompts.POST("/generate", h.Generation.Generate)
	}

	// 模板库
	templates := v1.Group("/templates")
	{
		templates.GET("", h.Template.ListTemplates)
		templates.GET("/:id", h.Template.GetTemplate)
		templates.POST("/match", h.Template.MatchTemplate)
	}

	// LLM 诊断
	llm := v1.Group("/llm")
	{
		llm.GET("/config", h.LLM.Config)
		llm.POST("/ping", h.LLM.Ping)
	}
}
