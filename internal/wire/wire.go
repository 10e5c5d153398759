//go:build wireinject
// +build wireinject

// Package wire 提供依赖注入配置
package wire

import (
	"context"

	"github.com/google/wire"

	"prompt-studio-api/internal/application/catalog"
	"prompt-studio-api/internal/application/generation"
	"prompt-studio-api/internal/config"
	"prompt-studio-api/internal/infrastructure/llm"
	"prompt-studio-api/internal/interfaces/http/handler"
	"prompt-studio-api/internal/interfaces/http/router"
	"prompt-studio-api/internal/workflow/prompt"
)

// InitializeApp 初始化整个应用（带路由器）
func InitializeApp(ctx context.Context, cfg *config.Config) (*router.Router, func(), error) {
	wire.Build(
		GenerationSet,
		RouterSet,
	)
	return nil, nil, nil
}

// InitializeToolkit 初始化命令行使用的生成组件
func InitializeToolkit(ctx context.Context, cfg *config.Config) (*Toolkit, error) {
	wire.Build(
		GenerationSet,
		wire.Struct(new(Toolkit), "*"),
	)
	return nil, nil
}

// GenerationSet 生成链路提供者集合
var GenerationSet = wire.NewSet(
	catalog.Default,
	ProvideMatcher,
	prompt.NewRegistry,
	prompt.NewBuilder,
	llm.NewEinoFactory,
	wire.Bind(new(generation.ChatModelFactory), new(*llm.EinoFactory)),
	ProvideRemote,
	ProvideGenerationOptions,
	generation.NewOrchestrator,
	ProvidePinger,
)

// RouterSet 路由器提供者集合
var RouterSet = wire.NewSet(
	handler.NewHealthHandler,
	handler.NewGenerationHandler,
	handler.NewTemplateHandler,
	handler.NewLLMHandler,
	handler.NewProxyHandler,
	wire.Struct(new(router.RouterHandlers), "*"),
	router.NewWithDeps,
)
