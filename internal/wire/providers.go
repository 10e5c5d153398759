package wire

import (
	"prompt-studio-api/internal/application/catalog"
	"prompt-studio-api/internal/application/generation"
	"prompt-studio-api/internal/application/matcher"
	"prompt-studio-api/internal/config"
	"prompt-studio-api/internal/workflow/prompt"
)

// Toolkit 命令行工具所需的组件
type Toolkit struct {
	Catalog      *catalog.Catalog
	Matcher      *matcher.Matcher
	Orchestrator *generation.Orchestrator
	Pinger       *generation.Pinger
}

// ProvideMatcher 基于注入的模板库创建匹配器
func ProvideMatcher(c *catalog.Catalog) *matcher.Matcher {
	return matcher.New(c, matcher.DefaultRules(), matcher.DefaultWeights())
}

// ProvideRemote 提供远程生成客户端
func ProvideRemote(cfg *config.Config, factory generation.ChatModelFactory) generation.Remote {
	return generation.NewRemoteClient(factory, cfg.Generation.BackoffUnit)
}

// ProvideGenerationOptions 提供编排参数
func ProvideGenerationOptions(cfg *config.Config) generation.Options {
	return generation.OptionsFromConfig(cfg.Generation)
}

// ProvidePinger 提供连接测试器，使用默认超时
func ProvidePinger(remote generation.Remote, builder *prompt.Builder) *generation.Pinger {
	return generation.NewPinger(remote, builder, 0)
}
