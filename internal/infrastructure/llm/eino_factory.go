// Package llm 提供基于 eino 的 ChatModel 构建，远程调用统一经由服务端代理
package llm

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/cloudwego/eino-ext/components/model/openai"
	"github.com/cloudwego/eino/components/model"

	"prompt-studio-api/internal/config"
	"prompt-studio-api/internal/domain/entity"
	"prompt-studio-api/internal/workflow/port"
)

var _ port.ChatModelFactory = (*EinoFactory)(nil)

// EinoFactory 按采样档位缓存 ChatModel 实例
//
// BaseURL 永远是代理地址；API Key 只在代理一侧注入，客户端只携带配置中的 Key（可为空）。
type EinoFactory struct {
	config *config.LLMConfig
	models map[string]model.BaseChatModel
	mu     sync.RWMutex
}

// NewEinoFactory 创建 Eino LLM 工厂
func NewEinoFactory(cfg *config.Config) *EinoFactory {
	return &EinoFactory{
		config: &cfg.LLM,
		models: make(map[string]model.BaseChatModel),
	}
}

// ModelName 当前默认提供商的模型名
func (f *EinoFactory) ModelName() string {
	_, p, _ := f.config.Provider("")
	return p.Model
}

// Get 获取指定采样档位的 ChatModel
func (f *EinoFactory) Get(ctx context.Context, s entity.Sampling) (model.BaseChatModel, error) {
	key := profileKey(s)

	f.mu.RLock()
	m, ok := f.models[key]
	f.mu.RUnlock()
	if ok {
		return m, nil
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if m, ok = f.models[key]; ok {
		return m, nil
	}

	name, providerCfg, ok := f.config.Provider("")
	if !ok {
		return nil, fmt.Errorf("provider %s not found in LLM config", name)
	}
	baseURL := strings.TrimRight(f.config.Proxy.URL, "/")
	if baseURL == "" {
		return nil, fmt.Errorf("llm proxy url is not configured")
	}

	maxTokens := s.MaxTokens
	chatModel, err := openai.NewChatModel(ctx, &openai.ChatModelConfig{
		APIKey:           providerCfg.APIKey,
		BaseURL:          baseURL,
		Model:            providerCfg.Model,
		MaxTokens:        &maxTokens,
		Temperature:      ptrFloat32(s.Temperature),
		TopP:             ptrFloat32(s.TopP),
		FrequencyPenalty: ptrFloat32(s.FrequencyPenalty),
		PresencePenalty:  ptrFloat32(s.PresencePenalty),
		Timeout:          providerCfg.Timeout,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create eino chat model for %s: %w", name, err)
	}

	f.models[key] = chatModel
	return chatModel, nil
}

func profileKey(s entity.Sampling) string {
	return fmt.Sprintf("t=%.2f|max=%d|p=%.2f|fp=%.2f|pp=%.2f",
		s.Temperature, s.MaxTokens, s.TopP, s.FrequencyPenalty, s.PresencePenalty)
}

func ptrFloat32(f float32) *float32 {
	return &f
}
