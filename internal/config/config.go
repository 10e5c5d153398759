// Package config 提供配置加载和管理功能
package config

import (
	"time"
)

// Config 应用配置根结构
type Config struct {
	App           AppConfig           `yaml:"app" mapstructure:"app"`
	Server        ServerConfig        `yaml:"server" mapstructure:"server"`
	LLM           LLMConfig           `yaml:"llm" mapstructure:"llm"`
	Generation    GenerationConfig    `yaml:"generation" mapstructure:"generation"`
	Observability ObservabilityConfig `yaml:"observability" mapstructure:"observability"`
	Security      SecurityConfig      `yaml:"security" mapstructure:"security"`
}

// AppConfig 应用基础配置
type AppConfig struct {
	Name    string `yaml:"name" mapstructure:"name"`
	Version string `yaml:"version" mapstructure:"version"`
	Env     string `yaml:"env" mapstructure:"env"`
}

// ServerConfig 服务器配置
type ServerConfig struct {
	HTTP HTTPServerConfig `yaml:"http" mapstructure:"http"`
}

// HTTPServerConfig HTTP 服务器配置
type HTTPServerConfig struct {
	Host         string        `yaml:"host" mapstructure:"host"`
	Port         int           `yaml:"port" mapstructure:"port"`
	ReadTimeout  time.Duration `yaml:"read_timeout" mapstructure:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout" mapstructure:"write_timeout"`
	IdleTimeout  time.Duration `yaml:"idle_timeout" mapstructure:"idle_timeout"`
}

// LLMConfig LLM 配置
type LLMConfig struct {
	DefaultProvider string                    `yaml:"default_provider" mapstructure:"default_provider"`
	Providers       map[string]ProviderConfig `yaml:"providers" mapstructure:"providers"`
	Proxy           ProxyConfig               `yaml:"proxy" mapstructure:"proxy"`
}

// ProviderConfig LLM 提供商配置
type ProviderConfig struct {
	APIKey  string        `yaml:"api_key" mapstructure:"api_key"`
	BaseURL string        `yaml:"base_url" mapstructure:"base_url"`
	Model   string        `yaml:"model" mapstructure:"model"`
	Timeout time.Duration `yaml:"timeout" mapstructure:"timeout"`
}

// ProxyConfig 服务端代理配置
//
// 远程客户端只与代理通信：URL 是客户端视角的代理基地址，
// Path 是本服务挂载代理端点的路由（URL 末尾追加 /chat/completions 后应与之对应）。
type ProxyConfig struct {
	URL  string `yaml:"url" mapstructure:"url"`
	Path string `yaml:"path" mapstructure:"path"`
}

// GenerationConfig 生成编排配置
type GenerationConfig struct {
	RemoteEnabled   bool          `yaml:"remote_enabled" mapstructure:"remote_enabled"`
	DefaultMode     string        `yaml:"default_mode" mapstructure:"default_mode"`
	Retries         int           `yaml:"retries" mapstructure:"retries"`
	BackoffUnit     time.Duration `yaml:"backoff_unit" mapstructure:"backoff_unit"`
	FastTimeout     time.Duration `yaml:"fast_timeout" mapstructure:"fast_timeout"`
	StandardTimeout time.Duration `yaml:"standard_timeout" mapstructure:"standard_timeout"`
	MaxTimeout      time.Duration `yaml:"max_timeout" mapstructure:"max_timeout"`
	MaxRetries      int           `yaml:"max_retries" mapstructure:"max_retries"`
	Params          ParamsConfig  `yaml:"params" mapstructure:"params"`
}

// ParamsConfig 默认生成参数（0-10 刻度）
type ParamsConfig struct {
	Creativity      int     `yaml:"creativity" mapstructure:"creativity"`
	Professionalism int     `yaml:"professionalism" mapstructure:"professionalism"`
	Detail          int     `yaml:"detail" mapstructure:"detail"`
	ModelWeight     float64 `yaml:"model_weight" mapstructure:"model_weight"`
}

// ObservabilityConfig 可观测性配置
type ObservabilityConfig struct {
	Logging LoggingConfig `yaml:"logging" mapstructure:"logging"`
	Tracing TracingConfig `yaml:"tracing" mapstructure:"tracing"`
	Metrics MetricsConfig `yaml:"metrics" mapstructure:"metrics"`
}

// LoggingConfig 日志配置
type LoggingConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// TracingConfig 追踪配置
type TracingConfig struct {
	Enabled    bool    `yaml:"enabled" mapstructure:"enabled"`
	Endpoint   string  `yaml:"endpoint" mapstructure:"endpoint"`
	SampleRate float64 `yaml:"sample_rate" mapstructure:"sample_rate"`
}

// MetricsConfig 指标配置
type MetricsConfig struct {
	Enabled bool   `yaml:"enabled" mapstructure:"enabled"`
	Path    string `yaml:"path" mapstructure:"path"`
}

// SecurityConfig 安全配置
type SecurityConfig struct {
	CORS CORSConfig `yaml:"cors" mapstructure:"cors"`
}

// CORSConfig CORS 配置
type CORSConfig struct {
	AllowedOrigins []string `yaml:"allowed_origins" mapstructure:"allowed_origins"`
	AllowedMethods []string `yaml:"allowed_methods" mapstructure:"allowed_methods"`
	AllowedHeaders []string `yaml:"allowed_headers" mapstructure:"allowed_headers"`
}

// Provider 返回默认（或指定名称的）提供商配置
func (c *LLMConfig) Provider(name string) (string, ProviderConfig, bool) {
	if name == "" {
		name = c.DefaultProvider
	}
	p, ok := c.Providers[name]
	return name, p, ok
}
