package generation

import (
	"context"
	"strings"
	"time"

	"prompt-studio-api/internal/domain/entity"
	"prompt-studio-api/internal/domain/service"
	"prompt-studio-api/internal/workflow/prompt"
	"prompt-studio-api/pkg/logger"
)

const (
	pingExpectedReply  = "连接成功"
	pingMaxTokens      = 10
	defaultPingTimeout = 10 * time.Second
)

// PingResult 连接测试结果
type PingResult struct {
	OK         bool          `json:"ok"`
	Reply      string        `json:"reply,omitempty"`
	Latency    time.Duration `json:"latency"`
	Cause      Cause         `json:"cause,omitempty"`
	StatusCode int           `json:"status_code,omitempty"`
	Message    string        `json:"message,omitempty"`
	Hint       string        `json:"hint,omitempty"`
}

// Pinger 经由代理发送一条极短的请求，校验密钥与链路是否可用
type Pinger struct {
	remote  Remote
	builder *prompt.Builder
	timeout time.Duration
}

// NewPinger 创建连接测试器；timeout <= 0 时使用 10s
func NewPinger(remote Remote, builder *prompt.Builder, timeout time.Duration) *Pinger {
	if timeout <= 0 {
		timeout = defaultPingTimeout
	}
	return &Pinger{remote: remote, builder: builder, timeout: timeout}
}

// Ping 只尝试一次；失败时返回带分类的结果而不是 error，取消除外
func (p *Pinger) Ping(ctx context.Context) (*PingResult, error) {
	msgs, err := p.builder.BuildPing(ctx, pingExpectedReply)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	res, err := p.remote.Generate(ctx, msgs, RemoteOptions{
		Mode:     entity.GenerationModeFast,
		Timeout:  p.timeout,
		Retries:  0,
		Sampling: &entity.Sampling{Temperature: 0.3, MaxTokens: pingMaxTokens, TopP: 1},
		Workflow: service.WorkflowPing,
	})
	out := &PingResult{Latency: time.Since(start)}

	if err != nil {
		if IsCancelled(err) {
			return nil, err
		}
		f, ok := AsFailure(err)
		if !ok {
			f = newFailure(err, 1)
		}
		out.Cause = f.Cause
		out.StatusCode = f.StatusCode
		out.Message = f.Message
		out.Hint = f.Hint
		logger.Warn(ctx, "llm connection test failed", "cause", string(f.Cause), "status", f.StatusCode)
		return out, nil
	}

	out.Reply = res.Content
	out.OK = strings.Contains(res.Content, pingExpectedReply)
	if !out.OK {
		out.Message = "unexpected reply"
	}
	logger.Info(ctx, "llm connection test finished", "ok", out.OK, "latency_ms", out.Latency.Milliseconds())
	return out, nil
}
