package generation

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"

	"prompt-studio-api/internal/domain/entity"
	"prompt-studio-api/internal/domain/service"
	"prompt-studio-api/internal/workflow/prompt"
	"prompt-studio-api/pkg/logger"
	"prompt-studio-api/pkg/metrics"
	"prompt-studio-api/pkg/tracer"
)

const defaultBackoffUnit = time.Second

// RemoteOptions 单次远程生成的选项
type RemoteOptions struct {
	Mode    entity.GenerationMode
	Params  entity.GenerationParams
	Timeout time.Duration
	Retries int

	// Sampling 非空时覆盖按模式计算的采样参数
	Sampling *entity.Sampling

	// Workflow 指标标签，为空时按模式推导
	Workflow string
}

// RemoteResult 远程生成成功的结果
type RemoteResult struct {
	Content  string
	Usage    *entity.TokenUsage
	Attempts int
}

// RemoteClient 通过服务端代理调用 chat-completion 接口，负责超时、重试与失败分类
type RemoteClient struct {
	factory     ChatModelFactory
	backoffUnit time.Duration
}

// NewRemoteClient 创建远程生成客户端；backoffUnit <= 0 时使用 1s
func NewRemoteClient(factory ChatModelFactory, backoffUnit time.Duration) *RemoteClient {
	if backoffUnit <= 0 {
		backoffUnit = defaultBackoffUnit
	}
	return &RemoteClient{factory: factory, backoffUnit: backoffUnit}
}

// Generate 执行至多 Retries+1 次尝试，第 n 次失败后等待 n×backoffUnit 再重试
//
// 父 context 结束时立即返回取消类 *Failure，不再发起后续尝试。
func (c *RemoteClient) Generate(ctx context.Context, msgs prompt.Messages, opts RemoteOptions) (*RemoteResult, error) {
	retries := opts.Retries
	if retries < 0 {
		retries = 0
	}
	attempts := retries + 1
	sampling := SamplingFor(opts.Mode, opts.Params)
	if opts.Sampling != nil {
		sampling = *opts.Sampling
	}
	workflow := opts.Workflow
	if workflow == "" {
		workflow = service.WorkflowForMode(opts.Mode.IsFast())
	}
	ctx = service.WithWorkflow(ctx, workflow)

	if err := ctx.Err(); err != nil {
		return nil, cancelledFailure(0, err)
	}

	chatModel, err := c.factory.Get(ctx, sampling)
	if err != nil {
		return nil, newFailure(err, 0)
	}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		res, err := c.attempt(ctx, chatModel, msgs, sampling, opts.Timeout, attempt)
		if err == nil {
			metrics.RemoteAttemptTotal.WithLabelValues(string(opts.Mode), "success").Inc()
			res.Attempts = attempt
			return res, nil
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			metrics.RemoteAttemptTotal.WithLabelValues(string(opts.Mode), string(CauseCancelled)).Inc()
			return nil, cancelledFailure(attempt, ctxErr)
		}

		lastErr = err
		cause, status := classify(err)
		metrics.RemoteAttemptTotal.WithLabelValues(string(opts.Mode), string(cause)).Inc()
		logger.Warn(ctx, "remote generation attempt failed",
			"attempt", attempt,
			"max_attempts", attempts,
			"cause", string(cause),
			"status", status,
			"error", err.Error(),
		)

		if attempt < attempts {
			if err := c.wait(ctx, time.Duration(attempt)*c.backoffUnit); err != nil {
				return nil, cancelledFailure(attempt, err)
			}
		}
	}

	return nil, newFailure(lastErr, attempts)
}

func (c *RemoteClient) attempt(ctx context.Context, chatModel model.BaseChatModel, msgs prompt.Messages, s entity.Sampling, timeout time.Duration, n int) (*RemoteResult, error) {
	ctx, span := tracer.Start(ctx, "generation.remote_attempt")
	defer span.End()

	attemptCtx := ctx
	cancel := func() {}
	if timeout > 0 {
		attemptCtx, cancel = context.WithTimeout(ctx, timeout)
	}
	defer cancel()

	logger.Debug(ctx, "remote generation attempt", "attempt", n, "timeout", timeout.String())

	msg, err := chatModel.Generate(attemptCtx, msgs.Schema(),
		model.WithTemperature(s.Temperature),
		model.WithMaxTokens(s.MaxTokens),
		model.WithTopP(s.TopP),
	)
	if err != nil {
		span.RecordError(err)
		if ctx.Err() == nil && errors.Is(attemptCtx.Err(), context.DeadlineExceeded) {
			return nil, fmt.Errorf("%w after %s: %v", errAttemptTimeout, timeout, err)
		}
		return nil, err
	}

	content := contentOf(msg)
	if content == "" {
		return nil, errEmptyResponse
	}
	return &RemoteResult{Content: content, Usage: usageOf(msg)}, nil
}

func (c *RemoteClient) wait(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func contentOf(msg *schema.Message) string {
	if msg == nil {
		return ""
	}
	return strings.TrimSpace(msg.Content)
}

func usageOf(msg *schema.Message) *entity.TokenUsage {
	if msg == nil || msg.ResponseMeta == nil || msg.ResponseMeta.Usage == nil {
		return nil
	}
	u := msg.ResponseMeta.Usage
	return &entity.TokenUsage{
		PromptTokens:     u.PromptTokens,
		CompletionTokens: u.CompletionTokens,
		TotalTokens:      u.TotalTokens,
	}
}
