package generation

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"prompt-studio-api/internal/application/catalog"
	"prompt-studio-api/internal/application/matcher"
	"prompt-studio-api/internal/config"
	"prompt-studio-api/internal/domain/entity"
	"prompt-studio-api/internal/workflow/prompt"
	"prompt-studio-api/pkg/logger"
	"prompt-studio-api/pkg/metrics"
	"prompt-studio-api/pkg/tracer"
)

// FallbackCauseRemoteDisabled 远程生成被配置关闭时的兜底原因
const FallbackCauseRemoteDisabled = "remote_disabled"

// Request 一次生成请求；取消通过传给 Generate 的 context 传递
//
// Params、Retries 为 nil 以及 Mode、Timeout 为零值时使用配置的默认值。
type Request struct {
	Input      string
	TemplateID string
	Params     *entity.GenerationParams
	Mode       entity.GenerationMode
	Timeout    time.Duration
	Retries    *int
}

// Options 编排器的运行参数
type Options struct {
	RemoteEnabled   bool
	DefaultMode     entity.GenerationMode
	Retries         int
	MaxRetries      int
	FastTimeout     time.Duration
	StandardTimeout time.Duration
	MaxTimeout      time.Duration
	DefaultParams   entity.GenerationParams
}

// OptionsFromConfig 从生成配置构造编排参数
func OptionsFromConfig(cfg config.GenerationConfig) Options {
	return Options{
		RemoteEnabled:   cfg.RemoteEnabled,
		DefaultMode:     entity.ParseGenerationMode(cfg.DefaultMode),
		Retries:         cfg.Retries,
		MaxRetries:      cfg.MaxRetries,
		FastTimeout:     cfg.FastTimeout,
		StandardTimeout: cfg.StandardTimeout,
		MaxTimeout:      cfg.MaxTimeout,
		DefaultParams: entity.GenerationParams{
			Creativity:      cfg.Params.Creativity,
			Professionalism: cfg.Params.Professionalism,
			Detail:          cfg.Params.Detail,
			ModelWeight:     cfg.Params.ModelWeight,
		}.Clamped(),
	}
}

// Orchestrator 生成编排器，无状态，可并发使用
type Orchestrator struct {
	catalog *catalog.Catalog
	matcher *matcher.Matcher
	builder *prompt.Builder
	remote  Remote
	opts    Options
}

// NewOrchestrator 创建编排器；remote 为 nil 等同于关闭远程生成
func NewOrchestrator(c *catalog.Catalog, m *matcher.Matcher, b *prompt.Builder, remote Remote, opts Options) *Orchestrator {
	if opts.DefaultMode == "" {
		opts.DefaultMode = entity.GenerationModeStandard
	}
	return &Orchestrator{
		catalog: c,
		matcher: m,
		builder: b,
		remote:  remote,
		opts:    opts,
	}
}

// Match 为需求自动匹配模板
func (o *Orchestrator) Match(input string) entity.Template {
	return o.matcher.Match(input)
}

// Generate 生成结构化提示词
//
// 远程成功返回 remote 结果；远程失败（非取消）时返回本地渲染结果并附带失败原因；
// 取消时返回 ErrCancelled，不做兜底。
func (o *Orchestrator) Generate(ctx context.Context, req Request) (*entity.GenerationResult, error) {
	start := time.Now()

	input := strings.TrimSpace(req.Input)
	if input == "" {
		return nil, ErrEmptyInput
	}

	tpl, matched, err := o.resolveTemplate(req.TemplateID, input)
	if err != nil {
		return nil, err
	}

	mode := req.Mode
	if mode == "" {
		mode = o.opts.DefaultMode
	}
	params := o.opts.DefaultParams
	if req.Params != nil {
		params = req.Params.Clamped()
	}

	id := uuid.NewString()
	ctx = logger.WithContext(ctx, logger.GenerationIDKey, id)
	ctx = logger.WithContext(ctx, logger.TemplateIDKey, tpl.ID)
	ctx, span := tracer.Start(ctx, "generation.generate")
	defer span.End()
	span.SetAttributes(
		attribute.String("generation.id", id),
		attribute.String("generation.template_id", tpl.ID),
		attribute.String("generation.mode", string(mode)),
		attribute.Bool("generation.matched", matched),
	)

	result := &entity.GenerationResult{
		ID:           id,
		TemplateID:   tpl.ID,
		TemplateName: tpl.Name,
		Matched:      matched,
		Mode:         mode,
	}
	if matched {
		metrics.TemplateMatchTotal.WithLabelValues(tpl.ID).Inc()
	}
	logger.Info(ctx, "generation started", "mode", string(mode), "matched", matched, "input_len", len([]rune(input)))

	msgs, err := o.builder.Build(ctx, tpl, input, params, mode)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, fmt.Errorf("build prompt: %w", err)
	}

	if !o.opts.RemoteEnabled || o.remote == nil {
		if err := ctx.Err(); err != nil {
			return nil, o.cancelled(ctx, result, start, cancelledFailure(0, err))
		}
		return o.fallback(ctx, result, tpl, input, params, start, FallbackCauseRemoteDisabled, "远程生成未启用，已使用本地模板生成"), nil
	}

	remoteRes, err := o.remote.Generate(ctx, msgs, RemoteOptions{
		Mode:    mode,
		Params:  params,
		Timeout: o.timeoutFor(mode, req.Timeout),
		Retries: o.retriesFor(req.Retries),
	})
	if err == nil {
		result.Content = remoteRes.Content
		result.Usage = remoteRes.Usage
		result.Provenance = entity.ProvenanceRemote
		result.Attempts = remoteRes.Attempts
		result.Duration = time.Since(start)
		o.observe(result, "success")
		logger.Info(ctx, "generation completed",
			"provenance", string(result.Provenance),
			"attempts", result.Attempts,
			"duration_ms", result.Duration.Milliseconds(),
		)
		return result, nil
	}

	failure, ok := AsFailure(err)
	if !ok {
		failure = newFailure(err, 0)
	}
	if failure.Cause != CauseCancelled && ctx.Err() != nil {
		failure = cancelledFailure(failure.Attempts, ctx.Err())
	}
	if failure.Cause == CauseCancelled {
		return nil, o.cancelled(ctx, result, start, failure)
	}

	result.Attempts = failure.Attempts
	logger.Warn(ctx, "remote generation failed, rendering locally",
		"cause", string(failure.Cause),
		"status", failure.StatusCode,
		"attempts", failure.Attempts,
		"error", failure.Message,
	)
	span.SetAttributes(attribute.String("generation.fallback_cause", string(failure.Cause)))
	return o.fallback(ctx, result, tpl, input, params, start, string(failure.Cause), failure.Hint), nil
}

func (o *Orchestrator) resolveTemplate(id, input string) (entity.Template, bool, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return o.matcher.Match(input), true, nil
	}
	tpl, ok := o.catalog.FindByID(id)
	if !ok {
		return entity.Template{}, false, fmt.Errorf("%w: %s", ErrTemplateNotFound, id)
	}
	return tpl, false, nil
}

func (o *Orchestrator) fallback(ctx context.Context, result *entity.GenerationResult, tpl entity.Template, input string, params entity.GenerationParams, start time.Time, cause, hint string) *entity.GenerationResult {
	result.Content = RenderLocally(tpl, input, params)
	result.Provenance = entity.ProvenanceLocal
	result.FallbackCause = cause
	result.FallbackHint = hint
	result.Duration = time.Since(start)

	metrics.FallbackRenderTotal.WithLabelValues(tpl.ID, cause).Inc()
	o.observe(result, "success")
	logger.Info(ctx, "generation completed",
		"provenance", string(result.Provenance),
		"fallback_cause", cause,
		"duration_ms", result.Duration.Milliseconds(),
	)
	return result
}

func (o *Orchestrator) cancelled(ctx context.Context, result *entity.GenerationResult, start time.Time, f *Failure) error {
	result.Duration = time.Since(start)
	metrics.GenerationTotal.WithLabelValues(string(result.Mode), "none", "cancelled").Inc()
	logger.Info(ctx, "generation cancelled", "attempts", f.Attempts, "duration_ms", result.Duration.Milliseconds())
	return f
}

func (o *Orchestrator) observe(result *entity.GenerationResult, status string) {
	metrics.GenerationTotal.WithLabelValues(string(result.Mode), string(result.Provenance), status).Inc()
	metrics.GenerationDuration.WithLabelValues(string(result.Mode), string(result.Provenance)).Observe(result.Duration.Seconds())
}

// timeoutFor 请求指定的超时优先，且不超过 MaxTimeout
func (o *Orchestrator) timeoutFor(mode entity.GenerationMode, requested time.Duration) time.Duration {
	timeout := o.opts.StandardTimeout
	if mode.IsFast() {
		timeout = o.opts.FastTimeout
	}
	if requested > 0 {
		timeout = requested
	}
	if o.opts.MaxTimeout > 0 && timeout > o.opts.MaxTimeout {
		timeout = o.opts.MaxTimeout
	}
	return timeout
}

func (o *Orchestrator) retriesFor(requested *int) int {
	retries := o.opts.Retries
	if requested != nil {
		retries = *requested
	}
	if retries < 0 {
		retries = 0
	}
	if o.opts.MaxRetries > 0 && retries > o.opts.MaxRetries {
		retries = o.opts.MaxRetries
	}
	return retries
}

// IsCancelled 判断错误是否为取消
func IsCancelled(err error) bool {
	return errors.Is(err, ErrCancelled)
}
