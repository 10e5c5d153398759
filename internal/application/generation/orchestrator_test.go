package generation

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"prompt-studio-api/internal/application/catalog"
	"prompt-studio-api/internal/application/matcher"
	"prompt-studio-api/internal/config"
	"prompt-studio-api/internal/domain/entity"
	"prompt-studio-api/internal/infrastructure/llm"
	"prompt-studio-api/internal/workflow/prompt"
)

const roleDesignInput = "设计一位专业的高考志愿规划师"

func testOptions() Options {
	return Options{
		RemoteEnabled:   true,
		DefaultMode:     entity.GenerationModeStandard,
		Retries:         1,
		MaxRetries:      5,
		FastTimeout:     time.Second,
		StandardTimeout: 2 * time.Second,
		MaxTimeout:      5 * time.Second,
		DefaultParams:   entity.DefaultGenerationParams(),
	}
}

func newTestOrchestrator(remote Remote, opts Options) *Orchestrator {
	return NewOrchestrator(catalog.Default(), matcher.NewDefault(), prompt.NewBuilder(nil), remote, opts)
}

func failingRemote(err error) *fakeRemote {
	return &fakeRemote{fn: func(context.Context) (*RemoteResult, error) {
		return nil, err
	}}
}

func TestGenerateRejectsEmptyInput(t *testing.T) {
	remote := failingRemote(errUnauthorized)
	o := newTestOrchestrator(remote, testOptions())

	for _, input := range []string{"", "   ", "\n\t"} {
		_, err := o.Generate(context.Background(), Request{Input: input})
		assert.ErrorIs(t, err, ErrEmptyInput)
	}
	assert.Zero(t, remote.Calls())
}

func TestGenerateUnknownTemplate(t *testing.T) {
	remote := failingRemote(errUnauthorized)
	o := newTestOrchestrator(remote, testOptions())

	_, err := o.Generate(context.Background(), Request{Input: "hello", TemplateID: "nope"})
	assert.ErrorIs(t, err, ErrTemplateNotFound)
	assert.Zero(t, remote.Calls())
}

func TestGenerateRemoteSuccess(t *testing.T) {
	remote := &fakeRemote{fn: func(context.Context) (*RemoteResult, error) {
		return &RemoteResult{Content: "# 远程结果", Attempts: 1, Usage: &entity.TokenUsage{TotalTokens: 10}}, nil
	}}
	o := newTestOrchestrator(remote, testOptions())

	res, err := o.Generate(context.Background(), Request{Input: "分析一次线上故障", TemplateID: "star"})
	require.NoError(t, err)
	assert.Equal(t, entity.ProvenanceRemote, res.Provenance)
	assert.Equal(t, "# 远程结果", res.Content)
	assert.Equal(t, "star", res.TemplateID)
	assert.False(t, res.Matched)
	assert.Equal(t, 1, res.Attempts)
	assert.Empty(t, res.FallbackCause)
	assert.NotEmpty(t, res.ID)
	require.NotNil(t, res.Usage)
	assert.Equal(t, 10, res.Usage.TotalTokens)
}

func TestGenerateFallsBackOnFailure(t *testing.T) {
	remote := failingRemote(newFailure(errUnauthorized, 2))
	o := newTestOrchestrator(remote, testOptions())
	params := entity.DefaultGenerationParams()

	res, err := o.Generate(context.Background(), Request{Input: "分析一次线上故障", TemplateID: "star", Params: &params})
	require.NoError(t, err)
	assert.Equal(t, entity.ProvenanceLocal, res.Provenance)
	assert.Equal(t, string(CauseUnauthorized), res.FallbackCause)
	assert.Equal(t, CauseUnauthorized.Hint(), res.FallbackHint)
	assert.Equal(t, 2, res.Attempts)

	tpl, _ := catalog.Default().FindByID("star")
	assert.Equal(t, RenderLocally(tpl, "分析一次线上故障", params), res.Content)
}

func TestGenerateRoleDesignFallsBackToThreePart(t *testing.T) {
	remote := failingRemote(newFailure(errUnauthorized, 2))
	o := newTestOrchestrator(remote, testOptions())

	res, err := o.Generate(context.Background(), Request{Input: roleDesignInput})
	require.NoError(t, err)
	assert.Equal(t, catalog.DefaultTemplateID, res.TemplateID)
	assert.True(t, res.Matched)
	assert.Equal(t, entity.ProvenanceLocal, res.Provenance)
	assert.Contains(t, res.Content, "## 任务目标\n"+roleDesignInput)
	assert.Contains(t, res.Content, "资深专业的")
}

func TestGenerateCancelledHasNoFallback(t *testing.T) {
	remote := &fakeRemote{fn: func(ctx context.Context) (*RemoteResult, error) {
		<-ctx.Done()
		return nil, cancelledFailure(1, ctx.Err())
	}}
	o := newTestOrchestrator(remote, testOptions())

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()

	res, err := o.Generate(ctx, Request{Input: roleDesignInput})
	assert.Nil(t, res)
	assert.ErrorIs(t, err, ErrCancelled)
}

func TestGenerateCancelledContextWinsOverFailureCause(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	remote := &fakeRemote{fn: func(context.Context) (*RemoteResult, error) {
		cancel()
		return nil, newFailure(errUnauthorized, 1)
	}}
	o := newTestOrchestrator(remote, testOptions())

	res, err := o.Generate(ctx, Request{Input: roleDesignInput})
	assert.Nil(t, res)
	assert.ErrorIs(t, err, ErrCancelled)
}

func TestGenerateRemoteDisabled(t *testing.T) {
	remote := failingRemote(errUnauthorized)
	opts := testOptions()
	opts.RemoteEnabled = false
	o := newTestOrchestrator(remote, opts)

	res, err := o.Generate(context.Background(), Request{Input: roleDesignInput})
	require.NoError(t, err)
	assert.Equal(t, entity.ProvenanceLocal, res.Provenance)
	assert.Equal(t, FallbackCauseRemoteDisabled, res.FallbackCause)
	assert.Zero(t, remote.Calls())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = o.Generate(ctx, Request{Input: roleDesignInput})
	assert.ErrorIs(t, err, ErrCancelled)
}

func TestGenerateEveryTemplateSurvivesRemoteFailure(t *testing.T) {
	o := newTestOrchestrator(failingRemote(errors.New("boom")), testOptions())

	for _, tpl := range catalog.Default().List() {
		t.Run(tpl.ID, func(t *testing.T) {
			res, err := o.Generate(context.Background(), Request{Input: "整理一份季度工作计划", TemplateID: tpl.ID})
			require.NoError(t, err)
			assert.Equal(t, entity.ProvenanceLocal, res.Provenance)
			assert.NotEmpty(t, strings.TrimSpace(res.Content))
			assert.Contains(t, res.Content, "整理一份季度工作计划")
		})
	}
}

func TestGenerateResolvesTimeoutsAndRetries(t *testing.T) {
	remote := &fakeRemote{fn: func(context.Context) (*RemoteResult, error) {
		return &RemoteResult{Content: "ok", Attempts: 1}, nil
	}}
	o := newTestOrchestrator(remote, testOptions())
	ctx := context.Background()

	_, err := o.Generate(ctx, Request{Input: "x", Mode: entity.GenerationModeFast})
	require.NoError(t, err)
	assert.Equal(t, time.Second, remote.opts.Timeout)
	assert.Equal(t, 1, remote.opts.Retries)
	assert.Equal(t, entity.GenerationModeFast, remote.opts.Mode)
	assert.Equal(t, entity.DefaultGenerationParams(), remote.opts.Params)

	retries := 99
	_, err = o.Generate(ctx, Request{Input: "x", Timeout: time.Hour, Retries: &retries})
	require.NoError(t, err)
	assert.Equal(t, 5*time.Second, remote.opts.Timeout)
	assert.Equal(t, 5, remote.opts.Retries)
	assert.Equal(t, entity.GenerationModeStandard, remote.opts.Mode)

	negative := -1
	params := entity.GenerationParams{Creativity: 20, Professionalism: -4, Detail: 3}
	_, err = o.Generate(ctx, Request{Input: "x", Retries: &negative, Params: &params})
	require.NoError(t, err)
	assert.Equal(t, 0, remote.opts.Retries)
	assert.Equal(t, 10, remote.opts.Params.Creativity)
	assert.Equal(t, 0, remote.opts.Params.Professionalism)
}

func TestGenerateFastModeSendsShortPrompt(t *testing.T) {
	remote := &fakeRemote{fn: func(context.Context) (*RemoteResult, error) {
		return &RemoteResult{Content: "ok", Attempts: 1}, nil
	}}
	o := newTestOrchestrator(remote, testOptions())

	_, err := o.Generate(context.Background(), Request{Input: "x", TemplateID: "star", Mode: entity.GenerationModeFast})
	require.NoError(t, err)
	fast := remote.msgs

	_, err = o.Generate(context.Background(), Request{Input: "x", TemplateID: "star"})
	require.NoError(t, err)
	assert.Less(t, len(fast.System), len(remote.msgs.System))
}

func TestOrchestratorMatch(t *testing.T) {
	o := newTestOrchestrator(nil, testOptions())
	assert.Equal(t, "smart", o.Match("目标 kpi").ID)
	assert.Equal(t, catalog.DefaultTemplateID, o.Match(roleDesignInput).ID)
}

// 代理返回 401 时：retries=1 恰好请求两次，最终返回本地渲染结果
func TestGenerateThroughUnauthorizedProxy(t *testing.T) {
	var hits atomic.Int32
	proxy := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]any{
				"message": "Invalid Authentication",
				"type":    "invalid_authentication_error",
			},
		})
	}))
	defer proxy.Close()

	cfg := &config.Config{LLM: config.LLMConfig{
		DefaultProvider: "moonshot",
		Providers: map[string]config.ProviderConfig{
			"moonshot": {Model: "kimi-k2-0711-preview", Timeout: 5 * time.Second},
		},
		Proxy: config.ProxyConfig{URL: proxy.URL},
	}}
	remote := NewRemoteClient(llm.NewEinoFactory(cfg), time.Millisecond)
	o := newTestOrchestrator(remote, testOptions())

	res, err := o.Generate(context.Background(), Request{Input: roleDesignInput})
	require.NoError(t, err)
	assert.Equal(t, int32(2), hits.Load())
	assert.Equal(t, entity.ProvenanceLocal, res.Provenance)
	assert.Equal(t, string(CauseUnauthorized), res.FallbackCause)
	assert.Equal(t, 2, res.Attempts)
	assert.Contains(t, res.Content, "## 任务目标\n"+roleDesignInput)
}
