package generation

import (
	"context"
	"errors"
	"sync"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"

	"prompt-studio-api/internal/domain/entity"
	"prompt-studio-api/internal/workflow/prompt"
)

type fakeChatModel struct {
	mu    sync.Mutex
	calls int
	fn    func(ctx context.Context, n int) (*schema.Message, error)
}

func (f *fakeChatModel) Generate(ctx context.Context, _ []*schema.Message, _ ...model.Option) (*schema.Message, error) {
	f.mu.Lock()
	f.calls++
	n := f.calls
	f.mu.Unlock()
	return f.fn(ctx, n)
}

func (f *fakeChatModel) Stream(context.Context, []*schema.Message, ...model.Option) (*schema.StreamReader[*schema.Message], error) {
	return nil, errors.New("stream not supported")
}

func (f *fakeChatModel) Calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

type fakeFactory struct {
	model    model.BaseChatModel
	err      error
	sampling entity.Sampling
}

func (f *fakeFactory) Get(_ context.Context, s entity.Sampling) (model.BaseChatModel, error) {
	f.sampling = s
	if f.err != nil {
		return nil, f.err
	}
	return f.model, nil
}

type fakeRemote struct {
	mu    sync.Mutex
	calls int
	opts  RemoteOptions
	msgs  prompt.Messages
	fn    func(ctx context.Context) (*RemoteResult, error)
}

func (f *fakeRemote) Generate(ctx context.Context, msgs prompt.Messages, opts RemoteOptions) (*RemoteResult, error) {
	f.mu.Lock()
	f.calls++
	f.opts = opts
	f.msgs = msgs
	f.mu.Unlock()
	return f.fn(ctx)
}

func (f *fakeRemote) Calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func reply(content string) *schema.Message {
	return &schema.Message{
		Role:    schema.Assistant,
		Content: content,
		ResponseMeta: &schema.ResponseMeta{
			Usage: &schema.TokenUsage{PromptTokens: 12, CompletionTokens: 30, TotalTokens: 42},
		},
	}
}

var errUnauthorized = errors.New("error, status code: 401, status: 401 Unauthorized, message: Invalid Authentication")
