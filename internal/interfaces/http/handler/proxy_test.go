package handler

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"prompt-studio-api/internal/config"
	"prompt-studio-api/internal/interfaces/http/dto"
)

const proxyPath = "/api/moonshot/chat/completions"

const completionBody = `{"id":"cmpl-1","object":"chat.completion","choices":[{"index":0,"message":{"role":"assistant","content":"ok"},"finish_reason":"stop"}]}`

type upstreamCall struct {
	path          string
	authorization string
	body          map[string]any
}

// fakeProvider 记录收到的请求并按 status/body 响应
func fakeProvider(t *testing.T, status int, body string) (*httptest.Server, *atomic.Int32, chan upstreamCall) {
	t.Helper()
	hits := &atomic.Int32{}
	calls := make(chan upstreamCall, 8)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		raw, _ := io.ReadAll(r.Body)
		call := upstreamCall{path: r.URL.Path, authorization: r.Header.Get("Authorization")}
		_ = json.Unmarshal(raw, &call.body)
		calls <- call

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(srv.Close)
	return srv, hits, calls
}

func newProxyEngine(baseURL, apiKey string) *gin.Engine {
	cfg := &config.Config{LLM: config.LLMConfig{
		DefaultProvider: "moonshot",
		Providers: map[string]config.ProviderConfig{
			"moonshot": {APIKey: apiKey, BaseURL: baseURL, Model: "test-model", Timeout: 2 * time.Second},
		},
	}}
	h := NewProxyHandler(cfg)
	r := gin.New()
	r.Any(proxyPath, h.ChatCompletions)
	return r
}

func doProxy(r http.Handler, method, body, authorization string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, proxyPath, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeProxyError(t *testing.T, w *httptest.ResponseRecorder) dto.ProxyError {
	t.Helper()
	var out dto.ProxyError
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

const chatRequest = `{"model":"test-model","messages":[{"role":"user","content":"你好"}],"temperature":0.3,"max_tokens":10,"top_p":1}`

func TestProxyOptions(t *testing.T) {
	provider, hits, _ := fakeProvider(t, http.StatusOK, completionBody)
	r := newProxyEngine(provider.URL, "server-key")

	w := doProxy(r, http.MethodOptions, "", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), "POST")
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Headers"), "Authorization")
	assert.Empty(t, w.Body.String())
	assert.Zero(t, hits.Load())
}

func TestProxyRejectsNonPost(t *testing.T) {
	r := newProxyEngine("http://unused", "server-key")

	for _, method := range []string{http.MethodGet, http.MethodPut, http.MethodDelete} {
		w := doProxy(r, method, "", "")
		assert.Equal(t, http.StatusMethodNotAllowed, w.Code, method)
		assert.Equal(t, "Method not allowed", decodeProxyError(t, w).Error)
	}
}

func TestProxyForwardsWithServerKey(t *testing.T) {
	provider, hits, calls := fakeProvider(t, http.StatusOK, completionBody)
	r := newProxyEngine(provider.URL+"/", "server-key")

	w := doProxy(r, http.MethodPost, chatRequest, "Bearer client-key")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, completionBody, w.Body.String())
	assert.Equal(t, int32(1), hits.Load())

	call := <-calls
	assert.Equal(t, "/chat/completions", call.path)
	assert.Equal(t, "Bearer server-key", call.authorization)
	assert.Equal(t, "test-model", call.body["model"])
	assert.EqualValues(t, 10, call.body["max_tokens"])
	assert.NotContains(t, call.body, "frequency_penalty")
}

func TestProxyUsesInboundKeyWhenUnconfigured(t *testing.T) {
	provider, _, calls := fakeProvider(t, http.StatusOK, completionBody)
	r := newProxyEngine(provider.URL, "")

	w := doProxy(r, http.MethodPost, chatRequest, "Bearer client-key")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Bearer client-key", (<-calls).authorization)
}

func TestProxyWithoutAnyKey(t *testing.T) {
	provider, hits, _ := fakeProvider(t, http.StatusOK, completionBody)
	r := newProxyEngine(provider.URL, "")

	for _, auth := range []string{"", "Bearer ", "Bearer"} {
		w := doProxy(r, http.MethodPost, chatRequest, auth)
		assert.Equal(t, http.StatusUnauthorized, w.Code, auth)
		perr := decodeProxyError(t, w)
		assert.NotEmpty(t, perr.Error)
		assert.NotEmpty(t, perr.Details)
	}
	assert.Zero(t, hits.Load())
}

func TestProxyPassesProviderError(t *testing.T) {
	provider, _, _ := fakeProvider(t, http.StatusTooManyRequests, `{"error":{"message":"rate limit reached"}}`)
	r := newProxyEngine(provider.URL, "server-key")

	w := doProxy(r, http.MethodPost, chatRequest, "")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	perr := decodeProxyError(t, w)
	assert.Contains(t, perr.Error, "429")
	assert.Contains(t, perr.Details, "rate limit reached")
}

func TestProxyTransportError(t *testing.T) {
	provider := httptest.NewServer(http.NotFoundHandler())
	url := provider.URL
	provider.Close()
	r := newProxyEngine(url, "server-key")

	w := doProxy(r, http.MethodPost, chatRequest, "")
	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.NotEmpty(t, decodeProxyError(t, w).Details)
}

func TestProxyInvalidBody(t *testing.T) {
	provider, hits, _ := fakeProvider(t, http.StatusOK, completionBody)
	r := newProxyEngine(provider.URL, "server-key")

	w := doProxy(r, http.MethodPost, `{"messages":`, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Zero(t, hits.Load())
}

func TestMaskAPIKey(t *testing.T) {
	assert.Equal(t, "", MaskAPIKey(""))
	assert.Equal(t, "******", MaskAPIKey("abcdef"))
	assert.Equal(t, "sk-a*****wxyz", MaskAPIKey("sk-abcdefwxyz"))
}
