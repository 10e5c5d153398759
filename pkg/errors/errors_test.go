package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCodeToHTTPStatus(t *testing.T) {
	cases := map[ErrorCode]int{
		CodeInvalidParam:        http.StatusBadRequest,
		CodeTemplateNotFound:    http.StatusNotFound,
		CodeGenerationCancelled: StatusClientClosedRequest,
		CodeLLMProviderError:    http.StatusBadGateway,
		CodeGenerationFailed:    http.StatusInternalServerError,
		CodeLLMCallFailed:       http.StatusInternalServerError,
	}
	for code, status := range cases {
		assert.Equal(t, status, New(code, "x").HTTPStatus, string(code))
	}
}

func TestWrapUnwrap(t *testing.T) {
	cause := stderrors.New("boom")
	err := Wrap(cause, CodeGenerationFailed, "prompt generation failed")

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "[4001] prompt generation failed: boom", err.Error())

	wrapped := fmt.Errorf("handler: %w", err)
	assert.True(t, IsAppError(wrapped))
	assert.Same(t, err, AsAppError(wrapped))
}

func TestAsAppErrorFallsBackToUnknown(t *testing.T) {
	appErr := AsAppError(stderrors.New("plain"))
	assert.Equal(t, CodeUnknown, appErr.Code)
	assert.Equal(t, http.StatusInternalServerError, appErr.HTTPStatus)
	assert.False(t, IsAppError(stderrors.New("plain")))
}

func TestWithDetail(t *testing.T) {
	err := New(CodeInvalidParam, "invalid category").WithDetail("unknown")
	assert.Equal(t, "unknown", err.Detail)
	assert.Equal(t, "[1001] invalid category", err.Error())
}
