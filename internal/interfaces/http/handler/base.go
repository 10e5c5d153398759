// Package handler 提供 HTTP 请求处理器
package handler

import (
	stderrors "errors"

	"github.com/gin-gonic/gin"

	"prompt-studio-api/internal/application/generation"
	"prompt-studio-api/internal/interfaces/http/dto"
	"prompt-studio-api/pkg/errors"
	"prompt-studio-api/pkg/logger"
)

// toAppError 将领域错误映射为带错误码的应用错误
func toAppError(err error) *errors.AppError {
	switch {
	case stderrors.Is(err, generation.ErrEmptyInput):
		return errors.Wrap(err, errors.CodeInvalidParam, "input is required")
	case stderrors.Is(err, generation.ErrTemplateNotFound):
		return errors.Wrap(err, errors.CodeTemplateNotFound, "template not found")
	case generation.IsCancelled(err):
		return errors.Wrap(err, errors.CodeGenerationCancelled, "prompt generation cancelled")
	case errors.IsAppError(err):
		return errors.AsAppError(err)
	default:
		return errors.Wrap(err, errors.CodeGenerationFailed, "prompt generation failed")
	}
}

// respondError 输出统一的错误响应
func respondError(c *gin.Context, err error) {
	appErr := toAppError(err)
	detail := appErr.Detail
	if detail == "" && appErr.Err != nil {
		detail = appErr.Err.Error()
	}
	if appErr.HTTPStatus >= 500 {
		logger.Error(c.Request.Context(), "request failed", err, "code", string(appErr.Code))
	}
	dto.ErrorWithDetail(c, appErr.HTTPStatus, appErr.Message, &dto.ErrorDetail{
		ErrorCode: string(appErr.Code),
		Details:   detail,
	})
}
