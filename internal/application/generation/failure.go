package generation

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"regexp"
	"strconv"
	"strings"
	"syscall"
)

var (
	// ErrCancelled 调用方取消了生成
	ErrCancelled = errors.New("generation cancelled")

	// ErrTemplateNotFound 指定的模板不存在
	ErrTemplateNotFound = errors.New("template not found")

	// ErrEmptyInput 需求描述为空
	ErrEmptyInput = errors.New("input is empty")

	errEmptyResponse  = errors.New("empty response content")
	errAttemptTimeout = errors.New("request timed out")
)

// Cause 远程生成失败的分类
type Cause string

const (
	CauseUnauthorized       Cause = "unauthorized"
	CauseRateLimited        Cause = "rate_limited"
	CauseForbidden          Cause = "forbidden"
	CauseNetworkUnreachable Cause = "network_unreachable"
	CauseCancelled          Cause = "cancelled"
	CauseUnknown            Cause = "unknown"
)

var causeHints = map[Cause]string{
	CauseUnauthorized:       "API 密钥无效或已过期，请检查 MOONSHOT_API_KEY 配置",
	CauseRateLimited:        "API 调用频率超限，请稍后重试或检查账户配额",
	CauseForbidden:          "API 访问被拒绝，请检查账户权限和余额",
	CauseNetworkUnreachable: "网络连接失败，请检查网络、防火墙设置以及代理地址是否可达",
	CauseCancelled:          "生成已被取消",
	CauseUnknown:            "远程调用失败，已自动切换到本地模板生成",
}

// Hint 返回该失败分类的处理建议
func (c Cause) Hint() string {
	if h, ok := causeHints[c]; ok {
		return h
	}
	return causeHints[CauseUnknown]
}

// Failure 远程生成的最终失败
type Failure struct {
	Cause      Cause
	StatusCode int
	Message    string
	Hint       string
	Attempts   int
	Err        error
}

func (f *Failure) Error() string {
	if f.StatusCode > 0 {
		return fmt.Sprintf("remote generation failed (%s, status %d) after %d attempt(s): %s", f.Cause, f.StatusCode, f.Attempts, f.Message)
	}
	return fmt.Sprintf("remote generation failed (%s) after %d attempt(s): %s", f.Cause, f.Attempts, f.Message)
}

func (f *Failure) Unwrap() error {
	return f.Err
}

// Is 使 errors.Is(err, ErrCancelled) 对取消类失败成立
func (f *Failure) Is(target error) bool {
	return target == ErrCancelled && f.Cause == CauseCancelled
}

func newFailure(err error, attempts int) *Failure {
	cause, status := classify(err)
	msg := ""
	if err != nil {
		msg = err.Error()
	}
	return &Failure{
		Cause:      cause,
		StatusCode: status,
		Message:    msg,
		Hint:       cause.Hint(),
		Attempts:   attempts,
		Err:        err,
	}
}

func cancelledFailure(attempts int, err error) *Failure {
	if err == nil {
		err = context.Canceled
	}
	return &Failure{
		Cause:    CauseCancelled,
		Message:  err.Error(),
		Hint:     CauseCancelled.Hint(),
		Attempts: attempts,
		Err:      err,
	}
}

// AsFailure 提取 *Failure
func AsFailure(err error) (*Failure, bool) {
	var f *Failure
	if errors.As(err, &f) {
		return f, true
	}
	return nil, false
}

var (
	statusCodePattern = regexp.MustCompile(`status code: (\d{3})`)
	bareStatusPattern = regexp.MustCompile(`\b(401|403|429)\b`)
)

var networkMessages = []string{
	"connection refused",
	"no such host",
	"network is unreachable",
	"connection reset",
	"no route to host",
	"failed to fetch",
}

// classify 将单次尝试的错误归类；父 context 的取消由调用方先行判断
func classify(err error) (Cause, int) {
	if err == nil {
		return CauseUnknown, 0
	}

	status := statusFromError(err)
	switch status {
	case http.StatusUnauthorized:
		return CauseUnauthorized, status
	case http.StatusForbidden:
		return CauseForbidden, status
	case http.StatusTooManyRequests:
		return CauseRateLimited, status
	}

	if isNetworkError(err) {
		return CauseNetworkUnreachable, status
	}
	return CauseUnknown, status
}

func statusFromError(err error) int {
	msg := err.Error()
	if m := statusCodePattern.FindStringSubmatch(msg); m != nil {
		if code, convErr := strconv.Atoi(m[1]); convErr == nil {
			return code
		}
	}
	if m := bareStatusPattern.FindStringSubmatch(msg); m != nil {
		code, _ := strconv.Atoi(m[1])
		return code
	}
	return 0
}

func isNetworkError(err error) bool {
	if errors.Is(err, errAttemptTimeout) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	if errors.Is(err, syscall.ECONNREFUSED) || errors.Is(err, syscall.ENETUNREACH) || errors.Is(err, syscall.EHOSTUNREACH) {
		return true
	}
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return true
	}
	var opErr *net.OpError
	if errors.As(err, &opErr) && !opErr.Timeout() {
		return true
	}

	msg := strings.ToLower(err.Error())
	for _, s := range networkMessages {
		if strings.Contains(msg, s) {
			return true
		}
	}
	return false
}
