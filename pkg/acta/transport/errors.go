package transport

import (
	"context"
	"errors"
	"fmt"
	"net/http"
)

// ErrorCategory classifies a failed ACTA API call.
//
// The client never retries; categories and the Retryable flag exist so
// callers can implement their own policy without parsing messages.
type ErrorCategory string

const (
	// ErrorTimeout indicates the caller's deadline expired or the API answered 408.
	ErrorTimeout ErrorCategory = "timeout"

	// ErrorCanceled indicates the caller canceled the request context.
	ErrorCanceled ErrorCategory = "canceled"

	// ErrorBadData indicates the API rejected the request payload (400, 422).
	ErrorBadData ErrorCategory = "bad_data"

	// ErrorAuthentication indicates a missing or invalid API key (401, 403).
	ErrorAuthentication ErrorCategory = "authentication"

	// ErrorUnavailable indicates the API or a network hop is unreachable.
	ErrorUnavailable ErrorCategory = "unavailable"

	// ErrorContractMismatch indicates a 2xx response whose body could not be decoded.
	ErrorContractMismatch ErrorCategory = "contract_mismatch"

	// ErrorNotFound indicates the requested record does not exist.
	ErrorNotFound ErrorCategory = "not_found"

	// ErrorRateLimited indicates too many requests.
	ErrorRateLimited ErrorCategory = "rate_limited"

	// ErrorRejected covers any other 4xx answer.
	ErrorRejected ErrorCategory = "rejected"

	// ErrorInternal covers 5xx answers and client-side failures.
	ErrorInternal ErrorCategory = "internal"
)

// Error is returned by every failed API call. StatusCode and Body are set
// whenever the API answered; they are zero for network failures.
type Error struct {
	Category   ErrorCategory
	Operation  string
	Method     string
	Path       string
	StatusCode int
	Body       []byte
	Message    string
	Underlying error
	Retryable  bool // set from Category (timeout, unavailable, rate-limited)
}

// Error implements the error interface.
func (e *Error) Error() string {
	msg := fmt.Sprintf("acta %s [%s]: %s", e.Operation, e.Category, e.Message)
	if len(e.Body) > 0 {
		msg += ": " + clip(string(e.Body))
	}
	if e.Underlying != nil {
		msg += ": " + e.Underlying.Error()
	}
	return msg
}

// Unwrap supports error unwrapping.
func (e *Error) Unwrap() error {
	return e.Underlying
}

// NewError creates a categorized error with automatic retry classification.
func NewError(category ErrorCategory, operation, message string, underlying error) *Error {
	return &Error{
		Category:   category,
		Operation:  operation,
		Message:    message,
		Underlying: underlying,
		Retryable:  isRetryableCategory(category),
	}
}

func isRetryableCategory(category ErrorCategory) bool {
	return category == ErrorTimeout ||
		category == ErrorUnavailable ||
		category == ErrorRateLimited
}

// IsRetryable reports whether err is a transient API failure.
func IsRetryable(err error) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Retryable
	}
	return false
}

// GetCategory extracts the error category, defaulting to ErrorInternal.
func GetCategory(err error) ErrorCategory {
	var e *Error
	if errors.As(err, &e) {
		return e.Category
	}
	return ErrorInternal
}

// StatusCode returns the HTTP status carried by err, or 0 when the API never
// answered.
func StatusCode(err error) int {
	var e *Error
	if errors.As(err, &e) {
		return e.StatusCode
	}
	return 0
}

// categorizeStatus maps a non-2xx status to a category.
func categorizeStatus(status int) ErrorCategory {
	switch {
	case status == http.StatusUnauthorized, status == http.StatusForbidden:
		return ErrorAuthentication
	case status == http.StatusNotFound:
		return ErrorNotFound
	case status == http.StatusTooManyRequests:
		return ErrorRateLimited
	case status == http.StatusRequestTimeout, status == http.StatusGatewayTimeout:
		return ErrorTimeout
	case status == http.StatusBadGateway, status == http.StatusServiceUnavailable:
		return ErrorUnavailable
	case status == http.StatusBadRequest, status == http.StatusUnprocessableEntity:
		return ErrorBadData
	case status >= 400 && status < 500:
		return ErrorRejected
	default:
		return ErrorInternal
	}
}

// categorizeDoError classifies a failure to obtain any response.
func categorizeDoError(ctx context.Context, err error) (ErrorCategory, string) {
	switch {
	case errors.Is(ctx.Err(), context.DeadlineExceeded), errors.Is(err, context.DeadlineExceeded):
		return ErrorTimeout, "request timeout"
	case errors.Is(ctx.Err(), context.Canceled), errors.Is(err, context.Canceled):
		return ErrorCanceled, "request canceled"
	default:
		return ErrorUnavailable, "failed to execute request"
	}
}

const clipLimit = 100

// clip bounds response bodies in messages and logs.
func clip(s string) string {
	if len(s) > clipLimit {
		return s[:clipLimit] + "...(clipped)"
	}
	return s
}
