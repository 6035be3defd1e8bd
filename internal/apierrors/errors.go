// Package apierrors provides shared error types for the Swikly client.
package apierrors

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
)

// Sentinel errors for errors.Is() checks
var (
	// ErrAPI matches every error returned for a non-2xx response.
	ErrAPI = errors.New("swikly API error")

	// ErrUnauthorized is returned for 401 and 403 responses.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrNotFound is returned for 404 responses.
	ErrNotFound = errors.New("resource not found")

	// ErrValidation is returned for 422 responses.
	ErrValidation = errors.New("validation failed")

	// ErrRateLimited is returned when the API rate limit is exceeded.
	ErrRateLimited = errors.New("rate limit exceeded")

	// ErrInvalidEnvironment is returned when the environment tag is not
	// production, sandbox or an absolute URL.
	ErrInvalidEnvironment = errors.New("environment must be 'production', 'sandbox', or a base URL")

	// ErrInvalidConfig is returned for any other invalid client configuration.
	ErrInvalidConfig = errors.New("invalid client configuration")
)

// Kind classifies an API error by HTTP status.
type Kind int

const (
	// KindGeneric covers every non-2xx status without a dedicated kind.
	KindGeneric Kind = iota
	// KindAuth covers 401 and 403.
	KindAuth
	// KindNotFound covers 404.
	KindNotFound
	// KindValidation covers 422.
	KindValidation
	// KindRateLimit covers 429.
	KindRateLimit
)

func (k Kind) String() string {
	switch k {
	case KindAuth:
		return "auth"
	case KindNotFound:
		return "not_found"
	case KindValidation:
		return "validation"
	case KindRateLimit:
		return "rate_limit"
	default:
		return "generic"
	}
}

// KindForStatus maps an HTTP status code to its error kind.
// It must only be called for statuses outside [200,300).
func KindForStatus(status int) Kind {
	switch status {
	case 401, 403:
		return KindAuth
	case 404:
		return KindNotFound
	case 422:
		return KindValidation
	case 429:
		return KindRateLimit
	default:
		return KindGeneric
	}
}

// APIError represents an HTTP error from the Swikly API.
type APIError struct {
	Kind       Kind
	StatusCode int
	Message    string
	// Code is the machine readable error code, e.g. "ERR_PARAMS".
	Code string
	// Context and Errors are passed through verbatim from the response body.
	Context json.RawMessage
	Errors  json.RawMessage
	// RequestID is taken from the X-Request-Id or Request-Id header.
	RequestID string
	// Raw is the decoded response body, or the body text when it is not JSON.
	Raw any

	// RetryAfter is only meaningful when HasRetryAfter is set, which
	// happens for 429 responses carrying a valid Retry-After header.
	RetryAfter    time.Duration
	HasRetryAfter bool
}

func (e *APIError) Error() string {
	parts := []string{fmt.Sprintf("Swikly API error %d: %s", e.StatusCode, e.Message)}
	if e.Code != "" {
		parts = append(parts, "code="+e.Code)
	}
	if e.RequestID != "" {
		parts = append(parts, "request_id="+e.RequestID)
	}
	return strings.Join(parts, " | ")
}

// Is implements errors.Is for sentinel error matching.
func (e *APIError) Is(target error) bool {
	if target == ErrAPI {
		return true
	}
	switch e.Kind {
	case KindAuth:
		return target == ErrUnauthorized
	case KindNotFound:
		return target == ErrNotFound
	case KindValidation:
		return target == ErrValidation
	case KindRateLimit:
		return target == ErrRateLimited
	}
	return false
}

// DecodeErrors unmarshals the field-level errors into v.
// It is a no-op when the response carried no errors.
func (e *APIError) DecodeErrors(v any) error {
	if len(e.Errors) == 0 || string(e.Errors) == "null" {
		return nil
	}
	if err := json.Unmarshal(e.Errors, v); err != nil {
		return fmt.Errorf("decode field errors: %w", err)
	}
	return nil
}

// ConfigError reports an invalid client configuration. It is returned before
// any network activity.
type ConfigError struct {
	Field string
	Value string
	Err   error
}

func (e *ConfigError) Error() string {
	if e.Value != "" {
		return fmt.Sprintf("invalid %s %q: %v", e.Field, e.Value, e.Err)
	}
	return fmt.Sprintf("invalid %s: %v", e.Field, e.Err)
}

// Unwrap returns the underlying error.
func (e *ConfigError) Unwrap() error {
	return e.Err
}

// Is reports every ConfigError as ErrInvalidConfig.
func (e *ConfigError) Is(target error) bool {
	return target == ErrInvalidConfig
}
