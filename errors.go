package swikly

import (
	"errors"

	"github.com/swikly/client-go/internal/apierrors"
	"github.com/swikly/client-go/webhook"
)

// Sentinel errors for errors.Is() checks
var (
	// ErrAPI matches every error returned for a non-2xx response.
	ErrAPI = apierrors.ErrAPI

	// ErrUnauthorized is returned for 401 and 403 responses.
	ErrUnauthorized = apierrors.ErrUnauthorized

	// ErrNotFound is returned for 404 responses.
	ErrNotFound = apierrors.ErrNotFound

	// ErrValidation is returned for 422 responses.
	ErrValidation = apierrors.ErrValidation

	// ErrRateLimited is returned when the API rate limit is exceeded and
	// retries did not help.
	ErrRateLimited = apierrors.ErrRateLimited

	// ErrInvalidEnvironment is returned by New for an unknown environment tag.
	ErrInvalidEnvironment = apierrors.ErrInvalidEnvironment

	// ErrInvalidConfig matches every *ConfigError.
	ErrInvalidConfig = apierrors.ErrInvalidConfig

	// ErrMissingCredentials is returned by New when neither a token nor a
	// complete legacy key pair is configured.
	ErrMissingCredentials = errors.New("a token or legacy API key and secret are required")

	// ErrInvalidResponse is returned when a 2xx body cannot be decoded.
	ErrInvalidResponse = errors.New("invalid response body")

	// ErrInvalidReclaim is returned when a reclaim does not match any of
	// its status variants.
	ErrInvalidReclaim = errors.New("invalid reclaim")

	// ErrInvalidSignatureHeader is returned for malformed webhook
	// signature headers.
	ErrInvalidSignatureHeader = webhook.ErrInvalidSignatureHeader
)

// APIError represents an HTTP error from the Swikly API. Use errors.Is with
// the sentinels above to branch on its kind.
type APIError = apierrors.APIError

// ErrorKind classifies an APIError by status code.
type ErrorKind = apierrors.Kind

// Error kinds.
const (
	KindGeneric    = apierrors.KindGeneric
	KindAuth       = apierrors.KindAuth
	KindNotFound   = apierrors.KindNotFound
	KindValidation = apierrors.KindValidation
	KindRateLimit  = apierrors.KindRateLimit
)

// ConfigError reports an invalid client configuration.
type ConfigError = apierrors.ConfigError
