// Package api provides HTTP client functionality for communicating with the
// Swikly API. It handles authentication, request/response serialization,
// retries of transient failures and classification of error responses.
//
// # Authentication
//
// Every attempt carries Accept: application/json, the optional User-Agent
// and default headers, then the credentials:
//
//   - Authorization: Bearer <token> when a token is configured.
//   - API_KEY and API_SECRET when both legacy values are configured.
//
// Both sets are sent together when both are configured. Per-call headers
// are applied last and win on conflict.
//
// # Retry Behavior
//
// One retry budget, [Config.MaxRetries], is shared by all triggers:
//
//   - 429 Too Many Requests with a Retry-After header in whole seconds.
//     The client sleeps exactly that long before retrying. Without the
//     header the 429 is returned at once.
//   - Any 5xx status, retried immediately.
//   - Transport failures (timeouts, connection errors), retried
//     immediately and returned unchanged once the budget is spent.
//
// Each attempt gets its own [Config.Timeout]; there is no deadline across
// the whole sequence beyond the caller's context.
//
// # Error Handling
//
// Non-2xx responses become *apierrors.APIError values whose Kind follows the
// status code. Use errors.Is with the apierrors sentinels:
//
//	if errors.Is(err, apierrors.ErrNotFound) {
//	    // Handle missing resource
//	}
//
// # Thread Safety
//
// The [Client] type is safe for concurrent use. Multiple goroutines may call
// methods on a single Client simultaneously.
package api
