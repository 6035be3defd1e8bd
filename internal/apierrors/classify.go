package apierrors

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// unknownErrorMessage is used when a JSON error body carries no message.
const unknownErrorMessage = "Unknown error"

// Classify maps a completed response to nil (2xx) or an *APIError.
// The classification is a total function of the status code; the body only
// contributes detail.
func Classify(status int, header http.Header, body []byte) error {
	if status >= 200 && status < 300 {
		return nil
	}

	apiErr := parseErrorBody(body)
	apiErr.Kind = KindForStatus(status)
	apiErr.StatusCode = status
	apiErr.RequestID = requestID(header)

	if apiErr.Kind == KindRateLimit {
		apiErr.RetryAfter, apiErr.HasRetryAfter = ParseRetryAfter(header)
	}

	return apiErr
}

// ParseRetryAfter reads the Retry-After header as a non-negative number of
// seconds. HTTP-date values and anything else are reported as absent.
func ParseRetryAfter(header http.Header) (time.Duration, bool) {
	raw := strings.TrimSpace(header.Get("Retry-After"))
	if raw == "" {
		return 0, false
	}
	seconds, err := strconv.Atoi(raw)
	if err != nil || seconds < 0 {
		return 0, false
	}
	return time.Duration(seconds) * time.Second, true
}

func requestID(header http.Header) string {
	if id := header.Get("X-Request-Id"); id != "" {
		return id
	}
	return header.Get("Request-Id")
}

// parseErrorBody extracts code, message, context and errors from a body such
// as {"code":"ERR_PARAMS","message":"...","errors":{...}}.
func parseErrorBody(body []byte) *APIError {
	var decoded any
	if err := json.Unmarshal(body, &decoded); err != nil {
		return &APIError{Message: string(body), Raw: string(body)}
	}

	apiErr := &APIError{Message: unknownErrorMessage, Raw: decoded}
	switch v := decoded.(type) {
	case string:
		apiErr.Message = v
	case map[string]any:
		var fields struct {
			Code    json.RawMessage `json:"code"`
			Message json.RawMessage `json:"message"`
			Context json.RawMessage `json:"context"`
			Errors  json.RawMessage `json:"errors"`
		}
		// Cannot fail: the body already decoded as an object.
		_ = json.Unmarshal(body, &fields)

		apiErr.Code = scalarString(fields.Code)
		if msg := scalarString(fields.Message); msg != "" {
			apiErr.Message = msg
		}
		apiErr.Context = nullToEmpty(fields.Context)
		apiErr.Errors = nullToEmpty(fields.Errors)
	}
	return apiErr
}

// scalarString renders a JSON scalar as text. Strings are unquoted, numbers
// and booleans keep their literal form, null and containers yield "".
func scalarString(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	switch raw[0] {
	case 'n', '{', '[':
		return ""
	}
	return string(raw)
}

func nullToEmpty(raw json.RawMessage) json.RawMessage {
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}
	return raw
}
