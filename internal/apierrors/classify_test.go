package apierrors

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func classify(t *testing.T, status int, header http.Header, body string) *APIError {
	t.Helper()
	if header == nil {
		header = http.Header{}
	}
	err := Classify(status, header, []byte(body))
	require.Error(t, err)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	return apiErr
}

func TestClassify_Success(t *testing.T) {
	for _, status := range []int{200, 201, 204, 250, 299} {
		assert.NoError(t, Classify(status, http.Header{}, []byte("<html>")), "status %d", status)
		assert.NoError(t, Classify(status, http.Header{}, nil), "status %d", status)
	}
}

func TestClassify_Kinds(t *testing.T) {
	tests := []struct {
		status   int
		kind     Kind
		sentinel error
	}{
		{401, KindAuth, ErrUnauthorized},
		{403, KindAuth, ErrUnauthorized},
		{404, KindNotFound, ErrNotFound},
		{422, KindValidation, ErrValidation},
		{429, KindRateLimit, ErrRateLimited},
		{400, KindGeneric, ErrAPI},
		{405, KindGeneric, ErrAPI},
		{409, KindGeneric, ErrAPI},
		{500, KindGeneric, ErrAPI},
		{503, KindGeneric, ErrAPI},
		{302, KindGeneric, ErrAPI},
		{199, KindGeneric, ErrAPI},
	}

	for _, tt := range tests {
		apiErr := classify(t, tt.status, nil, `{}`)
		assert.Equal(t, tt.kind, apiErr.Kind, "status %d", tt.status)
		assert.Equal(t, tt.status, apiErr.StatusCode)
		assert.ErrorIs(t, apiErr, tt.sentinel, "status %d", tt.status)
		assert.ErrorIs(t, apiErr, ErrAPI)
	}
}

func TestClassify_StructuredBody(t *testing.T) {
	body := `{"code":"ERR_PARAMS","message":"The given data was invalid.","context":{"field":"amount"},"errors":{"amount":["must be positive"],"deposit":{"endDate":["required"]}}}`
	apiErr := classify(t, 422, nil, body)

	assert.Equal(t, "ERR_PARAMS", apiErr.Code)
	assert.Equal(t, "The given data was invalid.", apiErr.Message)
	assert.JSONEq(t, `{"field":"amount"}`, string(apiErr.Context))
	assert.Equal(t, `{"amount":["must be positive"],"deposit":{"endDate":["required"]}}`, string(apiErr.Errors))

	raw, ok := apiErr.Raw.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "ERR_PARAMS", raw["code"])

	var fieldErrs struct {
		Amount []string `json:"amount"`
	}
	require.NoError(t, apiErr.DecodeErrors(&fieldErrs))
	assert.Equal(t, []string{"must be positive"}, fieldErrs.Amount)
}

func TestClassify_MessageFallbacks(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		message string
		code    string
	}{
		{"message only", `{"message":"Too Many Attempts."}`, "Too Many Attempts.", ""},
		{"no message", `{"code":"ERR_X"}`, "Unknown error", "ERR_X"},
		{"empty message", `{"message":""}`, "Unknown error", ""},
		{"null message", `{"message":null}`, "Unknown error", ""},
		{"numeric code", `{"code":42,"message":"m"}`, "m", "42"},
		{"json string", `"plain failure"`, "plain failure", ""},
		{"json array", `["a","b"]`, "Unknown error", ""},
		{"json null", `null`, "Unknown error", ""},
		{"not json", `<html>Bad Gateway</html>`, "<html>Bad Gateway</html>", ""},
		{"empty body", ``, "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			apiErr := classify(t, 400, nil, tt.body)
			assert.Equal(t, tt.message, apiErr.Message)
			assert.Equal(t, tt.code, apiErr.Code)
		})
	}
}

func TestClassify_NonJSONBodyKeepsRawText(t *testing.T) {
	apiErr := classify(t, 502, nil, "upstream unavailable")
	assert.Equal(t, "upstream unavailable", apiErr.Raw)
	assert.Nil(t, apiErr.Context)
	assert.Nil(t, apiErr.Errors)
}

func TestClassify_RequestID(t *testing.T) {
	h := http.Header{}
	h.Set("X-Request-Id", "x-id")
	h.Set("Request-Id", "plain-id")
	assert.Equal(t, "x-id", classify(t, 404, h, `{}`).RequestID)

	h = http.Header{}
	h.Set("Request-Id", "plain-id")
	assert.Equal(t, "plain-id", classify(t, 404, h, `{}`).RequestID)

	assert.Empty(t, classify(t, 404, nil, `{}`).RequestID)
}

func TestClassify_RetryAfter(t *testing.T) {
	tests := []struct {
		value    string
		present  bool
		expected time.Duration
	}{
		{"", false, 0},
		{"0", true, 0},
		{"30", true, 30 * time.Second},
		{" 5 ", true, 5 * time.Second},
		{"-1", false, 0},
		{"1.5", false, 0},
		{"soon", false, 0},
		{"Wed, 21 Oct 2015 07:28:00 GMT", false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			h := http.Header{}
			if tt.value != "" {
				h.Set("Retry-After", tt.value)
			}
			apiErr := classify(t, 429, h, `{"message":"Too Many Attempts."}`)
			assert.Equal(t, tt.present, apiErr.HasRetryAfter)
			assert.Equal(t, tt.expected, apiErr.RetryAfter)
		})
	}
}

func TestClassify_RetryAfterOnlyForRateLimit(t *testing.T) {
	h := http.Header{}
	h.Set("Retry-After", "10")
	apiErr := classify(t, 503, h, `{}`)
	assert.False(t, apiErr.HasRetryAfter)
}

func TestClassify_ErrorsIsNotMatchedAcrossKinds(t *testing.T) {
	apiErr := classify(t, 404, nil, `{}`)
	assert.False(t, errors.Is(apiErr, ErrUnauthorized))
	assert.False(t, errors.Is(apiErr, ErrRateLimited))
	assert.False(t, errors.Is(apiErr, ErrInvalidConfig))
}
