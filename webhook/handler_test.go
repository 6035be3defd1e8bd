package webhook

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func deliver(t *testing.T, h http.Handler, header string, body []byte) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/webhooks/swikly", bytes.NewReader(body))
	if header != "" {
		req.Header.Set(HeaderName, header)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestHandler(t *testing.T) {
	var received *Event
	h := Handler(testSecret, func(w http.ResponseWriter, r *http.Request, event *Event) {
		received = event
		w.WriteHeader(http.StatusNoContent)
	}, at(testTS))

	valid := SignatureHeader(testSecret, time.Unix(testTS, 0), testBody)
	stale := SignatureHeader(testSecret, time.Unix(testTS-3600, 0), testBody)
	wrongSecret := SignatureHeader("other", time.Unix(testTS, 0), testBody)
	notEvent := []byte(`[1,2,3]`)

	tests := []struct {
		name    string
		header  string
		body    []byte
		status  int
		handled bool
	}{
		{"valid", valid, testBody, http.StatusNoContent, true},
		{"missing header", "", testBody, http.StatusBadRequest, false},
		{"malformed header", "t=abc,sha256=00", testBody, http.StatusBadRequest, false},
		{"stale", stale, testBody, http.StatusUnauthorized, false},
		{"wrong secret", wrongSecret, testBody, http.StatusUnauthorized, false},
		{"signed non-event", SignatureHeader(testSecret, time.Unix(testTS, 0), notEvent), notEvent, http.StatusBadRequest, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			received = nil
			rec := deliver(t, h, tt.header, tt.body)
			assert.Equal(t, tt.status, rec.Code)
			if tt.handled {
				if assert.NotNil(t, received) {
					assert.Equal(t, "x", received.RequestID())
				}
			} else {
				assert.Nil(t, received)
			}
		})
	}
}

func TestHandler_BodyTooLarge(t *testing.T) {
	h := Handler(testSecret, func(w http.ResponseWriter, r *http.Request, event *Event) {
		t.Error("handler must not be called")
	})

	body := []byte(`{"event":"` + strings.Repeat("a", MaxBodyBytes) + `"}`)
	rec := deliver(t, h, SignatureHeader(testSecret, time.Now(), body), body)
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}
