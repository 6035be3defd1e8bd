package webhook

import (
	"errors"
	"io"
	"net/http"
)

// MaxBodyBytes bounds the delivery body read by Handler.
const MaxBodyBytes = 1 << 20

// HandlerFunc receives a verified event.
type HandlerFunc func(w http.ResponseWriter, r *http.Request, event *Event)

// Handler returns an http.Handler that verifies each delivery before calling
// fn. Malformed signature headers and bodies that are not events get 400,
// bodies over MaxBodyBytes get 413, and mismatched or stale signatures get
// 401.
func Handler(secret string, fn HandlerFunc, opts ...VerifyOption) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, MaxBodyBytes))
		if err != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				http.Error(w, "request body too large", http.StatusRequestEntityTooLarge)
				return
			}
			http.Error(w, "cannot read body", http.StatusBadRequest)
			return
		}

		ok, err := Verify(secret, r.Header.Get(HeaderName), body, opts...)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if !ok {
			http.Error(w, "signature mismatch", http.StatusUnauthorized)
			return
		}

		event, err := ParseEvent(body)
		if err != nil {
			http.Error(w, "invalid event body", http.StatusBadRequest)
			return
		}
		fn(w, r, event)
	})
}
