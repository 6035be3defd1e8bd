package api

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"net/url"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/swikly/client-go/internal/apierrors"
	"github.com/swikly/client-go/internal/metrics"
)

// retryPolicy is a backoff.BackOff whose delay is chosen by the outcome of
// the previous attempt: the server's Retry-After for a 429, zero for 5xx
// responses and transport failures. The attempt budget is enforced by
// wrapping it in backoff.WithMaxRetries, so one counter is shared by every
// retry trigger.
type retryPolicy struct {
	next   time.Duration
	reason string
}

// NextBackOff implements backoff.BackOff.
func (p *retryPolicy) NextBackOff() time.Duration {
	return p.next
}

// Reset implements backoff.BackOff.
func (p *retryPolicy) Reset() {
	p.next = 0
	p.reason = ""
}

// evaluate turns the result of one attempt into the error driving the retry
// loop. nil ends the loop with success. A permanent error ends it at once.
// Any other error asks for a retry and becomes the final error once the
// budget is spent. reason is left empty unless a retry is requested.
func (p *retryPolicy) evaluate(ctx context.Context, resp *Response, err error) error {
	p.next, p.reason = 0, ""
	if err != nil {
		var perm *backoff.PermanentError
		if errors.As(err, &perm) {
			return err
		}
		if ctx.Err() != nil || !transient(err) {
			return backoff.Permanent(err)
		}
		p.next, p.reason = 0, metrics.ReasonTransport
		return err
	}

	classified := apierrors.Classify(resp.StatusCode, resp.Header, resp.Body)
	if classified == nil {
		return nil
	}

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		delay, ok := apierrors.ParseRetryAfter(resp.Header)
		if !ok {
			return backoff.Permanent(classified)
		}
		p.next, p.reason = delay, metrics.ReasonRateLimited
		return classified
	case resp.StatusCode >= 500 && resp.StatusCode < 600:
		p.next, p.reason = 0, metrics.ReasonServerError
		return classified
	default:
		return backoff.Permanent(classified)
	}
}

// transient reports whether err is a timeout or a connection-level failure.
// Errors raised before the request reaches the network, such as an
// unsupported URL scheme or a refused redirect, are not.
func transient(err error) bool {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		if urlErr.Timeout() {
			return true
		}
		err = urlErr.Err
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}
	return errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF)
}
