// Package webhook verifies and decodes the webhooks Swikly sends to
// merchant endpoints.
//
// Every delivery carries a Swikly-Signature header of the form
//
//	Swikly-Signature: t=1739352941,sha256=<hex>
//
// where the digest is HMAC-SHA256, keyed with the account secret, over the
// timestamp, a dot and the raw request body. Verify checks the digest and
// rejects deliveries whose timestamp lies outside the tolerance window:
//
//	ok, err := webhook.Verify(secret, r.Header.Get(webhook.HeaderName), body)
//	if err != nil {
//	    // malformed header
//	}
//	if !ok {
//	    // forged or replayed delivery
//	}
//
// Handler wraps the same check in an http.Handler.
package webhook
