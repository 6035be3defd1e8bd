package webhook

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// HeaderName is the HTTP header carrying the webhook signature.
const HeaderName = "Swikly-Signature"

// DefaultTolerance is the maximum accepted distance between the signed
// timestamp and the current time.
const DefaultTolerance = 10 * time.Minute

// ErrInvalidSignatureHeader is returned when the signature header cannot be
// parsed. A well-formed header with a wrong digest is not an error; Verify
// reports it by returning false.
var ErrInvalidSignatureHeader = errors.New("invalid Swikly-Signature header")

// SignatureHeaderError describes why a signature header was rejected.
type SignatureHeaderError struct {
	Header string
	Reason string
	Err    error
}

func (e *SignatureHeaderError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%v: %s: %v", ErrInvalidSignatureHeader, e.Reason, e.Err)
	}
	return fmt.Sprintf("%v: %s", ErrInvalidSignatureHeader, e.Reason)
}

// Unwrap returns the underlying parse error, if any.
func (e *SignatureHeaderError) Unwrap() error {
	return e.Err
}

// Is reports every SignatureHeaderError as ErrInvalidSignatureHeader.
func (e *SignatureHeaderError) Is(target error) bool {
	return target == ErrInvalidSignatureHeader
}

// Signature is a parsed Swikly-Signature header.
type Signature struct {
	// Timestamp is the signing time in Unix seconds.
	Timestamp int64
	// RawTimestamp is the t= value exactly as sent. It is part of the
	// signed payload, so it is kept verbatim.
	RawTimestamp string
	// Digest is the hex encoded HMAC-SHA256 value of the sha256= entry.
	Digest string
}

// ParseSignatureHeader parses "t=<unix>,sha256=<hex>". Entries are separated
// by commas and may be surrounded by whitespace; entries without "=" and
// unknown keys are ignored. When a key repeats the last value wins.
func ParseSignatureHeader(header string) (Signature, error) {
	values := make(map[string]string)
	for _, part := range strings.Split(header, ",") {
		part = strings.TrimSpace(part)
		key, value, ok := strings.Cut(part, "=")
		if !ok {
			continue
		}
		values[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}

	rawTS, digest := values["t"], values["sha256"]
	if rawTS == "" || digest == "" {
		return Signature{}, &SignatureHeaderError{Header: header, Reason: "missing t or sha256"}
	}

	ts, err := strconv.ParseInt(rawTS, 10, 64)
	if err != nil {
		return Signature{}, &SignatureHeaderError{Header: header, Reason: "invalid timestamp", Err: err}
	}

	return Signature{Timestamp: ts, RawTimestamp: rawTS, Digest: digest}, nil
}

type verifyConfig struct {
	tolerance time.Duration
	now       func() time.Time
}

// VerifyOption configures Verify and Handler.
type VerifyOption func(*verifyConfig)

// WithTolerance sets the accepted clock distance. Default: DefaultTolerance.
func WithTolerance(d time.Duration) VerifyOption {
	return func(c *verifyConfig) {
		c.tolerance = d
	}
}

// WithNow overrides the clock used for the freshness check.
func WithNow(now func() time.Time) VerifyOption {
	return func(c *verifyConfig) {
		c.now = now
	}
}

func newVerifyConfig(opts []VerifyOption) verifyConfig {
	cfg := verifyConfig{tolerance: DefaultTolerance, now: time.Now}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// Verify reports whether body was signed by secret. It returns an error
// wrapping ErrInvalidSignatureHeader when the header is malformed, and false
// without error when the timestamp is stale or the digest does not match.
func Verify(secret, header string, body []byte, opts ...VerifyOption) (bool, error) {
	sig, err := ParseSignatureHeader(header)
	if err != nil {
		return false, err
	}
	return sig.Verify(secret, body, opts...), nil
}

// Verify checks s against secret and body.
func (s Signature) Verify(secret string, body []byte, opts ...VerifyOption) bool {
	cfg := newVerifyConfig(opts)

	if !fresh(cfg.now().Unix(), s.Timestamp, int64(cfg.tolerance/time.Second)) {
		return false
	}

	expected := Sign(secret, s.RawTimestamp, body)
	return hmac.Equal([]byte(expected), []byte(s.Digest))
}

// fresh reports whether |now - ts| <= tol in whole seconds. The bounds
// saturate instead of wrapping, so extreme timestamps are always stale.
func fresh(now, ts, tol int64) bool {
	if tol < 0 {
		tol = 0
	}
	lo, hi := int64(math.MinInt64), int64(math.MaxInt64)
	if now >= math.MinInt64+tol {
		lo = now - tol
	}
	if now <= math.MaxInt64-tol {
		hi = now + tol
	}
	return ts >= lo && ts <= hi
}

// Sign returns the hex digest for timestamp and body. It is the counterpart
// of Verify and is mostly useful in tests.
func Sign(secret, timestamp string, body []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(timestamp))
	mac.Write([]byte("."))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

// SignatureHeader formats a header value for ts and body.
func SignatureHeader(secret string, ts time.Time, body []byte) string {
	raw := strconv.FormatInt(ts.Unix(), 10)
	return "t=" + raw + ",sha256=" + Sign(secret, raw, body)
}
