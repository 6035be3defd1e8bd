package api

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/swikly/client-go/internal/apierrors"
	"github.com/swikly/client-go/internal/metrics"
)

// Default values for client configuration.
const (
	DefaultTimeout    = 30 * time.Second
	DefaultMaxRetries = 2
)

const tracerName = "github.com/swikly/client-go"

// Header names used for authentication.
const (
	headerAuthorization = "Authorization"
	headerAPIKey        = "API_KEY"
	headerAPISecret     = "API_SECRET"
)

// Config holds configuration for the API client.
type Config struct {
	// BaseURL is the resolved API root, e.g. ProductionBaseURL.
	BaseURL string

	// Token is sent as "Authorization: Bearer <token>".
	Token string
	// LegacyAPIKey and LegacyAPISecret are sent as API_KEY and API_SECRET
	// when both are set, in addition to the bearer token.
	LegacyAPIKey    string
	LegacyAPISecret string

	// Timeout bounds each attempt separately. Default: DefaultTimeout.
	Timeout time.Duration
	// MaxRetries is the number of retries after the first attempt, shared
	// by all retry triggers.
	MaxRetries int

	UserAgent      string
	DefaultHeaders map[string]string

	// HTTPClient overrides the default HTTP client. Its Timeout is replaced
	// by Timeout when it has none.
	HTTPClient *http.Client

	Logger         *zap.Logger
	Metrics        *metrics.Collector
	TracerProvider trace.TracerProvider

	// NewTimer supplies the timer used while waiting for Retry-After.
	NewTimer func() backoff.Timer
}

// Client is the HTTP API client. It is safe for concurrent use; the only
// state shared between calls is immutable configuration and the pooled
// connections of the underlying http.Client.
type Client struct {
	baseURL    string
	httpClient *http.Client
	maxRetries int

	token          string
	legacyKey      string
	legacySecret   string
	userAgent      string
	defaultHeaders map[string]string

	log      *zap.Logger
	metrics  *metrics.Collector
	tracer   trace.Tracer
	newTimer func() backoff.Timer
}

// New creates a new API client from cfg.
func New(cfg Config) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, &apierrors.ConfigError{Field: "base URL", Err: fmt.Errorf("base URL is required")}
	}
	if cfg.MaxRetries < 0 {
		return nil, &apierrors.ConfigError{Field: "max retries", Value: fmt.Sprint(cfg.MaxRetries), Err: fmt.Errorf("must not be negative")}
	}
	if cfg.Timeout < 0 {
		return nil, &apierrors.ConfigError{Field: "timeout", Value: cfg.Timeout.String(), Err: fmt.Errorf("must not be negative")}
	}

	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}

	var httpClient *http.Client
	if cfg.HTTPClient != nil {
		hc := *cfg.HTTPClient
		if hc.Timeout == 0 {
			hc.Timeout = timeout
		}
		httpClient = &hc
	} else {
		httpClient = &http.Client{Timeout: timeout}
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	tp := cfg.TracerProvider
	if tp == nil {
		tp = otel.GetTracerProvider()
	}

	defaults := make(map[string]string, len(cfg.DefaultHeaders))
	for k, v := range cfg.DefaultHeaders {
		defaults[k] = v
	}

	return &Client{
		baseURL:        strings.TrimRight(cfg.BaseURL, "/"),
		httpClient:     httpClient,
		maxRetries:     cfg.MaxRetries,
		token:          cfg.Token,
		legacyKey:      cfg.LegacyAPIKey,
		legacySecret:   cfg.LegacyAPISecret,
		userAgent:      cfg.UserAgent,
		defaultHeaders: defaults,
		log:            logger.Named("transport"),
		metrics:        cfg.Metrics,
		tracer:         tp.Tracer(tracerName),
		newTimer:       cfg.NewTimer,
	}, nil
}

// BaseURL returns the resolved API root.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// CloseIdleConnections releases pooled connections of the underlying
// http.Client.
func (c *Client) CloseIdleConnections() {
	c.httpClient.CloseIdleConnections()
}

// Outcome is the result delivered by ExecuteAsync.
type Outcome struct {
	Response *Response
	Err      error
}

// ExecuteAsync runs Execute in its own goroutine and delivers the outcome on
// the returned channel, which receives exactly one value.
func (c *Client) ExecuteAsync(ctx context.Context, req Request) <-chan Outcome {
	ch := make(chan Outcome, 1)
	go func() {
		resp, err := c.Execute(ctx, req)
		ch <- Outcome{Response: resp, Err: err}
	}()
	return ch
}

// Execute performs req, retrying 429 responses carrying Retry-After, 5xx
// responses and transport failures until MaxRetries is spent.
//
// A 2xx response is returned as is. Any other status yields an
// *apierrors.APIError. Transport failures are returned unchanged once the
// retry budget is exhausted.
func (c *Client) Execute(ctx context.Context, req Request) (*Response, error) {
	body, err := encodeBody(req)
	if err != nil {
		return nil, err
	}
	target := c.url(req)
	header := c.header(req, body)

	ctx, span := c.tracer.Start(ctx, "swikly "+req.Method,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.request.method", req.Method),
			attribute.String("url.path", req.Path),
		),
	)
	defer span.End()

	var (
		policy   = &retryPolicy{}
		attempts int
		result   *Response
	)

	operation := func() error {
		attempts++
		start := time.Now()
		resp, err := c.send(ctx, req.Method, target, header, body)

		status := 0
		if resp != nil {
			status = resp.StatusCode
		}
		c.metrics.ObserveAttempt(req.Method, status, time.Since(start))
		c.log.Debug("attempt finished",
			zap.String("method", req.Method),
			zap.String("path", req.Path),
			zap.Int("attempt", attempts),
			zap.Int("status", status),
			zap.Duration("elapsed", time.Since(start)),
			zap.Error(err),
		)

		if decision := policy.evaluate(ctx, resp, err); decision != nil {
			return decision
		}
		result = resp
		return nil
	}

	notify := func(err error, delay time.Duration) {
		c.metrics.ObserveRetry(policy.reason)
		c.log.Warn("retrying request",
			zap.String("method", req.Method),
			zap.String("path", req.Path),
			zap.Int("attempt", attempts),
			zap.String("reason", policy.reason),
			zap.Duration("delay", delay),
			zap.Error(err),
		)
	}

	var timer backoff.Timer
	if c.newTimer != nil {
		timer = c.newTimer()
	}

	b := backoff.WithContext(backoff.WithMaxRetries(policy, uint64(c.maxRetries)), ctx)
	err = backoff.RetryNotifyWithTimer(operation, b, notify, timer)

	span.SetAttributes(attribute.Int("swikly.attempts", attempts))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		fields := []zap.Field{
			zap.String("method", req.Method),
			zap.String("path", req.Path),
			zap.Int("attempts", attempts),
			zap.Error(err),
		}
		if policy.reason != "" && ctx.Err() == nil {
			c.log.Error("retry budget exhausted", fields...)
		} else {
			c.log.Debug("request failed", fields...)
		}
		return nil, err
	}

	span.SetAttributes(attribute.Int("http.response.status_code", result.StatusCode))
	return result, nil
}

// send issues a single attempt and reads the whole response body, so each
// attempt's timeout covers the body as well.
func (c *Client) send(ctx context.Context, method, target string, header http.Header, body *encodedBody) (*Response, error) {
	httpReq, err := http.NewRequestWithContext(ctx, method, target, body.reader())
	if err != nil {
		return nil, backoff.Permanent(fmt.Errorf("failed to create request: %w", err))
	}
	httpReq.Header = header.Clone()

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	return &Response{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       data,
	}, nil
}

func (c *Client) url(req Request) string {
	target := c.baseURL + "/" + strings.TrimLeft(req.Path, "/")
	if len(req.Query) > 0 {
		target += "?" + req.Query.Encode()
	}
	return target
}

// header assembles the headers of every attempt. Later writes win: base
// headers, then defaults, then authentication, then per-call extras.
func (c *Client) header(req Request, body *encodedBody) http.Header {
	h := make(http.Header)
	h.Set("Accept", "application/json")
	if c.userAgent != "" {
		h.Set("User-Agent", c.userAgent)
	}
	for k, v := range c.defaultHeaders {
		h.Set(k, v)
	}

	if c.token != "" {
		h.Set(headerAuthorization, "Bearer "+c.token)
	}
	// Both header sets may be sent together; the API picks what it supports.
	if c.legacyKey != "" && c.legacySecret != "" {
		h.Set(headerAPIKey, c.legacyKey)
		h.Set(headerAPISecret, c.legacySecret)
	}

	if body != nil {
		h.Set("Content-Type", body.contentType)
	}
	for k, v := range req.Header {
		h.Set(k, v)
	}
	return h
}
