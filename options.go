package swikly

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/swikly/client-go/internal/api"
)

// Environment tags accepted by WithEnvironment. Any absolute http(s) URL is
// accepted as well.
const (
	EnvironmentProduction = "production"
	EnvironmentSandbox    = "sandbox"
)

// Base URLs the environment tags resolve to.
const (
	ProductionBaseURL = api.ProductionBaseURL
	SandboxBaseURL    = api.SandboxBaseURL
)

// Version is the SDK version reported in the default User-Agent.
const Version = "0.3.0"

// DefaultUserAgent is sent unless WithUserAgent overrides it.
const DefaultUserAgent = "swikly-client-go/" + Version

const (
	defaultTimeout = api.DefaultTimeout
	defaultRetries = api.DefaultMaxRetries
)

// clientConfig holds configuration for the client.
type clientConfig struct {
	token        string
	legacyKey    string
	legacySecret string

	environment string
	baseURL     string

	timeout        time.Duration
	retries        int
	userAgent      string
	defaultHeaders map[string]string
	httpClient     *http.Client

	logger         *zap.Logger
	registerer     prometheus.Registerer
	tracerProvider trace.TracerProvider
}

func defaultConfig() *clientConfig {
	return &clientConfig{
		environment: EnvironmentProduction,
		timeout:     defaultTimeout,
		retries:     defaultRetries,
		userAgent:   DefaultUserAgent,
	}
}

// Option configures the client.
type Option func(*clientConfig)

// WithToken sets the bearer token sent as "Authorization: Bearer <token>".
func WithToken(token string) Option {
	return func(c *clientConfig) {
		c.token = token
	}
}

// WithLegacyCredentials sets the legacy API key and secret, sent as the
// API_KEY and API_SECRET headers. Both must be non-empty to be sent. They
// are sent alongside the bearer token when both are configured.
func WithLegacyCredentials(key, secret string) Option {
	return func(c *clientConfig) {
		c.legacyKey = key
		c.legacySecret = secret
	}
}

// WithEnvironment selects the API environment: "production" (also "prod",
// "live"), "sandbox" (also "test", "testing") or an absolute http(s) URL.
// Default: production.
func WithEnvironment(env string) Option {
	return func(c *clientConfig) {
		c.environment = env
	}
}

// WithBaseURL sets the API base URL. It takes precedence over
// WithEnvironment.
func WithBaseURL(url string) Option {
	return func(c *clientConfig) {
		c.baseURL = url
	}
}

// WithTimeout sets the timeout of each HTTP attempt. Retries get a fresh
// budget. Default: 30 seconds.
func WithTimeout(timeout time.Duration) Option {
	return func(c *clientConfig) {
		c.timeout = timeout
	}
}

// WithRetries sets how many times a request is retried after the first
// attempt. Default: 2
func WithRetries(count int) Option {
	return func(c *clientConfig) {
		c.retries = count
	}
}

// WithUserAgent sets the User-Agent header. An empty value sends none.
func WithUserAgent(ua string) Option {
	return func(c *clientConfig) {
		c.userAgent = ua
	}
}

// WithDefaultHeaders sets headers sent with every request. Authentication
// headers win over them.
func WithDefaultHeaders(headers map[string]string) Option {
	return func(c *clientConfig) {
		c.defaultHeaders = headers
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *clientConfig) {
		c.httpClient = client
	}
}

// WithLogger sets the logger. Default: no logging.
func WithLogger(logger *zap.Logger) Option {
	return func(c *clientConfig) {
		c.logger = logger
	}
}

// WithMetrics registers the client's Prometheus collectors with reg.
func WithMetrics(reg prometheus.Registerer) Option {
	return func(c *clientConfig) {
		c.registerer = reg
	}
}

// WithTracerProvider sets the OpenTelemetry tracer provider. Default: the
// global provider.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(c *clientConfig) {
		c.tracerProvider = tp
	}
}
