package swikly

import (
	"net/http"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel/trace/noop"
	"go.uber.org/zap"
)

func TestDefaultConstants(t *testing.T) {
	if defaultTimeout != 30*time.Second {
		t.Errorf("defaultTimeout = %v, want 30s", defaultTimeout)
	}
	if defaultRetries != 2 {
		t.Errorf("defaultRetries = %d, want 2", defaultRetries)
	}
	if ProductionBaseURL != "https://api.v2.swikly.com/v1" {
		t.Errorf("ProductionBaseURL = %s", ProductionBaseURL)
	}
	if SandboxBaseURL != "https://api.sandbox.swikly.com/v1" {
		t.Errorf("SandboxBaseURL = %s", SandboxBaseURL)
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := defaultConfig()
	if cfg.environment != EnvironmentProduction {
		t.Errorf("environment = %s, want production", cfg.environment)
	}
	if cfg.userAgent != DefaultUserAgent {
		t.Errorf("userAgent = %s, want %s", cfg.userAgent, DefaultUserAgent)
	}
}

func TestWithToken(t *testing.T) {
	cfg := &clientConfig{}
	WithToken("tok")(cfg)
	if cfg.token != "tok" {
		t.Errorf("token = %s, want tok", cfg.token)
	}
}

func TestWithLegacyCredentials(t *testing.T) {
	cfg := &clientConfig{}
	WithLegacyCredentials("key", "secret")(cfg)
	if cfg.legacyKey != "key" || cfg.legacySecret != "secret" {
		t.Errorf("legacy credentials = %s/%s, want key/secret", cfg.legacyKey, cfg.legacySecret)
	}
}

func TestWithEnvironment(t *testing.T) {
	cfg := &clientConfig{}
	WithEnvironment(EnvironmentSandbox)(cfg)
	if cfg.environment != EnvironmentSandbox {
		t.Errorf("environment = %s, want sandbox", cfg.environment)
	}
}

func TestWithBaseURL(t *testing.T) {
	cfg := &clientConfig{}
	WithBaseURL("https://custom.example.com")(cfg)
	if cfg.baseURL != "https://custom.example.com" {
		t.Errorf("baseURL = %s, want https://custom.example.com", cfg.baseURL)
	}
}

func TestWithTimeout(t *testing.T) {
	cfg := &clientConfig{}
	WithTimeout(120 * time.Second)(cfg)
	if cfg.timeout != 120*time.Second {
		t.Errorf("timeout = %v, want 120s", cfg.timeout)
	}
}

func TestWithRetries(t *testing.T) {
	cfg := defaultConfig()
	WithRetries(0)(cfg)
	if cfg.retries != 0 {
		t.Errorf("retries = %d, want 0", cfg.retries)
	}
}

func TestWithUserAgent(t *testing.T) {
	cfg := defaultConfig()
	WithUserAgent("")(cfg)
	if cfg.userAgent != "" {
		t.Errorf("userAgent = %q, want empty", cfg.userAgent)
	}
}

func TestWithDefaultHeaders(t *testing.T) {
	cfg := &clientConfig{}
	WithDefaultHeaders(map[string]string{"X-Tenant": "t"})(cfg)
	if cfg.defaultHeaders["X-Tenant"] != "t" {
		t.Errorf("defaultHeaders = %v", cfg.defaultHeaders)
	}
}

func TestWithHTTPClient(t *testing.T) {
	cfg := &clientConfig{}
	customClient := &http.Client{Timeout: 99 * time.Second}
	WithHTTPClient(customClient)(cfg)
	if cfg.httpClient != customClient {
		t.Error("httpClient was not set")
	}
}

func TestWithObservability(t *testing.T) {
	cfg := &clientConfig{}
	logger := zap.NewExample()
	reg := prometheus.NewRegistry()
	tp := noop.NewTracerProvider()

	WithLogger(logger)(cfg)
	WithMetrics(reg)(cfg)
	WithTracerProvider(tp)(cfg)

	if cfg.logger != logger {
		t.Error("logger was not set")
	}
	if cfg.registerer != reg {
		t.Error("registerer was not set")
	}
	if cfg.tracerProvider != tp {
		t.Error("tracerProvider was not set")
	}
}
