package swikly

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"go.uber.org/zap"

	"github.com/swikly/client-go/internal/api"
	"github.com/swikly/client-go/internal/metrics"
)

// Client is the Swikly API client. It is safe for concurrent use.
//
// Operations are grouped by resource, e.g. client.Requests.Create.
type Client struct {
	api *api.Client
	log *zap.Logger

	common service

	Users      *UsersService
	Accounts   *AccountsService
	Requests   *RequestsService
	Deposits   *DepositsService
	NoShows    *NoShowsService
	Payments   *PaymentsService
	Reclaims   *ReclaimsService
	Refunds    *RefundsService
	Files      *FilesService
	ShortLinks *ShortLinksService
}

type service struct {
	client *Client
}

// buildAPIClient creates and configures an API client from the given config.
func buildAPIClient(cfg *clientConfig) (*api.Client, error) {
	baseURL := cfg.baseURL
	if baseURL == "" {
		resolved, err := api.ResolveBaseURL(cfg.environment)
		if err != nil {
			return nil, err
		}
		baseURL = resolved
	}

	var collector *metrics.Collector
	if cfg.registerer != nil {
		var err error
		collector, err = metrics.New(cfg.registerer)
		if err != nil {
			return nil, &ConfigError{Field: "metrics registerer", Err: err}
		}
	}

	return api.New(api.Config{
		BaseURL:         baseURL,
		Token:           cfg.token,
		LegacyAPIKey:    cfg.legacyKey,
		LegacyAPISecret: cfg.legacySecret,
		Timeout:         cfg.timeout,
		MaxRetries:      cfg.retries,
		UserAgent:       cfg.userAgent,
		DefaultHeaders:  cfg.defaultHeaders,
		HTTPClient:      cfg.httpClient,
		Logger:          cfg.logger,
		Metrics:         collector,
		TracerProvider:  cfg.tracerProvider,
	})
}

// New creates a new Swikly client. Configuration errors, including an
// unknown environment, are reported here before any network activity.
//
//	client, err := swikly.New(
//	    swikly.WithToken(os.Getenv("SWIKLY_TOKEN")),
//	    swikly.WithEnvironment(swikly.EnvironmentSandbox),
//	)
func New(opts ...Option) (*Client, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.token == "" && (cfg.legacyKey == "" || cfg.legacySecret == "") {
		return nil, &ConfigError{Field: "credentials", Err: ErrMissingCredentials}
	}

	apiClient, err := buildAPIClient(cfg)
	if err != nil {
		return nil, err
	}

	logger := cfg.logger
	if logger == nil {
		logger = zap.NewNop()
	}

	c := &Client{
		api: apiClient,
		log: logger.Named("swikly"),
	}
	c.common.client = c
	c.Users = (*UsersService)(&c.common)
	c.Accounts = (*AccountsService)(&c.common)
	c.Requests = (*RequestsService)(&c.common)
	c.Deposits = (*DepositsService)(&c.common)
	c.NoShows = (*NoShowsService)(&c.common)
	c.Payments = (*PaymentsService)(&c.common)
	c.Reclaims = (*ReclaimsService)(&c.common)
	c.Refunds = (*RefundsService)(&c.common)
	c.Files = (*FilesService)(&c.common)
	c.ShortLinks = (*ShortLinksService)(&c.common)

	c.log.Debug("client created", zap.String("base_url", apiClient.BaseURL()))
	return c, nil
}

// BaseURL returns the resolved API root.
func (c *Client) BaseURL() string {
	return c.api.BaseURL()
}

// Close releases idle connections. The client remains usable.
func (c *Client) Close() {
	c.api.CloseIdleConnections()
}

// do executes req and decodes the JSON response into out, when out is
// non-nil. API errors and transport failures are returned unchanged.
func (c *Client) do(ctx context.Context, req api.Request, out any) error {
	resp, err := c.api.Execute(ctx, req)
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	if err := resp.Decode(out); err != nil {
		return fmt.Errorf("%w: %s %s: %w", ErrInvalidResponse, req.Method, req.Path, err)
	}
	return nil
}

// endpoint joins path segments, escaping each one.
func endpoint(segments ...string) string {
	escaped := make([]string, len(segments))
	for i, s := range segments {
		escaped[i] = url.PathEscape(s)
	}
	return "/" + strings.Join(escaped, "/")
}
