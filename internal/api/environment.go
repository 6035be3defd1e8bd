package api

import (
	"strings"

	"github.com/swikly/client-go/internal/apierrors"
)

// Base URLs of the hosted Swikly API.
const (
	ProductionBaseURL = "https://api.v2.swikly.com/v1"
	SandboxBaseURL    = "https://api.sandbox.swikly.com/v1"
)

// ResolveBaseURL maps an environment tag to a base URL. Recognised tags are
// case-insensitive; an absolute http(s) URL is returned verbatim.
func ResolveBaseURL(environment string) (string, error) {
	env := strings.ToLower(strings.TrimSpace(environment))
	switch env {
	case "prod", "production", "live":
		return ProductionBaseURL, nil
	case "sandbox", "test", "testing":
		return SandboxBaseURL, nil
	}
	if strings.HasPrefix(env, "http://") || strings.HasPrefix(env, "https://") {
		return strings.TrimSpace(environment), nil
	}
	return "", &apierrors.ConfigError{
		Field: "environment",
		Value: environment,
		Err:   apierrors.ErrInvalidEnvironment,
	}
}
