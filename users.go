package swikly

import (
	"context"
	"net/http"

	"github.com/swikly/client-go/internal/api"
)

// UsersService handles the authenticated user.
type UsersService service

// Me returns the user the credentials belong to.
func (s *UsersService) Me(ctx context.Context) (*User, error) {
	var resp struct {
		User User `json:"user"`
	}
	if err := s.client.do(ctx, api.Request{Method: http.MethodGet, Path: "/me"}, &resp); err != nil {
		return nil, err
	}
	return &resp.User, nil
}
