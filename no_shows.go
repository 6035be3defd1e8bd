package swikly

import (
	"context"
	"net/http"

	"github.com/swikly/client-go/internal/api"
)

// NoShowsService manages the no-show guarantees of requests.
type NoShowsService service

// UpdateStatusParams changes the status of a no-show or payment.
type UpdateStatusParams struct {
	Status *string `json:"status,omitempty"`
}

// The API wraps no-shows under a hyphenated key.
type noShowEnvelope struct {
	NoShow NoShow `json:"no-show"`
}

// Get returns a no-show, embedding the relations listed in with.
func (s *NoShowsService) Get(ctx context.Context, accountID, noShowID string, with With) (*NoShow, error) {
	var resp noShowEnvelope
	req := api.Request{
		Method: http.MethodGet,
		Path:   endpoint("accounts", accountID, "no-shows", noShowID),
		Query:  query{}.with(with).values(),
	}
	if err := s.client.do(ctx, req, &resp); err != nil {
		return nil, err
	}
	return &resp.NoShow, nil
}

// Update changes the status of a no-show.
func (s *NoShowsService) Update(ctx context.Context, accountID, noShowID string, params *UpdateStatusParams) (*NoShow, error) {
	if params == nil {
		params = &UpdateStatusParams{}
	}

	var resp noShowEnvelope
	req := api.Request{
		Method: http.MethodPatch,
		Path:   endpoint("accounts", accountID, "no-shows", noShowID),
		Body:   params,
	}
	if err := s.client.do(ctx, req, &resp); err != nil {
		return nil, err
	}
	return &resp.NoShow, nil
}
