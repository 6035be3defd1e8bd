package swikly

import (
	"context"
	"net/http"

	"github.com/swikly/client-go/internal/api"
)

// ShortLinksService shortens URLs.
type ShortLinksService service

// Create shortens link.
func (s *ShortLinksService) Create(ctx context.Context, link string) (*ShortLink, error) {
	var resp struct {
		ShortLink ShortLink `json:"shortLink"`
	}
	req := api.Request{
		Method: http.MethodPost,
		Path:   "/shortener/short-links",
		Body:   map[string]string{"link": link},
	}
	if err := s.client.do(ctx, req, &resp); err != nil {
		return nil, err
	}
	return &resp.ShortLink, nil
}
