package swikly

import (
	"context"
	"net/http"

	"github.com/swikly/client-go/internal/api"
)

// AccountsService lists the accounts available to the user.
type AccountsService service

// AccountList is one page of accounts.
type AccountList struct {
	Accounts []Account    `json:"accounts"`
	Meta     *ResultsMeta `json:"meta,omitempty"`
}

// List returns one page of accounts. opts may be nil.
func (s *AccountsService) List(ctx context.Context, opts *ListOptions) (*AccountList, error) {
	q := query{}
	if opts != nil {
		q = q.page(*opts)
	}

	var list AccountList
	req := api.Request{Method: http.MethodGet, Path: "/accounts", Query: q.values()}
	if err := s.client.do(ctx, req, &list); err != nil {
		return nil, err
	}
	return &list, nil
}
