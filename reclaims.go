package swikly

import (
	"context"
	"net/http"

	"github.com/swikly/client-go/internal/api"
)

// ReclaimsService manages reclaims on deposits and no-shows.
type ReclaimsService service

// ReclaimList is one page of reclaims.
type ReclaimList struct {
	Reclaims []Reclaim    `json:"reclaims"`
	Meta     *ResultsMeta `json:"meta,omitempty"`
}

// ReclaimParams is the body of the reclaim creation calls.
type ReclaimParams struct {
	Amount int64  `json:"amount"`
	Reason string `json:"reason"`
}

func (s *ReclaimsService) list(ctx context.Context, req api.Request) (*ReclaimList, error) {
	var list ReclaimList
	if err := s.client.do(ctx, req, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

func (s *ReclaimsService) call(ctx context.Context, req api.Request) (*Reclaim, error) {
	var resp struct {
		Reclaim Reclaim `json:"reclaim"`
	}
	if err := s.client.do(ctx, req, &resp); err != nil {
		return nil, err
	}
	return &resp.Reclaim, nil
}

// List returns one page of the account's reclaims. opts may be nil.
func (s *ReclaimsService) List(ctx context.Context, accountID string, opts *ListReclaimsOptions) (*ReclaimList, error) {
	q := query{}
	if opts != nil {
		q = q.page(opts.ListOptions).
			with(opts.With).
			strParam("status", opts.Status).
			strParam("from", opts.From).
			strParam("to", opts.To)
	}
	return s.list(ctx, api.Request{
		Method: http.MethodGet,
		Path:   endpoint("accounts", accountID, "reclaims"),
		Query:  q.values(),
	})
}

// ListForRequest returns the reclaims of one request.
func (s *ReclaimsService) ListForRequest(ctx context.Context, accountID, requestID string, with With) (*ReclaimList, error) {
	return s.list(ctx, api.Request{
		Method: http.MethodGet,
		Path:   endpoint("accounts", accountID, "requests", requestID, "reclaims"),
		Query:  query{}.with(with).values(),
	})
}

// Get returns a reclaim, embedding the relations listed in with.
func (s *ReclaimsService) Get(ctx context.Context, accountID, reclaimID string, with With) (*Reclaim, error) {
	return s.call(ctx, api.Request{
		Method: http.MethodGet,
		Path:   endpoint("accounts", accountID, "reclaims", reclaimID),
		Query:  query{}.with(with).values(),
	})
}

// CreateFromDeposit claims money from a deposit.
func (s *ReclaimsService) CreateFromDeposit(ctx context.Context, accountID, depositID string, params ReclaimParams) (*Reclaim, error) {
	return s.call(ctx, api.Request{
		Method: http.MethodPost,
		Path:   endpoint("accounts", accountID, "deposits", depositID, "reclaims"),
		Body:   params,
	})
}

// CreateFromNoShow claims money from a no-show guarantee.
func (s *ReclaimsService) CreateFromNoShow(ctx context.Context, accountID, noShowID string, params ReclaimParams) (*Reclaim, error) {
	return s.call(ctx, api.Request{
		Method: http.MethodPost,
		Path:   endpoint("accounts", accountID, "no-shows", noShowID, "reclaims"),
		Body:   params,
	})
}
