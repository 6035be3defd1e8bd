package swikly

import (
	"context"
	"net/http"

	"github.com/swikly/client-go/internal/api"
)

// DepositsService manages the deposits of requests.
type DepositsService service

// UpdateDepositParams is the body of DepositsService.Update. Nil fields are
// not sent.
type UpdateDepositParams struct {
	StartDate *string `json:"startDate,omitempty"`
	EndDate   *string `json:"endDate,omitempty"`
	Amount    *int64  `json:"amount,omitempty"`
	Status    *string `json:"status,omitempty"`
}

type depositEnvelope struct {
	Deposit Deposit `json:"deposit"`
}

// Get returns a deposit, embedding the relations listed in with.
func (s *DepositsService) Get(ctx context.Context, accountID, depositID string, with With) (*Deposit, error) {
	var resp depositEnvelope
	req := api.Request{
		Method: http.MethodGet,
		Path:   endpoint("accounts", accountID, "deposits", depositID),
		Query:  query{}.with(with).values(),
	}
	if err := s.client.do(ctx, req, &resp); err != nil {
		return nil, err
	}
	return &resp.Deposit, nil
}

// Update changes the dates, amount or status of a deposit.
func (s *DepositsService) Update(ctx context.Context, accountID, depositID string, params *UpdateDepositParams) (*Deposit, error) {
	if params == nil {
		params = &UpdateDepositParams{}
	}

	var resp depositEnvelope
	req := api.Request{
		Method: http.MethodPatch,
		Path:   endpoint("accounts", accountID, "deposits", depositID),
		Body:   params,
	}
	if err := s.client.do(ctx, req, &resp); err != nil {
		return nil, err
	}
	return &resp.Deposit, nil
}
