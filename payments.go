package swikly

import (
	"context"
	"net/http"

	"github.com/swikly/client-go/internal/api"
)

// PaymentsService manages the payments of requests.
type PaymentsService service

type paymentEnvelope struct {
	Payment Payment `json:"payment"`
}

// Get returns a payment, embedding the relations listed in with.
func (s *PaymentsService) Get(ctx context.Context, accountID, paymentID string, with With) (*Payment, error) {
	var resp paymentEnvelope
	req := api.Request{
		Method: http.MethodGet,
		Path:   endpoint("accounts", accountID, "payments", paymentID),
		Query:  query{}.with(with).values(),
	}
	if err := s.client.do(ctx, req, &resp); err != nil {
		return nil, err
	}
	return &resp.Payment, nil
}

// Update changes the status of a payment.
func (s *PaymentsService) Update(ctx context.Context, accountID, paymentID string, params *UpdateStatusParams) (*Payment, error) {
	if params == nil {
		params = &UpdateStatusParams{}
	}

	var resp paymentEnvelope
	req := api.Request{
		Method: http.MethodPatch,
		Path:   endpoint("accounts", accountID, "payments", paymentID),
		Body:   params,
	}
	if err := s.client.do(ctx, req, &resp); err != nil {
		return nil, err
	}
	return &resp.Payment, nil
}
