package swikly

import (
	"context"
	"net/http"

	"github.com/swikly/client-go/internal/api"
)

// RefundsService manages refunds of payments and reclaims.
type RefundsService service

// RefundParams is the body of the refund creation calls.
type RefundParams struct {
	Amount int64  `json:"amount"`
	Reason string `json:"reason"`
}

func (s *RefundsService) call(ctx context.Context, req api.Request) (*Refund, error) {
	var resp struct {
		Refund Refund `json:"refund"`
	}
	if err := s.client.do(ctx, req, &resp); err != nil {
		return nil, err
	}
	return &resp.Refund, nil
}

// Get returns a refund.
func (s *RefundsService) Get(ctx context.Context, accountID, refundID string) (*Refund, error) {
	return s.call(ctx, api.Request{
		Method: http.MethodGet,
		Path:   endpoint("accounts", accountID, "refunds", refundID),
	})
}

// RefundPayment refunds part or all of a payment.
func (s *RefundsService) RefundPayment(ctx context.Context, accountID, paymentID string, params RefundParams) (*Refund, error) {
	return s.call(ctx, api.Request{
		Method: http.MethodPost,
		Path:   endpoint("accounts", accountID, "payments", paymentID, "refunds"),
		Body:   params,
	})
}

// RefundReclaim refunds part or all of a reclaim.
func (s *RefundsService) RefundReclaim(ctx context.Context, accountID, reclaimID string, params RefundParams) (*Refund, error) {
	return s.call(ctx, api.Request{
		Method: http.MethodPost,
		Path:   endpoint("accounts", accountID, "reclaims", reclaimID, "refunds"),
		Body:   params,
	})
}
