package swikly

import (
	"context"
	"net/http"

	"github.com/swikly/client-go/internal/api"
)

// RequestsService manages requests and their lifecycle.
type RequestsService service

// RequestList is one page of requests.
type RequestList struct {
	Requests []Request    `json:"requests"`
	Meta     *ResultsMeta `json:"meta,omitempty"`
}

// CreateRequestParams is the body of RequestsService.Create. Description and
// Language are required; nil fields are not sent.
type CreateRequestParams struct {
	Description                 string   `json:"description"`
	Language                    string   `json:"language"`
	CustomID                    *string  `json:"customId,omitempty"`
	CustomIDMustBeUnique        *bool    `json:"customIdMustBeUnique,omitempty"`
	SkipToPaymentPageIfPossible *bool    `json:"skipToPaymentPageIfPossible,omitempty"`
	FreeText                    *string  `json:"freeText,omitempty"`
	FirstName                   *string  `json:"firstName,omitempty"`
	LastName                    *string  `json:"lastName,omitempty"`
	Email                       *string  `json:"email,omitempty"`
	PhoneNumber                 *string  `json:"phoneNumber,omitempty"`
	BirthDate                   *string  `json:"birthDate,omitempty"`
	RedirectURL                 *string  `json:"redirectUrl,omitempty"`
	ReturnURL                   *string  `json:"returnUrl,omitempty"`
	SendEmail                   *bool    `json:"sendEmail,omitempty"`
	SendSMS                     *bool    `json:"sendSms,omitempty"`
	PartnerTag                  *string  `json:"partnerTag,omitempty"`
	Callbacks                   Object   `json:"callbacks,omitzero"`
	Deposit                     Object   `json:"deposit,omitzero"`
	NoShow                      Object   `json:"noShow,omitzero"`
	Payment                     Object   `json:"payment,omitzero"`
	Address                     *Address `json:"address,omitempty"`
}

// UpdateRequestParams is the body of RequestsService.Update.
type UpdateRequestParams struct {
	Deposit Object `json:"deposit,omitzero"`
	NoShow  Object `json:"noShow,omitzero"`
	Payment Object `json:"payment,omitzero"`
}

// CreateReclaimParams is the body of RequestsService.CreateReclaim. Files
// holds ids returned by FilesService.UploadTemporary.
type CreateReclaimParams struct {
	Target string   `json:"target"`
	Amount int64    `json:"amount"`
	Reason string   `json:"reason"`
	Files  []string `json:"files,omitempty"`
}

// CancelReclaimParams is the body of RequestsService.CancelReclaim.
type CancelReclaimParams struct {
	Target string `json:"target"`
}

// CreateRefundParams is the body of RequestsService.CreateRefund.
type CreateRefundParams struct {
	Target string `json:"target"`
	Amount int64  `json:"amount"`
	Reason string `json:"reason"`
}

type requestEnvelope struct {
	Request Request `json:"request"`
}

func (s *RequestsService) call(ctx context.Context, req api.Request) (*Request, error) {
	var resp requestEnvelope
	if err := s.client.do(ctx, req, &resp); err != nil {
		return nil, err
	}
	return &resp.Request, nil
}

// List returns one page of the account's requests. opts may be nil.
func (s *RequestsService) List(ctx context.Context, accountID string, opts *ListRequestsOptions) (*RequestList, error) {
	q := query{}
	if opts != nil {
		q = q.page(opts.ListOptions).
			with(opts.With).
			strParam("search", opts.Search).
			boolParam("include_legacy", opts.IncludeLegacy)
	}

	var list RequestList
	req := api.Request{
		Method: http.MethodGet,
		Path:   endpoint("accounts", accountID, "requests"),
		Query:  q.values(),
	}
	if err := s.client.do(ctx, req, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// Create creates a request.
func (s *RequestsService) Create(ctx context.Context, accountID string, params CreateRequestParams) (*Request, error) {
	return s.call(ctx, api.Request{
		Method: http.MethodPost,
		Path:   endpoint("accounts", accountID, "requests"),
		Body:   params,
	})
}

// Get returns a request, embedding the relations listed in with.
func (s *RequestsService) Get(ctx context.Context, accountID, requestID string, with With) (*Request, error) {
	return s.call(ctx, api.Request{
		Method: http.MethodGet,
		Path:   endpoint("accounts", accountID, "requests", requestID),
		Query:  query{}.with(with).values(),
	})
}

// Update changes the deposit, no-show or payment of a request.
func (s *RequestsService) Update(ctx context.Context, accountID, requestID string, params *UpdateRequestParams) (*Request, error) {
	if params == nil {
		params = &UpdateRequestParams{}
	}
	return s.call(ctx, api.Request{
		Method: http.MethodPatch,
		Path:   endpoint("accounts", accountID, "requests", requestID),
		Body:   params,
	})
}

// Cancel cancels a request.
func (s *RequestsService) Cancel(ctx context.Context, accountID, requestID string) (*Request, error) {
	return s.call(ctx, api.Request{
		Method: http.MethodPost,
		Path:   endpoint("accounts", accountID, "requests", requestID, "cancel"),
	})
}

// Release releases what a request secured.
func (s *RequestsService) Release(ctx context.Context, accountID, requestID string) (*Request, error) {
	return s.call(ctx, api.Request{
		Method: http.MethodPost,
		Path:   endpoint("accounts", accountID, "requests", requestID, "release"),
	})
}

// CreateReclaim claims money from the target of a request.
func (s *RequestsService) CreateReclaim(ctx context.Context, accountID, requestID string, params CreateReclaimParams) (*Request, error) {
	return s.call(ctx, api.Request{
		Method: http.MethodPost,
		Path:   endpoint("accounts", accountID, "requests", requestID, "create_reclaim"),
		Body:   params,
	})
}

// CancelReclaim cancels the pending reclaim on the target of a request.
func (s *RequestsService) CancelReclaim(ctx context.Context, accountID, requestID string, params CancelReclaimParams) (*Request, error) {
	return s.call(ctx, api.Request{
		Method: http.MethodPost,
		Path:   endpoint("accounts", accountID, "requests", requestID, "cancel_reclaim"),
		Body:   params,
	})
}

// CreateRefund refunds the target of a request.
func (s *RequestsService) CreateRefund(ctx context.Context, accountID, requestID string, params CreateRefundParams) (*Request, error) {
	return s.call(ctx, api.Request{
		Method: http.MethodPost,
		Path:   endpoint("accounts", accountID, "requests", requestID, "create_refund"),
		Body:   params,
	})
}
