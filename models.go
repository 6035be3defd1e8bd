package swikly

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Amounts are expressed in the smallest currency unit, e.g. cents. Dates
// are kept as sent by the API: YYYY-MM-DD for dates and ISO 8601 for
// timestamps. Unknown fields are ignored when decoding.

// User is the authenticated user.
type User struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	CreatedAt string `json:"createdAt"`
}

// Account is a merchant account the user has access to.
type Account struct {
	ID             string `json:"id"`
	CommercialName string `json:"commercialName"`
	Currency       string `json:"currency"`
	CreatedAt      string `json:"createdAt"`
	LegacyID       string `json:"legacyId,omitempty"`
	ManagerID      string `json:"managerId,omitempty"`
	Reference      string `json:"reference,omitempty"`
	// Secret signs the account's webhooks.
	Secret string `json:"secret,omitempty"`
}

// ResultsMeta describes one page of a list response.
type ResultsMeta struct {
	CurrentPage int    `json:"currentPage"`
	LastPage    int    `json:"lastPage"`
	PerPage     int    `json:"perPage"`
	Path        string `json:"path"`
	Total       int    `json:"total"`
}

// HasNextPage reports whether a page follows this one.
func (m *ResultsMeta) HasNextPage() bool {
	return m != nil && m.CurrentPage < m.LastPage
}

// Address is a postal address. Only Country is always present.
type Address struct {
	Country    string `json:"country"`
	Region     string `json:"region,omitempty"`
	PostalCode string `json:"postalCode,omitempty"`
	City       string `json:"city,omitempty"`
	Street     string `json:"street,omitempty"`
}

// Person is the end user of a request.
type Person struct {
	ID        string  `json:"id"`
	FirstName string  `json:"firstName"`
	LastName  string  `json:"lastName"`
	Address   Address `json:"address"`
	Email     string  `json:"email"`
	BirthDate string  `json:"birthDate,omitempty"`
	Phone     string  `json:"phone,omitempty"`
	CreatedAt string  `json:"createdAt"`
}

// RefundSummary aggregates the refunds of a deposit, no-show or payment.
type RefundSummary struct {
	RefundableAmount    int64 `json:"refundableAmount"`
	PendingRefundAmount int64 `json:"pendingRefundAmount"`
	RefundedAmount      int64 `json:"refundedAmount"`
}

// File is an uploaded document.
type File struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	URL       string `json:"url"`
	CreatedAt string `json:"createdAt"`

	// Raw is the value exactly as returned by the API. The typed fields
	// are only filled when it is an object.
	Raw json.RawMessage `json:"-"`
}

// UnmarshalJSON accepts any JSON value. Objects fill the typed fields;
// anything else is only kept in Raw.
func (f *File) UnmarshalJSON(data []byte) error {
	type plain File
	var p plain
	if trimmed := bytes.TrimSpace(data); len(trimmed) > 0 && trimmed[0] == '{' {
		if err := json.Unmarshal(trimmed, &p); err != nil {
			return err
		}
	}
	*f = File(p)
	f.Raw = append(json.RawMessage(nil), data...)
	return nil
}

// ReclaimSummary aggregates the reclaims of a deposit or no-show. Absent
// amounts are nil.
type ReclaimSummary struct {
	ReclaimableAmount            *int64 `json:"reclaimableAmount,omitempty"`
	PlannedRequestedAmount       *int64 `json:"plannedRequestedAmount,omitempty"`
	MaximumReclaimCreationDate   string `json:"maximumReclaimCreationDate,omitempty"`
	PendingRequestedAmount       *int64 `json:"pendingRequestedAmount,omitempty"`
	PendingReclaimedAmount       *int64 `json:"pendingReclaimedAmount,omitempty"`
	ReclaimedAmount              *int64 `json:"reclaimedAmount,omitempty"`
	EstimatedFinishDate          string `json:"estimatedFinishDate,omitempty"`
	CancelableAmount             *int64 `json:"cancelableAmount,omitempty"`
	IrrecoverableAmount          *int64 `json:"irrecoverableAmount,omitempty"`
	IrrecoverabilityCertificates []File `json:"irrecoverabilityCertificates,omitempty"`
}

// Deposit is a security deposit held on the end user's card.
type Deposit struct {
	ID                string          `json:"id"`
	RequestID         string          `json:"requestId"`
	Amount            int64           `json:"amount"`
	AmountToBeSecured int64           `json:"amountToBeSecured"`
	SecuredAmount     int64           `json:"securedAmount"`
	Status            string          `json:"status"`
	StartDate         string          `json:"startDate"`
	EndDate           string          `json:"endDate"`
	ExpirationDate    string          `json:"expirationDate,omitempty"`
	AcceptedAt        string          `json:"acceptedAt,omitempty"`
	ReleasedAt        string          `json:"releasedAt,omitempty"`
	CanceledAt        string          `json:"canceledAt,omitempty"`
	CreatedAt         string          `json:"createdAt"`
	Request           *Request        `json:"request,omitempty"`
	ReclaimSummary    *ReclaimSummary `json:"reclaimSummary,omitempty"`
	RefundSummary     *RefundSummary  `json:"refundSummary,omitempty"`
}

// NoShow is a no-show guarantee attached to a reservation.
type NoShow struct {
	ID                string          `json:"id"`
	RequestID         string          `json:"requestId"`
	ReservationDate   string          `json:"reservationDate"`
	Amount            int64           `json:"amount"`
	AmountToBeSecured int64           `json:"amountToBeSecured"`
	SecuredAmount     int64           `json:"securedAmount"`
	Status            string          `json:"status"`
	ExpirationDate    string          `json:"expirationDate,omitempty"`
	AcceptedAt        string          `json:"acceptedAt,omitempty"`
	ReleasedAt        string          `json:"releasedAt,omitempty"`
	ExpiredAt         string          `json:"expiredAt,omitempty"`
	CanceledAt        string          `json:"canceledAt,omitempty"`
	CreatedAt         string          `json:"createdAt,omitempty"`
	Request           *Request        `json:"request,omitempty"`
	ReclaimSummary    *ReclaimSummary `json:"reclaimSummary,omitempty"`
	RefundSummary     *RefundSummary  `json:"refundSummary,omitempty"`
}

// Payment is a one-off payment collected from the end user.
type Payment struct {
	ID             string         `json:"id"`
	RequestID      string         `json:"requestId"`
	Amount         int64          `json:"amount"`
	AmountToBePaid int64          `json:"amountToBePaid"`
	AmountPaid     int64          `json:"amountPaid"`
	Status         string         `json:"status"`
	DueDate        string         `json:"dueDate,omitempty"`
	SucceededAt    string         `json:"succeededAt,omitempty"`
	CanceledAt     string         `json:"canceledAt,omitempty"`
	CreatedAt      string         `json:"createdAt"`
	Request        *Request       `json:"request,omitempty"`
	RefundSummary  *RefundSummary `json:"refundSummary,omitempty"`
}

// RefundableType names what a refund applies to.
type RefundableType string

// Refundable types.
const (
	RefundablePayment RefundableType = "Payment"
	RefundableReclaim RefundableType = "Reclaim"
)

// Refund returns money from a payment or a reclaim.
type Refund struct {
	ID             string         `json:"id"`
	RefundableType RefundableType `json:"refundableType"`
	RefundableID   string         `json:"refundableId"`
	Amount         int64          `json:"amount"`
	Status         string         `json:"status"`
	FinishedAt     string         `json:"finishedAt,omitempty"`
	CreatedAt      string         `json:"createdAt"`
}

// ReclaimStatus discriminates the reclaim variants.
type ReclaimStatus string

// Reclaim statuses.
const (
	ReclaimInitialized ReclaimStatus = "Initialized"
	ReclaimFinished    ReclaimStatus = "Finished"
)

// Reclaim is money claimed from a deposit or no-show. It is one of two
// variants selected by Status: an Initialized reclaim may carry FinishedAt,
// a Finished reclaim always does. Decoding rejects any other shape with
// ErrInvalidReclaim.
type Reclaim struct {
	ID               string        `json:"id"`
	Status           ReclaimStatus `json:"status"`
	ReclaimableType  string        `json:"reclaimableType,omitempty"`
	ReclaimableID    string        `json:"reclaimableId,omitempty"`
	Amount           int64         `json:"amount"`
	CashedInAmount   int64         `json:"cashedInAmount"`
	Reason           string        `json:"reason"`
	Files            []File        `json:"files,omitempty"`
	FilesValidated   bool          `json:"filesValidated"`
	GuaranteedAmount *int64        `json:"guaranteedAmount,omitempty"`
	FinishedAt       string        `json:"finishedAt,omitempty"`
	CreatedAt        string        `json:"createdAt"`
}

// UnmarshalJSON decodes r and checks its variant.
func (r *Reclaim) UnmarshalJSON(data []byte) error {
	type plain Reclaim
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}

	switch p.Status {
	case ReclaimInitialized:
	case ReclaimFinished:
		if p.FinishedAt == "" {
			return fmt.Errorf("%w: %s reclaim %s has no finishedAt", ErrInvalidReclaim, p.Status, p.ID)
		}
	default:
		return fmt.Errorf("%w: unknown status %q", ErrInvalidReclaim, p.Status)
	}

	*r = Reclaim(p)
	return nil
}

// IsFinished reports whether r is the Finished variant.
func (r *Reclaim) IsFinished() bool {
	return r.Status == ReclaimFinished
}

// Request is a Swikly request: the link sent to an end user to secure a
// deposit, a no-show guarantee and/or a payment.
type Request struct {
	ID                          string          `json:"id"`
	AccountID                   string          `json:"accountId"`
	Link                        string          `json:"link"`
	Description                 string          `json:"description"`
	CreatedAt                   string          `json:"createdAt"`
	LegacyID                    string          `json:"legacyId,omitempty"`
	CustomID                    string          `json:"customId,omitempty"`
	CustomIDMustBeUnique        *bool           `json:"customIdMustBeUnique,omitempty"`
	SkipToPaymentPageIfPossible *bool           `json:"skipToPaymentPageIfPossible,omitempty"`
	LastName                    string          `json:"lastName,omitempty"`
	FirstName                   string          `json:"firstName,omitempty"`
	Email                       string          `json:"email,omitempty"`
	PhoneNumber                 string          `json:"phoneNumber,omitempty"`
	FreeText                    string          `json:"freeText,omitempty"`
	Releasable                  *bool           `json:"releasable,omitempty"`
	Cancelable                  *bool           `json:"cancelable,omitempty"`
	Deposit                     *Deposit        `json:"deposit,omitempty"`
	NoShow                      *NoShow         `json:"noShow,omitempty"`
	Payment                     *Payment        `json:"payment,omitempty"`
	EndUser                     json.RawMessage `json:"endUser,omitempty"`
	RedirectURL                 string          `json:"redirectUrl,omitempty"`
	ReturnURL                   string          `json:"returnUrl,omitempty"`
}

// ShortLink is a shortened URL.
type ShortLink struct {
	ID        string `json:"id"`
	Link      string `json:"link"`
	ShortLink string `json:"shortLink"`
	CreatedAt string `json:"createdAt"`
}
