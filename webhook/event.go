package webhook

import (
	"encoding/json"
	"fmt"
)

// Event types sent by Swikly.
const (
	EventRequestSecured = "requestSecured"
)

// Event is the envelope of a webhook delivery.
type Event struct {
	// Type is the event name, e.g. EventRequestSecured.
	Type string `json:"event"`
	// Request is the request object the event refers to, kept undecoded.
	Request json.RawMessage `json:"request,omitempty"`
	// Raw is the full delivery body.
	Raw []byte `json:"-"`
}

// ParseEvent decodes a delivery body. It does not verify the signature.
func ParseEvent(body []byte) (*Event, error) {
	var event Event
	if err := json.Unmarshal(body, &event); err != nil {
		return nil, fmt.Errorf("decode webhook event: %w", err)
	}
	event.Raw = body
	return &event, nil
}

// RequestID returns the id of the embedded request, or "" when absent.
func (e *Event) RequestID() string {
	var ref struct {
		ID string `json:"id"`
	}
	if err := e.DecodeRequest(&ref); err != nil {
		return ""
	}
	return ref.ID
}

// DecodeRequest unmarshals the embedded request into v, typically a
// *swikly.Request.
func (e *Event) DecodeRequest(v any) error {
	if len(e.Request) == 0 || string(e.Request) == "null" {
		return fmt.Errorf("webhook event %q carries no request", e.Type)
	}
	if err := json.Unmarshal(e.Request, v); err != nil {
		return fmt.Errorf("decode webhook request: %w", err)
	}
	return nil
}
