// Package entity contains the core business objects of the project.
package entity

import (
	"bytes"
	"encoding/json"
	"reflect"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CheckoutSession is the payment-provider-facing record of a basket payment.
// It moves to paid exactly once; SuccessPayload is written on that transition and never again.
type CheckoutSession struct {
	ID                uuid.UUID       `json:"id"`
	BasketSessionID   uuid.UUID       `json:"basket_session_id"`
	PaymentStatus     PaymentStatus   `json:"payment_status"`
	PaymentAmount     decimal.Decimal `json:"payment_amount"`
	WalletReserved    decimal.Decimal `json:"wallet_reserved"` // taken when opened, given back on failure
	Provider          string          `json:"provider,omitempty"`
	ProviderSessionID string          `json:"provider_session_id,omitempty"`
	RedirectURL       string          `json:"redirect_url,omitempty"`
	SuccessPayload    json.RawMessage `json:"success_payload,omitempty"`
	PaidAt            *time.Time      `json:"paid_at,omitempty"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

// IsPaid reports whether the session reached the paid state.
func (s *CheckoutSession) IsPaid() bool {
	return s.PaymentStatus == PaymentStatusPaid
}

// SamePayload reports whether payload is semantically the stored success payload.
// The stored copy comes back from a jsonb column, so key order and spacing are not preserved.
func (s *CheckoutSession) SamePayload(payload json.RawMessage) bool {
	return jsonEqual(s.SuccessPayload, payload)
}

func jsonEqual(a, b json.RawMessage) bool {
	if len(a) == 0 || len(b) == 0 {
		return len(a) == len(b)
	}

	va, errA := decodeJSON(a)
	vb, errB := decodeJSON(b)
	if errA != nil || errB != nil {
		return bytes.Equal(a, b)
	}

	return reflect.DeepEqual(va, vb)
}

// decodeJSON keeps numbers as their literal text so amounts are not rounded through float64.
func decodeJSON(raw json.RawMessage) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}

	return v, nil
}
