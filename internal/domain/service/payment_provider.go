package service

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentRequest is what the provider needs to open a hosted payment page.
type PaymentRequest struct {
	CheckoutSessionID uuid.UUID
	BasketSessionID   uuid.UUID
	Amount            decimal.Decimal
	Currency          string
	CustomerEmail     string
	SuccessURL        string
	CancelURL         string
}

// PaymentSession is the provider side of a checkout session.
type PaymentSession struct {
	ProviderSessionID string
	RedirectURL       string
}

// PaymentEventType is the outcome reported by a provider webhook.
type PaymentEventType string

const (
	PaymentEventSucceeded PaymentEventType = "payment.succeeded"
	PaymentEventFailed    PaymentEventType = "payment.failed"
)

// PaymentEvent is a verified provider webhook.
type PaymentEvent struct {
	Type              PaymentEventType
	ProviderSessionID string
	Payload           json.RawMessage // Raw body, stored as the checkout success payload.
}

// PaymentProvider abstracts the hosted payment service.
type PaymentProvider interface {
	// Name identifies the provider on stored checkout sessions.
	Name() string

	// CreateSession opens a payment session for the amount due.
	CreateSession(ctx context.Context, req PaymentRequest) (*PaymentSession, error)

	// VerifyWebhook checks the signature of a webhook body and decodes it.
	VerifyWebhook(payload []byte, signature string) (*PaymentEvent, error)
}
