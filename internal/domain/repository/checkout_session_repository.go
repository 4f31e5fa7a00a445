package repository

import (
	"context"
	"encoding/json"
	"time"

	"market/internal/domain/entity"
	"market/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for checkout session persistence.
var (
	// ErrCheckoutSessionNotFound is returned when a checkout session is not found.
	ErrCheckoutSessionNotFound = errors.New("checkout session not found")
	// ErrCheckoutSessionAlreadyPaid is returned when the paid transition already happened.
	ErrCheckoutSessionAlreadyPaid = errors.New("checkout session already paid")
	// ErrCheckoutSessionNotPending is returned when the session already has an outcome.
	ErrCheckoutSessionNotPending = errors.New("checkout session not pending")
)

// CheckoutSessionRepository defines the interface for checkout session persistence.
type CheckoutSessionRepository interface {
	// CreateCheckoutSession persists a new checkout session.
	CreateCheckoutSession(ctx context.Context, session *entity.CheckoutSession) error

	// FindCheckoutSessionByID retrieves a checkout session by id.
	FindCheckoutSessionByID(ctx context.Context, id uuid.UUID) (*entity.CheckoutSession, error)

	// FindCheckoutSessionByProviderID retrieves a checkout session by the payment provider's session id.
	FindCheckoutSessionByProviderID(ctx context.Context, providerSessionID string) (*entity.CheckoutSession, error)

	// MarkPaid moves a non-paid session to paid and stores the provider payload.
	// Returns ErrCheckoutSessionAlreadyPaid when the session was already paid.
	MarkPaid(ctx context.Context, id uuid.UUID, payload json.RawMessage, paidAt time.Time) error

	// MarkFailed moves a pending session to failed.
	// Returns ErrCheckoutSessionNotPending when the session is already paid or failed.
	MarkFailed(ctx context.Context, id uuid.UUID) error
}
