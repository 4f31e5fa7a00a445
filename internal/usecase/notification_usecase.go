package usecase

import (
	"context"

	"market/internal/domain/entity"
	"market/internal/errors"
)

// ErrUnsupportedEvent marks events that can never be delivered; redelivering them is pointless.
var ErrUnsupportedEvent = errors.New("unsupported stock update event")

// NotificationUsecase turns stock update events into push notifications.
type NotificationUsecase interface {
	// HandleStockUpdateEvent notifies admins of new requests and growers of decisions.
	HandleStockUpdateEvent(ctx context.Context, event *entity.StockUpdateEvent) error
}
