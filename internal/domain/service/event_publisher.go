package service

import (
	"context"

	"market/internal/domain/entity"
)

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishStockUpdateEvent publishes a validation request event for async notification
	PublishStockUpdateEvent(ctx context.Context, event *entity.StockUpdateEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
