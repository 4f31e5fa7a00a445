package pubsub

import (
	"market/internal/domain/entity"
)

// eventAttributes are the Pub/Sub attributes used for filtering and tracing.
func eventAttributes(event *entity.StockUpdateEvent, requestID string) map[string]string {
	attributes := map[string]string{
		"event_type":      event.Type,
		"stock_update_id": event.RequestID.String(),
		"grower_id":       event.GrowerID.String(),
		"status":          string(event.Status),
	}
	if requestID != "" {
		attributes["request_id"] = requestID
	}

	return attributes
}
