package pubsub

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	deliverycontext "market/internal/delivery/context"
	"market/internal/domain/constants"
	"market/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalHTTPPublisher_PublishStockUpdateEvent(t *testing.T) {
	event := &entity.StockUpdateEvent{
		Type:       constants.EventStockUpdateRequested,
		RequestID:  uuid.New(),
		GrowerID:   uuid.New(),
		ProductID:  uuid.New(),
		VariantID:  uuid.New(),
		Status:     entity.StockUpdatePending,
		Reason:     "harvest",
		OccurredAt: time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC),
	}

	var received PushMessage
	var requestIDHeader string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		assert.NoError(t, err)
		assert.NoError(t, json.Unmarshal(body, &received))
		requestIDHeader = r.Header.Get("X-Request-Id")
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, slog.New(slog.DiscardHandler))
	ctx := deliverycontext.WithRequestID(context.Background(), "req-42")

	require.NoError(t, publisher.PublishStockUpdateEvent(ctx, event))

	assert.Equal(t, "req-42", requestIDHeader)
	assert.Equal(t, localSubscription, received.Subscription)
	assert.Equal(t, constants.EventStockUpdateRequested, received.Message.Attributes["event_type"])
	assert.Equal(t, event.GrowerID.String(), received.Message.Attributes["grower_id"])
	assert.Equal(t, "req-42", received.Message.Attributes["request_id"])

	data, err := received.Decode()
	require.NoError(t, err)

	var decoded entity.StockUpdateEvent
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, *event, decoded)
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, slog.New(slog.DiscardHandler))

	err := publisher.PublishStockUpdateEvent(context.Background(), &entity.StockUpdateEvent{RequestID: uuid.New()})
	assert.Error(t, err)
}
