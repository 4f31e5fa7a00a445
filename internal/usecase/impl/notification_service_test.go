package impl

import (
	"context"
	"testing"

	"market/internal/domain/constants"
	"market/internal/domain/entity"
	"market/internal/errors"
	mockSvc "market/internal/mocks/service"
	"market/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestNotificationService(t *testing.T) (usecase.NotificationUsecase, *mockSvc.MockNotificationService) {
	notificationSvc := mockSvc.NewMockNotificationService(t)

	service := NewNotificationService(NotificationServiceParams{
		NotificationSvc: notificationSvc,
		Config:          newTestConfig(),
		Logger:          newDiscardLogger(),
	})

	return service, notificationSvc
}

func TestNotificationService_HandleStockUpdateEvent_RequestGoesToAdmins(t *testing.T) {
	service, notificationSvc := createTestNotificationService(t)
	ctx := context.Background()
	event := &entity.StockUpdateEvent{
		Type:      constants.EventStockUpdateRequested,
		RequestID: uuid.New(),
		GrowerID:  uuid.New(),
		Status:    entity.StockUpdatePending,
		Reason:    "late frost",
	}

	notificationSvc.EXPECT().
		SendTopicNotification(ctx, "admins", "New stock update request", mock.MatchedBy(func(body string) bool {
			return body == "A grower is waiting for stock validation: late frost"
		}), mock.MatchedBy(func(data map[string]string) bool {
			return data["stock_update_id"] == event.RequestID.String() && data["status"] == "PENDING"
		})).
		Return(nil)

	require.NoError(t, service.HandleStockUpdateEvent(ctx, event))
}

func TestNotificationService_HandleStockUpdateEvent_DecisionGoesToGrower(t *testing.T) {
	service, notificationSvc := createTestNotificationService(t)
	ctx := context.Background()
	growerID := uuid.New()
	event := &entity.StockUpdateEvent{
		Type:         constants.EventStockUpdateDecided,
		RequestID:    uuid.New(),
		GrowerID:     growerID,
		Status:       entity.StockUpdateRejected,
		AdminComment: "prices too high",
	}

	notificationSvc.EXPECT().
		SendTopicNotification(ctx, "grower-"+growerID.String(), "Stock update rejected", "prices too high", mock.Anything).
		Return(nil)

	require.NoError(t, service.HandleStockUpdateEvent(ctx, event))
}

func TestNotificationService_HandleStockUpdateEvent_Errors(t *testing.T) {
	t.Run("unsupported events are permanent", func(t *testing.T) {
		service, _ := createTestNotificationService(t)

		for _, event := range []*entity.StockUpdateEvent{
			nil,
			{Type: "stock_update.unknown"},
			{Type: constants.EventStockUpdateDecided, Status: entity.StockUpdatePending},
		} {
			err := service.HandleStockUpdateEvent(context.Background(), event)
			assert.True(t, errors.Is(err, usecase.ErrUnsupportedEvent), "got %v", err)
		}
	})

	t.Run("send failure is returned", func(t *testing.T) {
		service, notificationSvc := createTestNotificationService(t)
		notificationSvc.EXPECT().
			SendTopicNotification(mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(errors.New("fcm unavailable"))

		err := service.HandleStockUpdateEvent(context.Background(), &entity.StockUpdateEvent{Type: constants.EventStockUpdateRequested})
		require.Error(t, err)
		assert.False(t, errors.Is(err, usecase.ErrUnsupportedEvent))
	})
}
