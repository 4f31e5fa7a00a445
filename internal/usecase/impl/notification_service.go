package impl

import (
	"context"
	"fmt"
	"log/slog"

	"market/config"
	deliverycontext "market/internal/delivery/context"
	"market/internal/domain/constants"
	"market/internal/domain/entity"
	"market/internal/domain/service"
	"market/internal/errors"
	"market/internal/usecase"

	"go.uber.org/fx"
)

const (
	defaultAdminTopic = "admins"
	growerTopicPrefix = "grower-"
)

type notificationService struct {
	notificationSvc service.NotificationService
	adminTopic      string
	logger          *slog.Logger
}

// NotificationServiceParams holds dependencies for NotificationService, injected by Fx.
type NotificationServiceParams struct {
	fx.In

	NotificationSvc service.NotificationService
	Config          *config.Config
	Logger          *slog.Logger
}

// NewNotificationService creates a new notification service instance
func NewNotificationService(params NotificationServiceParams) usecase.NotificationUsecase {
	adminTopic := defaultAdminTopic
	if params.Config != nil && params.Config.Firebase != nil && params.Config.Firebase.AdminTopic != "" {
		adminTopic = params.Config.Firebase.AdminTopic
	}

	return &notificationService{
		notificationSvc: params.NotificationSvc,
		adminTopic:      adminTopic,
		logger:          params.Logger,
	}
}

func (s *notificationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// HandleStockUpdateEvent routes requests to the admin topic and decisions to the grower's topic
func (s *notificationService) HandleStockUpdateEvent(ctx context.Context, event *entity.StockUpdateEvent) error {
	if event == nil {
		return errors.Wrap(usecase.ErrUnsupportedEvent, "empty event")
	}

	var topic, title, body string
	switch event.Type {
	case constants.EventStockUpdateRequested:
		topic = s.adminTopic
		title = "New stock update request"
		body = "A grower is waiting for stock validation"
		if event.Reason != "" {
			body = fmt.Sprintf("A grower is waiting for stock validation: %s", event.Reason)
		}
	case constants.EventStockUpdateDecided:
		topic = growerTopicPrefix + event.GrowerID.String()
		switch event.Status {
		case entity.StockUpdateApproved:
			title = "Stock update approved"
		case entity.StockUpdateRejected:
			title = "Stock update rejected"
		default:
			return errors.Wrapf(usecase.ErrUnsupportedEvent, "decision with status %q", event.Status)
		}
		body = "Your stock update request has been reviewed"
		if event.AdminComment != "" {
			body = event.AdminComment
		}
	default:
		return errors.Wrapf(usecase.ErrUnsupportedEvent, "event type %q", event.Type)
	}

	data := map[string]string{
		"event_type":      event.Type,
		"stock_update_id": event.RequestID.String(),
		"product_id":      event.ProductID.String(),
		"variant_id":      event.VariantID.String(),
		"status":          string(event.Status),
	}

	if err := s.notificationSvc.SendTopicNotification(ctx, topic, title, body, data); err != nil {
		return errors.Wrap(err, "failed to send topic notification")
	}

	s.log(ctx).Info("Stock update notification sent",
		slog.String("topic", topic),
		slog.String("event_type", event.Type),
		slog.String("stock_update_id", event.RequestID.String()),
	)

	return nil
}
