package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"market/config"
	deliverycontext "market/internal/delivery/context"
	"market/internal/domain/constants"
	"market/internal/domain/entity"
	"market/internal/errors"
	"market/internal/infra/pubsub"
	"market/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

const googleIssuer = "https://accounts.google.com"

// TokenValidator checks the OIDC token Pub/Sub attaches to push requests.
type TokenValidator func(ctx context.Context, token, audience string) (*idtoken.Payload, error)

// PushHandler receives stock update events pushed by Pub/Sub.
type PushHandler struct {
	verifyPushAuth bool
	audience       string
	validateToken  TokenValidator
	logger         *slog.Logger
	notificationUC usecase.NotificationUsecase
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config         *config.Config
	Logger         *slog.Logger
	NotificationUC usecase.NotificationUsecase
}

// NewPushHandler creates a new Pub/Sub push handler.
// Push tokens are verified for the google provider outside development.
func NewPushHandler(params PushHandlerParams) *PushHandler {
	h := &PushHandler{
		logger:         params.Logger,
		notificationUC: params.NotificationUC,
		validateToken:  idtoken.Validate,
	}

	if ps := params.Config.PubSub; ps != nil {
		h.verifyPushAuth = ps.Provider == constants.PubSubProviderGoogle && params.Config.Env.Env != constants.EnvDevelop
		h.audience = ps.PushAudience
	}

	return h
}

// HandlePush answers 200 once the event is handled or can never be handled,
// and 503 when Pub/Sub should redeliver it.
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if h.verifyPushAuth {
		if err := h.verifyPushToken(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var pushMsg pubsub.PushMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	data, err := pushMsg.Decode()
	if err != nil {
		h.logger.Error("[Worker] Failed to decode message data", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	var event entity.StockUpdateEvent
	if err := json.Unmarshal(data, &event); err != nil {
		h.logger.Error("[Worker] Failed to parse stock update event", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	requestID := extractRequestID(ctx, &pushMsg)
	reqLogger := h.logger.With(
		slog.String("request_id", requestID),
		slog.String("message_id", pushMsg.Message.MessageID),
	)
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	reqLogger.Info("[Worker] Processing stock update event",
		slog.String("event_type", event.Type),
		slog.String("stock_update_id", event.RequestID.String()),
	)

	if err := h.notificationUC.HandleStockUpdateEvent(ctx, &event); err != nil {
		retryable := !errors.Is(err, usecase.ErrUnsupportedEvent)
		reqLogger.Error("[Worker] Failed to process stock update event",
			slog.String("stock_update_id", event.RequestID.String()),
			slog.Any("error", err),
			slog.Bool("retryable", retryable),
		)
		if retryable {
			return c.NoContent(http.StatusServiceUnavailable)
		}

		return c.NoContent(http.StatusOK)
	}

	return c.NoContent(http.StatusOK)
}

// extractRequestID prefers the publisher's request id so logs of both sides correlate.
func extractRequestID(ctx context.Context, pushMsg *pubsub.PushMessage) string {
	if requestID := pushMsg.Message.Attributes["request_id"]; requestID != "" {
		return requestID
	}

	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	return uuid.New().String()
}

// verifyPushToken validates the Google-signed OIDC token of a push request.
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func (h *PushHandler) verifyPushToken(req *http.Request) error {
	authHeader := req.Header.Get(echo.HeaderAuthorization)
	const bearerPrefix = "Bearer "
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return errors.New("missing bearer token")
	}
	token := strings.TrimPrefix(authHeader, bearerPrefix)

	audience := h.audience
	if audience == "" {
		scheme := "https"
		if req.TLS == nil {
			scheme = "http"
		}
		audience = scheme + "://" + req.Host + req.URL.Path
	}

	payload, err := h.validateToken(req.Context(), token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != googleIssuer && payload.Issuer != strings.TrimPrefix(googleIssuer, "https://") {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
