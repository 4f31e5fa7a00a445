package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"market/config"
	"market/internal/domain/constants"
	"market/internal/domain/entity"
	"market/internal/errors"
	mockUsecase "market/internal/mocks/usecase"
	"market/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/idtoken"
)

func newTestPushHandler(t *testing.T, cfg *config.Config) (*PushHandler, *mockUsecase.MockNotificationUsecase) {
	t.Helper()

	notificationUC := mockUsecase.NewMockNotificationUsecase(t)
	h := NewPushHandler(PushHandlerParams{
		Config:         cfg,
		Logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
		NotificationUC: notificationUC,
	})

	return h, notificationUC
}

func pushBody(t *testing.T, event *entity.StockUpdateEvent, attributes map[string]string) string {
	t.Helper()

	data, err := json.Marshal(event)
	require.NoError(t, err)

	envelope := map[string]any{
		"message": map[string]any{
			"data":       base64.StdEncoding.EncodeToString(data),
			"attributes": attributes,
			"messageId":  "m-1",
		},
		"subscription": "projects/p/subscriptions/stock-update-sub",
	}
	body, err := json.Marshal(envelope)
	require.NoError(t, err)

	return string(body)
}

func servePush(h *PushHandler, body, authorization string) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if authorization != "" {
		req.Header.Set(echo.HeaderAuthorization, authorization)
	}
	rec := httptest.NewRecorder()
	_ = h.HandlePush(e.NewContext(req, rec))

	return rec
}

func TestPushHandler_HandlePush(t *testing.T) {
	event := &entity.StockUpdateEvent{
		Type:      constants.EventStockUpdateRequested,
		RequestID: uuid.New(),
		GrowerID:  uuid.New(),
		Status:    entity.StockUpdatePending,
	}

	t.Run("delivered event", func(t *testing.T) {
		h, notificationUC := newTestPushHandler(t, &config.Config{})
		notificationUC.EXPECT().
			HandleStockUpdateEvent(mock.Anything, mock.MatchedBy(func(e *entity.StockUpdateEvent) bool {
				return e.RequestID == event.RequestID && e.Type == event.Type
			})).
			Return(nil)

		rec := servePush(h, pushBody(t, event, map[string]string{"request_id": "req-1"}), "")
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("transient failure asks for redelivery", func(t *testing.T) {
		h, notificationUC := newTestPushHandler(t, &config.Config{})
		notificationUC.EXPECT().HandleStockUpdateEvent(mock.Anything, mock.Anything).Return(errors.New("fcm unavailable"))

		rec := servePush(h, pushBody(t, event, nil), "")
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})

	t.Run("unsupported event is acknowledged", func(t *testing.T) {
		h, notificationUC := newTestPushHandler(t, &config.Config{})
		notificationUC.EXPECT().
			HandleStockUpdateEvent(mock.Anything, mock.Anything).
			Return(errors.Wrap(usecase.ErrUnsupportedEvent, "type stock_update.unknown"))

		rec := servePush(h, pushBody(t, event, nil), "")
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("undecodable data", func(t *testing.T) {
		h, _ := newTestPushHandler(t, &config.Config{})

		rec := servePush(h, `{"message":{"data":"***"}}`, "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestPushHandler_VerifiesTokenForGoogleOutsideDevelop(t *testing.T) {
	cfg := &config.Config{PubSub: &config.PubSubConfig{
		Provider:     constants.PubSubProviderGoogle,
		PushAudience: "https://worker.market.test/push",
	}}
	cfg.Env.Env = constants.EnvProduction

	event := &entity.StockUpdateEvent{Type: constants.EventStockUpdateDecided, RequestID: uuid.New()}

	t.Run("missing token", func(t *testing.T) {
		h, _ := newTestPushHandler(t, cfg)

		rec := servePush(h, pushBody(t, event, nil), "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("foreign issuer", func(t *testing.T) {
		h, _ := newTestPushHandler(t, cfg)
		h.validateToken = func(_ context.Context, _, _ string) (*idtoken.Payload, error) {
			return &idtoken.Payload{Issuer: "https://evil.test"}, nil
		}

		rec := servePush(h, pushBody(t, event, nil), "Bearer token")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("valid token for the configured audience", func(t *testing.T) {
		h, notificationUC := newTestPushHandler(t, cfg)
		h.validateToken = func(_ context.Context, token, audience string) (*idtoken.Payload, error) {
			assert.Equal(t, "token", token)
			assert.Equal(t, "https://worker.market.test/push", audience)

			return &idtoken.Payload{Issuer: "accounts.google.com", Claims: map[string]any{"email_verified": true}}, nil
		}
		notificationUC.EXPECT().HandleStockUpdateEvent(mock.Anything, mock.Anything).Return(nil)

		rec := servePush(h, pushBody(t, event, nil), "Bearer token")
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
