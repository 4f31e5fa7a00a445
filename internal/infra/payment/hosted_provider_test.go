package payment

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"market/config"
	"market/internal/domain/constants"
	"market/internal/domain/service"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHostedProvider_CreateSession(t *testing.T) {
	checkoutID := uuid.New()

	var got createSessionRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/sessions", r.URL.Path)
		assert.Equal(t, "Bearer key-1", r.Header.Get("Authorization"))
		assert.Equal(t, checkoutID.String(), r.Header.Get("Idempotency-Key"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"ps_123","url":"https://pay.example/ps_123"}`))
	}))
	defer server.Close()

	provider := NewHostedProvider(server.URL+"/", "key-1", "secret", time.Second)

	session, err := provider.CreateSession(context.Background(), service.PaymentRequest{
		CheckoutSessionID: checkoutID,
		Amount:            decimal.RequireFromString("12.5"),
		Currency:          "EUR",
		SuccessURL:        "https://shop.example/ok",
		CancelURL:         "https://shop.example/cancel",
	})
	require.NoError(t, err)

	assert.Equal(t, "ps_123", session.ProviderSessionID)
	assert.Equal(t, "https://pay.example/ps_123", session.RedirectURL)
	assert.Equal(t, "12.50", got.Amount)
	assert.Equal(t, checkoutID.String(), got.Reference)
}

func TestHostedProvider_CreateSession_ProviderError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	provider := NewHostedProvider(server.URL, "key", "secret", time.Second)

	_, err := provider.CreateSession(context.Background(), service.PaymentRequest{CheckoutSessionID: uuid.New()})
	assert.Error(t, err)
}

func TestVerifyWebhook(t *testing.T) {
	secret := []byte("whsec")
	payload := []byte(`{"type":"payment.succeeded","session_id":"ps_1","amount":"10.00"}`)

	tests := []struct {
		name      string
		payload   []byte
		signature string
		wantErr   error
		anyErr    bool
	}{
		{name: "valid", payload: payload, signature: Sign(secret, payload)},
		{name: "valid with prefix", payload: payload, signature: "sha256=" + Sign(secret, payload)},
		{name: "tampered body", payload: []byte(strings.Replace(string(payload), "10.00", "0.01", 1)), signature: Sign(secret, payload), wantErr: ErrInvalidSignature},
		{name: "not hex", payload: payload, signature: "zz", wantErr: ErrInvalidSignature},
		{name: "unknown type", payload: []byte(`{"type":"refund","session_id":"ps_1"}`), signature: Sign(secret, []byte(`{"type":"refund","session_id":"ps_1"}`)), anyErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			event, err := verifyWebhook(secret, tt.payload, tt.signature)
			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			case tt.anyErr:
				assert.Error(t, err)
			default:
				require.NoError(t, err)
				assert.Equal(t, service.PaymentEventSucceeded, event.Type)
				assert.Equal(t, "ps_1", event.ProviderSessionID)
				assert.JSONEq(t, string(tt.payload), string(event.Payload))
			}
		})
	}
}

func TestSandboxProvider_CreateSession(t *testing.T) {
	provider := NewSandboxProvider("s")

	session, err := provider.CreateSession(context.Background(), service.PaymentRequest{SuccessURL: "https://shop.example/ok?x=1"})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(session.ProviderSessionID, "sandbox_"))
	assert.Equal(t, "https://shop.example/ok?x=1&session_id="+session.ProviderSessionID, session.RedirectURL)
}

func TestNew(t *testing.T) {
	provider, err := New(&config.Config{})
	require.NoError(t, err)
	assert.Equal(t, constants.PaymentProviderSandbox, provider.Name())

	_, err = New(&config.Config{Payment: &config.PaymentConfig{Provider: constants.PaymentProviderHosted}})
	assert.Error(t, err)

	provider, err = New(&config.Config{Payment: &config.PaymentConfig{
		Provider: constants.PaymentProviderHosted, BaseURL: "https://pay.example", WebhookSecret: "s",
	}})
	require.NoError(t, err)
	assert.Equal(t, constants.PaymentProviderHosted, provider.Name())

	_, err = New(&config.Config{Payment: &config.PaymentConfig{Provider: "stripe-ish"}})
	assert.Error(t, err)
}
