package payment

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"strings"

	"market/internal/domain/service"
	"market/internal/errors"
)

// SignatureHeader carries the hex HMAC-SHA256 of the webhook body.
const SignatureHeader = "X-Payment-Signature"

// ErrInvalidSignature is returned when a webhook body does not match its signature.
var ErrInvalidSignature = errors.New("invalid webhook signature")

type webhookBody struct {
	Type      string `json:"type"`
	SessionID string `json:"session_id"`
}

// Sign returns the signature a provider attaches to payload.
func Sign(secret, payload []byte) string {
	mac := hmac.New(sha256.New, secret)
	mac.Write(payload)

	return hex.EncodeToString(mac.Sum(nil))
}

func verifyWebhook(secret, payload []byte, signature string) (*service.PaymentEvent, error) {
	expected, err := hex.DecodeString(strings.TrimPrefix(signature, "sha256="))
	if err != nil || len(secret) == 0 {
		return nil, ErrInvalidSignature
	}

	mac := hmac.New(sha256.New, secret)
	mac.Write(payload)
	if !hmac.Equal(mac.Sum(nil), expected) {
		return nil, ErrInvalidSignature
	}

	var body webhookBody
	if err := json.Unmarshal(payload, &body); err != nil {
		return nil, errors.Wrap(err, "decode webhook body")
	}

	eventType := service.PaymentEventType(body.Type)
	if eventType != service.PaymentEventSucceeded && eventType != service.PaymentEventFailed {
		return nil, errors.Errorf("unsupported webhook type %q", body.Type)
	}
	if body.SessionID == "" {
		return nil, errors.New("webhook without session id")
	}

	return &service.PaymentEvent{
		Type:              eventType,
		ProviderSessionID: body.SessionID,
		Payload:           json.RawMessage(payload),
	}, nil
}
