// Package payment talks to the hosted payment page provider.
package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"market/config"
	"market/internal/domain/constants"
	"market/internal/domain/service"
	"market/internal/errors"

	"github.com/google/uuid"
)

const defaultTimeout = 15 * time.Second

type createSessionRequest struct {
	Reference     string `json:"reference"`
	Amount        string `json:"amount"`
	Currency      string `json:"currency"`
	CustomerEmail string `json:"customer_email,omitempty"`
	SuccessURL    string `json:"success_url"`
	CancelURL     string `json:"cancel_url"`
}

type createSessionResponse struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

// hostedProvider opens sessions on a hosted payment page over HTTP.
type hostedProvider struct {
	baseURL    string
	apiKey     string
	secret     []byte
	httpClient *http.Client
}

// NewHostedProvider creates a provider for the given API base URL.
func NewHostedProvider(baseURL, apiKey, webhookSecret string, timeout time.Duration) service.PaymentProvider {
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &hostedProvider{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		secret:     []byte(webhookSecret),
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (p *hostedProvider) Name() string {
	return constants.PaymentProviderHosted
}

// CreateSession is called once per checkout session; the checkout session id is the idempotency key.
func (p *hostedProvider) CreateSession(ctx context.Context, req service.PaymentRequest) (*service.PaymentSession, error) {
	body, err := json.Marshal(createSessionRequest{
		Reference:     req.CheckoutSessionID.String(),
		Amount:        req.Amount.StringFixed(2),
		Currency:      req.Currency,
		CustomerEmail: req.CustomerEmail,
		SuccessURL:    req.SuccessURL,
		CancelURL:     req.CancelURL,
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/sessions", bytes.NewReader(body))
	if err != nil {
		return nil, errors.WithStack(err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+p.apiKey)
	httpReq.Header.Set("Idempotency-Key", req.CheckoutSessionID.String())

	resp, err := p.httpClient.Do(httpReq)
	if err != nil {
		return nil, errors.Wrap(err, "payment provider request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, errors.Errorf("payment provider returned status %d", resp.StatusCode)
	}

	var out createSessionResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, errors.Wrap(err, "decode payment provider response")
	}
	if out.ID == "" || out.URL == "" {
		return nil, errors.New("payment provider returned an incomplete session")
	}

	return &service.PaymentSession{ProviderSessionID: out.ID, RedirectURL: out.URL}, nil
}

func (p *hostedProvider) VerifyWebhook(payload []byte, signature string) (*service.PaymentEvent, error) {
	return verifyWebhook(p.secret, payload, signature)
}

// sandboxProvider never leaves the process: the redirect goes straight to the success URL.
type sandboxProvider struct {
	secret []byte
}

// NewSandboxProvider creates a provider for local development.
func NewSandboxProvider(webhookSecret string) service.PaymentProvider {
	return &sandboxProvider{secret: []byte(webhookSecret)}
}

func (p *sandboxProvider) Name() string {
	return constants.PaymentProviderSandbox
}

func (p *sandboxProvider) CreateSession(_ context.Context, req service.PaymentRequest) (*service.PaymentSession, error) {
	id := "sandbox_" + uuid.NewString()
	redirect := req.SuccessURL
	if strings.Contains(redirect, "?") {
		redirect += "&session_id=" + id
	} else {
		redirect += "?session_id=" + id
	}

	return &service.PaymentSession{ProviderSessionID: id, RedirectURL: redirect}, nil
}

func (p *sandboxProvider) VerifyWebhook(payload []byte, signature string) (*service.PaymentEvent, error) {
	return verifyWebhook(p.secret, payload, signature)
}

// New picks the provider named in configuration; the sandbox is the default.
func New(cfg *config.Config) (service.PaymentProvider, error) {
	pc := cfg.Payment
	if pc == nil || pc.Provider == "" || pc.Provider == constants.PaymentProviderSandbox {
		secret := ""
		if pc != nil {
			secret = pc.WebhookSecret
		}

		return NewSandboxProvider(secret), nil
	}

	switch pc.Provider {
	case constants.PaymentProviderHosted:
		if pc.BaseURL == "" {
			return nil, errors.New("payment base URL is required for hosted provider")
		}
		if pc.WebhookSecret == "" {
			return nil, errors.New("payment webhook secret is required for hosted provider")
		}

		return NewHostedProvider(pc.BaseURL, pc.APIKey, pc.WebhookSecret, pc.Timeout), nil
	default:
		return nil, errors.Errorf("unknown payment provider: %s", pc.Provider)
	}
}
