package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"pubsub": map[string]any{
			"topicId": "",
		},
		"secretKey": map[string]any{
			"access": "",
		},
		"checkout": map[string]any{
			"anonymousEmailPrefix": "",
		},
		"storage": map[string]any{
			"bucketURL": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "PUBSUB_TOPICID", want: "pubsub.topicId"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "CHECKOUT_ANONYMOUSEMAILPREFIX", want: "checkout.anonymousEmailPrefix"},
		{envKey: "STORAGE_BUCKETURL", want: "storage.bucketURL"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, "anonymous-session-", cfg.Checkout.AnonymousEmailPrefix)
	assert.Equal(t, defaultCurrency, cfg.Checkout.Currency)
	assert.Equal(t, defaultTokenTTL, cfg.Auth.TokenTTL)
	assert.Equal(t, defaultCacheTTL, cfg.Redis.TTL)
	assert.Equal(t, defaultClientTimeout, cfg.Client.Timeout)
}

func TestApplyDefaults_KeepsConfiguredValues(t *testing.T) {
	cfg := &Config{
		Checkout: &CheckoutConfig{AnonymousEmailPrefix: "guest-", Currency: "USD"},
		Auth:     &AuthConfig{TokenTTL: time.Hour},
	}
	applyDefaults(cfg)

	assert.Equal(t, "guest-", cfg.Checkout.AnonymousEmailPrefix)
	assert.Equal(t, "USD", cfg.Checkout.Currency)
	assert.Equal(t, time.Hour, cfg.Auth.TokenTTL)
}
