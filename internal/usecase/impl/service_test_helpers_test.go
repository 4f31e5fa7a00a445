package impl

import (
	"context"
	"io"
	"log/slog"
	"time"

	"market/config"
	"market/internal/domain/repository"
	mockRepo "market/internal/mocks/repository"

	"github.com/stretchr/testify/mock"
)

const testAnonymousPrefix = "anonymous-session-"

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Auth: &config.AuthConfig{
			BcryptCost: 4,
			TokenTTL:   time.Hour,
		},
		Checkout: &config.CheckoutConfig{
			AnonymousEmailPrefix: testAnonymousPrefix,
			Currency:             "eur",
			SuccessURL:           "https://market.test/success",
			CancelURL:            "https://market.test/cancel",
		},
		Firebase: &config.FirebaseConfig{
			AdminTopic: "admins",
		},
	}
}

// expectTransaction makes the transaction manager run every callback against factory.
func expectTransaction(txManager *mockRepo.MockTransactionManager, factory *mockRepo.MockRepositoryFactory) {
	txManager.EXPECT().
		Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		}).
		Maybe()
}

func fixedClock(at time.Time) func() time.Time {
	return func() time.Time { return at }
}

func ptr[T any](v T) *T {
	return &v
}
