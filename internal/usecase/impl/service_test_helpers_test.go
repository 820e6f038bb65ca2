package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"ecodeli/config"
	"ecodeli/internal/domain/repository"
	mockRepo "ecodeli/internal/mocks/repository"

	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Tracking: &config.TrackingConfig{
			DefaultSpeedKmh:     30,
			DefaultRemainingKm:  10,
			LiveHistoryLimit:    50,
			SummaryHistoryLimit: 10,
		},
		Outbox: &config.OutboxConfig{
			BatchSize:   100,
			MaxAttempts: 5,
		},
		Search: &config.SearchConfig{
			DefaultRadiusKm: 10,
			MaxRadiusKm:     50,
			MaxCandidates:   500,
		},
	}
}

// expectExecute wires the transaction manager mock to run the transactional
// closure against a factory configured by setup, propagating the closure's
// error as the transaction outcome.
func expectExecute(t *testing.T, txManager *mockRepo.MockTransactionManager, ctx context.Context, setup func(factory *mockRepo.MockRepositoryFactory)) {
	t.Helper()

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			setup(factory)

			return fn(factory)
		})
}
