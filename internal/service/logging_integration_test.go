//go:build integration

package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/export-go/internal/circuitbreaker"
	"github.com/guttosm/export-go/internal/domain/model"
	"github.com/guttosm/export-go/internal/repository"
	"github.com/guttosm/export-go/internal/testutil"
)

func setupLoggingDB(t *testing.T) (*repository.MongoDB, func()) {
	t.Helper()
	ctx := context.Background()

	mongoContainer, err := testutil.SetupMongoDB(ctx)
	require.NoError(t, err)

	db, err := repository.NewMongoDB(mongoContainer.URI, testutil.SanitizeDBName(t.Name()))
	require.NoError(t, err)

	return db, func() {
		_ = db.Close(ctx)
		require.NoError(t, mongoContainer.Cleanup(ctx))
	}
}

func TestLoggingService_Integration(t *testing.T) {
	ctx := context.Background()
	db, cleanup := setupLoggingDB(t)
	defer cleanup()

	require.NoError(t, db.SetLogsTTL(ctx, 24*time.Hour))

	loggingService := NewLoggingService(repository.NewLogsRepository(db))

	t.Run("create single audit entry", func(t *testing.T) {
		entry := &model.LogEntry{
			Level:      "info",
			Message:    "calculation completed",
			RequestID:  "req-calc-1",
			Method:     "POST",
			Path:       "/api/calculate",
			ActionType: model.ActionCalculate,
		}
		entry.WithField("total_cost", 176.5)

		require.NoError(t, loggingService.CreateLog(ctx, entry))
		assert.False(t, entry.ID.IsZero())
	})

	t.Run("create multiple entries", func(t *testing.T) {
		err := loggingService.CreateLogs(ctx, []*model.LogEntry{
			{Level: "info", Message: "language changed", RequestID: "req-lang-1", ActionType: model.ActionLanguageChange, Path: "/api/preferences/language"},
			{Level: "warn", Message: "login failed", RequestID: "req-login-1", ActionType: model.ActionLogin, Path: "/api/auth/login"},
		})
		require.NoError(t, err)
	})

	t.Run("query by action type", func(t *testing.T) {
		entries, err := loggingService.QueryLogs(ctx, model.LogQueryOptions{ActionType: model.ActionCalculate})
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "req-calc-1", entries[0].RequestID)
		assert.Equal(t, 176.5, entries[0].Fields["total_cost"])
	})

	t.Run("query by path substring is literal", func(t *testing.T) {
		entries, err := loggingService.QueryLogs(ctx, model.LogQueryOptions{Path: "/api/auth"})
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, model.ActionLogin, entries[0].ActionType)

		entries, err = loggingService.QueryLogs(ctx, model.LogQueryOptions{Path: ".*"})
		require.NoError(t, err)
		assert.Empty(t, entries)
	})

	t.Run("count with filter", func(t *testing.T) {
		count, err := loggingService.CountLogs(ctx, model.LogQueryOptions{Level: "info"})
		require.NoError(t, err)
		assert.Equal(t, int64(2), count)

		count, err = loggingService.CountLogs(ctx, model.LogQueryOptions{})
		require.NoError(t, err)
		assert.Equal(t, int64(3), count)
	})

	t.Run("time range", func(t *testing.T) {
		future := time.Now().Add(time.Hour)
		entries, err := loggingService.QueryLogs(ctx, model.LogQueryOptions{StartTime: &future})
		require.NoError(t, err)
		assert.Empty(t, entries)
	})
}

func TestLoggingServiceWithCircuitBreaker_Integration(t *testing.T) {
	ctx := context.Background()
	db, cleanup := setupLoggingDB(t)
	defer cleanup()

	wrapped := repository.NewLogsRepositoryWithCircuitBreaker(
		repository.NewLogsRepository(db),
		circuitbreaker.New(circuitbreaker.Config{
			Name:             "test-logs",
			FailureThreshold: 2,
			SuccessThreshold: 1,
			Timeout:          100 * time.Millisecond,
		}),
	)
	loggingService := NewLoggingService(wrapped)

	require.NoError(t, loggingService.CreateLog(ctx, &model.LogEntry{Level: "info", Message: "through the breaker"}))

	count, err := loggingService.CountLogs(ctx, model.LogQueryOptions{})
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
	assert.Equal(t, circuitbreaker.StateClosed, wrapped.GetCircuitBreaker().State())
}
