//go:build integration

package app

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/export-go/config"
	"github.com/guttosm/export-go/internal/domain/model"
)

func integrationDatabaseConfig(t *testing.T) config.DatabaseConfig {
	return config.DatabaseConfig{
		URI:                            getSharedContainerURI(),
		DatabaseName:                   sanitizeDBNameForApp(t.Name()),
		LogsTTL:                        24 * time.Hour,
		Enabled:                        true,
		CircuitBreakerFailureThreshold: 5,
		CircuitBreakerSuccessThreshold: 2,
		CircuitBreakerTimeout:          30 * time.Second,
	}
}

func TestInitializeDatabase_Integration(t *testing.T) {
	ctx := context.Background()

	components := InitializeDatabase(integrationDatabaseConfig(t))
	require.NotNil(t, components)
	t.Cleanup(func() { components.Close(ctx) })

	assert.NotNil(t, components.DB)
	assert.NotNil(t, components.LoggingService)
	assert.False(t, components.LogsCircuitBreaker.IsOpen())
	require.NoError(t, components.DB.HealthCheck(ctx))

	err := components.LoggingService.CreateLog(ctx, &model.LogEntry{
		Level:      "info",
		Message:    "Calculation completed",
		ActionType: model.ActionCalculate,
	})
	require.NoError(t, err)

	n, err := components.LoggingService.CountLogs(ctx, model.LogQueryOptions{ActionType: model.ActionCalculate})
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)
}

func TestInitializeDatabase_TTLCanChange_Integration(t *testing.T) {
	ctx := context.Background()
	cfg := integrationDatabaseConfig(t)

	first := InitializeDatabase(cfg)
	require.NotNil(t, first)
	first.Close(ctx)

	// a changed TTL replaces the index instead of failing startup
	cfg.LogsTTL = time.Hour
	second := InitializeDatabase(cfg)
	require.NotNil(t, second)
	t.Cleanup(func() { second.Close(ctx) })
}

func TestInitializeDatabase_Unreachable_Integration(t *testing.T) {
	components := InitializeDatabase(config.DatabaseConfig{
		URI:          "mongodb://127.0.0.1:1",
		DatabaseName: "unreachable",
		Enabled:      true,
	})

	assert.Nil(t, components)
}
