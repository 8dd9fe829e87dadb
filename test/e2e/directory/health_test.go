package directory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHealthEndpoints(t *testing.T) {
	ctx := context.Background()
	client := setupServer(t)

	t.Run("livez reports ok without touching the store", func(t *testing.T) {
		health, err := client.Livez(ctx)
		require.NoError(t, err)
		require.Equal(t, "ok", health.Status)
		require.Equal(t, "test", health.Version)
		require.NotEmpty(t, health.Uptime)
	})

	t.Run("readyz reports the store check", func(t *testing.T) {
		health, err := client.Readyz(ctx)
		require.NoError(t, err)
		require.Equal(t, "ok", health.Status)
		require.NotNil(t, health.Checks)
		require.Equal(t, "ok", health.Checks.Store)
	})
}
