package metrics

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProvider(t *testing.T) {
	t.Run("Success_CreateProviderWithNamespace", func(t *testing.T) {
		provider, err := NewProvider("voice")

		require.NoError(t, err)
		assert.NotNil(t, provider.MeterProvider())
		assert.NotNil(t, provider.Handler())
		assert.NotNil(t, provider.registry)
	})

	t.Run("Success_ProvidersAreIsolated", func(t *testing.T) {
		first, err := NewProvider("voice")
		require.NoError(t, err)
		second, err := NewProvider("voice")
		require.NoError(t, err)

		bm, err := NewBusinessMetrics(first.MeterProvider(), "voice")
		require.NoError(t, err)
		bm.RecordDialTarget(context.Background(), "number")

		assert.Contains(t, scrape(t, first), "voice_dial_targets_total")
		assert.NotContains(t, scrape(t, second), "voice_dial_targets_total")
	})
}

func TestProvider_Shutdown(t *testing.T) {
	t.Run("Success_ShutdownProvider", func(t *testing.T) {
		provider, err := NewProvider("voice")
		require.NoError(t, err)

		assert.NoError(t, provider.Shutdown(context.Background()))
	})

	t.Run("Success_ShutdownNilProvider", func(t *testing.T) {
		provider := &Provider{meterProvider: nil}

		assert.NoError(t, provider.Shutdown(context.Background()))
	})
}

func TestProvider_TargetInfo(t *testing.T) {
	provider, err := NewProvider("voice")
	require.NoError(t, err)
	defer func() {
		assert.NoError(t, provider.Shutdown(context.Background()))
	}()

	bm, err := NewBusinessMetrics(provider.MeterProvider(), "voice")
	require.NoError(t, err)
	bm.RecordDialTarget(context.Background(), "client")

	output := scrape(t, provider)

	assert.Regexp(t, `target_info\{[^}]*service_name="voice"`, output)
}

func TestProvider_OperationDurationBuckets(t *testing.T) {
	provider, err := NewProvider("voice")
	require.NoError(t, err)
	defer func() {
		assert.NoError(t, provider.Shutdown(context.Background()))
	}()

	bm, err := NewBusinessMetrics(provider.MeterProvider(), "voice")
	require.NoError(t, err)
	bm.RecordDuration(context.Background(), "voice", "token_issue", 200*time.Microsecond, "success")

	output := scrape(t, provider)

	assert.Regexp(t, `voice_operation_duration_seconds_bucket\{[^}]*le="0\.00025"[^}]*\} 1`, output)
	assert.Regexp(t, `voice_operation_duration_seconds_bucket\{[^}]*le="0\.0001"[^}]*\} 0`, output)
}
