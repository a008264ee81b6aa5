package logging_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/talentops/ledgerlens/pkg/logging"
)

func TestNewWritesToGivenWriter(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.New(&buf)

	logger.Info().Str("stage", "resolve").Msg("canonical bank accounts selected")

	assert.Contains(t, buf.String(), `"stage":"resolve"`)
	assert.Contains(t, buf.String(), "canonical bank accounts selected")
}

func TestDefaultLoggerNotNil(t *testing.T) {
	assert.NotNil(t, logging.Default())
}

func TestFromContextFallsBackToDefault(t *testing.T) {
	assert.Equal(t, logging.Default(), logging.FromContext(context.Background()))
	assert.Equal(t, logging.Default(), logging.FromContext(nil)) //nolint:staticcheck
}

func TestWithLoggerRoundTrip(t *testing.T) {
	tl := logging.NewTestLogger(t)
	ctx := logging.WithLogger(context.Background(), tl.Logger)

	logging.FromContext(ctx).Info().Msg("hello from context")

	assert.True(t, tl.Contains("hello from context"))
}

func TestWithRunID(t *testing.T) {
	tl := logging.NewTestLogger(t)
	ctx := logging.WithLogger(context.Background(), tl.Logger)
	ctx = logging.WithRunID(ctx, "run-123")

	assert.Equal(t, "run-123", logging.RunID(ctx))

	logging.FromContext(ctx).Info().Msg("tagged")
	assert.True(t, tl.Contains(`"run_id":"run-123"`))
}

func TestWithStageAndWorker(t *testing.T) {
	tl := logging.NewTestLogger(t)
	ctx := logging.WithLogger(context.Background(), tl.Logger)
	ctx = logging.WithStage(ctx, "match")
	ctx = logging.WithWorker(ctx, "W-9")

	logging.FromContext(ctx).Debug().Msg("joined")

	assert.True(t, tl.Contains(`"stage":"match"`))
	assert.True(t, tl.Contains(`"worker_id":"W-9"`))
}

func TestConfigureParsesLevel(t *testing.T) {
	original := *logging.Default()
	originalLevel := zerolog.GlobalLevel()
	defer func() {
		logging.SetDefault(original)
		zerolog.SetGlobalLevel(originalLevel)
	}()

	logging.Configure("warn", "json")
	assert.Equal(t, zerolog.WarnLevel, zerolog.GlobalLevel())

	// Unknown level falls back to info
	logging.Configure("nope", "json")
	assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())
}
