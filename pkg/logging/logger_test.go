package logging_test

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crosswalklabs/crosswalk/pkg/logging"
)

func TestNewJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.NewJSON(&buf)

	logger.Info().Str("field", "isin").Int("rows", 3).Msg("folding records")

	var event map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &event))
	assert.Equal(t, "folding records", event["message"])
	assert.Equal(t, "isin", event["field"])
	assert.Equal(t, float64(3), event["rows"])
}

func TestDefaultIsUsable(t *testing.T) {
	log := logging.Default()
	require.NotNil(t, log)
	// Must not panic.
	log.Debug().Msg("noop")
}

func TestContextRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.NewJSON(&buf)

	ctx := logging.WithLogger(context.Background(), &logger)
	got := logging.FromContext(ctx)
	assert.Equal(t, &logger, got)

	// Missing logger falls back to the default.
	assert.Equal(t, logging.Default(), logging.FromContext(context.Background()))
	assert.Equal(t, logging.Default(), logging.FromContext(nil)) //nolint:staticcheck // nil context is the documented fallback
}

func TestWithRunID(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.NewJSON(&buf)

	ctx := logging.WithLogger(context.Background(), &logger)
	ctx = logging.WithRunID(ctx, "run-42")

	assert.Equal(t, "run-42", logging.RunID(ctx))
	assert.Equal(t, "", logging.RunID(context.Background()))

	logging.Ctx(ctx).Info().Msg("components extracted")

	var event map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &event))
	assert.Equal(t, "run-42", event["run_id"])
}
