package logger

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/neilotoole/slogt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigure_TextOutput(t *testing.T) {
	var buf bytes.Buffer

	log := Configure(Options{
		Tool:     "tuplegen",
		MinLevel: slog.LevelDebug,
		Output:   &buf,
	})

	log.Debug("generating", "arity", 32)

	out := buf.String()
	assert.Contains(t, out, "generating")
	assert.Contains(t, out, "arity=32")
	assert.Contains(t, out, "tool=tuplegen")
}

func TestConfigure_JSONOutput(t *testing.T) {
	var buf bytes.Buffer

	log := Configure(Options{
		JSON:   true,
		Output: &buf,
	})

	log.Info("drift check passed")

	assert.Contains(t, buf.String(), `"msg":"drift check passed"`)
}

func TestConfigure_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer

	log := Configure(Options{
		MinLevel: slog.LevelWarn,
		Output:   &buf,
	})

	log.Info("suppressed")
	log.Warn("emitted")

	out := buf.String()
	assert.NotContains(t, out, "suppressed")
	assert.Contains(t, out, "emitted")
}

func TestWith_CarriesValues(t *testing.T) {
	// slogt routes records through the test log, keeping test output tidy.
	slog.SetDefault(slogt.New(t))

	ctx := With(context.Background(), "file", "join_generated.go")

	log := Get(ctx)
	require.NotNil(t, log)

	log.Info("wrote file")

	vals := getValues(ctx)
	require.Len(t, vals, 2)
	assert.Equal(t, "file", vals[0])
	assert.Equal(t, "join_generated.go", vals[1])
}

func TestWith_AppendsToExisting(t *testing.T) {
	ctx := With(context.Background(), "a", 1)
	ctx = With(ctx, "b", 2)

	assert.Len(t, getValues(ctx), 4)
}

func TestGet_NilContext(t *testing.T) {
	assert.NotNil(t, Get(nil))
	assert.NotNil(t, Get())
}

func TestOptionsFromEnv(t *testing.T) {
	t.Setenv("LOG_JSON", "true")
	t.Setenv("LOG_LEVEL", "warn")

	opts := OptionsFromEnv("tuplegen")

	assert.Equal(t, "tuplegen", opts.Tool)
	assert.True(t, opts.JSON)
	assert.Equal(t, slog.LevelWarn, opts.MinLevel)
}

func TestEnvLevel(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	assert.Equal(t, slog.LevelDebug, envLevel("LOG_LEVEL"))

	t.Setenv("LOG_LEVEL", "bogus")
	assert.Equal(t, slog.LevelInfo, envLevel("LOG_LEVEL"))
}
