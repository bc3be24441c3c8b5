package script

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amp-labs/tuples/logger"
)

var errScript = errors.New("script failed")

func TestExit(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		code     int
		expected string
	}{
		{
			name:     "exit code 0",
			code:     0,
			expected: "exit 0",
		},
		{
			name:     "exit code 1",
			code:     1,
			expected: "exit 1",
		},
		{
			name:     "exit code 42",
			code:     42,
			expected: "exit 42",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := Exit(tt.code)
			require.Error(t, err)
			assert.Equal(t, tt.expected, err.Error())

			var exitErr *exitError

			require.ErrorAs(t, err, &exitErr)
			assert.Equal(t, tt.code, exitErr.code)
			assert.NoError(t, exitErr.err)
		})
	}
}

func TestExitWithError(t *testing.T) {
	t.Parallel()

	err := ExitWithError(errScript)

	require.Error(t, err)
	assert.Equal(t, "exit 1: script failed", err.Error())

	var exitErr *exitError

	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 1, exitErr.code)
	assert.Equal(t, errScript, exitErr.err)
}

func TestExitWithErrorMessage(t *testing.T) {
	t.Parallel()

	err := ExitWithErrorMessage("bad value: %d", 7)

	require.Error(t, err)
	assert.Equal(t, "exit 1: bad value: 7", err.Error())
}

func TestRun_Success(t *testing.T) {
	called := false

	code := run("test-script", func(ctx context.Context) error {
		called = true

		require.NotNil(t, ctx)

		return nil
	}, false)

	assert.Zero(t, code)
	assert.True(t, called)
}

func TestRun_Error(t *testing.T) {
	code := run("test-script", func(context.Context) error {
		return errScript
	}, false)

	assert.Equal(t, 1, code)
}

func TestRun_ExitCode(t *testing.T) {
	code := run("test-script", func(context.Context) error {
		return Exit(3)
	}, false)

	assert.Equal(t, 3, code)
}

func TestRun_ExitZeroIsClean(t *testing.T) {
	out := &bytes.Buffer{}

	code := run("test-script", func(context.Context) error {
		return Exit(0)
	}, false, func(options *logger.Options) {
		options.Output = out
	})

	assert.Zero(t, code)
	assert.Empty(t, out.String())
}

func TestRun_NilCallback(t *testing.T) {
	code := run("test-script", nil, false)

	assert.Equal(t, 1, code)
}

func TestRun_EnvironmentAppliesUnderOptions(t *testing.T) {
	t.Setenv("LOG_JSON", "true")

	out := &bytes.Buffer{}

	code := run("test-script", func(context.Context) error {
		return ExitWithError(errScript)
	}, false, func(options *logger.Options) {
		options.Output = out
	})

	assert.Equal(t, 1, code)
	assert.Contains(t, out.String(), `"msg":"error running script"`)
	assert.Contains(t, out.String(), `"tool":"test-script"`)
}

func TestRun_OptionsOverrideEnvironment(t *testing.T) {
	t.Setenv("LOG_LEVEL", "error")

	out := &bytes.Buffer{}

	code := run("test-script", func(ctx context.Context) error {
		logger.Get(ctx).Warn("heads up")

		return nil
	}, false, func(options *logger.Options) {
		options.Output = out
		options.MinLevel = slog.LevelWarn
	})

	assert.Zero(t, code)
	assert.Contains(t, out.String(), "heads up")
}

func TestRun_LogsError(t *testing.T) {
	out := &bytes.Buffer{}

	code := run("test-script", func(context.Context) error {
		return ExitWithError(errScript)
	}, false, func(options *logger.Options) {
		options.Output = out
		options.MinLevel = slog.LevelError
	})

	assert.Equal(t, 1, code)
	assert.Contains(t, out.String(), "script failed")
	assert.Contains(t, out.String(), "tool=test-script")
}
