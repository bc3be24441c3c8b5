// Package logger configures slog for the tuplegen tool and lets callers
// carry structured key/value pairs through a context.Context.
package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
)

// It's considered good practice to use unexported custom types for context keys.
// This avoids collisions with other packages that might be using the same string
// values for their own keys.
type contextKey string

const valuesKey = contextKey("loggerValues")

// configMutex protects concurrent calls to Configure, which modifies the
// process-wide default logger.
var configMutex sync.Mutex //nolint:gochecknoglobals

// Options is used to configure logging.
type Options struct {
	Tool     string
	JSON     bool
	MinLevel slog.Level
	Output   io.Writer
}

// Configure configures logging for the tool and returns the default logger.
// This function is thread-safe but modifies global state, so concurrent calls
// will be serialized.
func Configure(opts Options) *slog.Logger {
	configMutex.Lock()
	defer configMutex.Unlock()

	if opts.Output == nil {
		opts.Output = os.Stderr
	}

	var handler slog.Handler

	if opts.JSON {
		handler = slog.NewJSONHandler(opts.Output, &slog.HandlerOptions{
			Level: opts.MinLevel,
		})
	} else {
		handler = slog.NewTextHandler(opts.Output, &slog.HandlerOptions{
			Level: opts.MinLevel,
		})
	}

	log := slog.New(handler)

	if opts.Tool != "" {
		log = log.With("tool", opts.Tool)
	}

	slog.SetDefault(log)

	return log
}

// OptionsFromEnv returns Options seeded from the environment: LOG_JSON
// switches the handler to JSON output and LOG_LEVEL sets the minimum level.
// Unset or unrecognized values fall back to text output at info level.
func OptionsFromEnv(tool string) Options {
	return Options{
		Tool:     tool,
		JSON:     envBool("LOG_JSON"),
		MinLevel: envLevel("LOG_LEVEL"),
	}
}

// ConfigureFromEnv configures logging from the environment. See
// OptionsFromEnv for the variables it reads.
func ConfigureFromEnv(tool string) *slog.Logger {
	return Configure(OptionsFromEnv(tool))
}

func envBool(name string) bool {
	switch strings.ToLower(os.Getenv(name)) {
	case "1", "true", "yes":
		return true
	default:
		return false
	}
}

func envLevel(name string) slog.Level {
	var level slog.Level

	raw := os.Getenv(name)
	if raw == "" {
		return slog.LevelInfo
	}

	if err := level.UnmarshalText([]byte(raw)); err != nil {
		return slog.LevelInfo
	}

	return level
}

// With returns a new context with the given key/value pairs added. Loggers
// returned by Get for the derived context carry them automatically.
func With(ctx context.Context, values ...any) context.Context {
	if len(values) == 0 && ctx != nil {
		// Corner case, don't bother creating a new context.
		return ctx
	}

	vals := append(getValues(ctx), values...)

	return context.WithValue(ctx, valuesKey, vals)
}

// Get returns the default logger, enriched with any key/value pairs the
// given context carries. A nil or absent context yields the plain default.
func Get(ctx ...context.Context) *slog.Logger {
	log := slog.Default()

	for _, c := range ctx {
		if c == nil {
			continue
		}

		if vals := getValues(c); vals != nil {
			log = log.With(vals...)
		}

		break
	}

	return log
}

func getValues(ctx context.Context) []any {
	if ctx == nil {
		return nil
	}

	vals, ok := ctx.Value(valuesKey).([]any)
	if !ok {
		return nil
	}

	return vals
}
