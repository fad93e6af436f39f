// Package logging builds the slp logger and carries it through context.Context.
package logging

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"

	"github.com/m-mizutani/goerr/v2"
)

// DefaultLevel keeps stderr quiet unless something is wrong.
const DefaultLevel = "warn"

type ctxKey struct{}

var loggerKey = ctxKey{}

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

// ParseLevel converts debug|info|warn|error (any case) to a slog.Level.
func ParseLevel(level string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.ToLower(level))); err != nil {
		return 0, goerr.Wrap(err, "invalid log level", goerr.V("level", level))
	}
	return l, nil
}

// New returns a text logger writing to w at the given level.
func New(w io.Writer, level string) (*slog.Logger, error) {
	l, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: l})), nil
}

// With returns a new context with the provided logger embedded.
func With(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// From extracts the logger from ctx. Without one, logs are discarded.
func From(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey).(*slog.Logger); ok && logger != nil {
		return logger
	}
	return discard
}

// ErrorAttrs returns log attributes for err, including goerr values when present.
func ErrorAttrs(err error) []any {
	attrs := []any{slog.String("error", err.Error())}
	var ge *goerr.Error
	if errors.As(err, &ge) {
		attrs = append(attrs, slog.Any("values", ge.Values()))
	}
	return attrs
}
