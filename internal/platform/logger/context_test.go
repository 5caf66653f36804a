package logger

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoggerContextCarrier(t *testing.T) {
	stored := slog.New(slog.NewJSONHandler(io.Discard, nil))

	t.Run("round trip", func(t *testing.T) {
		ctx := WithLogger(context.Background(), stored)
		assert.Same(t, stored, FromContext(ctx))
		assert.Same(t, stored, FromContextOrDefault(ctx, nil))
	})

	t.Run("empty context falls back to the default", func(t *testing.T) {
		assert.Same(t, slog.Default(), FromContext(context.Background()))
	})

	t.Run("explicit fallback wins over the default", func(t *testing.T) {
		fallback := slog.New(slog.NewJSONHandler(io.Discard, nil))
		assert.Same(t, fallback, FromContextOrDefault(context.Background(), fallback))
		assert.Same(t, slog.Default(), FromContextOrDefault(context.Background(), nil))
	})

	t.Run("nil logger panics", func(t *testing.T) {
		assert.Panics(t, func() {
			WithLogger(context.Background(), nil)
		})
	})
}
