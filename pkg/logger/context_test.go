package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/record/pkg/logger"
)

func TestContextAttrs(t *testing.T) {
	t.Parallel()

	t.Run("accumulates and copies", func(t *testing.T) {
		t.Parallel()
		ctx := context.Background()
		assert.Same(t, ctx, logger.WithContextAttrs(ctx))
		assert.Empty(t, logger.ContextAttrs(ctx))

		ctx = logger.WithContextAttrs(ctx, slog.String("request_id", "req-1"))
		ctx = logger.WithContextAttrs(ctx, logger.Schema("User"))

		attrs := logger.ContextAttrs(ctx)
		require.Len(t, attrs, 2)
		assert.True(t, attrs[0].Equal(slog.String("request_id", "req-1")))
		assert.True(t, attrs[1].Equal(slog.String("schema", "User")))

		attrs[0] = slog.String("mutated", "x")
		assert.True(t, logger.ContextAttrs(ctx)[0].Equal(slog.String("request_id", "req-1")))
	})

	t.Run("logged with context", func(t *testing.T) {
		t.Parallel()
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf))

		ctx := logger.WithContextAttrs(context.Background(), slog.String("request_id", "req-2"))
		log.InfoContext(ctx, "bound")

		var entry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.Equal(t, "req-2", entry["request_id"])
	})
}
