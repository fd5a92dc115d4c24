package logger

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetup(t *testing.T) {
	prev := slog.Default()
	defer slog.SetDefault(prev)

	Setup("debug", "text")
	assert.True(t, slog.Default().Enabled(context.Background(), slog.LevelDebug))

	Setup("error", "json")
	assert.False(t, slog.Default().Enabled(context.Background(), slog.LevelInfo))
	assert.True(t, slog.Default().Enabled(context.Background(), slog.LevelError))
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, parseLevel("debug"))
	assert.Equal(t, slog.LevelWarn, parseLevel("warn"))
	assert.Equal(t, slog.LevelError, parseLevel("error"))
	assert.Equal(t, slog.LevelInfo, parseLevel("info"))
	assert.Equal(t, slog.LevelInfo, parseLevel("verbose"))
}

func TestFromContext(t *testing.T) {
	ctx := WithOperation(context.Background(), "filter_tokens")
	assert.NotNil(t, FromContext(ctx))

	// a bare context still yields a usable logger
	assert.NotNil(t, FromContext(context.Background()))
}

func TestWithComponent(t *testing.T) {
	assert.NotNil(t, WithComponent("corpus"))
}
