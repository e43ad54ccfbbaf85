// internal/logging/multi_handler_test.go
package logging

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockHandler is a test handler that can be configured to fail
type mockHandler struct {
	enabled   bool
	handleErr error
	handled   int
}

func (h *mockHandler) Enabled(_ context.Context, _ slog.Level) bool {
	return h.enabled
}

func (h *mockHandler) Handle(_ context.Context, _ slog.Record) error {
	h.handled++
	return h.handleErr
}

func (h *mockHandler) WithAttrs(_ []slog.Attr) slog.Handler { return h }

func (h *mockHandler) WithGroup(_ string) slog.Handler { return h }

func TestMultiHandler_FansOut(t *testing.T) {
	buf1 := &bytes.Buffer{}
	buf2 := &bytes.Buffer{}

	multi := NewMultiHandler(
		slog.NewTextHandler(buf1, &slog.HandlerOptions{Level: slog.LevelInfo}),
		slog.NewTextHandler(buf2, &slog.HandlerOptions{Level: slog.LevelInfo}),
	)

	logger := slog.New(multi)
	logger.Info("test message", "key", "value")

	assert.Contains(t, buf1.String(), "test message")
	assert.Contains(t, buf2.String(), "test message")
}

func TestMultiHandler_Enabled(t *testing.T) {
	ctx := context.Background()

	multi := NewMultiHandler(
		&mockHandler{enabled: false},
		&mockHandler{enabled: true},
	)
	assert.True(t, multi.Enabled(ctx, slog.LevelInfo))

	multi = NewMultiHandler(
		&mockHandler{enabled: false},
		&mockHandler{enabled: false},
	)
	assert.False(t, multi.Enabled(ctx, slog.LevelInfo))
}

func TestMultiHandler_SkipsDisabledHandlers(t *testing.T) {
	on := &mockHandler{enabled: true}
	off := &mockHandler{enabled: false}

	multi := NewMultiHandler(off, on)
	rec := slog.NewRecord(time.Now(), slog.LevelInfo, "msg", 0)

	require.NoError(t, multi.Handle(context.Background(), rec))
	assert.Equal(t, 1, on.handled)
	assert.Equal(t, 0, off.handled)
}

func TestMultiHandler_FailFast(t *testing.T) {
	failErr := errors.New("sink full")
	failing := &mockHandler{enabled: true, handleErr: failErr}
	after := &mockHandler{enabled: true}

	multi := NewMultiHandler(failing, after)
	rec := slog.NewRecord(time.Now(), slog.LevelError, "msg", 0)

	err := multi.Handle(context.Background(), rec)
	require.ErrorIs(t, err, failErr)

	// Handlers after the failing one must not run.
	assert.Equal(t, 0, after.handled)
}

func TestMultiHandler_WithAttrs(t *testing.T) {
	buf := &bytes.Buffer{}
	multi := NewMultiHandler(
		slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelInfo}),
	)

	logger := slog.New(multi.WithAttrs([]slog.Attr{slog.String("component", "bench")}))
	logger.Info("attributed")

	assert.Contains(t, buf.String(), "component=bench")
}

func TestMultiHandler_WithGroup(t *testing.T) {
	buf := &bytes.Buffer{}
	multi := NewMultiHandler(
		slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelInfo}),
	)

	logger := slog.New(multi.WithGroup("run"))
	logger.Info("grouped", "id", 7)

	assert.Contains(t, buf.String(), "run.id=7")
}
