package logs

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestMultiHandler(t *testing.T) {
	var a, b bytes.Buffer
	m := &multiHandler{handlers: []slog.Handler{
		slog.NewJSONHandler(&a, &slog.HandlerOptions{Level: slog.LevelInfo}),
		slog.NewTextHandler(&b, &slog.HandlerOptions{Level: slog.LevelWarn}),
	}}

	logger := slog.New(m)

	t.Run("enabled if any handler is", func(t *testing.T) {
		if !m.Enabled(context.Background(), slog.LevelInfo) {
			t.Error("info should be enabled through the json handler")
		}
		if m.Enabled(context.Background(), slog.LevelDebug) {
			t.Error("debug should be disabled on both handlers")
		}
	})

	t.Run("record reaches only enabled handlers", func(t *testing.T) {
		a.Reset()
		b.Reset()

		logger.Info("info line")
		if !strings.Contains(a.String(), "info line") {
			t.Error("json handler did not receive info record")
		}
		if b.Len() != 0 {
			t.Errorf("text handler (warn level) received: %q", b.String())
		}

		logger.Warn("warn line")
		if !strings.Contains(a.String(), "warn line") || !strings.Contains(b.String(), "warn line") {
			t.Error("warn record did not fan out to both handlers")
		}
	})

	t.Run("with attrs propagates", func(t *testing.T) {
		a.Reset()
		b.Reset()

		logger.With(slog.String("req_id", "r-1")).Warn("tagged")
		if !strings.Contains(a.String(), "r-1") || !strings.Contains(b.String(), "r-1") {
			t.Error("attr did not reach both handlers")
		}
	})
}
