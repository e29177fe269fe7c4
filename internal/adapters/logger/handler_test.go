package logger_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"go.trai.ch/envscan/internal/adapters/logger"
)

func TestPrettyHandler_Attrs(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	handler := logger.NewPrettyHandler(buf, &slog.HandlerOptions{Level: slog.LevelInfo}).
		WithGroup("scan").
		WithAttrs([]slog.Attr{slog.String("owner", "alice")})
	lg := slog.New(handler)

	lg.Info("project done", "records", 12)

	g := goldie.New(t)
	g.Assert(t, "handler_attrs", buf.Bytes())
}

func TestPrettyHandler_Enabled(t *testing.T) {
	tests := []struct {
		name         string
		handlerLevel slog.Level
		recordLevel  slog.Level
		want         bool
	}{
		{"debug below info", slog.LevelInfo, slog.LevelDebug, false},
		{"info at info", slog.LevelInfo, slog.LevelInfo, true},
		{"warn above info", slog.LevelInfo, slog.LevelWarn, true},
		{"debug at debug", slog.LevelDebug, slog.LevelDebug, true},
		{"warn at error", slog.LevelError, slog.LevelWarn, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := logger.NewPrettyHandler(&bytes.Buffer{}, &slog.HandlerOptions{Level: tt.handlerLevel})
			assert.Equal(t, tt.want, handler.Enabled(t.Context(), tt.recordLevel))
		})
	}
}

func TestPrettyHandler_WithGroupEmpty(t *testing.T) {
	handler := logger.NewPrettyHandler(&bytes.Buffer{}, nil)
	assert.Same(t, handler, handler.WithGroup(""))
}
