package main

import (
	"context"
	"log/slog"
	"testing"
)

func TestNopHandlerDisabled(t *testing.T) {
	h := nopHandler{}
	for _, level := range []slog.Level{slog.LevelDebug, slog.LevelInfo, slog.LevelWarn, slog.LevelError} {
		if h.Enabled(context.Background(), level) {
			t.Errorf("nopHandler.Enabled(%v) = true, want false", level)
		}
	}
	if err := h.Handle(context.Background(), slog.Record{}); err != nil {
		t.Errorf("nopHandler.Handle() = %v, want nil", err)
	}
	if _, ok := h.WithAttrs([]slog.Attr{slog.String("k", "v")}).(nopHandler); !ok {
		t.Error("WithAttrs did not return a nopHandler")
	}
	if _, ok := h.WithGroup("g").(nopHandler); !ok {
		t.Error("WithGroup did not return a nopHandler")
	}
}

func TestNewLogger(t *testing.T) {
	silent := newLogger(false)
	if silent.Enabled(context.Background(), slog.LevelError) {
		t.Error("disabled logger should not be enabled at any level")
	}
	verbose := newLogger(true)
	if !verbose.Enabled(context.Background(), slog.LevelDebug) {
		t.Error("debug logger should be enabled at debug level")
	}
}
