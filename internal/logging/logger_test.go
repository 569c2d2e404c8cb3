// Tourguide - Smart Tourism Recommendation Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tourguide

package logging

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Level != "info" {
		t.Errorf("Level = %q, want info", cfg.Level)
	}
	if cfg.Format != "json" {
		t.Errorf("Format = %q, want json", cfg.Format)
	}
	if !cfg.Timestamp {
		t.Error("Timestamp should default to true")
	}
}

func TestInit(t *testing.T) {
	var buf bytes.Buffer
	Init(Config{Level: "debug", Format: "json", Output: &buf})
	defer Init(DefaultConfig())

	Info().Str("spot", "S1").Msg("test message")

	out := buf.String()
	if !strings.Contains(out, "test message") {
		t.Errorf("output missing message: %s", out)
	}
	if !strings.Contains(out, `"level":"info"`) {
		t.Errorf("output missing level: %s", out)
	}
	if !strings.Contains(out, `"spot":"S1"`) {
		t.Errorf("output missing field: %s", out)
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  zerolog.Level
	}{
		{"trace", zerolog.TraceLevel},
		{"DEBUG", zerolog.DebugLevel},
		{"info", zerolog.InfoLevel},
		{"warning", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"off", zerolog.Disabled},
		{"bogus", zerolog.InfoLevel},
		{"", zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := parseLevel(tt.input); got != tt.want {
				t.Errorf("parseLevel(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestValidLevel(t *testing.T) {
	if !ValidLevel("warn") {
		t.Error("warn should be valid")
	}
	if ValidLevel("loud") {
		t.Error("loud should not be valid")
	}
}

func TestCtxAddsIDs(t *testing.T) {
	var buf bytes.Buffer
	Init(Config{Level: "debug", Output: &buf})
	defer Init(DefaultConfig())

	ctx := ContextWithCorrelationID(context.Background(), "abc12345")
	ctx = ContextWithRequestID(ctx, "req-1")
	Ctx(ctx).Info().Msg("with ids")

	out := buf.String()
	if !strings.Contains(out, `"correlation_id":"abc12345"`) {
		t.Errorf("missing correlation_id: %s", out)
	}
	if !strings.Contains(out, `"request_id":"req-1"`) {
		t.Errorf("missing request_id: %s", out)
	}
}

func TestContextWithNewCorrelationIDKeepsExisting(t *testing.T) {
	ctx := ContextWithCorrelationID(context.Background(), "keepme00")
	ctx = ContextWithNewCorrelationID(ctx)
	if got := CorrelationIDFromContext(ctx); got != "keepme00" {
		t.Errorf("correlation ID = %q, want keepme00", got)
	}

	fresh := ContextWithNewCorrelationID(context.Background())
	if got := CorrelationIDFromContext(fresh); len(got) != 8 {
		t.Errorf("generated correlation ID %q, want 8 chars", got)
	}
}

func TestSlogHandler(t *testing.T) {
	var buf bytes.Buffer
	Init(Config{Level: "debug", Output: &buf})
	defer Init(DefaultConfig())

	slogger := NewSlogLogger().WithGroup("svc")
	slogger.Info("service started", "name", "status-server")

	out := buf.String()
	if !strings.Contains(out, "service started") {
		t.Errorf("missing message: %s", out)
	}
	if !strings.Contains(out, `"svc.name":"status-server"`) {
		t.Errorf("missing grouped attr: %s", out)
	}
}

func TestWithComponent(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(NewTestLogger(&buf))
	defer Init(DefaultConfig())

	remoteLog := WithComponent("remote")
	remoteLog.Info().Msg("tagged")
	Err(errors.New("boom")).Msg("failed")

	out := buf.String()
	if !strings.Contains(out, `"component":"remote"`) {
		t.Errorf("missing component: %s", out)
	}
	if !strings.Contains(out, `"error":"boom"`) || !strings.Contains(out, `"level":"error"`) {
		t.Errorf("Err() did not log an error event: %s", out)
	}
}
