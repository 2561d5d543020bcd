package logging

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestRunIDRoundTrip(t *testing.T) {
	ctx := WithRunID(context.Background(), "run-123")
	if got := RunID(ctx); got != "run-123" {
		t.Errorf("RunID() = %q, want %q", got, "run-123")
	}
}

func TestRunIDMissing(t *testing.T) {
	if got := RunID(context.Background()); got != "" {
		t.Errorf("RunID() = %q, want empty", got)
	}
}

func TestFromContextAttachesRunID(t *testing.T) {
	var buf bytes.Buffer
	saved := defaultLogger
	defaultLogger = slog.New(slog.NewJSONHandler(&buf, nil))
	defer func() { defaultLogger = saved }()

	ctx := WithRunID(context.Background(), "run-abc")
	logger := FromContext(ctx)
	if logger == nil {
		t.Fatal("FromContext returned nil logger")
	}
	logger.Info("probe")
	if !strings.Contains(buf.String(), `"run_id":"run-abc"`) {
		t.Errorf("log output %q does not carry run_id run-abc", buf.String())
	}
}

func TestInitSwitchesFormat(t *testing.T) {
	Init(LevelDebug, FormatText)
	if GetLogger() == nil {
		t.Fatal("GetLogger() returned nil after Init")
	}
	Init(LevelInfo, FormatJSON)
}
