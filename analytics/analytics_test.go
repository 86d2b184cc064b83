package analytics

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestLogTracker(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zapcore.InfoLevel)
	tr := NewLogTracker(zap.New(core))

	tr.SetUserProperty("tier", "free")
	tr.Track(SoundToggled, map[string]string{"sound_id": "1", "outcome": "started"})

	entries := logs.FilterMessage("event").All()
	if len(entries) != 1 {
		t.Fatalf("logged %d events, want 1", len(entries))
	}
	ctx := entries[0].ContextMap()
	if ctx["event"] != SoundToggled {
		t.Errorf("event = %v", ctx["event"])
	}
	if ctx["sound_id"] != "1" || ctx["outcome"] != "started" {
		t.Errorf("props = %v", ctx)
	}
	user, ok := ctx["user"].(map[string]string)
	if !ok || user["tier"] != "free" {
		t.Errorf("user = %#v", ctx["user"])
	}
	if entries[0].LoggerName != "analytics" {
		t.Errorf("logger name = %q", entries[0].LoggerName)
	}
}

func TestNop(t *testing.T) {
	t.Parallel()

	Nop.Track(StopAll, nil)
	Nop.SetUserProperty("tier", "premium")
	NewLogTracker(nil).Track(StopAll, nil)
}
