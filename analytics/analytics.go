// SPDX-License-Identifier: EPL-2.0

// Package analytics records user actions.
//
// No vendor SDK is linked in. The log tracker writes events as structured
// log entries, which is enough to see how the app is used during testing.
package analytics

import (
	"maps"
	"slices"
	"sync"

	"go.uber.org/zap"
)

// Event names emitted by the app.
const (
	SoundToggled       = "sound_toggled"
	StopAll            = "stop_all"
	TimerStarted       = "timer_started"
	TimerStopped       = "timer_stopped"
	MixSaved           = "mix_saved"
	MixPlayed          = "mix_played"
	MixFavoriteToggled = "mix_favorite_toggled"
	MixDeleted         = "mix_deleted"
	PremiumUnlocked    = "premium_unlocked"
	SettingsSaved      = "settings_saved"
	SettingsReset      = "settings_reset"
	MixExported        = "mix_exported"
)

// Tracker receives events. Implementations must be safe for concurrent use
// and must not block.
type Tracker interface {
	Track(event string, props map[string]string)
	SetUserProperty(name, value string)
}

// Nop drops everything.
var Nop Tracker = nopTracker{}

type nopTracker struct{}

func (nopTracker) Track(string, map[string]string) {}
func (nopTracker) SetUserProperty(string, string)  {}

// LogTracker logs every event at info level with the current user
// properties attached.
type LogTracker struct {
	logger *zap.Logger

	mu    sync.RWMutex
	props map[string]string
}

func NewLogTracker(logger *zap.Logger) *LogTracker {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LogTracker{
		logger: logger.Named("analytics"),
		props:  make(map[string]string),
	}
}

func (t *LogTracker) Track(event string, props map[string]string) {
	fields := make([]zap.Field, 0, len(props)+2)
	fields = append(fields, zap.String("event", event))
	for _, k := range slices.Sorted(maps.Keys(props)) {
		fields = append(fields, zap.String(k, props[k]))
	}

	t.mu.RLock()
	if len(t.props) > 0 {
		fields = append(fields, zap.Any("user", maps.Clone(t.props)))
	}
	t.mu.RUnlock()

	t.logger.Info("event", fields...)
}

func (t *LogTracker) SetUserProperty(name, value string) {
	t.mu.Lock()
	t.props[name] = value
	t.mu.Unlock()
}
