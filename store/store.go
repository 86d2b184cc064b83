// SPDX-License-Identifier: EPL-2.0

package store

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/vmihailenco/msgpack/v5"
)

var (
	prefsKey  = Key{"prefs"}
	mixPrefix = Key{"mix"}
)

// Preferences are the user settings that outlive a run.
type Preferences struct {
	Premium             bool      `msgpack:"premium"`
	PremiumExpiry       time.Time `msgpack:"premium_expiry"`
	AdsEnabled          bool      `msgpack:"ads_enabled"`
	DefaultTimerMinutes int       `msgpack:"default_timer_minutes"`
	DefaultVolume       float64   `msgpack:"default_volume"`
	ToggleFadeMillis    int       `msgpack:"toggle_fade_ms"`
	RemoveFadeMillis    int       `msgpack:"remove_fade_ms"`
}

func DefaultPreferences() Preferences {
	return Preferences{
		AdsEnabled:          true,
		DefaultTimerMinutes: 30,
		DefaultVolume:       0.7,
		ToggleFadeMillis:    1000,
		RemoveFadeMillis:    500,
	}
}

// ToggleFade is the fade applied when a sound is started or stopped by a
// toggle.
func (p Preferences) ToggleFade() time.Duration {
	return time.Duration(p.ToggleFadeMillis) * time.Millisecond
}

// RemoveFade is the fade applied when a sound is removed from the mix.
func (p Preferences) RemoveFade() time.Duration {
	return time.Duration(p.RemoveFadeMillis) * time.Millisecond
}

// TimerDuration is DefaultTimerMinutes as a duration.
func (p Preferences) TimerDuration() time.Duration {
	return time.Duration(p.DefaultTimerMinutes) * time.Minute
}

// PremiumActive reports whether premium is on at now. A zero expiry never
// lapses.
func (p Preferences) PremiumActive(now time.Time) bool {
	if !p.Premium {
		return false
	}
	return p.PremiumExpiry.IsZero() || now.Before(p.PremiumExpiry)
}

// Mix is a saved set of sounds.
type Mix struct {
	ID        string    `msgpack:"id"`
	Name      string    `msgpack:"name"`
	SoundIDs  []int     `msgpack:"sound_ids"`
	CreatedAt time.Time `msgpack:"created_at"`
	LastUsed  time.Time `msgpack:"last_used"`
	Favorite  bool      `msgpack:"favorite"`
}

// Store keeps preferences and mixes as msgpack records in a Backend.
type Store struct {
	b   Backend
	now func() time.Time
}

// Option configures a Store.
type Option func(*Store)

// WithClock replaces time.Now for timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

func New(b Backend, opts ...Option) *Store {
	s := &Store{b: b, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Preferences returns the saved preferences, or DefaultPreferences when none
// were saved yet.
func (s *Store) Preferences(ctx context.Context) (Preferences, error) {
	data, err := s.b.Get(ctx, prefsKey)
	if errors.Is(err, ErrNotFound) {
		return DefaultPreferences(), nil
	}
	if err != nil {
		return Preferences{}, fmt.Errorf("loading preferences: %w", err)
	}

	p := DefaultPreferences()
	if err := msgpack.Unmarshal(data, &p); err != nil {
		return Preferences{}, fmt.Errorf("decoding preferences: %w", err)
	}
	return p, nil
}

func (s *Store) SavePreferences(ctx context.Context, p Preferences) error {
	data, err := msgpack.Marshal(p)
	if err != nil {
		return fmt.Errorf("encoding preferences: %w", err)
	}
	if err := s.b.Set(ctx, prefsKey, data); err != nil {
		return fmt.Errorf("saving preferences: %w", err)
	}
	return nil
}

// InitPreferences writes the defaults on first run and leaves existing
// preferences alone.
func (s *Store) InitPreferences(ctx context.Context) error {
	_, err := s.b.Get(ctx, prefsKey)
	if err == nil {
		return nil
	}
	if !errors.Is(err, ErrNotFound) {
		return fmt.Errorf("loading preferences: %w", err)
	}
	return s.SavePreferences(ctx, DefaultPreferences())
}

// SaveMix inserts m when its ID is empty, assigning a new ID and both
// timestamps, and replaces the stored mix otherwise.
func (s *Store) SaveMix(ctx context.Context, m Mix) (Mix, error) {
	m.Name = strings.TrimSpace(m.Name)
	if m.Name == "" || len(m.SoundIDs) == 0 {
		return Mix{}, ErrInvalidMix
	}

	now := s.now()
	if m.ID == "" {
		m.ID = uuid.NewString()
		m.CreatedAt = now
		m.LastUsed = now
	} else {
		prev, err := s.Mix(ctx, m.ID)
		if err != nil {
			return Mix{}, err
		}
		if m.CreatedAt.IsZero() {
			m.CreatedAt = prev.CreatedAt
		}
		if m.LastUsed.IsZero() {
			m.LastUsed = prev.LastUsed
		}
	}

	data, err := msgpack.Marshal(m)
	if err != nil {
		return Mix{}, fmt.Errorf("encoding mix: %w", err)
	}
	if err := s.b.Set(ctx, mixKey(m.ID), data); err != nil {
		return Mix{}, fmt.Errorf("saving mix %s: %w", m.ID, err)
	}
	return m, nil
}

// Mix returns ErrNotFound for an unknown id.
func (s *Store) Mix(ctx context.Context, id string) (Mix, error) {
	data, err := s.b.Get(ctx, mixKey(id))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return Mix{}, err
		}
		return Mix{}, fmt.Errorf("loading mix %s: %w", id, err)
	}

	var m Mix
	if err := msgpack.Unmarshal(data, &m); err != nil {
		return Mix{}, fmt.Errorf("decoding mix %s: %w", id, err)
	}
	return m, nil
}

// Touch sets LastUsed of a mix to now.
func (s *Store) Touch(ctx context.Context, id string) (Mix, error) {
	m, err := s.Mix(ctx, id)
	if err != nil {
		return Mix{}, err
	}
	m.LastUsed = s.now()
	return s.SaveMix(ctx, m)
}

// Mixes returns every saved mix, most recently used first.
func (s *Store) Mixes(ctx context.Context) ([]Mix, error) {
	var mixes []Mix
	for e, err := range s.b.List(ctx, mixPrefix) {
		if err != nil {
			return nil, fmt.Errorf("listing mixes: %w", err)
		}
		var m Mix
		if err := msgpack.Unmarshal(e.Value, &m); err != nil {
			return nil, fmt.Errorf("decoding mix %s: %w", e.Key, err)
		}
		mixes = append(mixes, m)
	}

	slices.SortStableFunc(mixes, func(a, b Mix) int {
		return cmp.Or(b.LastUsed.Compare(a.LastUsed), cmp.Compare(a.Name, b.Name))
	})
	return mixes, nil
}

func (s *Store) FavoriteMixes(ctx context.Context) ([]Mix, error) {
	mixes, err := s.Mixes(ctx)
	if err != nil {
		return nil, err
	}
	return slices.DeleteFunc(mixes, func(m Mix) bool { return !m.Favorite }), nil
}

func (s *Store) DeleteMix(ctx context.Context, id string) error {
	if err := s.b.Delete(ctx, mixKey(id)); err != nil {
		return fmt.Errorf("deleting mix %s: %w", id, err)
	}
	return nil
}

// Close closes the backend.
func (s *Store) Close() error {
	return s.b.Close()
}

func mixKey(id string) Key {
	return append(slices.Clone(mixPrefix), id)
}

// ParseSoundIDs reads the comma separated id list older versions stored,
// such as "1, 2,3". Blank items are skipped.
func ParseSoundIDs(s string) ([]int, error) {
	var ids []int
	for f := range strings.SplitSeq(s, ",") {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		id, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("parsing sound id %q: %w", f, err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func FormatSoundIDs(ids []int) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.Itoa(id)
	}
	return strings.Join(parts, ",")
}
