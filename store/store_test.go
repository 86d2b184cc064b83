package store

import (
	"context"
	"errors"
	"slices"
	"testing"
	"time"
)

type clock struct {
	t time.Time
}

func (c *clock) now() time.Time {
	c.t = c.t.Add(time.Minute)
	return c.t
}

func newStore(t *testing.T) (*Store, *clock) {
	t.Helper()

	c := &clock{t: time.Date(2024, 3, 1, 22, 0, 0, 0, time.UTC)}
	return New(newBadger(t), WithClock(c.now)), c
}

func TestStore_Preferences(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s, _ := newStore(t)

	p, err := s.Preferences(ctx)
	if err != nil {
		t.Fatalf("Preferences() error = %v", err)
	}
	if p != DefaultPreferences() {
		t.Errorf("Preferences() = %+v, want defaults", p)
	}
	if p.ToggleFade() != time.Second || p.RemoveFade() != 500*time.Millisecond {
		t.Errorf("fades = %v/%v", p.ToggleFade(), p.RemoveFade())
	}
	if p.TimerDuration() != 30*time.Minute {
		t.Errorf("TimerDuration() = %v", p.TimerDuration())
	}

	p.Premium = true
	p.AdsEnabled = false
	p.DefaultVolume = 0.4
	if err := s.SavePreferences(ctx, p); err != nil {
		t.Fatalf("SavePreferences() error = %v", err)
	}
	if err := s.InitPreferences(ctx); err != nil {
		t.Fatalf("InitPreferences() error = %v", err)
	}

	got, err := s.Preferences(ctx)
	if err != nil {
		t.Fatalf("Preferences() error = %v", err)
	}
	if !got.Premium || got.AdsEnabled || got.DefaultVolume != 0.4 {
		t.Errorf("Preferences() = %+v, InitPreferences overwrote saved values", got)
	}
}

func TestPreferences_PremiumActive(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	tests := []struct {
		name string
		p    Preferences
		want bool
	}{
		{"free", Preferences{}, false},
		{"lifetime", Preferences{Premium: true}, true},
		{"valid", Preferences{Premium: true, PremiumExpiry: now.Add(time.Hour)}, true},
		{"expired", Preferences{Premium: true, PremiumExpiry: now.Add(-time.Hour)}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.p.PremiumActive(now); got != tt.want {
				t.Errorf("PremiumActive() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestStore_Mixes(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s, _ := newStore(t)

	night, err := s.SaveMix(ctx, Mix{Name: " Night ", SoundIDs: []int{1, 2}})
	if err != nil {
		t.Fatalf("SaveMix() error = %v", err)
	}
	if night.ID == "" || night.Name != "Night" || night.CreatedAt.IsZero() {
		t.Errorf("SaveMix() = %+v", night)
	}
	focus, err := s.SaveMix(ctx, Mix{Name: "Focus", SoundIDs: []int{3}})
	if err != nil {
		t.Fatalf("SaveMix() error = %v", err)
	}

	mixes, err := s.Mixes(ctx)
	if err != nil {
		t.Fatalf("Mixes() error = %v", err)
	}
	if len(mixes) != 2 || mixes[0].ID != focus.ID {
		t.Fatalf("Mixes() = %+v, want Focus first", mixes)
	}

	if _, err := s.Touch(ctx, night.ID); err != nil {
		t.Fatalf("Touch() error = %v", err)
	}
	mixes, _ = s.Mixes(ctx)
	if mixes[0].ID != night.ID {
		t.Errorf("Mixes()[0] = %s after Touch, want Night", mixes[0].Name)
	}
	if !slices.Equal(mixes[0].SoundIDs, []int{1, 2}) {
		t.Errorf("SoundIDs = %v", mixes[0].SoundIDs)
	}
	if !mixes[0].CreatedAt.Equal(night.CreatedAt) {
		t.Errorf("CreatedAt changed to %v", mixes[0].CreatedAt)
	}

	focus.Favorite = true
	if _, err := s.SaveMix(ctx, focus); err != nil {
		t.Fatalf("SaveMix(update) error = %v", err)
	}
	favs, err := s.FavoriteMixes(ctx)
	if err != nil || len(favs) != 1 || favs[0].ID != focus.ID {
		t.Errorf("FavoriteMixes() = %+v, %v", favs, err)
	}

	if err := s.DeleteMix(ctx, night.ID); err != nil {
		t.Fatalf("DeleteMix() error = %v", err)
	}
	if _, err := s.Mix(ctx, night.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("Mix() after delete error = %v, want ErrNotFound", err)
	}
	if _, err := s.Touch(ctx, night.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("Touch() after delete error = %v, want ErrNotFound", err)
	}
}

func TestStore_SaveMixInvalid(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := New(NewMemory())

	for _, m := range []Mix{{Name: "  ", SoundIDs: []int{1}}, {Name: "Empty"}} {
		if _, err := s.SaveMix(ctx, m); !errors.Is(err, ErrInvalidMix) {
			t.Errorf("SaveMix(%+v) error = %v, want ErrInvalidMix", m, err)
		}
	}
	if _, err := s.SaveMix(ctx, Mix{ID: "nope", Name: "x", SoundIDs: []int{1}}); !errors.Is(err, ErrNotFound) {
		t.Errorf("SaveMix(unknown id) error = %v, want ErrNotFound", err)
	}
}

func TestParseSoundIDs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    []int
		wantErr bool
	}{
		{"1, 2,3", []int{1, 2, 3}, false},
		{"", nil, false},
		{"4,,5 ", []int{4, 5}, false},
		{"1,x", nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseSoundIDs(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseSoundIDs(%q) error = %v", tt.in, err)
			}
			if !slices.Equal(got, tt.want) {
				t.Errorf("ParseSoundIDs(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}

	if s := FormatSoundIDs([]int{1, 2, 3}); s != "1,2,3" {
		t.Errorf("FormatSoundIDs() = %q", s)
	}
}
