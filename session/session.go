// SPDX-License-Identifier: EPL-2.0

package session

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/ik5/murmur/catalog"
	"github.com/ik5/murmur/utils"
)

const (
	// FreeTierLimit caps concurrent sounds for non-premium users.
	FreeTierLimit = 3

	FadeSteps           = 20
	DefaultToggleFade   = time.Second
	DefaultRemoveFade   = 500 * time.Millisecond
	DefaultTargetVolume = 0.7
)

// Session applies the mixing rules on top of a Registry.
type Session struct {
	registry  *Registry
	logger    *zap.Logger
	observers []Observer
	steps     int

	target  atomic.Uint64 // float64 bits
	premium atomic.Bool
	fades   sync.WaitGroup
}

type Option func(*Session)

func WithLogger(l *zap.Logger) Option {
	return func(s *Session) { s.logger = l }
}

// WithObserver may be passed more than once.
func WithObserver(o Observer) Option {
	return func(s *Session) { s.observers = append(s.observers, o) }
}

func WithPremium(premium bool) Option {
	return func(s *Session) { s.premium.Store(premium) }
}

// WithTargetVolume sets the level fade-ins end at.
func WithTargetVolume(v float64) Option {
	return func(s *Session) { s.SetTargetVolume(v) }
}

func WithFadeSteps(n int) Option {
	return func(s *Session) {
		if n > 0 {
			s.steps = n
		}
	}
}

func New(registry *Registry, opts ...Option) *Session {
	s := &Session{
		registry: registry,
		logger:   zap.NewNop(),
		steps:    FadeSteps,
	}
	s.target.Store(math.Float64bits(DefaultTargetVolume))
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ToggleSound starts track if it is silent and stops it if it plays.
//
// Starting registers the player at volume 0 and fades it in to the target
// volume in the background. Stopping fades out over fade and blocks until
// the player is released. A rejected start because of the free tier cap is
// LimitReached with a nil error. A missing asset is AssetMissing with an
// error matching ErrAssetNotFound.
func (s *Session) ToggleSound(ctx context.Context, track catalog.Track, fade time.Duration) (Outcome, error) {
	log := s.logger.With(zap.Int("id", track.ID), zap.String("name", track.Name))

	if s.registry.Contains(track.ID) {
		s.fadeOut(ctx, track.ID, fade)
		log.Debug("sound stopped")
		return Stopped, nil
	}

	limit := s.Limit()
	if limit > 0 && s.registry.Len() >= limit {
		log.Info("sound limit reached", zap.Int("limit", limit))
		return LimitReached, nil
	}

	err := s.registry.Prepare(track.Asset)
	if err == nil {
		err = s.registry.Acquire(track.ID, track.Asset, 0, limit)
	}
	switch {
	case errors.Is(err, ErrAlreadyActive):
		// another caller started it first; treat as a stop
		s.fadeOut(ctx, track.ID, fade)
		return Stopped, nil
	case errors.Is(err, ErrLimitReached):
		log.Info("sound limit reached", zap.Int("limit", limit))
		return LimitReached, nil
	case errors.Is(err, ErrAssetNotFound):
		log.Warn("sound asset missing", zap.String("asset", track.Asset), zap.Error(err))
		return AssetMissing, fmt.Errorf("starting sound %d: %w", track.ID, err)
	case err != nil:
		log.Error("starting sound", zap.String("asset", track.Asset), zap.Error(err))
		return Failed, fmt.Errorf("starting sound %d: %w", track.ID, err)
	}

	s.notifyActive()

	bg := context.WithoutCancel(ctx)
	s.fades.Add(1)
	go func() {
		defer s.fades.Done()
		_ = s.ramp(bg, Ramp{ID: track.ID, From: 0, To: s.TargetVolume(), Duration: fade, Steps: s.steps})
	}()

	log.Debug("sound started")
	return Started, nil
}

// SetVolume changes a playing sound's volume at once. ErrNotFound means
// the sound has already stopped and can be ignored.
func (s *Session) SetVolume(id int, volume float64) error {
	if err := s.registry.SetVolume(id, volume); err != nil {
		return err
	}
	s.notifyVolume(id, utils.ClampUnit(volume))
	return nil
}

// RemoveSound fades id out and releases it. Removing a sound that is not
// playing does nothing, so it never fails.
func (s *Session) RemoveSound(ctx context.Context, id int, fade time.Duration) error {
	s.fadeOut(ctx, id, fade)
	return nil
}

// StopAll releases every sound immediately.
func (s *Session) StopAll() {
	ids := s.registry.ReleaseAll()
	s.logger.Debug("all sounds stopped", zap.Ints("ids", ids))
	s.notifyActive()
}

func (s *Session) IsPlaying() bool { return s.registry.Len() > 0 }

// Active lists playing ids in the order they were started.
func (s *Session) Active() []int { return s.registry.Active() }

func (s *Session) Snapshot() []Playing { return s.registry.Snapshot() }

func (s *Session) Premium() bool { return s.premium.Load() }

// SetPremium changes the cap for future starts. Sounds already playing
// above the free limit keep playing.
func (s *Session) SetPremium(premium bool) { s.premium.Store(premium) }

// TargetVolume is the level new sounds fade in to.
func (s *Session) TargetVolume() float64 {
	return math.Float64frombits(s.target.Load())
}

// SetTargetVolume changes the fade-in level for sounds started later.
func (s *Session) SetTargetVolume(v float64) {
	s.target.Store(math.Float64bits(utils.ClampUnit(v)))
}

// Limit is FreeTierLimit, or 0 for no limit.
func (s *Session) Limit() int {
	if s.premium.Load() {
		return 0
	}
	return FreeTierLimit
}

// Wait blocks until background fade-ins have finished.
func (s *Session) Wait() { s.fades.Wait() }

func (s *Session) notifyActive() {
	if len(s.observers) == 0 {
		return
	}
	active := s.registry.Active()
	for _, o := range s.observers {
		o.ActiveSetChanged(active)
	}
}

func (s *Session) notifyVolume(id int, v float64) {
	for _, o := range s.observers {
		o.VolumeChanged(id, v)
	}
}
