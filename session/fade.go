// SPDX-License-Identifier: EPL-2.0

package session

import (
	"context"
	"errors"
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"go.uber.org/zap"
)

// Ramp is one step-wise volume change.
type Ramp struct {
	ID       int
	From, To float64
	Duration time.Duration
	Steps    int
}

// ramp applies Steps+1 evenly spaced volumes, the first being From and the
// last exactly To, sleeping Duration/Steps in between. It stops quietly
// when the sound is released under it and returns ctx.Err() if ctx ends
// first.
func (s *Session) ramp(ctx context.Context, r Ramp) error {
	steps := max(r.Steps, 1)
	interval := r.Duration / time.Duration(steps)

	// tween time is measured in steps
	tw := gween.New(float32(r.From), float32(r.To), float32(steps), ease.Linear)

	var timer *time.Timer
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for i := 0; ; i++ {
		v, done := tw.Set(float32(i))
		vol := float64(v)
		if done {
			vol = r.To
		}

		if err := s.registry.SetVolume(r.ID, vol); errors.Is(err, ErrNotFound) {
			s.logger.Debug("ramp target released", zap.Int("id", r.ID), zap.Int("step", i))
			return nil
		}
		s.notifyVolume(r.ID, vol)

		if done {
			return nil
		}
		if interval <= 0 {
			continue
		}

		if timer == nil {
			timer = time.NewTimer(interval)
		} else {
			timer.Reset(interval)
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
		}
	}
}

// fadeOut ramps id from its current volume to 0 and releases it. The
// release happens even when ctx ends mid-ramp.
func (s *Session) fadeOut(ctx context.Context, id int, d time.Duration) {
	from, err := s.registry.Volume(id)
	if err != nil {
		return
	}

	if err := s.ramp(ctx, Ramp{ID: id, From: from, To: 0, Duration: d, Steps: s.steps}); err != nil {
		s.logger.Debug("fade out interrupted", zap.Int("id", id), zap.Error(err))
	}
	if s.registry.Release(id) {
		s.notifyActive()
	}
}
