// SPDX-License-Identifier: EPL-2.0

package session

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

type TimerPhase int

const (
	TimerIdle TimerPhase = iota
	TimerArmed
	TimerFiring
)

func (p TimerPhase) String() string {
	switch p {
	case TimerIdle:
		return "idle"
	case TimerArmed:
		return "armed"
	case TimerFiring:
		return "firing"
	}
	return "unknown"
}

// TimerState is what a countdown display needs. Remaining and Deadline are
// zero unless the timer is armed.
type TimerState struct {
	Phase     TimerPhase
	Remaining time.Duration
	Deadline  time.Time
}

// Stopper is what the timer stops. *Session implements it.
type Stopper interface {
	StopAll()
}

// SleepTimer calls StopAll once after a delay unless it is cancelled or
// re-armed first.
type SleepTimer struct {
	target   Stopper
	logger   *zap.Logger
	onFire   func()
	onChange func(TimerState)

	mu       sync.Mutex
	phase    TimerPhase
	deadline time.Time
	gen      uint64 // identifies the current arm
	cancel   context.CancelFunc

	wg sync.WaitGroup
}

type TimerOption func(*SleepTimer)

func WithTimerLogger(l *zap.Logger) TimerOption {
	return func(t *SleepTimer) { t.logger = l }
}

// WithOnFire runs fn after StopAll when the timer expires.
func WithOnFire(fn func()) TimerOption {
	return func(t *SleepTimer) { t.onFire = fn }
}

// WithOnChange runs fn on every phase change.
func WithOnChange(fn func(TimerState)) TimerOption {
	return func(t *SleepTimer) { t.onChange = fn }
}

func NewSleepTimer(target Stopper, opts ...TimerOption) *SleepTimer {
	t := &SleepTimer{target: target, logger: zap.NewNop()}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Start arms the timer for d, replacing any armed countdown.
func (t *SleepTimer) Start(d time.Duration) error {
	if d <= 0 {
		return ErrInvalidDuration
	}

	ctx, cancel := context.WithCancel(context.Background())

	t.mu.Lock()
	t.disarmLocked()
	t.gen++
	gen := t.gen
	t.cancel = cancel
	t.phase = TimerArmed
	t.deadline = time.Now().Add(d)
	st := t.stateLocked()
	t.mu.Unlock()

	t.logger.Info("sleep timer armed", zap.Duration("after", d))
	t.changed(st)

	t.wg.Add(1)
	go t.run(ctx, gen, d)
	return nil
}

// Cancel disarms the timer and reports whether it was armed. Once Cancel
// returns true the disarmed countdown will never call StopAll.
func (t *SleepTimer) Cancel() bool {
	t.mu.Lock()
	armed := t.phase == TimerArmed
	t.disarmLocked()
	st := t.stateLocked()
	t.mu.Unlock()

	if armed {
		t.logger.Info("sleep timer cancelled")
		t.changed(st)
	}
	return armed
}

func (t *SleepTimer) State() TimerState {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.stateLocked()
}

// Close cancels the timer and waits for its goroutine to exit.
func (t *SleepTimer) Close() {
	t.Cancel()
	t.wg.Wait()
}

func (t *SleepTimer) run(ctx context.Context, gen uint64, d time.Duration) {
	defer t.wg.Done()

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return
	case <-timer.C:
	}

	t.mu.Lock()
	if t.gen != gen || ctx.Err() != nil {
		t.mu.Unlock()
		return
	}
	t.phase = TimerFiring
	t.cancel = nil
	t.deadline = time.Time{}
	st := t.stateLocked()
	t.mu.Unlock()
	t.changed(st)

	t.logger.Info("sleep timer fired")
	t.target.StopAll()
	if t.onFire != nil {
		t.onFire()
	}

	t.mu.Lock()
	if t.gen != gen {
		// re-armed while firing
		t.mu.Unlock()
		return
	}
	t.phase = TimerIdle
	st = t.stateLocked()
	t.mu.Unlock()
	t.changed(st)
}

func (t *SleepTimer) disarmLocked() {
	if t.cancel != nil {
		t.cancel()
		t.cancel = nil
	}
	if t.phase == TimerArmed {
		t.phase = TimerIdle
		t.deadline = time.Time{}
	}
}

func (t *SleepTimer) stateLocked() TimerState {
	if t.phase != TimerArmed {
		return TimerState{Phase: t.phase}
	}
	return TimerState{
		Phase:     TimerArmed,
		Remaining: max(time.Until(t.deadline), 0),
		Deadline:  t.deadline,
	}
}

func (t *SleepTimer) changed(st TimerState) {
	if t.onChange != nil {
		t.onChange(st)
	}
}
