// SPDX-License-Identifier: EPL-2.0

// Package speaker plays a mix bus on the platform audio device.
package speaker

import (
	"errors"
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"go.uber.org/zap"

	"github.com/ik5/murmur/engine"
)

// DefaultBufferSize trades latency of volume changes against the risk of
// underruns on slow devices.
const DefaultBufferSize = 100 * time.Millisecond

var ErrRateMismatch = errors.New("speaker: audio context already runs at another sample rate")

// Speaker streams a bus to the device until closed.
type Speaker struct {
	bus    *engine.Bus
	player *audio.Player
	logger *zap.Logger
}

type options struct {
	bufferSize time.Duration
	logger     *zap.Logger
}

type Option func(*options)

// WithBufferSize sets the device buffer. Non-positive values keep the
// default.
func WithBufferSize(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.bufferSize = d
		}
	}
}

func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

func newOptions(opts []Option) options {
	o := options{bufferSize: DefaultBufferSize, logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Open starts playing bus. The process has one audio context; it is created
// at the bus rate on first use and reused afterwards.
func Open(bus *engine.Bus, opts ...Option) (*Speaker, error) {
	o := newOptions(opts)

	ctx := audio.CurrentContext()
	if ctx == nil {
		ctx = audio.NewContext(bus.SampleRate())
	} else if ctx.SampleRate() != bus.SampleRate() {
		return nil, fmt.Errorf("%w: context %d Hz, bus %d Hz", ErrRateMismatch, ctx.SampleRate(), bus.SampleRate())
	}

	player, err := ctx.NewPlayer(bus)
	if err != nil {
		return nil, fmt.Errorf("creating player: %w", err)
	}
	player.SetBufferSize(o.bufferSize)
	player.Play()

	o.logger.Info("speaker opened",
		zap.Int("sample_rate", bus.SampleRate()),
		zap.Duration("buffer", o.bufferSize),
	)
	return &Speaker{bus: bus, player: player, logger: o.logger}, nil
}

// Playing reports whether the device is still pulling from the bus.
func (s *Speaker) Playing() bool {
	return s.player.IsPlaying()
}

// Close stops the device. The bus is left open.
func (s *Speaker) Close() error {
	s.player.Pause()
	if err := s.player.Close(); err != nil {
		return fmt.Errorf("closing player: %w", err)
	}
	s.logger.Debug("speaker closed")
	return nil
}
