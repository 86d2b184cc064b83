// SPDX-License-Identifier: EPL-2.0

package engine

import (
	"sync/atomic"

	"github.com/ik5/murmur/audio"
	"github.com/ik5/murmur/utils"
)

// Voice is one looping asset on a bus with its own gain.
type Voice struct {
	asset string
	bus   *Bus
	loop  *audio.Loop // guarded by bus.mu

	gain    gain
	playing atomic.Bool
	closed  atomic.Bool
}

func (v *Voice) Asset() string { return v.asset }

// SetVolume clamps vol to [0, 1]. It takes effect on the next bus read.
func (v *Voice) SetVolume(vol float64) {
	v.gain.Store(float32(utils.ClampUnit(vol)))
}

func (v *Voice) Volume() float64 {
	return float64(v.gain.Load())
}

// Play starts or resumes the loop where it stopped.
func (v *Voice) Play() error {
	if v.closed.Load() {
		return ErrVoiceClosed
	}
	v.playing.Store(true)
	return nil
}

func (v *Voice) Stop() {
	v.playing.Store(false)
}

func (v *Voice) Playing() bool {
	return v.playing.Load() && !v.closed.Load()
}

// Close detaches the voice from its bus. Calling it again is a no-op.
func (v *Voice) Close() error {
	if v.closed.Swap(true) {
		return nil
	}
	v.playing.Store(false)
	v.bus.detach(v)
	return nil
}

// mixInto adds the next len(dst) samples of the loop, scaled by gain.
// Called with bus.mu held.
func (v *Voice) mixInto(dst, scratch []float32) {
	if !v.playing.Load() {
		return
	}
	g := v.gain.Load()
	if g == 0 {
		// keep the loop moving so a fade-in does not restart the sound
		_, _ = v.loop.ReadSamples(scratch)
		return
	}

	n, _ := v.loop.ReadSamples(scratch)
	for i, s := range scratch[:n] {
		dst[i] += s * g
	}
}
