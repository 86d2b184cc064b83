// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
	"io"

	"github.com/ik5/murmur/utils"
)

// Resampler converts a source to another sample rate with Catmull-Rom
// interpolation over interleaved frames. The channel count is preserved.
// When downsampling a one-pole low-pass runs on the input first.
type Resampler struct {
	src      Source
	dstRate  int
	ratio    float64 // source frames per output frame
	channels int

	// window[0..3] = frames t-1, t0, t+1, t+2
	window [4][]float32
	have   [4]bool
	primed bool

	pos float64 // fractional position between window[1] and window[2]
	eof bool

	// block holds source frames not yet moved into the window.
	block    []float32
	blockPos int
	blockLen int
	srcDone  bool

	lowPass bool
	alpha   float32
	state   []float32
}

// resampleBlock is how many source frames are pulled per read.
const resampleBlock = 1024

func NewResampler(src Source, dstRate int) *Resampler {
	channels := src.Channels()
	ratio := float64(src.SampleRate()) / float64(dstRate)

	r := &Resampler{
		src:      src,
		dstRate:  dstRate,
		ratio:    ratio,
		channels: channels,
		block:    make([]float32, resampleBlock*channels),
		lowPass:  ratio > 1.0,
		alpha:    0.5,
		state:    make([]float32, channels),
	}
	for i := range r.window {
		r.window[i] = make([]float32, channels)
	}

	return r
}

func (r *Resampler) SampleRate() int { return r.dstRate }
func (r *Resampler) Channels() int   { return r.channels }
func (r *Resampler) BufSize() int    { return r.src.BufSize() }

func (r *Resampler) Close() error {
	if err := r.src.Close(); err != nil {
		return fmt.Errorf("resampler: %w", err)
	}
	return nil
}

// next copies one frame into dst, refilling the block from the source when
// it runs dry. last reports that the source has nothing after this frame.
func (r *Resampler) next(dst []float32) (got, last bool, err error) {
	if r.blockPos >= r.blockLen {
		if r.srcDone {
			return false, true, nil
		}

		n, err := r.src.ReadSamples(r.block)
		r.blockPos, r.blockLen = 0, n-n%r.channels
		switch {
		case errors.Is(err, io.EOF):
			r.srcDone = true
		case err != nil:
			return false, false, fmt.Errorf("resampler: %w", err)
		}
		if r.blockLen == 0 {
			return false, r.srcDone, nil
		}
	}

	copy(dst, r.block[r.blockPos:r.blockPos+r.channels])
	r.blockPos += r.channels
	return true, r.srcDone && r.blockPos >= r.blockLen, nil
}

// readFrame pulls one frame into dst, applying the low-pass filter when
// downsampling.
func (r *Resampler) readFrame(dst []float32) (bool, error) {
	got, last, err := r.next(dst)
	if err != nil {
		return false, err
	}
	if got && r.lowPass {
		for c := range r.channels {
			dst[c] = r.alpha*dst[c] + (1-r.alpha)*r.state[c]
			r.state[c] = dst[c]
		}
	}
	if last {
		r.eof = true
	}
	return got, nil
}

// prime fills the interpolation window. Missing trailing frames repeat the
// last frame that was read.
func (r *Resampler) prime() error {
	r.primed = true

	for i := range r.window {
		if r.eof {
			if i == 0 {
				return io.EOF
			}
			copy(r.window[i], r.window[i-1])
			r.have[i] = true
			continue
		}

		got, last, err := r.next(r.window[i])
		if err != nil {
			return err
		}
		if got {
			r.have[i] = true
			if i == 0 && r.lowPass {
				copy(r.state, r.window[i])
			}
		}
		if last {
			r.eof = true
			if !got && i == 0 {
				return io.EOF
			}
			if !got {
				copy(r.window[i], r.window[i-1])
				r.have[i] = true
			}
		}
	}
	return nil
}

// advance shifts the window by one frame.
func (r *Resampler) advance() error {
	if r.eof {
		return io.EOF
	}

	r.window[0], r.window[1], r.window[2], r.window[3] = r.window[1], r.window[2], r.window[3], r.window[0]
	r.have[0], r.have[1], r.have[2] = r.have[1], r.have[2], r.have[3]

	got, err := r.readFrame(r.window[3])
	if err != nil {
		return err
	}
	r.have[3] = got
	if r.eof && !got {
		return io.EOF
	}
	return nil
}

// ReadSamples produces output at the target rate. len(dst) must be a multiple
// of the channel count.
func (r *Resampler) ReadSamples(dst []float32) (int, error) {
	if len(dst)%r.channels != 0 {
		return 0, ErrInvalidDstSize
	}

	if !r.primed {
		if err := r.prime(); err != nil {
			return 0, err
		}
	}

	frames := len(dst) / r.channels
	written := 0
	for written < frames {
		for r.pos >= 1.0 {
			r.pos -= 1.0
			if err := r.advance(); err != nil {
				if written == 0 {
					return 0, err
				}
				return written * r.channels, err
			}
		}

		if !r.have[1] || !r.have[2] {
			if written == 0 {
				return 0, io.EOF
			}
			return written * r.channels, io.EOF
		}

		x := float32(r.pos)
		out := dst[written*r.channels : (written+1)*r.channels]
		for c := range r.channels {
			y0 := r.window[1][c]
			if r.have[0] {
				y0 = r.window[0][c]
			}
			y3 := r.window[2][c]
			if r.have[3] {
				y3 = r.window[3][c]
			}
			out[c] = utils.CubicInterpolate(y0, r.window[1][c], r.window[2][c], y3, x)
		}

		written++
		r.pos += r.ratio
	}

	return written * r.channels, nil
}
