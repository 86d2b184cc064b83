// SPDX-License-Identifier: EPL-2.0

// Package audiotest holds shared test doubles for the audio stack.
package audiotest

import (
	"io"
	"math"
)

// Source generates a fixed number of frames from a waveform and then
// returns io.EOF. It satisfies audio.Source.
type Source struct {
	sampleRate int
	channels   int
	frames     int
	pos        int
	wave       func(frame, channel int) float32
}

func NewSource(sampleRate, channels, frames int, wave func(frame, channel int) float32) *Source {
	return &Source{sampleRate: sampleRate, channels: channels, frames: frames, wave: wave}
}

func NewConstantSource(sampleRate, channels, frames int, v float32) *Source {
	return NewSource(sampleRate, channels, frames, func(int, int) float32 { return v })
}

func NewSineSource(sampleRate, channels, frames int, freq float64) *Source {
	return NewSource(sampleRate, channels, frames, func(frame, _ int) float32 {
		return float32(math.Sin(2 * math.Pi * freq * float64(frame) / float64(sampleRate)))
	})
}

func (s *Source) SampleRate() int { return s.sampleRate }
func (s *Source) Channels() int   { return s.channels }
func (s *Source) BufSize() int    { return 4096 }
func (s *Source) Close() error    { return nil }

// Reset rewinds to the first frame.
func (s *Source) Reset() { s.pos = 0 }

func (s *Source) ReadSamples(dst []float32) (int, error) {
	if s.pos >= s.frames {
		return 0, io.EOF
	}

	n := min(len(dst)/s.channels, s.frames-s.pos)
	for f := range n {
		for c := range s.channels {
			dst[f*s.channels+c] = s.wave(s.pos+f, c)
		}
	}
	s.pos += n

	if s.pos >= s.frames {
		return n * s.channels, io.EOF
	}
	return n * s.channels, nil
}
