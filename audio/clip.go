// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
	"io"
)

// Clip is a fully decoded asset held in memory, ready to be looped.
type Clip struct {
	sampleRate int
	channels   int
	samples    []float32
}

// NewClip wraps already interleaved samples.
func NewClip(sampleRate, channels int, samples []float32) (*Clip, error) {
	if channels < 1 || len(samples)%channels != 0 {
		return nil, ErrUnsupportedChannels
	}
	if len(samples) == 0 {
		return nil, ErrEmptyClip
	}
	return &Clip{sampleRate: sampleRate, channels: channels, samples: samples}, nil
}

// LoadClip drains src through a resample -> channel conversion pipeline and
// keeps the result in memory. channels must be 1 or 2. src is closed.
func LoadClip(src Source, sampleRate, channels int) (*Clip, error) {
	defer src.Close()

	var pipe Source = src
	if src.SampleRate() != sampleRate {
		pipe = NewResampler(pipe, sampleRate)
	}

	switch {
	case channels == 1 && pipe.Channels() != 1:
		pipe = NewMonoMixer(pipe)
	case channels == 2 && pipe.Channels() == 1:
		pipe = NewStereo(pipe)
	case channels == 2 && pipe.Channels() > 2:
		pipe = NewStereo(NewMonoMixer(pipe))
	case channels != 1 && channels != 2:
		return nil, ErrUnsupportedChannels
	}

	// MonoMixer counts frames, everything else counts samples; 4096 is a
	// multiple of both layouts.
	buf := make([]float32, 4096)
	var samples []float32
	// Decoders may report a short read without io.EOF; a few empty reads in a
	// row mean the stream is exhausted.
	for empty := 0; empty < 3; {
		n, err := pipe.ReadSamples(buf)
		samples = append(samples, buf[:n]...)

		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("loading clip: %w", err)
		}
		if n == 0 {
			empty++
		} else {
			empty = 0
		}
	}

	return NewClip(sampleRate, channels, samples)
}

func (c *Clip) SampleRate() int { return c.sampleRate }
func (c *Clip) Channels() int   { return c.channels }

// Frames is the clip length in frames.
func (c *Clip) Frames() int { return len(c.samples) / c.channels }

// Loop returns an endless source that repeats the clip. Each call returns an
// independent read position over the shared samples.
func (c *Clip) Loop() *Loop {
	return &Loop{clip: c}
}

// Loop plays a Clip over and over. It never returns io.EOF.
type Loop struct {
	clip *Clip
	pos  int
}

func (l *Loop) SampleRate() int { return l.clip.sampleRate }
func (l *Loop) Channels() int   { return l.clip.channels }
func (l *Loop) BufSize() int    { return len(l.clip.samples) }
func (l *Loop) Close() error    { return nil }

func (l *Loop) ReadSamples(dst []float32) (int, error) {
	if len(dst)%l.clip.channels != 0 {
		return 0, ErrInvalidDstSize
	}

	written := 0
	for written < len(dst) {
		n := copy(dst[written:], l.clip.samples[l.pos:])
		written += n
		l.pos += n
		if l.pos == len(l.clip.samples) {
			l.pos = 0
		}
	}
	return written, nil
}
