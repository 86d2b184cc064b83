package audio

import (
	"io"
	"math"
)

// synthSource generates frames from a waveform function, then io.EOF.
type synthSource struct {
	sampleRate int
	channels   int
	frames     int
	pos        int
	wave       func(frame, channel int) float32
	closed     bool
}

func newSynth(sampleRate, channels, frames int, wave func(frame, channel int) float32) *synthSource {
	return &synthSource{sampleRate: sampleRate, channels: channels, frames: frames, wave: wave}
}

func constant(v float32) func(int, int) float32 {
	return func(int, int) float32 { return v }
}

func sine(sampleRate int, freq float64) func(int, int) float32 {
	return func(frame, _ int) float32 {
		return float32(math.Sin(2 * math.Pi * freq * float64(frame) / float64(sampleRate)))
	}
}

// ramp writes the frame index on every channel, offset by the channel number.
func ramp(frame, channel int) float32 { return float32(frame*10 + channel) }

func (s *synthSource) SampleRate() int { return s.sampleRate }
func (s *synthSource) Channels() int   { return s.channels }
func (s *synthSource) BufSize() int    { return 4096 }

func (s *synthSource) Close() error {
	s.closed = true
	return nil
}

func (s *synthSource) ReadSamples(dst []float32) (int, error) {
	if s.pos >= s.frames {
		return 0, io.EOF
	}

	frames := min(len(dst)/s.channels, s.frames-s.pos)
	for f := range frames {
		for c := range s.channels {
			dst[f*s.channels+c] = s.wave(s.pos+f, c)
		}
	}
	s.pos += frames

	if s.pos >= s.frames {
		return frames * s.channels, io.EOF
	}
	return frames * s.channels, nil
}

// drain reads src until io.EOF.
func drain(src Source, chunk int) ([]float32, error) {
	buf := make([]float32, chunk)
	var out []float32
	for {
		n, err := src.ReadSamples(buf)
		out = append(out, buf[:n]...)
		if err == io.EOF {
			return out, nil
		}
		if err != nil {
			return out, err
		}
	}
}
