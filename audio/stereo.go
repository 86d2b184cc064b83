// SPDX-License-Identifier: EPL-2.0

package audio

// Stereo duplicates a mono source onto two channels.
type Stereo struct {
	src Source
	tmp []float32
}

// NewStereo wraps a mono source. Sources with other layouts must be folded
// with NewMonoMixer first.
func NewStereo(src Source) *Stereo {
	return &Stereo{src: src, tmp: make([]float32, 4096)}
}

func (s *Stereo) SampleRate() int { return s.src.SampleRate() }
func (s *Stereo) Channels() int   { return 2 }
func (s *Stereo) BufSize() int    { return s.src.BufSize() }
func (s *Stereo) Close() error    { return s.src.Close() }

func (s *Stereo) ReadSamples(dst []float32) (int, error) {
	if len(dst)%2 != 0 {
		return 0, ErrInvalidDstSize
	}
	frames := len(dst) / 2
	if frames == 0 {
		return 0, nil
	}
	if cap(s.tmp) < frames {
		s.tmp = make([]float32, frames)
	}

	n, err := s.src.ReadSamples(s.tmp[:frames])
	for i, v := range s.tmp[:n] {
		dst[2*i] = v
		dst[2*i+1] = v
	}
	return 2 * n, err
}
