// SPDX-License-Identifier: EPL-2.0

package audio

import "io"

// Limited ends an otherwise endless source after a fixed number of frames.
type Limited struct {
	src  Source
	left int // samples, not frames
}

// Limit returns a source that yields at most frames frames of src and then
// io.EOF.
func Limit(src Source, frames int) *Limited {
	return &Limited{src: src, left: frames * src.Channels()}
}

func (l *Limited) SampleRate() int { return l.src.SampleRate() }
func (l *Limited) Channels() int   { return l.src.Channels() }
func (l *Limited) BufSize() int    { return l.src.BufSize() }
func (l *Limited) Close() error    { return l.src.Close() }

func (l *Limited) ReadSamples(dst []float32) (int, error) {
	if l.left <= 0 {
		return 0, io.EOF
	}
	if len(dst) > l.left {
		dst = dst[:l.left]
	}

	n, err := l.src.ReadSamples(dst)
	l.left -= n
	if err == nil && l.left <= 0 {
		err = io.EOF
	}
	return n, err
}
