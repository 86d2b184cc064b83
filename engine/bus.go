// SPDX-License-Identifier: EPL-2.0

package engine

import (
	"io"
	"slices"
	"sync"

	"github.com/ik5/murmur/audio"
	"github.com/ik5/murmur/utils"
)

// BusChannels is the channel layout of every bus. Clips are converted to it
// when they are decoded.
const BusChannels = 2

// Bus sums the voices attached to it into one endless stereo stream.
//
// It is an audio.Source for offline rendering and an io.Reader producing
// 16-bit little-endian PCM for a device player. Reading from both at once
// splits the stream between the readers.
type Bus struct {
	sampleRate int

	mu      sync.Mutex
	voices  []*Voice
	closed  bool
	scratch []float32
	pcm     []float32
}

func NewBus(sampleRate int) *Bus {
	return &Bus{
		sampleRate: sampleRate,
		scratch:    make([]float32, 4096),
	}
}

func (b *Bus) SampleRate() int { return b.sampleRate }
func (b *Bus) Channels() int   { return BusChannels }
func (b *Bus) BufSize() int    { return 4096 }

// Voices reports how many voices are attached, playing or not.
func (b *Bus) Voices() int {
	b.mu.Lock()
	defer b.mu.Unlock()

	return len(b.voices)
}

// Close detaches every voice. Reads after Close return io.EOF.
func (b *Bus) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.closed = true
	b.voices = nil
	return nil
}

func (b *Bus) attach(v *Voice) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return ErrBusClosed
	}
	b.voices = append(b.voices, v)
	return nil
}

func (b *Bus) detach(v *Voice) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.voices = slices.DeleteFunc(b.voices, func(x *Voice) bool { return x == v })
}

// ReadSamples always fills dst completely; silence when nothing plays.
func (b *Bus) ReadSamples(dst []float32) (int, error) {
	if len(dst)%BusChannels != 0 {
		return 0, audio.ErrInvalidDstSize
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return 0, io.EOF
	}

	clear(dst)
	if cap(b.scratch) < len(dst) {
		b.scratch = make([]float32, len(dst))
	}
	scratch := b.scratch[:len(dst)]

	for _, v := range b.voices {
		v.mixInto(dst, scratch)
	}

	for i, s := range dst {
		switch {
		case s > 1:
			dst[i] = 1
		case s < -1:
			dst[i] = -1
		}
	}
	return len(dst), nil
}

// Read implements io.Reader. Only whole frames are written. Read is meant
// for a single device goroutine and must not be called concurrently.
func (b *Bus) Read(p []byte) (int, error) {
	const frameBytes = BusChannels * 2

	samples := (len(p) / frameBytes) * BusChannels
	if samples == 0 {
		return 0, nil
	}
	if cap(b.pcm) < samples {
		b.pcm = make([]float32, samples)
	}
	buf := b.pcm[:samples]

	n, err := b.ReadSamples(buf)
	if err != nil {
		return 0, err
	}
	return utils.PutInt16LE(p, buf[:n]), nil
}
