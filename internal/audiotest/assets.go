// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"bytes"
	"testing"
	"testing/fstest"

	"github.com/ik5/murmur/formats/wav"
)

// WAV encodes frames of a constant level as 16-bit PCM.
func WAV(tb testing.TB, sampleRate, channels, frames int, level float32) []byte {
	tb.Helper()

	samples := make([]int16, frames*channels)
	for i := range samples {
		samples[i] = int16(level * 32767)
	}

	var buf bytes.Buffer
	if err := wav.WriteWAV16(&buf, sampleRate, channels, samples); err != nil {
		tb.Fatalf("encoding wav fixture: %v", err)
	}
	return buf.Bytes()
}

// Assets builds an in-memory asset tree with one short WAV loop per path.
func Assets(tb testing.TB, sampleRate int, paths ...string) fstest.MapFS {
	tb.Helper()

	fsys := make(fstest.MapFS, len(paths))
	for _, p := range paths {
		fsys[p] = &fstest.MapFile{Data: WAV(tb, sampleRate, 2, sampleRate/10, 0.5)}
	}
	return fsys
}
