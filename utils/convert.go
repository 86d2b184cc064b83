// SPDX-License-Identifier: EPL-2.0

package utils

import (
	"encoding/binary"
	"math"
)

// Float32ToInt16 converts a normalized sample to 16-bit PCM, clipping
// anything outside [-1, 1].
func Float32ToInt16(x float32) int16 {
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}

	return int16(x * 32767.0)
}

// PutInt16LE encodes samples as little-endian 16-bit PCM into dst and returns
// the number of bytes written. dst must hold at least 2*len(samples) bytes.
func PutInt16LE(dst []byte, samples []float32) int {
	for i, s := range samples {
		binary.LittleEndian.PutUint16(dst[2*i:], uint16(Float32ToInt16(s)))
	}
	return 2 * len(samples)
}

// ClampUnit limits a volume or gain value to [0, 1].
func ClampUnit(v float64) float64 {
	switch {
	case math.IsNaN(v):
		return 0
	case v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}
