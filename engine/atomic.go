// SPDX-License-Identifier: EPL-2.0

package engine

import (
	"math"
	"sync/atomic"
)

// gain is a float32 shared between the mixing goroutine and volume setters.
type gain struct {
	bits atomic.Uint32
}

func (g *gain) Load() float32 {
	return math.Float32frombits(g.bits.Load())
}

func (g *gain) Store(v float32) {
	g.bits.Store(math.Float32bits(v))
}
