// SPDX-License-Identifier: EPL-2.0

package murmur

import (
	"github.com/ik5/murmur/engine"
	"github.com/ik5/murmur/session"
)

// VoiceProvider lets the session open engine voices. Assets are decoded by
// Prepare before the session registry takes its lock.
func VoiceProvider(p *engine.Provider) session.Provider {
	return voiceProvider{p: p}
}

type voiceProvider struct {
	p *engine.Provider
}

func (vp voiceProvider) Prepare(asset string) error { return vp.p.Prepare(asset) }

func (vp voiceProvider) Open(asset string) (session.Player, error) {
	v, err := vp.p.Open(asset)
	if err != nil {
		// a typed nil would not compare equal to nil
		return nil, err
	}
	return v, nil
}
