// SPDX-License-Identifier: EPL-2.0

// Package engine plays assets as looping voices on a software mix bus.
//
// A Provider resolves an asset reference inside an fs.FS, decodes it once
// with the formats registry and hands out Voices that loop the decoded clip.
// Each Voice carries its own gain; the Bus sums playing voices on every read.
//
//	bus := engine.NewBus(44100)
//	p := engine.NewProvider(os.DirFS("assets"), bus)
//	v, err := p.Open("sounds/rain.wav")
//	if errors.Is(err, engine.ErrAssetNotFound) {
//	    // tell the user
//	}
//	v.SetVolume(0.7)
//	_ = v.Play()
//
// The bus does no scheduling of its own. Something has to read it: a
// speaker.Speaker for live output or audio.Limit for an offline render.
package engine
