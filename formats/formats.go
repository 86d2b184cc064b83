// SPDX-License-Identifier: EPL-2.0

// Package formats wires every bundled decoder into an audio.Registry.
package formats

import (
	"github.com/ik5/murmur/audio"
	"github.com/ik5/murmur/formats/aiff"
	"github.com/ik5/murmur/formats/mp3"
	"github.com/ik5/murmur/formats/vorbis"
	"github.com/ik5/murmur/formats/wav"
)

// NewRegistry returns a registry that knows wav, mp3, ogg/oga and aif/aiff.
func NewRegistry() *audio.Registry {
	r := audio.NewRegistry()
	r.Register("wav", wav.Decoder{})
	r.Register("mp3", mp3.Decoder{})
	r.Register("ogg", vorbis.Decoder{})
	r.Register("oga", vorbis.Decoder{})
	r.Register("aif", aiff.Decoder{})
	r.Register("aiff", aiff.Decoder{})
	return r
}
