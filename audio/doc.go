// SPDX-License-Identifier: EPL-2.0

// Package audio holds the PCM building blocks the mixer is assembled from.
//
// Everything here speaks float32 interleaved samples in [-1, 1] through the
// Source interface, so stages chain freely:
//
//	src, _ := dec.Decode(f)
//	clip, err := audio.LoadClip(src, 44100, 2)
//	loop := clip.Loop()
//
// # Stages
//
//   - Resampler changes the sample rate with cubic interpolation and a
//     one-pole low-pass when downsampling.
//   - MonoMixer folds any layout down to one channel. Its ReadSamples takes a
//     frame count, not a sample count.
//   - Stereo duplicates a mono stream onto two channels.
//   - Limit cuts an endless stream after a number of frames.
//
// # Clips
//
// Ambient sounds are short and looped for as long as they play, so assets are
// decoded once into a Clip. Clip.Loop hands out independent endless readers
// over the shared samples, which never return io.EOF.
//
// # Registry
//
// Registry maps file extensions to decoders. ForPath resolves an asset path:
//
//	dec, err := reg.ForPath("sounds/rain.mp3")
//	if errors.Is(err, audio.ErrUnknownFormat) {
//	    // no decoder for the extension
//	}
package audio
