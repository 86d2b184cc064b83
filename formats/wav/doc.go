// SPDX-License-Identifier: EPL-2.0

// Package wav decodes integer PCM WAV files and writes 16-bit ones.
//
// Decoding goes through github.com/go-audio/wav, which needs an
// io.ReadSeeker. Plain readers are buffered in memory first, which is fine
// for the short loops an ambient mixer plays.
//
//	src, err := wav.Decoder{}.Decode(f)
//
// WriteWAV16 streams a canonical 44-byte header followed by the samples and
// is what mix export uses.
package wav
