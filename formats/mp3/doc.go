// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MP3 assets with github.com/hajimehoshi/go-mp3.
//
// The decoder always yields interleaved stereo at the file's sample rate;
// mono files are duplicated by go-mp3 itself.
package mp3
