// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis assets with github.com/jfreymuth/oggvorbis.
// Samples are already float32 and interleaved, so they pass through as is.
package vorbis
