// SPDX-License-Identifier: EPL-2.0

// Package aiff decodes uncompressed AIFF assets through
// github.com/go-audio/aiff. Samples come out as float32 via the same integer
// PCM adapter the wav package uses.
package aiff
