// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	ErrInvalidDstSize      = errors.New("dst size must be multiple of channels")
	ErrUnknownFormat       = errors.New("no decoder registered for format")
	ErrUnsupportedChannels = errors.New("unsupported channel layout")
	ErrEmptyClip           = errors.New("clip has no samples")
)
