// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"errors"

	"github.com/ik5/murmur/formats/internal/intpcm"
)

var (
	// ErrNotAiffFile indicates the input has no valid FORM/AIFF header.
	ErrNotAiffFile = errors.New("not an AIFF file")

	ErrUnsupportedAiffLayout = errors.New("unsupported AIFF layout")

	ErrUnsupportedBitDepth = intpcm.ErrUnsupportedBitDepth
)
