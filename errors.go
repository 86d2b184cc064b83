// SPDX-License-Identifier: EPL-2.0

package murmur

import "errors"

var (
	ErrUnknownTrack    = errors.New("unknown sound")
	ErrEmptyMix        = errors.New("a mix needs a name and at least one playing sound")
	ErrPremiumRequired = errors.New("premium is required")
	ErrInvalidExport   = errors.New("export duration must be positive")
)
