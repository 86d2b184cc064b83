// SPDX-License-Identifier: EPL-2.0

package store

import "errors"

var (
	ErrNotFound = errors.New("store: not found")
	ErrClosed   = errors.New("store: backend is closed")

	// ErrInvalidMix is returned by SaveMix for a mix without a name or sounds.
	ErrInvalidMix = errors.New("store: mix needs a name and at least one sound")
)
