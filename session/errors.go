// SPDX-License-Identifier: EPL-2.0

package session

import (
	"errors"

	"github.com/ik5/murmur/engine"
)

var (
	ErrAlreadyActive = errors.New("sound is already active")
	ErrNotFound      = errors.New("sound is not active")
	ErrLimitReached  = errors.New("concurrent sound limit reached")

	// ErrAssetNotFound is engine.ErrAssetNotFound, so providers built on the
	// engine and fakes in tests report the same condition.
	ErrAssetNotFound = engine.ErrAssetNotFound

	ErrInvalidDuration = errors.New("duration must be positive")
)
