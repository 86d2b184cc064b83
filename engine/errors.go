// SPDX-License-Identifier: EPL-2.0

package engine

import "errors"

var (
	// ErrAssetNotFound means the asset reference does not resolve to a file
	// that can be decoded.
	ErrAssetNotFound = errors.New("asset not found")

	ErrVoiceClosed = errors.New("voice is closed")
	ErrBusClosed   = errors.New("mix bus is closed")
)
