// SPDX-License-Identifier: EPL-2.0

package session

// Outcome is the business result of ToggleSound.
type Outcome int

const (
	Started Outcome = iota
	Stopped
	LimitReached
	AssetMissing
	Failed
)

func (o Outcome) String() string {
	switch o {
	case Started:
		return "started"
	case Stopped:
		return "stopped"
	case LimitReached:
		return "limit-reached"
	case AssetMissing:
		return "asset-missing"
	case Failed:
		return "failed"
	}
	return "unknown"
}
