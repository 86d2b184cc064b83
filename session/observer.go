// SPDX-License-Identifier: EPL-2.0

package session

// Observer is told about changes a UI would render. Calls happen on the
// goroutine making the change, never under the registry lock, and may
// arrive concurrently from fades.
type Observer interface {
	// ActiveSetChanged receives the active ids in activation order.
	ActiveSetChanged(active []int)
	VolumeChanged(id int, volume float64)
}

// ObserverFuncs adapts plain functions to Observer. Nil fields are skipped.
type ObserverFuncs struct {
	OnActiveSetChanged func(active []int)
	OnVolumeChanged    func(id int, volume float64)
}

func (o ObserverFuncs) ActiveSetChanged(active []int) {
	if o.OnActiveSetChanged != nil {
		o.OnActiveSetChanged(active)
	}
}

func (o ObserverFuncs) VolumeChanged(id int, volume float64) {
	if o.OnVolumeChanged != nil {
		o.OnVolumeChanged(id, volume)
	}
}
