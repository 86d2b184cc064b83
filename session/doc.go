// SPDX-License-Identifier: EPL-2.0

// Package session keeps track of which ambient sounds are playing and
// applies the mixing rules to them.
//
// A Registry owns every live player and serializes opening, volume changes
// and disposal. A Session sits on top of it: it enforces the free tier cap
// of FreeTierLimit concurrent sounds, fades sounds in and out in FadeSteps
// discrete steps, and tells Observers what changed. A SleepTimer calls
// StopAll on a Session once after a delay.
//
// # Fades
//
// Fade-ins run in the background and ToggleSound returns Started as soon as
// the player is registered at volume 0. Fade-outs block the caller until
// the sound is released. A ramp whose sound is released under it stops
// quietly; it never reopens a player.
//
// Stopping a sound while its fade-in is still running leaves both ramps
// writing the volume. Each step overwrites the previous one and the
// fade-out always writes 0 last before it releases the sound.
//
// # Outcomes
//
// ToggleSound reports business results as an Outcome. Only AssetMissing and
// Failed come with an error:
//
//	out, err := s.ToggleSound(ctx, track, session.DefaultToggleFade)
//	switch {
//	case out == session.LimitReached:
//	    // offer premium
//	case errors.Is(err, session.ErrAssetNotFound):
//	    // tell the user which file is missing
//	}
package session
