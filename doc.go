// SPDX-License-Identifier: EPL-2.0

// Package murmur is the core of an ambient sound mixer.
//
// An App layers user-facing behaviour over the session package: it looks
// sounds up in a catalog, applies stored preferences (fade lengths, the
// default volume, the premium tier), saves and recalls mixes, runs the
// sleep timer and reports what the user does to an analytics tracker.
//
//	bus := engine.NewBus(44100)
//	app := murmur.New(murmur.Deps{
//	    Catalog:  catalog.LoadOrDefault(assets, "sounds.json", logger),
//	    Store:    store.New(backend),
//	    Provider: murmur.VoiceProvider(engine.NewProvider(assets, bus)),
//	    Logger:   logger,
//	})
//	defer app.Close()
//
//	tracks, err := app.Load(ctx)
//	out, err := app.Toggle(ctx, tracks[0].ID)
//
// Free users can play session.FreeTierLimit sounds at once; a start over the limit
// is reported as session.LimitReached rather than an error. Premium users
// can also export a mix to WAV with ExportMix.
//
// Nothing here talks to an audio device. speaker.Open plays the bus.
package murmur
