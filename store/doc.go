// SPDX-License-Identifier: EPL-2.0

// Package store persists user preferences and saved mixes.
//
// Records are msgpack encoded and written through a Backend. Three backends
// exist: Badger for a desktop data directory, GData for the per-app storage
// of mobile and browser builds, and Memory for tests.
//
//	b, err := store.NewBadger(store.BadgerOptions{Dir: dataDir})
//	if err != nil {
//	    return err
//	}
//	s := store.New(b)
//	defer s.Close()
//
//	prefs, err := s.Preferences(ctx)
package store
