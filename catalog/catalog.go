// SPDX-License-Identifier: EPL-2.0

// Package catalog describes the sounds a user can play.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"slices"
)

var (
	ErrInvalidTrack = errors.New("invalid track")
	ErrDuplicateID  = errors.New("duplicate track id")
)

// Track is one loopable ambient sound.
type Track struct {
	ID          int
	Name        string
	Description string
	// Asset is the path of the audio file inside the asset tree,
	// e.g. "Sounds/rain.mp3".
	Asset    string
	Category string
	Premium  bool
	Icon     string
}

// Catalog returns the same tracks, with the same ids, for its whole life.
type Catalog interface {
	All(ctx context.Context) ([]Track, error)
	Free(ctx context.Context) ([]Track, error)
	ByID(ctx context.Context, id int) (Track, bool, error)
}

// Static is an immutable in-memory catalog.
type Static struct {
	tracks []Track
	byID   map[int]int
}

// New validates tracks and keeps a copy of them in the given order.
func New(tracks []Track) (*Static, error) {
	s := &Static{
		tracks: slices.Clone(tracks),
		byID:   make(map[int]int, len(tracks)),
	}

	for i, t := range s.tracks {
		switch {
		case t.ID <= 0:
			return nil, fmt.Errorf("%w: id %d must be positive", ErrInvalidTrack, t.ID)
		case t.Asset == "":
			return nil, fmt.Errorf("%w: track %d has no asset", ErrInvalidTrack, t.ID)
		}
		if _, dup := s.byID[t.ID]; dup {
			return nil, fmt.Errorf("%w: %d", ErrDuplicateID, t.ID)
		}
		s.byID[t.ID] = i
	}
	return s, nil
}

func (s *Static) All(context.Context) ([]Track, error) {
	return slices.Clone(s.tracks), nil
}

func (s *Static) Free(context.Context) ([]Track, error) {
	out := make([]Track, 0, len(s.tracks))
	for _, t := range s.tracks {
		if !t.Premium {
			out = append(out, t)
		}
	}
	return out, nil
}

func (s *Static) ByID(_ context.Context, id int) (Track, bool, error) {
	i, ok := s.byID[id]
	if !ok {
		return Track{}, false, nil
	}
	return s.tracks[i], true, nil
}
