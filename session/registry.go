// SPDX-License-Identifier: EPL-2.0

package session

import (
	"cmp"
	"fmt"
	"maps"
	"slices"
	"sync"

	"go.uber.org/zap"

	"github.com/ik5/murmur/utils"
)

// Player is a live playback resource for one asset.
type Player interface {
	SetVolume(volume float64)
	Play() error
	Stop()
	// Close disposes the player. It is called exactly once.
	Close() error
}

// Provider opens players. A missing asset must fail with an error matching
// ErrAssetNotFound.
type Provider interface {
	Open(asset string) (Player, error)
}

// Preparer is implemented by providers that can do the slow part of Open,
// such as decoding, ahead of time. Prepare runs without the registry lock.
type Preparer interface {
	Prepare(asset string) error
}

// ProviderFunc adapts a function to Provider.
type ProviderFunc func(asset string) (Player, error)

func (f ProviderFunc) Open(asset string) (Player, error) { return f(asset) }

// Playing is a point-in-time view of one active sound.
type Playing struct {
	ID     int
	Volume float64
}

type handle struct {
	player Player
	volume float64
	seq    uint64
}

// Registry owns every live player. Opening, volume changes and disposal all
// happen under one mutex because players are not safe to create or dispose
// concurrently.
type Registry struct {
	provider Provider
	logger   *zap.Logger

	mu      sync.Mutex
	handles map[int]*handle
	seq     uint64
}

type RegistryOption func(*Registry)

func WithRegistryLogger(l *zap.Logger) RegistryOption {
	return func(r *Registry) { r.logger = l }
}

func NewRegistry(provider Provider, opts ...RegistryOption) *Registry {
	r := &Registry{
		provider: provider,
		logger:   zap.NewNop(),
		handles:  make(map[int]*handle),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Prepare lets a Preparer provider warm asset up before Acquire. It never
// takes the registry lock, so snapshots and volume changes keep flowing.
func (r *Registry) Prepare(asset string) error {
	pr, ok := r.provider.(Preparer)
	if !ok {
		return nil
	}
	if err := pr.Prepare(asset); err != nil {
		return fmt.Errorf("preparing %q: %w", asset, err)
	}
	return nil
}

// Acquire opens asset for id and starts it at volume. A limit above zero
// caps the number of handles. On any failure nothing is registered.
func (r *Registry) Acquire(id int, asset string, volume float64, limit int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.handles[id]; ok {
		return ErrAlreadyActive
	}
	if limit > 0 && len(r.handles) >= limit {
		return ErrLimitReached
	}

	p, err := r.provider.Open(asset)
	if err != nil {
		return fmt.Errorf("opening %q: %w", asset, err)
	}

	volume = utils.ClampUnit(volume)
	p.SetVolume(volume)
	if err := p.Play(); err != nil {
		r.dispose(id, p)
		return fmt.Errorf("playing %q: %w", asset, err)
	}

	r.seq++
	r.handles[id] = &handle{player: p, volume: volume, seq: r.seq}
	return nil
}

// Release stops and disposes id. It reports whether id was active.
func (r *Registry) Release(id int) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	h, ok := r.handles[id]
	if !ok {
		return false
	}
	delete(r.handles, id)
	h.player.Stop()
	r.dispose(id, h.player)
	return true
}

// ReleaseAll disposes every handle and returns the ids that were active.
func (r *Registry) ReleaseAll() []int {
	r.mu.Lock()
	defer r.mu.Unlock()

	ids := r.orderedLocked()
	for _, id := range ids {
		h := r.handles[id]
		h.player.Stop()
		r.dispose(id, h.player)
	}
	clear(r.handles)
	return ids
}

// SetVolume clamps volume to [0, 1] and applies it.
func (r *Registry) SetVolume(id int, volume float64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	h, ok := r.handles[id]
	if !ok {
		return ErrNotFound
	}
	h.volume = utils.ClampUnit(volume)
	h.player.SetVolume(h.volume)
	return nil
}

func (r *Registry) Volume(id int) (float64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	h, ok := r.handles[id]
	if !ok {
		return 0, ErrNotFound
	}
	return h.volume, nil
}

func (r *Registry) Contains(id int) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.handles[id]
	return ok
}

func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.handles)
}

// Active lists ids in the order they were acquired.
func (r *Registry) Active() []int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.orderedLocked()
}

// Snapshot copies every handle's volume, sorted by id.
func (r *Registry) Snapshot() []Playing {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]Playing, 0, len(r.handles))
	for _, id := range slices.Sorted(maps.Keys(r.handles)) {
		out = append(out, Playing{ID: id, Volume: r.handles[id].volume})
	}
	return out
}

func (r *Registry) orderedLocked() []int {
	ids := slices.Collect(maps.Keys(r.handles))
	slices.SortFunc(ids, func(a, b int) int {
		return cmp.Compare(r.handles[a].seq, r.handles[b].seq)
	})
	return ids
}

func (r *Registry) dispose(id int, p Player) {
	if err := p.Close(); err != nil {
		r.logger.Warn("closing player", zap.Int("id", id), zap.Error(err))
	}
}
