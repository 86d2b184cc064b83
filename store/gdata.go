// SPDX-License-Identifier: EPL-2.0

package store

import (
	"bytes"
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"iter"
	"slices"
	"sync"

	"github.com/quasilyte/gdata"
	"github.com/vmihailenco/msgpack/v5"
)

const gdataIndexItem = "index"

// GData stores each entry as one item in the platform's app-data directory
// (or browser local storage) through gdata. Items are flat, so the set of
// live keys is kept in a separate index item to support List.
type GData struct {
	mu    sync.Mutex
	m     *gdata.Manager
	index []string
}

func NewGData(appName string) (*GData, error) {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return nil, fmt.Errorf("opening app data: %w", err)
	}

	g := &GData{m: m}
	data, err := m.LoadItem(gdataIndexItem)
	if err != nil {
		return nil, fmt.Errorf("loading index: %w", err)
	}
	if len(data) > 0 {
		if err := msgpack.Unmarshal(data, &g.index); err != nil {
			return nil, fmt.Errorf("decoding index: %w", err)
		}
	}
	return g, nil
}

// itemKey makes an encoded key safe to use as a file name.
func itemKey(k string) string {
	return "k" + hex.EncodeToString([]byte(k))
}

func (g *GData) Get(_ context.Context, key Key) ([]byte, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.m == nil {
		return nil, ErrClosed
	}
	data, err := g.m.LoadItem(itemKey(key.String()))
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, ErrNotFound
	}
	return data, nil
}

func (g *GData) Set(_ context.Context, key Key, value []byte) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.m == nil {
		return ErrClosed
	}
	k := key.String()
	if err := g.m.SaveItem(itemKey(k), value); err != nil {
		return err
	}
	i, found := slices.BinarySearch(g.index, k)
	if found {
		return nil
	}
	g.index = slices.Insert(g.index, i, k)
	return g.saveIndexLocked()
}

func (g *GData) Delete(_ context.Context, key Key) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.m == nil {
		return ErrClosed
	}
	k := key.String()
	i, found := slices.BinarySearch(g.index, k)
	if !found {
		return nil
	}
	if err := g.m.DeleteItem(itemKey(k)); err != nil {
		return err
	}
	g.index = slices.Delete(g.index, i, i+1)
	return g.saveIndexLocked()
}

func (g *GData) List(ctx context.Context, prefix Key) iter.Seq2[Entry, error] {
	p := prefixBytes(prefix)

	return func(yield func(Entry, error) bool) {
		g.mu.Lock()
		keys := slices.Clone(g.index)
		g.mu.Unlock()

		for _, k := range keys {
			if !bytes.HasPrefix([]byte(k), p) {
				continue
			}
			key := decodeKey([]byte(k))
			v, err := g.Get(ctx, key)
			if errors.Is(err, ErrNotFound) {
				continue
			}
			if !yield(Entry{Key: key, Value: v}, err) {
				return
			}
		}
	}
}

func (g *GData) saveIndexLocked() error {
	data, err := msgpack.Marshal(g.index)
	if err != nil {
		return err
	}
	return g.m.SaveItem(gdataIndexItem, data)
}

func (g *GData) Close() error {
	g.mu.Lock()
	g.m = nil
	g.mu.Unlock()
	return nil
}
