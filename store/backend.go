// SPDX-License-Identifier: EPL-2.0

package store

import (
	"context"
	"iter"
	"strings"
)

// Separator joins key segments in the encoded form.
const Separator byte = ':'

// Key is a hierarchical path such as Key{"mix", "3f2a..."}. Segments must
// not contain Separator.
type Key []string

func (k Key) String() string {
	return strings.Join(k, string(Separator))
}

func (k Key) encode() []byte {
	return []byte(k.String())
}

func decodeKey(b []byte) Key {
	if len(b) == 0 {
		return nil
	}
	return Key(strings.Split(string(b), string(Separator)))
}

// prefixBytes is the encoded prefix plus a trailing separator, so that
// Key{"mix"} never matches "mixes:x". An empty prefix matches everything.
func prefixBytes(prefix Key) []byte {
	if len(prefix) == 0 {
		return nil
	}
	return append(prefix.encode(), Separator)
}

// Entry is one key/value pair produced by List.
type Entry struct {
	Key   Key
	Value []byte
}

// Backend is the byte-level storage the Store encodes its records into.
type Backend interface {
	// Get returns ErrNotFound when the key is absent.
	Get(ctx context.Context, key Key) ([]byte, error)

	// Set overwrites any existing value.
	Set(ctx context.Context, key Key, value []byte) error

	// Delete does not fail on a missing key.
	Delete(ctx context.Context, key Key) error

	// List yields entries under prefix in lexicographic key order.
	List(ctx context.Context, prefix Key) iter.Seq2[Entry, error]

	Close() error
}
