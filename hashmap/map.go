// Copyright 2026 The libkiss Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package hashmap

import "strings"

// Map is an unordered map from string keys to values of type V. It is the
// most general of the package's containers; probes against it compare a
// cached hash before comparing keys.
//
// A Map is NOT goroutine-safe.
type Map[V any] struct {
	t table[string, V]
}

// NewMap constructs a Map with an initial capacity of at least sizeHint
// slots, rounded up to a power of two. The map never exceeds half full, so
// size for roughly twice the expected number of entries. The allocator is
// required; RuntimeAllocator is the usual choice.
func NewMap[V any](sizeHint int, alloc Allocator[string, V]) (*Map[V], error) {
	t, err := makeTable[string, V](sizeHint, hashString, true, alloc)
	if err != nil {
		return nil, err
	}
	return &Map[V]{t: t}, nil
}

// Add inserts key with the given value, or overwrites the value if key is
// already in the map. present reports whether the key was already there.
func (m *Map[V]) Add(key string, value V) (present bool, err error) {
	return m.t.add(key, value)
}

// Lookup retrieves the value stored for key, returning ok=false if the key
// is not present.
func (m *Map[V]) Lookup(key string) (value V, ok bool) {
	return m.t.lookup(key)
}

// Len returns the number of entries in the map.
func (m *Map[V]) Len() int {
	return m.t.count
}

// Merge adds every entry of src to m, leaving src unchanged. The destination
// refers to the same key and value memory as src; use MergeDuplicating to
// give m its own copies of the keys. When a key is in both maps, src's value
// wins.
func (m *Map[V]) Merge(src *Map[V]) error {
	return m.t.merge(&src.t, nil)
}

// MergeDuplicating is Merge with each key copied before insertion, so that
// m's keys do not alias src's. The values are still shared.
func (m *Map[V]) MergeDuplicating(src *Map[V]) error {
	return m.t.merge(&src.t, strings.Clone)
}

// Free returns the map's backing arrays to the allocator. The keys and
// values themselves are not cleaned up; use FreeWithDestructors for that.
// Freeing an already freed map is a no-op.
func (m *Map[V]) Free() {
	m.t.free()
}

// FreeWithDestructors invokes keyDtor(key, value) and then valueDtor(value)
// on every entry, and then frees the map. Either destructor may be nil.
func (m *Map[V]) FreeWithDestructors(keyDtor func(key string, value V), valueDtor func(value V)) {
	m.t.freeObjs(keyDtor, valueDtor)
}
