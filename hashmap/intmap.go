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

import "golang.org/x/exp/constraints"

// IntMap is an unordered map from integer keys to values of type V. Keys
// compare directly, so no hashes are cached, and a zero key is an ordinary
// key.
type IntMap[K constraints.Integer, V any] struct {
	t table[K, V]
}

// NewIntMap constructs an IntMap with an initial capacity of at least
// sizeHint slots, rounded up to a power of two.
func NewIntMap[K constraints.Integer, V any](sizeHint int, alloc Allocator[K, V]) (*IntMap[K, V], error) {
	t, err := makeTable[K, V](sizeHint, hashInt[K], false, alloc)
	if err != nil {
		return nil, err
	}
	return &IntMap[K, V]{t: t}, nil
}

// Add inserts key with the given value, or overwrites the value if key is
// already in the map. present reports whether the key was already there.
func (m *IntMap[K, V]) Add(key K, value V) (present bool, err error) {
	return m.t.add(key, value)
}

// Lookup retrieves the value stored for key, returning ok=false if the key
// is not present.
func (m *IntMap[K, V]) Lookup(key K) (value V, ok bool) {
	return m.t.lookup(key)
}

// Len returns the number of entries in the map.
func (m *IntMap[K, V]) Len() int {
	return m.t.count
}

// Merge adds every entry of src to m, leaving src unchanged. When a key is
// in both maps, src's value wins.
func (m *IntMap[K, V]) Merge(src *IntMap[K, V]) error {
	return m.t.merge(&src.t, nil)
}

// Free returns the map's backing arrays to the allocator without cleaning
// up the values.
func (m *IntMap[K, V]) Free() {
	m.t.free()
}

// FreeWithDestructor invokes dtor(value, key) on every entry, and then frees
// the map. A nil dtor frees the map without visiting the entries.
func (m *IntMap[K, V]) FreeWithDestructor(dtor func(value V, key K)) {
	if dtor == nil {
		m.t.free()
		return
	}
	m.t.freeObjs(func(k K, v V) { dtor(v, k) }, nil)
}
