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

import (
	"errors"
	"fmt"
	"strings"
)

const debug = false

const (
	ctrlEmpty uint8 = 0
	ctrlFull  uint8 = 1
)

var errNilAllocator = errors.New("hashmap: nil Allocator")

// table is the open addressing engine shared by Map, IntMap, Set, and
// IntSet. Collisions resolve by linear probing: a probe scans forward from
// the slot the key hashes to, wrapping at the end of the arrays, until it
// finds the key or an empty slot. Entries are never removed individually,
// so a probe chain, once written, is never broken and no tombstone handling
// is needed.
type table[K comparable, V any] struct {
	// The number of slots, always a power of two. The capacity is used as a
	// mask to reduce a hash to a slot index with a bitwise & operation.
	capacity int
	// The number of occupied slots. add doubles the table before any insert
	// for which 2*count+1 >= capacity, so count never exceeds half of
	// capacity and a probe always has an empty slot to terminate at.
	count int
	// keys, values, and ctrls are capacity in length. ctrls[i] records
	// whether slot i is occupied, which lets any key or value, zero values
	// included, be stored. A zero-filled allocation is an all-empty table.
	keys   []K
	values []V
	ctrls  []uint8
	// hashes caches the slot index each stored key hashed to, letting a
	// probe reject most mismatches without comparing keys. nil unless
	// cacheHashes is set. The cached values depend on capacity and are
	// recomputed when the table grows.
	hashes []uint32
	// The hash function reducing a key to a slot index under the current
	// capacity.
	hash hashFunc[K]
	// cacheHashes directs allocArrays to allocate the hashes array. Worth
	// it for string keys; integer keys compare more cheaply than a cached
	// hash can be checked.
	cacheHashes bool
	// The allocator for the backing arrays.
	alloc Allocator[K, V]
}

// makeTable returns a table with capacity the smallest power of two that is
// at least sizeHint, with a minimum of 1. The backing arrays are allocated
// eagerly.
func makeTable[K comparable, V any](
	sizeHint int, hash hashFunc[K], cacheHashes bool, alloc Allocator[K, V],
) (table[K, V], error) {
	if alloc == nil {
		return table[K, V]{}, errNilAllocator
	}
	t := table[K, V]{
		hash:        hash,
		cacheHashes: cacheHashes,
		alloc:       alloc,
	}
	if err := t.allocArrays(nextPowerOfTwo(sizeHint)); err != nil {
		return table[K, V]{}, err
	}
	return t, nil
}

// allocArrays obtains the backing arrays for the given capacity and installs
// them along with the capacity. On failure the arrays already obtained are
// returned to the allocator and the table is left unmodified.
func (t *table[K, V]) allocArrays(capacity int) error {
	keys, err := t.alloc.AllocKeys(capacity)
	if err != nil {
		return err
	}
	var hashes []uint32
	if t.cacheHashes {
		hashes, err = t.alloc.AllocHashes(capacity)
		if err != nil {
			t.alloc.FreeKeys(keys)
			return err
		}
	}
	values, err := t.alloc.AllocValues(capacity)
	if err != nil {
		if t.cacheHashes {
			t.alloc.FreeHashes(hashes)
		}
		t.alloc.FreeKeys(keys)
		return err
	}
	ctrls, err := t.alloc.AllocControls(capacity)
	if err != nil {
		t.alloc.FreeValues(values)
		if t.cacheHashes {
			t.alloc.FreeHashes(hashes)
		}
		t.alloc.FreeKeys(keys)
		return err
	}
	t.keys = keys
	t.hashes = hashes
	t.values = values
	t.ctrls = ctrls
	t.capacity = capacity
	return nil
}

// matches reports whether slot i holds key. When hashes are cached a
// mismatched cached hash rejects the slot without comparing keys. Only
// meaningful for occupied slots; the caller checks ctrls.
func (t *table[K, V]) matches(i int, key K, h uint32) bool {
	if t.hashes != nil && t.hashes[i] != h {
		return false
	}
	return t.keys[i] == key
}

// find returns the slot where a probe for key stopped, which is the slot
// holding key, or the first empty slot at or after key's hash position, or,
// if an entire sweep found neither, the hash position itself. The returned
// index is always valid; the caller distinguishes the cases through ctrls.
func (t *table[K, V]) find(key K, h uint32) int {
	// From the slot the key hashes to through the end of the arrays.
	for i := int(h); i < t.capacity; i++ {
		if t.ctrls[i] == ctrlEmpty || t.matches(i, key, h) {
			return i
		}
	}
	// Wrap around and continue up to the starting slot.
	for i := 0; i < int(h); i++ {
		if t.ctrls[i] == ctrlEmpty || t.matches(i, key, h) {
			return i
		}
	}
	return int(h)
}

// add inserts key with the given value, or overwrites the value if key is
// already present, reporting which through present. Growth happens before
// any insert that would leave the table more than half full, so the probe
// below is guaranteed an empty slot.
func (t *table[K, V]) add(key K, value V) (present bool, err error) {
	if 2*t.count+1 >= t.capacity {
		if err := t.grow(); err != nil {
			return false, err
		}
	}

	h := t.hash(key, t.capacity)
	i := t.find(key, h)
	if debug {
		fmt.Printf("add(%v): hash=%d index=%d\n", key, h, i)
	}

	if t.ctrls[i] == ctrlEmpty {
		t.keys[i] = key
		if t.hashes != nil {
			t.hashes[i] = h
		}
		t.ctrls[i] = ctrlFull
		t.count++
	} else {
		if invariants && !t.matches(i, key, h) {
			panic(fmt.Sprintf("invariant failed: add(%v): slot %d holds another key\n%s",
				key, i, t.debugString()))
		}
		present = true
	}

	t.values[i] = value
	t.checkInvariants()
	return present, nil
}

// uncheckedAdd inserts an entry known not to be in the table, into a table
// known to have a free slot for it. Used when growing, where every
// reinserted key is distinct and the new table is at most a quarter full.
func (t *table[K, V]) uncheckedAdd(key K, value V) {
	h := t.hash(key, t.capacity)
	i := t.find(key, h)
	if invariants && t.ctrls[i] != ctrlEmpty {
		panic(fmt.Sprintf("invariant failed: uncheckedAdd(%v): slot %d is occupied\n%s",
			key, i, t.debugString()))
	}
	t.keys[i] = key
	if t.hashes != nil {
		t.hashes[i] = h
	}
	t.values[i] = value
	t.ctrls[i] = ctrlFull
	t.count++
}

// grow moves the table to backing arrays of twice the current capacity. The
// new arrays are fully allocated before any entry moves, so on failure the
// table is untouched and remains usable. Every entry rehashes under the new
// capacity mask.
func (t *table[K, V]) grow() error {
	newCapacity := 2 * t.capacity
	if newCapacity == 0 {
		newCapacity = 1
	}
	if debug {
		fmt.Printf("grow: capacity=%d->%d count=%d\n", t.capacity, newCapacity, t.count)
	}

	nt := table[K, V]{
		hash:        t.hash,
		cacheHashes: t.cacheHashes,
		alloc:       t.alloc,
	}
	if err := nt.allocArrays(newCapacity); err != nil {
		return err
	}
	for i := 0; i < t.capacity; i++ {
		if t.ctrls[i] == ctrlFull {
			nt.uncheckedAdd(t.keys[i], t.values[i])
		}
	}
	t.free()
	*t = nt
	t.checkInvariants()
	return nil
}

// lookup returns the value stored for key, with ok reporting whether key was
// present. Lookups on a freed table report absence.
func (t *table[K, V]) lookup(key K) (value V, ok bool) {
	if t.capacity == 0 {
		return value, false
	}
	h := t.hash(key, t.capacity)
	i := t.find(key, h)
	if debug {
		fmt.Printf("lookup(%v): hash=%d index=%d\n", key, h, i)
	}
	// find stops at an empty slot when key is absent, or at an arbitrary
	// occupied slot if the table is full, so the hit conditions are checked
	// rather than assumed.
	if t.ctrls[i] != ctrlFull || !t.matches(i, key, h) {
		return value, false
	}
	return t.values[i], true
}

// merge adds every entry of src to t, leaving src unchanged. When a key is
// in both, src's value wins. A non-nil dup is applied to each key before
// insertion so that t holds its own copies. On allocation failure t retains
// the entries merged so far and the error is returned.
func (t *table[K, V]) merge(src *table[K, V], dup func(K) K) error {
	for i := 0; i < src.capacity; i++ {
		if src.ctrls[i] != ctrlFull {
			continue
		}
		key := src.keys[i]
		if dup != nil {
			key = dup(key)
		}
		if _, err := t.add(key, src.values[i]); err != nil {
			return err
		}
	}
	return nil
}

// free returns the backing arrays to the allocator and zeroes the table.
// Freeing an already freed table is a no-op, and lookups on a freed table
// report absence, but no other use of a freed table is supported.
func (t *table[K, V]) free() {
	if t.capacity > 0 {
		t.alloc.FreeKeys(t.keys)
		if t.hashes != nil {
			t.alloc.FreeHashes(t.hashes)
		}
		t.alloc.FreeValues(t.values)
		t.alloc.FreeControls(t.ctrls)
	}
	t.keys = nil
	t.hashes = nil
	t.values = nil
	t.ctrls = nil
	t.capacity = 0
	t.count = 0
}

// freeObjs invokes the destructors on every entry, keyDtor before valueDtor,
// each skipped if nil, and then frees the table. Each entry's destructors
// run exactly once.
func (t *table[K, V]) freeObjs(keyDtor func(K, V), valueDtor func(V)) {
	for i := 0; i < t.capacity; i++ {
		if t.ctrls[i] != ctrlFull {
			continue
		}
		if keyDtor != nil {
			keyDtor(t.keys[i], t.values[i])
		}
		if valueDtor != nil {
			valueDtor(t.values[i])
		}
	}
	t.free()
}

func (t *table[K, V]) checkInvariants() {
	if invariants {
		if t.capacity&(t.capacity-1) != 0 {
			panic(fmt.Sprintf("invariant failed: capacity %d is not a power of two", t.capacity))
		}

		// For every occupied slot, verify the cached hash and that the key
		// can be retrieved. Count the occupied slots.
		var count int
		for i := 0; i < t.capacity; i++ {
			switch c := t.ctrls[i]; c {
			case ctrlEmpty:
			case ctrlFull:
				if t.hashes != nil {
					if h := t.hash(t.keys[i], t.capacity); t.hashes[i] != h {
						panic(fmt.Sprintf("invariant failed: slot(%d): cached hash %d, expected %d\n%s",
							i, t.hashes[i], h, t.debugString()))
					}
				}
				if _, ok := t.lookup(t.keys[i]); !ok {
					panic(fmt.Sprintf("invariant failed: slot(%d): %v not found\n%s",
						i, t.keys[i], t.debugString()))
				}
				count++
			default:
				panic(fmt.Sprintf("invariant failed: ctrl(%d): unexpected value %02x\n%s",
					i, c, t.debugString()))
			}
		}

		if count != t.count {
			panic(fmt.Sprintf("invariant failed: found %d occupied slots, but count is %d\n%s",
				count, t.count, t.debugString()))
		}
	}
}

func (t *table[K, V]) debugString() string {
	var buf strings.Builder
	fmt.Fprintf(&buf, "capacity=%d  count=%d\n", t.capacity, t.count)
	for i := 0; i < t.capacity; i++ {
		switch {
		case t.ctrls[i] == ctrlEmpty:
			fmt.Fprintf(&buf, "  %4d: empty\n", i)
		case t.hashes != nil:
			fmt.Fprintf(&buf, "  %4d: %v [hash=%d]\n", i, t.keys[i], t.hashes[i])
		default:
			fmt.Fprintf(&buf, "  %4d: %v\n", i, t.keys[i])
		}
	}
	return buf.String()
}
