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
	"fmt"
	"math/rand"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"
)

func TestMapBasic(t *testing.T) {
	m, err := NewMap[string](0, RuntimeAllocator[string, string]{})
	require.NoError(t, err)

	_, ok := m.Lookup("absent")
	require.False(t, ok)

	present, err := m.Add("greeting", "hello")
	require.NoError(t, err)
	require.False(t, present)
	require.Equal(t, 1, m.Len())

	v, ok := m.Lookup("greeting")
	require.True(t, ok)
	require.Equal(t, "hello", v)

	present, err = m.Add("greeting", "hi")
	require.NoError(t, err)
	require.True(t, present)
	require.Equal(t, 1, m.Len())

	v, ok = m.Lookup("greeting")
	require.True(t, ok)
	require.Equal(t, "hi", v)

	m.Free()
}

func TestMapRandom(t *testing.T) {
	m, err := NewMap[int](0, RuntimeAllocator[string, int]{})
	require.NoError(t, err)
	e := make(map[string]int)

	for i := 0; i < 5000; i++ {
		switch r := rand.Float64(); {
		case r < 0.5: // 50% inserts and updates
			k, v := fmt.Sprintf("key-%d", rand.Intn(2000)), rand.Int()
			_, err := m.Add(k, v)
			require.NoError(t, err)
			e[k] = v
		case r < 0.75: // 25% lookups of likely-present keys
			k := fmt.Sprintf("key-%d", rand.Intn(2000))
			v, ok := m.Lookup(k)
			ev, eok := e[k]
			require.Equal(t, eok, ok)
			if ok {
				require.Equal(t, ev, v)
			}
		default: // 25% lookups of absent keys
			_, ok := m.Lookup(fmt.Sprintf("missing-%d", rand.Int()))
			require.False(t, ok)
		}
		require.Equal(t, len(e), m.Len())
	}
	require.Equal(t, e, m.t.toBuiltin())
}

func TestMapMerge(t *testing.T) {
	newMap := func(entries map[string]int) *Map[int] {
		m, err := NewMap[int](len(entries), RuntimeAllocator[string, int]{})
		require.NoError(t, err)
		for k, v := range entries {
			_, err := m.Add(k, v)
			require.NoError(t, err)
		}
		return m
	}

	t.Run("disjoint", func(t *testing.T) {
		dest := newMap(map[string]int{"a": 1, "b": 2})
		src := newMap(map[string]int{"c": 3, "d": 4})
		require.NoError(t, dest.Merge(src))
		require.Equal(t, map[string]int{"a": 1, "b": 2, "c": 3, "d": 4}, dest.t.toBuiltin())
		require.Equal(t, 4, dest.Len())

		// src is unchanged.
		require.Equal(t, map[string]int{"c": 3, "d": 4}, src.t.toBuiltin())
	})

	t.Run("overlap", func(t *testing.T) {
		dest := newMap(map[string]int{"a": 1, "b": 2})
		src := newMap(map[string]int{"b": 20, "c": 30})
		require.NoError(t, dest.Merge(src))
		require.Equal(t, map[string]int{"a": 1, "b": 20, "c": 30}, dest.t.toBuiltin())
	})

	t.Run("into-empty", func(t *testing.T) {
		dest := newMap(nil)
		src := newMap(map[string]int{"a": 1})
		require.NoError(t, dest.Merge(src))
		require.Equal(t, map[string]int{"a": 1}, dest.t.toBuiltin())
	})
}

// storedKey digs the physical key string out of the table, bypassing value
// copies made on the way out of Lookup.
func storedKey[V any](t *testing.T, m *Map[V], key string) string {
	for i := 0; i < m.t.capacity; i++ {
		if m.t.ctrls[i] == ctrlFull && m.t.keys[i] == key {
			return m.t.keys[i]
		}
	}
	t.Fatalf("key %q not stored", key)
	return ""
}

func TestMapMergeDuplicating(t *testing.T) {
	key := "shared-key"
	src, err := NewMap[int](1, RuntimeAllocator[string, int]{})
	require.NoError(t, err)
	_, err = src.Add(key, 7)
	require.NoError(t, err)

	// Merge leaves the destination aliasing the source's key bytes.
	shared, err := NewMap[int](1, RuntimeAllocator[string, int]{})
	require.NoError(t, err)
	require.NoError(t, shared.Merge(src))
	require.Same(t,
		unsafe.StringData(storedKey(t, src, key)),
		unsafe.StringData(storedKey(t, shared, key)))

	// MergeDuplicating gives the destination its own copy.
	duplicated, err := NewMap[int](1, RuntimeAllocator[string, int]{})
	require.NoError(t, err)
	require.NoError(t, duplicated.MergeDuplicating(src))
	require.NotSame(t,
		unsafe.StringData(storedKey(t, src, key)),
		unsafe.StringData(storedKey(t, duplicated, key)))

	v, ok := duplicated.Lookup(key)
	require.True(t, ok)
	require.Equal(t, 7, v)
}

func TestMapFreeWithDestructors(t *testing.T) {
	newMap := func() (*Map[int], map[string]int) {
		m, err := NewMap[int](0, RuntimeAllocator[string, int]{})
		require.NoError(t, err)
		entries := map[string]int{"a": 1, "b": 2, "c": 3}
		for k, v := range entries {
			_, err := m.Add(k, v)
			require.NoError(t, err)
		}
		return m, entries
	}

	t.Run("both", func(t *testing.T) {
		m, entries := newMap()
		keyCalls := make(map[string]int)
		valueCalls := make(map[int]int)
		var lastKey string
		m.FreeWithDestructors(
			func(key string, value int) {
				keyCalls[key]++
				require.Equal(t, entries[key], value)
				lastKey = key
			},
			func(value int) {
				// The value destructor follows the key destructor for the
				// same entry.
				require.Equal(t, entries[lastKey], value)
				valueCalls[value]++
			},
		)

		require.Equal(t, map[string]int{"a": 1, "b": 1, "c": 1}, keyCalls)
		require.Equal(t, map[int]int{1: 1, 2: 1, 3: 1}, valueCalls)
		require.Equal(t, 0, m.Len())
		_, ok := m.Lookup("a")
		require.False(t, ok)
	})

	t.Run("value-only", func(t *testing.T) {
		m, _ := newMap()
		valueCalls := make(map[int]int)
		m.FreeWithDestructors(nil, func(value int) {
			valueCalls[value]++
		})
		require.Equal(t, map[int]int{1: 1, 2: 1, 3: 1}, valueCalls)
		require.Equal(t, 0, m.Len())
	})

	t.Run("neither", func(t *testing.T) {
		m, _ := newMap()
		m.FreeWithDestructors(nil, nil)
		require.Equal(t, 0, m.Len())
	})
}
