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

// Package hashmap provides four hash containers backed by one open-addressing
// table.
//
// Abstractly, a map translates unique keys to arbitrary values. A set
// contains unique elements: any possible member either belongs to it or
// doesn't. Neither has any concept of an ordering.
//
// The concrete containers are:
//   - Map: a map from string keys to values of any type. It is the most
//     general of these structures.
//   - IntMap: a map from integer keys to values of any type.
//   - Set: a set of strings.
//   - IntSet: a set of integers.
//
// All four are instantiations of the same engine, a linear-probing table
// whose capacity is always a power of two and whose load factor is kept from
// exceeding one half by doubling before any insertion that would cross it. The
// containers support insertion, lookup and merging, but not deletion: there
// are no tombstones, and a key once added stays until the container is freed.
//
// Memory for the backing arrays comes from an Allocator supplied at
// construction; the same allocator serves growth and teardown. There is no
// implicit default. Callers that want the Go runtime's allocation and garbage
// collection pass RuntimeAllocator:
//
//	m, err := hashmap.NewMap[int](16, hashmap.RuntimeAllocator[string, int]{})
//
// Ownership notes:
//   - Free releases the container's arrays, not the stored keys or values.
//   - FreeWithDestructors (and the single-destructor variants) invoke
//     caller-supplied destructors on every occupied slot first.
//   - Merge leaves the destination sharing the source's key strings;
//     MergeDuplicating copies each key into the destination instead. Either
//     way the value is shared.
//
// None of the containers is goroutine-safe.
package hashmap
