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

// Allocator specifies an interface for allocating and releasing the backing
// arrays of a container. Every Alloc method returns a zero-filled slice of
// length n, or an error, which the container treats as fatal to the operation
// in progress and propagates to its caller.
//
// If the allocator is manually managing memory then Free (or one of the
// destructor-invoking variants) must be called on the container in order to
// ensure the Free* methods are invoked.
type Allocator[K comparable, V any] interface {
	// AllocKeys should return a slice equivalent to make([]K, n).
	AllocKeys(n int) ([]K, error)

	// AllocHashes should return a slice equivalent to make([]uint32, n). It
	// is called only for containers that cache probe hashes.
	AllocHashes(n int) ([]uint32, error)

	// AllocValues should return a slice equivalent to make([]V, n).
	AllocValues(n int) ([]V, error)

	// AllocControls should return a slice equivalent to make([]uint8, n).
	AllocControls(n int) ([]uint8, error)

	// FreeKeys may release the memory of the supplied slice, which is
	// guaranteed to have been returned by AllocKeys.
	FreeKeys(v []K)

	// FreeHashes may release the memory of the supplied slice, which is
	// guaranteed to have been returned by AllocHashes.
	FreeHashes(v []uint32)

	// FreeValues may release the memory of the supplied slice, which is
	// guaranteed to have been returned by AllocValues.
	FreeValues(v []V)

	// FreeControls may release the memory of the supplied slice, which is
	// guaranteed to have been returned by AllocControls.
	FreeControls(v []uint8)
}

// RuntimeAllocator allocates through the Go runtime and leaves reclamation to
// the garbage collector; its Free methods do nothing. Runtime allocation does
// not report failure, so the Alloc methods never return an error.
type RuntimeAllocator[K comparable, V any] struct{}

var _ Allocator[string, int] = RuntimeAllocator[string, int]{}

func (RuntimeAllocator[K, V]) AllocKeys(n int) ([]K, error) {
	return make([]K, n), nil
}

func (RuntimeAllocator[K, V]) AllocHashes(n int) ([]uint32, error) {
	return make([]uint32, n), nil
}

func (RuntimeAllocator[K, V]) AllocValues(n int) ([]V, error) {
	return make([]V, n), nil
}

func (RuntimeAllocator[K, V]) AllocControls(n int) ([]uint8, error) {
	return make([]uint8, n), nil
}

func (RuntimeAllocator[K, V]) FreeKeys(v []K) {
}

func (RuntimeAllocator[K, V]) FreeHashes(v []uint32) {
}

func (RuntimeAllocator[K, V]) FreeValues(v []V) {
}

func (RuntimeAllocator[K, V]) FreeControls(v []uint8) {
}
