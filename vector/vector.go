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

// Package vector provides a growable array with explicit capacity control
// and constant-time unordered removal.
package vector

// A Vector is a growable array of elements of type T. The zero value is an
// empty vector ready for use.
//
// A Vector is NOT goroutine-safe.
type Vector[T any] struct {
	elems []T
}

// New returns an empty vector with the given initial capacity.
func New[T any](initialCapacity int) Vector[T] {
	return Vector[T]{elems: make([]T, 0, initialCapacity)}
}

// Len returns the number of elements.
func (v *Vector[T]) Len() int {
	return len(v.elems)
}

// Cap returns the current capacity.
func (v *Vector[T]) Cap() int {
	return cap(v.elems)
}

// Push appends item, doubling the capacity if the vector is full, and
// returns the position it was stored at.
func (v *Vector[T]) Push(item T) int {
	if len(v.elems) == cap(v.elems) {
		v.Resize(max(2*cap(v.elems), 1))
	}
	v.elems = append(v.elems, item)
	return len(v.elems) - 1
}

// PushSlice appends every element of items, leaving items unchanged.
func (v *Vector[T]) PushSlice(items []T) {
	if need := len(v.elems) + len(items); need > cap(v.elems) {
		v.Resize(max(need, 2*cap(v.elems)))
	}
	v.elems = append(v.elems, items...)
}

// PushVector appends every element of src, leaving src unchanged. src may be
// the destination itself.
func (v *Vector[T]) PushVector(src *Vector[T]) {
	v.PushSlice(src.elems)
}

// Pop removes and returns the last element. It panics if the vector is
// empty.
func (v *Vector[T]) Pop() T {
	n := len(v.elems) - 1
	item := v.elems[n]
	// Clear the slot so the backing array does not pin the element.
	var zero T
	v.elems[n] = zero
	v.elems = v.elems[:n]
	return item
}

// Get returns the element at n, with ok=false if n is out of range.
func (v *Vector[T]) Get(n int) (item T, ok bool) {
	if n < 0 || n >= len(v.elems) {
		return item, false
	}
	return v.elems[n], true
}

// Set replaces the element at n, reporting whether n was in range.
func (v *Vector[T]) Set(n int, item T) bool {
	if n < 0 || n >= len(v.elems) {
		return false
	}
	v.elems[n] = item
	return true
}

// RemoveReorder removes the element at n by moving the last element into its
// place, returning the removed element, with ok=false if n is out of range.
// The order of the remaining elements is not preserved.
func (v *Vector[T]) RemoveReorder(n int) (removed T, ok bool) {
	if n < 0 || n >= len(v.elems) {
		return removed, false
	}
	removed = v.elems[n]
	last := len(v.elems) - 1
	v.elems[n] = v.elems[last]
	var zero T
	v.elems[last] = zero
	v.elems = v.elems[:last]
	return removed, true
}

// Resize changes the capacity to exactly size, truncating the length if it
// no longer fits.
func (v *Vector[T]) Resize(size int) {
	length := min(len(v.elems), size)
	elems := make([]T, length, size)
	copy(elems, v.elems)
	v.elems = elems
}

// ForEach calls f on each element in index order.
func (v *Vector[T]) ForEach(f func(T)) {
	for _, item := range v.elems {
		f(item)
	}
}

// Free releases the backing array. Safe to call on the zero vector, and the
// vector is reusable afterward.
func (v *Vector[T]) Free() {
	v.elems = nil
}

// FreeWithDestructor calls dtor on each element, and then releases the
// backing array. A nil dtor just frees.
func (v *Vector[T]) FreeWithDestructor(dtor func(T)) {
	if dtor != nil {
		for _, item := range v.elems {
			dtor(item)
		}
	}
	v.elems = nil
}

// Find returns the index of the first element equal to item, or -1 if no
// element matches.
func Find[T comparable](v *Vector[T], item T) int {
	for i, e := range v.elems {
		if e == item {
			return i
		}
	}
	return -1
}

// Map assigns dest[n] = f(src[n]) for each n up to src's length, bounded by
// dest's capacity, and sets dest's length to the number of elements mapped.
// dest and src may be the same vector.
func Map[D, S any](dest *Vector[D], f func(S) D, src *Vector[S]) {
	upto := min(src.Len(), dest.Cap())
	dest.elems = dest.elems[:upto]
	for n := 0; n < upto; n++ {
		dest.elems[n] = f(src.elems[n])
	}
}
