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

// Set is an unordered set of strings.
type Set struct {
	t table[string, struct{}]
}

// NewSet constructs a Set with an initial capacity of at least sizeHint
// slots, rounded up to a power of two.
func NewSet(sizeHint int, alloc Allocator[string, struct{}]) (*Set, error) {
	t, err := makeTable[string, struct{}](sizeHint, hashString, true, alloc)
	if err != nil {
		return nil, err
	}
	return &Set{t: t}, nil
}

// Add inserts element, reporting whether it was already in the set.
func (s *Set) Add(element string) (present bool, err error) {
	return s.t.add(element, struct{}{})
}

// Test reports whether element is in the set.
func (s *Set) Test(element string) bool {
	_, ok := s.t.lookup(element)
	return ok
}

// Len returns the number of elements in the set.
func (s *Set) Len() int {
	return s.t.count
}

// Merge adds every element of src to s, leaving src unchanged. The
// destination refers to the same string memory as src; use MergeDuplicating
// to give s its own copies.
func (s *Set) Merge(src *Set) error {
	return s.t.merge(&src.t, nil)
}

// MergeDuplicating is Merge with each element copied before insertion.
func (s *Set) MergeDuplicating(src *Set) error {
	return s.t.merge(&src.t, strings.Clone)
}

// Free returns the set's backing arrays to the allocator. The elements
// themselves are not cleaned up; use FreeWithDestructor for that.
func (s *Set) Free() {
	s.t.free()
}

// FreeWithDestructor invokes dtor on every element, and then frees the set.
// A nil dtor frees the set without visiting the elements.
func (s *Set) FreeWithDestructor(dtor func(element string)) {
	if dtor == nil {
		s.t.free()
		return
	}
	s.t.freeObjs(func(e string, _ struct{}) { dtor(e) }, nil)
}
