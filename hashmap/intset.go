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

// IntSet is an unordered set of integers. A zero element is an ordinary
// element.
type IntSet[K constraints.Integer] struct {
	t table[K, struct{}]
}

// NewIntSet constructs an IntSet with an initial capacity of at least
// sizeHint slots, rounded up to a power of two.
func NewIntSet[K constraints.Integer](sizeHint int, alloc Allocator[K, struct{}]) (*IntSet[K], error) {
	t, err := makeTable[K, struct{}](sizeHint, hashInt[K], false, alloc)
	if err != nil {
		return nil, err
	}
	return &IntSet[K]{t: t}, nil
}

// Add inserts element, reporting whether it was already in the set.
func (s *IntSet[K]) Add(element K) (present bool, err error) {
	return s.t.add(element, struct{}{})
}

// Test reports whether element is in the set.
func (s *IntSet[K]) Test(element K) bool {
	_, ok := s.t.lookup(element)
	return ok
}

// Len returns the number of elements in the set.
func (s *IntSet[K]) Len() int {
	return s.t.count
}

// Merge adds every element of src to s, leaving src unchanged.
func (s *IntSet[K]) Merge(src *IntSet[K]) error {
	return s.t.merge(&src.t, nil)
}

// Free returns the set's backing arrays to the allocator.
func (s *IntSet[K]) Free() {
	s.t.free()
}
