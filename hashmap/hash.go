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
	"math/bits"

	"golang.org/x/exp/constraints"
)

// hashFunc maps a key to a slot index in [0, capacity). capacity must be a
// power of two.
type hashFunc[K comparable] func(key K, capacity int) uint32

// hashString is Bob Jenkins' one-at-a-time hash, reduced to a slot index by
// masking with capacity-1. See http://www.burtleburtle.net/bob/hash/doobs.html
// (public domain).
func hashString(key string, capacity int) uint32 {
	var h uint64
	for i := 0; i < len(key); i++ {
		h += uint64(key[i])
		h += h << 10
		h ^= h >> 6
	}
	h += h << 3
	h ^= h >> 11
	h += h << 15
	return uint32(h & uint64(capacity-1))
}

// hashInt runs the one-at-a-time finishing mix over the whole word at once.
// Zero hashes to slot zero under every capacity.
func hashInt[K constraints.Integer](key K, capacity int) uint32 {
	h := uint64(key)
	h += h << 10
	h ^= h >> 6
	h += h << 3
	h ^= h >> 11
	h += h << 15
	return uint32(h & uint64(capacity-1))
}

// nextPowerOfTwo returns the smallest power of two >= n, and 1 for n <= 1.
func nextPowerOfTwo(n int) int {
	if n <= 1 {
		return 1
	}
	return 1 << bits.Len(uint(n-1))
}
