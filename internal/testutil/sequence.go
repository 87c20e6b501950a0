// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package testutil

import "sort"

// RandomSequence draws n distinct values from [0, universe] using r and
// returns them in strictly increasing order. It panics if n > universe+1,
// since that many distinct values cannot be drawn.
func RandomSequence(r *Rand, n, universe int) []uint32 {
	if n > universe+1 {
		panic("testutil: n exceeds universe size")
	}

	seen := make(map[uint32]bool, n)
	out := make([]uint32, 0, n)
	for len(out) < n {
		v := uint32(r.Intn(universe + 1))
		if seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
