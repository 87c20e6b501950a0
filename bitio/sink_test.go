// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package bitio

import "testing"

// TestAppend checks that a scripted series of Append calls produces the
// exact word layout the bit-index contract in the Sink doc promises.
// A failure here does not necessarily mean the encoding is wrong, but any
// change to these vectors must be justified by re-deriving the expected
// words by hand.
func TestAppend(t *testing.T) {
	var vectors = []struct {
		desc  string
		calls [][2]uint32 // {bits, len} pairs, applied in order
		words []uint32
		size  uint64
	}{{
		desc:  "empty",
		calls: nil,
		words: nil,
		size:  0,
	}, {
		desc:  "single word, exact fit",
		calls: [][2]uint32{{0xdeadbeef, 32}},
		words: []uint32{0xdeadbeef},
		size:  32,
	}, {
		desc:  "zero length is a no-op",
		calls: [][2]uint32{{0, 0}, {0x7, 3}, {0, 0}},
		words: []uint32{0x7},
		size:  3,
	}, {
		desc:  "spans two words",
		calls: [][2]uint32{{0xffffffff, 28}, {0xff, 8}},
		words: []uint32{0xffffffff, 0xf},
		size:  36,
	}, {
		desc: "many small appends accumulate LSB-first",
		calls: [][2]uint32{
			{0x1, 1}, {0x0, 1}, {0x1, 1}, {0x1, 1}, // bit0=1,bit1=0,bit2=1,bit3=1 => 0xd
		},
		words: []uint32{0xd},
		size:  4,
	}}

	for _, v := range vectors {
		t.Run(v.desc, func(t *testing.T) {
			var snk Sink
			for _, c := range v.calls {
				snk.Append(c[0], uint(c[1]))
			}
			if snk.NumBits() != v.size {
				t.Errorf("NumBits() = %d, want %d", snk.NumBits(), v.size)
			}
			got := snk.Words()
			if len(got) != len(v.words) {
				t.Fatalf("Words() = %x, want %x", got, v.words)
			}
			for i := range got {
				if got[i] != v.words[i] {
					t.Errorf("Words()[%d] = %#x, want %#x", i, got[i], v.words[i])
				}
			}
		})
	}
}

func TestReserve(t *testing.T) {
	var snk Sink
	snk.Reserve(4096)
	if cap(snk.words) < 1024 {
		t.Errorf("cap(words) = %d, want >= 1024", cap(snk.words))
	}
	if len(snk.words) != 0 {
		t.Errorf("len(words) = %d, want 0", len(snk.words))
	}
}
