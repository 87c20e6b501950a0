// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package code

import (
	"github.com/dsnet/golib/errs"

	"github.com/dsnet/bic/bitio"
)

// LeftmostMinimal codes x in [0, r] with b = floor(log2(r)) bits for the
// first c = 2^(b+1)-r-1 values [0, c), and b+1 bits for the rest, so that
// the short codewords are the leftmost (smallest) values in the range.
type LeftmostMinimal struct{}

// WriteValue codes x per the scheme above. r == 0 is a no-op.
func (LeftmostMinimal) WriteValue(snk *bitio.Sink, x, r uint32) {
	if r == 0 {
		return
	}
	errs.Assert(x <= r, ErrOutOfRange)

	b := msb(r)
	c := shortCount(r, b)
	if x < c {
		snk.Append(x, b)
		return
	}
	y := x + c
	snk.Append(y>>1, b)
	snk.Append(y&1, 1)
}

// ReadValue is the mirror of WriteValue.
func (LeftmostMinimal) ReadValue(src *bitio.Source, r uint32) uint32 {
	if r == 0 {
		return 0
	}

	b := msb(r)
	c := shortCount(r, b)
	x := src.Take(b)
	if x >= c {
		x = (x<<1 | src.Take(1)) - c
	}
	errs.Assert(x <= r, ErrCorrupt)
	return x
}
