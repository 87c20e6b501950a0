// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package code

import (
	"github.com/dsnet/golib/errs"

	"github.com/dsnet/bic/bitio"
)

// CenteredMinimal codes x in [0, r] the same way LeftmostMinimal does —
// b = floor(log2(r)) bits for c = 2^(b+1)-r-1 of the r+1 values, b+1 bits
// for the rest — but centers the short codewords on r/2 instead of placing
// them at the low end. This pays off when the distribution of x within a
// subproblem is concentrated near the middle of its range, which is the
// common case for the interpolative encoder's recursive split.
type CenteredMinimal struct{}

// centeredBounds computes the open interval (lo, hi) of values that get the short,
// b-bit codeword. r%2==0 nudges lo down by one to keep the interval exactly
// c wide when c is odd; see the package-level open question this resolves
// in DESIGN.md.
func centeredBounds(r uint32, b uint) (lo, hi int64) {
	c := shortCount(r, b)
	halfC := int64(c / 2)
	halfR := int64(r / 2)
	lo = halfR - halfC
	hi = halfR + halfC + 1
	if r%2 == 0 {
		lo--
	}
	return lo, hi
}

// WriteValue codes x per the scheme above. r == 0 is a no-op.
func (CenteredMinimal) WriteValue(snk *bitio.Sink, x, r uint32) {
	if r == 0 {
		return
	}
	errs.Assert(x <= r, ErrOutOfRange)

	b := msb(r)
	lo, hi := centeredBounds(r, b)
	xi := int64(x)
	if xi > lo && xi < hi {
		snk.Append(x, b)
		return
	}
	snk.Append(x, b+1)
}

// ReadValue is the mirror of WriteValue.
func (CenteredMinimal) ReadValue(src *bitio.Source, r uint32) uint32 {
	if r == 0 {
		return 0
	}

	b := msb(r)
	lo, _ := centeredBounds(r, b)
	x := src.Take(b)
	if int64(x) <= lo {
		x += src.Take(1) << b
	}
	errs.Assert(x <= r, ErrCorrupt)
	return x
}
