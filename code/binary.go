// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package code

import (
	"github.com/dsnet/golib/errs"

	"github.com/dsnet/bic/bitio"
)

// Binary codes x in [0, r] using a fixed floor(log2(r))+1 bits, with no
// branching on the value. It is the baseline every other code in this
// package is measured against.
type Binary struct{}

// WriteValue writes x using floor(log2(r))+1 bits. r == 0 is a no-op: the
// only value in [0, 0] is 0, so nothing need be written.
func (Binary) WriteValue(snk *bitio.Sink, x, r uint32) {
	if r == 0 {
		return
	}
	errs.Assert(x <= r, ErrOutOfRange)
	snk.Append(x, msb(r)+1)
}

// ReadValue is the mirror of WriteValue.
func (Binary) ReadValue(src *bitio.Source, r uint32) uint32 {
	if r == 0 {
		return 0
	}
	x := src.Take(msb(r) + 1)
	errs.Assert(x <= r, ErrCorrupt)
	return x
}
