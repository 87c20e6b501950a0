// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package code implements the three minimal-binary codes that the
// interpolative encoder and decoder delegate to: Binary, LeftmostMinimal,
// and CenteredMinimal. Each codes an integer x in [0, r] using either
// floor(log2(r))+1 bits, or, for LeftmostMinimal and CenteredMinimal,
// floor(log2(r)) bits for some of the values in that range.
//
// Every type here is a stateless value; the bic.Encoder/bic.Decoder pick
// one as a generic type parameter, the Go analogue of the C++ template
// parameter in the reference implementation this package is ported from.
package code

import (
	"math/bits"

	"github.com/dsnet/bic/bitio"
)

// Error is the wrapper type for errors specific to this package.
type Error string

func (e Error) Error() string { return "code: " + string(e) }

var (
	// ErrOutOfRange is raised when a caller asks to write a value x > r.
	ErrOutOfRange error = Error("value exceeds its range")

	// ErrCorrupt is raised when a decoded value does not satisfy x <= r,
	// which can only happen if the bit stream does not match what this
	// code's Writer produced.
	ErrCorrupt error = Error("decoded value exceeds its range")
)

// Writer codes a single value x in [0, r] into snk.
type Writer interface {
	WriteValue(snk *bitio.Sink, x, r uint32)
}

// Reader decodes a single value in [0, r] out of src.
type Reader interface {
	ReadValue(src *bitio.Source, r uint32) uint32
}

// Code is the combined read/write capability set a minimal-binary code
// provides. Binary, LeftmostMinimal, and CenteredMinimal all satisfy it.
type Code interface {
	Writer
	Reader
}

// msb returns floor(log2(r)) for r >= 1. The caller must exclude r == 0,
// for which floor(log2) is undefined; every Writer/Reader below handles
// r == 0 as a dedicated no-op case before calling msb.
func msb(r uint32) uint {
	return uint(bits.Len32(r)) - 1
}

// shortCount returns c, the number of length-b "short" codewords among the
// r+1 values in [0, r], where b = msb(r). This is the same c used by both
// LeftmostMinimal and CenteredMinimal to place their codeword boundary.
func shortCount(r uint32, b uint) uint32 {
	return uint32(uint64(1)<<(b+1) - uint64(r) - 1)
}
