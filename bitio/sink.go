// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package bitio

import "github.com/dsnet/golib/errs"

// Sink is an append-only bit stream. Bits are packed least-significant-bit
// first into a slice of 32-bit words: conceptual bit index i lands in
// Words()[i/32] at bit position i%32.
//
// The zero value is an empty Sink ready for use.
type Sink struct {
	words []uint32
	size  uint64 // total number of bits appended
}

// Reserve pre-allocates word capacity for at least bytes of output, rounding
// up to the nearest whole word. It never shrinks existing capacity.
func (s *Sink) Reserve(bytes int) {
	if bytes <= 0 {
		return
	}
	n := (bytes + 3) / 4
	if cap(s.words) >= n {
		return
	}
	words := make([]uint32, len(s.words), n)
	copy(words, s.words)
	s.words = words
}

// NumBits reports the total number of bits appended so far.
func (s *Sink) NumBits() uint64 { return s.size }

// Words returns the current word buffer. Bits above the trailing size%32
// bits of the last word are always zero. The returned slice aliases the
// Sink's internal storage and is invalidated by the next Append.
func (s *Sink) Words() []uint32 { return s.words }

// Append appends the low len bits of bits to the stream, least-significant
// bit first. len must be at most 32; bits above position len in the
// argument must already be zero, per the caller contract of this package.
//
// The 64-bit intermediate below keeps the result well-defined for every
// (bits, len) pair, including len==32 at a non-zero bit position within the
// current word, without relying on shift-amount tricks at the word boundary.
func (s *Sink) Append(bits uint32, length uint) {
	if length == 0 {
		return
	}
	errs.Assert(length <= 32, ErrBitWidth)

	pos := uint(s.size & 31)
	s.size += uint64(length)

	v := uint64(bits) << pos
	if pos == 0 {
		s.words = append(s.words, uint32(v))
		return
	}
	s.words[len(s.words)-1] |= uint32(v)
	if length > 32-pos {
		s.words = append(s.words, uint32(v>>32))
	}
}
