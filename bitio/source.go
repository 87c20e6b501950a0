// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package bitio

import "github.com/dsnet/golib/errs"

// Source is a forward-only bit stream reading from a caller-owned slice of
// 32-bit words, least-significant bit first — the mirror image of Sink.
//
// Source does not own the backing words; the slice must outlive every Take
// call made against it. This is what lets a Decoder read directly out of a
// memory-mapped file without copying.
type Source struct {
	words []uint32
	pos   int    // index of the next unconsumed word
	buf   uint64 // accumulator of not-yet-returned bits, LSB-aligned
	avail uint   // number of valid low-order bits in buf, 0 <= avail < 64
}

// Init binds the Source to words, discarding any previously buffered bits.
func (s *Source) Init(words []uint32) {
	s.words = words
	s.pos = 0
	s.buf = 0
	s.avail = 0
}

// Take consumes and returns the next len bits, least-significant bit first.
// len must be at most 32. At most one word is pulled from the backing slice
// per call: avail is always less than 64 before a Take, so one 32-bit
// refill leaves at least 32 valid bits, enough for any single request.
func (s *Source) Take(length uint) uint32 {
	if length == 0 {
		return 0
	}
	errs.Assert(length <= 32, ErrBitWidth)

	if s.avail < length {
		errs.Assert(s.pos < len(s.words), ErrShortSource)
		s.buf |= uint64(s.words[s.pos]) << s.avail
		s.pos++
		s.avail += 32
	}

	val := uint32(s.buf & (uint64(1)<<length - 1))
	s.buf >>= length
	s.avail -= length
	return val
}
