// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package bic

import (
	"github.com/dsnet/golib/errs"

	"github.com/dsnet/bic/bitio"
	"github.com/dsnet/bic/code"
)

// Encoder encodes strictly increasing uint32 sequences with the
// minimal-binary code W. The zero value is not usable; construct one with
// NewEncoder.
type Encoder[W code.Writer] struct {
	sink bitio.Sink
	cfg  config
}

// NewEncoder creates an Encoder that delegates per-value coding to W —
// typically code.Binary, code.LeftmostMinimal, or code.CenteredMinimal.
func NewEncoder[W code.Writer](opts ...Option) *Encoder[W] {
	e := new(Encoder[W])
	for _, opt := range opts {
		opt(&e.cfg)
	}
	return e
}

// Reserve pre-allocates word capacity for at least bytes of output.
// Callers encoding many sequences onto one Encoder should reserve an upper
// bound up front to avoid reallocation mid-stream.
func (e *Encoder[W]) Reserve(bytes int) { e.sink.Reserve(bytes) }

// NumBits reports the total number of bits written so far, across every
// Encode call made on this Encoder.
func (e *Encoder[W]) NumBits() uint64 { return e.sink.NumBits() }

// Words returns the accumulated word buffer. The returned slice aliases the
// Encoder's internal storage and is invalidated by the next Encode.
func (e *Encoder[W]) Words() []uint32 { return e.sink.Words() }

// Encode writes input as a new header-delimited sequence onto the Encoder's
// bit stream. Encode may be called multiple times on the same Encoder to
// concatenate streams; each call emits its own universe/n header.
//
// input must be strictly increasing; input[len(input)-1] must be
// representable as the sequence's universe. An empty input writes nothing.
func (e *Encoder[W]) Encode(input []uint32) (err error) {
	defer errs.Recover(&err)

	n := uint32(len(input))
	if n == 0 {
		return nil
	}
	assertStrictlyIncreasing(input)

	universe := input[n-1]
	writeHeaderValue(&e.sink, universe)
	writeHeaderValue(&e.sink, n)

	var w W
	e.encode(w, input[:n-1], 0, universe)
	return nil
}

// encode is the recursive step from spec §4.4: write the middle element
// under its predicted range, then recurse left, then right. The pre-order
// here — middle, left, right — must match the Decoder's recursion exactly;
// any divergence corrupts every bit written after the first mismatch.
func (e *Encoder[W]) encode(w W, a []uint32, lo, hi uint32) {
	n := uint32(len(a))
	if n == 0 {
		return
	}
	if e.cfg.runAware && hi-lo+1 == n {
		return // The only legal sequence here is the contiguous run lo..hi.
	}
	errs.Assert(lo <= hi && hi-lo >= n-1, ErrNonMonotone)

	m := n / 2
	x := a[m]
	r := hi - lo - n + 1
	w.WriteValue(&e.sink, x-lo-m, r)

	e.encode(w, a[:m], lo, x-1)
	e.encode(w, a[m+1:], x+1, hi)
}

// assertStrictlyIncreasing panics with ErrNonMonotone if a is not strictly
// increasing. Non-monotone sequences are not supported (see the Non-goals in
// SPEC_FULL.md); this just fails fast instead of producing a stream that
// silently fails to round-trip.
func assertStrictlyIncreasing(a []uint32) {
	for i := 1; i < len(a); i++ {
		errs.Assert(a[i-1] < a[i], ErrNonMonotone)
	}
}
