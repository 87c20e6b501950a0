// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package bic

import (
	"github.com/dsnet/golib/errs"

	"github.com/dsnet/bic/bitio"
	"github.com/dsnet/bic/code"
)

// Decoder decodes sequences written by an Encoder[R] using the same
// minimal-binary code R. The zero value is not usable; construct one with
// NewDecoder.
type Decoder[R code.Reader] struct {
	src bitio.Source
	cfg config
}

// NewDecoder creates a Decoder bound to words and configured with opts,
// which must match the Encoder's options exactly (see WithRunAware).
func NewDecoder[R code.Reader](words []uint32, opts ...Option) *Decoder[R] {
	d := new(Decoder[R])
	d.src.Init(words)
	for _, opt := range opts {
		opt(&d.cfg)
	}
	return d
}

// Reset rebinds the Decoder to a new word buffer, discarding any partially
// consumed stream state.
func (d *Decoder[R]) Reset(words []uint32) { d.src.Init(words) }

// Decode reads the next header-delimited sequence off the Decoder's bit
// stream into out and returns its length. Multiple Decode calls consume
// successive sequences written by successive Encoder.Encode calls.
//
// out must have length at least the decoded sequence's length; the highest
// index written is always out[n-1]. Passing an out sized to a known
// upper bound on the universe (e.g. reused across many Decode calls) is
// safe and avoids reallocating per call.
func (d *Decoder[R]) Decode(out []uint32) (n int, err error) {
	defer errs.Recover(&err)

	universe := readHeaderValue(&d.src)
	count := readHeaderValue(&d.src)
	if count == 0 {
		return 0, nil
	}
	errs.Assert(int(count) <= len(out), ErrShortBuffer)

	out[count-1] = universe
	var r R
	d.decode(r, out[:count-1], 0, universe)
	return int(count), nil
}

// decode is the recursive mirror of Encoder.encode: read the middle
// element first, then recurse left, then right, matching the encoder's
// pre-order exactly.
func (d *Decoder[R]) decode(r R, out []uint32, lo, hi uint32) {
	n := uint32(len(out))
	if n == 0 {
		return
	}
	if d.cfg.runAware && hi-lo+1 == n {
		for i := range out {
			out[i] = lo + uint32(i)
		}
		return
	}

	m := n / 2
	rr := hi - lo - n + 1
	x := r.ReadValue(&d.src, rr) + lo + m
	errs.Assert(x >= lo+m && x <= hi-(n-m-1), ErrCorrupt)
	out[m] = x

	if n == 1 {
		return
	}
	d.decode(r, out[:m], lo, x-1)
	d.decode(r, out[m+1:], x+1, hi)
}
