// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package bic

// config holds the construction-time settings shared by Encoder and
// Decoder.
type config struct {
	runAware bool
}

// Option configures an Encoder or Decoder at construction time.
type Option func(*config)

// WithRunAware enables the run-aware optimization: whenever a recursive subproblem's range [lo, hi] admits only one
// legal sequence (hi-lo+1 == n, a contiguous run), no bits are written or
// read for it.
//
// This is a wire-format-affecting toggle. An Encoder built WithRunAware and
// a Decoder built without it (or vice versa) will silently desynchronize —
// the same way the reference implementation's compile-time RUNAWARE flag
// does. Callers must apply it symmetrically on both ends of a stream.
func WithRunAware() Option {
	return func(c *config) { c.runAware = true }
}
