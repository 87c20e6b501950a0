// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package bic implements binary interpolative coding of strictly increasing
// sequences of uint32 values: a recursive encoder that, given a known
// [lo, hi] range and count n, predicts each element's position under an
// implicit uniform prior and writes only the deviation, plus the mirror
// decoder that reconstructs the sequence by repeating the same recursion.
//
// Encoder and Decoder are generic over which of the three code.Writer /
// code.Reader implementations in package code they delegate the per-value
// bit cost to — the Go stand-in for the C++ reference's template parameter.
package bic

// Error is the wrapper type for errors specific to this package.
type Error string

func (e Error) Error() string { return "bic: " + string(e) }

var (
	// ErrNonMonotone is raised when Encode is given a sequence that is not
	// strictly increasing.
	ErrNonMonotone error = Error("input sequence is not strictly increasing")

	// ErrShortBuffer is raised when Decode is given an output buffer too
	// small to hold the decoded sequence.
	ErrShortBuffer error = Error("output buffer is too small")

	// ErrCorrupt is raised when the bit stream cannot represent a valid
	// encoding — for example, a range arithmetic invariant failed during
	// decoding.
	ErrCorrupt error = Error("stream is corrupted")
)
