// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package bitio implements the word-oriented bit sink and bit source shared
// by the minimal-binary codes and the interpolative encoder and decoder.
//
// A Sink is an append-only bit stream backed by a growable slice of 32-bit
// words. A Source is a forward-only bit stream reading from a caller-owned
// slice of 32-bit words, such as one backing a memory-mapped file. Neither
// type performs I/O of its own; callers persist a Sink's Words or bind a
// Source to words obtained however they like.
package bitio

// Error is the wrapper type for errors specific to this package.
type Error string

func (e Error) Error() string { return "bitio: " + string(e) }

var (
	// ErrBitWidth is raised when a caller requests an Append or Take of more
	// than 32 bits, which this package cannot represent.
	ErrBitWidth error = Error("bit width exceeds 32 bits")

	// ErrShortSource is raised when a Source is asked to Take more bits than
	// remain in its backing word slice.
	ErrShortSource error = Error("source is short of words")
)
