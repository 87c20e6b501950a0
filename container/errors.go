// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package container implements the on-disk formats used by the encode,
// decode, and check driver tools: the raw input file (a tag, a universe,
// and a concatenation of n-prefixed strictly increasing sequences) and the
// encoded file (a universe, a sequence count, and the raw concatenation of
// an Encoder's word buffer). Neither format is part of the coding core;
// both exist only for bit-exact interop between the driver tools.
package container

// Error identifies a fault in a container file's structure.
type Error string

func (e Error) Error() string { return "container: " + string(e) }

const (
	ErrBadTag    = Error("raw file has wrong tag")
	ErrTruncated = Error("file is truncated")
)
