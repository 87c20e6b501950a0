// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package bic

import (
	"math/bits"

	"github.com/dsnet/bic/bitio"
)

// writeHeaderValue writes v as 5 bits for b = floor(log2(v)) (0 if v == 0),
// followed by b+1 raw bits of v. This is used for the universe and count
// that head every encoded sequence; it always uses raw Sink.Append calls,
// never the configured minimal-binary Writer, since at this point no range
// r is known yet.
func writeHeaderValue(snk *bitio.Sink, v uint32) {
	var b uint
	if v != 0 {
		b = uint(bits.Len32(v)) - 1
	}
	snk.Append(uint32(b), 5)
	snk.Append(v, b+1)
}

// readHeaderValue is the mirror of writeHeaderValue.
func readHeaderValue(src *bitio.Source) uint32 {
	b := src.Take(5)
	return src.Take(b + 1)
}
