// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package container

// EncodedFile is the parsed form of an encoded file: a universe and
// sequence-count header, followed by the raw concatenation of the word
// buffers an Encoder produced for each sequence, back to back. There is no
// per-sequence framing here; bic.Decoder locates sequence boundaries
// itself by re-reading each sequence's own universe/count header from the
// bit stream.
type EncodedFile struct {
	Universe     uint32
	NumSequences uint32
	Words        []uint32
}

// ParseEncodedFile validates and splits words into an EncodedFile. The
// returned Words slice aliases words.
func ParseEncodedFile(words []uint32) (EncodedFile, error) {
	if len(words) < 2 {
		return EncodedFile{}, ErrTruncated
	}
	return EncodedFile{
		Universe:     words[0],
		NumSequences: words[1],
		Words:        words[2:],
	}, nil
}

// EncodedWriter tracks the header fields of an encoded file while its
// sequences are encoded, in order, onto a single Encoder whose accumulated
// Words() becomes the file's body. Unlike the raw file format, sequences
// here are not individually framed: Observe only needs to track how many
// there were and the largest universe among them.
type EncodedWriter struct {
	Universe     uint32
	NumSequences uint32
}

// Observe records that one more sequence, with the given universe, has
// been encoded onto the body Encoder.
func (w *EncodedWriter) Observe(universe uint32) {
	if universe > w.Universe {
		w.Universe = universe
	}
	w.NumSequences++
}

// Words assembles the final word buffer: the universe/num_sequences header
// followed by body, which should be the body Encoder's accumulated Words().
func (w *EncodedWriter) Words(body []uint32) []uint32 {
	out := make([]uint32, 0, 2+len(body))
	out = append(out, w.Universe, w.NumSequences)
	out = append(out, body...)
	return out
}
