// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package container

// rawTag is the fixed first word of every raw input file.
const rawTag = 1

// RawSequences is a forward-only, allocation-free iterator over a raw input
// file's sequences. The backing words slice is typically a memory-mapped
// view (see OpenMapped); RawSequences never copies it.
type RawSequences struct {
	Universe uint32
	words    []uint32
	pos      int
}

// NewRawSequences validates the tag and universe header of words and
// returns a RawSequences ready to iterate its sequences.
func NewRawSequences(words []uint32) (*RawSequences, error) {
	if len(words) < 2 {
		return nil, ErrTruncated
	}
	if words[0] != rawTag {
		return nil, ErrBadTag
	}
	return &RawSequences{Universe: words[1], words: words, pos: 2}, nil
}

// Next returns the next sequence, or ok == false once the file is
// exhausted. The returned slice aliases the backing words and is only
// valid until the next call to Next.
func (r *RawSequences) Next() (seq []uint32, ok bool, err error) {
	if r.pos >= len(r.words) {
		return nil, false, nil
	}
	n := int(r.words[r.pos])
	r.pos++
	if r.pos+n > len(r.words) {
		return nil, false, ErrTruncated
	}
	seq = r.words[r.pos : r.pos+n]
	r.pos += n
	return seq, true, nil
}

// WriteRaw returns a new raw input file: the tag, universe, then each
// sequence in seqs framed by its length. universe should be the maximum
// value across every sequence, per the raw file format.
func WriteRaw(universe uint32, seqs [][]uint32) []uint32 {
	n := 2
	for _, seq := range seqs {
		n += 1 + len(seq)
	}
	out := make([]uint32, 0, n)
	out = append(out, rawTag, universe)
	for _, seq := range seqs {
		out = append(out, uint32(len(seq)))
		out = append(out, seq...)
	}
	return out
}
