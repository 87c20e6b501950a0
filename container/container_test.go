// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package container

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestRawSequencesRoundTrip(t *testing.T) {
	seqs := [][]uint32{
		{3, 4, 7, 13},
		{0},
		{5, 10, 15, 20, 25},
	}
	words := WriteRaw(25, seqs)

	r, err := NewRawSequences(words)
	if err != nil {
		t.Fatalf("NewRawSequences() = %v", err)
	}
	if r.Universe != 25 {
		t.Errorf("Universe = %d, want 25", r.Universe)
	}

	var got [][]uint32
	for {
		seq, ok, err := r.Next()
		if err != nil {
			t.Fatalf("Next() = %v", err)
		}
		if !ok {
			break
		}
		got = append(got, append([]uint32(nil), seq...))
	}
	if diff := cmp.Diff(seqs, got); diff != "" {
		t.Errorf("sequences mismatch (-want +got):\n%s", diff)
	}
}

func TestRawSequencesBadTag(t *testing.T) {
	_, err := NewRawSequences([]uint32{0, 10})
	if err != ErrBadTag {
		t.Errorf("NewRawSequences() = %v, want ErrBadTag", err)
	}
}

func TestRawSequencesTruncated(t *testing.T) {
	_, err := NewRawSequences([]uint32{1})
	if err != ErrTruncated {
		t.Errorf("NewRawSequences() = %v, want ErrTruncated", err)
	}

	r, err := NewRawSequences([]uint32{1, 10, 3, 1, 2})
	if err != nil {
		t.Fatal(err)
	}
	if _, _, err := r.Next(); err != ErrTruncated {
		t.Errorf("Next() = %v, want ErrTruncated", err)
	}
}

func TestEncodedWriterRoundTrip(t *testing.T) {
	var w EncodedWriter
	w.Observe(7)
	w.Observe(25)
	body := []uint32{0x1, 0x2, 0x3}

	words := w.Words(body)
	f, err := ParseEncodedFile(words)
	if err != nil {
		t.Fatalf("ParseEncodedFile() = %v", err)
	}
	if f.Universe != 25 {
		t.Errorf("Universe = %d, want 25", f.Universe)
	}
	if f.NumSequences != 2 {
		t.Errorf("NumSequences = %d, want 2", f.NumSequences)
	}
	if diff := cmp.Diff([]uint32{0x1, 0x2, 0x3}, f.Words); diff != "" {
		t.Errorf("Words mismatch (-want +got):\n%s", diff)
	}
}
