// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package bic_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/dsnet/bic"
	"github.com/dsnet/bic/code"
	"github.com/dsnet/bic/internal/testutil"
)

// seedSequences are the concrete scenarios from the testable-properties
// section of the design this package implements.
var seedSequences = [][]uint32{
	{3, 4, 7, 13, 14, 15, 21, 25, 36, 38, 54, 62},
	{0},
	{0, 1, 2, 3, 4},
	{5, 10, 15, 20, 25},
}

func encodeDecode[C code.Code](t *testing.T, in []uint32, opts ...bic.Option) []uint32 {
	t.Helper()
	enc := bic.NewEncoder[C](opts...)
	if err := enc.Encode(in); err != nil {
		t.Fatalf("Encode(%v) = %v", in, err)
	}
	dec := bic.NewDecoder[C](enc.Words(), opts...)
	out := make([]uint32, len(in))
	n, err := dec.Decode(out)
	if err != nil {
		t.Fatalf("Decode() = %v", err)
	}
	if n != len(in) {
		t.Fatalf("Decode() = %d values, want %d", n, len(in))
	}
	return out
}

func TestRoundTripSeedSequences(t *testing.T) {
	for _, seq := range seedSequences {
		t.Run("", func(t *testing.T) {
			gotBinary := encodeDecode[code.Binary](t, seq)
			gotLeftmost := encodeDecode[code.LeftmostMinimal](t, seq)
			gotCentered := encodeDecode[code.CenteredMinimal](t, seq)

			for name, got := range map[string][]uint32{
				"binary":           gotBinary,
				"leftmost_minimal": gotLeftmost,
				"centered_minimal": gotCentered,
			} {
				if diff := cmp.Diff(seq, got); diff != "" {
					t.Errorf("%s: round trip mismatch (-want +got):\n%s", name, diff)
				}
			}
		})
	}
}

// TestCenteredNotLargerThanBinary checks seed scenario 1: for the 12-value
// sample sequence, centered-minimal's bit length must be at most binary's.
func TestCenteredNotLargerThanBinary(t *testing.T) {
	seq := seedSequences[0]

	binEnc := bic.NewEncoder[code.Binary]()
	if err := binEnc.Encode(seq); err != nil {
		t.Fatal(err)
	}
	cenEnc := bic.NewEncoder[code.CenteredMinimal]()
	if err := cenEnc.Encode(seq); err != nil {
		t.Fatal(err)
	}
	if cenEnc.NumBits() > binEnc.NumBits() {
		t.Errorf("centered-minimal used %d bits, binary used %d", cenEnc.NumBits(), binEnc.NumBits())
	}
}

// TestHeaderIdempotence checks that encoding [v] writes exactly the two
// raw headers and nothing else.
func TestHeaderIdempotence(t *testing.T) {
	for _, v := range []uint32{0, 1, 255, 1 << 20} {
		enc := bic.NewEncoder[code.Binary]()
		if err := enc.Encode([]uint32{v}); err != nil {
			t.Fatal(err)
		}

		b := uint64(0)
		for x := v; x > 1; x >>= 1 {
			b++
		}
		want := uint64(5) + (b + 1) /* universe header */ + uint64(5) + 1 /* n header, n == 1 */
		if enc.NumBits() != want {
			t.Errorf("v=%d: wrote %d bits, want %d", v, enc.NumBits(), want)
		}

		dec := bic.NewDecoder[code.Binary](enc.Words())
		out := make([]uint32, 1)
		n, err := dec.Decode(out)
		if err != nil || n != 1 || out[0] != v {
			t.Errorf("v=%d: decode = (%v, %d, %v), want (%d, 1, nil)", v, out, n, err, v)
		}
	}
}

// TestRunLocality checks that a contiguous run round-trips WithRunAware and
// costs exactly as many bits as without it: every subproblem the run-aware
// mode skips has r == 0, for which no code in package code writes any bits.
func TestRunLocality(t *testing.T) {
	run := []uint32{10, 11, 12, 13, 14}

	enc := bic.NewEncoder[code.Binary](bic.WithRunAware())
	if err := enc.Encode(run); err != nil {
		t.Fatal(err)
	}

	plainEnc := bic.NewEncoder[code.Binary]()
	if err := plainEnc.Encode(run); err != nil {
		t.Fatal(err)
	}
	if enc.NumBits() != plainEnc.NumBits() {
		t.Errorf("run-aware encoding used %d bits, want the same as plain %d", enc.NumBits(), plainEnc.NumBits())
	}

	dec := bic.NewDecoder[code.Binary](enc.Words(), bic.WithRunAware())
	out := make([]uint32, len(run))
	n, err := dec.Decode(out)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(run, out[:n]); diff != "" {
		t.Errorf("run round trip mismatch (-want +got):\n%s", diff)
	}
}

// TestConcatenation checks that encoding two sequences back-to-back on one
// Encoder and decoding twice on one Decoder reproduces both, in order.
func TestConcatenation(t *testing.T) {
	s1 := []uint32{1, 2, 3}
	s2 := []uint32{100, 200, 300, 400}

	enc := bic.NewEncoder[code.LeftmostMinimal]()
	if err := enc.Encode(s1); err != nil {
		t.Fatal(err)
	}
	if err := enc.Encode(s2); err != nil {
		t.Fatal(err)
	}

	dec := bic.NewDecoder[code.LeftmostMinimal](enc.Words())
	out := make([]uint32, 4)

	n1, err := dec.Decode(out)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(s1, out[:n1]); diff != "" {
		t.Errorf("first sequence mismatch (-want +got):\n%s", diff)
	}

	n2, err := dec.Decode(out)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(s2, out[:n2]); diff != "" {
		t.Errorf("second sequence mismatch (-want +got):\n%s", diff)
	}
}

// TestRoundTripRandom covers seed scenario 5: 1000 strictly increasing
// samples drawn from [0, 2^20], for all three codes.
func TestRoundTripRandom(t *testing.T) {
	seq := testutil.RandomSequence(testutil.NewRand(1), 1000, 1<<20)

	gotBinary := encodeDecode[code.Binary](t, seq)
	gotLeftmost := encodeDecode[code.LeftmostMinimal](t, seq)
	gotCentered := encodeDecode[code.CenteredMinimal](t, seq)

	for name, got := range map[string][]uint32{
		"binary":           gotBinary,
		"leftmost_minimal": gotLeftmost,
		"centered_minimal": gotCentered,
	} {
		if diff := cmp.Diff(seq, got); diff != "" {
			t.Fatalf("%s: round trip mismatch (-want +got):\n%s", name, diff)
		}
	}

	binBits := encodeNumBits[code.Binary](t, seq)
	leftBits := encodeNumBits[code.LeftmostMinimal](t, seq)
	cenBits := encodeNumBits[code.CenteredMinimal](t, seq)

	if cenBits > binBits {
		t.Errorf("centered-minimal used %d bits, binary used %d", cenBits, binBits)
	}
	if delta := float64(cenBits) - float64(leftBits); delta > 0.01*float64(leftBits) {
		t.Errorf("centered-minimal used %d bits, leftmost-minimal used %d (more than 1%% worse)", cenBits, leftBits)
	}
}

func encodeNumBits[C code.Code](t *testing.T, in []uint32) uint64 {
	t.Helper()
	enc := bic.NewEncoder[C]()
	if err := enc.Encode(in); err != nil {
		t.Fatal(err)
	}
	return enc.NumBits()
}

func TestNonMonotoneInputFails(t *testing.T) {
	enc := bic.NewEncoder[code.Binary]()
	err := enc.Encode([]uint32{5, 3, 8})
	if err == nil {
		t.Fatal("Encode(non-monotone) succeeded, want error")
	}
}
