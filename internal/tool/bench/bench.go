// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package bench compares the three minimal-binary codes against each other,
// and against general-purpose byte-oriented compressors, on the same
// posting lists.
package bench

import (
	"bytes"
	"compress/gzip"
	"encoding/binary"
	"io"
	"runtime"
	"testing"

	"github.com/klauspost/compress/zstd"
	"github.com/ulikunitz/xz"

	"github.com/dsnet/bic"
	"github.com/dsnet/bic/code"
)

// Codec identifies one of the three minimal-binary codes by name, matching
// the codec argument accepted by cmd/encode, cmd/decode, and cmd/check.
const (
	Binary          = "binary"
	LeftmostMinimal = "leftmost_minimal"
	CenteredMinimal = "centered_minimal"
)

// Codecs lists every registered minimal-binary code, in a stable order.
var Codecs = []string{Binary, LeftmostMinimal, CenteredMinimal}

// Result reports one benchmark trial: a throughput in millions of ints per
// second and the resulting size in bits per encoded int.
type Result struct {
	IntsPerSec float64
	BitsPerInt float64
}

// EncodeSequence encodes seq with the named codec and returns the word
// buffer and the wall-clock encode rate.
func EncodeSequence(codec string, seq []uint32) (words []uint32, result Result) {
	var bitLen uint64
	res := testing.Benchmark(func(b *testing.B) {
		runtime.GC()
		for i := 0; i < b.N; i++ {
			words, bitLen = encodeOnce(codec, seq)
		}
		b.SetBytes(int64(len(seq)))
	})
	rate := float64(res.N*len(seq)) / res.T.Seconds() / 1e6
	return words, Result{
		IntsPerSec: rate,
		BitsPerInt: float64(bitLen) / float64(len(seq)),
	}
}

// DecodeSequence decodes words, an encoded sequence of n values, with the
// named codec and returns the wall-clock decode rate.
func DecodeSequence(codec string, words []uint32, n int) Result {
	out := make([]uint32, n)
	res := testing.Benchmark(func(b *testing.B) {
		runtime.GC()
		for i := 0; i < b.N; i++ {
			decodeOnce(codec, words, out)
		}
		b.SetBytes(int64(n))
	})
	rate := float64(res.N*n) / res.T.Seconds() / 1e6
	return Result{IntsPerSec: rate}
}

func encodeOnce(codec string, seq []uint32) ([]uint32, uint64) {
	switch codec {
	case Binary:
		enc := bic.NewEncoder[code.Binary]()
		must(enc.Encode(seq))
		return enc.Words(), enc.NumBits()
	case LeftmostMinimal:
		enc := bic.NewEncoder[code.LeftmostMinimal]()
		must(enc.Encode(seq))
		return enc.Words(), enc.NumBits()
	case CenteredMinimal:
		enc := bic.NewEncoder[code.CenteredMinimal]()
		must(enc.Encode(seq))
		return enc.Words(), enc.NumBits()
	default:
		panic("bench: unknown codec " + codec)
	}
}

func decodeOnce(codec string, words []uint32, out []uint32) {
	switch codec {
	case Binary:
		dec := bic.NewDecoder[code.Binary](words)
		must2(dec.Decode(out))
	case LeftmostMinimal:
		dec := bic.NewDecoder[code.LeftmostMinimal](words)
		must2(dec.Decode(out))
	case CenteredMinimal:
		dec := bic.NewDecoder[code.CenteredMinimal](words)
		must2(dec.Decode(out))
	default:
		panic("bench: unknown codec " + codec)
	}
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}

func must2(_ int, err error) { must(err) }

// ReferenceSizes compresses seq's raw little-endian byte form with gzip, xz,
// and zstd, for comparison against the bit-packed minimal-binary codes. It
// reports compressed sizes in bytes; a zero value means that compressor
// failed.
type ReferenceSizes struct {
	Gzip, XZ, Zstd int
}

func ComputeReferenceSizes(seq []uint32) ReferenceSizes {
	raw := make([]byte, 4*len(seq))
	for i, v := range seq {
		binary.LittleEndian.PutUint32(raw[4*i:], v)
	}

	var sizes ReferenceSizes
	if n, err := compressedSize(raw, func(w io.Writer) (io.WriteCloser, error) {
		return gzip.NewWriterLevel(w, gzip.BestCompression)
	}); err == nil {
		sizes.Gzip = n
	}
	if n, err := compressedSize(raw, func(w io.Writer) (io.WriteCloser, error) {
		return xz.NewWriter(w)
	}); err == nil {
		sizes.XZ = n
	}
	if n, err := compressedSize(raw, func(w io.Writer) (io.WriteCloser, error) {
		return zstd.NewWriter(w)
	}); err == nil {
		sizes.Zstd = n
	}
	return sizes
}

func compressedSize(raw []byte, newWriter func(io.Writer) (io.WriteCloser, error)) (int, error) {
	var buf bytes.Buffer
	wc, err := newWriter(&buf)
	if err != nil {
		return 0, err
	}
	if _, err := wc.Write(raw); err != nil {
		return 0, err
	}
	if err := wc.Close(); err != nil {
		return 0, err
	}
	return buf.Len(), nil
}
