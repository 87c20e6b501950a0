// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Command encode reads a raw input file (see package container) and writes
// its encoded form using one of the three minimal-binary codes.
//
// Usage:
//	encode binary|leftmost_minimal|centered_minimal input_file [-o output_file]
package main

import (
	"encoding/binary"
	"fmt"
	"os"

	"github.com/dsnet/bic"
	"github.com/dsnet/bic/code"
	"github.com/dsnet/bic/container"
)

func main() {
	if len(os.Args) < 3 {
		fmt.Fprintf(os.Stderr, "usage: %s binary|leftmost_minimal|centered_minimal input_file [-o output_file]\n", os.Args[0])
		os.Exit(1)
	}
	codecType := os.Args[1]
	inputFile := os.Args[2]
	outputFile := ""
	if len(os.Args) > 4 && os.Args[3] == "-o" {
		outputFile = os.Args[4]
	}

	m, err := container.OpenMapped(inputFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
	defer m.Close()

	var words []uint32
	var numSequences, numInts int
	var universe uint32

	fmt.Println("encoding data...")
	switch codecType {
	case "binary":
		words, numSequences, numInts, universe, err = runEncode[code.Binary](m.Words)
	case "leftmost_minimal":
		words, numSequences, numInts, universe, err = runEncode[code.LeftmostMinimal](m.Words)
	case "centered_minimal":
		words, numSequences, numInts, universe, err = runEncode[code.CenteredMinimal](m.Words)
	default:
		fmt.Fprintf(os.Stderr, "unknown type %q\n", codecType)
		os.Exit(1)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
	fmt.Println("DONE")

	fmt.Printf("encoded %d sequences\n", numSequences)
	fmt.Printf("encoded %d integers\n", numInts)
	if numInts > 0 {
		fmt.Printf("using %g bits x int\n", 32*float64(len(words))/float64(numInts))
	}

	if outputFile == "" {
		return
	}
	fmt.Println("writing encoded data to disk...")
	var hdr container.EncodedWriter
	hdr.Universe = universe
	hdr.NumSequences = uint32(numSequences)
	out := hdr.Words(words)
	if err := writeWords(outputFile, out); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
	fmt.Println("DONE")
}

func runEncode[W code.Writer](words []uint32) (out []uint32, numSequences, numInts int, universe uint32, err error) {
	raw, err := container.NewRawSequences(words)
	if err != nil {
		return nil, 0, 0, 0, err
	}

	enc := bic.NewEncoder[W]()
	enc.Reserve(10 << 30) // Matches the original's 10 GiB reservation.

	for {
		seq, ok, err := raw.Next()
		if err != nil {
			return nil, 0, 0, 0, err
		}
		if !ok {
			break
		}
		if err := enc.Encode(seq); err != nil {
			return nil, 0, 0, 0, err
		}
		numSequences++
		numInts += len(seq)
		if len(seq) > 0 && seq[len(seq)-1] > universe {
			universe = seq[len(seq)-1]
		}
		if numSequences%100000 == 0 {
			fmt.Printf("  encoded %d sequences\n", numSequences)
		}
	}
	return enc.Words(), numSequences, numInts, universe, nil
}

func writeWords(path string, words []uint32) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	buf := make([]byte, 4*len(words))
	for i, w := range words {
		binary.LittleEndian.PutUint32(buf[4*i:], w)
	}
	_, err = f.Write(buf)
	return err
}
