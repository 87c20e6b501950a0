// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Command check decodes an encoded file and verifies every decoded
// sequence against the corresponding sequence in the original raw input
// file. It reports every mismatching value it finds, and stops at the first
// sequence whose decoded length differs from the raw one.
//
// Usage:
//	check binary|leftmost_minimal|centered_minimal encoded_file raw_file
package main

import (
	"fmt"
	"os"

	"github.com/dsnet/bic"
	"github.com/dsnet/bic/code"
	"github.com/dsnet/bic/container"
)

func main() {
	if len(os.Args) < 4 {
		fmt.Fprintf(os.Stderr, "usage: %s binary|leftmost_minimal|centered_minimal encoded_file raw_file\n", os.Args[0])
		os.Exit(1)
	}
	codecType := os.Args[1]
	encodedFile := os.Args[2]
	rawFile := os.Args[3]

	encoded, err := container.OpenMapped(encodedFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
	defer encoded.Close()

	raw, err := container.OpenMapped(rawFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
	defer raw.Close()

	file, err := container.ParseEncodedFile(encoded.Words)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
	rawSeqs, err := container.NewRawSequences(raw.Words)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}

	fmt.Printf("checking %d sequences...\n", file.NumSequences)
	var allGood bool
	switch codecType {
	case "binary":
		allGood, err = runCheck[code.Binary](file, rawSeqs)
	case "leftmost_minimal":
		allGood, err = runCheck[code.LeftmostMinimal](file, rawSeqs)
	case "centered_minimal":
		allGood, err = runCheck[code.CenteredMinimal](file, rawSeqs)
	default:
		fmt.Fprintf(os.Stderr, "unknown type %q\n", codecType)
		os.Exit(1)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}

	fmt.Println("DONE")
	if allGood {
		fmt.Println("everything good")
	}
}

func runCheck[R code.Reader](file container.EncodedFile, rawSeqs *container.RawSequences) (bool, error) {
	dec := bic.NewDecoder[R](file.Words)
	out := make([]uint32, file.Universe+1)

	allGood := true
	for i := uint32(0); i != file.NumSequences; i++ {
		n, err := dec.Decode(out)
		if err != nil {
			return false, err
		}

		want, ok, err := rawSeqs.Next()
		if err != nil {
			return false, err
		}
		if !ok || n != len(want) {
			fmt.Printf("decoded %d integers but expected %d\n", n, len(want))
			return false, nil
		}
		for j, v := range want {
			if out[j] != v {
				fmt.Printf("mismatch in sequence %d at position %d: got %d, want %d\n", i, j, out[j], v)
				allGood = false
			}
		}

		if i != 0 && i%100000 == 0 {
			fmt.Printf("  checked %d sequences\n", i)
		}
	}
	return allGood, nil
}
