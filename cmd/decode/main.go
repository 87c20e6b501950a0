// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Command decode reads an encoded file (see package container) and reports
// decode throughput and bits-per-int, the Go analogue of the original's
// timed decode-only loop.
//
// Usage:
//	decode binary|leftmost_minimal|centered_minimal input_file
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/dsnet/bic"
	"github.com/dsnet/bic/code"
	"github.com/dsnet/bic/container"
)

func main() {
	if len(os.Args) < 3 {
		fmt.Fprintf(os.Stderr, "usage: %s binary|leftmost_minimal|centered_minimal input_file\n", os.Args[0])
		os.Exit(1)
	}
	codecType := os.Args[1]
	inputFile := os.Args[2]
	fmt.Printf("type: %q:\n", codecType)

	m, err := container.OpenMapped(inputFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
	defer m.Close()

	file, err := container.ParseEncodedFile(m.Words)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}

	fmt.Printf("decoding %d sequences...\n", file.NumSequences)
	var decodedInts int
	start := time.Now()
	switch codecType {
	case "binary":
		decodedInts, err = runDecode[code.Binary](file)
	case "leftmost_minimal":
		decodedInts, err = runDecode[code.LeftmostMinimal](file)
	case "centered_minimal":
		decodedInts, err = runDecode[code.CenteredMinimal](file)
	default:
		fmt.Fprintf(os.Stderr, "unknown type %q\n", codecType)
		os.Exit(1)
	}
	elapsed := time.Since(start)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
	fmt.Println("DONE")

	fmt.Printf("decoded %d integers in %v\n", decodedInts, elapsed)
	if decodedInts > 0 {
		fmt.Printf("%g ns/int\n", float64(elapsed.Nanoseconds())/float64(decodedInts))
		fmt.Printf("using %g bits x int\n", 32*float64(len(file.Words))/float64(decodedInts))
	}
}

func runDecode[R code.Reader](file container.EncodedFile) (int, error) {
	dec := bic.NewDecoder[R](file.Words)
	out := make([]uint32, file.Universe+1)

	var decodedInts int
	for i := uint32(0); i < file.NumSequences; i++ {
		n, err := dec.Decode(out)
		if err != nil {
			return decodedInts, err
		}
		decodedInts += n
	}
	return decodedInts, nil
}
