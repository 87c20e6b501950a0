// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Command bench compares the three minimal-binary codes against each other
// and against general-purpose byte-oriented compressors, on generated
// posting lists.
//
// Example usage:
//	$ bench -n 1000000 -universe 100000000 -codecs binary,centered_minimal
package main

import (
	"flag"
	"fmt"
	"strings"
	"sync"

	"github.com/klauspost/cpuid"

	"github.com/dsnet/bic/internal/testutil"
	"github.com/dsnet/bic/internal/tool/bench"
)

type trialReport struct {
	n, universe int
	lines       []string
}

func main() {
	n := flag.Int("n", 1e5, "number of values per generated sequence")
	universe := flag.Int("universe", 1e7, "maximum value in a generated sequence")
	trials := flag.Int("trials", 5, "number of distinct sequences to average over")
	codecsFlag := flag.String("codecs", strings.Join(bench.Codecs, ","), "comma-separated list of codecs to benchmark")
	flag.Parse()

	codecs := strings.Split(*codecsFlag, ",")

	fmt.Printf("CPU: %s (%d logical cores)\n\n", cpuid.CPU.BrandName, cpuid.CPU.LogicalCores)

	// Sequences are drawn up front from one deterministic generator so that
	// a run is reproducible regardless of how the trials below are
	// scheduled across goroutines.
	r := testutil.NewRand(1)
	seqs := make([][]uint32, *trials)
	for t := range seqs {
		seqs[t] = testutil.RandomSequence(r, *n, *universe)
	}

	// Each trial benchmarks a disjoint sequence, so trials run concurrently
	// — the one place this module's driver tools use goroutines, matching
	// the library's allowance for independent encoder/decoder instances
	// running in parallel over disjoint inputs.
	reports := make([]trialReport, *trials)
	var wg sync.WaitGroup
	for t := range seqs {
		wg.Add(1)
		go func(t int) {
			defer wg.Done()
			reports[t] = runTrial(t, *n, *universe, codecs, seqs[t])
		}(t)
	}
	wg.Wait()

	for _, rep := range reports {
		fmt.Printf("TRIAL: n=%d universe=%d\n", rep.n, rep.universe)
		for _, line := range rep.lines {
			fmt.Println(line)
		}
		fmt.Println()
	}
}

func runTrial(t, n, universe int, codecs []string, seq []uint32) trialReport {
	var lines []string
	for _, codec := range codecs {
		words, encResult := bench.EncodeSequence(codec, seq)
		decResult := bench.DecodeSequence(codec, words, n)
		lines = append(lines, fmt.Sprintf("\t%-17s  enc %8.2f M/s  dec %8.2f M/s  %6.3f bits/int",
			codec, encResult.IntsPerSec, decResult.IntsPerSec, encResult.BitsPerInt))
	}

	ref := bench.ComputeReferenceSizes(seq)
	lines = append(lines, fmt.Sprintf("\t%-17s  %6.3f bits/int", "raw (uint32)", 32.0))
	if ref.Gzip > 0 {
		lines = append(lines, fmt.Sprintf("\t%-17s  %6.3f bits/int", "gzip", 8*float64(ref.Gzip)/float64(len(seq))))
	}
	if ref.XZ > 0 {
		lines = append(lines, fmt.Sprintf("\t%-17s  %6.3f bits/int", "xz", 8*float64(ref.XZ)/float64(len(seq))))
	}
	if ref.Zstd > 0 {
		lines = append(lines, fmt.Sprintf("\t%-17s  %6.3f bits/int", "zstd", 8*float64(ref.Zstd)/float64(len(seq))))
	}

	return trialReport{n: n, universe: universe, lines: lines}
}
