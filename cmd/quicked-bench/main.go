// Command quicked-bench repeatedly aligns sequence pairs from a FASTA file
// with the windowed aligner and reports throughput. With -crosscheck it also
// re-aligns every pair with biogo's exact Needleman-Wunsch aligner and
// reports how far the windowed heuristic's score drifts from the optimum.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"sync/atomic"
	"time"

	"github.com/kortschak/biogo/align/nw"
	"github.com/kortschak/biogo/seq"
	"github.com/kortschak/biogo/util"

	"github.com/ndaniels/quicked"
	"github.com/ndaniels/quicked/internal/dnaseq"
)

var (
	flagWindowSize  = 10
	flagOverlapSize = 2
	flagIterations  = 1
	flagCrossCheck  = false
	flagQuiet       = false
)

func init() {
	log.SetFlags(0)

	flag.IntVar(&flagWindowSize, "window-size", flagWindowSize,
		"The height/width of the sliding alignment window, in 64-bit blocks.")
	flag.IntVar(&flagOverlapSize, "overlap-size", flagOverlapSize,
		"The number of trailing blocks re-derived between windows.")
	flag.IntVar(&flagIterations, "n", flagIterations,
		"The number of times to repeat the whole benchmark pass.")
	flag.BoolVar(&flagCrossCheck, "crosscheck", flagCrossCheck,
		"When set, also score every pair with an exact Needleman-Wunsch\n"+
			"\taligner and report the windowed heuristic's drift from optimal.")
	flag.BoolVar(&flagQuiet, "quiet", flagQuiet,
		"When set, only the final summary is printed.")

	flag.Usage = usage
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: %s [flags] pairs.fasta\n", os.Args[0])
	fmt.Fprintf(os.Stderr,
		"\tpairs.fasta must contain an even number of records; consecutive\n"+
			"\trecords (2k, 2k+1) are aligned as a pattern/text pair.\n")
	flag.PrintDefaults()
	os.Exit(1)
}

// dnaAlphabet and dnaMatrix give biogo's nw.Aligner a +1/-1 match/mismatch
// scoring scheme over the 4-letter DNA alphabet, in the same shape as the
// teacher's blosum.Alphabet62/blosum.Matrix62: one row/column per symbol plus
// a trailing gap row/column.
const dnaAlphabet = "ACGT"

var dnaMatrix = buildDNAMatrix()

func buildDNAMatrix() [][]int {
	n := len(dnaAlphabet) + 1
	gap := n - 1
	m := make([][]int, n)
	for i := range m {
		m[i] = make([]int, n)
	}
	for i := 0; i < len(dnaAlphabet); i++ {
		for j := 0; j < len(dnaAlphabet); j++ {
			if i == j {
				m[i][j] = 1
			} else {
				m[i][j] = -1
			}
		}
		m[i][gap] = -2
		m[gap][i] = -2
	}
	return m
}

var dnaLookUp util.CTL

func init() {
	m := make(map[int]int)
	for i, c := range dnaAlphabet {
		m[int(c)] = i
	}
	dnaLookUp = *util.NewCTL(m)
}

// crossCheck runs exact Needleman-Wunsch on pattern/text and returns the
// number of columns in the optimal alignment that are not a plain identity
// match, a same-unit score as quicked.Aligner.Score. Adapted from the
// teacher's compress/align.go alignGapped.
func crossCheck(pattern, text []byte) int {
	aligner := &nw.Aligner{
		Matrix:  dnaMatrix,
		LookUp:  dnaLookUp,
		GapChar: '-',
	}
	alignment, err := aligner.Align(&seq.Seq{Seq: pattern}, &seq.Seq{Seq: text})
	if err != nil {
		log.Panic(err)
	}
	mismatches := 0
	for i := range alignment[0].Seq {
		if alignment[0].Seq[i] != alignment[1].Seq[i] {
			mismatches++
		}
	}
	return mismatches
}

// ProgressBar reports progress on stderr as a benchmark run sweeps over
// pairs, adapted from the teacher's progress_bar.go to use Fprint directly
// instead of the package-level Vprint helpers (this binary has no separate
// verbosity flag; -quiet suppresses it outright).
type ProgressBar struct {
	Label   string
	Total   uint64
	Current uint64
}

func (bar *ProgressBar) Increment() {
	atomic.AddUint64(&bar.Current, 1)
}

func (bar *ProgressBar) ClearAndDisplay() {
	if flagQuiet {
		return
	}
	fmt.Fprint(os.Stderr, "\r")
	barWidth := uint64(60)
	ticks := (barWidth * bar.Current) / bar.Total
	fmt.Fprintf(os.Stderr, "%s [", bar.Label)
	for i := uint64(0); i < ticks; i++ {
		fmt.Fprint(os.Stderr, "=")
	}
	for i := uint64(0); i < barWidth-ticks; i++ {
		fmt.Fprint(os.Stderr, " ")
	}
	fmt.Fprintf(os.Stderr, "] %d / %d", bar.Current, bar.Total)
}

func main() {
	flag.Parse()
	if flag.NArg() != 1 {
		usage()
	}

	records, err := dnaseq.ReadAll(flag.Arg(0))
	if err != nil {
		log.Fatalf("reading %s: %s", flag.Arg(0), err)
	}
	if len(records)%2 != 0 {
		log.Fatalf("%s has an odd number of records (%d); need pairs", flag.Arg(0), len(records))
	}
	pairs := len(records) / 2

	params := quicked.DefaultParams()
	params.WindowSize = uint(flagWindowSize)
	params.OverlapSize = uint(flagOverlapSize)
	aligner := quicked.NewAligner(params)

	bar := &ProgressBar{Label: "aligning", Total: uint64(pairs * flagIterations)}

	var totalScore, totalDrift int64
	start := time.Now()
	for iter := 0; iter < flagIterations; iter++ {
		for p := 0; p < pairs; p++ {
			pattern := records[2*p].Residues
			text := records[2*p+1].Residues

			status := aligner.Align(pattern, text)
			if status != quicked.StatusOK {
				log.Fatalf("pair %d: %s", p, aligner.Err())
			}
			totalScore += int64(aligner.Score)

			if flagCrossCheck {
				optimal := crossCheck(pattern, text)
				totalDrift += int64(aligner.Score - optimal)
			}

			bar.Increment()
			bar.ClearAndDisplay()
		}
	}
	if !flagQuiet {
		fmt.Fprintln(os.Stderr)
	}
	elapsed := time.Since(start)

	fmt.Printf("pairs=%d iterations=%d elapsed=%s pairs/sec=%.1f avg_score=%.2f\n",
		pairs, flagIterations, elapsed, float64(pairs*flagIterations)/elapsed.Seconds(),
		float64(totalScore)/float64(pairs*flagIterations))
	if flagCrossCheck {
		fmt.Printf("avg_drift_from_optimal=%.3f\n", float64(totalDrift)/float64(pairs*flagIterations))
	}
}
