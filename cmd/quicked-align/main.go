// Command quicked-align aligns one or more sequences from a query FASTA file
// against a single target sequence using the windowed bit-parallel aligner.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/golang/glog"

	"github.com/ndaniels/quicked"
	"github.com/ndaniels/quicked/internal/dnaseq"
)

var (
	flagWindowSize  = 10
	flagOverlapSize = 2
	flagOnlyScore   = false
	flagEditScript  = false
	flagConfig      = ""
)

func init() {
	flag.IntVar(&flagWindowSize, "window-size", flagWindowSize,
		"The height/width of the sliding alignment window, in 64-bit blocks.")
	flag.IntVar(&flagOverlapSize, "overlap-size", flagOverlapSize,
		"The number of trailing blocks re-derived between windows.")
	flag.BoolVar(&flagOnlyScore, "only-score", flagOnlyScore,
		"When set, the edit distance is reported without a CIGAR or edit script.")
	flag.BoolVar(&flagEditScript, "edit-script", flagEditScript,
		"When set, print the compact edit-script notation alongside the CIGAR.")
	flag.StringVar(&flagConfig, "config", flagConfig,
		"A colon-delimited Params config file. Command-line flags above\n"+
			"\tstill override what it sets.")

	flag.Usage = usage
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: %s [flags] query.fasta target.fasta\n", os.Args[0])
	flag.PrintDefaults()
	os.Exit(1)
}

func main() {
	flag.Parse()
	if flag.NArg() != 2 {
		usage()
	}

	params := quicked.DefaultParams()
	if flagConfig != "" {
		f, err := os.Open(flagConfig)
		if err != nil {
			fatalf("%s\n", err)
		}
		params, err = quicked.LoadParams(f)
		f.Close()
		if err != nil {
			fatalf("reading %s: %s\n", flagConfig, err)
		}
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "window-size":
			params.WindowSize = uint(flagWindowSize)
		case "overlap-size":
			params.OverlapSize = uint(flagOverlapSize)
		case "only-score":
			params.OnlyScore = flagOnlyScore
		}
	})

	if err := runAlign(flag.Arg(0), flag.Arg(1), params, flagEditScript, os.Stdout); err != nil {
		fatalf("%s\n", err)
	}
}

// runAlign reads the query and target FASTA files, aligns every query
// sequence against the target's first record, and writes one result line
// per successfully aligned query to out (a query whose alignment fails is
// reported on stderr instead). It is split out of main so the argument-parsing /
// reporting round trip can be exercised directly by a test without shelling
// out to a built binary.
func runAlign(queryPath, targetPath string, params quicked.Params, editScript bool, out io.Writer) error {
	queries, err := dnaseq.ReadAll(queryPath)
	if err != nil {
		return fmt.Errorf("reading %s: %s", queryPath, err)
	}
	targets, err := dnaseq.ReadAll(targetPath)
	if err != nil {
		return fmt.Errorf("reading %s: %s", targetPath, err)
	}
	if len(targets) == 0 {
		return fmt.Errorf("%s contains no sequences", targetPath)
	}
	target := targets[0]
	if len(targets) > 1 {
		glog.Infof("%s has %d sequences; aligning against the first (%s) only\n",
			targetPath, len(targets), target.Name)
	}

	aligner := quicked.NewAligner(params)
	for _, query := range queries {
		status := aligner.Align(query.Residues, target.Residues)
		if status != quicked.StatusOK {
			errorf("%s: %s (status %s)\n", query.Name, aligner.Err(), status)
			continue
		}

		fmt.Fprintf(out, "%s\tscore=%d", query.Name, aligner.Score)
		if !params.OnlyScore {
			fmt.Fprintf(out, "\tcigar=%s", aligner.Cigar)
			if editScript {
				es := quicked.NewEditScript([]byte(aligner.Cigar), query.Residues, target.Residues)
				fmt.Fprintf(out, "\tedits=%s", es.String())
			}
		}
		fmt.Fprintln(out)
	}
	return nil
}

func errorf(format string, v ...interface{}) {
	fmt.Fprintf(os.Stderr, format, v...)
}

func fatalf(format string, v ...interface{}) {
	errorf(format, v...)
	os.Exit(1)
}
