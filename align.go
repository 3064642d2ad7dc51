package quicked

import "bytes"

// Algo selects which alignment algorithm an Aligner runs. Only AlgoWindowed
// is implemented by this module; the others are the dispatcher's other
// collaborators and are deliberately out of scope here (spec.md §1) — Align
// reports StatusUnimplemented for them rather than guessing at a behavior.
type Algo int

const (
	AlgoQuicked Algo = iota
	AlgoWindowed
	AlgoBanded
	AlgoHirschberg
)

func (a Algo) String() string {
	switch a {
	case AlgoQuicked:
		return "quicked"
	case AlgoWindowed:
		return "windowed"
	case AlgoBanded:
		return "banded"
	case AlgoHirschberg:
		return "hirschberg"
	default:
		return "unknown"
	}
}

// Params configures an Aligner. The zero value is not valid; build one with
// DefaultParams and override the fields that matter, in the style of the
// teacher's DefaultDBConf package-level default.
type Params struct {
	Algo Algo

	Bandwidth uint

	// WindowSize is K, the window height/width in 64-bit blocks.
	WindowSize uint
	// OverlapSize is O, the number of trailing blocks of a window whose
	// traceback is discarded so the next window re-derives them. Must
	// satisfy 0 <= OverlapSize < WindowSize.
	OverlapSize uint

	HewThreshold  [2]int
	HewPercentage [2]int

	OnlyScore     bool
	ForceScalar   bool
	ExternalTimer bool
}

// DefaultParams returns the windowed aligner's default configuration: a
// ten-block window with two blocks of overlap, matching the teacher's
// GappedWindowSize default of an order-ten lookback window.
func DefaultParams() Params {
	return Params{
		Algo:        AlgoWindowed,
		WindowSize:  10,
		OverlapSize: 2,
	}
}

// Status is the outcome of an Align call.
type Status int

const (
	StatusOK Status = iota
	StatusError
	StatusUnknownAlgo
	StatusUnimplemented
	StatusWIP
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "OK"
	case StatusError:
		return "ERROR"
	case StatusUnknownAlgo:
		return "UNKNOWN_ALGO"
	case StatusUnimplemented:
		return "UNIMPLEMENTED"
	case StatusWIP:
		return "WIP"
	default:
		return "UNKNOWN"
	}
}

// Aligner is the public façade over the windowed core. Construct one with
// NewAligner, then call Align for each pattern/text pair; Score and Cigar
// hold the result of the most recent successful Align call.
type Aligner struct {
	Params Params

	Score int
	Cigar string

	lastErr error
}

// NewAligner builds an Aligner with the given parameters. It does not
// validate params itself — Align validates its own inputs together with the
// params that matter for that call, so a caller who only ever calls Align
// never needs a separate construction-time error check.
func NewAligner(params Params) *Aligner {
	return &Aligner{Params: params}
}

// Err returns the error from the most recent Align call, or nil if it
// succeeded.
func (a *Aligner) Err() error {
	return a.lastErr
}

// Align computes an edit script between pattern and text and stores the
// result in a.Score and a.Cigar. It returns a Status mirroring the external
// aligner facade's contract: OK on success, and no partial Score/Cigar are
// published on failure (the previous successful result, if any, stays put).
func (a *Aligner) Align(pattern, text []byte) Status {
	a.lastErr = nil

	if a.Params.Algo != AlgoWindowed {
		a.lastErr = &AlignError{Kind: ErrUnsupportedAlgo, Msg: "algo " + a.Params.Algo.String() + " is not implemented by this module"}
		return statusForUnimplementedAlgo(a.Params.Algo)
	}

	m, n := len(pattern), len(text)
	if m <= 0 || n <= 0 {
		a.lastErr = &AlignError{Kind: ErrInvalidArgument, Msg: "pattern and text must both be non-empty"}
		return StatusError
	}
	windowSize := int(a.Params.WindowSize)
	overlapSize := int(a.Params.OverlapSize)
	if windowSize < 1 {
		a.lastErr = &AlignError{Kind: ErrInvalidArgument, Msg: "window_size must be >= 1"}
		return StatusError
	}
	if overlapSize < 0 || overlapSize >= windowSize {
		a.lastErr = &AlignError{Kind: ErrInvalidArgument, Msg: "overlap_size must satisfy 0 <= overlap_size < window_size"}
		return StatusError
	}

	cp, err := Compile(pattern)
	if err != nil {
		a.lastErr = err
		return StatusError
	}

	wm := newWindowMatrix(m, n, windowSize)
	compute(wm, cp, text, windowSize, overlapSize)

	cigar := wm.operations()
	a.Score = scoreOf(cigar)
	if a.Params.OnlyScore {
		a.Cigar = ""
	} else {
		a.Cigar = string(cigar)
	}
	return StatusOK
}

func statusForUnimplementedAlgo(algo Algo) Status {
	switch algo {
	case AlgoQuicked, AlgoBanded, AlgoHirschberg:
		return StatusUnimplemented
	default:
		return StatusUnknownAlgo
	}
}

// scoreOf derives the edit distance from a CIGAR buffer by counting every
// operation that isn't a match.
func scoreOf(cigar []byte) int {
	return len(cigar) - bytes.Count(cigar, []byte{'M'})
}
