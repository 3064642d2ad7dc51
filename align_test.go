package quicked

import (
	"strings"
	"testing"
)

func alignWith(t *testing.T, pattern, text string, windowSize, overlapSize uint) (string, int) {
	t.Helper()
	params := DefaultParams()
	params.WindowSize = windowSize
	params.OverlapSize = overlapSize

	a := NewAligner(params)
	status := a.Align([]byte(pattern), []byte(text))
	if status != StatusOK {
		t.Fatalf("Align(%q,%q) status = %v, err = %v", pattern, text, status, a.Err())
	}
	return a.Cigar, a.Score
}

// TestScenarios pins spec.md §8's concrete scenarios S1–S5; S6 has its own
// test below.
func TestScenarios(t *testing.T) {
	cases := []struct {
		name                    string
		pattern, text           string
		windowSize, overlapSize uint
		wantCigar               string
		wantScore               int
	}{
		{"S1", "ACGT", "ACGT", 1, 0, "MMMM", 0},
		{"S2", "ACGT", "ACCT", 1, 0, "MMXM", 1},
		{"S3", "ACGT", "ACG", 1, 0, "MMMD", 1},
		{"S4", "ACG", "ACGT", 1, 0, "MMMI", 1},
		{"S5", "AAAA", "TTTT", 1, 0, "XXXX", 4},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			cigar, score := alignWith(t, c.pattern, c.text, c.windowSize, c.overlapSize)
			if cigar != c.wantCigar {
				t.Errorf("cigar = %q, want %q", cigar, c.wantCigar)
			}
			if score != c.wantScore {
				t.Errorf("score = %d, want %d", score, c.wantScore)
			}
		})
	}
}

// TestScenarioS6MultiWindow exercises the multi-window path (m=81 spans two
// 64-bit blocks) together with a non-zero overlap.
func TestScenarioS6MultiWindow(t *testing.T) {
	pattern := strings.Repeat("A", 80) + "C"
	text := strings.Repeat("A", 80) + "C"

	cigar, score := alignWith(t, pattern, text, 2, 1)
	want := strings.Repeat("M", 81)
	if cigar != want {
		t.Errorf("cigar = %q, want 81 M's", cigar)
	}
	if score != 0 {
		t.Errorf("score = %d, want 0", score)
	}
}

// TestIdentity is spec.md §8 property 1: aligning any alphabet-only pattern
// against itself yields all matches and a score of 0.
func TestIdentity(t *testing.T) {
	patterns := []string{"A", "ACGT", "ACGTACGTACGT", strings.Repeat("ACGT", 40)}
	for _, p := range patterns {
		cigar, score := alignWith(t, p, p, 4, 1)
		if score != 0 {
			t.Errorf("identity(%d): score = %d, want 0", len(p), score)
		}
		if cigar != strings.Repeat("M", len(p)) {
			t.Errorf("identity(%d): cigar has non-M ops", len(p))
		}
	}
}

// TestCigarLengthLaw is spec.md §8 property 3: #M+#X+#D == m and
// #M+#X+#I == n for every CIGAR produced.
func TestCigarLengthLaw(t *testing.T) {
	cases := []struct{ pattern, text string }{
		{"ACGT", "ACGT"},
		{"ACGT", "ACCT"},
		{"ACGT", "ACG"},
		{"ACG", "ACGT"},
		{"AAAA", "TTTT"},
		{"GATTACAGATTACA", "GATTACCAGATACA"},
		{strings.Repeat("ACGT", 30), strings.Repeat("ACGA", 30)},
	}
	for _, c := range cases {
		cigar, _ := alignWith(t, c.pattern, c.text, 3, 1)
		m := strings.Count(cigar, "M") + strings.Count(cigar, "X") + strings.Count(cigar, "D")
		n := strings.Count(cigar, "M") + strings.Count(cigar, "X") + strings.Count(cigar, "I")
		if m != len(c.pattern) {
			t.Errorf("%q vs %q: #M+#X+#D = %d, want %d", c.pattern, c.text, m, len(c.pattern))
		}
		if n != len(c.text) {
			t.Errorf("%q vs %q: #M+#X+#I = %d, want %d", c.pattern, c.text, n, len(c.text))
		}
	}
}

// TestDeterminism is spec.md §8 property 6.
func TestDeterminism(t *testing.T) {
	pattern, text := "GATTACAGATTACAGATTACA", "GATTACCAGATACAGATTTCA"
	first, firstScore := alignWith(t, pattern, text, 3, 1)
	for i := 0; i < 5; i++ {
		cigar, score := alignWith(t, pattern, text, 3, 1)
		if cigar != first || score != firstScore {
			t.Fatalf("run %d diverged: %q/%d vs %q/%d", i, cigar, score, first, firstScore)
		}
	}
}

// TestEmptyInversion is spec.md §8 property 2: when one sequence is
// exhausted, the driver's tail flush covers the rest with pure I or D ops.
// We exercise this through the public facade by aligning a short pattern
// whose windowed sweep runs out of text (or vice versa) well before the
// cursor reaches the origin.
func TestEmptyInversion(t *testing.T) {
	cigar, score := alignWith(t, "AAAA", "AA", 1, 0)
	if strings.Count(cigar, "D") < 2 {
		t.Errorf("cigar = %q, want at least 2 D ops covering the unmatched pattern tail", cigar)
	}
	if score != len(cigar)-strings.Count(cigar, "M") {
		t.Errorf("score = %d inconsistent with cigar %q", score, cigar)
	}
}

// TestWindowAnchoringProgress is spec.md §8 property 5: one compute+backtrace
// pass over a window always strictly decreases pos_v+pos_h.
func TestWindowAnchoringProgress(t *testing.T) {
	cp, err := Compile([]byte("ACGTACGTACGT"))
	if err != nil {
		t.Fatal(err)
	}
	text := []byte("ACGTACGTACGT")
	wm := newWindowMatrix(cp.Len(), len(text), 1)

	for wm.posV >= 0 && wm.posH >= 0 {
		before := wm.posV + wm.posH
		computeWindow(wm, cp, text, wordSize)
		backtraceWindow(wm, cp, text, 0)
		after := wm.posV + wm.posH
		if after >= before {
			t.Fatalf("no progress: before=%d after=%d", before, after)
		}
	}
}

func TestAlignRejectsInvalidParams(t *testing.T) {
	cases := []Params{
		{Algo: AlgoWindowed, WindowSize: 0, OverlapSize: 0},
		{Algo: AlgoWindowed, WindowSize: 2, OverlapSize: 2},
		{Algo: AlgoWindowed, WindowSize: 2, OverlapSize: 3},
	}
	for _, p := range cases {
		a := NewAligner(p)
		if status := a.Align([]byte("ACGT"), []byte("ACGT")); status != StatusError {
			t.Errorf("params %+v: status = %v, want StatusError", p, status)
		}
	}
}

func TestAlignRejectsEmptySequences(t *testing.T) {
	a := NewAligner(DefaultParams())
	if status := a.Align(nil, []byte("ACGT")); status != StatusError {
		t.Errorf("empty pattern: status = %v, want StatusError", status)
	}
	if status := a.Align([]byte("ACGT"), nil); status != StatusError {
		t.Errorf("empty text: status = %v, want StatusError", status)
	}
}

func TestUnimplementedAlgosReportStatus(t *testing.T) {
	cases := []struct {
		algo Algo
		want Status
	}{
		{AlgoQuicked, StatusUnimplemented},
		{AlgoBanded, StatusUnimplemented},
		{AlgoHirschberg, StatusUnimplemented},
	}
	for _, c := range cases {
		p := DefaultParams()
		p.Algo = c.algo
		a := NewAligner(p)
		if status := a.Align([]byte("ACGT"), []byte("ACGT")); status != c.want {
			t.Errorf("algo %v: status = %v, want %v", c.algo, status, c.want)
		}
	}
}

func TestOnlyScoreSuppressesCigar(t *testing.T) {
	p := DefaultParams()
	p.OnlyScore = true
	a := NewAligner(p)
	if status := a.Align([]byte("ACGT"), []byte("ACCT")); status != StatusOK {
		t.Fatalf("status = %v", status)
	}
	if a.Cigar != "" {
		t.Errorf("Cigar = %q, want empty when OnlyScore is set", a.Cigar)
	}
	if a.Score != 1 {
		t.Errorf("Score = %d, want 1", a.Score)
	}
}
