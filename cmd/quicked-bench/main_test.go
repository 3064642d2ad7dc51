package main

import "testing"

func TestBuildDNAMatrixIsSymmetricWithGapColumn(t *testing.T) {
	m := buildDNAMatrix()
	gap := len(dnaAlphabet)
	if len(m) != len(dnaAlphabet)+1 {
		t.Fatalf("len(m) = %d, want %d", len(m), len(dnaAlphabet)+1)
	}
	for i := 0; i < len(dnaAlphabet); i++ {
		for j := 0; j < len(dnaAlphabet); j++ {
			want := -1
			if i == j {
				want = 1
			}
			if m[i][j] != want {
				t.Errorf("m[%d][%d] = %d, want %d", i, j, m[i][j], want)
			}
		}
		if m[i][gap] != -2 || m[gap][i] != -2 {
			t.Errorf("gap score for symbol %d = %d/%d, want -2/-2", i, m[i][gap], m[gap][i])
		}
	}
}

func TestCrossCheckIdenticalSequences(t *testing.T) {
	if got := crossCheck([]byte("ACGTACGT"), []byte("ACGTACGT")); got != 0 {
		t.Errorf("crossCheck(identical) = %d, want 0", got)
	}
}

func TestCrossCheckSingleMismatch(t *testing.T) {
	if got := crossCheck([]byte("ACGT"), []byte("ACCT")); got != 1 {
		t.Errorf("crossCheck(one mismatch) = %d, want 1", got)
	}
}
