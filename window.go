package quicked

// WindowMatrix owns the scratch Pv/Mv bit-planes and the output CIGAR buffer
// for one alignment run. Unlike CompiledPattern, a WindowMatrix is mutable
// and is exclusively owned by a single Align call; it is not safe to share
// across goroutines.
//
// Pv and Mv are stored column-major: pv[col][row] holds the row-th block of
// the column-th text position swept so far within the current window. Column
// 0 is always the window's reset column (see resetSearchCutoff); columns
// 1..windowSize*wordSize are overwritten by computeWindow on every call.
type WindowMatrix struct {
	pv, mv [][]uint64

	windowSize int

	posV, posH int

	cigar       []byte
	beginOffset int
	endOffset   int
}

// newWindowMatrix allocates a window matrix sized for a pattern of length m,
// a text of length n, and a window of windowSize blocks. The cursor starts at
// the bottom-right corner of the full DP matrix, (m-1, n-1).
func newWindowMatrix(m, n, windowSize int) *WindowMatrix {
	cols := windowSize*wordSize + 1
	pv := make([][]uint64, cols)
	mv := make([][]uint64, cols)
	for c := range pv {
		pv[c] = make([]uint64, windowSize)
		mv[c] = make([]uint64, windowSize)
	}

	wm := &WindowMatrix{
		pv:         pv,
		mv:         mv,
		windowSize: windowSize,
		posV:       m - 1,
		posH:       n - 1,
		cigar:      make([]byte, m+n),
		endOffset:  m + n,
	}
	wm.beginOffset = wm.endOffset - 1
	return wm
}

// resetSearchCutoff seeds column 0 of the window: rows below y are set to the
// "free" state (Pv all ones, Mv zero), where y = ceil(maxDistance/wordSize).
// In this core maxDistance is always windowSize*wordSize, so y == windowSize
// and the whole column is reset.
func (wm *WindowMatrix) resetSearchCutoff(maxDistance int) {
	y := 1
	if maxDistance > 0 {
		y = (maxDistance + wordSize - 1) / wordSize
	}
	for row := 0; row < y; row++ {
		wm.pv[0][row] = allOnes
		wm.mv[0][row] = 0
	}
}

// emit writes one CIGAR operation at the current write cursor and advances it
// leftward, growing the alignment from the right edge toward the left.
func (wm *WindowMatrix) emit(op byte) {
	wm.cigar[wm.beginOffset] = op
	wm.beginOffset--
}

// operations returns the CIGAR bytes written so far, left to right.
func (wm *WindowMatrix) operations() []byte {
	return wm.cigar[wm.beginOffset+1 : wm.endOffset]
}
