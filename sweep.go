package quicked

// anchorWindow derives the window's top-left corner and the number of real
// rows/columns it covers from the current cursor (posV, posH), per the
// windowed algorithm's anchoring rule: the window is always windowSize
// blocks tall and windowSize*wordSize text columns wide, right-aligned on
// the cursor and word-aligned on its text edge.
func anchorWindow(posV, posH, windowSize int) (blockV, colH, stepsV, stepsH int) {
	posVFi := posV / wordSize
	posHFi := posH

	blockV = max(0, posVFi-(windowSize-1))
	colH = max(0, (posHFi/wordSize)*wordSize-(windowSize-1)*wordSize)

	stepsV = posVFi - blockV
	stepsH = posHFi - colH
	return
}

// computeWindow fills the window's Pv/Mv planes by sweeping one text
// character at a time, left to right, threading the horizontal carry through
// the window's rows top to bottom for each character. maxDistance is
// accepted for parity with the reference implementation's signature but is
// not used to prune; it only ever reaches resetSearchCutoff as
// windowSize*wordSize.
func computeWindow(wm *WindowMatrix, cp *CompiledPattern, text []byte, maxDistance int) {
	wm.resetSearchCutoff(maxDistance)

	blockV, colH, stepsV, stepsH := anchorWindow(wm.posV, wm.posH, wm.windowSize)

	for t := 0; t <= stepsH; t++ {
		c := encode(text[colH+t])
		phIn, mhIn := uint64(1), uint64(0)

		for i := 0; i <= stepsV; i++ {
			pvIn := wm.pv[t][i]
			mvIn := wm.mv[t][i]
			eq := cp.peq[blockV+i][c]

			pvOut, mvOut, phOut, mhOut := advanceBlock(eq, pvIn, mvIn, phIn, mhIn)

			wm.pv[t+1][i] = pvOut
			wm.mv[t+1][i] = mvOut
			phIn, mhIn = phOut, mhOut
		}
	}
}
