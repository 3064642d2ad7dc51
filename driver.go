package quicked

// compute repeatedly sweeps and backtraces windows, walking the cursor from
// the bottom-right corner of the DP matrix toward either edge, then flushes
// whatever prefix of pattern or text remains once one of the two is
// exhausted. Every iteration strictly decreases posV+posH (computeWindow
// always covers at least one row/column, and backtraceWindow is guaranteed —
// via its degenerate-window fallback — to consume at least one cell), so the
// loop always terminates.
func compute(wm *WindowMatrix, cp *CompiledPattern, text []byte, windowSize, overlapSize int) {
	maxDistance := windowSize * wordSize

	for wm.posV >= 0 && wm.posH >= 0 {
		computeWindow(wm, cp, text, maxDistance)
		backtraceWindow(wm, cp, text, overlapSize)
	}

	for wm.posH >= 0 {
		wm.emit('I')
		wm.posH--
	}
	for wm.posV >= 0 {
		wm.emit('D')
		wm.posV--
	}
}
