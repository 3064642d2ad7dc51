package quicked

// windowEdge computes floor((pos-lookback)/wordSize)*wordSize, clamped to 0,
// matching the reference implementation's guarded-division idiom: the
// subtraction only happens when it stays positive, otherwise the edge is the
// origin.
func windowEdge(pos, lookback, w int) int {
	if pos-lookback > 0 {
		return ((pos - lookback) / w) * w
	}
	return 0
}

// tracebackStep applies one cell of the priority rule described in the core
// design (D preferred, then I, then a typed diagonal step) and returns the
// updated cursor. col and block address the just-swept Pv/Mv planes; bit
// isolates cursor v's row within its block.
func tracebackStep(wm *WindowMatrix, cp *CompiledPattern, text []byte, v, h, col, block int) (int, int) {
	bit := uint64(1) << uint(v%wordSize)
	switch {
	case wm.pv[col][block]&bit != 0:
		wm.emit('D')
		v--
	case wm.mv[col-1][block]&bit != 0:
		wm.emit('I')
		h--
	case text[h] == cp.pattern[v]:
		wm.emit('M')
		h--
		v--
	default:
		wm.emit('X')
		h--
		v--
	}
	return v, h
}

// backtraceWindow walks back through the just-swept window, from the cursor
// toward the overlap boundary, emitting CIGAR operations as it goes, and
// leaves the cursor at the point the next window should re-derive state from.
func backtraceWindow(wm *WindowMatrix, cp *CompiledPattern, text []byte, overlapSize int) {
	windowSize := wm.windowSize

	hMin := windowEdge(wm.posH, (windowSize-1)*wordSize, wordSize)
	hOverlap := windowEdge(wm.posH, (windowSize-overlapSize-1)*wordSize, wordSize)
	vMin := windowEdge(wm.posV, (windowSize-1)*wordSize, wordSize)
	vOverlap := windowEdge(wm.posV, (windowSize-overlapSize-1)*wordSize, wordSize)

	v, h := wm.posV, wm.posH
	for v >= vOverlap && h >= hOverlap {
		block := (v - vMin) / wordSize
		col := h - hMin + 1
		v, h = tracebackStep(wm, cp, text, v, h, col, block)
	}

	// Degenerate windows (overlap boundary equal to the cursor) would
	// otherwise let the driver loop spin forever: force one step so the
	// cursor always moves.
	if v == wm.posV && h == wm.posH && v >= 0 && h >= 0 {
		block := (v - vMin) / wordSize
		col := h - hMin + 1
		v, h = tracebackStep(wm, cp, text, v, h, col, block)
	}

	wm.posV, wm.posH = v, h
}
