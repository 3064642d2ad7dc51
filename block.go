package quicked

// wordSize is the width (in bits) of one bit-parallel block. A pattern
// position p lives in block p/wordSize at bit p%wordSize.
const wordSize = 64

// advanceBlock runs one step of the Myers/Hyyrö bit-parallel recurrence for a
// single 64-bit block. eq is the pattern-vs-character equality mask for this
// block (PEQ row); pv/mv are the block's current vertical-delta vectors;
// phIn/mhIn are the single-bit horizontal carry coming in from the block
// above. It returns the updated vertical vectors and the single-bit carry to
// feed into the block below.
//
// Ported from the BPM_ADVANCE_BLOCK macro (bit for bit) and cross-checked
// against the single-block Myers step used elsewhere in the retrieval pack;
// generalized here to thread an explicit horizontal carry between blocks.
func advanceBlock(eq, pv, mv, phIn, mhIn uint64) (pvOut, mvOut, phOut, mhOut uint64) {
	xv := eq | mv
	eqPrime := eq | mhIn
	xh := (((eqPrime & pv) + pv) ^ pv) | eqPrime

	ph := mv | ^(xh | pv)
	mh := pv & xh

	phOut = ph >> 63
	mhOut = mh >> 63

	ph = (ph << 1) | phIn
	mh = (mh << 1) | mhIn

	pvOut = mh | ^(xv | ph)
	mvOut = ph & xv
	return
}
