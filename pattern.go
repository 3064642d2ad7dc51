package quicked

// allOnes is a 64-bit word with every bit set, used to seed the sweep's
// reset column.
const allOnes = ^uint64(0)

// msbMask has only the top bit of a block set.
const msbMask = uint64(1) << 63

// CompiledPattern is the immutable, pre-encoded form of a pattern sequence
// that the windowed aligner sweeps against. Build one with Compile and reuse
// it across many Align calls against different texts; it holds no mutable
// state and needs no locking.
type CompiledPattern struct {
	pattern []byte

	numBlocks int
	patternMod int

	// peq[b][c] has bit i set iff the pattern character at b*wordSize+i is
	// encoded as symbol c. Padding positions (at or beyond len(pattern))
	// have every symbol's bit set, so they match anything and never
	// contribute to the distance.
	peq [][encodedAlphabetSize]uint64

	// levelMask[b] isolates the bit corresponding to the last real pattern
	// position within block b — wordSize-1 for every block but the top one.
	levelMask []uint64

	// initScore[b] is the number of real pattern positions covered by block
	// b. Unused by the windowed sweep itself (see Design Notes) but kept for
	// parity with a non-windowed Myers port and exercised by tests that
	// check the precompiler's bookkeeping.
	initScore []int

	// patternLeft[k] is the number of real pattern positions at or below
	// block k (length numBlocks+1).
	patternLeft []int
}

// Compile builds a CompiledPattern from a raw DNA sequence. It returns an
// error if pattern is empty; a windowed aligner has no meaningful window
// geometry over a zero-length pattern.
func Compile(pattern []byte) (*CompiledPattern, error) {
	m := len(pattern)
	if m <= 0 {
		return nil, &AlignError{Kind: ErrInvalidArgument, Msg: "pattern length must be > 0"}
	}

	numBlocks := (m + wordSize - 1) / wordSize
	patternMod := m % wordSize

	cp := &CompiledPattern{
		pattern:     append([]byte(nil), pattern...),
		numBlocks:   numBlocks,
		patternMod:  patternMod,
		peq:         make([][encodedAlphabetSize]uint64, numBlocks),
		levelMask:   make([]uint64, numBlocks),
		initScore:   make([]int, numBlocks),
		patternLeft: make([]int, numBlocks+1),
	}

	for i := 0; i < m; i++ {
		block, bit := i/wordSize, uint(i%wordSize)
		c := encode(pattern[i])
		cp.peq[block][c] |= 1 << bit
	}
	for i := m; i < numBlocks*wordSize; i++ {
		block, bit := i/wordSize, uint(i%wordSize)
		for c := 0; c < encodedAlphabetSize; c++ {
			cp.peq[block][c] |= 1 << bit
		}
	}

	patternLeft := m
	top := numBlocks - 1
	for b := 0; b < top; b++ {
		cp.levelMask[b] = msbMask
		cp.initScore[b] = wordSize
		cp.patternLeft[b] = patternLeft
		patternLeft = max(0, patternLeft-wordSize)
	}
	for b := top; b <= numBlocks; b++ {
		cp.patternLeft[b] = patternLeft
		patternLeft = max(0, patternLeft-wordSize)
	}
	if patternMod > 0 {
		cp.levelMask[top] = uint64(1) << uint(patternMod-1)
		cp.initScore[top] = patternMod
	} else {
		cp.levelMask[top] = msbMask
		cp.initScore[top] = wordSize
	}

	return cp, nil
}

// Len returns the number of real (non-padding) residues in the pattern.
func (cp *CompiledPattern) Len() int {
	return len(cp.pattern)
}
