package s2

// The Hilbert curve transform processes i and j four bits at a time. Each
// table entry is keyed by 4 bits of i, 4 bits of j and the 2-bit orientation
// of the enclosing cell, and yields 8 bits of curve position plus the
// orientation of the subcell.
const (
	lookupBits = 4
	lookupSize = 1 << (2*lookupBits + 2)

	// swapMask and invertMask are the two orientation flags. Orientations
	// compose with XOR.
	swapMask   = 0x01
	invertMask = 0x02
)

var (
	// ijToPos[orientation][ij] is the curve position of subcell ij, where
	// ij packs the i bit above the j bit.
	ijToPos = [4][4]int{
		{0, 1, 3, 2}, // canonical order
		{0, 3, 1, 2}, // axes swapped
		{2, 3, 1, 0}, // bits inverted
		{2, 1, 3, 0}, // swapped and inverted
	}

	// posToIJ is the inverse of ijToPos.
	posToIJ = [4][4]int{
		{0, 1, 3, 2}, // (0,0) (0,1) (1,1) (1,0)
		{0, 2, 3, 1}, // (0,0) (1,0) (1,1) (0,1)
		{3, 2, 0, 1}, // (1,1) (1,0) (0,0) (0,1)
		{3, 1, 0, 2}, // (1,1) (0,1) (0,0) (1,0)
	}

	// posToOrientation is XORed into the parent orientation to give the
	// orientation of each subcell by curve position.
	posToOrientation = [4]int{swapMask, 0, 0, invertMask | swapMask}

	lookupPos, lookupIJ = buildLookupTables()
)

// buildLookupTables walks the Hilbert curve four levels deep from each of
// the four starting orientations. The result depends only on the constant
// tables above, so the package variables are fixed at initialization.
func buildLookupTables() (pos, ij [lookupSize]int) {
	var walk func(level, i, j, origOrientation, p, orientation int)
	walk = func(level, i, j, origOrientation, p, orientation int) {
		if level == lookupBits {
			packed := (i << lookupBits) + j
			pos[(packed<<2)+origOrientation] = (p << 2) + orientation
			ij[(p<<2)+origOrientation] = (packed << 2) + orientation
			return
		}
		level++
		i <<= 1
		j <<= 1
		p <<= 2
		r := posToIJ[orientation]
		for sub := 0; sub < 4; sub++ {
			walk(level, i+(r[sub]>>1), j+(r[sub]&1), origOrientation, p+sub, orientation^posToOrientation[sub])
		}
	}
	for _, o := range []int{0, swapMask, invertMask, swapMask | invertMask} {
		walk(0, 0, 0, o, 0, o)
	}
	return pos, ij
}
