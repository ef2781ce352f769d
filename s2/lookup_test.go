package s2

import "testing"

func TestLookupTablesInverse(t *testing.T) {
	for o := 0; o < 4; o++ {
		for ij := 0; ij < 4; ij++ {
			if got := posToIJ[o][ijToPos[o][ij]]; got != ij {
				t.Errorf("orientation %d: ij %d maps back to %d", o, ij, got)
			}
		}
	}

	for o := 0; o < 4; o++ {
		for packed := 0; packed < 1<<(2*lookupBits); packed++ {
			p := lookupPos[packed<<2|o]
			back := lookupIJ[(p>>2)<<2|o]
			if back>>2 != packed {
				t.Errorf("orientation %d: ij %#x round trips to %#x", o, packed, back>>2)
			}
			if back&3 != p&3 {
				t.Errorf("orientation %d: ij %#x ends in orientation %d one way and %d the other", o, packed, p&3, back&3)
			}
		}
	}
}

// Consecutive curve positions within a lookup block are adjacent cells.
func TestLookupCurveContinuity(t *testing.T) {
	for o := 0; o < 4; o++ {
		prevI, prevJ := -1, -1
		for pos := 0; pos < 1<<(2*lookupBits); pos++ {
			ij := lookupIJ[pos<<2|o] >> 2
			i, j := ij>>lookupBits, ij&(1<<lookupBits-1)
			if pos > 0 {
				di, dj := i-prevI, j-prevJ
				if di*di+dj*dj != 1 {
					t.Fatalf("orientation %d: positions %d and %d are not adjacent", o, pos-1, pos)
				}
			}
			prevI, prevJ = i, j
		}
	}
}
