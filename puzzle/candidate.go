package puzzle

/*

Candidate grids

A CandidateGrid is the engine's working representation: one
81-bit bitboard per digit, where a set bit means the digit is
still possible in that cell.  A cell is decided when exactly
one digit remains possible there.

Place deliberately does not eliminate the placed digit from the
cell's peers.  Peer elimination is itself a deduction, and it
belongs to the propagation technique, which tracks which
decided cells it has already processed.  Keeping placement and
propagation separate is what lets a solving session show every
deduction as an explicit step.

*/

// A CandidateGrid records which digits remain possible in
// which cells.  The zero value has no candidates anywhere; use
// NewCandidateGrid for the all-possible starting grid.  It is
// a value type: assignment copies it, and == compares.
type CandidateGrid struct {
	digits [SideLen]DigitPositions
}

// NewCandidateGrid returns a grid where every digit is still
// possible in every cell.
func NewCandidateGrid() CandidateGrid {
	var g CandidateGrid
	for i := range g.digits {
		g.digits[i] = AllPositions
	}
	return g
}

/*

Cell and digit views

*/

// DigitPositions returns the cells where d is still possible.
func (g *CandidateGrid) DigitPositions(d Digit) DigitPositions {
	return g.digits[d-1]
}

// CandidatesAt returns the digits still possible at p.
func (g *CandidateGrid) CandidatesAt(p Position) DigitSet {
	var s DigitSet
	for _, d := range AllDigits {
		if g.digits[d-1].Has(p) {
			s.Add(d)
		}
	}
	return s
}

// HouseMask returns the slots of house h where d is still
// possible, as a 9-bit mask indexed by the house's own cell
// order.
func (g *CandidateGrid) HouseMask(h House, d Digit) HouseMask {
	var m HouseMask
	dp := g.digits[d-1]
	for i := 0; i < SideLen; i++ {
		if dp.Has(h.PositionAt(i)) {
			m |= 1 << uint(i)
		}
	}
	return m
}

// RowMask returns the slots of row y where d is still possible.
func (g *CandidateGrid) RowMask(y int, d Digit) HouseMask {
	return g.HouseMask(Row(y), d)
}

// ColMask returns the slots of column x where d is still possible.
func (g *CandidateGrid) ColMask(x int, d Digit) HouseMask {
	return g.HouseMask(Column(x), d)
}

// BoxMask returns the slots of box b where d is still possible.
func (g *CandidateGrid) BoxMask(b int, d Digit) HouseMask {
	return g.HouseMask(Box(b), d)
}

// DecidedCells returns the cells with exactly one candidate.
func (g *CandidateGrid) DecidedCells() DigitPositions {
	classes := g.ClassifyCells(3)
	return classes[1]
}

// ClassifyCells buckets the cells by candidate count in a
// single bitwise pass over the nine digit boards.  The result
// has n sets: result[k] holds the cells with exactly k
// candidates for k < n-1, and result[n-1] holds the cells with
// n-1 or more.
func (g *CandidateGrid) ClassifyCells(n int) []DigitPositions {
	classes := make([]DigitPositions, n)
	classes[0] = AllPositions
	for _, dp := range g.digits {
		// Ripple each cell of dp up one bucket, high bucket
		// first so no cell moves twice.  The top bucket
		// saturates.
		for k := n - 2; k >= 0; k-- {
			moved := classes[k].And(dp)
			classes[k] = classes[k].AndNot(moved)
			classes[k+1] = classes[k+1].Or(moved)
		}
	}
	return classes
}

/*

Mutations

*/

// Place makes p a singleton cell for d, reporting whether
// anything changed.  Peers are not touched; see the package
// comment above.
func (g *CandidateGrid) Place(p Position, d Digit) bool {
	changed := false
	for _, other := range AllDigits {
		if other != d {
			changed = g.digits[other-1].Remove(p) || changed
		}
	}
	return g.digits[d-1].Add(p) || changed
}

// RemoveCandidate removes d as a candidate at p, reporting
// whether anything changed.
func (g *CandidateGrid) RemoveCandidate(p Position, d Digit) bool {
	return g.digits[d-1].Remove(p)
}

// RemoveCandidateWithMask removes d as a candidate at every
// cell in mask, reporting whether anything changed.
func (g *CandidateGrid) RemoveCandidateWithMask(mask DigitPositions, d Digit) bool {
	old := g.digits[d-1]
	g.digits[d-1] = old.AndNot(mask)
	return g.digits[d-1] != old
}

// RemoveCandidateSetWithMask removes every digit in digits at
// every cell in mask, reporting whether anything changed.
func (g *CandidateGrid) RemoveCandidateSetWithMask(mask DigitPositions, digits DigitSet) bool {
	changed := false
	for rest := digits; ; {
		d, ok := rest.PopFirst()
		if !ok {
			break
		}
		changed = g.RemoveCandidateWithMask(mask, d) || changed
	}
	return changed
}

// WouldRemoveCandidateWithMaskChange reports whether
// RemoveCandidateWithMask would change the grid, without
// changing it.
func (g *CandidateGrid) WouldRemoveCandidateWithMaskChange(mask DigitPositions, d Digit) bool {
	return !g.digits[d-1].And(mask).IsEmpty()
}

// WouldRemoveCandidateSetWithMaskChange reports whether
// RemoveCandidateSetWithMask would change the grid, without
// changing it.
func (g *CandidateGrid) WouldRemoveCandidateSetWithMaskChange(mask DigitPositions, digits DigitSet) bool {
	for rest := digits; ; {
		d, ok := rest.PopFirst()
		if !ok {
			return false
		}
		if g.WouldRemoveCandidateWithMaskChange(mask, d) {
			return true
		}
	}
}

/*

Whole-grid checks

*/

// CheckConsistency reports a consistency violation if the grid
// admits no solution: a cell with no candidates, a digit with
// no remaining slot in some house, or a house where two
// decided cells hold the same digit.
func (g *CandidateGrid) CheckConsistency() error {
	var anywhere DigitPositions
	for _, dp := range g.digits {
		anywhere = anywhere.Or(dp)
	}
	if empty := AllPositions.AndNot(anywhere); !empty.IsEmpty() {
		p, _ := empty.First()
		return ConsistencyError(p, "no candidates remain")
	}
	decided := g.DecidedCells()
	for _, h := range AllHouses {
		hp := h.Positions()
		for _, d := range AllDigits {
			slots := g.digits[d-1].And(hp)
			if slots.IsEmpty() {
				return ConsistencyError(h, d, "no cell can hold the digit")
			}
			if slots.And(decided).Len() > 1 {
				return ConsistencyError(h, d, "multiple cells hold the digit")
			}
		}
	}
	return nil
}

// IsSolved reports whether every cell is decided and the grid
// is consistent, which for a full grid means every house holds
// every digit exactly once.
func (g *CandidateGrid) IsSolved() bool {
	return g.DecidedCells() == AllPositions && g.CheckConsistency() == nil
}

// DigitGrid collapses the grid to its decided values, with 0
// for every undecided cell.
func (g *CandidateGrid) DigitGrid() *DigitGrid {
	var dg DigitGrid
	for i := 0; i < CellCount; i++ {
		p := PositionAtIndex(i)
		if d, ok := g.CandidatesAt(p).Single(); ok {
			dg[i] = d
		}
	}
	return &dg
}
