package solver

import (
	"github.com/gifnksm/numelace-sub000/puzzle"
)

/*

Technique grids

A TechniqueGrid is a candidate grid plus one extra bitboard:
the decided cells whose peer eliminations have already been
carried out.  The propagation technique consults the marker so
it only processes each decided cell once, and every other
technique just sees the embedded candidate grid.

TechniqueGrid is a value type like the grid it embeds;
assignment copies it, which is how FindStep implementations
take their scratch copies.

*/

// A TechniqueGrid is the working grid of the technique layer.
type TechniqueGrid struct {
	puzzle.CandidateGrid
	decidedPropagated puzzle.DigitPositions
}

// NewTechniqueGrid returns a grid where every digit is still
// possible in every cell and nothing has been propagated.
func NewTechniqueGrid() TechniqueGrid {
	return TechniqueGrid{CandidateGrid: puzzle.NewCandidateGrid()}
}

// FromCandidateGrid wraps an existing candidate grid.  The
// propagated marker starts empty, so propagation will process
// every decided cell.
func FromCandidateGrid(g puzzle.CandidateGrid) TechniqueGrid {
	return TechniqueGrid{CandidateGrid: g}
}

// FromDigitGrid expands a digit grid into a technique grid.
// Givens become singleton cells; their peer eliminations are
// left for the propagation technique.
func FromDigitGrid(g *puzzle.DigitGrid) TechniqueGrid {
	return FromCandidateGrid(g.Candidates())
}

// DecidedPropagated returns the decided cells whose peer
// eliminations have already been performed.
func (g *TechniqueGrid) DecidedPropagated() puzzle.DigitPositions {
	return g.decidedPropagated
}

// InsertDecidedPropagated marks p as propagated.
func (g *TechniqueGrid) InsertDecidedPropagated(p puzzle.Position) {
	g.decidedPropagated.Add(p)
}

// Candidates returns the embedded candidate grid.
func (g *TechniqueGrid) Candidates() *puzzle.CandidateGrid {
	return &g.CandidateGrid
}
