package solver

import (
	"github.com/gifnksm/numelace-sub000/puzzle"
)

/*

Naked subsets

A naked subset of size n is n cells of one house whose
candidates together cover only n digits.  Those digits must go
in those cells, so they can be removed from the rest of the
house.  Pair, triple, and quad are the same scan with a
different n, walking cell combinations with the
pivot-and-following loop so each combination is visited once,
in ascending order.

The scan also proves two impossibilities on the way.  If n
chosen cells cover fewer than n digits, or if an (n+1)-th cell
of the house draws its candidates from the same n digits, the
digits cannot fill the cells and the grid has no solution.

*/

type nakedSubset struct {
	size int
	name string
}

// NakedPair removes candidates using a naked pair within a house.
type NakedPair struct{}

// NakedTriple removes candidates using a naked triple within a house.
type NakedTriple struct{}

// NakedQuad removes candidates using a naked quad within a house.
type NakedQuad struct{}

// Name implements Technique.
func (NakedPair) Name() string { return "Naked Pair" }

// Tier implements Technique.
func (NakedPair) Tier() TechniqueTier { return TierIntermediate }

// FindStep implements Technique.
func (NakedPair) FindStep(g *TechniqueGrid) (TechniqueStep, error) {
	return nakedSubset{2, "Naked Pair"}.findStep(g)
}

// Apply implements Technique.
func (NakedPair) Apply(g *TechniqueGrid) (bool, error) {
	return nakedSubset{2, "Naked Pair"}.apply(g)
}

// Name implements Technique.
func (NakedTriple) Name() string { return "Naked Triple" }

// Tier implements Technique.
func (NakedTriple) Tier() TechniqueTier { return TierIntermediate }

// FindStep implements Technique.
func (NakedTriple) FindStep(g *TechniqueGrid) (TechniqueStep, error) {
	return nakedSubset{3, "Naked Triple"}.findStep(g)
}

// Apply implements Technique.
func (NakedTriple) Apply(g *TechniqueGrid) (bool, error) {
	return nakedSubset{3, "Naked Triple"}.apply(g)
}

// Name implements Technique.
func (NakedQuad) Name() string { return "Naked Quad" }

// Tier implements Technique.
func (NakedQuad) Tier() TechniqueTier { return TierIntermediate }

// FindStep implements Technique.
func (NakedQuad) FindStep(g *TechniqueGrid) (TechniqueStep, error) {
	return nakedSubset{4, "Naked Quad"}.findStep(g)
}

// Apply implements Technique.
func (NakedQuad) Apply(g *TechniqueGrid) (bool, error) {
	return nakedSubset{4, "Naked Quad"}.apply(g)
}

func (t nakedSubset) scan(g *TechniqueGrid, onChange func(positions puzzle.DigitPositions, digits puzzle.DigitSet, eliminations puzzle.DigitPositions) TechniqueStep) (TechniqueStep, error) {
	// Only cells with 2 through n candidates can belong to a
	// naked subset of size n; the top classify bucket catches
	// the rest.
	classes := g.ClassifyCells(t.size + 1)
	var candidateCells puzzle.DigitPositions
	for k := 2; k <= t.size; k++ {
		candidateCells = candidateCells.Or(classes[k])
	}
	if candidateCells.Len() < t.size {
		return nil, nil
	}
	for _, h := range puzzle.AllHouses {
		inHouse := candidateCells.And(h.Positions())
		if inHouse.Len() < t.size {
			continue
		}
		chosen := make([]puzzle.Position, 0, t.size)
		step, err := t.pick(g, h, inHouse, 0, chosen, onChange)
		if step != nil || err != nil {
			return step, err
		}
	}
	return nil, nil
}

// pick extends the chosen cell combination by one pivot at a
// time.  rest holds the house cells strictly after the last
// pivot, so each combination is visited exactly once.
func (t nakedSubset) pick(g *TechniqueGrid, h puzzle.House, rest puzzle.DigitPositions, digits puzzle.DigitSet, chosen []puzzle.Position, onChange func(puzzle.DigitPositions, puzzle.DigitSet, puzzle.DigitPositions) TechniqueStep) (TechniqueStep, error) {
	for r := rest; ; {
		pos, ok := r.PopFirst()
		if !ok {
			return nil, nil
		}
		union := digits | g.CandidatesAt(pos)
		if union.Len() > t.size {
			continue
		}
		next := append(chosen, pos)
		if len(next) < t.size {
			step, err := t.pick(g, h, r, union, next, onChange)
			if step != nil || err != nil {
				return step, err
			}
			continue
		}
		if union.Len() < t.size {
			return nil, puzzle.ConsistencyError(h, union, "more cells than candidate digits")
		}
		// Combinations with earlier cells were checked before
		// this one, so only the cells after the last pivot can
		// still overfill the subset.
		for rr := r; ; {
			extra, ok := rr.PopFirst()
			if !ok {
				break
			}
			if g.CandidatesAt(extra).IsSubset(union) {
				return nil, puzzle.ConsistencyError(h, union, "more cells than candidate digits")
			}
		}
		eliminations := h.Positions()
		for _, p := range next {
			eliminations.Remove(p)
		}
		if g.RemoveCandidateSetWithMask(eliminations, union) {
			if step := onChange(puzzle.NewDigitPositions(next...), union, eliminations); step != nil {
				return step, nil
			}
		}
	}
}

func (t nakedSubset) findStep(g *TechniqueGrid) (TechniqueStep, error) {
	after := *g
	step, err := t.scan(&after, func(positions puzzle.DigitPositions, digits puzzle.DigitSet, eliminations puzzle.DigitPositions) TechniqueStep {
		return NewStepData(t.name, positions,
			[]DigitCells{{Positions: positions, Digits: digits}},
			[]TechniqueApplication{Elimination(eliminations, digits)})
	})
	if step == nil || err != nil {
		return nil, err
	}
	return step, nil
}

func (t nakedSubset) apply(g *TechniqueGrid) (bool, error) {
	changed := false
	_, err := t.scan(g, func(puzzle.DigitPositions, puzzle.DigitSet, puzzle.DigitPositions) TechniqueStep {
		changed = true
		return nil
	})
	return changed, err
}
