package solver

import (
	"github.com/gifnksm/numelace-sub000/puzzle"
)

/*

Hidden subsets

A hidden subset of size n is n digits whose candidates within
one house together occupy only n cells.  Those cells must hold
those digits, so every other candidate can be removed from
them.  The scan is the dual of the naked subset scan: it walks
digit combinations instead of cell combinations, again with the
pivot-and-following loop.

The dual impossibilities are proven on the way too.  If n
chosen digits fit in fewer than n cells of a house, or if an
(n+1)-th digit of the house is confined to the same n cells,
the digits cannot all be placed and the grid has no solution.

*/

type hiddenSubset struct {
	size int
	name string
}

// HiddenPair removes candidates using a hidden pair within a house.
type HiddenPair struct{}

// HiddenTriple removes candidates using a hidden triple within a house.
type HiddenTriple struct{}

// HiddenQuad removes candidates using a hidden quad within a house.
type HiddenQuad struct{}

// Name implements Technique.
func (HiddenPair) Name() string { return "Hidden Pair" }

// Tier implements Technique.
func (HiddenPair) Tier() TechniqueTier { return TierIntermediate }

// FindStep implements Technique.
func (HiddenPair) FindStep(g *TechniqueGrid) (TechniqueStep, error) {
	return hiddenSubset{2, "Hidden Pair"}.findStep(g)
}

// Apply implements Technique.
func (HiddenPair) Apply(g *TechniqueGrid) (bool, error) {
	return hiddenSubset{2, "Hidden Pair"}.apply(g)
}

// Name implements Technique.
func (HiddenTriple) Name() string { return "Hidden Triple" }

// Tier implements Technique.
func (HiddenTriple) Tier() TechniqueTier { return TierIntermediate }

// FindStep implements Technique.
func (HiddenTriple) FindStep(g *TechniqueGrid) (TechniqueStep, error) {
	return hiddenSubset{3, "Hidden Triple"}.findStep(g)
}

// Apply implements Technique.
func (HiddenTriple) Apply(g *TechniqueGrid) (bool, error) {
	return hiddenSubset{3, "Hidden Triple"}.apply(g)
}

// Name implements Technique.
func (HiddenQuad) Name() string { return "Hidden Quad" }

// Tier implements Technique.
func (HiddenQuad) Tier() TechniqueTier { return TierIntermediate }

// FindStep implements Technique.
func (HiddenQuad) FindStep(g *TechniqueGrid) (TechniqueStep, error) {
	return hiddenSubset{4, "Hidden Quad"}.findStep(g)
}

// Apply implements Technique.
func (HiddenQuad) Apply(g *TechniqueGrid) (bool, error) {
	return hiddenSubset{4, "Hidden Quad"}.apply(g)
}

func (t hiddenSubset) scan(g *TechniqueGrid, onChange func(h puzzle.House, digits puzzle.DigitSet, positions puzzle.DigitPositions, removed puzzle.DigitSet) TechniqueStep) (TechniqueStep, error) {
	for _, h := range puzzle.AllHouses {
		step, err := t.pick(g, h, puzzle.DigitSetFull, 0, puzzle.DigitPositions{}, onChange)
		if step != nil || err != nil {
			return step, err
		}
	}
	return nil, nil
}

// pick extends the chosen digit combination by one pivot at a
// time.  rest holds the digits strictly after the last pivot.
func (t hiddenSubset) pick(g *TechniqueGrid, h puzzle.House, rest puzzle.DigitSet, digits puzzle.DigitSet, positions puzzle.DigitPositions, onChange func(puzzle.House, puzzle.DigitSet, puzzle.DigitPositions, puzzle.DigitSet) TechniqueStep) (TechniqueStep, error) {
	for r := rest; ; {
		d, ok := r.PopFirst()
		if !ok {
			return nil, nil
		}
		dp := g.DigitPositions(d).And(h.Positions())
		if dp.IsEmpty() {
			continue
		}
		union := positions.Or(dp)
		if union.Len() > t.size {
			continue
		}
		next := digits
		next.Add(d)
		if next.Len() < t.size {
			step, err := t.pick(g, h, r, next, union, onChange)
			if step != nil || err != nil {
				return step, err
			}
			continue
		}
		if union.Len() < t.size {
			return nil, puzzle.ConsistencyError(h, next, "more digits than candidate cells")
		}
		for rr := r; ; {
			extra, ok := rr.PopFirst()
			if !ok {
				break
			}
			ep := g.DigitPositions(extra).And(h.Positions())
			if !ep.IsEmpty() && ep.IsSubset(union) {
				return nil, puzzle.ConsistencyError(h, next, "more digits than candidate cells")
			}
		}
		var removed puzzle.DigitSet
		for other := next.Complement(); ; {
			e, ok := other.PopFirst()
			if !ok {
				break
			}
			if g.RemoveCandidateWithMask(union, e) {
				removed.Add(e)
			}
		}
		if !removed.IsEmpty() {
			if step := onChange(h, next, union, removed); step != nil {
				return step, nil
			}
		}
	}
}

func (t hiddenSubset) findStep(g *TechniqueGrid) (TechniqueStep, error) {
	after := *g
	step, err := t.scan(&after, func(h puzzle.House, digits puzzle.DigitSet, positions puzzle.DigitPositions, removed puzzle.DigitSet) TechniqueStep {
		return NewStepData(t.name, h.Positions(),
			[]DigitCells{{Positions: positions, Digits: digits}},
			[]TechniqueApplication{Elimination(positions, removed)})
	})
	if step == nil || err != nil {
		return nil, err
	}
	return step, nil
}

func (t hiddenSubset) apply(g *TechniqueGrid) (bool, error) {
	changed := false
	_, err := t.scan(g, func(puzzle.House, puzzle.DigitSet, puzzle.DigitPositions, puzzle.DigitSet) TechniqueStep {
		changed = true
		return nil
	})
	return changed, err
}
