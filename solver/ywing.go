package solver

import (
	"github.com/gifnksm/numelace-sub000/puzzle"
)

const yWingName = "Y-Wing"

// YWing removes candidates using a Y-Wing pattern.
//
// A Y-Wing is a pivot cell with candidates {A B} and two wing
// cells seeing the pivot, one with {A C} and one with {B C}.
// Whichever digit the pivot takes forces C into one of the
// wings, so C can be removed from every cell that sees both
// wings.
type YWing struct{}

// Name implements Technique.
func (YWing) Name() string { return yWingName }

// Tier implements Technique.
func (YWing) Tier() TechniqueTier { return TierUpperIntermediate }

func (YWing) scan(g *TechniqueGrid, onChange func(pivot, wing1, wing2 puzzle.Position, d1, d2, d3 puzzle.Digit) TechniqueStep) TechniqueStep {
	pairCells := g.ClassifyCells(3)[2]
	for pivots := pairCells; ; {
		pivot, ok := pivots.PopFirst()
		if !ok {
			break
		}
		pivotPeers := pivot.HousePeers().And(pairCells)
		pivotDigits := g.CandidatesAt(pivot)
		d1, d2, ok := pivotDigits.Double()
		if !ok {
			// An earlier elimination in this scan may have
			// changed the pivot's candidates.
			continue
		}
		for wings1 := pivotPeers.And(g.DigitPositions(d1)); ; {
			wing1, ok := wings1.PopFirst()
			if !ok {
				break
			}
			d3, ok := (g.CandidatesAt(wing1) &^ pivotDigits).Single()
			if !ok {
				continue
			}
			for wings2 := pivotPeers.And(g.DigitPositions(d2)).And(g.DigitPositions(d3)); ; {
				wing2, ok := wings2.PopFirst()
				if !ok {
					break
				}
				eliminations := wing1.HousePeers().And(wing2.HousePeers()).And(g.DigitPositions(d3))
				if g.RemoveCandidateWithMask(eliminations, d3) {
					if step := onChange(pivot, wing1, wing2, d1, d2, d3); step != nil {
						return step
					}
				}
			}
		}
	}
	return nil
}

// FindStep implements Technique.
func (t YWing) FindStep(g *TechniqueGrid) (TechniqueStep, error) {
	after := *g
	step := t.scan(&after, func(pivot, wing1, wing2 puzzle.Position, d1, d2, d3 puzzle.Digit) TechniqueStep {
		return stepFromDiff(yWingName,
			puzzle.NewDigitPositions(pivot, wing1, wing2),
			[]DigitCells{
				{Positions: puzzle.NewDigitPositions(pivot), Digits: puzzle.NewDigitSet(d1, d2)},
				{Positions: puzzle.NewDigitPositions(wing1), Digits: puzzle.NewDigitSet(d1, d3)},
				{Positions: puzzle.NewDigitPositions(wing2), Digits: puzzle.NewDigitSet(d2, d3)},
			},
			g, &after)
	})
	if step == nil {
		return nil, nil
	}
	return step, nil
}

// Apply implements Technique.
func (t YWing) Apply(g *TechniqueGrid) (bool, error) {
	changed := false
	t.scan(g, func(puzzle.Position, puzzle.Position, puzzle.Position, puzzle.Digit, puzzle.Digit, puzzle.Digit) TechniqueStep {
		changed = true
		return nil
	})
	return changed, nil
}
