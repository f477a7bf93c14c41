package solver

import (
	"github.com/gifnksm/numelace-sub000/puzzle"
)

const hiddenSingleName = "Hidden Single"

// HiddenSingle finds digits that can go in only one undecided
// cell of a house, even though that cell may still have other
// candidates, and places them.
type HiddenSingle struct{}

// Name implements Technique.
func (HiddenSingle) Name() string { return hiddenSingleName }

// Tier implements Technique.
func (HiddenSingle) Tier() TechniqueTier { return TierFundamental }

func (HiddenSingle) scan(g *TechniqueGrid, onChange func(h puzzle.House, pos puzzle.Position, d puzzle.Digit) TechniqueStep) TechniqueStep {
	decided := g.DecidedCells()
	for _, d := range puzzle.AllDigits {
		undecided := g.DigitPositions(d).AndNot(decided)
		for _, h := range puzzle.AllHouses {
			pos, ok := undecided.And(h.Positions()).Single()
			if !ok {
				continue
			}
			if g.Place(pos, d) {
				if step := onChange(h, pos, d); step != nil {
					return step
				}
			}
		}
	}
	return nil
}

// FindStep implements Technique.
func (t HiddenSingle) FindStep(g *TechniqueGrid) (TechniqueStep, error) {
	after := *g
	step := t.scan(&after, func(h puzzle.House, pos puzzle.Position, d puzzle.Digit) TechniqueStep {
		return stepFromDiff(hiddenSingleName, h.Positions(),
			[]DigitCells{{Positions: h.Positions(), Digits: puzzle.NewDigitSet(d)}},
			g, &after, Placement(pos, d))
	})
	if step == nil {
		return nil, nil
	}
	return step, nil
}

// Apply implements Technique.
func (t HiddenSingle) Apply(g *TechniqueGrid) (bool, error) {
	changed := false
	t.scan(g, func(puzzle.House, puzzle.Position, puzzle.Digit) TechniqueStep {
		changed = true
		return nil
	})
	return changed, nil
}
