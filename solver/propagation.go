package solver

import (
	"github.com/gifnksm/numelace-sub000/puzzle"
)

const propagationName = "Propagation"

// Propagation performs the peer elimination for decided cells:
// a decided cell's digit cannot appear in any cell sharing a
// house with it.  This is the only technique that eliminates
// on behalf of placements.  Other techniques just decide
// cells; the follow-up eliminations happen when control comes
// back here.  The grid's propagated marker keeps each decided
// cell from being processed twice.
type Propagation struct{}

// Name implements Technique.
func (Propagation) Name() string { return propagationName }

// Tier implements Technique.
func (Propagation) Tier() TechniqueTier { return TierFundamental }

func (Propagation) scan(g *TechniqueGrid, onChange func(pos puzzle.Position, d puzzle.Digit, affected puzzle.DigitPositions) TechniqueStep) TechniqueStep {
	pending := g.DecidedCells().AndNot(g.DecidedPropagated())
	for _, d := range puzzle.AllDigits {
		for rest := g.DigitPositions(d).And(pending); ; {
			pos, ok := rest.PopFirst()
			if !ok {
				break
			}
			affected := pos.HousePeers().And(g.DigitPositions(d))
			changed := g.RemoveCandidateWithMask(affected, d)
			g.InsertDecidedPropagated(pos)
			if changed {
				if step := onChange(pos, d, affected); step != nil {
					return step
				}
			}
		}
	}
	return nil
}

// FindStep implements Technique.
func (t Propagation) FindStep(g *TechniqueGrid) (TechniqueStep, error) {
	after := *g
	step := t.scan(&after, func(pos puzzle.Position, d puzzle.Digit, affected puzzle.DigitPositions) TechniqueStep {
		cells := puzzle.NewDigitPositions(pos)
		return stepFromDiff(propagationName, cells,
			[]DigitCells{{Positions: cells, Digits: puzzle.NewDigitSet(d)}},
			g, &after, Placement(pos, d))
	})
	if step == nil {
		return nil, nil
	}
	return step, nil
}

// Apply implements Technique.
func (t Propagation) Apply(g *TechniqueGrid) (bool, error) {
	changed := false
	t.scan(g, func(puzzle.Position, puzzle.Digit, puzzle.DigitPositions) TechniqueStep {
		changed = true
		return nil
	})
	return changed, nil
}
