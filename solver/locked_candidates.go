package solver

import (
	"github.com/gifnksm/numelace-sub000/puzzle"
)

const (
	lockedCandidatesName         = "Locked Candidates"
	lockedCandidatesPointingName = "Locked Candidates (Pointing)"
	lockedCandidatesClaimingName = "Locked Candidates (Claiming)"
)

// LockedCandidates removes candidates at box/line intersections.
//
//   - Pointing: within a box, all candidates of a digit lie in
//     a single row or column, so the digit can be removed from
//     the rest of that line outside the box.
//   - Claiming: within a row or column, all candidates of a
//     digit lie in a single box, so the digit can be removed
//     from the rest of that box outside the line.
type LockedCandidates struct{}

// Name implements Technique.
func (LockedCandidates) Name() string { return lockedCandidatesName }

// Tier implements Technique.
func (LockedCandidates) Tier() TechniqueTier { return TierBasic }

func (LockedCandidates) scan(g *TechniqueGrid, onChange func(name string, d puzzle.Digit, box puzzle.House, line puzzle.House, intersection, eliminations puzzle.DigitPositions) TechniqueStep) TechniqueStep {
	for b := 0; b < puzzle.SideLen; b++ {
		box := puzzle.Box(b)
		origin := box.PositionAt(0)
		lines := [6]puzzle.House{
			puzzle.Row(origin.Y), puzzle.Row(origin.Y + 1), puzzle.Row(origin.Y + 2),
			puzzle.Column(origin.X), puzzle.Column(origin.X + 1), puzzle.Column(origin.X + 2),
		}
		for _, line := range lines {
			intersection := box.Positions().And(line.Positions())
			if intersection.AndNot(g.DecidedCells()).IsEmpty() {
				// Nothing left to deduce from a fully decided
				// intersection.
				continue
			}
			restInBox := box.Positions().AndNot(intersection)
			restInLine := line.Positions().AndNot(intersection)
			for _, d := range puzzle.AllDigits {
				dp := g.DigitPositions(d)
				if dp.And(intersection).IsEmpty() {
					continue
				}
				name := ""
				var eliminations puzzle.DigitPositions
				if dp.And(restInBox).IsEmpty() {
					name = lockedCandidatesPointingName
					eliminations = dp.And(restInLine)
				} else if dp.And(restInLine).IsEmpty() {
					name = lockedCandidatesClaimingName
					eliminations = dp.And(restInBox)
				} else {
					continue
				}
				intersectionCells := dp.And(intersection)
				if g.RemoveCandidateWithMask(eliminations, d) {
					if step := onChange(name, d, box, line, intersectionCells, eliminations); step != nil {
						return step
					}
				}
			}
		}
	}
	return nil
}

// FindStep implements Technique.
func (t LockedCandidates) FindStep(g *TechniqueGrid) (TechniqueStep, error) {
	after := *g
	step := t.scan(&after, func(name string, d puzzle.Digit, box, line puzzle.House, intersection, eliminations puzzle.DigitPositions) TechniqueStep {
		return NewStepData(name,
			box.Positions().Or(line.Positions()),
			[]DigitCells{{Positions: intersection, Digits: puzzle.NewDigitSet(d)}},
			[]TechniqueApplication{Elimination(eliminations, puzzle.NewDigitSet(d))})
	})
	if step == nil {
		return nil, nil
	}
	return step, nil
}

// Apply implements Technique.
func (t LockedCandidates) Apply(g *TechniqueGrid) (bool, error) {
	changed := false
	t.scan(g, func(string, puzzle.Digit, puzzle.House, puzzle.House, puzzle.DigitPositions, puzzle.DigitPositions) TechniqueStep {
		changed = true
		return nil
	})
	return changed, nil
}
