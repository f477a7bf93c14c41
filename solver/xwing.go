package solver

import (
	"github.com/gifnksm/numelace-sub000/puzzle"
)

const xWingName = "X-Wing"

// XWing removes candidates using an X-Wing pattern.
//
// An X-Wing occurs when a digit appears exactly twice in each
// of two rows (or columns) and those candidates align in the
// same two columns (or rows).  Whichever diagonal the digit
// takes, it lands once in each of the two crossing lines, so
// the digit can be removed from the rest of those lines.
type XWing struct{}

// lineDouble records a line holding exactly two candidates of
// the current digit, at cross indices a < b.
type lineDouble struct {
	line, a, b int
}

// Name implements Technique.
func (XWing) Name() string { return xWingName }

// Tier implements Technique.
func (XWing) Tier() TechniqueTier { return TierUpperIntermediate }

func (XWing) scan(g *TechniqueGrid, onChange func(d puzzle.Digit, corners puzzle.DigitPositions) TechniqueStep) (TechniqueStep, error) {
	for _, d := range puzzle.AllDigits {
		rows := make([]lineDouble, 0, puzzle.SideLen)
		for y := 0; y < puzzle.SideLen; y++ {
			if x1, x2, ok := g.RowMask(y, d).Double(); ok {
				rows = append(rows, lineDouble{y, x1, x2})
			}
		}
		for i, r1 := range rows {
			for _, r2 := range rows[i+1:] {
				if r1.a != r2.a || r1.b != r2.b {
					continue
				}
				// Four corners in one box would need the digit
				// twice there, once per row.
				if r1.line/puzzle.BoxLen == r2.line/puzzle.BoxLen && r1.a/puzzle.BoxLen == r1.b/puzzle.BoxLen {
					return nil, puzzle.ConsistencyError(d, "intersecting lines share a box")
				}
				eliminations := puzzle.ColPositions(r1.a).Or(puzzle.ColPositions(r1.b)).
					AndNot(puzzle.RowPositions(r1.line).Or(puzzle.RowPositions(r2.line)))
				if g.RemoveCandidateWithMask(eliminations, d) {
					corners := puzzle.NewDigitPositions(
						puzzle.Pos(r1.a, r1.line), puzzle.Pos(r1.b, r1.line),
						puzzle.Pos(r1.a, r2.line), puzzle.Pos(r1.b, r2.line),
					)
					if step := onChange(d, corners); step != nil {
						return step, nil
					}
				}
			}
		}

		cols := make([]lineDouble, 0, puzzle.SideLen)
		for x := 0; x < puzzle.SideLen; x++ {
			if y1, y2, ok := g.ColMask(x, d).Double(); ok {
				cols = append(cols, lineDouble{x, y1, y2})
			}
		}
		for i, c1 := range cols {
			for _, c2 := range cols[i+1:] {
				if c1.a != c2.a || c1.b != c2.b {
					continue
				}
				if c1.line/puzzle.BoxLen == c2.line/puzzle.BoxLen && c1.a/puzzle.BoxLen == c1.b/puzzle.BoxLen {
					return nil, puzzle.ConsistencyError(d, "intersecting lines share a box")
				}
				eliminations := puzzle.RowPositions(c1.a).Or(puzzle.RowPositions(c1.b)).
					AndNot(puzzle.ColPositions(c1.line).Or(puzzle.ColPositions(c2.line)))
				if g.RemoveCandidateWithMask(eliminations, d) {
					corners := puzzle.NewDigitPositions(
						puzzle.Pos(c1.line, c1.a), puzzle.Pos(c1.line, c1.b),
						puzzle.Pos(c2.line, c1.a), puzzle.Pos(c2.line, c1.b),
					)
					if step := onChange(d, corners); step != nil {
						return step, nil
					}
				}
			}
		}
	}
	return nil, nil
}

// FindStep implements Technique.
func (t XWing) FindStep(g *TechniqueGrid) (TechniqueStep, error) {
	after := *g
	step, err := t.scan(&after, func(d puzzle.Digit, corners puzzle.DigitPositions) TechniqueStep {
		return stepFromDiff(xWingName, corners,
			[]DigitCells{{Positions: corners, Digits: puzzle.NewDigitSet(d)}},
			g, &after)
	})
	if step == nil || err != nil {
		return nil, err
	}
	return step, nil
}

// Apply implements Technique.
func (t XWing) Apply(g *TechniqueGrid) (bool, error) {
	changed := false
	_, err := t.scan(g, func(puzzle.Digit, puzzle.DigitPositions) TechniqueStep {
		changed = true
		return nil
	})
	return changed, err
}
