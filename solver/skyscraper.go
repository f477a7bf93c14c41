package solver

import (
	"github.com/gifnksm/numelace-sub000/puzzle"
)

const skyscraperName = "Skyscraper"

// Skyscraper removes candidates using a Skyscraper pattern.
//
// A Skyscraper occurs when a digit appears exactly twice in
// each of two parallel lines, with one candidate of each line
// in a shared crossing line (the base) and the other two (the
// roofs) in bands that face each other.  One roof must hold the
// digit, so cells that see both roofs cannot.
type Skyscraper struct{}

// skyAxis fixes which direction the parallel lines run.  The
// column axis treats columns as lines and rows as crossings;
// the row axis is the transpose.
type skyAxis struct {
	linePositions  func(int) puzzle.DigitPositions
	crossPositions func(int) puzzle.DigitPositions
	crossIndex     func(puzzle.Position) int
	makePos        func(line, cross int) puzzle.Position
}

var columnAxis = skyAxis{
	linePositions:  puzzle.ColPositions,
	crossPositions: puzzle.RowPositions,
	crossIndex:     func(p puzzle.Position) int { return p.Y },
	makePos:        func(line, cross int) puzzle.Position { return puzzle.Pos(line, cross) },
}

var rowAxis = skyAxis{
	linePositions:  puzzle.RowPositions,
	crossPositions: puzzle.ColPositions,
	crossIndex:     func(p puzzle.Position) int { return p.X },
	makePos:        func(line, cross int) puzzle.Position { return puzzle.Pos(cross, line) },
}

// Name implements Technique.
func (Skyscraper) Name() string { return skyscraperName }

// Tier implements Technique.
func (Skyscraper) Tier() TechniqueTier { return TierUpperIntermediate }

func (Skyscraper) scanAxis(g *TechniqueGrid, d puzzle.Digit, axis skyAxis, onChange func(d puzzle.Digit, cells puzzle.DigitPositions) TechniqueStep) TechniqueStep {
	dp := g.DigitPositions(d)

	// Lines holding the digit exactly twice, with the two
	// candidates in different crossing bands.
	lines := make([]lineDouble, 0, puzzle.SideLen)
	for line := 0; line < puzzle.SideLen; line++ {
		posA, posB, ok := dp.And(axis.linePositions(line)).Double()
		if !ok {
			continue
		}
		crossA := axis.crossIndex(posA)
		crossB := axis.crossIndex(posB)
		if crossA/puzzle.BoxLen == crossB/puzzle.BoxLen {
			continue
		}
		lines = append(lines, lineDouble{line, crossA, crossB})
	}
	for i, l1 := range lines {
		for _, l2 := range lines[i+1:] {
			if l1.line/puzzle.BoxLen == l2.line/puzzle.BoxLen {
				continue
			}
			if l1.a/puzzle.BoxLen != l2.a/puzzle.BoxLen || l1.b/puzzle.BoxLen != l2.b/puzzle.BoxLen {
				continue
			}
			var base, roof1, roof2 int
			switch {
			case l1.a == l2.a && l1.b != l2.b:
				base, roof1, roof2 = l1.a, l1.b, l2.b
			case l1.b == l2.b && l1.a != l2.a:
				base, roof1, roof2 = l1.b, l1.a, l2.a
			default:
				continue
			}
			roofPos1 := axis.makePos(l1.line, roof1)
			roofPos2 := axis.makePos(l2.line, roof2)
			// Cells seeing both roofs: the crossing line of one
			// roof inside the box of the other.
			eliminations := axis.crossPositions(roof2).And(puzzle.BoxPositions(roofPos1.BoxIndex())).
				Or(axis.crossPositions(roof1).And(puzzle.BoxPositions(roofPos2.BoxIndex())))
			if g.RemoveCandidateWithMask(eliminations, d) {
				cells := puzzle.NewDigitPositions(
					axis.makePos(l1.line, base), axis.makePos(l2.line, base),
					roofPos1, roofPos2,
				)
				if step := onChange(d, cells); step != nil {
					return step
				}
			}
		}
	}
	return nil
}

func (t Skyscraper) scan(g *TechniqueGrid, onChange func(d puzzle.Digit, cells puzzle.DigitPositions) TechniqueStep) TechniqueStep {
	for _, d := range puzzle.AllDigits {
		if step := t.scanAxis(g, d, columnAxis, onChange); step != nil {
			return step
		}
		if step := t.scanAxis(g, d, rowAxis, onChange); step != nil {
			return step
		}
	}
	return nil
}

// FindStep implements Technique.
func (t Skyscraper) FindStep(g *TechniqueGrid) (TechniqueStep, error) {
	after := *g
	step := t.scan(&after, func(d puzzle.Digit, cells puzzle.DigitPositions) TechniqueStep {
		return stepFromDiff(skyscraperName, cells,
			[]DigitCells{{Positions: cells, Digits: puzzle.NewDigitSet(d)}},
			g, &after)
	})
	if step == nil {
		return nil, nil
	}
	return step, nil
}

// Apply implements Technique.
func (t Skyscraper) Apply(g *TechniqueGrid) (bool, error) {
	changed := false
	t.scan(g, func(puzzle.Digit, puzzle.DigitPositions) TechniqueStep {
		changed = true
		return nil
	})
	return changed, nil
}
