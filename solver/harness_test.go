package solver

import (
	"testing"

	"github.com/gifnksm/numelace-sub000/puzzle"
)

/*

Technique test harness

The harness runs a technique against a grid and, on every
apply, checks the FindStep/Apply contract: FindStep returns a
step exactly when Apply changes the grid, and the step's
applications are visible in the changed grid.  Assertions then
compare the current grid against the initial one.

*/

type techniqueTester struct {
	t             *testing.T
	initial       TechniqueGrid
	current       TechniqueGrid
	checkFindStep bool
}

func newTester(t *testing.T, grid puzzle.CandidateGrid) *techniqueTester {
	t.Helper()
	initial := FromCandidateGrid(grid)
	return &techniqueTester{t: t, initial: initial, current: initial, checkFindStep: true}
}

func testerFromString(t *testing.T, s string) *techniqueTester {
	t.Helper()
	dg, err := puzzle.ParseDigitGrid(s)
	if err != nil {
		t.Fatalf("parse grid: %v", err)
	}
	return newTester(t, dg.Candidates())
}

func (tt *techniqueTester) withoutFindStepConsistency() *techniqueTester {
	tt.checkFindStep = false
	return tt
}

func (tt *techniqueTester) applyOnce(technique Technique) *techniqueTester {
	tt.t.Helper()
	before := tt.current
	changed, err := technique.Apply(&tt.current)
	if err != nil {
		tt.t.Fatalf("%s apply: %v", technique.Name(), err)
	}
	if tt.checkFindStep {
		tt.assertFindStepConsistent(technique, &before, changed)
	}
	return tt
}

func (tt *techniqueTester) applyUntilStuck(technique Technique) *techniqueTester {
	tt.t.Helper()
	for {
		before := tt.current
		changed, err := technique.Apply(&tt.current)
		if err != nil {
			tt.t.Fatalf("%s apply: %v", technique.Name(), err)
		}
		if tt.checkFindStep {
			tt.assertFindStepConsistent(technique, &before, changed)
		}
		if !changed {
			return tt
		}
	}
}

func (tt *techniqueTester) assertFindStepConsistent(technique Technique, before *TechniqueGrid, changed bool) {
	tt.t.Helper()
	name := technique.Name()
	step, err := technique.FindStep(before)
	if err != nil {
		tt.t.Fatalf("%s find step: %v", name, err)
	}
	if step == nil {
		if changed {
			tt.t.Fatalf("%s reported a change but found no step", name)
		}
		for _, d := range puzzle.AllDigits {
			if before.DigitPositions(d) != tt.current.DigitPositions(d) {
				tt.t.Fatalf("%s changed candidates for %d without reporting a change", name, d)
			}
		}
		return
	}
	if !changed {
		tt.t.Fatalf("%s found a step but reported no change", name)
	}
	for _, application := range step.Applications() {
		switch application.Kind {
		case PlacementApplication:
			candidates := tt.current.CandidatesAt(application.Position)
			if d, ok := candidates.Single(); !ok || d != application.Digit {
				tt.t.Fatalf("%s step places %d at %v, but candidates are %v",
					name, application.Digit, application.Position, candidates)
			}
		case EliminationApplication:
			for _, pos := range application.Positions.Positions() {
				beforeSet := before.CandidatesAt(pos)
				afterSet := tt.current.CandidatesAt(pos)
				for _, d := range application.Digits.Digits() {
					if beforeSet.Has(d) && afterSet.Has(d) {
						tt.t.Fatalf("%s step eliminates %d at %v, but it is still a candidate",
							name, d, pos)
					}
				}
			}
		}
	}
}

func (tt *techniqueTester) assertPlaced(pos puzzle.Position, d puzzle.Digit) *techniqueTester {
	tt.t.Helper()
	initial := tt.initial.CandidatesAt(pos)
	current := tt.current.CandidatesAt(pos)
	if initial.Len() <= 1 {
		tt.t.Fatalf("cell %v started decided with candidates %v", pos, initial)
	}
	got, ok := current.Single()
	if !ok {
		tt.t.Fatalf("cell %v is not decided, candidates are %v", pos, current)
	}
	if got != d {
		tt.t.Fatalf("cell %v holds %d, want %d", pos, got, d)
	}
	return tt
}

func (tt *techniqueTester) assertRemovedIncludes(pos puzzle.Position, digits ...puzzle.Digit) *techniqueTester {
	tt.t.Helper()
	set := puzzle.NewDigitSet(digits...)
	initial := tt.initial.CandidatesAt(pos)
	current := tt.current.CandidatesAt(pos)
	if !set.IsSubset(initial) {
		tt.t.Fatalf("cell %v initially had %v, which does not include %v", pos, initial, set)
	}
	if still := current & set; !still.IsEmpty() {
		tt.t.Fatalf("cell %v still has %v of %v", pos, still, set)
	}
	return tt
}

func (tt *techniqueTester) assertRemovedExact(pos puzzle.Position, digits ...puzzle.Digit) *techniqueTester {
	tt.t.Helper()
	set := puzzle.NewDigitSet(digits...)
	initial := tt.initial.CandidatesAt(pos)
	current := tt.current.CandidatesAt(pos)
	if removed := initial &^ current; removed != set {
		tt.t.Fatalf("cell %v had %v removed, want exactly %v (initial %v, current %v)",
			pos, removed, set, initial, current)
	}
	return tt
}

func (tt *techniqueTester) assertNoChange(pos puzzle.Position) *techniqueTester {
	tt.t.Helper()
	initial := tt.initial.CandidatesAt(pos)
	current := tt.current.CandidatesAt(pos)
	if initial != current {
		tt.t.Fatalf("cell %v changed from %v to %v", pos, initial, current)
	}
	return tt
}

// assertInconsistent applies the technique expecting a
// consistency violation instead of a deduction.
func assertInconsistent(t *testing.T, grid puzzle.CandidateGrid, technique Technique) {
	t.Helper()
	tg := FromCandidateGrid(grid)
	_, err := technique.Apply(&tg)
	if !puzzle.IsConsistencyError(err) {
		t.Fatalf("%s apply: got %v, want consistency error", technique.Name(), err)
	}
}
