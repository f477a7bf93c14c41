package solver

import (
	"testing"

	"github.com/gifnksm/numelace-sub000/puzzle"
)

func TestLockedCandidatesPointing(t *testing.T) {
	// Limit 5 within box 0 to row 0; the rest of row 0 loses 5.
	grid := puzzle.NewCandidateGrid()
	for _, p := range puzzle.Box(0).Positions().Positions() {
		if p.Y != 0 {
			grid.RemoveCandidate(p, 5)
		}
	}

	newTester(t, grid).
		applyOnce(LockedCandidates{}).
		assertRemovedIncludes(puzzle.Pos(3, 0), 5).
		assertRemovedIncludes(puzzle.Pos(8, 0), 5)
}

func TestLockedCandidatesClaiming(t *testing.T) {
	// Limit 7 within row 0 to box 0; the rest of box 0 loses 7.
	grid := puzzle.NewCandidateGrid()
	for _, p := range puzzle.Row(0).Positions().Positions() {
		if p.X > 2 {
			grid.RemoveCandidate(p, 7)
		}
	}

	newTester(t, grid).
		applyOnce(LockedCandidates{}).
		assertRemovedIncludes(puzzle.Pos(0, 1), 7).
		assertRemovedIncludes(puzzle.Pos(2, 2), 7)
}

func TestLockedCandidatesNoChangeOnFreshGrid(t *testing.T) {
	newTester(t, puzzle.NewCandidateGrid()).
		applyOnce(LockedCandidates{}).
		assertNoChange(puzzle.Pos(0, 0)).
		assertNoChange(puzzle.Pos(4, 4))
}

func TestLockedCandidatesStepNamesVariant(t *testing.T) {
	grid := puzzle.NewCandidateGrid()
	for _, p := range puzzle.Box(0).Positions().Positions() {
		if p.Y != 0 {
			grid.RemoveCandidate(p, 5)
		}
	}

	tg := FromCandidateGrid(grid)
	step, err := LockedCandidates{}.FindStep(&tg)
	if err != nil {
		t.Fatalf("find step: %v", err)
	}
	if step == nil {
		t.Fatal("expected a step")
	}
	if got := step.TechniqueName(); got != "Locked Candidates (Pointing)" {
		t.Errorf("technique name = %q", got)
	}
}
