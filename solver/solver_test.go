package solver

import (
	"testing"

	"github.com/gifnksm/numelace-sub000/puzzle"
)

const classicPuzzle = `
	53_ _7_ ___
	6__ 195 ___
	_98 ___ _6_
	8__ _6_ __3
	4__ 8_3 __1
	7__ _2_ __6
	_6_ ___ 28_
	___ 419 __5
	___ _8_ _79
`

func parseTechniqueGrid(t *testing.T, s string) TechniqueGrid {
	t.Helper()
	dg, err := puzzle.ParseDigitGrid(s)
	if err != nil {
		t.Fatalf("parse grid: %v", err)
	}
	return FromDigitGrid(dg)
}

func newFundamentalSolver() *TechniqueSolver {
	return NewTechniqueSolver(FundamentalTechniques())
}

func TestStepReturnsFalseWhenNoProgress(t *testing.T) {
	solver := newFundamentalSolver()
	grid := NewTechniqueGrid()
	stats := solver.NewStats()

	progressed, err := solver.Step(&grid, stats)
	if err != nil {
		t.Fatalf("step: %v", err)
	}
	if progressed {
		t.Error("expected no progress on a fresh grid")
	}
	if stats.TotalSteps() != 0 {
		t.Errorf("total steps = %d, want 0", stats.TotalSteps())
	}
}

func TestStepRecordsProgress(t *testing.T) {
	solver := newFundamentalSolver()
	grid := NewTechniqueGrid()
	stats := solver.NewStats()

	// A decided cell gives propagation work to do.
	grid.Place(puzzle.Pos(4, 4), 5)

	progressed, err := solver.Step(&grid, stats)
	if err != nil {
		t.Fatalf("step: %v", err)
	}
	if !progressed {
		t.Fatal("expected progress")
	}
	if stats.TotalSteps() != 1 {
		t.Errorf("total steps = %d, want 1", stats.TotalSteps())
	}
	if got := stats.Applications()[0]; got != 1 {
		t.Errorf("propagation applications = %d, want 1", got)
	}
	if !stats.HasProgress() {
		t.Error("expected HasProgress")
	}
}

func TestStepReturnsConsistencyError(t *testing.T) {
	solver := newFundamentalSolver()
	grid := NewTechniqueGrid()
	stats := solver.NewStats()

	for _, d := range puzzle.AllDigits {
		grid.RemoveCandidate(puzzle.Pos(0, 0), d)
	}

	_, err := solver.Step(&grid, stats)
	if !puzzle.IsConsistencyError(err) {
		t.Fatalf("step: got %v, want consistency error", err)
	}
}

func TestSolveEmptyGridGetsStuck(t *testing.T) {
	solver := newFundamentalSolver()
	grid := NewTechniqueGrid()

	solved, stats, err := solver.Solve(&grid)
	if err != nil {
		t.Fatalf("solve: %v", err)
	}
	if solved {
		t.Error("an unconstrained grid cannot be solved by deduction")
	}
	if stats.TotalSteps() != 0 {
		t.Errorf("total steps = %d, want 0", stats.TotalSteps())
	}
}

func TestSolveClassicPuzzle(t *testing.T) {
	solver := WithAllTechniques()
	grid := parseTechniqueGrid(t, classicPuzzle)

	solved, stats, err := solver.Solve(&grid)
	if err != nil {
		t.Fatalf("solve: %v", err)
	}
	if !solved {
		t.Fatal("expected the puzzle to be solved")
	}
	if !grid.IsSolved() {
		t.Error("grid is not solved")
	}
	if !stats.HasProgress() {
		t.Error("expected progress to be recorded")
	}
	sum := 0
	for _, n := range stats.Applications() {
		sum += n
	}
	if sum != stats.TotalSteps() {
		t.Errorf("applications sum to %d, total steps %d", sum, stats.TotalSteps())
	}
}

func TestSolveIsDeterministic(t *testing.T) {
	solver := WithAllTechniques()

	grid1 := parseTechniqueGrid(t, classicPuzzle)
	grid2 := parseTechniqueGrid(t, classicPuzzle)
	_, stats1, err1 := solver.Solve(&grid1)
	_, stats2, err2 := solver.Solve(&grid2)
	if err1 != nil || err2 != nil {
		t.Fatalf("solve: %v, %v", err1, err2)
	}
	if grid1.CandidateGrid != grid2.CandidateGrid {
		t.Error("two solves of the same puzzle diverged")
	}
	for i := range stats1.Applications() {
		if stats1.Applications()[i] != stats2.Applications()[i] {
			t.Errorf("application counts diverged at %d", i)
		}
	}
}

func TestFindStepReturnsEasiestStep(t *testing.T) {
	solver := WithAllTechniques()
	grid := parseTechniqueGrid(t, classicPuzzle)

	step, err := solver.FindStep(&grid)
	if err != nil {
		t.Fatalf("find step: %v", err)
	}
	if step == nil {
		t.Fatal("expected a step")
	}
	if got := step.TechniqueName(); got != "Propagation" {
		t.Errorf("first step technique = %q, want %q", got, "Propagation")
	}
}

func TestFindStepDoesNotMutate(t *testing.T) {
	solver := WithAllTechniques()
	grid := parseTechniqueGrid(t, classicPuzzle)
	before := grid

	if _, err := solver.FindStep(&grid); err != nil {
		t.Fatalf("find step: %v", err)
	}
	if grid != before {
		t.Error("find step mutated the grid")
	}
}

func TestFindStepReturnsNilWhenStuck(t *testing.T) {
	solver := newFundamentalSolver()
	grid := NewTechniqueGrid()

	step, err := solver.FindStep(&grid)
	if err != nil {
		t.Fatalf("find step: %v", err)
	}
	if step != nil {
		t.Errorf("expected no step, got %q", step.TechniqueName())
	}
}

func TestSolveWithStatsAccumulates(t *testing.T) {
	solver := newFundamentalSolver()
	stats := solver.NewStats()

	grid1 := NewTechniqueGrid()
	grid1.Place(puzzle.Pos(0, 0), 1)
	if _, err := solver.SolveWithStats(&grid1, stats); err != nil {
		t.Fatalf("first solve: %v", err)
	}
	first := stats.TotalSteps()
	if first == 0 {
		t.Fatal("expected the first solve to make progress")
	}

	grid2 := NewTechniqueGrid()
	grid2.Place(puzzle.Pos(1, 1), 2)
	if _, err := solver.SolveWithStats(&grid2, stats); err != nil {
		t.Fatalf("second solve: %v", err)
	}
	if stats.TotalSteps() <= first {
		t.Errorf("total steps = %d, want more than %d", stats.TotalSteps(), first)
	}
}

func TestNewStatsAlignment(t *testing.T) {
	solver := WithAllTechniques()
	stats := solver.NewStats()
	if len(stats.Applications()) != len(solver.Techniques()) {
		t.Errorf("stats length %d, techniques %d",
			len(stats.Applications()), len(solver.Techniques()))
	}
	if stats.HasProgress() {
		t.Error("fresh stats should report no progress")
	}
}
