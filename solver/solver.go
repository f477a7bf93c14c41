package solver

/*

Technique solver

The solver drives the techniques: it tries each one in order
and stops at the first that makes progress, so a full solve is
a sequence of easiest-possible deductions.  The caller decides
whether to take one step, find a hint, or run to completion.

*/

// SolverStats records which techniques a solve applied and how
// often.  The counts are indexed in the solver's technique
// order; use the solver's Techniques method to map indexes to
// techniques.
type SolverStats struct {
	applications []int
	totalSteps   int
}

// Applications returns the per-technique application counts in
// solver order.  Techniques that were never applied count 0.
func (s *SolverStats) Applications() []int {
	return s.applications
}

// TotalSteps returns the total number of solving steps taken,
// which is the sum of all technique applications.
func (s *SolverStats) TotalSteps() int {
	return s.totalSteps
}

// HasProgress reports whether any technique was applied at
// least once.
func (s *SolverStats) HasProgress() bool {
	return s.totalSteps > 0
}

// A TechniqueSolver applies deduction techniques to a grid.
// Each step tries the techniques in order and applies the first
// that makes progress, then starts over from the first, so
// easier deductions are always preferred.
type TechniqueSolver struct {
	techniques []Technique
}

// NewTechniqueSolver returns a solver using the given
// techniques, tried in the order given.
func NewTechniqueSolver(techniques []Technique) *TechniqueSolver {
	return &TechniqueSolver{techniques: techniques}
}

// WithAllTechniques returns a solver using the full technique
// list, ordered easiest to hardest.
func WithAllTechniques() *TechniqueSolver {
	return NewTechniqueSolver(AllTechniques())
}

// NewStats returns a zeroed statistics object aligned with the
// solver's technique order.
func (s *TechniqueSolver) NewStats() *SolverStats {
	return &SolverStats{applications: make([]int, len(s.techniques))}
}

// Techniques returns the configured techniques in application
// order.  The slice defines the index mapping used by
// SolverStats.Applications.
func (s *TechniqueSolver) Techniques() []Technique {
	return s.techniques
}

// Step tries each technique in order and applies the first that
// makes progress, recording it in stats.  It reports false when
// no technique can help.  A consistency violation, found before
// or after the application, is returned as an error.
func (s *TechniqueSolver) Step(grid *TechniqueGrid, stats *SolverStats) (bool, error) {
	if err := grid.CheckConsistency(); err != nil {
		return false, err
	}
	for i, technique := range s.techniques {
		changed, err := technique.Apply(grid)
		if err != nil {
			return false, err
		}
		if changed {
			stats.applications[i]++
			stats.totalSteps++
			if err := grid.CheckConsistency(); err != nil {
				return false, err
			}
			return true, nil
		}
	}
	return false, nil
}

// FindStep returns the step the solver would take next, without
// mutating the grid, or nil when no technique can provide one.
func (s *TechniqueSolver) FindStep(grid *TechniqueGrid) (TechniqueStep, error) {
	if err := grid.CheckConsistency(); err != nil {
		return nil, err
	}
	for _, technique := range s.techniques {
		step, err := technique.FindStep(grid)
		if err != nil {
			return nil, err
		}
		if step != nil {
			return step, nil
		}
	}
	return nil, nil
}

// Solve steps until the grid is solved or no technique makes
// progress, reporting whether the grid ended up solved along
// with fresh statistics.
func (s *TechniqueSolver) Solve(grid *TechniqueGrid) (bool, *SolverStats, error) {
	stats := s.NewStats()
	solved, err := s.SolveWithStats(grid, stats)
	return solved, stats, err
}

// SolveWithStats is Solve accumulating into an existing
// statistics object, so counts can span several solves.
func (s *TechniqueSolver) SolveWithStats(grid *TechniqueGrid, stats *SolverStats) (bool, error) {
	for {
		progressed, err := s.Step(grid, stats)
		if err != nil {
			return false, err
		}
		if !progressed {
			return grid.IsSolved(), nil
		}
		if grid.IsSolved() {
			return true, nil
		}
	}
}
