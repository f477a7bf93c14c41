package solver

import (
	"github.com/gifnksm/numelace-sub000/puzzle"
)

/*

Technique steps

A step is the explainable form of one technique application:
the cells and digits that justify the deduction, and the
concrete changes it makes.  A hint system can show the
condition cells first, then the condition digits, then the
technique name, and finally apply the changes; replaying the
applications of a step must reproduce exactly the change the
technique's Apply would have made first.

*/

// An ApplicationKind distinguishes the two change forms.
type ApplicationKind int

// Constants for the application kinds.
const (
	// PlacementApplication decides a single cell.
	PlacementApplication ApplicationKind = iota
	// EliminationApplication removes candidates from cells.
	EliminationApplication
)

// A TechniqueApplication is one concrete change produced by
// applying a technique: either a placement of a digit in a
// cell, or an elimination of candidate digits from a set of
// cells.
type TechniqueApplication struct {
	Kind      ApplicationKind       `json:"kind"`
	Position  puzzle.Position       `json:"position,omitempty"`  // placement target
	Digit     puzzle.Digit          `json:"digit,omitempty"`     // placement digit
	Positions puzzle.DigitPositions `json:"positions,omitempty"` // elimination cells
	Digits    puzzle.DigitSet       `json:"digits,omitempty"`    // elimination digits
}

// Placement returns a placement application.
func Placement(p puzzle.Position, d puzzle.Digit) TechniqueApplication {
	return TechniqueApplication{Kind: PlacementApplication, Position: p, Digit: d}
}

// Elimination returns a candidate-elimination application.
func Elimination(positions puzzle.DigitPositions, digits puzzle.DigitSet) TechniqueApplication {
	return TechniqueApplication{Kind: EliminationApplication, Positions: positions, Digits: digits}
}

// DigitCells pairs a set of cells with the digits that matter
// there.  Steps use it to describe their conditions.
type DigitCells struct {
	Positions puzzle.DigitPositions `json:"positions"`
	Digits    puzzle.DigitSet       `json:"digits"`
}

// A TechniqueStep is a hint step produced by a technique.
type TechniqueStep interface {
	// TechniqueName names the technique that produced the step.
	TechniqueName() string
	// ConditionCells returns the cells that justify applying
	// the technique.
	ConditionCells() puzzle.DigitPositions
	// ConditionDigitCells returns (cells, digits) pairs that
	// spell out the technique's conditions in more detail.
	ConditionDigitCells() []DigitCells
	// Applications returns the concrete changes of the step.
	Applications() []TechniqueApplication
}

// StepData is the shared step value used by techniques without
// step-specific payloads.
type StepData struct {
	name                string
	conditionCells      puzzle.DigitPositions
	conditionDigitCells []DigitCells
	applications        []TechniqueApplication
}

// NewStepData builds a step from its parts.
func NewStepData(name string, cells puzzle.DigitPositions, digitCells []DigitCells, applications []TechniqueApplication) *StepData {
	return &StepData{
		name:                name,
		conditionCells:      cells,
		conditionDigitCells: digitCells,
		applications:        applications,
	}
}

// stepFromDiff builds a step whose applications are derived by
// diffing each digit's positions between two grids, in
// ascending digit order.  Any extra applications (such as the
// placement behind the diff) are appended after the derived
// eliminations.
func stepFromDiff(name string, cells puzzle.DigitPositions, digitCells []DigitCells, before, after *TechniqueGrid, extra ...TechniqueApplication) *StepData {
	applications := applicationsFromDiff(before, after)
	applications = append(applications, extra...)
	return NewStepData(name, cells, digitCells, applications)
}

func applicationsFromDiff(before, after *TechniqueGrid) []TechniqueApplication {
	var applications []TechniqueApplication
	for _, d := range puzzle.AllDigits {
		diff := before.DigitPositions(d).AndNot(after.DigitPositions(d))
		if !diff.IsEmpty() {
			applications = append(applications, Elimination(diff, puzzle.NewDigitSet(d)))
		}
	}
	return applications
}

// TechniqueName returns the name of the producing technique.
func (s *StepData) TechniqueName() string {
	return s.name
}

// ConditionCells returns the cells involved in the conditions.
func (s *StepData) ConditionCells() puzzle.DigitPositions {
	return s.conditionCells
}

// ConditionDigitCells returns the (cells, digits) condition pairs.
func (s *StepData) ConditionDigitCells() []DigitCells {
	return s.conditionDigitCells
}

// Applications returns the concrete changes of the step.
func (s *StepData) Applications() []TechniqueApplication {
	return s.applications
}
