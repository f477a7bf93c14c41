package puzzle

/*

Digit grids

A DigitGrid is the plain, decided-values view of a puzzle: 81
digits in reading order, zero for empty.  It is the entry and
exit format of the engine.  Givens come in as a DigitGrid, get
expanded into a CandidateGrid for deduction, and a solved
CandidateGrid collapses back to a DigitGrid.

*/

// A DigitGrid holds the 81 cell values of a puzzle in reading
// order, with 0 marking an empty cell.
type DigitGrid [CellCount]Digit

// ParseDigitGrid reads a grid from the conventional puzzle
// string format: the digits 1 through 9 for filled cells, any
// of '.', '_', or '0' for empty cells, with all whitespace
// ignored.  The string must contain exactly 81 cells.
func ParseDigitGrid(s string) (*DigitGrid, error) {
	var g DigitGrid
	count := 0
	for _, r := range s {
		switch {
		case r >= '1' && r <= '9':
			if count >= CellCount {
				count++
				continue
			}
			g[count] = Digit(r - '0')
			count++
		case r == '.' || r == '_' || r == '0':
			count++
		case r == ' ' || r == '\t' || r == '\n' || r == '\r' || r == '|' || r == '+' || r == '-':
			// layout characters, ignored
		default:
			return nil, Error{
				Scope:     ArgumentScope,
				Structure: AttributeValueStructure,
				Attribute: GridStringAttribute,
				Condition: GeneralCondition,
				Values:    ErrorData{string(r), "Unexpected character"},
			}
		}
	}
	if count != CellCount {
		return nil, Error{
			Scope:     ArgumentScope,
			Structure: AttributeStructure,
			Attribute: GridSizeAttribute,
			Condition: WrongGridSizeCondition,
			Values:    ErrorData{count},
		}
	}
	return &g, nil
}

// Get returns the digit at p, 0 if the cell is empty.
func (g *DigitGrid) Get(p Position) Digit {
	return g[p.Index()]
}

// Set assigns the digit at p.  A zero digit empties the cell.
func (g *DigitGrid) Set(p Position, d Digit) error {
	if !p.Valid() {
		return Error{
			Scope:     ArgumentScope,
			Structure: AttributeValueStructure,
			Attribute: PositionAttribute,
			Condition: InvalidArgumentCondition,
			Values:    ErrorData{p},
		}
	}
	if d != 0 && !d.Valid() {
		return Error{
			Scope:     ArgumentScope,
			Structure: AttributeValueStructure,
			Attribute: DigitAttribute,
			Condition: NotInSetCondition,
			Values:    ErrorData{int(d), AllDigits},
		}
	}
	g[p.Index()] = d
	return nil
}

// DecidedCount counts the filled cells.
func (g *DigitGrid) DecidedCount() int {
	count := 0
	for _, d := range g {
		if d != 0 {
			count++
		}
	}
	return count
}

// Candidates expands the grid into a CandidateGrid.  Every
// given becomes a singleton cell; no peer elimination is done
// here, that is the propagation technique's job.
func (g *DigitGrid) Candidates() CandidateGrid {
	cg := NewCandidateGrid()
	for i, d := range g {
		if d != 0 {
			cg.Place(PositionAtIndex(i), d)
		}
	}
	return cg
}
