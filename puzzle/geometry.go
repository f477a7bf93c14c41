package puzzle

/*

Grid geometry

This module has a single, fixed geometry: the classic 9x9 grid
whose houses are the nine rows, nine columns, and nine 3x3
boxes.  Cells are indexed 0 through 80 in reading order, so the
cell at column x and row y has index y*9 + x.  Everything else
in the package is built on the tables computed here: the cell
sets of each house and the peers of each cell.

*/

const (
	// SideLen is the number of cells on a side of the grid.
	SideLen = 9
	// BoxLen is the number of cells on a side of a box.
	BoxLen = 3
	// CellCount is the total number of cells in the grid.
	CellCount = SideLen * SideLen
	// HouseCount is the total number of houses in the grid.
	HouseCount = 3 * SideLen
)

/*

Digits

*/

// A Digit is a puzzle value 1 through 9.  The zero value marks
// an empty cell in a DigitGrid.
type Digit int

// Valid reports whether d is a placeable digit.
func (d Digit) Valid() bool {
	return d >= 1 && d <= SideLen
}

// bit gives the digit's bit in a DigitSet.
func (d Digit) bit() uint16 {
	return 1 << uint(d-1)
}

// AllDigits lists the digits in ascending order.
var AllDigits = [SideLen]Digit{1, 2, 3, 4, 5, 6, 7, 8, 9}

/*

Positions

*/

// A Position names a cell by its column x and row y, both 0
// through 8.
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Pos is shorthand for constructing a Position.
func Pos(x, y int) Position {
	return Position{X: x, Y: y}
}

// PositionAtIndex returns the cell with the given reading-order
// index.
func PositionAtIndex(i int) Position {
	return Position{X: i % SideLen, Y: i / SideLen}
}

// Index gives the cell's reading-order index.
func (p Position) Index() int {
	return p.Y*SideLen + p.X
}

// Valid reports whether the position is on the grid.
func (p Position) Valid() bool {
	return p.X >= 0 && p.X < SideLen && p.Y >= 0 && p.Y < SideLen
}

// BoxIndex gives the index of the box containing the cell.
// Boxes are numbered 0 through 8 in reading order.
func (p Position) BoxIndex() int {
	return (p.Y/BoxLen)*BoxLen + p.X/BoxLen
}

// HousePeers returns the 20 cells that share a row, column, or
// box with the cell, not including the cell itself.
func (p Position) HousePeers() DigitPositions {
	return peerPositions[p.Index()]
}

// String names the cell in the row-letter, column-number form
// used by the pretty printers, e.g. "a1" for the top-left cell.
func (p Position) String() string {
	return string(rune('a'+p.Y)) + string(rune('1'+p.X))
}

/*

Houses

*/

// A HouseKind distinguishes rows, columns, and boxes.
type HouseKind int

// Constants for the house kinds, in house iteration order.
const (
	RowKind HouseKind = iota
	ColumnKind
	BoxKind
)

// A House is one of the 27 cell groups that must contain each
// digit exactly once: a row, a column, or a box, identified by
// its kind and its 0-based index.
type House struct {
	Kind  HouseKind `json:"kind"`
	Index int       `json:"index"`
}

// Row returns the house for row y.
func Row(y int) House {
	return House{Kind: RowKind, Index: y}
}

// Column returns the house for column x.
func Column(x int) House {
	return House{Kind: ColumnKind, Index: x}
}

// Box returns the house for box b.
func Box(b int) House {
	return House{Kind: BoxKind, Index: b}
}

// AllHouses lists the 27 houses in the fixed iteration order
// every technique uses: rows 0-8, then columns 0-8, then boxes
// 0-8.
var AllHouses [HouseCount]House

// boxOrigin gives the top-left cell of box b.
func boxOrigin(b int) Position {
	return Position{X: (b % BoxLen) * BoxLen, Y: (b / BoxLen) * BoxLen}
}

// Positions returns the house's cell set.
func (h House) Positions() DigitPositions {
	switch h.Kind {
	case RowKind:
		return rowPositions[h.Index]
	case ColumnKind:
		return colPositions[h.Index]
	default:
		return boxPositions[h.Index]
	}
}

// PositionAt returns the i-th cell of the house, for i 0
// through 8.  Rows run left to right, columns top to bottom,
// and boxes in reading order.
func (h House) PositionAt(i int) Position {
	switch h.Kind {
	case RowKind:
		return Position{X: i, Y: h.Index}
	case ColumnKind:
		return Position{X: h.Index, Y: i}
	default:
		origin := boxOrigin(h.Index)
		return Position{X: origin.X + i%BoxLen, Y: origin.Y + i/BoxLen}
	}
}

// String names the house for error messages and step
// descriptions, with 1-based indices to match the printed grid.
func (h House) String() string {
	switch h.Kind {
	case RowKind:
		return "row " + vstr(h.Index+1)
	case ColumnKind:
		return "column " + vstr(h.Index+1)
	default:
		return "box " + vstr(h.Index+1)
	}
}

/*

Precomputed position tables

*/

var (
	// rowPositions[y] is the cell set of row y.
	rowPositions [SideLen]DigitPositions
	// colPositions[x] is the cell set of column x.
	colPositions [SideLen]DigitPositions
	// boxPositions[b] is the cell set of box b.
	boxPositions [SideLen]DigitPositions
	// peerPositions[i] is the peer set of the cell at index i.
	peerPositions [CellCount]DigitPositions
)

// RowPositions returns the cell set of row y.
func RowPositions(y int) DigitPositions {
	return rowPositions[y]
}

// ColPositions returns the cell set of column x.
func ColPositions(x int) DigitPositions {
	return colPositions[x]
}

// BoxPositions returns the cell set of box b.
func BoxPositions(b int) DigitPositions {
	return boxPositions[b]
}

func init() {
	for i := 0; i < CellCount; i++ {
		p := PositionAtIndex(i)
		rowPositions[p.Y].Add(p)
		colPositions[p.X].Add(p)
		boxPositions[p.BoxIndex()].Add(p)
	}
	for i := 0; i < CellCount; i++ {
		p := PositionAtIndex(i)
		peers := rowPositions[p.Y].Or(colPositions[p.X]).Or(boxPositions[p.BoxIndex()])
		peers.Remove(p)
		peerPositions[i] = peers
	}
	for i := 0; i < SideLen; i++ {
		AllHouses[i] = Row(i)
		AllHouses[SideLen+i] = Column(i)
		AllHouses[2*SideLen+i] = Box(i)
	}
}
