// numelace - a bitboard engine for human-style Sudoku deduction.
// Copyright (C) 2026 the numelace authors.
//
// This program is free software; you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation; either version 2 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License along
// with this program; if not, write to the Free Software Foundation, Inc.,
// 51 Franklin Street, Fifth Floor, Boston, MA 02110-1301 USA.

package puzzle

import (
	"fmt"
)

/*

Print forms of digits

*/

var (
	valueStrings = []string{
		" ", "1", "2", "3", "4", "5", "6", "7", "8", "9",
	}
	nonValueString = "?"
	bigValueString = "!"
)

func vstr(i int) string {
	if i < 0 {
		return nonValueString
	}
	if i < len(valueStrings) {
		return valueStrings[i]
	}
	return bigValueString
}

/*

Pretty-printed grids in strings, for debugging.

*/

// String gives the grid in its parse format: nine rows of nine
// cells, with `_` for empty cells and a blank between boxes.
func (g *DigitGrid) String() (result string) {
	if g == nil {
		return
	}
	for y := 0; y < SideLen; y++ {
		if y > 0 && y%BoxLen == 0 {
			result += "\n"
		}
		for x := 0; x < SideLen; x++ {
			if x > 0 && x%BoxLen == 0 {
				result += " "
			}
			if d := g.Get(Pos(x, y)); d != 0 {
				result += vstr(int(d))
			} else {
				result += "_"
			}
		}
		result += "\n"
	}
	return
}

// String gives a pretty-printed view of the candidate grid.
func (g *CandidateGrid) String() string {
	return g.ValuesString(true)
}

// ValuesString returns a pretty-printed grid of the decided
// values.  If showCounts is specified, undecided cells show
// their candidate counts.
func (g *CandidateGrid) ValuesString(showCounts bool) (result string) {
	if g == nil {
		return
	}
	// first put out the header
	result += " "
	for x := 0; x < SideLen; x++ {
		if x%BoxLen != 0 {
			result += " "
		} else {
			result += "|"
		}
		result += fmt.Sprintf("%2d ", x+1)
	}
	result += "\n"
	// next are the rows, including the separator at the top
	for y, rowhdr := 0, 'a'; y < SideLen; y, rowhdr = y+1, rowhdr+1 {
		if y%BoxLen == 0 {
			result += " "
			for x := 0; x < SideLen; x++ {
				result += "+---"
			}
			result += "\n"
		}
		result += string(rowhdr)
		for x := 0; x < SideLen; x++ {
			if x%BoxLen != 0 {
				result += " "
			} else {
				result += "|"
			}
			candidates := g.CandidatesAt(Pos(x, y))
			if d, ok := candidates.Single(); ok {
				result += fmt.Sprintf(" %s ", vstr(int(d)))
			} else if showCounts {
				result += fmt.Sprintf("%d? ", candidates.Len())
			} else {
				result += "   "
			}
		}
		result += "\n"
	}
	return
}

// CandidatesString lists the undecided cells and their
// remaining candidates, one cell per line.
func (g *CandidateGrid) CandidatesString() (result string) {
	if g == nil {
		return
	}
	for i := 0; i < CellCount; i++ {
		p := PositionAtIndex(i)
		candidates := g.CandidatesAt(p)
		if _, ok := candidates.Single(); ok {
			continue
		}
		result += fmt.Sprintf("%v: %v\n", p, candidates)
	}
	return
}
