package solver

import (
	"testing"

	"github.com/gifnksm/numelace-sub000/puzzle"
)

func TestSkyscraperEliminatesInColumns(t *testing.T) {
	grid := puzzle.NewCandidateGrid()
	col1, col2 := 1, 7
	baseRow := 0
	col1RoofRow := 3
	col2RoofRow := 4

	for row := 0; row < puzzle.SideLen; row++ {
		if row != baseRow && row != col1RoofRow {
			grid.RemoveCandidate(puzzle.Pos(col1, row), 1)
		}
	}
	for row := 0; row < puzzle.SideLen; row++ {
		if row != baseRow && row != col2RoofRow {
			grid.RemoveCandidate(puzzle.Pos(col2, row), 1)
		}
	}

	newTester(t, grid).
		applyOnce(Skyscraper{}).
		assertRemovedIncludes(puzzle.Pos(0, 4), 1).
		assertRemovedIncludes(puzzle.Pos(8, 3), 1)
}

func TestSkyscraperEliminatesInRows(t *testing.T) {
	grid := puzzle.NewCandidateGrid()
	row1, row2 := 0, 4
	baseCol := 0
	row1RoofCol := 3
	row2RoofCol := 4

	for col := 0; col < puzzle.SideLen; col++ {
		if col != baseCol && col != row1RoofCol {
			grid.RemoveCandidate(puzzle.Pos(col, row1), 1)
		}
	}
	for col := 0; col < puzzle.SideLen; col++ {
		if col != baseCol && col != row2RoofCol {
			grid.RemoveCandidate(puzzle.Pos(col, row2), 1)
		}
	}

	newTester(t, grid).
		applyOnce(Skyscraper{}).
		assertRemovedIncludes(puzzle.Pos(4, 1), 1).
		assertRemovedIncludes(puzzle.Pos(3, 5), 1)
}

func TestSkyscraperNoChangeOnFreshGrid(t *testing.T) {
	newTester(t, puzzle.NewCandidateGrid()).
		applyOnce(Skyscraper{}).
		assertNoChange(puzzle.Pos(0, 0)).
		assertNoChange(puzzle.Pos(4, 4))
}
