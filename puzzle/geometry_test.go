package puzzle

import (
	"testing"
)

func TestPositionIndexRoundTrip(t *testing.T) {
	for i := 0; i < CellCount; i++ {
		p := PositionAtIndex(i)
		if p.Index() != i {
			t.Errorf("index %d: round trip gave %d", i, p.Index())
		}
		if !p.Valid() {
			t.Errorf("index %d: position %v not valid", i, p)
		}
	}
}

func TestBoxIndex(t *testing.T) {
	cases := []struct {
		pos Position
		box int
	}{
		{Pos(0, 0), 0},
		{Pos(2, 2), 0},
		{Pos(3, 0), 1},
		{Pos(8, 0), 2},
		{Pos(0, 3), 3},
		{Pos(4, 4), 4},
		{Pos(8, 8), 8},
	}
	for _, c := range cases {
		if got := c.pos.BoxIndex(); got != c.box {
			t.Errorf("BoxIndex(%v): got %d, want %d", c.pos, got, c.box)
		}
	}
}

func TestHousePositions(t *testing.T) {
	for _, h := range AllHouses {
		hp := h.Positions()
		if hp.Len() != SideLen {
			t.Errorf("%v has %d cells", h, hp.Len())
		}
		for i := 0; i < SideLen; i++ {
			if !hp.Has(h.PositionAt(i)) {
				t.Errorf("%v: PositionAt(%d) = %v not in house set", h, i, h.PositionAt(i))
			}
		}
	}
}

func TestHouseOrder(t *testing.T) {
	// Rows first, then columns, then boxes; each 0 through 8.
	for i, h := range AllHouses {
		var want House
		switch {
		case i < 9:
			want = Row(i)
		case i < 18:
			want = Column(i - 9)
		default:
			want = Box(i - 18)
		}
		if h != want {
			t.Errorf("AllHouses[%d]: got %v, want %v", i, h, want)
		}
	}
}

func TestHousesCoverGrid(t *testing.T) {
	var rows, cols, boxes DigitPositions
	for _, h := range AllHouses {
		switch h.Kind {
		case RowKind:
			rows = rows.Or(h.Positions())
		case ColumnKind:
			cols = cols.Or(h.Positions())
		case BoxKind:
			boxes = boxes.Or(h.Positions())
		}
	}
	for _, cover := range []DigitPositions{rows, cols, boxes} {
		if cover != AllPositions {
			t.Errorf("house kind does not cover the grid: %v", cover)
		}
	}
}

func TestHousePeers(t *testing.T) {
	for i := 0; i < CellCount; i++ {
		p := PositionAtIndex(i)
		peers := p.HousePeers()
		if peers.Len() != 20 {
			t.Errorf("%v has %d peers", p, peers.Len())
		}
		if peers.Has(p) {
			t.Errorf("%v is its own peer", p)
		}
	}
	// Spot check: peers of the top-left cell.
	peers := Pos(0, 0).HousePeers()
	for _, p := range []Position{Pos(8, 0), Pos(0, 8), Pos(2, 2)} {
		if !peers.Has(p) {
			t.Errorf("peers of a1 missing %v", p)
		}
	}
	if peers.Has(Pos(3, 3)) {
		t.Errorf("peers of a1 include d4")
	}
}

func TestPositionString(t *testing.T) {
	cases := []struct {
		pos  Position
		want string
	}{
		{Pos(0, 0), "a1"},
		{Pos(8, 0), "a9"},
		{Pos(0, 8), "i1"},
		{Pos(4, 4), "e5"},
	}
	for _, c := range cases {
		if got := c.pos.String(); got != c.want {
			t.Errorf("String(%v): got %q, want %q", c.pos, got, c.want)
		}
	}
}
