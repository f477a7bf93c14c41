package puzzle

import (
	"math/bits"
)

/*

Bit-set foundation

All of the candidate bookkeeping in this package is done with
fixed-width bit sets.  A DigitSet holds the nine digits in the
low nine bits of a uint16.  A HouseMask holds the nine cell
slots of a single house the same way.  A DigitPositions holds
the 81 cells of the whole grid in two uint64 words.

Every set iterates in ascending bit order, and every mutator
reports whether it changed the set.  Techniques rely on both
properties: ascending iteration makes deductions deterministic,
and change reporting is how a technique knows it made progress.

*/

const (
	digitSetAll  = uint16(1)<<9 - 1
	loPositions  = 64
	allPositions = 81
)

/*

DigitSet

*/

// A DigitSet is a set of digits 1 through 9.  Digit d occupies
// bit d-1.  The zero value is the empty set.
type DigitSet uint16

// DigitSetFull contains all nine digits.
const DigitSetFull DigitSet = DigitSet(digitSetAll)

// NewDigitSet returns the set of the given digits.
func NewDigitSet(digits ...Digit) DigitSet {
	var s DigitSet
	for _, d := range digits {
		s.Add(d)
	}
	return s
}

// Has reports whether the set contains d.
func (s DigitSet) Has(d Digit) bool {
	return s&DigitSet(d.bit()) != 0
}

// Add puts d in the set, reporting whether the set changed.
func (s *DigitSet) Add(d Digit) bool {
	old := *s
	*s |= DigitSet(d.bit())
	return *s != old
}

// Remove takes d out of the set, reporting whether the set changed.
func (s *DigitSet) Remove(d Digit) bool {
	old := *s
	*s &^= DigitSet(d.bit())
	return *s != old
}

// Len counts the digits in the set.
func (s DigitSet) Len() int {
	return bits.OnesCount16(uint16(s))
}

// IsEmpty reports whether the set has no digits.
func (s DigitSet) IsEmpty() bool {
	return s == 0
}

// Complement returns the digits not in the set.
func (s DigitSet) Complement() DigitSet {
	return ^s & DigitSetFull
}

// IsSubset reports whether every digit in the set is also in t.
func (s DigitSet) IsSubset(t DigitSet) bool {
	return s&^t == 0
}

// First returns the smallest digit in the set, or false if the
// set is empty.
func (s DigitSet) First() (Digit, bool) {
	if s == 0 {
		return 0, false
	}
	return Digit(bits.TrailingZeros16(uint16(s)) + 1), true
}

// PopFirst removes and returns the smallest digit in the set.
// Repeated PopFirst calls visit the digits in ascending order.
func (s *DigitSet) PopFirst() (Digit, bool) {
	d, ok := s.First()
	if ok {
		s.Remove(d)
	}
	return d, ok
}

// Single returns the set's only digit, or false if the set does
// not have exactly one digit.
func (s DigitSet) Single() (Digit, bool) {
	if s.Len() != 1 {
		return 0, false
	}
	d, _ := s.First()
	return d, true
}

// Double returns the set's two digits in ascending order, or
// false if the set does not have exactly two digits.
func (s DigitSet) Double() (Digit, Digit, bool) {
	if s.Len() != 2 {
		return 0, 0, false
	}
	rest := s
	d1, _ := rest.PopFirst()
	d2, _ := rest.PopFirst()
	return d1, d2, true
}

// Digits returns the digits in the set in ascending order.
func (s DigitSet) Digits() []Digit {
	result := make([]Digit, 0, s.Len())
	for rest := s; ; {
		d, ok := rest.PopFirst()
		if !ok {
			break
		}
		result = append(result, d)
	}
	return result
}

// String gives the set in the form "{1 4 9}".
func (s DigitSet) String() string {
	result := "{"
	for rest := s; ; {
		d, ok := rest.PopFirst()
		if !ok {
			break
		}
		if len(result) > 1 {
			result += " "
		}
		result += vstr(int(d))
	}
	return result + "}"
}

/*

HouseMask

*/

// A HouseMask is a set of cell slots 0 through 8 within a
// single house.  The zero value is the empty mask.
type HouseMask uint16

// HouseMaskFull contains all nine slots.
const HouseMaskFull HouseMask = HouseMask(digitSetAll)

// Has reports whether slot i is in the mask.
func (m HouseMask) Has(i int) bool {
	return m&(1<<uint(i)) != 0
}

// Len counts the slots in the mask.
func (m HouseMask) Len() int {
	return bits.OnesCount16(uint16(m))
}

// IsEmpty reports whether the mask has no slots.
func (m HouseMask) IsEmpty() bool {
	return m == 0
}

// First returns the smallest slot in the mask, or false if the
// mask is empty.
func (m HouseMask) First() (int, bool) {
	if m == 0 {
		return 0, false
	}
	return bits.TrailingZeros16(uint16(m)), true
}

// PopFirst removes and returns the smallest slot in the mask.
func (m *HouseMask) PopFirst() (int, bool) {
	i, ok := m.First()
	if ok {
		*m &^= 1 << uint(i)
	}
	return i, ok
}

// Single returns the mask's only slot, or false if the mask
// does not have exactly one slot.
func (m HouseMask) Single() (int, bool) {
	if m.Len() != 1 {
		return 0, false
	}
	i, _ := m.First()
	return i, true
}

// Double returns the mask's two slots in ascending order, or
// false if the mask does not have exactly two slots.
func (m HouseMask) Double() (int, int, bool) {
	if m.Len() != 2 {
		return 0, 0, false
	}
	rest := m
	i1, _ := rest.PopFirst()
	i2, _ := rest.PopFirst()
	return i1, i2, true
}

/*

DigitPositions

*/

// A DigitPositions is a set of grid cells.  The cell at (x, y)
// occupies bit y*9+x, with bits 0-63 in the first word and bits
// 64-80 in the second.  The zero value is the empty set, and ==
// compares sets for equality.
type DigitPositions [2]uint64

// AllPositions contains all 81 cells.
var AllPositions = DigitPositions{^uint64(0), uint64(1)<<(allPositions-loPositions) - 1}

// NewDigitPositions returns the set of the given positions.
func NewDigitPositions(positions ...Position) DigitPositions {
	var s DigitPositions
	for _, p := range positions {
		s.Add(p)
	}
	return s
}

func positionBit(p Position) (int, uint64) {
	i := p.Index()
	if i < loPositions {
		return 0, uint64(1) << uint(i)
	}
	return 1, uint64(1) << uint(i-loPositions)
}

// Has reports whether the set contains p.
func (s DigitPositions) Has(p Position) bool {
	w, b := positionBit(p)
	return s[w]&b != 0
}

// Add puts p in the set, reporting whether the set changed.
func (s *DigitPositions) Add(p Position) bool {
	w, b := positionBit(p)
	old := s[w]
	s[w] |= b
	return s[w] != old
}

// Remove takes p out of the set, reporting whether the set changed.
func (s *DigitPositions) Remove(p Position) bool {
	w, b := positionBit(p)
	old := s[w]
	s[w] &^= b
	return s[w] != old
}

// Len counts the cells in the set.
func (s DigitPositions) Len() int {
	return bits.OnesCount64(s[0]) + bits.OnesCount64(s[1])
}

// IsEmpty reports whether the set has no cells.
func (s DigitPositions) IsEmpty() bool {
	return s == DigitPositions{}
}

// And returns the intersection of the set with t.
func (s DigitPositions) And(t DigitPositions) DigitPositions {
	return DigitPositions{s[0] & t[0], s[1] & t[1]}
}

// Or returns the union of the set with t.
func (s DigitPositions) Or(t DigitPositions) DigitPositions {
	return DigitPositions{s[0] | t[0], s[1] | t[1]}
}

// AndNot returns the cells in the set that are not in t.
func (s DigitPositions) AndNot(t DigitPositions) DigitPositions {
	return DigitPositions{s[0] &^ t[0], s[1] &^ t[1]}
}

// Not returns the cells not in the set.
func (s DigitPositions) Not() DigitPositions {
	return DigitPositions{^s[0], ^s[1] & AllPositions[1]}
}

// IsSubset reports whether every cell in the set is also in t.
func (s DigitPositions) IsSubset(t DigitPositions) bool {
	return s.AndNot(t).IsEmpty()
}

// First returns the cell with the smallest index in the set, or
// false if the set is empty.
func (s DigitPositions) First() (Position, bool) {
	if s[0] != 0 {
		return PositionAtIndex(bits.TrailingZeros64(s[0])), true
	}
	if s[1] != 0 {
		return PositionAtIndex(bits.TrailingZeros64(s[1]) + loPositions), true
	}
	return Position{}, false
}

// PopFirst removes and returns the cell with the smallest index
// in the set.  Repeated PopFirst calls visit the cells in
// ascending index order.
func (s *DigitPositions) PopFirst() (Position, bool) {
	p, ok := s.First()
	if ok {
		s.Remove(p)
	}
	return p, ok
}

// Single returns the set's only cell, or false if the set does
// not have exactly one cell.
func (s DigitPositions) Single() (Position, bool) {
	if s.Len() != 1 {
		return Position{}, false
	}
	p, _ := s.First()
	return p, true
}

// Double returns the set's two cells in ascending index order,
// or false if the set does not have exactly two cells.
func (s DigitPositions) Double() (Position, Position, bool) {
	if s.Len() != 2 {
		return Position{}, Position{}, false
	}
	rest := s
	p1, _ := rest.PopFirst()
	p2, _ := rest.PopFirst()
	return p1, p2, true
}

// Positions returns the cells in the set in ascending index order.
func (s DigitPositions) Positions() []Position {
	result := make([]Position, 0, s.Len())
	for rest := s; ; {
		p, ok := rest.PopFirst()
		if !ok {
			break
		}
		result = append(result, p)
	}
	return result
}

// String gives the set as a list of cell names.
func (s DigitPositions) String() string {
	result := "{"
	for rest := s; ; {
		p, ok := rest.PopFirst()
		if !ok {
			break
		}
		if len(result) > 1 {
			result += " "
		}
		result += p.String()
	}
	return result + "}"
}
