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

Errors

*/

// An Error describes a problem with a grid or a requested
// operation.  It can produce an error message in English, but
// its main function is to let callers dispatch on structured
// codes instead of matching message strings.  It tells the
// caller "this thing failed to meet this condition", and
// provides supplemental details about the thing and the
// condition.
type Error struct {
	Scope     ErrorScope     `json:"scope"`
	Structure ErrorStructure `json:"structure,omitempty"`
	Condition ErrorCondition `json:"condition,omitempty"`
	Attribute ErrorAttribute `json:"attribute,omitempty"`
	Values    ErrorData      `json:"values,omitempty"`
	Message   string         `json:"message,omitempty"` // custom message
}

// An ErrorScope explains what type of thing the error is
// referring to: a caller-supplied argument, a cell or house of
// the grid, the grid as a whole, or a failure of internal
// logic.
type ErrorScope int

// Constants for the various error scopes.
const (
	UnknownScope ErrorScope = iota
	ArgumentScope
	CellScope
	HouseScope
	GridScope
	InternalScope
	MaxScope
)

// The ErrorStructure denotes whether the problem is in the
// overall Scope, an Attribute of the Scope, or the value of an
// Attribute of the Scope.
type ErrorStructure int

// Constants for the various structure codes.
const (
	UnknownStructure ErrorStructure = iota
	ScopeStructure
	AttributeStructure
	AttributeValueStructure
	MaxStructure
)

// The ErrorCondition is the predicate that the
// scope/attribute/value failed to satisfy.  There are a few
// known, named predicates and then a "general" (arbitrary
// English string) predicate for runtime errors.
type ErrorCondition int

// Constants for the various error conditions.
const (
	UnknownCondition ErrorCondition = iota
	GeneralCondition
	TooLargeCondition
	TooSmallCondition
	NotInSetCondition
	WrongGridSizeCondition
	InvalidArgumentCondition
	CandidateConstraintViolationCondition
	MaxCondition
)

// An ErrorAttribute names the attribute that has a problem.
type ErrorAttribute int

// Constants for the various attribute codes.
const (
	UnknownAttribute ErrorAttribute = iota
	DigitAttribute
	PositionAttribute
	IndexAttribute
	GridSizeAttribute
	GridStringAttribute
	MaxAttribute
)

// The ErrorData provides details about the thing that failed to
// meet the predicate (such as the value of an attribute) as
// well as the predicate itself (such as minimum required
// values).
type ErrorData []interface{}

// Return an error string from an Error.  If the Error has a
// pre-canned message, this will use it, otherwise it will
// produce an appropriate (English, non-localized) message.
func (e Error) Error() string {
	es := e.Message
	if len(es) > 0 {
		return es
	}
	values := e.Values
	nextVal := func() interface{} {
		if len(values) == 0 {
			return "<unknown>"
		}
		val := values[0]
		values = values[1:]
		return val
	}
	switch e.Scope {
	case ArgumentScope:
		es = "Invalid argument: "
	case CellScope:
		es = fmt.Sprintf("Problem in cell %v: ", nextVal())
	case HouseScope:
		es = fmt.Sprintf("Problem in %v: ", nextVal())
	case GridScope:
		es = "Problem in grid: "
	case InternalScope:
		es = "Internal logic error: "
	default:
		es = "Unknown error: "
	}
	if e.Structure == AttributeStructure || e.Structure == AttributeValueStructure {
		switch e.Attribute {
		case DigitAttribute:
			es += "Digit"
		case PositionAttribute:
			es += "Position"
		case IndexAttribute:
			es += "Index"
		case GridSizeAttribute:
			es += "Grid size"
		case GridStringAttribute:
			es += "Grid string"
		default:
			es += "<Unknown attribute>"
		}
		if e.Structure == AttributeValueStructure {
			es += " (" + fmt.Sprint(nextVal()) + ")"
		}
		es += ": "
	}
	switch e.Condition {
	case GeneralCondition:
		es += fmt.Sprint(nextVal())
	case TooLargeCondition:
		es += fmt.Sprintf("Must be at most %v", nextVal())
	case TooSmallCondition:
		es += fmt.Sprintf("Must be at least %v", nextVal())
	case NotInSetCondition:
		es += fmt.Sprintf("Must be in possible values %v", nextVal())
	case WrongGridSizeCondition:
		es += fmt.Sprintf("Must have %v cells, found %v", CellCount, nextVal())
	case InvalidArgumentCondition:
		es += "Required value was missing or invalid"
	case CandidateConstraintViolationCondition:
		es += "Candidate constraint violation, no solution from here"
	default:
		es += fmt.Sprintf("Supplemental data is %v", values)
	}
	return es
}

/*

Consistency errors

*/

// ConsistencyError reports that a grid state admits no
// solution.  Every deduction failure in the engine is reported
// this way, whether it was noticed by an explicit consistency
// check or by a technique running into a pigeonhole
// contradiction mid-scan.  The Values carry the evidence: the
// cell, house, or digits that cannot be satisfied.
func ConsistencyError(values ...interface{}) Error {
	return Error{
		Scope:     GridScope,
		Structure: ScopeStructure,
		Condition: CandidateConstraintViolationCondition,
		Values:    values,
	}
}

// IsConsistencyError reports whether err is a consistency
// violation produced by this package.
func IsConsistencyError(err error) bool {
	e, ok := err.(Error)
	return ok && e.Condition == CandidateConstraintViolationCondition
}
