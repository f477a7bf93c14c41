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

// Command-line client for the numelace deduction engine
package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/gifnksm/numelace-sub000/puzzle"
	"github.com/gifnksm/numelace-sub000/solver"
)

func main() {
	// catch a puzzle given on the command line
	session := newSession()
	if len(os.Args) > 1 {
		if err := session.load(strings.Join(os.Args[1:], " ")); err != nil {
			log.Printf("CLI failure: %v", err)
			os.Exit(1)
		}
	}

	// serve
	err := listener(session, os.Stdout, os.Stdin)
	if err != nil {
		log.Printf("CLI failure: %v", err)
		os.Exit(1)
	}
}

/*

CLI listener

*/

type request struct {
	inline  string
	command string
	args    []string
}

// listener reads lines and dispatches them to handlers
func listener(session *cliSession, out *os.File, in *os.File) error {
	// if we are on a terminal, we do prompting
	prompt := false
	if stat, _ := out.Stat(); (stat.Mode() & os.ModeCharDevice) != 0 {
		prompt = true
	}

	input := make([]byte, 4096)
	for {
		if prompt {
			fmt.Fprintf(out, "numelace> ")
		}
		n, err := in.Read(input)
		switch err {
		case nil:
			r := &request{inline: strings.Trim(string(input[:n]), " \t\r\n")}
			args := strings.Split(r.inline, " ")
			r.command = strings.ToLower(args[0])
			switch r.command {
			case "":
				continue
			case "quit":
				fallthrough
			case "exit":
				return nil
			}
			for _, arg := range args[1:] {
				if len(arg) > 0 {
					r.args = append(r.args, arg)
				}
			}
			dispatchCommand(session, out, r)
		case io.EOF:
			// ignore any input before the EOF
			if prompt {
				fmt.Fprintf(out, " (EOF)\n")
			}
			return nil
		default:
			if prompt {
				fmt.Fprintf(out, " (read error)\n")
			}
			return err
		}
	}
}

// command dispatching
type commandInfo struct {
	command     string
	argInfo     string
	description string
	handler     func(*cliSession, *os.File, *request)
}

// the command dispatch info is sorted for easy usage printing,
// and then hashed for rapid dispatching
var (
	dispatchInfo  []commandInfo
	dispatchTable map[string]*commandInfo
)

func init() {
	dispatchInfo = []commandInfo{
		{"candidates", "", "list candidates of the undecided squares", candidatesHandler},
		{"check", "", "check the puzzle for consistency", checkHandler},
		{"hint", "", "show the next deduction without applying it", hintHandler},
		{"load", "puzzle", "load a puzzle (81 cells; digits and _ . 0)", loadHandler},
		{"reset", "", "go back to the loaded givens", resetHandler},
		{"solve", "", "deduce until solved or stuck", solveHandler},
		{"state", "", "show current puzzle state", stateHandler},
		{"step", "", "apply the easiest available deduction", stepHandler},
	}
	dispatchTable = make(map[string]*commandInfo, len(dispatchInfo))
	for i := range dispatchInfo {
		dispatchTable[dispatchInfo[i].command] = &dispatchInfo[i]
	}
}

func dispatchCommand(session *cliSession, w *os.File, r *request) {
	defer func() {
		if err := recover(); err != nil {
			errorHandler(err, w, r)
		}
	}()

	ci := dispatchTable[r.command]
	if ci == nil {
		usageHandler(fmt.Sprintf("%q is not a known command", r.command), w, r)
	} else {
		ci.handler(session, w, r)
	}
}

/*

request handlers

*/

func loadHandler(session *cliSession, w *os.File, r *request) {
	if len(r.args) == 0 {
		usageHandler(fmt.Sprintf("%s requires a puzzle argument", r.command), w, r)
		return
	}
	if err := session.load(strings.Join(r.args, " ")); err != nil {
		fmt.Fprintf(w, "Load failed: %v\n", err)
		return
	}
	stateHandler(session, w, r)
}

func resetHandler(session *cliSession, w *os.File, r *request) {
	if !session.loaded(w) {
		return
	}
	session.reset()
	stateHandler(session, w, r)
}

func stateHandler(session *cliSession, w *os.File, r *request) {
	if !session.loaded(w) {
		return
	}
	fmt.Fprintf(w, "%s", session.grid.ValuesString(true))
	if session.grid.IsSolved() {
		fmt.Fprintf(w, "Solved.\n")
	}
}

func candidatesHandler(session *cliSession, w *os.File, r *request) {
	if !session.loaded(w) {
		return
	}
	fmt.Fprintf(w, "%s", session.grid.CandidatesString())
}

func checkHandler(session *cliSession, w *os.File, r *request) {
	if !session.loaded(w) {
		return
	}
	if err := session.grid.CheckConsistency(); err != nil {
		fmt.Fprintf(w, "%v\n", err)
	} else {
		fmt.Fprintf(w, "Puzzle is consistent.\n")
	}
}

func hintHandler(session *cliSession, w *os.File, r *request) {
	if !session.loaded(w) {
		return
	}
	step, err := session.solver.FindStep(&session.grid)
	if err != nil {
		fmt.Fprintf(w, "Hint failed: %v\n", err)
		return
	}
	if step == nil {
		fmt.Fprintf(w, "No deduction available.\n")
		return
	}
	printStep(w, step)
}

func stepHandler(session *cliSession, w *os.File, r *request) {
	if !session.loaded(w) {
		return
	}
	step, err := session.solver.FindStep(&session.grid)
	if err != nil {
		fmt.Fprintf(w, "Step failed: %v\n", err)
		return
	}
	if step == nil {
		fmt.Fprintf(w, "No deduction available.\n")
		return
	}
	if _, err := session.solver.Step(&session.grid, session.stats); err != nil {
		fmt.Fprintf(w, "Step failed: %v\n", err)
		return
	}
	printStep(w, step)
	stateHandler(session, w, r)
}

func solveHandler(session *cliSession, w *os.File, r *request) {
	if !session.loaded(w) {
		return
	}
	solved, err := session.solver.SolveWithStats(&session.grid, session.stats)
	if err != nil {
		fmt.Fprintf(w, "Solve failed: %v\n", err)
		return
	}
	if solved {
		fmt.Fprintf(w, "Solved in %d steps:\n", session.stats.TotalSteps())
	} else {
		fmt.Fprintf(w, "Stuck after %d steps:\n", session.stats.TotalSteps())
	}
	for i, technique := range session.solver.Techniques() {
		if count := session.stats.Applications()[i]; count > 0 {
			fmt.Fprintf(w, "    %-28s %d\n", technique.Name(), count)
		}
	}
	stateHandler(session, w, r)
}

func printStep(w *os.File, step solver.TechniqueStep) {
	fmt.Fprintf(w, "%s at %s:\n", step.TechniqueName(), step.ConditionCells())
	for _, condition := range step.ConditionDigitCells() {
		fmt.Fprintf(w, "    looking at %s in %s\n", condition.Digits, condition.Positions)
	}
	for _, application := range step.Applications() {
		switch application.Kind {
		case solver.PlacementApplication:
			fmt.Fprintf(w, "    place %d at %s\n", application.Digit, application.Position)
		case solver.EliminationApplication:
			fmt.Fprintf(w, "    remove %s from %s\n", application.Digits, application.Positions)
		}
	}
}

func usageHandler(msg string, w *os.File, r *request) {
	fmt.Fprintf(w, "Error: %s\nUsage:\n", msg)
	for _, ci := range dispatchInfo {
		fmt.Fprintf(w, "    %10s %-7s\t%s\n", ci.command, ci.argInfo, ci.description)
	}
	fmt.Fprintf(w, "  and 'quit' or EOF to exit.\n")
}

func errorHandler(err interface{}, w *os.File, r *request) {
	fmt.Fprintf(w, "Panic executing %q: %v\n", r.inline, err)
	log.Printf("CLI error executing %q: %v\n", r.inline, err)
}

/*

session handling

*/

// A cliSession is the puzzle being worked on: the loaded givens
// and the current deduction state.  There is no persistence;
// reset goes back to the givens.
type cliSession struct {
	givens *puzzle.DigitGrid
	grid   solver.TechniqueGrid
	solver *solver.TechniqueSolver
	stats  *solver.SolverStats
}

func newSession() *cliSession {
	s := &cliSession{solver: solver.WithAllTechniques()}
	s.stats = s.solver.NewStats()
	return s
}

func (s *cliSession) load(text string) error {
	givens, err := puzzle.ParseDigitGrid(text)
	if err != nil {
		return err
	}
	s.givens = givens
	s.reset()
	return nil
}

func (s *cliSession) reset() {
	s.grid = solver.FromDigitGrid(s.givens)
	s.stats = s.solver.NewStats()
}

func (s *cliSession) loaded(w *os.File) bool {
	if s.givens == nil {
		fmt.Fprintf(w, "No puzzle loaded; use 'load' first.\n")
		return false
	}
	return true
}
