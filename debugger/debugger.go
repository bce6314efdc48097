// This file is part of Gopher8088.
//
// Gopher8088 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher8088 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher8088.  If not, see <https://www.gnu.org/licenses/>.

package debugger

import (
	"io"
	"sync/atomic"

	"github.com/jetsetilly/gopher8088/curated"
	"github.com/jetsetilly/gopher8088/debugger/govern"
	"github.com/jetsetilly/gopher8088/debugger/terminal"
	"github.com/jetsetilly/gopher8088/hardware"
	"github.com/jetsetilly/gopher8088/scripting"
)

// Debugger is the basic debugging frontend for the emulation.
type Debugger struct {
	board *hardware.Board
	term  terminal.Terminal

	state govern.State

	// halt is set from outside the emulation goroutine to stop a RUN or a
	// long STEP
	halt atomic.Bool

	// the QUIT command has been issued or input has been exhausted
	quit bool

	// the number of scripts currently being run. scripts can run other
	// scripts
	scriptDepth int
}

// maximum number of nested scripts
const maxScriptDepth = 8

// NewDebugger creates and initialises everything required for a new
// debugging session.
func NewDebugger(board *hardware.Board, term terminal.Terminal) (*Debugger, error) {
	if board == nil {
		return nil, curated.Errorf(DebuggerError, "no board")
	}
	if term == nil {
		return nil, curated.Errorf(DebuggerError, "no terminal")
	}

	return &Debugger{
		board: board,
		term:  term,
		state: govern.Start,
	}, nil
}

// Board returns the board being debugged.
func (dbg *Debugger) Board() *hardware.Board {
	return dbg.board
}

// State returns the current state of the debugger.
func (dbg *Debugger) State() govern.State {
	return dbg.state
}

// Halt stops the emulation if it is running. It is safe to call from any
// goroutine.
func (dbg *Debugger) Halt() {
	dbg.halt.Store(true)
}

// Start the debugging session. The optional script is run before the user is
// prompted for input. Start returns when the QUIT command is issued or when
// the terminal has no more input.
func (dbg *Debugger) Start(script string) error {
	dbg.state = govern.Initialising

	if err := dbg.term.Initialise(); err != nil {
		return curated.Errorf(DebuggerError, err)
	}
	defer dbg.term.CleanUp()

	dbg.state = govern.Paused

	if script != "" {
		if err := dbg.runScript(script); err != nil {
			dbg.printLine(terminal.StyleError, "%s", err)
		}
	}

	err := dbg.inputLoop(dbg.term)
	dbg.state = govern.Ending
	return err
}

// Command parses and acts upon a line of input as though it had been typed
// at the terminal. Used by the scripting engine.
func (dbg *Debugger) Command(input string) error {
	return dbg.parseInput(input, false)
}

// Print writes the string to the terminal. Used by the scripting engine.
func (dbg *Debugger) Print(s string) {
	dbg.printLine(terminal.StyleFeedback, "%s", s)
}

func (dbg *Debugger) runScript(filename string) error {
	if dbg.scriptDepth >= maxScriptDepth {
		return curated.Errorf(CommandError, KeywordScript, "too many nested scripts")
	}

	dbg.scriptDepth++
	defer func() {
		dbg.scriptDepth--
	}()

	return scripting.RunFile(dbg, filename)
}

// inputLoop reads and acts upon commands until the QUIT command is issued or
// input is exhausted.
func (dbg *Debugger) inputLoop(inputter terminal.Input) error {
	for !dbg.quit {
		input, err := inputter.TermRead(dbg.prompt())
		if err != nil {
			if err == io.EOF {
				return nil
			}
			if curated.Is(err, terminal.UserInterrupt) {
				dbg.handleInterrupt(inputter)
				continue
			}
			return curated.Errorf(DebuggerError, err)
		}

		err = dbg.parseInput(input, inputter.IsInteractive())
		if err != nil {
			dbg.printLine(terminal.StyleError, "%s", err)
		}
	}

	return nil
}

// handleInterrupt asks the user whether they really want to quit. Input that
// is not interactive quits without asking.
func (dbg *Debugger) handleInterrupt(inputter terminal.Input) {
	if !inputter.IsInteractive() {
		dbg.quit = true
		return
	}

	confirm, err := inputter.TermRead(terminal.Prompt{
		Content: "really quit (y/n) ",
		Type:    terminal.PromptTypeConfirm,
	})
	if err != nil {
		// a second interrupt is treated as though 'y' was pressed
		if curated.Is(err, terminal.UserInterrupt) || err == io.EOF {
			confirm = "y"
		} else {
			dbg.printLine(terminal.StyleError, "%s", err)
		}
	}

	if len(confirm) > 0 && (confirm[0] == 'y' || confirm[0] == 'Y') {
		dbg.quit = true
	}
}

func (dbg *Debugger) prompt() terminal.Prompt {
	p := terminal.Prompt{
		Type:      terminal.PromptTypeCPUStep,
		CS:        dbg.board.CPU.Regs.CS.Value(),
		IP:        dbg.board.CPU.Regs.IP.Value(),
		Scripting: dbg.scriptDepth > 0,
	}
	switch {
	case dbg.board.Stopped():
		p.Content = "stopped"
	case dbg.board.CPU.Halted():
		p.Content = "halted"
	}
	return p
}
