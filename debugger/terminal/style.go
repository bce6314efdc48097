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

package terminal

// Style is used to identify the category of text being sent to the
// Terminal.TermPrintLine() function. The terminal implementation can interpret
// this how it sees fit. The most likely treatment is to print different styles
// in different colours.
type Style int

// List of terminal styles.
const (
	// input from the user being echoed back to the user. echoed input has been
	// "normalised" (eg. capitalised, leading space removed, etc.)
	StyleEcho Style = iota

	// information from the internal help system
	StyleHelp

	// information about the processor state. registers, queue, result of the
	// last instruction
	StyleCPUStep

	// information from a command
	StyleFeedback

	// disassembly output
	StyleDisasm

	// information about the state of the monitor, rather than the emulated
	// machine
	StyleLog

	// errors
	StyleError
)

func (sty Style) String() string {
	switch sty {
	case StyleEcho:
		return "echo"
	case StyleHelp:
		return "help"
	case StyleCPUStep:
		return "cpu step"
	case StyleFeedback:
		return "feedback"
	case StyleDisasm:
		return "disasm"
	case StyleLog:
		return "log"
	case StyleError:
		return "error"
	}
	return "unknown style"
}

// IncludeInScriptOutput returns true if text of the style should be included
// in the output of a script.
func (sty Style) IncludeInScriptOutput() bool {
	switch sty {
	case StyleEcho, StyleHelp, StyleLog:
		return false
	}
	return true
}
