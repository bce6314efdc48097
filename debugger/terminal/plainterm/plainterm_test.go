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

package plainterm_test

import (
	"io"
	"strings"
	"testing"

	"github.com/jetsetilly/gopher8088/debugger/terminal"
	"github.com/jetsetilly/gopher8088/debugger/terminal/plainterm"
	"github.com/jetsetilly/gopher8088/test"
)

func TestRead(t *testing.T) {
	in := strings.NewReader("step 10\r\nregs\nquit")
	pt := plainterm.NewPlainTerminal(in, io.Discard)
	test.DemandSuccess(t, pt.Initialise())
	test.ExpectFailure(t, pt.IsInteractive())

	s, err := pt.TermRead(terminal.Prompt{})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, s, "step 10")

	s, err = pt.TermRead(terminal.Prompt{})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, s, "regs")

	// final line has no line ending
	s, err = pt.TermRead(terminal.Prompt{})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, s, "quit")

	_, err = pt.TermRead(terminal.Prompt{})
	test.ExpectEquality(t, err, io.EOF)

	// run watching has no effect when input is not a terminal
	test.ExpectSuccess(t, pt.RunStart(func() {}))
	pt.RunEnd()
}

func TestPrint(t *testing.T) {
	out := &test.CompareWriter{}
	pt := plainterm.NewPlainTerminal(strings.NewReader(""), out)
	test.DemandSuccess(t, pt.Initialise())

	pt.TermPrintLine(terminal.StyleFeedback, "hello")
	pt.TermPrintLine(terminal.StyleEcho, "not shown")
	pt.TermPrintLine(terminal.StyleError, "bad")
	test.ExpectSuccess(t, out.Compare("hello\n* bad\n"))

	out.Clear()
	pt.Silence(true)
	pt.TermPrintLine(terminal.StyleFeedback, "silenced")
	pt.TermPrintLine(terminal.StyleError, "still bad")
	test.ExpectSuccess(t, out.Compare("* still bad\n"))
}
