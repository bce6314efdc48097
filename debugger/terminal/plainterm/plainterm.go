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

// Package plainterm implements the Terminal interface for the gopher8088
// monitor. When the input is a real terminal, lines are edited and
// remembered with the help of golang.org/x/term. Otherwise input is read a
// line at a time with no editing.
package plainterm

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/jetsetilly/gopher8088/debugger/terminal"
	"golang.org/x/term"
)

// PlainTerminal is the default terminal interface.
type PlainTerminal struct {
	input      io.Reader
	output     io.Writer
	realInput  bool
	realOutput bool
	silenced   bool

	// file descriptor of the input. only valid if realInput is true
	fd int

	// line editor used when input is a real terminal
	editor *term.Terminal

	// reader used when input is not a real terminal
	reader *bufio.Reader

	// styles are only coloured if output is a real terminal
	styles map[terminal.Style]*color.Color

	watch watcher
}

// NewPlainTerminal is the preferred method of initialisation for the
// PlainTerminal type. Initialise() must be called before the terminal is
// used.
func NewPlainTerminal(input io.Reader, output io.Writer) *PlainTerminal {
	return &PlainTerminal{
		input:  input,
		output: output,
	}
}

// Initialise perfoms any setting up required for the terminal.
func (pt *PlainTerminal) Initialise() error {
	if pt.input == nil {
		pt.input = os.Stdin
	}
	if pt.output == nil {
		pt.output = os.Stdout
	}

	if f, ok := pt.input.(*os.File); ok {
		pt.fd = int(f.Fd())
		pt.realInput = term.IsTerminal(pt.fd)
	}
	if f, ok := pt.output.(*os.File); ok {
		pt.realOutput = term.IsTerminal(int(f.Fd()))
	}

	if pt.realInput && pt.realOutput {
		pt.editor = term.NewTerminal(struct {
			io.Reader
			io.Writer
		}{pt.input, pt.output}, "")
	} else {
		pt.reader = bufio.NewReader(pt.input)
	}

	if pt.realOutput {
		pt.styles = map[terminal.Style]*color.Color{
			terminal.StyleHelp:     color.New(color.FgYellow),
			terminal.StyleCPUStep:  color.New(color.FgHiWhite),
			terminal.StyleFeedback: color.New(color.FgCyan),
			terminal.StyleDisasm:   color.New(color.FgGreen),
			terminal.StyleLog:      color.New(color.FgHiBlack),
			terminal.StyleError:    color.New(color.FgRed, color.Bold),
		}
	}

	return nil
}

// CleanUp perfoms any cleaning up required for the terminal.
func (pt *PlainTerminal) CleanUp() {
	pt.RunEnd()
}

// Silence implements the terminal.Terminal interface.
func (pt *PlainTerminal) Silence(silenced bool) {
	pt.silenced = silenced
}

// TermPrintLine implements the terminal.Output interface.
func (pt *PlainTerminal) TermPrintLine(style terminal.Style, s string) {
	if pt.silenced && style != terminal.StyleError {
		return
	}

	// we don't need to echo user input for this type of terminal
	if style == terminal.StyleEcho {
		return
	}

	if style == terminal.StyleError {
		s = "* " + s
	}

	if c, ok := pt.styles[style]; ok {
		s = c.Sprint(s)
	}

	pt.output.Write([]byte(s))
	pt.output.Write([]byte("\n"))
}

// TermRead implements the terminal.Input interface.
func (pt *PlainTerminal) TermRead(prompt terminal.Prompt) (string, error) {
	if pt.editor != nil {
		st, err := term.MakeRaw(pt.fd)
		if err != nil {
			return "", err
		}
		defer term.Restore(pt.fd, st)

		pt.editor.SetPrompt(prompt.String())
		return pt.editor.ReadLine()
	}

	// insert prompt into output stream
	if pt.realInput {
		pt.output.Write([]byte(prompt.String()))
	}

	s, err := pt.reader.ReadString('\n')
	if err != nil {
		// a final line without a line ending is still a line
		if err == io.EOF && len(s) > 0 {
			return strings.TrimRight(s, "\r\n"), nil
		}
		return "", err
	}

	return strings.TrimRight(s, "\r\n"), nil
}

// IsInteractive implements the terminal.Input interface.
func (pt *PlainTerminal) IsInteractive() bool {
	return pt.realInput
}
