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

package terminal_test

import (
	"testing"

	"github.com/jetsetilly/gopher8088/debugger/terminal"
	"github.com/jetsetilly/gopher8088/test"
)

func TestPrompt(t *testing.T) {
	p := terminal.Prompt{CS: 0xf000, IP: 0xfff0}
	test.ExpectEquality(t, p.String(), "[ f000:fff0 ] >> ")

	p.Content = "halted "
	test.ExpectEquality(t, p.String(), "[ f000:fff0 halted ] >> ")

	p.Scripting = true
	test.ExpectEquality(t, p.String(), "[ f000:fff0 halted (script) ] >> ")

	p = terminal.Prompt{Type: terminal.PromptTypeConfirm, Content: "really? "}
	test.ExpectEquality(t, p.String(), "really? ")
}

func TestStyle(t *testing.T) {
	test.ExpectSuccess(t, terminal.StyleError.IncludeInScriptOutput())
	test.ExpectFailure(t, terminal.StyleEcho.IncludeInScriptOutput())
	test.ExpectEquality(t, terminal.StyleFeedback.String(), "feedback")
}
