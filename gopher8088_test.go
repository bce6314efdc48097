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

package main

import (
	"strings"
	"testing"

	"github.com/jetsetilly/gopher8088/test"
)

func TestLaunchHelp(t *testing.T) {
	out := &test.CompareWriter{}
	test.ExpectEquality(t, launch([]string{"-help"}, out), 0)
	test.ExpectSuccess(t, strings.Contains(out.String(), "DEBUG"))
	test.ExpectSuccess(t, strings.Contains(out.String(), "until interrupted (default)"))

	out.Clear()
	test.ExpectEquality(t, launch([]string{"DISASM", "-help"}, out), 0)
	test.ExpectSuccess(t, strings.Contains(out.String(), "-count"))
	test.ExpectSuccess(t, strings.Contains(out.String(), "DISASM mode"))
}

func TestLaunchError(t *testing.T) {
	out := &test.CompareWriter{}
	test.ExpectEquality(t, launch([]string{"-nosuchflag"}, out), 10)

	out.Clear()
	test.ExpectEquality(t, launch([]string{"DISASM", "-addr", "f000"}, out), 20)
	test.ExpectSuccess(t, strings.HasPrefix(out.String(), "* error in DISASM mode"))
}

func TestParseSegOff(t *testing.T) {
	seg, off, err := parseSegOff("f000:e05b")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, seg, uint16(0xf000))
	test.ExpectEquality(t, off, uint16(0xe05b))

	_, _, err = parseSegOff("f000")
	test.ExpectFailure(t, err)
	_, _, err = parseSegOff("10000:0000")
	test.ExpectFailure(t, err)
	_, _, err = parseSegOff("f000:xyz")
	test.ExpectFailure(t, err)
}

func TestLaunchVersion(t *testing.T) {
	out := &test.CompareWriter{}
	test.ExpectEquality(t, launch([]string{"version"}, out), 0)
	test.ExpectSuccess(t, strings.HasPrefix(out.String(), "Gopher8088"))
}
