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

package prefs_test

import (
	"testing"

	"github.com/jetsetilly/gopher8088/prefs"
	"github.com/jetsetilly/gopher8088/test"
)

func TestCommandLineParsing(t *testing.T) {
	test.ExpectEquality(t, prefs.SizeCommandLineStack(), 0)
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")

	prefs.PushCommandLineStack("hardware.rom::bios.bin")
	test.ExpectEquality(t, prefs.SizeCommandLineStack(), 1)
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "hardware.rom::bios.bin")
	test.ExpectEquality(t, prefs.SizeCommandLineStack(), 0)

	// surrounding spaces are removed
	prefs.PushCommandLineStack("  hardware.ramkb::  256 ")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "hardware.ramkb::256")

	// unused values are returned sorted by key
	prefs.PushCommandLineStack("hardware.ramkb::256; cpu.undocumented::false")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "cpu.undocumented::false; hardware.ramkb::256")

	// malformed entries are dropped
	prefs.PushCommandLineStack("hardware.ramkb; ::64; a::b::c; cpu.undocumented::true")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "cpu.undocumented::true")
}

func TestCommandLineConsume(t *testing.T) {
	prefs.PushCommandLineStack("hardware.ramkb::256;hardware.logging")

	ok, v := prefs.GetCommandLinePref("hardware.ramkb")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, v, prefs.Value("256"))

	// a value can only be consumed once
	ok, _ = prefs.GetCommandLinePref("hardware.ramkb")
	test.ExpectFailure(t, ok)

	ok, _ = prefs.GetCommandLinePref("hardware.logging")
	test.ExpectFailure(t, ok)

	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")
}

func TestCommandLineGroups(t *testing.T) {
	prefs.PushCommandLineStack("hardware.ramkb::256")
	prefs.PushCommandLineStack("hardware.ramkb::64")

	// only the most recent group is consulted
	ok, v := prefs.GetCommandLinePref("hardware.ramkb")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, v, prefs.Value("64"))
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")

	test.ExpectEquality(t, prefs.PopCommandLineStack(), "hardware.ramkb::256")
	ok, _ = prefs.GetCommandLinePref("hardware.ramkb")
	test.ExpectFailure(t, ok)
}
