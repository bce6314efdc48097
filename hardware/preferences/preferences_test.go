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

package preferences_test

import (
	"path/filepath"
	"testing"

	"github.com/jetsetilly/gopher8088/hardware/preferences"
	"github.com/jetsetilly/gopher8088/prefs"
	"github.com/jetsetilly/gopher8088/test"
)

func TestDefaults(t *testing.T) {
	pth := filepath.Join(t.TempDir(), preferences.PrefsFile)

	p, err := preferences.NewPreferences(pth)
	test.DemandSuccess(t, err)

	test.ExpectEquality(t, p.RAMKB.Get().(int), preferences.DefaultRAMKB)
	test.ExpectEquality(t, p.Switches.Get().(int), preferences.DefaultSwitches)
	test.ExpectEquality(t, p.ROM.String(), "")
	test.ExpectSuccess(t, p.AllowLogging())
	test.ExpectSuccess(t, p.Undocumented())
}

func TestSaveLoad(t *testing.T) {
	pth := filepath.Join(t.TempDir(), preferences.PrefsFile)

	p, err := preferences.NewPreferences(pth)
	test.DemandSuccess(t, err)

	test.ExpectSuccess(t, p.RAMKB.Set(256))
	test.ExpectSuccess(t, p.UndocumentedOpcodes.Set(false))
	test.ExpectSuccess(t, p.ROM.Set("bios.rom"))
	test.ExpectSuccess(t, p.Save())

	q, err := preferences.NewPreferences(pth)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, q.RAMKB.Get().(int), 256)
	test.ExpectFailure(t, q.Undocumented())
	test.ExpectEquality(t, q.ROM.String(), "bios.rom")
}

func TestCommandLine(t *testing.T) {
	pth := filepath.Join(t.TempDir(), preferences.PrefsFile)

	prefs.PushCommandLineStack("hardware.dipswitches::0x6d; hardware.logging::false")
	defer prefs.PopCommandLineStack()

	p, err := preferences.NewPreferences(pth)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, p.Switches.Get().(int), 0x6d)
	test.ExpectFailure(t, p.AllowLogging())
}
