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

package scripting_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/gopher8088/curated"
	"github.com/jetsetilly/gopher8088/hardware"
	"github.com/jetsetilly/gopher8088/hardware/preferences"
	"github.com/jetsetilly/gopher8088/scripting"
	"github.com/jetsetilly/gopher8088/test"
)

type monitor struct {
	board    *hardware.Board
	commands []string
	output   []string
}

func (mon *monitor) Board() *hardware.Board {
	return mon.board
}

func (mon *monitor) Command(input string) error {
	if input == "fail" {
		return curated.Errorf("monitor: %s", input)
	}
	mon.commands = append(mon.commands, input)
	return nil
}

func (mon *monitor) Print(s string) {
	mon.output = append(mon.output, s)
}

func newMonitor(t *testing.T) *monitor {
	t.Helper()

	p, err := preferences.NewPreferences(filepath.Join(t.TempDir(), preferences.PrefsFile))
	test.DemandSuccess(t, err)

	b, err := hardware.NewBoard(p)
	test.DemandSuccess(t, err)

	// JMP F000:E000 at the reset address followed by NOPs
	img := make([]uint8, 0x2000)
	for i := range img {
		img[i] = 0x90
	}
	copy(img[0x1ff0:], []uint8{0xea, 0x00, 0xe0, 0x00, 0xf0})
	test.DemandSuccess(t, b.LoadImage(img))

	return &monitor{board: b}
}

func TestRegisters(t *testing.T) {
	mon := newMonitor(t)

	err := scripting.RunString(mon, `
		step()
		print(string.format("%04x:%04x", reg("cs"), reg("IP")))
		step(3)
		print(reg("ip"))
		setreg("ax", 0x1234)
		setreg("flags", 0)
		setreg("ip", 0x0010)
	`)
	test.ExpectSuccess(t, err)
	test.DemandEquality(t, len(mon.output), 2)
	test.ExpectEquality(t, mon.output[0], "f000:e000")
	test.ExpectEquality(t, mon.output[1], "57347")

	regs := mon.board.CPU.Regs
	test.ExpectEquality(t, regs.AX.Value(), uint16(0x1234))
	test.ExpectEquality(t, regs.IP.Value(), uint16(0x0010))
	test.ExpectEquality(t, regs.CS.Value(), uint16(0xf000))

	// setting IP flushes the prefetch queue
	test.ExpectEquality(t, mon.board.CPU.Bus().Queue().Len(), 0)

	err = scripting.RunString(mon, `reg("xx")`)
	test.ExpectSuccess(t, curated.Is(err, scripting.ScriptError))
}

func TestMemory(t *testing.T) {
	mon := newMonitor(t)

	err := scripting.RunString(mon, `
		poke(0x400, 0xab)
		print(peek(0x400))
		print(peek(0xffff0))
	`)
	test.ExpectSuccess(t, err)
	test.DemandEquality(t, len(mon.output), 2)
	test.ExpectEquality(t, mon.output[0], "171")
	test.ExpectEquality(t, mon.output[1], "234")

	err = scripting.RunString(mon, `poke(0x400, 0x100)`)
	test.ExpectFailure(t, err)
	err = scripting.RunString(mon, `peek(0x100000)`)
	test.ExpectFailure(t, err)
}

func TestPeripherals(t *testing.T) {
	mon := newMonitor(t)

	err := scripting.RunString(mon, `
		irq(3)
		key(0x1e)
		key(0x1e, true)
	`)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, mon.board.PIC.IRR()&0x08, uint8(0x08))
	test.ExpectEquality(t, mon.board.Keyboard.Pending(), 2)

	err = scripting.RunString(mon, `irq(8)`)
	test.ExpectFailure(t, err)
}

func TestCommand(t *testing.T) {
	mon := newMonitor(t)

	err := scripting.RunString(mon, `command("regs") command("mem 0 10")`)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, strings.Join(mon.commands, ","), "regs,mem 0 10")

	err = scripting.RunString(mon, `command("fail")`)
	test.ExpectSuccess(t, curated.Is(err, scripting.ScriptError))
}

func TestRunFile(t *testing.T) {
	mon := newMonitor(t)

	fn := filepath.Join(t.TempDir(), "test.lua")
	test.DemandSuccess(t, os.WriteFile(fn, []byte(`print("hello", 1)`), 0o644))

	test.ExpectSuccess(t, scripting.RunFile(mon, fn))
	test.DemandEquality(t, len(mon.output), 1)
	test.ExpectEquality(t, mon.output[0], "hello\t1")

	err := scripting.RunFile(mon, filepath.Join(t.TempDir(), "missing.lua"))
	test.ExpectSuccess(t, curated.Is(err, scripting.ScriptError))
}
