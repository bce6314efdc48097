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

package hardware_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jetsetilly/gopher8088/curated"
	"github.com/jetsetilly/gopher8088/debugger/govern"
	"github.com/jetsetilly/gopher8088/hardware"
	"github.com/jetsetilly/gopher8088/hardware/cpu/execution"
	"github.com/jetsetilly/gopher8088/hardware/preferences"
	"github.com/jetsetilly/gopher8088/test"
)

// timerProgram initialises the PIC and the timer and then halts, waiting for
// timer interrupts. the interrupt handler increments BX. the image is placed
// at the top of the address space, at F000:FF00.
var timerProgram = []uint8{
	0xb0, 0x13, // MOV AL, 13     ICW1: single, ICW4 needed
	0xe6, 0x20, // OUT 20, AL
	0xb0, 0x08, // MOV AL, 08     ICW2: vector base 08
	0xe6, 0x21, // OUT 21, AL
	0xb0, 0x01, // MOV AL, 01     ICW4: 8086 mode
	0xe6, 0x21, // OUT 21, AL
	0x31, 0xc0, // XOR AX, AX
	0x8e, 0xd0, // MOV SS, AX
	0xbc, 0x00, 0x10, // MOV SP, 1000
	0x8e, 0xd8, // MOV DS, AX
	0xc7, 0x06, 0x20, 0x00, 0x31, 0xff, // MOV [0020], FF31
	0xc7, 0x06, 0x22, 0x00, 0x00, 0xf0, // MOV [0022], F000
	0xb0, 0x34, // MOV AL, 34     counter 0, lsb/msb, mode 2
	0xe6, 0x43, // OUT 43, AL
	0xb0, 0x00, // MOV AL, 00
	0xe6, 0x40, // OUT 40, AL
	0xb0, 0x01, // MOV AL, 01
	0xe6, 0x40, // OUT 40, AL
	0xfb,       // STI
	0xf4,       // HLT
	0xeb, 0xfd, // JMP -3
	0x43,       // INC BX         (FF31)
	0xb0, 0x20, // MOV AL, 20
	0xe6, 0x20, // OUT 20, AL     non-specific EOI
	0xcf,       // IRET
}

func image(program []uint8) []uint8 {
	img := make([]uint8, 0x100)
	for i := range img {
		img[i] = 0x90
	}
	copy(img, program)

	// JMP F000:FF00 at the reset address
	copy(img[0xf0:], []uint8{0xea, 0x00, 0xff, 0x00, 0xf0})
	return img
}

func newBoard(t *testing.T) *hardware.Board {
	t.Helper()

	p, err := preferences.NewPreferences(filepath.Join(t.TempDir(), preferences.PrefsFile))
	test.DemandSuccess(t, err)

	b, err := hardware.NewBoard(p)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, b.LoadImage(image(timerProgram)))

	return b
}

func TestReset(t *testing.T) {
	b := newBoard(t)

	test.ExpectEquality(t, b.CPU.Regs.CS.Value(), uint16(0xffff))
	test.ExpectEquality(t, b.CPU.Regs.IP.Value(), uint16(0x0000))

	r, err := b.Step()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, r.Operator, "JMP")
	test.ExpectEquality(t, b.CPU.Regs.CS.Value(), uint16(0xf000))
	test.ExpectEquality(t, b.CPU.Regs.IP.Value(), uint16(0xff00))
}

func TestTimerInterrupt(t *testing.T) {
	b := newBoard(t)

	for i := 0; i < 100000 && b.CPU.Regs.BX.Value() < 3; i++ {
		_, err := b.Step()
		test.DemandSuccess(t, err)
	}
	test.ExpectEquality(t, b.CPU.Regs.BX.Value(), uint16(3))
	test.ExpectSuccess(t, b.PIC.Operational())
	test.ExpectEquality(t, b.PIT.Mode(0), 2)

	// interrupt vector was written to RAM
	v, err := b.Mem.Read(0x20)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, uint8(0x31))
}

func TestRun(t *testing.T) {
	b := newBoard(t)

	err := b.Run(func() (govern.State, error) {
		if b.CPU.Regs.BX.Value() == 2 {
			return govern.Ending, nil
		}
		return govern.Running, nil
	})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, b.CPU.Regs.BX.Value(), uint16(2))
}

func TestStop(t *testing.T) {
	b := newBoard(t)

	go func() {
		time.Sleep(10 * time.Millisecond)
		b.Stop()
	}()

	test.ExpectSuccess(t, b.Run(nil))
	test.ExpectSuccess(t, b.Stopped())

	// stepping a stopped board is an error until it is reset
	_, err := b.Step()
	test.ExpectFailure(t, err)

	test.ExpectSuccess(t, b.Reset())
	test.ExpectFailure(t, b.Stopped())
	_, err = b.Step()
	test.ExpectSuccess(t, err)
}

func TestKeyboard(t *testing.T) {
	b := newBoard(t)

	b.Keyboard.KeyEvent(0x1c, false)
	v, err := b.IO.Read(hardware.PPIBase)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, uint8(0x1c))
	test.ExpectEquality(t, b.PIC.IRR()&0x02, uint8(0x02))
}

func TestNMIMask(t *testing.T) {
	b := newBoard(t)

	// NMI vector points to the handler at F000:FF31
	for i, v := range []uint8{0x31, 0xff, 0x00, 0xf0} {
		test.DemandSuccess(t, b.Mem.Write(uint32(0x08+i), v))
	}

	// NMI is masked after reset
	b.CPU.NMI()
	_, err := b.Step()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, b.CPU.LastResult.Interrupt, execution.NoInterrupt)
	test.ExpectEquality(t, b.CPU.Regs.IP.Value(), uint16(0xff00))

	test.ExpectSuccess(t, b.IO.Write(hardware.NMIMaskPort, hardware.NMIEnable))
	b.CPU.NMI()
	_, err = b.Step()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, b.CPU.LastResult.Interrupt, 2)
	test.ExpectEquality(t, b.CPU.Regs.IP.Value(), uint16(0xff31))

	// register is write only
	v, err := b.IO.Read(hardware.NMIMaskPort)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, uint8(0xff))
}

func TestLoadROM(t *testing.T) {
	b := newBoard(t)

	fn := filepath.Join(t.TempDir(), "bios.rom")
	test.DemandSuccess(t, os.WriteFile(fn, image(timerProgram), 0600))
	test.ExpectSuccess(t, b.LoadROM(fn))
	test.ExpectSuccess(t, b.ROM.Occupied())

	err := b.LoadROM(filepath.Join(t.TempDir(), "missing.rom"))
	test.ExpectSuccess(t, curated.Is(err, hardware.BoardError))
}

func TestRAMSize(t *testing.T) {
	p, err := preferences.NewPreferences(filepath.Join(t.TempDir(), preferences.PrefsFile))
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, p.RAMKB.Set(1024))

	_, err = hardware.NewBoard(p)
	test.ExpectSuccess(t, curated.Is(err, hardware.BoardError))
}
