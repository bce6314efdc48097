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

package hardware

import (
	"os"

	"github.com/jetsetilly/gopher8088/curated"
	"github.com/jetsetilly/gopher8088/hardware/clock"
	"github.com/jetsetilly/gopher8088/hardware/cpu"
	"github.com/jetsetilly/gopher8088/hardware/cpu/buscycle"
	"github.com/jetsetilly/gopher8088/hardware/memory"
	"github.com/jetsetilly/gopher8088/hardware/peripherals/keyboard"
	"github.com/jetsetilly/gopher8088/hardware/peripherals/pit"
	"github.com/jetsetilly/gopher8088/hardware/peripherals/ppi"
	"github.com/jetsetilly/gopher8088/hardware/peripherals/speaker"
	"github.com/jetsetilly/gopher8088/hardware/pic"
	"github.com/jetsetilly/gopher8088/hardware/preferences"
	"github.com/jetsetilly/gopher8088/logger"
)

// BoardError is the pattern for errors when creating or configuring the
// board.
const BoardError = "board: %v"

// Base addresses in the I/O address space.
const (
	PICBase     = 0x20
	PITBase     = 0x40
	PPIBase     = 0x60
	NMIMaskPort = 0xa0
)

// Addresses in the memory address space. RAM starts at zero and the ROM
// socket occupies the top 64KB of the address space.
const (
	ROMBase   = 0xf0000
	ROMSize   = 0x10000
	MaxRAMKB  = ROMBase / 1024
	TimerIRQ  = 0
	NMIEnable = 0x80
)

// Board is the main container for the emulated components of the PC.
type Board struct {
	Prefs *preferences.Preferences

	Clock *clock.Clock
	Mem   *memory.Map
	IO    *memory.Map
	RAM   *memory.RAM
	ROM   *memory.Socket

	Bus *buscycle.Engine
	CPU *cpu.CPU

	PIC      *pic.Controller
	PIT      *pit.PIT
	PPI      *ppi.PPI
	Keyboard *keyboard.Keyboard
	Speaker  *speaker.Speaker
}

// nmiMask is the write only register that gates NMI.
type nmiMask struct {
	mc *cpu.CPU
}

func (m nmiMask) Read(_ uint32) (uint8, error) {
	return 0xff, nil
}

func (m nmiMask) Write(_ uint32, data uint8) error {
	m.mc.EnableNMI(data&NMIEnable == NMIEnable)
	return nil
}

// NewBoard creates a new Board and everything associated with the hardware.
// It is used for all aspects of emulation: the monitor, scripting and
// running without interaction.
func NewBoard(prefs *preferences.Preferences) (*Board, error) {
	b := &Board{
		Prefs: prefs,
		Clock: clock.NewClock(),
		Mem:   memory.NewMemoryMap(),
		IO:    memory.NewIOMap(),
		ROM:   memory.NewSocket(ROMSize),
	}

	kb := prefs.RAMKB.Get().(int)
	if kb <= 0 || kb > MaxRAMKB {
		return nil, curated.Errorf(BoardError, "RAM size must be between 1 and 960 KB")
	}
	b.RAM = memory.NewRAM(uint32(kb) * 1024)

	if err := b.Mem.Register(0, b.RAM.Size(), b.RAM, "RAM"); err != nil {
		return nil, err
	}
	if err := b.Mem.Register(ROMBase, b.ROM.Size(), b.ROM, "ROM"); err != nil {
		return nil, err
	}

	b.Bus = buscycle.NewEngine(b.Clock, b.Mem, b.IO, prefs)
	b.CPU = cpu.NewCPU(b.Clock, b.Bus, prefs)

	b.PIC = pic.NewController("PIC", prefs)
	b.PIT = pit.NewPIT(prefs)
	b.PPI = ppi.NewPPI(prefs, b.PIT, uint8(prefs.Switches.Get().(int)))
	b.Keyboard = keyboard.NewKeyboard(b.PPI, b.PIC)
	b.Speaker = speaker.NewSpeaker(b.PPI)

	b.Bus.AttachAcknowledger(b.PIC)
	b.CPU.AttachInterruptLine(b.PIC)

	b.PIT.Connect(TimerIRQ, func(level bool) {
		if level {
			b.PIC.IRQ(TimerIRQ)
		}
	})

	b.Clock.Subscribe(b.PIT)
	b.Clock.Subscribe(b.Speaker)

	if err := b.IO.Register(PICBase, 2, b.PIC, "PIC"); err != nil {
		return nil, err
	}
	if err := b.IO.Register(PITBase, 4, b.PIT, "PIT"); err != nil {
		return nil, err
	}
	if err := b.IO.Register(PPIBase, 4, b.PPI, "PPI"); err != nil {
		return nil, err
	}
	if err := b.IO.Register(NMIMaskPort, 1, nmiMask{mc: b.CPU}, "NMI mask"); err != nil {
		return nil, err
	}

	return b, nil
}

// LoadROM reads a ROM image from a file and places it in the ROM socket. The
// board is reset.
func (b *Board) LoadROM(filename string) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return curated.Errorf(BoardError, err)
	}
	if err := b.ROM.Insert(data); err != nil {
		return err
	}
	logger.Logf(b.Prefs, "board", "loaded %d byte ROM from %s", len(data), filename)
	return b.Reset()
}

// LoadImage places the data in the ROM socket. The board is reset.
func (b *Board) LoadImage(data []uint8) error {
	if err := b.ROM.Insert(data); err != nil {
		return err
	}
	logger.Logf(b.Prefs, "board", "loaded %d byte ROM image", len(data))
	return b.Reset()
}

// Reset emulates the reset line of the motherboard. Every component is
// returned to its power on state and execution begins at FFFF:0000.
func (b *Board) Reset() error {
	if b.Prefs.RandomState.Get().(bool) {
		b.RAM.Reset(b.Prefs.RandSrc)
	} else {
		b.RAM.Reset(nil)
	}

	b.PIC.Reset()
	b.PIT.Reset()
	b.PPI.SetSwitches(uint8(b.Prefs.Switches.Get().(int)))
	b.PPI.Reset()
	b.CPU.Reset()
	b.Clock.Reset()

	return nil
}

// Stop the emulation. The CPU is detached from the clock and Run() returns
// at the next opportunity. Stop is safe to call from any goroutine.
//
// Reset() must be called before the board can be stepped again.
func (b *Board) Stop() {
	b.CPU.Stop()
}

// Stopped returns true if Stop() has been called since the last Reset().
func (b *Board) Stopped() bool {
	return b.CPU.IsStopped()
}
