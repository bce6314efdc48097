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

package cpu

import (
	"fmt"

	"github.com/jetsetilly/gopher8088/curated"
	"github.com/jetsetilly/gopher8088/hardware/clock"
	"github.com/jetsetilly/gopher8088/hardware/cpu/buscycle"
	"github.com/jetsetilly/gopher8088/hardware/cpu/execution"
	"github.com/jetsetilly/gopher8088/hardware/cpu/registers"
	"github.com/jetsetilly/gopher8088/logger"
	"github.com/jetsetilly/gopher8088/notifications"
)

// Sentinel error patterns.
const (
	DecodeFault = "cpu: decode fault: %s"
	Stopped     = "cpu: processor has been stopped"
)

// Preferences used by the CPU.
type Preferences interface {
	logger.Permission

	// whether undocumented opcodes are emulated or are a decode fault
	Undocumented() bool
}

// InterruptLine is implemented by the interrupt controller. The line is
// sampled at instruction boundaries.
type InterruptLine interface {
	INTR() bool
}

// CPU implements the 8088 execution unit. Memory and port access goes
// through the buscycle.Engine.
type CPU struct {
	Regs registers.Registers

	clk   *clock.Clock
	bus   *buscycle.Engine
	prefs Preferences

	intr InterruptLine

	// non-maskable interrupt latch. the latch is only set if nmiEnabled is
	// true
	nmi        bool
	nmiEnabled bool

	// state of the TEST input. WAIT repeats until the input is active
	test bool

	// interrupts are not serviced at the boundary following an instruction
	// that sets this flag
	inhibit bool

	// LastResult is updated as the instruction executes and is final when
	// Step() returns
	LastResult execution.Result

	observer notifications.Observer
}

// NewCPU is the preferred method of initialisation for the CPU type.
func NewCPU(clk *clock.Clock, bus *buscycle.Engine, prefs Preferences) *CPU {
	mc := &CPU{
		Regs:  registers.NewRegisters(),
		clk:   clk,
		bus:   bus,
		prefs: prefs,
	}

	bus.AttachFaultHandler(func(t buscycle.Transaction) {
		// prefetching beyond the end of mapped memory is not a fault. only
		// the execution unit's accesses raise NMI
		if t.Kind != buscycle.InstructionFetch {
			mc.NMI()
		}
	})

	mc.Reset()
	return mc
}

// AttachInterruptLine connects the INTR input to the interrupt controller.
func (mc *CPU) AttachInterruptLine(intr InterruptLine) {
	mc.intr = intr
}

// AttachObserver sets the observer that is notified of register changes
// after every Step() and of memory writes as they happen. A nil observer
// disables notifications.
func (mc *CPU) AttachObserver(observer notifications.Observer) {
	mc.observer = observer
}

// Reset the CPU and the bus. Execution begins at FFFF:0000.
func (mc *CPU) Reset() {
	mc.Regs.Reset()
	mc.bus.Reset()
	mc.bus.Flush(mc.Regs.CS.Value(), mc.Regs.IP.Value())
	mc.nmi = false
	mc.nmiEnabled = false
	mc.test = true
	mc.inhibit = false
	mc.LastResult.Reset(mc.Regs.CS.Value(), mc.Regs.IP.Value())
}

// LoadCSIP transfers control to CS:IP. The prefetch queue is flushed.
func (mc *CPU) LoadCSIP(cs uint16, ip uint16) {
	mc.Regs.CS.Load(cs)
	mc.Regs.IP.Load(ip)
	mc.bus.Flush(cs, ip)
}

// NMI raises the non-maskable interrupt. It is serviced at the next
// instruction boundary if NMI is enabled.
func (mc *CPU) NMI() {
	if mc.nmiEnabled {
		mc.nmi = true
	}
}

// EnableNMI sets the state of the NMI gate. On the PC the gate is controlled
// by bit 7 of port 0xa0 and is closed on reset.
func (mc *CPU) EnableNMI(enable bool) {
	mc.nmiEnabled = enable
	if !enable {
		mc.nmi = false
	}
}

// SetTest sets the state of the TEST input.
func (mc *CPU) SetTest(active bool) {
	mc.test = active
}

// Stop the CPU. The bus is detached from the clock and any access in
// progress is abandoned. Step() returns the Stopped error until Reset() is
// called.
func (mc *CPU) Stop() {
	mc.bus.Stop()
}

// IsStopped returns true if Stop() has been called since the last Reset().
func (mc *CPU) IsStopped() bool {
	return mc.bus.Stopped()
}

// Bus returns the bus engine used by the CPU.
func (mc *CPU) Bus() *buscycle.Engine {
	return mc.bus
}

// Halted returns true if the CPU has executed HLT and is waiting for an
// interrupt.
func (mc *CPU) Halted() bool {
	return mc.bus.Halted()
}

func (mc *CPU) String() string {
	q := mc.bus.Queue()
	return fmt.Sprintf("%s\nqueue %s", mc.Regs, q.String())
}

// Step executes a single instruction. Pending interrupts are serviced before
// the instruction. If an interrupt is serviced then no instruction is
// executed. If the CPU is halted then the clock is ticked once.
//
// The clock is ticked for every cycle of the instruction, including the
// cycles of the bus transactions it requires.
func (mc *CPU) Step() error {
	if mc.bus.Stopped() {
		return curated.Errorf(Stopped)
	}

	var before registers.Registers
	if mc.observer != nil {
		before = mc.Regs
	}

	mc.LastResult.Reset(mc.Regs.CS.Value(), mc.Regs.IP.Value())
	start := mc.clk.Count()

	err := mc.step()

	mc.LastResult.Cycles = int(mc.clk.Count() - start)
	mc.LastResult.Final = true

	if mc.observer != nil {
		mc.notify(before)
	}

	return err
}

func (mc *CPU) step() error {
	inhibited := mc.inhibit
	mc.inhibit = false

	if !inhibited {
		serviced, err := mc.serviceInterrupts()
		if err != nil || serviced {
			return err
		}
	}

	if mc.bus.Halted() {
		mc.LastResult.Halted = true
		return mc.bus.Idle(1)
	}

	trap := mc.Regs.Flags.Trap

	if err := mc.execute(); err != nil {
		return err
	}

	if trap && mc.LastResult.Interrupt == execution.NoInterrupt {
		return mc.interrupt(vectorTrap)
	}

	return nil
}

// burn idles the bus until the given number of cycles have passed since
// start.
func (mc *CPU) burn(start uint64, cycles int) error {
	spent := int(mc.clk.Count() - start)
	if cycles > spent {
		return mc.bus.Idle(cycles - spent)
	}
	return nil
}
