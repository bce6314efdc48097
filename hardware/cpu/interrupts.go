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
	"github.com/jetsetilly/gopher8088/hardware/cpu/buscycle"
)

// interrupt vectors with a fixed meaning
const (
	vectorDivide   = 0
	vectorTrap     = 1
	vectorNMI      = 2
	vectorBreak    = 3
	vectorOverflow = 4
)

// interruptPending returns true if an interrupt would be serviced at the
// next instruction boundary.
func (mc *CPU) interruptPending() bool {
	if mc.nmi {
		return true
	}
	return mc.Regs.Flags.Interrupt && mc.intr != nil && mc.intr.INTR()
}

// serviceInterrupts enters the interrupt handler of the highest priority
// pending interrupt. NMI has priority over INTR.
func (mc *CPU) serviceInterrupts() (bool, error) {
	if mc.nmi {
		mc.nmi = false
		mc.bus.Resume()
		return true, mc.interrupt(vectorNMI)
	}

	if mc.Regs.Flags.Interrupt && mc.intr != nil && mc.intr.INTR() {
		mc.bus.Resume()
		vector, err := mc.acknowledge()
		if err != nil {
			return true, err
		}
		return true, mc.interrupt(vector)
	}

	return false, nil
}

// acknowledge performs the two interrupt acknowledge bus cycles. The vector
// is read during the second cycle.
func (mc *CPU) acknowledge() (uint8, error) {
	_, err := mc.bus.BeginAccess(buscycle.InterruptAcknowledge, 0, 0, 0)
	if err != nil {
		return 0, err
	}
	v, err := mc.bus.BeginAccess(buscycle.InterruptAcknowledge, 0, 0, 0)
	mc.bus.EndAcknowledge()
	return v, err
}

// interrupt enters the handler for the vector. The flags and the return
// address are pushed and the address of the handler is read from the
// interrupt vector table.
func (mc *CPU) interrupt(vector uint8) error {
	if err := mc.push(mc.Regs.Flags.Value()); err != nil {
		return err
	}
	mc.Regs.Flags.Interrupt = false
	mc.Regs.Flags.Trap = false

	if err := mc.push(mc.Regs.CS.Value()); err != nil {
		return err
	}
	if err := mc.push(mc.Regs.IP.Value()); err != nil {
		return err
	}

	addr := uint16(vector) * 4
	ip, err := mc.bus.ReadWord(buscycle.ReadMemory, 0x0000, addr)
	if err != nil {
		return err
	}
	cs, err := mc.bus.ReadWord(buscycle.ReadMemory, 0x0000, addr+2)
	if err != nil {
		return err
	}

	mc.LoadCSIP(cs, ip)
	mc.LastResult.Interrupt = int(vector)

	return nil
}
