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
	"github.com/jetsetilly/gopher8088/hardware/cpu/alu"
	"github.com/jetsetilly/gopher8088/hardware/cpu/registers"
)

// repeat prefixes
const (
	repNZ = 0xf2
	repZ  = 0xf3
)

// stringStep performs a single iteration of the string instruction. the
// source is at segment:SI, where the segment can be overridden, and the
// destination is always at ES:DI.
func (mc *CPU) stringStep(ins *instruction, wide bool) error {
	delta := uint16(1)
	if wide {
		delta = 2
	}
	if mc.Regs.Flags.Direction {
		delta = -delta
	}

	r := &mc.Regs
	fl := &mc.Regs.Flags

	switch ins.opcode &^ 0x01 {
	case 0xa4: // MOVS
		v, err := mc.readMem(ins.segment, r.SI.Value(), wide)
		if err != nil {
			return err
		}
		if err := mc.writeMem(registers.ES, r.DI.Value(), wide, v); err != nil {
			return err
		}
		r.SI.Add(delta)
		r.DI.Add(delta)

	case 0xa6: // CMPS
		a, err := mc.readMem(ins.segment, r.SI.Value(), wide)
		if err != nil {
			return err
		}
		b, err := mc.readMem(registers.ES, r.DI.Value(), wide)
		if err != nil {
			return err
		}
		alu.Sub(fl, a, b, false, wide)
		r.SI.Add(delta)
		r.DI.Add(delta)

	case 0xaa: // STOS
		if err := mc.writeMem(registers.ES, r.DI.Value(), wide, r.AX.Value()); err != nil {
			return err
		}
		r.DI.Add(delta)

	case 0xac: // LODS
		v, err := mc.readMem(ins.segment, r.SI.Value(), wide)
		if err != nil {
			return err
		}
		if wide {
			r.AX.Load(v)
		} else {
			r.AX.LoadLo(uint8(v))
		}
		r.SI.Add(delta)

	case 0xae: // SCAS
		b, err := mc.readMem(registers.ES, r.DI.Value(), wide)
		if err != nil {
			return err
		}
		alu.Sub(fl, r.AX.Value(), b, false, wide)
		r.DI.Add(delta)
	}

	return nil
}

// stringOp handles MOVS, CMPS, STOS, LODS and SCAS with or without a repeat
// prefix.
//
// A repeated instruction continues until CX is zero. CMPS and SCAS also stop
// when the zero flag does not match the prefix. Pending interrupts are
// checked between iterations and if there is one the instruction is
// interrupted. The return address of the interrupt is the first prefix of
// the instruction so that the repeat is resumed when the interrupt returns.
func stringOp(mc *CPU, ins *instruction) error {
	wide := ins.opcode&0x01 == 0x01

	if ins.rep == 0 {
		return mc.stringStep(ins, wide)
	}

	compare := ins.opcode&^0x01 == 0xa6 || ins.opcode&^0x01 == 0xae

	for mc.Regs.CX.Value() != 0 {
		start := mc.clk.Count()

		if err := mc.stringStep(ins, wide); err != nil {
			return err
		}
		mc.Regs.CX.Add(0xffff)

		if err := mc.burn(start, ins.defn.Cycles); err != nil {
			return err
		}

		if compare {
			if ins.rep == repZ && !mc.Regs.Flags.Zero {
				break
			}
			if ins.rep == repNZ && mc.Regs.Flags.Zero {
				break
			}
		}

		if mc.Regs.CX.Value() != 0 && mc.interruptPending() {
			mc.LastResult.Interrupted = true
			ins.jump(mc.Regs.CS.Value(), ins.ip)
			break
		}
	}

	return nil
}
