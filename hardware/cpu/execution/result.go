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

package execution

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gopher8088/curated"
	"github.com/jetsetilly/gopher8088/hardware/cpu/instructions"
)

// Result records the execution of a single instruction. It is updated as the
// instruction progresses and is finalised when the instruction completes.
type Result struct {
	// address of the first byte of the instruction, including any prefixes
	CS uint16
	IP uint16

	// the definition of the opcode. nil if no opcode was decoded, which
	// happens when Result records an interrupt entry or a halt cycle
	Defn *instructions.Definition

	// the mnemonic after resolving groups
	Operator string

	// every byte consumed by the instruction, prefixes included
	Bytes []uint8

	// the number of clock ticks the instruction took
	Cycles int

	// the vector of the interrupt entered after or instead of the instruction
	Interrupt int

	// repeated string instructions may be interrupted before completion. the
	// instruction is restarted after the interrupt returns
	Interrupted bool

	// the processor was in the halted state for this step
	Halted bool

	Final bool
}

// NoInterrupt is the value of Interrupt when no interrupt has been entered.
const NoInterrupt = -1

// Reset prepares the Result for a new instruction starting at CS:IP.
func (r *Result) Reset(cs, ip uint16) {
	r.CS = cs
	r.IP = ip
	r.Defn = nil
	r.Operator = ""
	r.Bytes = r.Bytes[:0]
	r.Cycles = 0
	r.Interrupt = NoInterrupt
	r.Interrupted = false
	r.Halted = false
	r.Final = false
}

func (r Result) String() string {
	s := strings.Builder{}

	if r.Final {
		s.WriteString(fmt.Sprintf("%04x:%04x ", r.CS, r.IP))
	} else {
		s.WriteString("          ")
	}

	switch {
	case r.Halted:
		s.WriteString("(halted)")
	case r.Defn == nil:
		s.WriteString("(none)")
	default:
		for _, b := range r.Bytes {
			s.WriteString(fmt.Sprintf("%02x", b))
		}
		s.WriteString(" ")
		s.WriteString(r.Operator)
	}

	if r.Final {
		s.WriteString(fmt.Sprintf(" [%d]", r.Cycles))
	} else {
		s.WriteString(" [v]")
	}

	if r.Interrupted {
		s.WriteString(" interrupted")
	}
	if r.Interrupt != NoInterrupt {
		s.WriteString(fmt.Sprintf(" int %02xh", r.Interrupt))
	}

	return s.String()
}

// IsValid checks whether the Result contains information consistent with the
// instruction definition.
func (r Result) IsValid() error {
	if !r.Final {
		return curated.Errorf("cpu: execution not finalised")
	}

	if r.Halted || r.Defn == nil {
		return nil
	}

	if len(r.Bytes) == 0 {
		return curated.Errorf("cpu: no bytes recorded for opcode %#02x", r.Defn.OpCode)
	}

	// an interrupted repeat instruction may finish before the full cycle count
	if !r.Interrupted && r.Cycles < r.Defn.Cycles {
		return curated.Errorf("cpu: number of cycles wrong for opcode %#02x [%s] (%d is less than %d)",
			r.Defn.OpCode, r.Operator, r.Cycles, r.Defn.Cycles)
	}

	return nil
}
