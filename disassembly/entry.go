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

package disassembly

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gopher8088/hardware/cpu/instructions"
)

// Entry is a single disassembled instruction.
type Entry struct {
	Segment uint16
	Offset  uint16

	// the bytes of the instruction, including any prefixes
	Bytes []uint8

	// prefixes that are shown before the mnemonic (REPZ, REPNZ, LOCK).
	// segment overrides are shown in the memory operand instead
	Prefixes []string

	Mnemonic string
	Operands string

	// the definition of the opcode. nil if the Entry is Invalid
	Defn *instructions.Definition

	// the instruction is undocumented. the CPU may be configured to treat
	// it as a decode fault
	Undocumented bool

	// the bytes do not form an instruction. the Entry is one byte long and
	// is shown as a DB directive
	Invalid bool
}

// Len returns the number of bytes in the instruction.
func (e Entry) Len() int {
	return len(e.Bytes)
}

// Next returns the offset of the following instruction.
func (e Entry) Next() uint16 {
	return e.Offset + uint16(len(e.Bytes))
}

// Bytecode returns the bytes of the instruction as a string of hex values.
func (e Entry) Bytecode() string {
	s := strings.Builder{}
	for i, b := range e.Bytes {
		if i > 0 {
			s.WriteString(" ")
		}
		s.WriteString(fmt.Sprintf("%02x", b))
	}
	return s.String()
}

// Instruction returns the mnemonic, with prefixes, and operands.
func (e Entry) Instruction() string {
	s := strings.Builder{}
	for _, p := range e.Prefixes {
		s.WriteString(p)
		s.WriteString(" ")
	}
	s.WriteString(e.Mnemonic)
	if e.Operands != "" {
		s.WriteString(" ")
		s.WriteString(e.Operands)
	}
	return s.String()
}

func (e Entry) String() string {
	s := fmt.Sprintf("%04x:%04x  %-18s %s", e.Segment, e.Offset, e.Bytecode(), e.Instruction())
	if e.Undocumented {
		s = fmt.Sprintf("%s ; undocumented", s)
	}
	return strings.TrimRight(s, " ")
}
