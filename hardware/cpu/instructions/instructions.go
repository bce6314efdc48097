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

package instructions

import (
	"fmt"
	"strings"
)

// Group identifies opcodes where the operation is selected by the reg field
// of the ModRM byte.
type Group int

// List of valid Group values.
const (
	NoGroup Group = iota
	Group1
	Group2
	Group3
	Group4
	Group5
)

// Member is an entry in a group. Members with an empty Operator are not valid
// instructions.
type Member struct {
	Operator string

	// operands are only specified if they differ from the operands of the
	// opcode definition
	Operands string

	Undocumented bool

	// cycles in addition to the opcode definition
	Cycles int
}

// Groups lists the members of each group, indexed by the reg field.
var Groups = map[Group][8]Member{
	Group1: {
		{Operator: "ADD"}, {Operator: "OR"}, {Operator: "ADC"}, {Operator: "SBB"},
		{Operator: "AND"}, {Operator: "SUB"}, {Operator: "XOR"}, {Operator: "CMP"},
	},
	Group2: {
		{Operator: "ROL"}, {Operator: "ROR"}, {Operator: "RCL"}, {Operator: "RCR"},
		{Operator: "SHL"}, {Operator: "SHR"}, {Operator: "SETMO", Undocumented: true}, {Operator: "SAR"},
	},
	Group3: {
		{Operator: "TEST", Operands: "E,I", Cycles: 2},
		{Operator: "TEST", Operands: "E,I", Cycles: 2, Undocumented: true},
		{Operator: "NOT"},
		{Operator: "NEG"},
		{Operator: "MUL", Cycles: 67},
		{Operator: "IMUL", Cycles: 77},
		{Operator: "DIV", Cycles: 77},
		{Operator: "IDIV", Cycles: 98},
	},
	Group4: {
		{Operator: "INC"}, {Operator: "DEC"},
	},
	Group5: {
		{Operator: "INC"},
		{Operator: "DEC"},
		{Operator: "CALL", Cycles: 13},
		{Operator: "CALL", Operands: "Mp", Cycles: 34},
		{Operator: "JMP", Cycles: 8},
		{Operator: "JMP", Operands: "Mp", Cycles: 21},
		{Operator: "PUSH", Cycles: 13},
	},
}

// Definition describes a single opcode.
type Definition struct {
	OpCode uint8

	// the mnemonic of the instruction. empty if the opcode is a group, in
	// which case the mnemonic is in the Groups table
	Operator string

	// operands are listed in the order they appear in assembly language. the
	// notation is:
	//
	//	E	register or memory operand from the ModRM byte (Eb, Ew)
	//	G	register operand from the ModRM reg field (Gb, Gw)
	//	S	segment register from the ModRM reg field (Sw)
	//	M	memory operand from the ModRM byte. a register is not valid (M, Mp)
	//	I	immediate (Ib, Iw). Is is a byte sign extended to a word
	//	J	relative jump target (Jb, Jw)
	//	O	direct memory offset (Ob, Ow)
	//	A	far pointer, offset then segment (Ap)
	//
	// anything else is a literal
	Operands string

	// whether the opcode is followed by a ModRM byte
	ModRM bool

	// prefixes do not form a complete instruction on their own
	Prefix bool

	// opcodes that are not documented by Intel but which have a consistent
	// behaviour on the 8088
	Undocumented bool

	Group Group

	// number of cycles for the instruction in its register form. memory
	// forms take longer because of bus activity and effective address
	// calculation
	Cycles int
}

func (defn Definition) String() string {
	if defn.Group != NoGroup {
		return fmt.Sprintf("%02x group %d", defn.OpCode, defn.Group)
	}
	return fmt.Sprintf("%02x %s %s", defn.OpCode, defn.Operator, defn.Operands)
}

// IsWide returns true if the instruction operates on word sized values.
func (defn Definition) IsWide() bool {
	return strings.HasSuffix(strings.Split(defn.Operands, ",")[0], "w") ||
		strings.Contains(defn.Operands, "AX") ||
		strings.HasSuffix(defn.Operator, "W") && !strings.HasPrefix(defn.Operator, "CBW")
}

// Member returns the group member for the reg field of the ModRM byte. If the
// definition is not a group then a Member based on the definition is returned.
// The second return value is false if the reg field does not select a valid
// instruction.
func (defn Definition) Member(reg uint8) (Member, bool) {
	if defn.Group == NoGroup {
		return Member{Operator: defn.Operator, Undocumented: defn.Undocumented}, true
	}
	m := Groups[defn.Group][reg&7]
	if m.Operator == "" {
		return m, false
	}
	return m, true
}
