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

package registers

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gopher8088/curated"
)

// ProtocolViolation is the pattern used when a selector is out of range. A
// selector that is out of range means that the decoder is broken and so
// this is used as a panic value and not returned as an error.
const ProtocolViolation = "registers: %s selector out of range (%v)"

func protocolViolation(kind string, v any) error {
	return curated.Errorf(ProtocolViolation, kind, v)
}

// Segment selects one of the four segment registers. The numbering matches
// the encoding of the segment register in the ModRM reg field and in the
// segment override prefixes.
type Segment uint8

// List of valid Segment values.
const (
	ES Segment = iota
	CS
	SS
	DS
)

var segmentNames = [...]string{"ES", "CS", "SS", "DS"}

func (s Segment) String() string {
	if int(s) >= len(segmentNames) {
		return fmt.Sprintf("seg(%d)", s)
	}
	return segmentNames[s]
}

var reg16Names = [...]string{"AX", "CX", "DX", "BX", "SP", "BP", "SI", "DI"}
var reg8Names = [...]string{"AL", "CL", "DL", "BL", "AH", "CH", "DH", "BH"}

// Reg16Name returns the name of the 16 bit register with the encoding n.
func Reg16Name(n uint8) string {
	if n > 7 {
		panic(protocolViolation("reg16", n))
	}
	return reg16Names[n]
}

// Reg8Name returns the name of the 8 bit register with the encoding n.
func Reg8Name(n uint8) string {
	if n > 7 {
		panic(protocolViolation("reg8", n))
	}
	return reg8Names[n]
}

// Registers is the complete register file of the processor.
type Registers struct {
	AX Register
	CX Register
	DX Register
	BX Register
	SP Register
	BP Register
	SI Register
	DI Register

	ES Register
	CS Register
	SS Register
	DS Register

	// the logical instruction pointer. this is the offset of the next
	// instruction byte to be consumed by the execution unit and not the
	// offset of the next byte to be fetched by the bus interface
	IP Register

	Flags Flags
}

// NewRegisters is the preferred method of initialisation for the Registers
// type. The register file is in the reset state.
func NewRegisters() Registers {
	r := Registers{
		AX: NewRegister(0, "AX"),
		CX: NewRegister(0, "CX"),
		DX: NewRegister(0, "DX"),
		BX: NewRegister(0, "BX"),
		SP: NewRegister(0, "SP"),
		BP: NewRegister(0, "BP"),
		SI: NewRegister(0, "SI"),
		DI: NewRegister(0, "DI"),
		ES: NewRegister(0, "ES"),
		CS: NewRegister(0, "CS"),
		SS: NewRegister(0, "SS"),
		DS: NewRegister(0, "DS"),
		IP: NewRegister(0, "IP"),
	}
	r.Reset()
	return r
}

// Reset the register file to the state it is in after a processor reset.
// CS is 0xffff and every other register is zero.
func (r *Registers) Reset() {
	for i := uint8(0); i < 8; i++ {
		r.Reg16(i).Load(0)
	}
	r.ES.Load(0)
	r.CS.Load(0xffff)
	r.SS.Load(0)
	r.DS.Load(0)
	r.IP.Load(0)
	r.Flags.Reset()
}

// Reg16 returns the 16 bit register with the encoding n. Panics if n is out
// of range.
func (r *Registers) Reg16(n uint8) *Register {
	switch n {
	case 0:
		return &r.AX
	case 1:
		return &r.CX
	case 2:
		return &r.DX
	case 3:
		return &r.BX
	case 4:
		return &r.SP
	case 5:
		return &r.BP
	case 6:
		return &r.SI
	case 7:
		return &r.DI
	}
	panic(protocolViolation("reg16", n))
}

// Reg8 returns the value of the 8 bit register with the encoding n. The
// encodings 0 to 3 are the low bytes of AX, CX, DX and BX and the encodings
// 4 to 7 are the high bytes. Panics if n is out of range.
func (r *Registers) Reg8(n uint8) uint8 {
	if n > 7 {
		panic(protocolViolation("reg8", n))
	}
	if n < 4 {
		return r.Reg16(n).Lo()
	}
	return r.Reg16(n - 4).Hi()
}

// SetReg8 loads the 8 bit register with the encoding n. Panics if n is out
// of range.
func (r *Registers) SetReg8(n uint8, val uint8) {
	if n > 7 {
		panic(protocolViolation("reg8", n))
	}
	if n < 4 {
		r.Reg16(n).LoadLo(val)
		return
	}
	r.Reg16(n - 4).LoadHi(val)
}

// Segment returns the segment register for the Segment value. Panics if the
// selector is out of range.
func (r *Registers) Segment(s Segment) *Register {
	switch s {
	case ES:
		return &r.ES
	case CS:
		return &r.CS
	case SS:
		return &r.SS
	case DS:
		return &r.DS
	}
	panic(protocolViolation("segment", uint8(s)))
}

// Named returns the register with the name. Names are the same as the
// register labels but are not case sensitive. The second return value is false
// if there is no register with that name.
func (r *Registers) Named(name string) (*Register, bool) {
	switch strings.ToUpper(name) {
	case "AX":
		return &r.AX, true
	case "CX":
		return &r.CX, true
	case "DX":
		return &r.DX, true
	case "BX":
		return &r.BX, true
	case "SP":
		return &r.SP, true
	case "BP":
		return &r.BP, true
	case "SI":
		return &r.SI, true
	case "DI":
		return &r.DI, true
	case "ES":
		return &r.ES, true
	case "CS":
		return &r.CS, true
	case "SS":
		return &r.SS, true
	case "DS":
		return &r.DS, true
	case "IP":
		return &r.IP, true
	}
	return nil, false
}

func (r Registers) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("%s %s %s %s  %s %s %s %s\n", r.AX, r.BX, r.CX, r.DX, r.SP, r.BP, r.SI, r.DI))
	s.WriteString(fmt.Sprintf("%s %s %s %s  %s  %s", r.DS, r.ES, r.SS, r.CS, r.IP, r.Flags))
	return s.String()
}
