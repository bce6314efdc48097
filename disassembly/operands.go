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
	"github.com/jetsetilly/gopher8088/hardware/cpu/registers"
)

// base registers for the rm field of the ModRM byte
var rmBase = [8]string{"BX+SI", "BX+DI", "BP+SI", "BP+DI", "SI", "DI", "BP", "BX"}

type modrm struct {
	mod  uint8
	reg  uint8
	rm   uint8
	disp uint16

	// displacement only addressing. the displacement is the address
	direct bool
}

func decodeModRM(r *reader, b uint8) modrm {
	m := modrm{
		mod: b >> 6,
		reg: (b >> 3) & 0x07,
		rm:  b & 0x07,
	}

	switch m.mod {
	case 0:
		if m.rm == 6 {
			m.direct = true
			m.disp = r.fetch16()
		}
	case 1:
		m.disp = uint16(int16(int8(r.fetch8())))
	case 2:
		m.disp = r.fetch16()
	}

	return m
}

type formatter struct {
	r        *reader
	defn     *instructions.Definition
	m        modrm
	override string
}

// hex formats a value in Intel notation. values beginning with a letter are
// given a leading zero.
func hex(v uint16, digits int) string {
	s := fmt.Sprintf("%0*Xh", digits, v)
	if s[0] >= 'A' && s[0] <= 'F' {
		return "0" + s
	}
	return s
}

func hex8(v uint8) string {
	return hex(uint16(v), 2)
}

func hex16(v uint16) string {
	return hex(v, 4)
}

// operands formats the operand notation of a definition. returns false if
// the ModRM byte does not form a valid operand for the notation.
func (f formatter) operands(notation string) (string, bool) {
	if notation == "" {
		return "", true
	}

	tokens := strings.Split(notation, ",")

	// memory operands need a size if there is no register operand to imply
	// it
	sized := true
	for _, t := range tokens {
		if t[0] == 'G' || t[0] == 'S' {
			sized = false
		}
	}

	s := make([]string, 0, len(tokens))
	for _, t := range tokens {
		o, ok := f.operand(t, sized)
		if !ok {
			return "", false
		}
		s = append(s, o)
	}

	return strings.Join(s, ", "), true
}

func (f formatter) operand(t string, sized bool) (string, bool) {
	switch t {
	case "Eb":
		return f.rmOperand(false, sized), true
	case "Ew":
		return f.rmOperand(true, sized), true
	case "E":
		return f.rmOperand(f.defn.IsWide(), sized), true
	case "Gb":
		return registers.Reg8Name(f.m.reg), true
	case "Gw":
		return registers.Reg16Name(f.m.reg), true
	case "Sw":
		if f.m.reg > 3 {
			return "", false
		}
		return registers.Segment(f.m.reg).String(), true
	case "M":
		if f.m.mod == 3 {
			return "", false
		}
		return f.memory(""), true
	case "Mp":
		if f.m.mod == 3 {
			return "", false
		}
		return f.memory("FAR "), true
	case "Ib":
		return hex8(f.r.fetch8()), true
	case "Iw":
		return hex16(f.r.fetch16()), true
	case "Is":
		return hex16(uint16(int16(int8(f.r.fetch8())))), true
	case "I":
		if f.defn.IsWide() {
			return hex16(f.r.fetch16()), true
		}
		return hex8(f.r.fetch8()), true
	case "Jb":
		rel := int8(f.r.fetch8())
		return hex16(f.r.offset + uint16(int16(rel))), true
	case "Jw":
		rel := f.r.fetch16()
		return hex16(f.r.offset + rel), true
	case "Ob", "Ow":
		return fmt.Sprintf("%s[%s]", f.override, hex16(f.r.fetch16())), true
	case "Ap":
		off := f.r.fetch16()
		seg := f.r.fetch16()
		return fmt.Sprintf("%04X:%04X", seg, off), true
	}

	// literal
	return t, true
}

func (f formatter) rmOperand(wide bool, sized bool) string {
	if f.m.mod == 3 {
		if wide {
			return registers.Reg16Name(f.m.rm)
		}
		return registers.Reg8Name(f.m.rm)
	}

	if !sized {
		return f.memory("")
	}
	if wide {
		return f.memory("WORD PTR ")
	}
	return f.memory("BYTE PTR ")
}

func (f formatter) memory(size string) string {
	if f.m.direct {
		return fmt.Sprintf("%s%s[%s]", size, f.override, hex16(f.m.disp))
	}

	s := rmBase[f.m.rm]
	switch f.m.mod {
	case 1:
		d := int16(f.m.disp)
		if d < 0 {
			s = fmt.Sprintf("%s-%s", s, hex8(uint8(-d)))
		} else {
			s = fmt.Sprintf("%s+%s", s, hex8(uint8(d)))
		}
	case 2:
		s = fmt.Sprintf("%s+%s", s, hex16(f.m.disp))
	}

	return fmt.Sprintf("%s%s[%s]", size, f.override, s)
}
