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
	"io"
	"strings"

	"github.com/jetsetilly/gopher8088/curated"
	"github.com/jetsetilly/gopher8088/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher8088/hardware/memory"
)

// maxPrefixes is the number of prefix bytes that will be decoded before the
// prefixes are treated as an instruction on their own.
const maxPrefixes = 4

// reader fetches successive bytes of an instruction. offsets wrap within the
// segment in the same way as the processor's instruction pointer.
type reader struct {
	mem     memory.Bus
	segment uint16
	offset  uint16
	bytes   []uint8
	err     error
}

func (r *reader) fetch8() uint8 {
	v, err := r.mem.Read(memory.Linear(r.segment, r.offset))
	if err != nil && !curated.Is(err, memory.AddressError) && r.err == nil {
		r.err = err
	}
	r.offset++
	r.bytes = append(r.bytes, v)
	return v
}

func (r *reader) fetch16() uint16 {
	lo := r.fetch8()
	hi := r.fetch8()
	return uint16(hi)<<8 | uint16(lo)
}

// Disassemble count instructions starting at segment:offset. Unmapped
// memory is disassembled as though it contained 0xff.
func Disassemble(mem memory.Bus, segment uint16, offset uint16, count int) ([]Entry, error) {
	entries := make([]Entry, 0, count)
	for i := 0; i < count; i++ {
		e, err := Decode(mem, segment, offset)
		if err != nil {
			return entries, err
		}
		entries = append(entries, e)
		offset = e.Next()
	}
	return entries, nil
}

// Decode the single instruction at segment:offset.
func Decode(mem memory.Bus, segment uint16, offset uint16) (Entry, error) {
	r := &reader{
		mem:     mem,
		segment: segment,
		offset:  offset,
	}

	e := Entry{
		Segment: segment,
		Offset:  offset,
	}

	override := ""

	opcode := r.fetch8()
	defn := &instructions.Definitions[opcode]

	for n := 0; defn.Prefix && n < maxPrefixes; n++ {
		if defn.Undocumented {
			e.Undocumented = true
		}
		if defn.Operator[len(defn.Operator)-1] == ':' {
			override = defn.Operator
		} else {
			e.Prefixes = append(e.Prefixes, defn.Operator)
		}
		opcode = r.fetch8()
		defn = &instructions.Definitions[opcode]
	}

	// a long run of prefixes is shown as a lone prefix
	if defn.Prefix {
		e.Bytes = r.bytes[:1]
		e.Prefixes = nil
		e.Mnemonic = instructions.Definitions[e.Bytes[0]].Operator
		e.Defn = &instructions.Definitions[e.Bytes[0]]
		return e, r.err
	}

	e.Defn = defn
	e.Mnemonic = defn.Operator
	operands := defn.Operands
	if defn.Undocumented {
		e.Undocumented = true
	}

	var m modrm
	if defn.ModRM {
		m = decodeModRM(r, r.fetch8())

		if defn.Group != instructions.NoGroup {
			member, ok := defn.Member(m.reg)
			if !ok {
				return invalid(e, r), r.err
			}
			e.Mnemonic = member.Operator
			if member.Operands != "" {
				operands = member.Operands
			}
			if member.Undocumented {
				e.Undocumented = true
			}
		}
	}

	f := formatter{
		r:        r,
		defn:     defn,
		m:        m,
		override: override,
	}

	s, ok := f.operands(operands)
	if !ok {
		return invalid(e, r), r.err
	}
	e.Operands = s
	e.Bytes = r.bytes

	// segment overrides of instructions with no explicit memory operand,
	// such as the string instructions, are shown as a prefix
	if override != "" && !strings.Contains(s, override) {
		e.Prefixes = append(e.Prefixes, override)
	}

	return e, r.err
}

func invalid(e Entry, r *reader) Entry {
	e.Bytes = r.bytes[:1]
	e.Prefixes = nil
	e.Defn = nil
	e.Undocumented = false
	e.Invalid = true
	e.Mnemonic = "DB"
	e.Operands = hex8(e.Bytes[0])
	return e
}

// Write the disassembly of count instructions starting at segment:offset to
// the io.Writer. One instruction per line.
func Write(output io.Writer, mem memory.Bus, segment uint16, offset uint16, count int) error {
	entries, err := Disassemble(mem, segment, offset, count)
	for _, e := range entries {
		if _, werr := io.WriteString(output, fmt.Sprintf("%s\n", e)); werr != nil {
			return curated.Errorf("disassembly: %v", werr)
		}
	}
	return err
}
