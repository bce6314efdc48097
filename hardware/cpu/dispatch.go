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

import "fmt"

// handler executes a decoded opcode. the ModRM byte and displacement, if the
// opcode has them, have been decoded before the handler is called.
type handler func(mc *CPU, ins *instruction) error

// operations is the dispatch table. the index is the opcode.
var operations [256]handler

func set(h handler, opcodes ...int) {
	for _, op := range opcodes {
		operations[op] = h
	}
}

func span(from int, to int) []int {
	s := make([]int, 0, to-from+1)
	for op := from; op <= to; op++ {
		s = append(s, op)
	}
	return s
}

func init() {
	// arithmetic and logic in the first quarter of the table
	for op := 0x00; op < 0x40; op += 0x08 {
		set(arith, span(op, op+5)...)
	}
	set(pushSegment, 0x06, 0x0e, 0x16, 0x1e)
	set(popSegment, 0x07, 0x0f, 0x17, 0x1f)
	set(segmentOverride, 0x26, 0x2e, 0x36, 0x3e)
	set(daa, 0x27)
	set(das, 0x2f)
	set(aaa, 0x37)
	set(aas, 0x3f)

	set(incReg, span(0x40, 0x47)...)
	set(decReg, span(0x48, 0x4f)...)
	set(pushReg, span(0x50, 0x57)...)
	set(popReg, span(0x58, 0x5f)...)

	// 0x60 to 0x6f are aliases of the conditional jumps on the 8088
	set(jcc, span(0x60, 0x7f)...)

	set(group1, span(0x80, 0x83)...)
	set(testRM, 0x84, 0x85)
	set(xchgRM, 0x86, 0x87)
	set(movRM, span(0x88, 0x8b)...)
	set(movFromSegment, 0x8c)
	set(lea, 0x8d)
	set(movToSegment, 0x8e)
	set(popRM, 0x8f)

	set(xchgAX, span(0x90, 0x97)...)
	set(cbw, 0x98)
	set(cwd, 0x99)
	set(callFar, 0x9a)
	set(wait, 0x9b)
	set(pushf, 0x9c)
	set(popf, 0x9d)
	set(sahf, 0x9e)
	set(lahf, 0x9f)

	set(movAccMem, span(0xa0, 0xa3)...)
	set(stringOp, 0xa4, 0xa5, 0xa6, 0xa7, 0xaa, 0xab, 0xac, 0xad, 0xae, 0xaf)
	set(testAcc, 0xa8, 0xa9)
	set(movRegImm, span(0xb0, 0xbf)...)

	// 0xc0, 0xc1, 0xc8 and 0xc9 are aliases of the return instructions on
	// the 8088
	set(ret, 0xc0, 0xc1, 0xc2, 0xc3)
	set(loadFarPointer, 0xc4, 0xc5)
	set(movRMImm, 0xc6, 0xc7)
	set(retFar, 0xc8, 0xc9, 0xca, 0xcb)
	set(int3, 0xcc)
	set(intImm, 0xcd)
	set(into, 0xce)
	set(iret, 0xcf)

	set(group2, span(0xd0, 0xd3)...)
	set(aam, 0xd4)
	set(aad, 0xd5)
	set(salc, 0xd6)
	set(xlat, 0xd7)
	set(esc, span(0xd8, 0xdf)...)

	set(loop, span(0xe0, 0xe3)...)
	set(in, 0xe4, 0xe5, 0xec, 0xed)
	set(out, 0xe6, 0xe7, 0xee, 0xef)
	set(callNear, 0xe8)
	set(jmpNear, 0xe9)
	set(jmpFar, 0xea)
	set(jmpShort, 0xeb)

	set(lock, 0xf0, 0xf1)
	set(repeat, 0xf2, 0xf3)
	set(hlt, 0xf4)
	set(flagOp, 0xf5, 0xf8, 0xf9, 0xfa, 0xfb, 0xfc, 0xfd)
	set(group3, 0xf6, 0xf7)
	set(group4, 0xfe)
	set(group5, 0xff)

	for op, h := range operations {
		if h == nil {
			panic(fmt.Sprintf("cpu: no handler for opcode %02x", op))
		}
	}
}
