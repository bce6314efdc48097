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

package debugger

import (
	"fmt"
	"strconv"
	"strings"
)

// parseNumber parses the string as an unsigned number. The base of the
// number can be forced with a prefix or suffix, otherwise defaultBase is
// used:
//
//	0x1234, $1234, 1234h	hexadecimal
//	#1234			decimal
func parseNumber(s string, defaultBase int) (uint64, error) {
	base := defaultBase
	n := s

	switch {
	case strings.HasPrefix(n, "0x") || strings.HasPrefix(n, "0X"):
		n = n[2:]
		base = 16
	case strings.HasPrefix(n, "$"):
		n = n[1:]
		base = 16
	case strings.HasPrefix(n, "#"):
		n = n[1:]
		base = 10
	case len(n) > 1 && (strings.HasSuffix(n, "h") || strings.HasSuffix(n, "H")):
		n = n[:len(n)-1]
		base = 16
	}

	v, err := strconv.ParseUint(n, base, 32)
	if err != nil {
		return 0, fmt.Errorf("%s is not a valid number", s)
	}

	return v, nil
}

// parseWord parses the string as a register name or as a hexadecimal number
// no larger than 16 bits.
func (dbg *Debugger) parseWord(s string) (uint16, error) {
	if r, ok := dbg.board.CPU.Regs.Named(s); ok {
		return r.Value(), nil
	}

	v, err := parseNumber(s, 16)
	if err != nil {
		return 0, err
	}
	if v > 0xffff {
		return 0, fmt.Errorf("%s is out of range", s)
	}

	return uint16(v), nil
}

// parseAddress parses a segment:offset pair or a linear address. A linear
// address is converted to a segment:offset pair with a segment aligned to a
// 64KB boundary.
func (dbg *Debugger) parseAddress(s string) (uint16, uint16, error) {
	if seg, off, ok := strings.Cut(s, ":"); ok {
		segment, err := dbg.parseWord(seg)
		if err != nil {
			return 0, 0, err
		}
		offset, err := dbg.parseWord(off)
		if err != nil {
			return 0, 0, err
		}
		return segment, offset, nil
	}

	v, err := parseNumber(s, 16)
	if err != nil {
		return 0, 0, err
	}
	if v > 0xfffff {
		return 0, 0, fmt.Errorf("%s is outside of the address space", s)
	}

	return uint16((v >> 4) & 0xf000), uint16(v), nil
}
