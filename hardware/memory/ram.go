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

package memory

import (
	"fmt"
	"math/rand"
	"strings"
)

// RAM is a read/write memory device.
type RAM struct {
	data []uint8
}

// NewRAM is the preferred method of initialisation for the RAM type.
func NewRAM(size uint32) *RAM {
	return &RAM{
		data: make([]uint8, size),
	}
}

// Read implements the Location interface.
func (ram *RAM) Read(offset uint32) (uint8, error) {
	return ram.data[offset], nil
}

// Write implements the Location interface.
func (ram *RAM) Write(offset uint32, data uint8) error {
	ram.data[offset] = data
	return nil
}

// Size returns the number of bytes in the RAM.
func (ram *RAM) Size() uint32 {
	return uint32(len(ram.data))
}

// Reset clears the RAM. If src is not nil then the RAM is filled with random
// values from that source.
func (ram *RAM) Reset(src *rand.Rand) {
	for i := range ram.data {
		if src == nil {
			ram.data[i] = 0
		} else {
			ram.data[i] = uint8(src.Intn(0xff))
		}
	}
}

// Dump returns a hex dump of length bytes starting at offset.
func (ram *RAM) Dump(offset uint32, length uint32) string {
	return dump(ram.data, offset, length)
}

// ROM is a read only memory device. Writes are ignored.
type ROM struct {
	data []uint8
}

// NewROM is the preferred method of initialisation for the ROM type. The
// data is copied.
func NewROM(data []uint8) *ROM {
	rom := &ROM{
		data: make([]uint8, len(data)),
	}
	copy(rom.data, data)
	return rom
}

// Read implements the Location interface.
func (rom *ROM) Read(offset uint32) (uint8, error) {
	return rom.data[offset], nil
}

// Write implements the Location interface.
func (rom *ROM) Write(_ uint32, _ uint8) error {
	return nil
}

// Size returns the number of bytes in the ROM.
func (rom *ROM) Size() uint32 {
	return uint32(len(rom.data))
}

func dump(data []uint8, offset uint32, length uint32) string {
	s := strings.Builder{}
	end := offset + length
	if end > uint32(len(data)) {
		end = uint32(len(data))
	}
	for a := offset &^ 0x0f; a < end; a += 16 {
		s.WriteString(fmt.Sprintf("%05x |", a))
		for x := uint32(0); x < 16; x++ {
			if a+x < offset || a+x >= end {
				s.WriteString("   ")
			} else {
				s.WriteString(fmt.Sprintf(" %02x", data[a+x]))
			}
		}
		s.WriteString("\n")
	}
	return s.String()
}
