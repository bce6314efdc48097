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

package memory_test

import (
	"testing"

	"github.com/jetsetilly/gopher8088/curated"
	"github.com/jetsetilly/gopher8088/hardware/memory"
	"github.com/jetsetilly/gopher8088/test"
)

func TestMapping(t *testing.T) {
	m := memory.NewMemoryMap()
	ram := memory.NewRAM(0x10000)
	rom := memory.NewROM([]uint8{0xea, 0x5b, 0xe0, 0x00, 0xf0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0})

	test.ExpectSuccess(t, m.Register(0, ram.Size(), ram, "RAM"))
	test.ExpectSuccess(t, m.Register(0xffff0, rom.Size(), rom, "ROM"))

	// overlapping devices
	err := m.Register(0x8000, 0x100, memory.NewRAM(0x100), "overlap")
	test.ExpectSuccess(t, curated.Is(err, memory.MappingError))

	// unaligned devices
	err = m.Register(0x20001, 0x10, memory.NewRAM(0x10), "unaligned")
	test.ExpectSuccess(t, curated.Is(err, memory.MappingError))

	// outside of address space
	err = m.Register(0xffff0, 0x20, memory.NewRAM(0x20), "too big")
	test.ExpectSuccess(t, curated.Is(err, memory.MappingError))

	test.ExpectSuccess(t, m.Write(0x1234, 0x56))
	v, err := m.Read(0x1234)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, uint8(0x56))

	v, err = m.Read(0xffff0)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, uint8(0xea))

	// writes to ROM are ignored
	test.ExpectSuccess(t, m.Write(0xffff0, 0x00))
	v, _ = m.Read(0xffff0)
	test.ExpectEquality(t, v, uint8(0xea))

	label, ok := m.Mapped(0xffff5)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, label, "ROM")
}

func TestUnmapped(t *testing.T) {
	m := memory.NewMemoryMap()
	v, err := m.Read(0xa0000)
	test.ExpectSuccess(t, curated.Is(err, memory.AddressError))
	test.ExpectEquality(t, v, uint8(0xff))

	err = m.Write(0xa0000, 0)
	test.ExpectSuccess(t, curated.Is(err, memory.AddressError))

	_, ok := m.Mapped(0xa0000)
	test.ExpectFailure(t, ok)
}

func TestIOMap(t *testing.T) {
	m := memory.NewIOMap()
	ram := memory.NewRAM(2)

	// single byte granularity in the I/O space
	test.ExpectSuccess(t, m.Register(0x21, 2, ram, "ports"))
	test.ExpectSuccess(t, m.Write(0x22, 0x99))
	v, err := m.Read(0x22)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, uint8(0x99))

	_, err = m.Read(0x20)
	test.ExpectSuccess(t, curated.Is(err, memory.AddressError))
}

func TestLinear(t *testing.T) {
	test.ExpectEquality(t, memory.Linear(0xffff, 0x0000), uint32(0xffff0))
	test.ExpectEquality(t, memory.Linear(0x1234, 0x5678), uint32(0x179b8))

	// wrap around at 1MB
	test.ExpectEquality(t, memory.Linear(0xffff, 0x0010), uint32(0x00000))
}

func TestSocket(t *testing.T) {
	m := memory.NewMemoryMap()
	skt := memory.NewSocket(0x10000)
	test.ExpectSuccess(t, m.Register(0xf0000, skt.Size(), skt, "ROM"))

	// empty socket reads as open bus without an error
	v, err := m.Read(0xffff0)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, uint8(0xff))
	test.ExpectFailure(t, skt.Occupied())

	// image is aligned with the top of the socket
	test.ExpectSuccess(t, skt.Insert([]uint8{0x12, 0x34}))
	test.ExpectSuccess(t, skt.Occupied())
	v, _ = m.Read(0xffffe)
	test.ExpectEquality(t, v, uint8(0x12))
	v, _ = m.Read(0xfffff)
	test.ExpectEquality(t, v, uint8(0x34))
	v, _ = m.Read(0xffffd)
	test.ExpectEquality(t, v, uint8(0xff))

	err = skt.Insert(make([]uint8, 0x10001))
	test.ExpectSuccess(t, curated.Is(err, memory.ImageError))
	err = skt.Insert(nil)
	test.ExpectSuccess(t, curated.Is(err, memory.ImageError))

	skt.Eject()
	v, _ = m.Read(0xffffe)
	test.ExpectEquality(t, v, uint8(0xff))
}
