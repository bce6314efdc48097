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
	"sort"
	"strings"

	"github.com/jetsetilly/gopher8088/curated"
)

// AddressError is returned when an address is accessed that has no device
// registered for it.
const AddressError = "memory: unmapped address in %s (%#05x)"

// MappingError is returned by Register() when a device cannot be placed at
// the requested address.
const MappingError = "memory: cannot map %s in %s: %s"

// Location is implemented by all devices that can be placed in a Map. The
// offset argument is relative to the base address the device was registered
// at.
type Location interface {
	Read(offset uint32) (uint8, error)
	Write(offset uint32, data uint8) error
}

// Bus is implemented by the Map type. Addresses are absolute.
type Bus interface {
	Read(address uint32) (uint8, error)
	Write(address uint32, data uint8) error
}

type region struct {
	base  uint32
	size  uint32
	loc   Location
	label string
}

// Map is an address space with devices registered at address ranges. The
// same type is used for the 1MB memory address space and the 64KB I/O port
// address space.
//
// Devices are registered with a granularity. An address space with a
// granularity of 4 will only accept devices that start and end on a 16 byte
// boundary. The granularity determines the size of the lookup table.
type Map struct {
	label   string
	mask    uint32
	gran    uint
	regions []region

	// index into regions for each granule. -1 indicates no device
	lookup []int16
}

// NewMemoryMap returns a Map suitable for the 20 bit memory address space.
func NewMemoryMap() *Map {
	return NewMap("memory", 20, 4)
}

// NewIOMap returns a Map suitable for the 16 bit I/O port address space.
func NewIOMap() *Map {
	return NewMap("io", 16, 0)
}

// NewMap is the preferred method of initialisation for the Map type.
func NewMap(label string, addressBits uint, granularity uint) *Map {
	m := &Map{
		label:  label,
		mask:   (1 << addressBits) - 1,
		gran:   granularity,
		lookup: make([]int16, 1<<(addressBits-granularity)),
	}
	for i := range m.lookup {
		m.lookup[i] = -1
	}
	return m
}

// Register places a device in the address space at [base, base+size).
// Overlapping devices are not allowed.
func (m *Map) Register(base uint32, size uint32, loc Location, label string) error {
	if size == 0 {
		return curated.Errorf(MappingError, label, m.label, "zero size")
	}
	if base+size-1 > m.mask || base+size < base {
		return curated.Errorf(MappingError, label, m.label, "outside of address space")
	}
	g := uint32(1<<m.gran) - 1
	if base&g != 0 || size&g != 0 {
		return curated.Errorf(MappingError, label, m.label, fmt.Sprintf("not aligned to %d bytes", g+1))
	}

	start := base >> m.gran
	end := (base + size) >> m.gran
	for i := start; i < end; i++ {
		if m.lookup[i] != -1 {
			return curated.Errorf(MappingError, label, m.label,
				fmt.Sprintf("overlaps with %s", m.regions[m.lookup[i]].label))
		}
	}

	m.regions = append(m.regions, region{base: base, size: size, loc: loc, label: label})
	idx := int16(len(m.regions) - 1)
	for i := start; i < end; i++ {
		m.lookup[i] = idx
	}

	return nil
}

func (m *Map) find(address uint32) (*region, bool) {
	idx := m.lookup[(address&m.mask)>>m.gran]
	if idx == -1 {
		return nil, false
	}
	return &m.regions[idx], true
}

// Read implements the Bus interface.
func (m *Map) Read(address uint32) (uint8, error) {
	address &= m.mask
	r, ok := m.find(address)
	if !ok {
		return 0xff, curated.Errorf(AddressError, m.label, address)
	}
	return r.loc.Read(address - r.base)
}

// Write implements the Bus interface.
func (m *Map) Write(address uint32, data uint8) error {
	address &= m.mask
	r, ok := m.find(address)
	if !ok {
		return curated.Errorf(AddressError, m.label, address)
	}
	return r.loc.Write(address-r.base, data)
}

// Mapped returns the label of the device at the address. The second return
// value is false if no device is mapped at the address.
func (m *Map) Mapped(address uint32) (string, bool) {
	r, ok := m.find(address & m.mask)
	if !ok {
		return "", false
	}
	return r.label, true
}

// Label returns the name of the address space.
func (m *Map) Label() string {
	return m.label
}

func (m *Map) String() string {
	r := make([]region, len(m.regions))
	copy(r, m.regions)
	sort.Slice(r, func(i, j int) bool { return r[i].base < r[j].base })

	s := strings.Builder{}
	for _, e := range r {
		s.WriteString(fmt.Sprintf("%05x -> %05x\t%s\n", e.base, e.base+e.size-1, e.label))
	}
	return s.String()
}

// Linear converts a segment and offset pair to a 20 bit physical address.
// Addresses above 1MB wrap around to zero.
func Linear(segment uint16, offset uint16) uint32 {
	return ((uint32(segment) << 4) + uint32(offset)) & 0xfffff
}
