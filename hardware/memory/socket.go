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

	"github.com/jetsetilly/gopher8088/curated"
)

// ImageError is returned by Socket.Insert() when the image cannot be placed
// in the socket.
const ImageError = "memory: cannot insert image: %s"

// Socket is a fixed size region of the address space that holds a
// replaceable ROM image. The image is aligned with the end of the socket.
// Addresses in the socket that are not covered by the image read as 0xff.
//
// Writes to the socket are ignored.
type Socket struct {
	size uint32
	rom  *ROM
}

// NewSocket is the preferred method of initialisation for the Socket type.
func NewSocket(size uint32) *Socket {
	return &Socket{
		size: size,
	}
}

// Insert places a copy of the data in the socket, replacing any previous
// image.
func (skt *Socket) Insert(data []uint8) error {
	if len(data) == 0 {
		return curated.Errorf(ImageError, "empty image")
	}
	if uint32(len(data)) > skt.size {
		return curated.Errorf(ImageError, fmt.Sprintf("image of %d bytes is larger than socket (%d bytes)", len(data), skt.size))
	}
	skt.rom = NewROM(data)
	return nil
}

// Eject removes the image from the socket.
func (skt *Socket) Eject() {
	skt.rom = nil
}

// Occupied returns true if an image has been inserted.
func (skt *Socket) Occupied() bool {
	return skt.rom != nil
}

// Size returns the size of the socket in bytes.
func (skt *Socket) Size() uint32 {
	return skt.size
}

// Read implements the Location interface.
func (skt *Socket) Read(offset uint32) (uint8, error) {
	if skt.rom == nil {
		return 0xff, nil
	}
	base := skt.size - skt.rom.Size()
	if offset < base {
		return 0xff, nil
	}
	return skt.rom.Read(offset - base)
}

// Write implements the Location interface.
func (skt *Socket) Write(_ uint32, _ uint8) error {
	return nil
}
