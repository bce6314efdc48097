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

package buscycle

import (
	"fmt"

	"github.com/jetsetilly/gopher8088/hardware/memory"
)

// Kind of bus transaction.
type Kind int

// List of valid Kind values. Passive is the condition of the bus when no
// transaction is in flight.
const (
	Passive Kind = iota
	InstructionFetch
	ReadMemory
	WriteMemory
	ReadPort
	WritePort
	InterruptAcknowledge
	Halt
)

func (k Kind) String() string {
	switch k {
	case Passive:
		return "passive"
	case InstructionFetch:
		return "fetch"
	case ReadMemory:
		return "memory read"
	case WriteMemory:
		return "memory write"
	case ReadPort:
		return "port read"
	case WritePort:
		return "port write"
	case InterruptAcknowledge:
		return "interrupt acknowledge"
	case Halt:
		return "halt"
	}
	return "unknown"
}

// IsPort returns true if the transaction is addressed to the I/O space.
func (k Kind) IsPort() bool {
	return k == ReadPort || k == WritePort
}

// IsWrite returns true if the transaction places data on the bus.
func (k Kind) IsWrite() bool {
	return k == WriteMemory || k == WritePort
}

// Phase of a bus transaction. Each phase lasts for one clock tick and
// corresponds to one of the T-states of the 8088 bus cycle.
type Phase int

// List of valid Phase values.
const (
	None Phase = iota
	Address
	Status
	Data
	Clear
)

func (p Phase) String() string {
	switch p {
	case None:
		return "-"
	case Address:
		return "T1"
	case Status:
		return "T2"
	case Data:
		return "T3"
	case Clear:
		return "T4"
	}
	return "?"
}

// Transaction is a single byte bus access.
type Transaction struct {
	Kind  Kind
	Phase Phase

	// the port number is in Offset for port transactions. Segment is unused
	Segment uint16
	Offset  uint16

	// the data on the bus. for writes this is valid from the Address phase.
	// for reads it is valid from the Data phase
	Data uint8

	// explicit transactions are those requested by BeginAccess(). implicit
	// transactions are prefetches
	explicit bool

	// a prefetch started before a Flush() is completed but the data is not
	// placed in the queue
	discard bool
}

// Address returns the address on the bus. For memory transactions this is
// the 20 bit linear address. For port transactions it is the port number.
func (t Transaction) Address() uint32 {
	if t.Kind.IsPort() {
		return uint32(t.Offset)
	}
	return memory.Linear(t.Segment, t.Offset)
}

func (t Transaction) String() string {
	switch t.Kind {
	case Passive:
		return "passive"
	case InterruptAcknowledge, Halt:
		return fmt.Sprintf("%s %s", t.Phase, t.Kind)
	}
	if t.Kind.IsPort() {
		return fmt.Sprintf("%s %s %04x=%02x", t.Phase, t.Kind, t.Offset, t.Data)
	}
	return fmt.Sprintf("%s %s %04x:%04x=%02x", t.Phase, t.Kind, t.Segment, t.Offset, t.Data)
}
