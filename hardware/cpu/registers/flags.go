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
	"strings"
)

// Flags is the flags register of the processor. Each flag is stored as an
// independent boolean. The packed form of the register is available with
// the Value() function.
type Flags struct {
	Carry     bool
	Parity    bool
	AuxCarry  bool
	Zero      bool
	Sign      bool
	Trap      bool
	Interrupt bool
	Direction bool
	Overflow  bool
}

// bit positions of the flags in the packed value
const (
	CarryBit     = 0x0001
	ParityBit    = 0x0004
	AuxCarryBit  = 0x0010
	ZeroBit      = 0x0040
	SignBit      = 0x0080
	TrapBit      = 0x0100
	InterruptBit = 0x0200
	DirectionBit = 0x0400
	OverflowBit  = 0x0800
)

// bits that always read as one on the 8088. bit 1 and the top four bits
const alwaysSet = 0xf002

// Label returns the canonical name for the flags register.
func (fl Flags) Label() string {
	return "FLAGS"
}

// String returns the flags in the order they appear in the packed value,
// most significant first. Set flags are shown in upper case. The control
// flags are separated from the status flags by a space.
func (fl Flags) String() string {
	s := strings.Builder{}

	f := func(b bool, c rune) {
		if b {
			s.WriteRune(c)
		} else {
			s.WriteRune(c + 'a' - 'A')
		}
	}

	f(fl.Overflow, 'O')
	f(fl.Direction, 'D')
	f(fl.Interrupt, 'I')
	f(fl.Trap, 'T')
	s.WriteRune(' ')
	f(fl.Sign, 'S')
	f(fl.Zero, 'Z')
	f(fl.AuxCarry, 'A')
	f(fl.Parity, 'P')
	f(fl.Carry, 'C')

	return s.String()
}

// Reset all flags to false.
func (fl *Flags) Reset() {
	*fl = Flags{}
}

// Value returns the packed form of the flags register, as pushed onto the
// stack by PUSHF.
func (fl Flags) Value() uint16 {
	var v uint16 = alwaysSet

	if fl.Carry {
		v |= CarryBit
	}
	if fl.Parity {
		v |= ParityBit
	}
	if fl.AuxCarry {
		v |= AuxCarryBit
	}
	if fl.Zero {
		v |= ZeroBit
	}
	if fl.Sign {
		v |= SignBit
	}
	if fl.Trap {
		v |= TrapBit
	}
	if fl.Interrupt {
		v |= InterruptBit
	}
	if fl.Direction {
		v |= DirectionBit
	}
	if fl.Overflow {
		v |= OverflowBit
	}

	return v
}

// FromValue sets the flags from the packed value.
func (fl *Flags) FromValue(v uint16) {
	fl.LoadLo(uint8(v))
	fl.Trap = v&TrapBit == TrapBit
	fl.Interrupt = v&InterruptBit == InterruptBit
	fl.Direction = v&DirectionBit == DirectionBit
	fl.Overflow = v&OverflowBit == OverflowBit
}

// LoadLo sets only those flags that are in the low byte of the packed value.
// Used by SAHF.
func (fl *Flags) LoadLo(v uint8) {
	fl.Carry = v&CarryBit == CarryBit
	fl.Parity = v&ParityBit == ParityBit
	fl.AuxCarry = v&AuxCarryBit == AuxCarryBit
	fl.Zero = v&ZeroBit == ZeroBit
	fl.Sign = v&SignBit == SignBit
}

// Names of the flags in the order used by Get().
var FlagNames = []string{"CF", "PF", "AF", "ZF", "SF", "TF", "IF", "DF", "OF"}

// Get returns the value of the named flag. Panics if the name is not one of
// FlagNames.
func (fl Flags) Get(name string) bool {
	switch name {
	case "CF":
		return fl.Carry
	case "PF":
		return fl.Parity
	case "AF":
		return fl.AuxCarry
	case "ZF":
		return fl.Zero
	case "SF":
		return fl.Sign
	case "TF":
		return fl.Trap
	case "IF":
		return fl.Interrupt
	case "DF":
		return fl.Direction
	case "OF":
		return fl.Overflow
	}
	panic(protocolViolation("flag", name))
}
