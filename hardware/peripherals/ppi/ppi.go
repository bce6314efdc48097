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

package ppi

import (
	"fmt"

	"github.com/jetsetilly/gopher8088/logger"
)

// Port offsets.
const (
	PortA   = 0
	PortB   = 1
	PortC   = 2
	Control = 3
)

// Port B bits.
const (
	PB0TimerGate   = 0x01
	PB1SpeakerData = 0x02
	PB3SwitchHigh  = 0x08
	PB7KeyboardAck = 0x80
)

// PC5 is the bit in port C that reflects the output of timer counter two.
const PC5TimerOut = 0x20

// SpeakerCounter is the timer counter connected to the speaker.
const SpeakerCounter = 2

// Timer defines the timer functions required by the PPI.
type Timer interface {
	SetGate(n int, level bool)
	Out(n int) bool
}

// PPI is an 8255 programmable peripheral interface.
type PPI struct {
	perm  logger.Permission
	timer Timer

	portB    uint8
	scancode uint8
	switches uint8
}

// NewPPI is the preferred method of initialisation for the PPI type. The
// switches value is the setting of the motherboard configuration switches.
func NewPPI(perm logger.Permission, timer Timer, switches uint8) *PPI {
	ppi := &PPI{
		perm:     perm,
		timer:    timer,
		switches: switches,
	}
	ppi.Reset()
	return ppi
}

// Reset the PPI. The configuration switches are not changed.
func (ppi *PPI) Reset() {
	ppi.scancode = 0
	ppi.writePortB(0)
}

func (ppi *PPI) String() string {
	return fmt.Sprintf("PB=%08b scancode=%02x switches=%08b", ppi.portB, ppi.scancode, ppi.switches)
}

// SetSwitches changes the configuration switches.
func (ppi *PPI) SetSwitches(switches uint8) {
	ppi.switches = switches
}

// Latch stores a scancode for the CPU to read from port A.
func (ppi *PPI) Latch(scancode uint8) {
	ppi.scancode = scancode
}

// Scancode returns the most recently latched scancode.
func (ppi *PPI) Scancode() uint8 {
	return ppi.scancode
}

// PortB returns the value most recently written to port B.
func (ppi *PPI) PortB() uint8 {
	return ppi.portB
}

// SpeakerLevel returns the level of the line driving the speaker. The
// speaker data bit is combined with the output of timer counter two.
func (ppi *PPI) SpeakerLevel() bool {
	return ppi.portB&PB1SpeakerData == PB1SpeakerData && ppi.timer.Out(SpeakerCounter)
}

// Read implements the memory.Location interface.
func (ppi *PPI) Read(offset uint32) (uint8, error) {
	switch offset {
	case PortA:
		if ppi.portB&PB7KeyboardAck == PB7KeyboardAck {
			return ppi.switches, nil
		}
		return ppi.scancode, nil
	case PortB:
		return ppi.portB, nil
	case PortC:
		var v uint8
		if ppi.portB&PB3SwitchHigh == PB3SwitchHigh {
			v = ppi.switches >> 4
		} else {
			v = ppi.switches & 0x0f
		}
		if ppi.timer.Out(SpeakerCounter) {
			v |= PC5TimerOut
		}
		return v, nil
	}
	return 0xff, nil
}

// Write implements the memory.Location interface.
func (ppi *PPI) Write(offset uint32, data uint8) error {
	switch offset {
	case PortB:
		ppi.writePortB(data)
	case Control:
		logger.Logf(ppi.perm, "ppi", "ignored control word (%#02x)", data)
	default:
		logger.Logf(ppi.perm, "ppi", "ignored write to input port %d (%#02x)", offset, data)
	}
	return nil
}

func (ppi *PPI) writePortB(data uint8) {
	// keyboard acknowledge clears the scancode latch
	if data&PB7KeyboardAck == PB7KeyboardAck {
		ppi.scancode = 0
	}
	ppi.portB = data
	ppi.timer.SetGate(SpeakerCounter, data&PB0TimerGate == PB0TimerGate)
}
