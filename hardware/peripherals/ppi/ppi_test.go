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

package ppi_test

import (
	"testing"

	"github.com/jetsetilly/gopher8088/hardware/peripherals/ppi"
	"github.com/jetsetilly/gopher8088/logger"
	"github.com/jetsetilly/gopher8088/test"
)

type timer struct {
	gate [3]bool
	out  [3]bool
}

func (tmr *timer) SetGate(n int, level bool) {
	tmr.gate[n] = level
}

func (tmr *timer) Out(n int) bool {
	return tmr.out[n]
}

func TestKeyboardLatch(t *testing.T) {
	tmr := &timer{}
	p := ppi.NewPPI(logger.Allow, tmr, 0x2d)

	p.Latch(0x1e)
	v, err := p.Read(ppi.PortA)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, uint8(0x1e))

	// PB7 switches port A to the configuration switches and clears the latch
	test.ExpectSuccess(t, p.Write(ppi.PortB, ppi.PB7KeyboardAck))
	v, _ = p.Read(ppi.PortA)
	test.ExpectEquality(t, v, uint8(0x2d))

	test.ExpectSuccess(t, p.Write(ppi.PortB, 0x00))
	v, _ = p.Read(ppi.PortA)
	test.ExpectEquality(t, v, uint8(0x00))
}

func TestSwitches(t *testing.T) {
	tmr := &timer{}
	p := ppi.NewPPI(logger.Allow, tmr, 0xa5)

	v, _ := p.Read(ppi.PortC)
	test.ExpectEquality(t, v, uint8(0x05))

	test.ExpectSuccess(t, p.Write(ppi.PortB, ppi.PB3SwitchHigh))
	v, _ = p.Read(ppi.PortC)
	test.ExpectEquality(t, v, uint8(0x0a))

	// timer output on PC5
	tmr.out[2] = true
	v, _ = p.Read(ppi.PortC)
	test.ExpectEquality(t, v, uint8(0x2a))
}

func TestSpeaker(t *testing.T) {
	tmr := &timer{}
	p := ppi.NewPPI(logger.Allow, tmr, 0)

	test.ExpectSuccess(t, p.Write(ppi.PortB, ppi.PB0TimerGate))
	test.ExpectSuccess(t, tmr.gate[2])
	test.ExpectFailure(t, p.SpeakerLevel())

	tmr.out[2] = true
	test.ExpectFailure(t, p.SpeakerLevel())

	test.ExpectSuccess(t, p.Write(ppi.PortB, ppi.PB0TimerGate|ppi.PB1SpeakerData))
	test.ExpectSuccess(t, p.SpeakerLevel())

	v, _ := p.Read(ppi.PortB)
	test.ExpectEquality(t, v, uint8(0x03))

	test.ExpectSuccess(t, p.Write(ppi.PortB, 0))
	test.ExpectFailure(t, tmr.gate[2])
	test.ExpectFailure(t, p.SpeakerLevel())
}

func TestControl(t *testing.T) {
	tmr := &timer{}
	p := ppi.NewPPI(logger.Allow, tmr, 0)

	// control word and writes to input ports have no effect
	test.ExpectSuccess(t, p.Write(ppi.Control, 0x99))
	test.ExpectSuccess(t, p.Write(ppi.PortA, 0x12))
	v, _ := p.Read(ppi.PortA)
	test.ExpectEquality(t, v, uint8(0x00))
	v, _ = p.Read(ppi.Control)
	test.ExpectEquality(t, v, uint8(0xff))
}
