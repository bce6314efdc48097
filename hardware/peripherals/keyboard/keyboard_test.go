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

package keyboard_test

import (
	"testing"

	"github.com/jetsetilly/gopher8088/curated"
	"github.com/jetsetilly/gopher8088/hardware/peripherals/keyboard"
	"github.com/jetsetilly/gopher8088/hardware/peripherals/ppi"
	"github.com/jetsetilly/gopher8088/hardware/pic"
	"github.com/jetsetilly/gopher8088/logger"
	"github.com/jetsetilly/gopher8088/test"
)

type timer struct{}

func (timer) SetGate(_ int, _ bool) {}
func (timer) Out(_ int) bool        { return false }

func newEnvironment(t *testing.T) (*keyboard.Keyboard, *ppi.PPI, *pic.Controller) {
	t.Helper()

	p := ppi.NewPPI(logger.Allow, timer{}, 0)
	c := pic.NewController("master", logger.Allow)

	// single, ICW4 needed, vector base 0x08, 8086 mode
	test.DemandSuccess(t, c.Write(pic.CommandPort, 0x13))
	test.DemandSuccess(t, c.Write(pic.DataPort, 0x08))
	test.DemandSuccess(t, c.Write(pic.DataPort, 0x01))

	return keyboard.NewKeyboard(p, c), p, c
}

func TestKeyEvent(t *testing.T) {
	kb, p, c := newEnvironment(t)

	kb.KeyEvent(0x1e, false)
	test.ExpectEquality(t, p.Scancode(), uint8(0x1e))
	test.ExpectEquality(t, c.IRR(), uint8(0x02))
	test.ExpectSuccess(t, c.INTR())

	c.Inta()
	test.ExpectEquality(t, c.Inta(), uint8(0x09))

	kb.KeyEvent(0x1e, true)
	test.ExpectEquality(t, p.Scancode(), uint8(0x9e))
}

func TestQueue(t *testing.T) {
	kb, p, _ := newEnvironment(t)

	test.ExpectSuccess(t, kb.PushEvent(keyboard.Event{Scancode: 0x10}))
	test.ExpectSuccess(t, kb.PushEvent(keyboard.Event{Scancode: 0x10, Up: true}))
	test.ExpectEquality(t, kb.Pending(), 2)

	test.ExpectSuccess(t, kb.Service())
	test.ExpectEquality(t, p.Scancode(), uint8(0x10))

	// next event is held until the scancode is acknowledged
	test.ExpectFailure(t, kb.Service())
	test.ExpectSuccess(t, p.Write(ppi.PortB, ppi.PB7KeyboardAck))
	test.ExpectSuccess(t, kb.Service())
	test.ExpectEquality(t, p.Scancode(), uint8(0x90))
	test.ExpectEquality(t, kb.Pending(), 0)

	for i := 0; i < 64; i++ {
		test.ExpectSuccess(t, kb.PushEvent(keyboard.Event{Scancode: 0x20}))
	}
	err := kb.PushEvent(keyboard.Event{Scancode: 0x20})
	test.ExpectSuccess(t, curated.Is(err, keyboard.QueueFull))
}
