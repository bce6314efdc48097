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

// Package keyboard connects host key events to the emulated machine. A key
// event latches a scancode in the PPI and raises IRQ1 on the interrupt
// controller.
//
// Events can be delivered directly with KeyEvent() or, from another
// goroutine, with PushEvent(). Pushed events are held in a queue and are
// delivered by Service() one at a time, whenever the previous scancode has
// been acknowledged by the emulated program.
package keyboard

import (
	"fmt"

	"github.com/jetsetilly/gopher8088/curated"
)

// QueueFull is returned by PushEvent() when the queue of pending events
// cannot accept any more events.
const QueueFull = "keyboard: event queue is full (%s)"

// Line is the interrupt request line used by the keyboard.
const Line = 1

// Released is ORed with the scancode of a key being released.
const Released = 0x80

// Latch defines the PPI functions required by the keyboard.
type Latch interface {
	Latch(scancode uint8)
	Scancode() uint8
}

// Interrupt defines the interrupt controller functions required by the
// keyboard.
type Interrupt interface {
	IRQ(n int)
}

// Event is a single key press or release.
type Event struct {
	Scancode uint8
	Up       bool
}

func (ev Event) String() string {
	if ev.Up {
		return fmt.Sprintf("%02x up", ev.Scancode)
	}
	return fmt.Sprintf("%02x down", ev.Scancode)
}

// Keyboard is the bridge between host key events and the PPI.
type Keyboard struct {
	latch  Latch
	irq    Interrupt
	pushed chan Event
}

// NewKeyboard is the preferred method of initialisation for the Keyboard
// type.
func NewKeyboard(latch Latch, irq Interrupt) *Keyboard {
	return &Keyboard{
		latch:  latch,
		irq:    irq,
		pushed: make(chan Event, 64),
	}
}

// KeyEvent latches the scancode and raises the keyboard interrupt.
func (kb *Keyboard) KeyEvent(scancode uint8, up bool) {
	if up {
		scancode |= Released
	}
	kb.latch.Latch(scancode)
	kb.irq.IRQ(Line)
}

// PushEvent adds an event to the queue. It is safe to call from any
// goroutine.
func (kb *Keyboard) PushEvent(ev Event) error {
	select {
	case kb.pushed <- ev:
	default:
		return curated.Errorf(QueueFull, ev)
	}
	return nil
}

// Service delivers the next queued event if the previous scancode has been
// acknowledged. Returns true if an event was delivered.
func (kb *Keyboard) Service() bool {
	if kb.latch.Scancode() != 0 {
		return false
	}
	select {
	case ev := <-kb.pushed:
		kb.KeyEvent(ev.Scancode, ev.Up)
		return true
	default:
	}
	return false
}

// Pending returns the number of events waiting in the queue.
func (kb *Keyboard) Pending() int {
	return len(kb.pushed)
}
