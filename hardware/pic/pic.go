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

package pic

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gopher8088/curated"
	"github.com/jetsetilly/gopher8088/logger"
)

// ProtocolViolation is the panic value for an IRQ line outside the range 0
// to 7. It indicates an error in the emulation, not in the emulated program.
const ProtocolViolation = "pic: irq line out of range (%d)"

// NoInterrupt is the value of InService() when no interrupt is being
// serviced.
const NoInterrupt = -1

// Port offsets.
const (
	CommandPort = 0
	DataPort    = 1
)

type state int

const (
	awaitingICW1 state = iota
	awaitingICW2
	awaitingICW3
	awaitingICW4
	operational
)

func (s state) String() string {
	switch s {
	case awaitingICW1:
		return "awaiting ICW1"
	case awaitingICW2:
		return "awaiting ICW2"
	case awaitingICW3:
		return "awaiting ICW3"
	case awaitingICW4:
		return "awaiting ICW4"
	}
	return "operational"
}

// ICW1 bits.
const (
	icw1IC4    = 0x01
	icw1SNGL   = 0x02
	icw1ADI    = 0x04
	icw1Select = 0x10
)

// ICW4 bits.
const (
	icw4Mode8086 = 0x01
	icw4AEOI     = 0x02
)

// OCW3 bits.
const (
	ocw3Select = 0x08
	ocw3RIS    = 0x01
	ocw3RR     = 0x02
	ocw3Poll   = 0x04
	ocw3SMM    = 0x20
	ocw3ESMM   = 0x40
)

// Controller is an 8259A programmable interrupt controller. It implements
// the memory.Location interface and should be registered in the I/O map at
// a base address with a size of two. The command port is at offset zero and
// the data port is at offset one.
type Controller struct {
	label string
	perm  logger.Permission

	state state

	icw1 uint8
	icw2 uint8
	icw3 uint8
	icw4 uint8

	irr uint8
	imr uint8

	// only one interrupt can be in service at a time
	isr int

	// the interrupt with the lowest priority. the interrupt with the highest
	// priority is the one after it
	lowest int

	specialMask bool
	rotateAEOI  bool

	readISR bool
	poll    bool

	// acknowledge sequence. pulse counts the number of INTA pulses received
	// in the current sequence
	pulse int
	ack   int
	slave *Controller

	slaves     [8]*Controller
	parent     *Controller
	parentLine int

	// the INTR output the last time it was sampled by update()
	intr bool
}

// NewController is the preferred method of initialisation for the
// Controller type.
func NewController(label string, perm logger.Permission) *Controller {
	pic := &Controller{
		label: label,
		perm:  perm,
	}
	pic.Reset()
	return pic
}

// Reset the controller to its power on state. The controller must be
// initialised with the ICW sequence before it is operational.
func (pic *Controller) Reset() {
	pic.state = awaitingICW1
	pic.icw1 = 0
	pic.icw2 = 0
	pic.icw3 = 0
	pic.icw4 = 0
	pic.irr = 0
	pic.imr = 0
	pic.isr = NoInterrupt
	pic.lowest = 7
	pic.specialMask = false
	pic.rotateAEOI = false
	pic.readISR = false
	pic.poll = false
	pic.pulse = 0
	pic.ack = NoInterrupt
	pic.slave = nil
	pic.intr = false
}

// Cascade connects a slave controller to an input line of the controller.
// The connection is only used if the controller has been initialised for
// cascade mode and the line is set in ICW3.
func (pic *Controller) Cascade(line int, slave *Controller) {
	checkLine(line)
	pic.slaves[line] = slave
	slave.parent = pic
	slave.parentLine = line
}

func checkLine(n int) {
	if n < 0 || n > 7 {
		panic(curated.Errorf(ProtocolViolation, n))
	}
}

func (pic *Controller) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("%s: IRR=%08b IMR=%08b ISR=", pic.label, pic.irr, pic.imr))
	if pic.isr == NoInterrupt {
		s.WriteString("-")
	} else {
		s.WriteString(fmt.Sprintf("%d", pic.isr))
	}
	s.WriteString(fmt.Sprintf(" base=%02x lowest=%d", pic.icw2&0xf8, pic.lowest))
	if pic.state != operational {
		s.WriteString(fmt.Sprintf(" (%s)", pic.state))
	}
	return s.String()
}

// Label returns the name given to the controller.
func (pic *Controller) Label() string {
	return pic.label
}

// IRR returns the interrupt request register.
func (pic *Controller) IRR() uint8 {
	return pic.irr
}

// IMR returns the interrupt mask register.
func (pic *Controller) IMR() uint8 {
	return pic.imr
}

// InService returns the interrupt being serviced or NoInterrupt.
func (pic *Controller) InService() int {
	return pic.isr
}

// Operational returns true if the initialisation sequence has completed.
func (pic *Controller) Operational() bool {
	return pic.state == operational
}

// IRQ raises the interrupt request line n. Requests on masked lines are
// ignored.
func (pic *Controller) IRQ(n int) {
	checkLine(n)
	if pic.imr&(1<<n) != 0 {
		return
	}
	pic.irr |= 1 << n
	pic.update()
}

// INTR returns the state of the interrupt output. The output is a level and
// remains true until the request has been acknowledged.
func (pic *Controller) INTR() bool {
	return pic.resolve() != NoInterrupt
}

// resolve returns the highest priority request that is able to interrupt.
// requests of lower priority than the interrupt in service are blocked
// unless special mask mode is active.
func (pic *Controller) resolve() int {
	req := pic.irr &^ pic.imr
	for i := 1; i <= 8; i++ {
		irq := (pic.lowest + i) % 8
		if irq == pic.isr {
			if !pic.specialMask {
				return NoInterrupt
			}
			continue
		}
		if req&(1<<irq) != 0 {
			return irq
		}
	}
	return NoInterrupt
}

// update the INTR output. a slave signals the rising edge of its output to
// the parent controller.
func (pic *Controller) update() {
	intr := pic.INTR()
	if intr && !pic.intr && pic.parent != nil {
		pic.parent.IRQ(pic.parentLine)
	}
	pic.intr = intr
}

func (pic *Controller) cascaded(irq int) *Controller {
	if pic.icw1&icw1SNGL != 0 || pic.icw3&(1<<irq) == 0 {
		return nil
	}
	return pic.slaves[irq]
}

// service the highest priority request. returns the spurious interrupt
// (IRQ7) without changing the in service register if there is no request.
func (pic *Controller) service() int {
	irq := pic.resolve()
	if irq == NoInterrupt {
		return 7
	}
	pic.irr &^= 1 << irq
	pic.isr = irq
	return irq
}

// Inta is called for each interrupt acknowledge pulse. In 8086 mode there are
// two pulses in an acknowledge sequence and the vector is returned on the
// second. In 8080 mode there are three pulses: a CALL opcode followed by the
// low and high bytes of the call address.
func (pic *Controller) Inta() uint8 {
	pic.pulse++

	if pic.pulse == 1 {
		pic.ack = pic.service()
		pic.slave = pic.cascaded(pic.ack)
		if pic.slave != nil {
			pic.slave.Inta()
		}
		pic.update()

		if pic.icw4&icw4Mode8086 != 0 {
			return 0xff
		}
		return 0xcd
	}

	if pic.slave != nil {
		v := pic.slave.Inta()
		if pic.slave.pulse == 0 {
			pic.endSequence()
		}
		return v
	}

	if pic.icw4&icw4Mode8086 != 0 {
		v := (pic.icw2 & 0xf8) | uint8(pic.ack)
		pic.endSequence()
		return v
	}

	if pic.pulse == 2 {
		if pic.icw1&icw1ADI != 0 {
			return (pic.icw1 & 0xe0) | uint8(pic.ack)<<2
		}
		return (pic.icw1 & 0xc0) | uint8(pic.ack)<<3
	}

	pic.endSequence()
	return pic.icw2
}

// IntaEnd is called when the processor has finished its acknowledge
// sequence. An 8088 issues two pulses, so an 8080 mode sequence is never
// completed by the processor. An unfinished sequence is ended here so that
// the next acknowledge starts with the first pulse.
func (pic *Controller) IntaEnd() {
	if pic.pulse == 0 {
		return
	}
	logger.Logf(pic.perm, "pic", "%s: acknowledge sequence ended after %d pulses", pic.label, pic.pulse)
	if pic.slave != nil {
		pic.slave.IntaEnd()
	}
	pic.endSequence()
}

func (pic *Controller) endSequence() {
	pic.pulse = 0
	pic.slave = nil
	if pic.icw4&icw4AEOI != 0 && pic.isr != NoInterrupt {
		if pic.rotateAEOI {
			pic.lowest = pic.isr
		}
		pic.isr = NoInterrupt
	}
	pic.update()
}

// Read implements the memory.Location interface.
func (pic *Controller) Read(offset uint32) (uint8, error) {
	switch offset {
	case CommandPort:
		if pic.poll {
			pic.poll = false
			if pic.resolve() == NoInterrupt {
				return 0x00, nil
			}
			irq := pic.service()
			pic.update()
			return 0x80 | uint8(irq), nil
		}
		if pic.readISR {
			if pic.isr == NoInterrupt {
				return 0x00, nil
			}
			return 1 << pic.isr, nil
		}
		return pic.irr, nil
	case DataPort:
		return pic.imr, nil
	}
	return 0, nil
}

// Write implements the memory.Location interface.
func (pic *Controller) Write(offset uint32, data uint8) error {
	switch offset {
	case CommandPort:
		if data&icw1Select != 0 {
			pic.writeICW1(data)
			return nil
		}
		if pic.state != operational {
			logger.Logf(pic.perm, "pic", "%s: ignored command %#02x during initialisation (%s)", pic.label, data, pic.state)
			return nil
		}
		if data&ocw3Select != 0 {
			pic.writeOCW3(data)
		} else {
			pic.writeOCW2(data)
		}
	case DataPort:
		switch pic.state {
		case awaitingICW1:
			logger.Logf(pic.perm, "pic", "%s: ignored data %#02x before initialisation", pic.label, data)
		case awaitingICW2:
			pic.icw2 = data
			if pic.icw1&icw1SNGL == 0 {
				pic.state = awaitingICW3
			} else if pic.icw1&icw1IC4 != 0 {
				pic.state = awaitingICW4
			} else {
				pic.state = operational
			}
		case awaitingICW3:
			pic.icw3 = data
			if pic.icw1&icw1IC4 != 0 {
				pic.state = awaitingICW4
			} else {
				pic.state = operational
			}
		case awaitingICW4:
			pic.icw4 = data
			pic.state = operational
		case operational:
			pic.imr = data
			pic.update()
		}
	}
	return nil
}

func (pic *Controller) writeICW1(data uint8) {
	pic.icw1 = data
	pic.icw3 = 0
	if data&icw1IC4 == 0 {
		pic.icw4 = 0
	}
	pic.imr = 0
	pic.isr = NoInterrupt
	pic.lowest = 7
	pic.specialMask = false
	pic.rotateAEOI = false
	pic.readISR = false
	pic.poll = false
	pic.pulse = 0
	pic.slave = nil
	pic.state = awaitingICW2
	pic.update()
}

// OCW2 commands. the value is bits 5 to 7 of the command byte.
const (
	rotateAEOIClear   = 0b000
	nonSpecificEOI    = 0b001
	noOperation       = 0b010
	specificEOI       = 0b011
	rotateAEOISet     = 0b100
	rotateNonSpecific = 0b101
	setPriority       = 0b110
	rotateSpecificEOI = 0b111
)

func (pic *Controller) writeOCW2(data uint8) {
	level := int(data & 0x07)

	switch data >> 5 {
	case rotateAEOIClear:
		pic.rotateAEOI = false
	case rotateAEOISet:
		pic.rotateAEOI = true
	case nonSpecificEOI:
		pic.isr = NoInterrupt
	case rotateNonSpecific:
		if pic.isr != NoInterrupt {
			pic.lowest = pic.isr
		}
		pic.isr = NoInterrupt
	case specificEOI:
		if pic.isr == level {
			pic.isr = NoInterrupt
		}
	case rotateSpecificEOI:
		pic.lowest = level
		if pic.isr == level {
			pic.isr = NoInterrupt
		}
	case setPriority:
		pic.lowest = level
	case noOperation:
	}

	pic.update()
}

func (pic *Controller) writeOCW3(data uint8) {
	if data&ocw3Poll != 0 {
		pic.poll = true
	}
	if data&ocw3RR != 0 {
		pic.readISR = data&ocw3RIS != 0
	}
	if data&ocw3ESMM != 0 {
		pic.specialMask = data&ocw3SMM != 0
	}
	pic.update()
}
