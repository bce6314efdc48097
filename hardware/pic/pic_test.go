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

package pic_test

import (
	"testing"

	"github.com/jetsetilly/gopher8088/curated"
	"github.com/jetsetilly/gopher8088/hardware/pic"
	"github.com/jetsetilly/gopher8088/logger"
	"github.com/jetsetilly/gopher8088/test"
)

// initialise a controller the same way as the PC BIOS: edge triggered,
// single, ICW4 needed, vector base 0x08, 8086 mode.
func initialise(t *testing.T, c *pic.Controller) {
	t.Helper()
	test.DemandSuccess(t, c.Write(pic.CommandPort, 0x13))
	test.DemandSuccess(t, c.Write(pic.DataPort, 0x08))
	test.DemandSuccess(t, c.Write(pic.DataPort, 0x09))
	test.DemandSuccess(t, c.Operational())
}

func acknowledge(c *pic.Controller) uint8 {
	_ = c.Inta()
	return c.Inta()
}

func TestInitialisation(t *testing.T) {
	c := pic.NewController("PIC", logger.Allow)
	test.ExpectFailure(t, c.Operational())

	// data written before ICW1 is ignored
	test.ExpectSuccess(t, c.Write(pic.DataPort, 0xff))
	test.ExpectFailure(t, c.Operational())
	test.ExpectEquality(t, c.IMR(), uint8(0x00))

	// OCW2 during initialisation is ignored
	test.ExpectSuccess(t, c.Write(pic.CommandPort, 0x13))
	test.ExpectSuccess(t, c.Write(pic.CommandPort, 0x20))
	test.ExpectFailure(t, c.Operational())

	test.ExpectSuccess(t, c.Write(pic.DataPort, 0x08))
	test.ExpectFailure(t, c.Operational())
	test.ExpectSuccess(t, c.Write(pic.DataPort, 0x09))
	test.ExpectSuccess(t, c.Operational())

	// OCW1
	test.ExpectSuccess(t, c.Write(pic.DataPort, 0xbc))
	v, err := c.Read(pic.DataPort)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, uint8(0xbc))

	// ICW1 restarts initialisation and clears the mask
	test.ExpectSuccess(t, c.Write(pic.CommandPort, 0x13))
	test.ExpectFailure(t, c.Operational())
	test.ExpectEquality(t, c.IMR(), uint8(0x00))
}

func TestICW3Sequence(t *testing.T) {
	c := pic.NewController("PIC", logger.Allow)

	// cascade mode, no ICW4
	test.ExpectSuccess(t, c.Write(pic.CommandPort, 0x10))
	test.ExpectSuccess(t, c.Write(pic.DataPort, 0x08))
	test.ExpectFailure(t, c.Operational())
	test.ExpectSuccess(t, c.Write(pic.DataPort, 0x04))
	test.ExpectSuccess(t, c.Operational())
}

func TestMasking(t *testing.T) {
	c := pic.NewController("PIC", logger.Allow)
	initialise(t, c)

	test.ExpectSuccess(t, c.Write(pic.DataPort, 0x02))
	c.IRQ(1)
	test.ExpectEquality(t, c.IRR(), uint8(0x00))
	test.ExpectFailure(t, c.INTR())

	c.IRQ(0)
	test.ExpectEquality(t, c.IRR(), uint8(0x01))
	test.ExpectSuccess(t, c.INTR())

	// masking a pending request removes it from INTR
	test.ExpectSuccess(t, c.Write(pic.DataPort, 0x03))
	test.ExpectFailure(t, c.INTR())
}

func TestVector(t *testing.T) {
	c := pic.NewController("PIC", logger.Allow)
	initialise(t, c)

	c.IRQ(1)
	test.ExpectSuccess(t, c.INTR())

	test.ExpectEquality(t, c.Inta(), uint8(0xff))
	test.ExpectEquality(t, c.IRR(), uint8(0x00))
	test.ExpectEquality(t, c.InService(), 1)
	test.ExpectEquality(t, c.Inta(), uint8(0x09))
	test.ExpectFailure(t, c.INTR())

	// a lower priority request is blocked until end of interrupt
	c.IRQ(3)
	test.ExpectFailure(t, c.INTR())

	// a higher priority request is not blocked
	c.IRQ(0)
	test.ExpectSuccess(t, c.INTR())

	test.ExpectSuccess(t, c.Write(pic.CommandPort, 0x20))
	test.ExpectEquality(t, c.InService(), pic.NoInterrupt)
	test.ExpectEquality(t, acknowledge(c), uint8(0x08))
	test.ExpectSuccess(t, c.Write(pic.CommandPort, 0x20))
	test.ExpectEquality(t, acknowledge(c), uint8(0x0b))
}

func TestSpurious(t *testing.T) {
	c := pic.NewController("PIC", logger.Allow)
	initialise(t, c)

	test.ExpectEquality(t, acknowledge(c), uint8(0x0f))
	test.ExpectEquality(t, c.InService(), pic.NoInterrupt)
}

func TestRotation(t *testing.T) {
	c := pic.NewController("PIC", logger.Allow)
	initialise(t, c)

	// fixed priority. IRQ2 is higher than IRQ5
	c.IRQ(2)
	c.IRQ(5)
	test.ExpectEquality(t, acknowledge(c), uint8(0x0a))
	test.ExpectSuccess(t, c.Write(pic.CommandPort, 0x20))
	test.ExpectEquality(t, acknowledge(c), uint8(0x0d))
	test.ExpectSuccess(t, c.Write(pic.CommandPort, 0x20))

	// rotate on specific EOI with IRQ3 as the new lowest priority. the order
	// of priority is now 4 5 6 7 0 1 2 3
	test.ExpectSuccess(t, c.Write(pic.CommandPort, 0xe3))
	c.IRQ(2)
	c.IRQ(5)
	test.ExpectEquality(t, acknowledge(c), uint8(0x0d))
	test.ExpectEquality(t, c.InService(), 5)

	// rotate on non-specific EOI makes the in service interrupt the lowest
	// priority. order of priority is now 6 7 0 1 2 3 4 5
	test.ExpectSuccess(t, c.Write(pic.CommandPort, 0xa0))
	c.IRQ(5)
	c.IRQ(0)
	test.ExpectEquality(t, acknowledge(c), uint8(0x08))
	test.ExpectSuccess(t, c.Write(pic.CommandPort, 0x60))
	test.ExpectEquality(t, acknowledge(c), uint8(0x0a))
	test.ExpectSuccess(t, c.Write(pic.CommandPort, 0x62))

	// set priority
	test.ExpectSuccess(t, c.Write(pic.CommandPort, 0xc7))
	c.IRQ(7)
	c.IRQ(0)
	test.ExpectEquality(t, acknowledge(c), uint8(0x08))
}

func TestSpecificEOI(t *testing.T) {
	c := pic.NewController("PIC", logger.Allow)
	initialise(t, c)

	c.IRQ(4)
	_ = acknowledge(c)

	// specific EOI for a different level has no effect
	test.ExpectSuccess(t, c.Write(pic.CommandPort, 0x63))
	test.ExpectEquality(t, c.InService(), 4)
	test.ExpectSuccess(t, c.Write(pic.CommandPort, 0x64))
	test.ExpectEquality(t, c.InService(), pic.NoInterrupt)
}

func TestSpecialMaskMode(t *testing.T) {
	c := pic.NewController("PIC", logger.Allow)
	initialise(t, c)

	c.IRQ(1)
	_ = acknowledge(c)
	c.IRQ(6)
	test.ExpectFailure(t, c.INTR())

	test.ExpectSuccess(t, c.Write(pic.CommandPort, 0x68))
	test.ExpectSuccess(t, c.INTR())

	test.ExpectSuccess(t, c.Write(pic.CommandPort, 0x48))
	test.ExpectFailure(t, c.INTR())
}

func TestReadRegister(t *testing.T) {
	c := pic.NewController("PIC", logger.Allow)
	initialise(t, c)

	c.IRQ(3)
	c.IRQ(5)
	v, _ := c.Read(pic.CommandPort)
	test.ExpectEquality(t, v, uint8(0x28))

	_ = acknowledge(c)
	test.ExpectSuccess(t, c.Write(pic.CommandPort, 0x0b))
	v, _ = c.Read(pic.CommandPort)
	test.ExpectEquality(t, v, uint8(0x08))

	test.ExpectSuccess(t, c.Write(pic.CommandPort, 0x0a))
	v, _ = c.Read(pic.CommandPort)
	test.ExpectEquality(t, v, uint8(0x20))
}

func TestPoll(t *testing.T) {
	c := pic.NewController("PIC", logger.Allow)
	initialise(t, c)

	test.ExpectSuccess(t, c.Write(pic.CommandPort, 0x0c))
	v, _ := c.Read(pic.CommandPort)
	test.ExpectEquality(t, v, uint8(0x00))

	c.IRQ(6)
	test.ExpectSuccess(t, c.Write(pic.CommandPort, 0x0c))
	v, _ = c.Read(pic.CommandPort)
	test.ExpectEquality(t, v, uint8(0x86))
	test.ExpectEquality(t, c.InService(), 6)
	test.ExpectEquality(t, c.IRR(), uint8(0x00))
}

func TestAutoEOI(t *testing.T) {
	c := pic.NewController("PIC", logger.Allow)
	test.ExpectSuccess(t, c.Write(pic.CommandPort, 0x13))
	test.ExpectSuccess(t, c.Write(pic.DataPort, 0x70))
	test.ExpectSuccess(t, c.Write(pic.DataPort, 0x0b))

	c.IRQ(2)
	test.ExpectEquality(t, acknowledge(c), uint8(0x72))
	test.ExpectEquality(t, c.InService(), pic.NoInterrupt)

	// rotate in automatic EOI mode
	test.ExpectSuccess(t, c.Write(pic.CommandPort, 0x80))
	c.IRQ(2)
	_ = acknowledge(c)
	c.IRQ(2)
	c.IRQ(3)
	test.ExpectEquality(t, acknowledge(c), uint8(0x73))
}

func TestMode8080(t *testing.T) {
	c := pic.NewController("PIC", logger.Allow)

	// interval of four, single, ICW4 needed
	test.ExpectSuccess(t, c.Write(pic.CommandPort, 0xf7))
	test.ExpectSuccess(t, c.Write(pic.DataPort, 0x12))
	test.ExpectSuccess(t, c.Write(pic.DataPort, 0x00))

	c.IRQ(3)
	test.ExpectEquality(t, c.Inta(), uint8(0xcd))
	test.ExpectEquality(t, c.Inta(), uint8(0xec))
	test.ExpectEquality(t, c.Inta(), uint8(0x12))
	test.ExpectEquality(t, c.InService(), 3)

	// interval of eight
	test.ExpectSuccess(t, c.Write(pic.CommandPort, 0xf3))
	test.ExpectSuccess(t, c.Write(pic.DataPort, 0x34))
	test.ExpectSuccess(t, c.Write(pic.DataPort, 0x00))

	c.IRQ(3)
	test.ExpectEquality(t, c.Inta(), uint8(0xcd))
	test.ExpectEquality(t, c.Inta(), uint8(0xd8))
	test.ExpectEquality(t, c.Inta(), uint8(0x34))
}

// the 8088 issues two acknowledge pulses. a controller programmed for 8080
// mode does not see the third pulse and the next acknowledge must not be
// taken as the end of the earlier sequence.
func TestMode8080TwoPulses(t *testing.T) {
	c := pic.NewController("PIC", logger.Allow)

	// interval of eight, single, no ICW4
	test.ExpectSuccess(t, c.Write(pic.CommandPort, 0x12))
	test.ExpectSuccess(t, c.Write(pic.DataPort, 0x08))
	test.DemandSuccess(t, c.Operational())

	c.IRQ(1)
	test.ExpectEquality(t, acknowledge(c), uint8(0x08))
	c.IntaEnd()
	test.ExpectEquality(t, c.InService(), 1)

	// non-specific EOI
	test.ExpectSuccess(t, c.Write(pic.CommandPort, 0x20))
	test.ExpectEquality(t, c.InService(), pic.NoInterrupt)

	c.IRQ(2)
	test.ExpectSuccess(t, c.INTR())
	test.ExpectEquality(t, acknowledge(c), uint8(0x10))
	c.IntaEnd()
	test.ExpectEquality(t, c.InService(), 2)

	// ending a completed sequence has no effect
	initialise(t, c)
	c.IRQ(3)
	test.ExpectEquality(t, acknowledge(c), uint8(0x0b))
	c.IntaEnd()
	test.ExpectEquality(t, c.InService(), 3)
}

func TestCascade(t *testing.T) {
	master := pic.NewController("master", logger.Allow)
	slave := pic.NewController("slave", logger.Allow)
	master.Cascade(2, slave)

	// cascade mode, ICW4 needed
	test.ExpectSuccess(t, master.Write(pic.CommandPort, 0x11))
	test.ExpectSuccess(t, master.Write(pic.DataPort, 0x08))
	test.ExpectSuccess(t, master.Write(pic.DataPort, 0x04))
	test.ExpectSuccess(t, master.Write(pic.DataPort, 0x01))

	test.ExpectSuccess(t, slave.Write(pic.CommandPort, 0x11))
	test.ExpectSuccess(t, slave.Write(pic.DataPort, 0x70))
	test.ExpectSuccess(t, slave.Write(pic.DataPort, 0x02))
	test.ExpectSuccess(t, slave.Write(pic.DataPort, 0x01))

	slave.IRQ(4)
	test.ExpectSuccess(t, slave.INTR())
	test.ExpectSuccess(t, master.INTR())
	test.ExpectEquality(t, master.IRR(), uint8(0x04))

	test.ExpectEquality(t, acknowledge(master), uint8(0x74))
	test.ExpectEquality(t, master.InService(), 2)
	test.ExpectEquality(t, slave.InService(), 4)
	test.ExpectFailure(t, master.INTR())

	// a request on the master is not forwarded
	test.ExpectSuccess(t, master.Write(pic.CommandPort, 0x20))
	master.IRQ(1)
	test.ExpectEquality(t, acknowledge(master), uint8(0x09))
	test.ExpectEquality(t, slave.InService(), 4)
}

func TestProtocolViolation(t *testing.T) {
	c := pic.NewController("PIC", logger.Allow)

	defer func() {
		r := recover()
		err, ok := r.(error)
		test.DemandSuccess(t, ok)
		test.ExpectSuccess(t, curated.Is(err, pic.ProtocolViolation))
	}()

	c.IRQ(8)
}
