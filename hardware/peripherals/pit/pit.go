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

package pit

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gopher8088/logger"
)

// NumCounters is the number of counters in the timer.
const NumCounters = 3

// ControlPort is the offset of the control word register. Offsets 0 to 2 are
// the counter registers.
const ControlPort = 3

// Divider is the number of clock ticks for every timer tick.
const Divider = 4

// Access describes how a counter register is read and written.
type Access int

// List of valid Access values. Latch is only meaningful in a control word.
const (
	Latch Access = iota
	LSB
	MSB
	LSBThenMSB
)

func (a Access) String() string {
	switch a {
	case Latch:
		return "latch"
	case LSB:
		return "lsb"
	case MSB:
		return "msb"
	}
	return "lsb/msb"
}

// Output is called whenever the output of a counter changes.
type Output func(level bool)

// PIT is an 8253 programmable interval timer.
type PIT struct {
	perm     logger.Permission
	counters [NumCounters]counter
	divider  int
}

// NewPIT is the preferred method of initialisation for the PIT type.
func NewPIT(perm logger.Permission) *PIT {
	pit := &PIT{
		perm: perm,
	}
	for i := range pit.counters {
		pit.counters[i].id = i
	}
	pit.Reset()
	return pit
}

// Reset the timer. Counters are left unprogrammed with their gates open.
// Connected outputs are kept.
func (pit *PIT) Reset() {
	pit.divider = 0
	for i := range pit.counters {
		c := &pit.counters[i]
		c.mode = 0
		c.access = LSBThenMSB
		c.reload = 0
		c.count = 0
		c.writeHigh = false
		c.readHigh = false
		c.latched = false
		c.latch = 0
		c.armed = false
		c.loading = false
		c.gate = true
		c.out = false
	}
}

// Connect the output of counter n. The function is called with the new
// level whenever the output changes.
func (pit *PIT) Connect(n int, out Output) {
	pit.counters[n].connected = out
}

// SetGate sets the gate input of counter n.
func (pit *PIT) SetGate(n int, level bool) {
	pit.counters[n].setGate(level)
}

// Gate returns the state of the gate input of counter n.
func (pit *PIT) Gate(n int) bool {
	return pit.counters[n].gate
}

// Out returns the state of the output of counter n.
func (pit *PIT) Out(n int) bool {
	return pit.counters[n].out
}

// Count returns the current value of counter n.
func (pit *PIT) Count(n int) uint16 {
	return pit.counters[n].count
}

// Mode returns the operating mode of counter n.
func (pit *PIT) Mode(n int) int {
	return pit.counters[n].mode
}

func (pit *PIT) String() string {
	s := strings.Builder{}
	for i := range pit.counters {
		if i > 0 {
			s.WriteString("\n")
		}
		s.WriteString(pit.counters[i].String())
	}
	return s.String()
}

// Tick implements the clock.Ticker interface.
func (pit *PIT) Tick() {
	pit.divider++
	if pit.divider < Divider {
		return
	}
	pit.divider = 0
	for i := range pit.counters {
		pit.counters[i].step()
	}
}

// Read implements the memory.Location interface.
func (pit *PIT) Read(offset uint32) (uint8, error) {
	if offset == ControlPort {
		// the 8253 control word register is write only
		return 0xff, nil
	}
	return pit.counters[offset].read(), nil
}

// Write implements the memory.Location interface.
func (pit *PIT) Write(offset uint32, data uint8) error {
	if offset != ControlPort {
		pit.counters[offset].write(data)
		return nil
	}

	n := int(data >> 6)
	if n >= NumCounters {
		logger.Logf(pit.perm, "pit", "ignored read-back command (%#02x)", data)
		return nil
	}

	c := &pit.counters[n]
	access := Access((data >> 4) & 0x03)
	if access == Latch {
		c.latchCount()
		return nil
	}

	mode := int((data >> 1) & 0x07)
	if mode > 5 {
		// modes 6 and 7 are aliases of modes 2 and 3
		mode -= 4
	}
	c.program(mode, access)

	return nil
}

type counter struct {
	id        int
	connected Output

	mode   int
	access Access

	// the value written by the CPU and the value being decremented. a value
	// of zero is equivalent to 65536
	reload uint16
	count  uint16

	// byte order for the LSBThenMSB access mode
	writeHigh bool
	readHigh  bool

	latched bool
	latch   uint16

	// armed is true once a count has been written. loading is true until
	// the count is transferred to the counting element on the next tick
	armed   bool
	loading bool

	gate bool
	out  bool
}

func (c *counter) String() string {
	return fmt.Sprintf("%d: mode=%d access=%s reload=%04x count=%04x gate=%v out=%v",
		c.id, c.mode, c.access, c.reload, c.count, c.gate, c.out)
}

func (c *counter) setOut(level bool) {
	if c.out == level {
		return
	}
	c.out = level
	if c.connected != nil {
		c.connected(level)
	}
}

func (c *counter) program(mode int, access Access) {
	c.mode = mode
	c.access = access
	c.writeHigh = false
	c.readHigh = false
	c.latched = false
	c.armed = false
	c.loading = false
	switch c.mode {
	case 2, 3:
		c.setOut(true)
	default:
		c.setOut(false)
	}
}

func (c *counter) latchCount() {
	// a second latch command before the first has been read is ignored
	if c.latched {
		return
	}
	c.latched = true
	c.latch = c.count
}

func (c *counter) write(data uint8) {
	switch c.access {
	case LSB:
		c.reload = uint16(data)
	case MSB:
		c.reload = uint16(data) << 8
	case LSBThenMSB:
		if !c.writeHigh {
			c.reload = (c.reload & 0xff00) | uint16(data)
			c.writeHigh = true
			if c.mode == 0 {
				// writing the first byte stops the count in mode 0
				c.armed = false
				c.setOut(false)
			}
			return
		}
		c.reload = (c.reload & 0x00ff) | uint16(data)<<8
		c.writeHigh = false
	default:
		return
	}

	// a new count in the periodic modes takes effect at the end of the
	// current period
	if c.armed && (c.mode == 2 || c.mode == 3) {
		return
	}

	c.armed = true
	c.loading = true
	if c.mode != 2 && c.mode != 3 {
		c.setOut(false)
	}
}

func (c *counter) read() uint8 {
	v := c.count
	if c.latched {
		v = c.latch
	}

	var b uint8
	switch c.access {
	case MSB:
		b = uint8(v >> 8)
		c.latched = false
	case LSBThenMSB:
		if c.readHigh {
			b = uint8(v >> 8)
			c.latched = false
		} else {
			b = uint8(v)
		}
		c.readHigh = !c.readHigh
	default:
		b = uint8(v)
		c.latched = false
	}
	return b
}

func (c *counter) setGate(level bool) {
	if c.gate == level {
		return
	}
	c.gate = level

	switch c.mode {
	case 2, 3:
		if !level {
			c.setOut(true)
		} else if c.armed {
			// rising edge of the gate restarts the period
			c.loading = true
		}
	}
}

// reload the counting element. in mode 3 odd counts are split so that the
// output is high for one count longer than it is low.
func (c *counter) load() {
	c.loading = false
	c.count = c.reload
	if c.mode == 3 && c.reload&0x01 == 0x01 {
		if c.out {
			c.count++
		} else {
			c.count--
		}
	}
}

func (c *counter) step() {
	if !c.armed {
		return
	}

	if c.loading {
		c.load()
		return
	}

	if !c.gate {
		return
	}

	switch c.mode {
	case 2:
		c.count--
		switch c.count {
		case 1:
			c.setOut(false)
		case 0:
			c.setOut(true)
			c.load()
		}
	case 3:
		c.count -= 2
		if c.count == 0 {
			c.setOut(!c.out)
			c.load()
		}
	default:
		c.count--
		if c.count == 0 {
			c.setOut(true)
		}
	}
}
