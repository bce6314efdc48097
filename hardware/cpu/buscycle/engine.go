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
	"sync/atomic"

	"github.com/jetsetilly/gopher8088/curated"
	"github.com/jetsetilly/gopher8088/hardware/clock"
	"github.com/jetsetilly/gopher8088/hardware/memory"
	"github.com/jetsetilly/gopher8088/logger"
)

// Sentinel error patterns.
const (
	Contention = "buscycle: %s requested while %s is pending"
	Abandoned  = "buscycle: %s abandoned"
	Suppressed = "buscycle: instruction fetch suppressed while halted"
)

// Acknowledger is implemented by the interrupt controller. Inta() is called
// once during the data phase of each interrupt acknowledge transaction.
// IntaEnd() is called by EndAcknowledge() when the processor has finished
// its acknowledge sequence.
type Acknowledger interface {
	Inta() uint8
	IntaEnd()
}

// Engine drives the bus. It owns the prefetch queue and performs both
// explicit accesses for the execution unit and prefetches.
//
// The Engine must be subscribed to a clock.Clock. Each tick of the clock
// advances the transaction in flight by one phase. When the bus is passive a
// new transaction is started, in order of priority: an explicit access
// requested by BeginAccess(), a prefetch if the queue is not full.
type Engine struct {
	clk  *clock.Clock
	mem  memory.Bus
	io   memory.Bus
	perm logger.Permission

	queue Queue

	// address of the next prefetch
	fetchSegment uint16
	fetchOffset  uint16

	// the transaction in flight. Kind is Passive when there is no
	// transaction
	current Transaction

	// explicit access waiting for the bus or in flight. nil when there is no
	// explicit access
	pending *Transaction

	// the pending access has reached the Clear phase
	complete bool

	halted bool

	hold atomic.Bool
	hlda bool

	stopped atomic.Bool

	ack   Acknowledger
	fault func(Transaction)
	snoop func(Transaction)
}

// NewEngine is the preferred method of initialisation for the Engine type.
// The Engine subscribes itself to the clock.
func NewEngine(clk *clock.Clock, mem memory.Bus, io memory.Bus, perm logger.Permission) *Engine {
	e := &Engine{
		clk:  clk,
		mem:  mem,
		io:   io,
		perm: perm,
	}
	e.Reset()
	return e
}

// AttachAcknowledger connects the interrupt controller to the bus.
func (e *Engine) AttachAcknowledger(ack Acknowledger) {
	e.ack = ack
}

// AttachFaultHandler sets the function called when a transaction accesses an
// unmapped address.
func (e *Engine) AttachFaultHandler(f func(Transaction)) {
	e.fault = f
}

// AttachSnooper sets the function called every time a transaction changes
// phase. The snooper must not start a new access.
func (e *Engine) AttachSnooper(f func(Transaction)) {
	e.snoop = f
}

// Reset the bus. The queue is emptied and the next prefetch is from
// FFFF:0000. The Engine is resubscribed to the clock if it had been stopped.
func (e *Engine) Reset() {
	e.queue.Clear()
	e.fetchSegment = 0xffff
	e.fetchOffset = 0x0000
	e.current = Transaction{}
	e.pending = nil
	e.complete = false
	e.halted = false
	e.hlda = false
	e.stopped.Store(false)
	e.clk.Subscribe(e)
}

// Stop detaches the Engine from the clock. The Engine unsubscribes on the
// next tick. A transaction in flight is abandoned and an access waiting in
// BeginAccess() returns the Abandoned error.
//
// Stop is safe to call from a goroutine other than the one ticking the clock.
func (e *Engine) Stop() {
	e.stopped.Store(true)
}

// Stopped returns true if Stop() has been called since the last Reset().
func (e *Engine) Stopped() bool {
	return e.stopped.Load()
}

// Tick implements the clock.Ticker interface.
func (e *Engine) Tick() {
	if e.stopped.Load() {
		e.clk.Unsubscribe(e)
		e.current = Transaction{}
		return
	}

	if e.current.Kind == Passive {
		e.start()
		if e.current.Kind == Passive {
			return
		}
		e.current.Phase = Address
		e.publish()
		return
	}

	switch e.current.Phase {
	case Address:
		e.current.Phase = Status
		e.publish()
	case Status:
		e.current.Phase = Data
		e.access()
		e.publish()
	case Data:
		e.current.Phase = Clear
		e.publish()
		e.finish()
	}
}

// start a new transaction if the bus is available.
func (e *Engine) start() {
	if e.hold.Load() {
		e.hlda = true
		return
	}
	e.hlda = false

	if e.pending != nil && !e.complete {
		e.current = *e.pending
		e.current.explicit = true
		return
	}

	if !e.halted && !e.queue.IsFull() {
		e.current = Transaction{
			Kind:    InstructionFetch,
			Segment: e.fetchSegment,
			Offset:  e.fetchOffset,
		}
		e.fetchOffset++
	}
}

func (e *Engine) publish() {
	if e.snoop != nil {
		e.snoop(e.current)
	}
}

// perform the data transfer of the current transaction.
func (e *Engine) access() {
	var err error

	switch e.current.Kind {
	case InstructionFetch, ReadMemory:
		e.current.Data, err = e.mem.Read(e.current.Address())
	case WriteMemory:
		err = e.mem.Write(e.current.Address(), e.current.Data)
	case ReadPort:
		e.current.Data, err = e.io.Read(e.current.Address())
	case WritePort:
		err = e.io.Write(e.current.Address(), e.current.Data)
	case InterruptAcknowledge:
		if e.ack != nil {
			e.current.Data = e.ack.Inta()
		} else {
			e.current.Data = 0xff
		}
	}

	if err != nil {
		if curated.Is(err, memory.AddressError) {
			logger.Log(e.perm, "bus", err)
			if e.fault != nil {
				e.fault(e.current)
			}
		} else {
			logger.Logf(e.perm, "bus", "%s: %v", e.current.Kind, err)
		}
	}
}

// complete the current transaction and return the bus to the passive state.
func (e *Engine) finish() {
	t := e.current
	e.current = Transaction{}

	if t.explicit {
		if e.pending != nil {
			e.pending.Data = t.Data
			e.pending.Phase = Clear
			e.complete = true
		}
		return
	}

	if t.Kind == InstructionFetch && !t.discard {
		e.queue.Push(t.Data)
	}
}

// BeginAccess performs a single byte bus transaction. The clock is ticked
// until the transaction completes. For write transactions the data argument
// is placed on the bus. For read and acknowledge transactions the value read
// is returned.
//
// Only one explicit access can be pending at once. An access requested while
// another is pending, for example from inside a snooper or acknowledger,
// returns the Contention error.
//
// Accesses to unmapped addresses are not returned as errors. The fault
// handler is called and reads return 0xff.
func (e *Engine) BeginAccess(kind Kind, segment uint16, offset uint16, data uint8) (uint8, error) {
	if e.pending != nil {
		return 0, curated.Errorf(Contention, kind, e.pending.Kind)
	}
	if e.stopped.Load() {
		return 0, curated.Errorf(Abandoned, kind)
	}

	e.pending = &Transaction{
		Kind:    kind,
		Segment: segment,
		Offset:  offset,
		Data:    data,
	}
	e.complete = false

	defer func() {
		e.pending = nil
		e.complete = false
	}()

	for !e.complete {
		if e.stopped.Load() {
			return 0, curated.Errorf(Abandoned, kind)
		}
		e.clk.Tick()
	}

	if kind == Halt {
		e.halted = true
	}

	return e.pending.Data, nil
}

// ReadWord performs two read transactions, low byte first. The offset wraps
// within the segment. For port reads the high byte is read from the next
// port.
func (e *Engine) ReadWord(kind Kind, segment uint16, offset uint16) (uint16, error) {
	lo, err := e.BeginAccess(kind, segment, offset, 0)
	if err != nil {
		return 0, err
	}
	hi, err := e.BeginAccess(kind, segment, offset+1, 0)
	if err != nil {
		return 0, err
	}
	return uint16(hi)<<8 | uint16(lo), nil
}

// WriteWord performs two write transactions, low byte first.
func (e *Engine) WriteWord(kind Kind, segment uint16, offset uint16, data uint16) error {
	_, err := e.BeginAccess(kind, segment, offset, uint8(data))
	if err != nil {
		return err
	}
	_, err = e.BeginAccess(kind, segment, offset+1, uint8(data>>8))
	return err
}

// ReadQueue removes the next instruction byte from the prefetch queue. If the
// queue is empty the clock is ticked until a prefetch completes. Returns the
// Suppressed error if the queue is empty and the bus is halted.
func (e *Engine) ReadQueue() (uint8, error) {
	for {
		if v, ok := e.queue.Pop(); ok {
			return v, nil
		}
		if e.stopped.Load() {
			return 0, curated.Errorf(Abandoned, InstructionFetch)
		}
		if e.halted {
			return 0, curated.Errorf(Suppressed)
		}
		e.clk.Tick()
	}
}

// Flush empties the prefetch queue and sets the address of the next
// prefetch. A prefetch in flight is completed but its data is discarded.
func (e *Engine) Flush(segment uint16, offset uint16) {
	e.queue.Clear()
	e.fetchSegment = segment
	e.fetchOffset = offset
	if e.current.Kind == InstructionFetch {
		e.current.discard = true
	}
}

// Idle ticks the clock n times. The bus continues to prefetch.
func (e *Engine) Idle(n int) error {
	for i := 0; i < n; i++ {
		if e.stopped.Load() {
			return curated.Errorf(Abandoned, "idle")
		}
		e.clk.Tick()
	}
	return nil
}

// EndAcknowledge marks the end of the processor's interrupt acknowledge
// sequence. The 8088 always issues two acknowledge transactions.
func (e *Engine) EndAcknowledge() {
	if e.ack != nil {
		e.ack.IntaEnd()
	}
}

// Halted returns true if a halt transaction has completed and the processor
// has not been resumed.
func (e *Engine) Halted() bool {
	return e.halted
}

// Resume prefetching after a halt.
func (e *Engine) Resume() {
	e.halted = false
}

// SetHold sets the state of the HOLD input. The bus is granted to the
// requester once any transaction in flight has completed.
func (e *Engine) SetHold(hold bool) {
	e.hold.Store(hold)
}

// Hlda returns the state of the hold acknowledge output.
func (e *Engine) Hlda() bool {
	return e.hlda
}

// Queue returns a copy of the prefetch queue.
func (e *Engine) Queue() Queue {
	return e.queue
}

// Current returns the transaction in flight.
func (e *Engine) Current() Transaction {
	return e.current
}

// FetchAddress returns the segment and offset of the next prefetch.
func (e *Engine) FetchAddress() (uint16, uint16) {
	return e.fetchSegment, e.fetchOffset
}

func (e *Engine) String() string {
	return e.current.String()
}
