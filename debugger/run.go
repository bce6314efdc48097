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

package debugger

import (
	"os"
	"os/signal"

	"github.com/jetsetilly/gopher8088/debugger/govern"
	"github.com/jetsetilly/gopher8088/debugger/terminal"
	"github.com/jetsetilly/gopher8088/hardware/memory"
)

// runCondition describes when a call to run() should return. A zero value
// runs until the emulation is halted by the user or by an error.
type runCondition struct {
	// number of instructions to execute. zero means no limit
	count int

	// stop when the next instruction is at the linear address
	address    uint32
	useAddress bool
}

// run the emulation until the condition is met, the user interrupts, or an
// error occurs.
func (dbg *Debugger) run(cond runCondition) error {
	dbg.halt.Store(false)
	if cond.count > 0 {
		dbg.state = govern.Stepping
	} else {
		dbg.state = govern.Running
	}
	defer func() {
		dbg.state = govern.Paused
	}()

	// a key press or an interrupt signal halts the emulation
	if w, ok := dbg.term.(terminal.RunWatcher); ok && cond.count != 1 {
		if err := w.RunStart(dbg.Halt); err != nil {
			return err
		}
		defer w.RunEnd()
	}

	sig := make(chan os.Signal, 1)
	done := make(chan bool)
	signal.Notify(sig, os.Interrupt)
	defer func() {
		signal.Stop(sig)
		close(done)
	}()
	go func() {
		select {
		case <-sig:
			dbg.Halt()
		case <-done:
		}
	}()

	count := 0

	return dbg.board.Run(func() (govern.State, error) {
		if dbg.halt.Load() {
			return govern.Ending, nil
		}

		if cond.count > 0 {
			count++
			if count >= cond.count {
				return govern.Ending, nil
			}
		}

		if cond.useAddress {
			regs := &dbg.board.CPU.Regs
			if memory.Linear(regs.CS.Value(), regs.IP.Value()) == cond.address {
				return govern.Ending, nil
			}
		}

		return govern.Running, nil
	})
}
