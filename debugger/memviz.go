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

	"github.com/bradleyjkemp/memviz"
	"github.com/jetsetilly/gopher8088/hardware/cpu/execution"
	"github.com/jetsetilly/gopher8088/hardware/cpu/registers"
)

// the parts of the processor state included in a memviz dump
type processorState struct {
	Registers  registers.Registers
	Queue      []uint8
	LastResult execution.Result
}

// memviz writes a graphviz description of the processor state to the named
// file.
func (dbg *Debugger) memviz(filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()

	q := dbg.board.CPU.Bus().Queue()
	state := &processorState{
		Registers:  dbg.board.CPU.Regs,
		Queue:      q.Bytes(),
		LastResult: dbg.board.CPU.LastResult,
	}

	memviz.Map(f, state)

	return nil
}
