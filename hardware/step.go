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

package hardware

import (
	"github.com/jetsetilly/gopher8088/hardware/cpu/execution"
)

// Step the emulation forward one CPU instruction. Key events waiting in the
// keyboard queue are delivered before the instruction.
//
// The result of the instruction is returned. The result is valid even if
// an error is returned.
func (b *Board) Step() (execution.Result, error) {
	b.Keyboard.Service()
	err := b.CPU.Step()
	return b.CPU.LastResult, err
}

// StepN steps the emulation forward n instructions. It stops early if an
// error occurs.
func (b *Board) StepN(n int) error {
	for i := 0; i < n; i++ {
		if _, err := b.Step(); err != nil {
			return err
		}
	}
	return nil
}
