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

package execution_test

import (
	"testing"

	"github.com/jetsetilly/gopher8088/hardware/cpu/execution"
	"github.com/jetsetilly/gopher8088/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher8088/test"
)

func TestValidity(t *testing.T) {
	var r execution.Result
	r.Reset(0xf000, 0x0100)
	test.ExpectFailure(t, r.IsValid())

	r.Defn = &instructions.Definitions[0x90]
	r.Operator = "NOP"
	r.Bytes = append(r.Bytes, 0x90)
	r.Cycles = 3
	r.Final = true
	test.ExpectSuccess(t, r.IsValid())
	test.ExpectEquality(t, r.String(), "f000:0100 90 NOP [3]")

	r.Cycles = 1
	test.ExpectFailure(t, r.IsValid())

	r.Interrupted = true
	test.ExpectSuccess(t, r.IsValid())
}

func TestReset(t *testing.T) {
	var r execution.Result
	r.Bytes = append(r.Bytes, 0xcd, 0x21)
	r.Interrupt = 0x21
	r.Final = true
	r.Reset(0x1234, 0x5678)
	test.ExpectEquality(t, len(r.Bytes), 0)
	test.ExpectEquality(t, r.Interrupt, execution.NoInterrupt)
	test.ExpectFailure(t, r.Final)
	test.ExpectEquality(t, r.CS, uint16(0x1234))
}
