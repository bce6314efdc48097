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

package instructions_test

import (
	"testing"

	"github.com/jetsetilly/gopher8088/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher8088/test"
)

func TestTable(t *testing.T) {
	for i, defn := range instructions.Definitions {
		test.ExpectEquality(t, int(defn.OpCode), i)
		if defn.Group == instructions.NoGroup {
			test.ExpectInequality(t, defn.Operator, "", defn)
		} else {
			test.ExpectSuccess(t, defn.ModRM, defn)
		}
		test.ExpectSuccess(t, defn.Cycles > 0, defn)
	}
}

func TestModRM(t *testing.T) {
	test.ExpectSuccess(t, instructions.Definitions[0x00].ModRM)
	test.ExpectFailure(t, instructions.Definitions[0x04].ModRM)
	test.ExpectSuccess(t, instructions.Definitions[0x8d].ModRM)
	test.ExpectFailure(t, instructions.Definitions[0xeb].ModRM)
	test.ExpectSuccess(t, instructions.Definitions[0xd8].ModRM)
}

func TestWidth(t *testing.T) {
	test.ExpectFailure(t, instructions.Definitions[0x00].IsWide())
	test.ExpectSuccess(t, instructions.Definitions[0x01].IsWide())
	test.ExpectSuccess(t, instructions.Definitions[0x05].IsWide())
	test.ExpectSuccess(t, instructions.Definitions[0xa5].IsWide())
	test.ExpectFailure(t, instructions.Definitions[0xa4].IsWide())
	test.ExpectSuccess(t, instructions.Definitions[0x83].IsWide())
}

func TestGroups(t *testing.T) {
	m, ok := instructions.Definitions[0xf7].Member(6)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, m.Operator, "DIV")

	_, ok = instructions.Definitions[0xfe].Member(2)
	test.ExpectFailure(t, ok)

	_, ok = instructions.Definitions[0xff].Member(7)
	test.ExpectFailure(t, ok)

	m, ok = instructions.Definitions[0x90].Member(0)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, m.Operator, "NOP")
}
