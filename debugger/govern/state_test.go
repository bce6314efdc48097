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

package govern_test

import (
	"testing"

	"github.com/jetsetilly/gopher8088/debugger/govern"
	"github.com/jetsetilly/gopher8088/test"
)

func TestStateString(t *testing.T) {
	test.ExpectEquality(t, govern.Start.String(), "start")
	test.ExpectEquality(t, govern.Stepping.String(), "stepping")
	test.ExpectEquality(t, govern.Ending.String(), "ending")
	test.ExpectEquality(t, govern.State(-1).String(), "unknown")
	test.ExpectEquality(t, govern.State(100).String(), "unknown")
}
