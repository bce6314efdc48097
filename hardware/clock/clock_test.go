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

package clock_test

import (
	"testing"

	"github.com/jetsetilly/gopher8088/hardware/clock"
	"github.com/jetsetilly/gopher8088/test"
)

type counter struct {
	n   int
	log *[]string
	id  string
}

func (c *counter) Tick() {
	c.n++
	if c.log != nil {
		*c.log = append(*c.log, c.id)
	}
}

func TestSubscription(t *testing.T) {
	clk := clock.NewClock()
	a := &counter{}
	b := &counter{}

	clk.Subscribe(a)
	clk.Tick()
	test.ExpectEquality(t, a.n, 1)
	test.ExpectEquality(t, b.n, 0)

	clk.Subscribe(b)
	clk.Subscribe(b)
	clk.Tick()
	test.ExpectEquality(t, a.n, 2)
	test.ExpectEquality(t, b.n, 1)

	clk.Unsubscribe(a)
	test.ExpectFailure(t, clk.Subscribed(a))
	clk.Tick()
	test.ExpectEquality(t, a.n, 2)
	test.ExpectEquality(t, b.n, 2)

	test.ExpectEquality(t, clk.Count(), uint64(3))
	clk.Reset()
	test.ExpectEquality(t, clk.Count(), uint64(0))
}

func TestOrder(t *testing.T) {
	clk := clock.NewClock()
	var log []string
	clk.Subscribe(&counter{log: &log, id: "a"})
	clk.Subscribe(&counter{log: &log, id: "b"})
	clk.Tick()
	clk.Tick()
	test.DemandEquality(t, len(log), 4)
	test.ExpectEquality(t, log[0], "a")
	test.ExpectEquality(t, log[1], "b")
	test.ExpectEquality(t, log[2], "a")
	test.ExpectEquality(t, log[3], "b")
}
