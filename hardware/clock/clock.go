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

package clock

// Frequency of the main system clock in MHz. This is the frequency of the
// processor's CLK input on the original PC and XT.
const Frequency = 4.77272

// PITFrequency is the frequency of the timer input in MHz. The timer is
// clocked at one quarter of the processor clock.
const PITFrequency = Frequency / 4

// Ticker implementations are advanced once per clock tick by a Clock that
// they have subscribed to.
type Ticker interface {
	Tick()
}

// Clock is the timing source for the emulation. There is no global clock.
// Each emulation owns one Clock and passes it to every component that needs
// it.
//
// Subscribers are ticked in the order they subscribed.
type Clock struct {
	subscribers []Ticker
	count       uint64
}

// NewClock is the preferred method of initialisation for the Clock type.
func NewClock() *Clock {
	return &Clock{
		subscribers: make([]Ticker, 0, 8),
	}
}

// Subscribe adds the Ticker to the list of subscribers. Subscribing the same
// Ticker twice has no effect.
func (clk *Clock) Subscribe(t Ticker) {
	if clk.Subscribed(t) {
		return
	}
	clk.subscribers = append(clk.subscribers, t)
}

// Unsubscribe removes the Ticker from the list of subscribers.
func (clk *Clock) Unsubscribe(t Ticker) {
	for i, s := range clk.subscribers {
		if s == t {
			clk.subscribers = append(clk.subscribers[:i:i], clk.subscribers[i+1:]...)
			return
		}
	}
}

// Subscribed returns true if the Ticker is currently subscribed.
func (clk *Clock) Subscribed(t Ticker) bool {
	for _, s := range clk.subscribers {
		if s == t {
			return true
		}
	}
	return false
}

// Tick advances the clock by one cycle, ticking every subscriber.
func (clk *Clock) Tick() {
	clk.count++

	// subscribers can unsubscribe during their Tick() so iterate over a
	// snapshot of the list
	subs := clk.subscribers
	for _, s := range subs {
		s.Tick()
	}
}

// Count returns the number of ticks since the clock was created or reset.
func (clk *Clock) Count() uint64 {
	return clk.count
}

// Reset the tick count. Subscribers are not affected.
func (clk *Clock) Reset() {
	clk.count = 0
}
