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

package govern

// State of the emulation as seen by whatever is driving it.
type State int

// The emulation begins in the Start state and moves between Paused,
// Stepping and Running under the control of the monitor. Initialising marks
// a reset or a ROM change. Ending is final.
//
// Only Running, Paused, Initialising and Ending are meaningful as the return
// value of a continueCheck function.
const (
	Start State = iota
	Initialising
	Paused
	Stepping
	Running
	Ending
)

var stateNames = [...]string{"start", "initialising", "paused", "stepping", "running", "ending"}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return "unknown"
	}
	return stateNames[s]
}
