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

package notifications

import "fmt"

// Notice describes a change to the state of the emulated machine.
type Notice string

// List of defined notices.
const (
	NotifyRegisterChanged Notice = "NotifyRegisterChanged"
	NotifyFlagChanged     Notice = "NotifyFlagChanged"
	NotifySegmentChanged  Notice = "NotifySegmentChanged"
	NotifyMemoryChanged   Notice = "NotifyMemoryChanged"
	NotifyIPChanged       Notice = "NotifyIPChanged"
)

// Notification is a read-only snapshot of a single change. The Label field
// names the register, segment or flag. The Address field is only meaningful
// for NotifyMemoryChanged.
type Notification struct {
	Notice  Notice
	Label   string
	Address uint32
	Value   uint16
}

func (n Notification) String() string {
	switch n.Notice {
	case NotifyMemoryChanged:
		return fmt.Sprintf("%s %05x=%02x", n.Notice, n.Address, n.Value)
	case NotifyFlagChanged:
		return fmt.Sprintf("%s %s=%v", n.Notice, n.Label, n.Value != 0)
	}
	return fmt.Sprintf("%s %s=%04x", n.Notice, n.Label, n.Value)
}

// Observer implementations receive notifications from the emulation. Notify()
// is called synchronously from the emulation and must not change the state
// of the emulation.
type Observer interface {
	Notify(n Notification)
}
