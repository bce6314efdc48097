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

package cpu

import (
	"github.com/jetsetilly/gopher8088/hardware/cpu/registers"
	"github.com/jetsetilly/gopher8088/notifications"
)

// notify the observer of every register that differs from the before state.
func (mc *CPU) notify(before registers.Registers) {
	for i := uint8(0); i < 8; i++ {
		a := before.Reg16(i)
		b := mc.Regs.Reg16(i)
		if a.Value() != b.Value() {
			mc.observer.Notify(notifications.Notification{
				Notice: notifications.NotifyRegisterChanged,
				Label:  b.Label(),
				Value:  b.Value(),
			})
		}
	}

	for s := registers.ES; s <= registers.DS; s++ {
		a := before.Segment(s)
		b := mc.Regs.Segment(s)
		if a.Value() != b.Value() {
			mc.observer.Notify(notifications.Notification{
				Notice: notifications.NotifySegmentChanged,
				Label:  b.Label(),
				Value:  b.Value(),
			})
		}
	}

	if before.IP.Value() != mc.Regs.IP.Value() {
		mc.observer.Notify(notifications.Notification{
			Notice: notifications.NotifyIPChanged,
			Label:  mc.Regs.IP.Label(),
			Value:  mc.Regs.IP.Value(),
		})
	}

	for _, f := range registers.FlagNames {
		v := mc.Regs.Flags.Get(f)
		if before.Flags.Get(f) != v {
			var n uint16
			if v {
				n = 1
			}
			mc.observer.Notify(notifications.Notification{
				Notice: notifications.NotifyFlagChanged,
				Label:  f,
				Value:  n,
			})
		}
	}
}
