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

//go:build !windows

package plainterm

import (
	"os"

	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"
)

// watcher puts the terminal into cbreak mode while the emulation is running
// so that a single key press can stop it.
type watcher struct {
	canAttr unix.Termios

	quit chan bool
	done chan bool
}

// RunStart implements the terminal.RunWatcher interface.
func (pt *PlainTerminal) RunStart(stop func()) error {
	if !pt.realInput || pt.watch.quit != nil {
		return nil
	}

	if err := termios.Tcgetattr(uintptr(pt.fd), &pt.watch.canAttr); err != nil {
		return err
	}

	// read() returns after a tenth of a second even if no key has been pressed
	cbreakAttr := pt.watch.canAttr
	termios.Cfmakecbreak(&cbreakAttr)
	cbreakAttr.Cc[unix.VMIN] = 0
	cbreakAttr.Cc[unix.VTIME] = 1

	if err := termios.Tcsetattr(uintptr(pt.fd), termios.TCIFLUSH, &cbreakAttr); err != nil {
		return err
	}

	pt.watch.quit = make(chan bool)
	pt.watch.done = make(chan bool)

	go func(input *os.File, quit chan bool, done chan bool) {
		defer close(done)
		b := make([]byte, 1)
		for {
			select {
			case <-quit:
				return
			default:
			}
			n, _ := input.Read(b)
			if n > 0 {
				stop()
				return
			}
		}
	}(pt.input.(*os.File), pt.watch.quit, pt.watch.done)

	return nil
}

// RunEnd implements the terminal.RunWatcher interface.
func (pt *PlainTerminal) RunEnd() {
	if pt.watch.quit == nil {
		return
	}

	close(pt.watch.quit)
	<-pt.watch.done
	pt.watch.quit = nil
	pt.watch.done = nil

	_ = termios.Tcsetattr(uintptr(pt.fd), termios.TCIFLUSH, &pt.watch.canAttr)
}
