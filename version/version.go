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

// Package version reports the version of the program. The version number is
// set at link time:
//
//	go build -ldflags "-X github.com/jetsetilly/gopher8088/version.number=v0.1.0"
//
// Builds without a version number are described with the VCS information
// embedded by the go tool, if it is available.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

// ApplicationName is the name to use when referring to the application.
const ApplicationName = "Gopher8088"

// set by the linker
var number string

// Info describes the build of the program.
type Info struct {
	// the version number. "unreleased" if there is no version number but
	// there is VCS information. "local" if there is neither
	Number string

	// the VCS revision. suffixed with "+dirty" if the source had been
	// modified but not committed
	Revision string

	// the version of Go used to build the program
	GoVersion string
}

// Release is true if the build has a version number.
func (i Info) Release() bool {
	return number != "" && i.Number == number
}

func (i Info) String() string {
	if i.Release() {
		return fmt.Sprintf("%s %s", ApplicationName, i.Number)
	}
	return fmt.Sprintf("%s %s (%s) %s", ApplicationName, i.Number, i.Revision, i.GoVersion)
}

// Version returns information about the build.
func Version() Info {
	info := Info{
		Number:    number,
		Revision:  "no revision information",
		GoVersion: runtime.Version(),
	}

	var vcs bool
	var modified bool
	var revision string

	if bi, ok := debug.ReadBuildInfo(); ok {
		for _, s := range bi.Settings {
			switch s.Key {
			case "vcs":
				vcs = true
			case "vcs.revision":
				revision = s.Value
			case "vcs.modified":
				modified = s.Value == "true"
			}
		}
	}

	if revision != "" {
		info.Revision = revision
		if modified {
			info.Revision = fmt.Sprintf("%s+dirty", revision)
		}
	}

	if info.Number == "" {
		if vcs {
			info.Number = "unreleased"
		} else {
			info.Number = "local"
		}
	}

	return info
}
