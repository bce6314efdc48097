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

// Package modalflag wraps the flag package of the standard library and adds
// program modes. A mode is a command line argument that selects a different
// set of flags and arguments. For example:
//
//	gopher8088 DEBUG -script init.lua bios.rom
//
// Modes are added with AddSubMode(). The first mode added is the default mode
// and is used if the first non-flag argument is not a mode. Mode names are
// case insensitive.
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubMode("RUN", "run the emulation")
//	md.AddSubMode("DEBUG", "run the emulation in the monitor")
//	p, err := md.Parse()
//	...
//	switch md.Mode() {
//	case "DEBUG":
//		md.NewMode()
//		script := md.AddString("script", "", "lua script to run on startup")
//		p, err = md.Parse()
//		...
//	}
//
// Each call to NewMode() starts a new set of flags for the arguments that
// follow the most recently parsed mode.
package modalflag
