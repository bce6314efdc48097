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

// Package prefs facilitates the storing of preference values. Supported
// types are Bool, Int and String. Each type carries optional hooks that are
// called before and after a value is set.
//
// A Disk instance associates preference values with keys and saves or loads
// them to a plain text file, one "key :: value" pair per line.
//
// The command line stack allows preferences to be overridden for a single
// run of the program. A group is pushed with PushCommandLineStack() in the
// form "key::value; key::value" and the values are consumed by Disk.Load().
package prefs
