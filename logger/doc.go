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

// Package logger is the central log for the application. Log entries are
// tagged and entries with identical tags and details that follow one
// another are collapsed into a single entry.
//
// Log entries are only created if the Permission argument allows it. The
// emulation's preferences implement the Permission interface so that
// logging can be turned off for an emulation without each component needing
// to know about it.
//
// Entries can be echoed as they are created with the SetEcho() function. The
// echo is formatted by logrus with the entry's tag as a field.
package logger
