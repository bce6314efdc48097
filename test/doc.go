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

// Package test contains helper functions to remove common boilerplate from
// tests.
//
// The Expect functions report a failure and allow the test to continue. The
// Demand functions are the same except that a failure ends the test
// immediately. Demand functions should be used when the value being tested
// is needed for subsequent tests to make sense.
//
// ExpectSuccess() and ExpectFailure() interpret nil as a success value. This
// is because errors use nil to indicate no error.
//
// CompareWriter implements io.Writer and is used to capture output for
// comparison.
package test
