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

// Package curated is a helper package for the plain Go language error type.
// Curated errors are created with Errorf() and are identified by the pattern
// string used to create them rather than by the formatted message.
//
//	const UnmappedAddress = "memory: unmapped address (%#05x)"
//
//	err := curated.Errorf(UnmappedAddress, 0xa0000)
//
//	if curated.Is(err, UnmappedAddress) {
//		fmt.Println("true")
//	}
//
// The Has() function is similar but checks if a pattern occurs somewhere in
// the error chain.
//
//	f := curated.Errorf("board: %v", err)
//
//	if curated.Has(f, UnmappedAddress) {
//		fmt.Println("true")
//	}
//
// The message returned by Error() is normalised such that adjacent duplicate
// parts are removed. For the purposes of this package parts of a message are
// separated by the sub-string ": ". For example, wrapping an error with the
// same prefix at each level:
//
//	e := curated.Errorf("cpu: %v", curated.Errorf("cpu: decode fault"))
//
// produces the message "cpu: decode fault" and not "cpu: cpu: decode fault".
//
// Patterns that are intended to be tested against by other packages should be
// stored as a const string, suitably named and commented.
package curated
