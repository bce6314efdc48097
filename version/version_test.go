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

package version_test

import (
	"runtime"
	"strings"
	"testing"

	"github.com/jetsetilly/gopher8088/version"
	"github.com/jetsetilly/gopher8088/test"
)

func TestVersion(t *testing.T) {
	v := version.Version()

	// tests are never built with a version number
	test.ExpectFailure(t, v.Release())
	test.ExpectSuccess(t, v.Number == "local" || v.Number == "unreleased")
	test.ExpectEquality(t, v.GoVersion, runtime.Version())
	test.ExpectSuccess(t, strings.HasPrefix(v.String(), version.ApplicationName))
}
