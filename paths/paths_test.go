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

package paths_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/gopher8088/paths"
	"github.com/jetsetilly/gopher8088/test"
)

func TestPaths(t *testing.T) {
	// a local resource directory takes priority over the user config directory
	dir := t.TempDir()
	wd, err := os.Getwd()
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, os.Chdir(dir))
	defer os.Chdir(wd)
	test.DemandSuccess(t, os.Mkdir(".gopher8088", 0700))

	test.ExpectEquality(t, paths.ResourcePath("foo/bar", "baz"), ".gopher8088/foo/bar/baz")
	test.ExpectEquality(t, paths.ResourcePath("foo/bar", ""), ".gopher8088/foo/bar")
	test.ExpectEquality(t, paths.ResourcePath("", "baz"), ".gopher8088/baz")
	test.ExpectEquality(t, paths.ResourcePath("", ""), ".gopher8088")

	pth, err := paths.EnsureResourcePath("wav", "out.wav")
	test.ExpectSuccess(t, err)
	_, err = os.Stat(filepath.Dir(pth))
	test.ExpectSuccess(t, err)
}

func TestUniqueFilename(t *testing.T) {
	fn := paths.UniqueFilename("wav", "bios")
	test.ExpectSuccess(t, strings.HasPrefix(fn, "wav_bios_"))
	fn = paths.UniqueFilename("wav", " ")
	test.ExpectSuccess(t, strings.HasPrefix(fn, "wav_2"))
}
