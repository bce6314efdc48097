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

package prefs_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/gopher8088/curated"
	"github.com/jetsetilly/gopher8088/prefs"
	"github.com/jetsetilly/gopher8088/test"
)

func TestBool(t *testing.T) {
	var v prefs.Bool
	test.ExpectEquality(t, v.String(), "false")
	test.ExpectSuccess(t, v.Set(true))
	test.ExpectEquality(t, v.Get().(bool), true)
	test.ExpectSuccess(t, v.Set("FALSE"))
	test.ExpectEquality(t, v.Get().(bool), false)
	test.ExpectSuccess(t, v.Set("true"))
	test.ExpectEquality(t, v.String(), "true")
	test.ExpectFailure(t, v.Set(10))
	test.ExpectSuccess(t, v.Reset())
	test.ExpectEquality(t, v.Get().(bool), false)
}

func TestInt(t *testing.T) {
	var v prefs.Int
	test.ExpectEquality(t, v.String(), "0")
	test.ExpectSuccess(t, v.Set(640))
	test.ExpectEquality(t, v.Get().(int), 640)
	test.ExpectSuccess(t, v.Set("0x2d"))
	test.ExpectEquality(t, v.Get().(int), 0x2d)
	test.ExpectFailure(t, v.Set("foo"))
	test.ExpectEquality(t, v.Get().(int), 0x2d)
}

func TestString(t *testing.T) {
	var v prefs.String
	test.ExpectSuccess(t, v.Set("bios.rom"))
	test.ExpectEquality(t, v.String(), "bios.rom")
	v.SetMaxLen(4)
	test.ExpectEquality(t, v.String(), "bios")
	test.ExpectSuccess(t, v.Set("another"))
	test.ExpectEquality(t, v.String(), "anot")
}

func TestHooks(t *testing.T) {
	var v prefs.Int
	var post int

	v.SetHookPre(func(nv prefs.Value) error {
		if nv.(int) < 0 {
			return errors.New("negative")
		}
		return nil
	})
	v.SetHookPost(func(nv prefs.Value) error {
		post = nv.(int)
		return nil
	})

	test.ExpectSuccess(t, v.Set(10))
	test.ExpectEquality(t, post, 10)

	// the pre hook prevents the value from being stored
	test.ExpectFailure(t, v.Set(-1))
	test.ExpectEquality(t, v.Get().(int), 10)
	test.ExpectEquality(t, post, 10)
}

func TestDisk(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "prefs")

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var b prefs.Bool
	var i prefs.Int
	var s prefs.String
	test.ExpectSuccess(t, dsk.Add("test.bool", &b))
	test.ExpectSuccess(t, dsk.Add("test.int", &i))
	test.ExpectSuccess(t, dsk.Add("test.string", &s))
	test.ExpectFailure(t, dsk.Add("test.int", &i))

	// file does not exist yet
	err = dsk.Load(false)
	test.ExpectSuccess(t, curated.Is(err, prefs.NoPrefsFile))

	b.Set(true)
	i.Set(42)
	s.Set("hello world")
	test.DemandSuccess(t, dsk.Save())

	data, err := os.ReadFile(fn)
	test.DemandSuccess(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	test.DemandEquality(t, len(lines), 4)
	test.ExpectEquality(t, lines[1], "test.bool :: true")
	test.ExpectEquality(t, lines[2], "test.int :: 42")
	test.ExpectEquality(t, lines[3], "test.string :: hello world")

	// a second disk instance with only some of the keys
	dsk2, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)
	var i2 prefs.Int
	test.ExpectSuccess(t, dsk2.Add("test.int", &i2))
	test.ExpectSuccess(t, dsk2.Load(false))
	test.ExpectEquality(t, i2.Get().(int), 42)

	// saving the second instance preserves keys it doesn't know about
	i2.Set(100)
	test.ExpectSuccess(t, dsk2.Save())
	b.Reset()
	test.ExpectSuccess(t, dsk.Load(false))
	test.ExpectEquality(t, b.Get().(bool), true)
	test.ExpectEquality(t, i.Get().(int), 100)
}

func TestDiskCommandLine(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "prefs")

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var i prefs.Int
	test.ExpectSuccess(t, dsk.Add("test.int", &i))
	i.Set(10)
	test.DemandSuccess(t, dsk.Save())

	prefs.PushCommandLineStack("test.int::20")
	test.ExpectSuccess(t, dsk.Load(false))
	test.ExpectEquality(t, i.Get().(int), 20)

	// the command line value has been consumed
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")
}
