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

package prefs

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/jetsetilly/gopher8088/curated"
)

// NoPrefsFile is returned by Load() when the preferences file does not
// exist. It is usually safe to ignore.
const NoPrefsFile = "prefs: no prefs file (%s)"

// the first line of the preferences file
const warningBoilerPlate = "*** do not edit this file by hand ***"

// the separator between key and value on each line of the preferences file
const keySep = " :: "

// Disk represents preference values that are stored on disk. Values are
// associated with a key with the Add() function.
//
// More than one Disk instance can refer to the same file. Entries in the
// file that have not been added to the Disk instance are preserved when the
// file is saved.
type Disk struct {
	path    string
	entries map[string]pref
}

// NewDisk is the preferred method of initialisation for the Disk type.
func NewDisk(path string) (*Disk, error) {
	return &Disk{
		path:    path,
		entries: make(map[string]pref),
	}, nil
}

// Add a preference value to the disk, associated with a key. The key should
// be unique. Adding the same key twice is an error.
func (dsk *Disk) Add(key string, p pref) error {
	if strings.Contains(key, keySep) {
		return fmt.Errorf("prefs: illegal key %q", key)
	}
	if _, ok := dsk.entries[key]; ok {
		return fmt.Errorf("prefs: key %q already added", key)
	}
	dsk.entries[key] = p
	return nil
}

// Reset all preference values to their reset state. Values on disk are not
// affected until Save() is called.
func (dsk *Disk) Reset() error {
	for k, p := range dsk.entries {
		if err := p.Reset(); err != nil {
			return fmt.Errorf("prefs: %s: %w", k, err)
		}
	}
	return nil
}

// String returns the entries in the Disk in the same format as the file.
func (dsk *Disk) String() string {
	keys := make([]string, 0, len(dsk.entries))
	for k := range dsk.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	s := strings.Builder{}
	for _, k := range keys {
		s.WriteString(fmt.Sprintf("%s%s%s\n", k, keySep, dsk.entries[k].String()))
	}
	return s.String()
}

// Save current preference values to disk.
func (dsk *Disk) Save() error {
	// load the existing file so that entries for keys not in this Disk are
	// not lost
	onDisk, err := dsk.read()
	if err != nil && !curated.Is(err, NoPrefsFile) {
		return err
	}

	for k, p := range dsk.entries {
		onDisk[k] = p.String()
	}

	keys := make([]string, 0, len(onDisk))
	for k := range onDisk {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	f, err := os.Create(dsk.path)
	if err != nil {
		return fmt.Errorf("prefs: %w", err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	fmt.Fprintln(w, warningBoilerPlate)
	for _, k := range keys {
		fmt.Fprintf(w, "%s%s%s\n", k, keySep, onDisk[k])
	}

	if err := w.Flush(); err != nil {
		return fmt.Errorf("prefs: %w", err)
	}

	return nil
}

// Load preference values from disk. If saveOnFail is true then the file will
// be created if it doesn't exist.
//
// Values on the top of the command line stack take priority over values in
// the file.
func (dsk *Disk) Load(saveOnFail bool) error {
	onDisk, err := dsk.read()
	if err != nil {
		if curated.Is(err, NoPrefsFile) && saveOnFail {
			if err := dsk.Save(); err != nil {
				return err
			}
		}
		dsk.commandLine()
		return err
	}

	for k, v := range onDisk {
		if p, ok := dsk.entries[k]; ok {
			if err := p.Set(v); err != nil {
				return fmt.Errorf("prefs: %s: %w", k, err)
			}
		}
	}

	return dsk.commandLine()
}

func (dsk *Disk) commandLine() error {
	for k, p := range dsk.entries {
		if ok, v := GetCommandLinePref(k); ok {
			if err := p.Set(v); err != nil {
				return fmt.Errorf("prefs: %s: %w", k, err)
			}
		}
	}
	return nil
}

func (dsk *Disk) read() (map[string]string, error) {
	onDisk := make(map[string]string)

	f, err := os.Open(dsk.path)
	if err != nil {
		if os.IsNotExist(err) {
			return onDisk, curated.Errorf(NoPrefsFile, dsk.path)
		}
		return onDisk, fmt.Errorf("prefs: %w", err)
	}
	defer f.Close()

	return onDisk, parse(f, onDisk)
}

func parse(r io.Reader, onDisk map[string]string) error {
	scanner := bufio.NewScanner(r)

	// the first line must be the boilerplate warning
	if !scanner.Scan() {
		return scanner.Err()
	}
	if scanner.Text() != warningBoilerPlate {
		return fmt.Errorf("prefs: not a valid prefs file")
	}

	for scanner.Scan() {
		kv := strings.SplitN(scanner.Text(), keySep, 2)
		if len(kv) == 2 {
			onDisk[kv[0]] = kv[1]
		}
	}

	return scanner.Err()
}
