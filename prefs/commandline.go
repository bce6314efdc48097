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
	"fmt"
	"sort"
	"strings"
)

// a group of preference values taken from a single command line. values are
// removed from the group as they are consumed.
type commandLineGroup map[string]Value

// parse a string of the form "key::value; key::value". entries that are not
// a single key and value pair are ignored.
func parseCommandLineGroup(s string) commandLineGroup {
	grp := make(commandLineGroup)
	for _, entry := range strings.Split(s, ";") {
		key, value, ok := strings.Cut(entry, "::")
		if !ok || strings.Contains(value, "::") {
			continue
		}
		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}
		grp[key] = strings.TrimSpace(value)
	}
	return grp
}

// String returns the group in the same form as it was parsed, with the keys
// sorted.
func (grp commandLineGroup) String() string {
	keys := make([]string, 0, len(grp))
	for k := range grp {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	entries := make([]string, 0, len(keys))
	for _, k := range keys {
		entries = append(entries, fmt.Sprintf("%s::%v", k, grp[k]))
	}
	return strings.Join(entries, "; ")
}

// groups pushed with PushCommandLineStack(). only the most recent group is
// consulted by the Disk type.
var commandLine []commandLineGroup

// SizeCommandLineStack returns the number of groups that have been pushed.
func SizeCommandLineStack() int {
	return len(commandLine)
}

// PushCommandLineStack parses the -prefs argument of a command line and
// makes it the current group. Values in the group override values loaded
// from disk.
func PushCommandLineStack(prefs string) {
	commandLine = append(commandLine, parseCommandLineGroup(prefs))
}

// PopCommandLineStack discards the current group. Any values that were not
// consumed are returned so that the caller can warn about them.
func PopCommandLineStack() string {
	if len(commandLine) == 0 {
		return ""
	}
	grp := commandLine[len(commandLine)-1]
	commandLine = commandLine[:len(commandLine)-1]
	return grp.String()
}

// GetCommandLinePref consumes the value for key from the current group.
func GetCommandLinePref(key string) (bool, Value) {
	if len(commandLine) == 0 {
		return false, nil
	}
	grp := commandLine[len(commandLine)-1]
	v, ok := grp[key]
	if !ok {
		return false, nil
	}
	delete(grp, key)
	return true, v
}
