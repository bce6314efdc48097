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

// Package preferences contains the preference values used by the emulated
// board. The values are stored on disk and can be overridden on the command
// line with the prefs command line stack.
package preferences

import (
	"math/rand"
	"time"

	"github.com/jetsetilly/gopher8088/curated"
	"github.com/jetsetilly/gopher8088/prefs"
)

// PrefsFile is the name of the preferences file in the resource directory.
const PrefsFile = "preferences"

// Default preference values.
const (
	DefaultRAMKB      = 640
	DefaultSwitches   = 0x2d
	DefaultLogging    = true
	DefaultUndocument = true
)

// Preferences defines and collates all the preference values used by the
// board. The Preferences type satisfies the logger.Permission interface and
// the cpu.Preferences interface.
type Preferences struct {
	dsk *prefs.Disk

	// path to the ROM image loaded at the top of the address space
	ROM prefs.String

	// amount of RAM in kilobytes, mapped from address zero
	RAMKB prefs.Int

	// setting of the motherboard configuration switches
	Switches prefs.Int

	// emulate undocumented opcodes. if false, undocumented opcodes cause a
	// decode fault
	UndocumentedOpcodes prefs.Bool

	// allow the emulation to add entries to the log
	Logging prefs.Bool

	// initialise RAM to unknown state after reset
	RandomState prefs.Bool

	// random values generated in the hardware package should use the following
	// number source
	RandSrc *rand.Rand

	// the number used to seed RandSrc
	RandSeed int64
}

func (p *Preferences) String() string {
	return p.dsk.String()
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type. Values are loaded from the file at the path, which is
// created if it does not exist.
func NewPreferences(pth string) (*Preferences, error) {
	p := &Preferences{}

	// initialise random number generator
	p.Reseed(0)

	var err error

	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("hardware.rom", &p.ROM)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("hardware.ramkb", &p.RAMKB)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("hardware.dipswitches", &p.Switches)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("hardware.randstate", &p.RandomState)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("hardware.logging", &p.Logging)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("cpu.undocumented", &p.UndocumentedOpcodes)
	if err != nil {
		return nil, err
	}

	err = p.SetDefaults()
	if err != nil {
		return nil, err
	}

	err = p.dsk.Load(true)
	if err != nil {
		// ignore missing prefs file errors
		if !curated.Is(err, prefs.NoPrefsFile) {
			return nil, err
		}
	}

	return p, nil
}

// SetDefaults reverts all preferences to their default values. Values on
// disk are not changed until Save() is called.
func (p *Preferences) SetDefaults() error {
	if err := p.ROM.Set(""); err != nil {
		return err
	}
	if err := p.RAMKB.Set(DefaultRAMKB); err != nil {
		return err
	}
	if err := p.Switches.Set(DefaultSwitches); err != nil {
		return err
	}
	if err := p.RandomState.Set(false); err != nil {
		return err
	}
	if err := p.Logging.Set(DefaultLogging); err != nil {
		return err
	}
	return p.UndocumentedOpcodes.Set(DefaultUndocument)
}

// Reseed initialises the random number generator. Use a seed value of 0 to
// initialise with the current time.
func (p *Preferences) Reseed(seed int64) {
	if seed == 0 {
		p.RandSeed = int64(time.Now().Nanosecond())
	} else {
		p.RandSeed = seed
	}
	p.RandSrc = rand.New(rand.NewSource(p.RandSeed))
}

// AllowLogging implements the logger.Permission interface.
func (p *Preferences) AllowLogging() bool {
	return p.Logging.Get().(bool)
}

// Undocumented implements the cpu.Preferences interface.
func (p *Preferences) Undocumented() bool {
	return p.UndocumentedOpcodes.Get().(bool)
}

// Load current hardware preference from disk.
func (p *Preferences) Load() error {
	return p.dsk.Load(false)
}

// Save current hardware preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}
