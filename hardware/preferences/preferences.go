// This file is part of Gopherboy.
//
// Gopherboy is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopherboy is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopherboy.  If not, see <https://www.gnu.org/licenses/>.

package preferences

import (
	"github.com/jetsetilly/gopherboy/paths"
	"github.com/jetsetilly/gopherboy/prefs"
)

// DefaultPrefsFile is the name of the preferences file in the resource
// directory.
const DefaultPrefsFile = "preferences.toml"

// Preferences defines and collates all the preference values used by the
// hardware.
type Preferences struct {
	dsk *prefs.Disk

	// validate the logo and header checksum of the cartridge as the boot ROM
	// does. the title of the cartridge is only parsed if this is true
	BootCheck prefs.Bool

	// initialise the CPU and IO registers to the state left by the boot ROM
	PostBoot prefs.Bool
}

func (p *Preferences) String() string {
	if p.dsk == nil {
		return ""
	}
	return p.dsk.String()
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type. Values are loaded from the preferences file.
func NewPreferences() (*Preferences, error) {
	return newPreferences(paths.ResourcePath(DefaultPrefsFile))
}

// NewDefaultPreferences returns preferences with the default values. The
// values are not associated with a preferences file but are subject to the
// command line stack.
func NewDefaultPreferences() *Preferences {
	p := &Preferences{}
	p.SetDefaults()
	applyCommandLine("hardware.bootcheck", &p.BootCheck)
	applyCommandLine("hardware.postboot", &p.PostBoot)
	return p
}

func applyCommandLine(key string, p *prefs.Bool) {
	if ok, v := prefs.GetCommandLinePref(key); ok {
		_ = p.Set(v)
	}
}

func newPreferences(path string) (*Preferences, error) {
	p := &Preferences{}
	p.SetDefaults()

	var err error

	p.dsk, err = prefs.NewDisk(path)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("hardware.bootcheck", &p.BootCheck)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("hardware.postboot", &p.PostBoot)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Load(true)
	if err != nil {
		return nil, err
	}

	return p, nil
}

// SetDefaults reverts all hardware preferences to their default values.
func (p *Preferences) SetDefaults() {
	_ = p.BootCheck.Set(true)
	_ = p.PostBoot.Set(true)
}

// Load current hardware preferences from disk.
func (p *Preferences) Load() error {
	if p.dsk == nil {
		return nil
	}
	return p.dsk.Load(false)
}

// Save current hardware preferences to disk.
func (p *Preferences) Save() error {
	if p.dsk == nil {
		return nil
	}
	return p.dsk.Save()
}
