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

package prefs

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/pelletier/go-toml/v2"
)

// WarningBoilerPlate is written as a comment at the head of every preferences
// file.
const WarningBoilerPlate = "# *** do not edit this file by hand while gopherboy is running ***"

// Disk represents preference values as stored on disk.
type Disk struct {
	crit    sync.Mutex
	path    string
	entries map[string]pref

	// keys that have been set by the command line stack. these are not
	// changed by Load()
	overrides map[string]bool
}

// NewDisk is the preferred method of initialisation for the Disk type.
func NewDisk(path string) (*Disk, error) {
	return &Disk{
		path:      path,
		entries:   make(map[string]pref),
		overrides: make(map[string]bool),
	}, nil
}

// Path returns the filename of the preferences file.
func (dsk *Disk) Path() string {
	return dsk.path
}

// Add preference value to list of values to store/load from Disk. If the
// current group of the command line stack has a value for the key then that
// value is applied immediately.
func (dsk *Disk) Add(key string, p pref) error {
	dsk.crit.Lock()
	defer dsk.crit.Unlock()

	if strings.ContainsAny(key, " \t\n") || key == "" {
		return fmt.Errorf("prefs: illegal key (%q)", key)
	}

	if _, ok := dsk.entries[key]; ok {
		return fmt.Errorf("prefs: duplicate key (%s)", key)
	}
	dsk.entries[key] = p

	if ok, v := GetCommandLinePref(key); ok {
		if err := p.Set(v); err != nil {
			return fmt.Errorf("prefs: %w", err)
		}
		dsk.overrides[key] = true
	}

	return nil
}

// Reset all entries to their zero value.
func (dsk *Disk) Reset() error {
	dsk.crit.Lock()
	defer dsk.crit.Unlock()

	for _, p := range dsk.entries {
		if err := p.Reset(); err != nil {
			return fmt.Errorf("prefs: %w", err)
		}
	}
	return nil
}

// Load preference values from disk. Entries in the file that have not been
// added to the Disk instance are ignored. A missing file is not an error. If
// saveOnFail is true then a file that cannot be loaded is replaced with the
// current values.
func (dsk *Disk) Load(saveOnFail bool) error {
	dsk.crit.Lock()
	defer dsk.crit.Unlock()

	data, err := readFile(dsk.path)
	if err != nil {
		if saveOnFail {
			return dsk.save()
		}
		return err
	}

	for key, v := range data {
		if dsk.overrides[key] {
			continue
		}
		if p, ok := dsk.entries[key]; ok {
			if err := p.Set(v); err != nil {
				return fmt.Errorf("prefs: %s: %w", key, err)
			}
		}
	}

	return nil
}

// Save current preference values to disk. Entries in the file that belong to
// other Disk instances are preserved.
func (dsk *Disk) Save() error {
	dsk.crit.Lock()
	defer dsk.crit.Unlock()
	return dsk.save()
}

func (dsk *Disk) save() error {
	data, err := readFile(dsk.path)
	if err != nil {
		data = make(map[string]any)
	}

	for key, p := range dsk.entries {
		data[key] = p.Get()
	}

	b, err := toml.Marshal(nest(data))
	if err != nil {
		return fmt.Errorf("prefs: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(dsk.path), 0o700); err != nil {
		return fmt.Errorf("prefs: %w", err)
	}

	var f bytes.Buffer
	f.WriteString(WarningBoilerPlate)
	f.WriteString("\n")
	f.Write(b)

	if err := os.WriteFile(dsk.path, f.Bytes(), 0o600); err != nil {
		return fmt.Errorf("prefs: %w", err)
	}

	return nil
}

// String returns the current values of all entries, one per line, sorted by
// key.
func (dsk *Disk) String() string {
	dsk.crit.Lock()
	defer dsk.crit.Unlock()

	keys := make([]string, 0, len(dsk.entries))
	for k := range dsk.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	s := strings.Builder{}
	for _, k := range keys {
		s.WriteString(fmt.Sprintf("%s :: %s\n", k, dsk.entries[k].String()))
	}
	return s.String()
}

// readFile returns the flattened contents of the TOML file. A missing file
// results in an empty map and no error.
func readFile(path string) (map[string]any, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return make(map[string]any), nil
		}
		return nil, fmt.Errorf("prefs: %w", err)
	}

	var loaded map[string]any
	if err := toml.Unmarshal(b, &loaded); err != nil {
		return nil, fmt.Errorf("prefs: %w", err)
	}

	return flatten(loaded, ""), nil
}

// flatten nested tables into dotted keys.
func flatten(m map[string]any, prefix string) map[string]any {
	result := make(map[string]any)
	for key, value := range m {
		if prefix != "" {
			key = prefix + "." + key
		}
		if nested, ok := value.(map[string]any); ok {
			for k, v := range flatten(nested, key) {
				result[k] = v
			}
		} else {
			result[key] = value
		}
	}
	return result
}

// nest is the inverse of flatten. a key that is both a value and a table
// prefix keeps the value.
func nest(m map[string]any) map[string]any {
	result := make(map[string]any)
	for key, value := range m {
		parts := strings.Split(key, ".")
		t := result
		for _, p := range parts[:len(parts)-1] {
			n, ok := t[p].(map[string]any)
			if !ok {
				if _, exists := t[p]; exists {
					t = nil
					break
				}
				n = make(map[string]any)
				t[p] = n
			}
			t = n
		}
		if t != nil {
			t[parts[len(parts)-1]] = value
		}
	}
	return result
}
