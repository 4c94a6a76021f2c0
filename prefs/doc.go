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

// Package prefs facilitates the storage of preferential values in the
// Gopherboy system. It is a layer above the hardware and should be used
// whenever a value can be changed by the user and that value should persist
// between sessions.
//
// Values are stored with the types Bool, Int, Float and String. The Generic
// type allows an arbitrary value to be stored so long as it can be
// represented by a string.
//
// Values are associated with a key in a Disk instance. Keys are dotted paths
// and are stored in the TOML file as nested tables. For example, the key
// "hardware.bootcheck" is stored as:
//
//	[hardware]
//	bootcheck = true
//
// Multiple Disk instances can share the same file. When a Disk is saved, the
// entries in the file not belonging to the Disk are preserved.
//
// The command line stack allows preferences to be overridden for the duration
// of a single session. Overridden values are applied when the value is added
// to the Disk instance. See PushCommandLineStack().
package prefs
