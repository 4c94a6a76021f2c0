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

// Package memorymap facilitates the translation of addresses to primary
// address equivalents. It also categorises addresses into the different areas
// of the Game Boy memory map.
//
// The only mirrored area of the DMG memory map is the echo of work RAM at
// E000-FDFF. MapAddress() translates echo addresses to the work RAM
// equivalent but still reports the Echo area so that callers can make
// distinctions if required.
package memorymap
