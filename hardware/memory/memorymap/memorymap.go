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

package memorymap

import (
	"fmt"
	"strings"
)

// Area represents the different areas of memory.
type Area int

// The different memory areas of the DMG.
const (
	ROM0 Area = iota
	ROMX
	VRAM
	ExternalRAM
	WRAM
	Echo
	OAM
	Unusable
	IO
	HRAM
	IE
)

var areaNames = [...]string{"ROM0", "ROMX", "VRAM", "External RAM", "WRAM", "Echo", "OAM", "Unusable", "IO", "HRAM", "IE"}

func (a Area) String() string {
	if int(a) < len(areaNames) {
		return areaNames[a]
	}
	return "undefined"
}

// The origin and memory top for each area of memory.
const (
	OriginROM0        = uint16(0x0000)
	MemtopROM0        = uint16(0x3fff)
	OriginROMX        = uint16(0x4000)
	MemtopROMX        = uint16(0x7fff)
	OriginVRAM        = uint16(0x8000)
	MemtopVRAM        = uint16(0x9fff)
	OriginExternalRAM = uint16(0xa000)
	MemtopExternalRAM = uint16(0xbfff)
	OriginWRAM        = uint16(0xc000)
	MemtopWRAM        = uint16(0xdfff)
	OriginEcho        = uint16(0xe000)
	MemtopEcho        = uint16(0xfdff)
	OriginOAM         = uint16(0xfe00)
	MemtopOAM         = uint16(0xfe9f)
	OriginUnusable    = uint16(0xfea0)
	MemtopUnusable    = uint16(0xfeff)
	OriginIO          = uint16(0xff00)
	MemtopIO          = uint16(0xff7f)
	OriginHRAM        = uint16(0xff80)
	MemtopHRAM        = uint16(0xfffe)
	AddressIE         = uint16(0xffff)
)

// the top of each area in ascending order. the index of the slice is the Area.
var memtops = [...]uint16{
	MemtopROM0, MemtopROMX, MemtopVRAM, MemtopExternalRAM, MemtopWRAM,
	MemtopEcho, MemtopOAM, MemtopUnusable, MemtopIO, MemtopHRAM, AddressIE,
}

// MapAddress translates the address argument from mirror space to primary
// space and returns the area the address belongs to.
func MapAddress(address uint16) (uint16, Area) {
	for i, top := range memtops {
		if address <= top {
			a := Area(i)
			if a == Echo {
				return address - (OriginEcho - OriginWRAM), Echo
			}
			return address, a
		}
	}

	// unreachable because AddressIE is the top of the 16 bit address space
	return address, IE
}

// Summary returns a single string detailing all the areas of memory.
func Summary() string {
	origin := uint16(0x0000)
	s := strings.Builder{}
	for i, top := range memtops {
		s.WriteString(fmt.Sprintf("%04x -> %04x\t%s\n", origin, top, Area(i)))
		origin = top + 1
	}
	return s.String()
}
