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

package addresses

// Memory mapped registers.
const (
	P1   = uint16(0xff00)
	SB   = uint16(0xff01)
	SC   = uint16(0xff02)
	DIV  = uint16(0xff04)
	TIMA = uint16(0xff05)
	TMA  = uint16(0xff06)
	TAC  = uint16(0xff07)
	IF   = uint16(0xff0f)
	LCDC = uint16(0xff40)
	STAT = uint16(0xff41)
	SCY  = uint16(0xff42)
	SCX  = uint16(0xff43)
	LY   = uint16(0xff44)
	LYC  = uint16(0xff45)
	DMA  = uint16(0xff46)
	BGP  = uint16(0xff47)
	OBP0 = uint16(0xff48)
	OBP1 = uint16(0xff49)
	WY   = uint16(0xff4a)
	WX   = uint16(0xff4b)
	IE   = uint16(0xffff)
)

// Canonical lists the memory mapped registers along with their canonical
// names. Sound registers are listed even though sound is not emulated
// because they are commonly referenced by programs.
var Canonical = map[uint16]string{
	P1:     "P1",
	SB:     "SB",
	SC:     "SC",
	DIV:    "DIV",
	TIMA:   "TIMA",
	TMA:    "TMA",
	TAC:    "TAC",
	IF:     "IF",
	0xff10: "NR10",
	0xff11: "NR11",
	0xff12: "NR12",
	0xff13: "NR13",
	0xff14: "NR14",
	0xff16: "NR21",
	0xff17: "NR22",
	0xff18: "NR23",
	0xff19: "NR24",
	0xff1a: "NR30",
	0xff1b: "NR31",
	0xff1c: "NR32",
	0xff1d: "NR33",
	0xff1e: "NR34",
	0xff20: "NR41",
	0xff21: "NR42",
	0xff22: "NR43",
	0xff23: "NR44",
	0xff24: "NR50",
	0xff25: "NR51",
	0xff26: "NR52",
	LCDC:   "LCDC",
	STAT:   "STAT",
	SCY:    "SCY",
	SCX:    "SCX",
	LY:     "LY",
	LYC:    "LYC",
	DMA:    "DMA",
	BGP:    "BGP",
	OBP0:   "OBP0",
	OBP1:   "OBP1",
	WY:     "WY",
	WX:     "WX",
	IE:     "IE",
}

// Symbol returns the canonical name for the address or the empty string if
// the address is not a memory mapped register.
func Symbol(address uint16) string {
	return Canonical[address]
}
