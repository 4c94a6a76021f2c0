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

// Package cartridge parses the header of a Game Boy cartridge and maps the
// cartridge data into the memory space of the console.
//
// The header is found at 0x0100 to 0x014f of the cartridge data. The
// ParseHeader() function extracts the title, the cartridge type, the number
// of ROM banks and the size of the cartridge RAM. When the boot check is
// enabled the Nintendo logo and the header checksum are validated in the same
// way as the DMG boot ROM.
//
// The cartridge type selects the mapper (or memory bank controller). The
// following mappers are supported:
//
//	ROM ONLY (with or without RAM)
//	MBC1
//	MBC2
//	MBC3 (the real-time clock registers do not advance)
//	MBC5
//
// Other known cartridge types are recognised by the header parser but can not
// be attached.
package cartridge
