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

package cartridge

import "fmt"

// romOnly cartridges have 32KB of ROM and optionally up to 8KB of RAM. There
// is no bank switching.
type romOnly struct {
	rom rom
	ram ram
}

func newROMOnly(rom rom, ram ram) *romOnly {
	cart := &romOnly{rom: rom, ram: ram}
	cart.ram.enabled = true
	return cart
}

func (cart *romOnly) String() string {
	return fmt.Sprintf("%s: %d banks", cart.id(), cart.rom.banks)
}

func (cart *romOnly) id() string {
	return "ROM"
}

func (cart *romOnly) read(address uint16) uint8 {
	if isROM(address) {
		return cart.rom.read(int(address/romBankSize), address)
	}
	if isRAM(address) {
		return cart.ram.read(0, address)
	}
	return 0xff
}

func (cart *romOnly) write(address uint16, data uint8) {
	if isRAM(address) {
		cart.ram.write(0, address, data)
	}
}

func (cart *romOnly) reset() {}

func (cart *romOnly) mappedBanks() (int, int, int) {
	return 0, 1, 0
}
