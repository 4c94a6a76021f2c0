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

// mbc2 supports up to 256KB of ROM and has 512 half-bytes of RAM built in.
// Writes to 0000-3fff select the RAM enable register when address bit 8 is
// clear and the ROM bank register when it is set.
type mbc2 struct {
	rom rom

	// only the lower nibble of each entry is used
	ram        [512]uint8
	ramEnabled bool

	bank uint8
}

func newMBC2(rom rom) *mbc2 {
	cart := &mbc2{rom: rom}
	cart.reset()
	return cart
}

func (cart *mbc2) String() string {
	return fmt.Sprintf("%s: %d banks [ROMX=%d]", cart.id(), cart.rom.banks, cart.rom.bank(int(cart.bank)))
}

func (cart *mbc2) id() string {
	return "MBC2"
}

func (cart *mbc2) reset() {
	cart.bank = 1
	cart.ramEnabled = false
}

func (cart *mbc2) mappedBanks() (int, int, int) {
	return 0, cart.rom.bank(int(cart.bank)), 0
}

func (cart *mbc2) read(address uint16) uint8 {
	switch {
	case address < romBankSize:
		return cart.rom.read(0, address)
	case isROM(address):
		return cart.rom.read(int(cart.bank), address)
	case isRAM(address):
		if !cart.ramEnabled {
			return 0xff
		}
		return 0xf0 | cart.ram[address&0x01ff]
	}
	return 0xff
}

func (cart *mbc2) write(address uint16, data uint8) {
	switch {
	case address < romBankSize:
		if address&0x0100 == 0x0100 {
			cart.bank = data & 0x0f
			if cart.bank == 0 {
				cart.bank = 1
			}
		} else {
			cart.ramEnabled = data&0x0f == 0x0a
		}
	case isRAM(address):
		if cart.ramEnabled {
			cart.ram[address&0x01ff] = data & 0x0f
		}
	}
}
