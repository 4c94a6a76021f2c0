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

// mbc1 supports up to 2MB of ROM and 32KB of RAM.
//
//	0000-1fff	RAM enable
//	2000-3fff	lower five bits of the ROM bank (zero is treated as one)
//	4000-5fff	secondary two bit register
//	6000-7fff	banking mode
//
// In banking mode 0 the secondary register selects the upper bits of the
// ROMX bank. In banking mode 1 it also selects the RAM bank and the upper
// bits of the ROM0 bank.
type mbc1 struct {
	rom rom
	ram ram

	bank      uint8
	secondary uint8
	mode      uint8
}

func newMBC1(rom rom, ram ram) *mbc1 {
	cart := &mbc1{rom: rom, ram: ram}
	cart.reset()
	return cart
}

func (cart *mbc1) String() string {
	rom0, romx, ram := cart.mappedBanks()
	return fmt.Sprintf("%s: %d banks [ROM0=%d ROMX=%d RAM=%d]", cart.id(), cart.rom.banks, rom0, romx, ram)
}

func (cart *mbc1) id() string {
	return "MBC1"
}

func (cart *mbc1) reset() {
	cart.bank = 1
	cart.secondary = 0
	cart.mode = 0
	cart.ram.enabled = false
}

func (cart *mbc1) mappedBanks() (int, int, int) {
	rom0 := 0
	ram := 0
	if cart.mode == 1 {
		rom0 = cart.rom.bank(int(cart.secondary) << 5)
		if cart.ram.banks() > 0 {
			ram = int(cart.secondary) % cart.ram.banks()
		}
	}
	romx := cart.rom.bank(int(cart.secondary)<<5 | int(cart.bank))
	return rom0, romx, ram
}

func (cart *mbc1) read(address uint16) uint8 {
	rom0, romx, ram := cart.mappedBanks()
	switch {
	case address < romBankSize:
		return cart.rom.read(rom0, address)
	case isROM(address):
		return cart.rom.read(romx, address)
	case isRAM(address):
		return cart.ram.read(ram, address)
	}
	return 0xff
}

func (cart *mbc1) write(address uint16, data uint8) {
	switch {
	case address <= 0x1fff:
		cart.ram.enable(data)
	case address <= 0x3fff:
		cart.bank = data & 0x1f
		if cart.bank == 0 {
			cart.bank = 1
		}
	case address <= 0x5fff:
		cart.secondary = data & 0x03
	case address <= 0x7fff:
		cart.mode = data & 0x01
	case isRAM(address):
		_, _, ram := cart.mappedBanks()
		cart.ram.write(ram, address, data)
	}
}
