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

// mbc5 supports up to 8MB of ROM and 128KB of RAM. Unlike the other mappers,
// ROM bank zero can be mapped into the ROMX area.
//
//	0000-1fff	RAM enable
//	2000-2fff	lower eight bits of the ROM bank
//	3000-3fff	ninth bit of the ROM bank
//	4000-5fff	RAM bank (00-0f)
type mbc5 struct {
	rom rom
	ram ram

	bank    uint16
	ramBank uint8
}

func newMBC5(rom rom, ram ram) *mbc5 {
	cart := &mbc5{rom: rom, ram: ram}
	cart.reset()
	return cart
}

func (cart *mbc5) String() string {
	_, romx, ram := cart.mappedBanks()
	return fmt.Sprintf("%s: %d banks [ROMX=%d RAM=%d]", cart.id(), cart.rom.banks, romx, ram)
}

func (cart *mbc5) id() string {
	return "MBC5"
}

func (cart *mbc5) reset() {
	cart.bank = 1
	cart.ramBank = 0
	cart.ram.enabled = false
}

func (cart *mbc5) mappedBanks() (int, int, int) {
	ram := 0
	if cart.ram.banks() > 0 {
		ram = int(cart.ramBank) % cart.ram.banks()
	}
	return 0, cart.rom.bank(int(cart.bank)), ram
}

func (cart *mbc5) read(address uint16) uint8 {
	_, romx, ram := cart.mappedBanks()
	switch {
	case address < romBankSize:
		return cart.rom.read(0, address)
	case isROM(address):
		return cart.rom.read(romx, address)
	case isRAM(address):
		return cart.ram.read(ram, address)
	}
	return 0xff
}

func (cart *mbc5) write(address uint16, data uint8) {
	switch {
	case address <= 0x1fff:
		cart.ram.enable(data)
	case address <= 0x2fff:
		cart.bank = cart.bank&0x100 | uint16(data)
	case address <= 0x3fff:
		cart.bank = cart.bank&0x0ff | uint16(data&0x01)<<8
	case address <= 0x5fff:
		cart.ramBank = data & 0x0f
	case isRAM(address):
		_, _, ram := cart.mappedBanks()
		cart.ram.write(ram, address, data)
	}
}
