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

// the real-time clock registers of the MBC3.
const (
	rtcSeconds = iota
	rtcMinutes
	rtcHours
	rtcDayLow
	rtcDayHigh
	numRTCRegisters
)

// mbc3 supports up to 2MB of ROM, 32KB of RAM and a real-time clock.
//
//	0000-1fff	RAM and RTC enable
//	2000-3fff	seven bit ROM bank (zero is treated as one)
//	4000-5fff	RAM bank (00-03) or RTC register (08-0c)
//	6000-7fff	latch clock data (write 00 then 01)
//
// The clock does not advance. The RTC registers hold the values written to
// them and the latched values are copied from them when the latch sequence is
// written.
type mbc3 struct {
	rom rom
	ram ram

	bank     uint8
	selected uint8

	rtc     [numRTCRegisters]uint8
	latched [numRTCRegisters]uint8
	latch   uint8
}

func newMBC3(rom rom, ram ram) *mbc3 {
	cart := &mbc3{rom: rom, ram: ram}
	cart.reset()
	return cart
}

func (cart *mbc3) String() string {
	_, romx, ram := cart.mappedBanks()
	return fmt.Sprintf("%s: %d banks [ROMX=%d RAM=%d]", cart.id(), cart.rom.banks, romx, ram)
}

func (cart *mbc3) id() string {
	return "MBC3"
}

func (cart *mbc3) reset() {
	cart.bank = 1
	cart.selected = 0
	cart.latch = 0xff
	cart.ram.enabled = false
}

func (cart *mbc3) mappedBanks() (int, int, int) {
	ram := 0
	if cart.selected <= 0x03 && cart.ram.banks() > 0 {
		ram = int(cart.selected) % cart.ram.banks()
	}
	return 0, cart.rom.bank(int(cart.bank)), ram
}

// rtcRegister returns the index of the selected RTC register or false if a
// RAM bank is selected.
func (cart *mbc3) rtcRegister() (int, bool) {
	if cart.selected >= 0x08 && cart.selected <= 0x0c {
		return int(cart.selected - 0x08), true
	}
	return 0, false
}

func (cart *mbc3) read(address uint16) uint8 {
	_, romx, ram := cart.mappedBanks()
	switch {
	case address < romBankSize:
		return cart.rom.read(0, address)
	case isROM(address):
		return cart.rom.read(romx, address)
	case isRAM(address):
		if r, ok := cart.rtcRegister(); ok {
			if !cart.ram.enabled {
				return 0xff
			}
			return cart.latched[r]
		}
		if cart.selected > 0x03 {
			return 0xff
		}
		return cart.ram.read(ram, address)
	}
	return 0xff
}

func (cart *mbc3) write(address uint16, data uint8) {
	switch {
	case address <= 0x1fff:
		cart.ram.enable(data)
	case address <= 0x3fff:
		cart.bank = data & 0x7f
		if cart.bank == 0 {
			cart.bank = 1
		}
	case address <= 0x5fff:
		cart.selected = data
	case address <= 0x7fff:
		if cart.latch == 0x00 && data == 0x01 {
			cart.latched = cart.rtc
		}
		cart.latch = data
	case isRAM(address):
		if r, ok := cart.rtcRegister(); ok {
			if cart.ram.enabled {
				cart.rtc[r] = data
			}
			return
		}
		if cart.selected <= 0x03 {
			_, _, ram := cart.mappedBanks()
			cart.ram.write(ram, address, data)
		}
	}
}
