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

import (
	"fmt"

	"github.com/jetsetilly/gopherboy/curated"
	"github.com/jetsetilly/gopherboy/hardware/memory/memorymap"
)

// UnsupportedMapper is returned when the cartridge type is valid but there
// is no mapper implementation for it.
const UnsupportedMapper = "cartridge: unsupported mapper (%s)"

// cartMapper implementations hold the actual data from the loaded ROM and
// keep track of which banks are mapped. the address arguments are not
// normalised. the ROM area is 0x0000 to 0x7fff and the RAM area is 0xa000
// to 0xbfff.
type cartMapper interface {
	fmt.Stringer
	id() string
	read(address uint16) uint8
	write(address uint16, data uint8)
	reset()

	// the banks currently mapped into the ROM0, ROMX and RAM areas
	mappedBanks() (int, int, int)
}

// newMapper creates the mapper for the cartridge type.
func newMapper(hdr Header, data []uint8) (cartMapper, error) {
	rom := newROM(data)
	ram := newRAM(hdr.RAMSize * 1024)

	switch types[hdr.Type].ctrl {
	case ctrlNone:
		return newROMOnly(rom, ram), nil
	case ctrlMBC1:
		return newMBC1(rom, ram), nil
	case ctrlMBC2:
		return newMBC2(rom), nil
	case ctrlMBC3:
		return newMBC3(rom, ram), nil
	case ctrlMBC5:
		return newMBC5(rom, ram), nil
	}

	return nil, curated.Errorf(UnsupportedMapper, hdr.Type)
}

const (
	romBankSize = 0x4000
	ramBankSize = 0x2000
)

// rom is the cartridge data divided into 16KB banks. bank numbers are masked
// to the number of banks actually present.
type rom struct {
	data  []uint8
	banks int
}

func newROM(data []uint8) rom {
	n := (len(data) + romBankSize - 1) / romBankSize
	if n < 2 {
		n = 2
	}

	// pad the data to a whole number of banks
	d := make([]uint8, n*romBankSize)
	for i := len(data); i < len(d); i++ {
		d[i] = 0xff
	}
	copy(d, data)

	return rom{data: d, banks: n}
}

func (r rom) bank(b int) int {
	return b % r.banks
}

func (r rom) read(bank int, address uint16) uint8 {
	return r.data[r.bank(bank)*romBankSize+int(address&(romBankSize-1))]
}

// ram is the external cartridge RAM divided into 8KB banks. RAM that is
// smaller than one bank is mirrored.
type ram struct {
	data    []uint8
	enabled bool
}

func newRAM(size int) ram {
	return ram{data: make([]uint8, size)}
}

func (r ram) banks() int {
	return (len(r.data) + ramBankSize - 1) / ramBankSize
}

func (r ram) offset(bank int, address uint16) int {
	return (bank*ramBankSize + int(address-memorymap.OriginExternalRAM)) % len(r.data)
}

func (r ram) read(bank int, address uint16) uint8 {
	if !r.enabled || len(r.data) == 0 {
		return 0xff
	}
	return r.data[r.offset(bank, address)]
}

func (r *ram) write(bank int, address uint16, data uint8) {
	if !r.enabled || len(r.data) == 0 {
		return
	}
	r.data[r.offset(bank, address)] = data
}

// enable follows the convention of most mappers: the value 0x0a in the lower
// nibble enables the RAM.
func (r *ram) enable(data uint8) {
	r.enabled = data&0x0f == 0x0a
}

func isROM(address uint16) bool {
	return address <= memorymap.MemtopROMX
}

func isRAM(address uint16) bool {
	return address >= memorymap.OriginExternalRAM && address <= memorymap.MemtopExternalRAM
}

// ejected is the mapper used when no cartridge is attached.
type ejected struct{}

func (ejected) String() string {
	return "ejected"
}

func (ejected) id() string {
	return "-"
}

func (ejected) read(uint16) uint8 {
	return 0xff
}

func (ejected) write(uint16, uint8) {}

func (ejected) reset() {}

func (ejected) mappedBanks() (int, int, int) {
	return 0, 0, 0
}
