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

package memory

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gopherboy/curated"
	"github.com/jetsetilly/gopherboy/hardware/memory/addresses"
	"github.com/jetsetilly/gopherboy/hardware/memory/cartridge"
	"github.com/jetsetilly/gopherboy/hardware/memory/chipbus"
	"github.com/jetsetilly/gopherboy/hardware/memory/cpubus"
	"github.com/jetsetilly/gopherboy/hardware/memory/memorymap"
)

// Sentinal error patterns.
const (
	DeviceAddress  = "memory: device register %#04x is not in IO space"
	DeviceConflict = "memory: device register %#04x already attached"
)

// DMALength is the number of bytes copied to OAM by a DMA transfer.
const DMALength = 0xa0

// Memory is the memory bus of the DMG.
type Memory struct {
	Cart *cartridge.Cartridge

	VRAM [0x2000]uint8
	WRAM [0x2000]uint8
	OAM  [0xa0]uint8
	HRAM [0x7f]uint8

	// IO registers not handled by a device
	IO [0x80]uint8

	IE uint8
	IF uint8

	// the devices responsible for each IO address. nil if there is no device
	devices [0x80]chipbus.Device

	// the most recent address written to. useful for debugging
	LastWrite uint16
}

// NewMemory is the preferred method of initialisation for the Memory type.
func NewMemory(cart *cartridge.Cartridge) *Memory {
	if cart == nil {
		cart = cartridge.NewCartridge()
	}
	mem := &Memory{Cart: cart}
	mem.Reset()
	return mem
}

func (mem *Memory) String() string {
	s := strings.Builder{}
	s.WriteString(memorymap.Summary())
	s.WriteString(fmt.Sprintf("IE=%02x IF=%02x", mem.IE, mem.IF))
	return s.String()
}

// Reset clears all RAM and IO registers. The cartridge and the devices are
// reset separately.
func (mem *Memory) Reset() {
	clear(mem.VRAM[:])
	clear(mem.WRAM[:])
	clear(mem.OAM[:])
	clear(mem.HRAM[:])
	clear(mem.IO[:])
	mem.IO[addresses.P1-memorymap.OriginIO] = 0x30
	mem.IE = 0
	mem.IF = 0
	mem.LastWrite = 0
}

// AttachDevice connects the device to the IO registers it lists.
func (mem *Memory) AttachDevice(dev chipbus.Device) error {
	for _, r := range dev.Registers() {
		if r < memorymap.OriginIO || r > memorymap.MemtopIO {
			return curated.Errorf(DeviceAddress, r)
		}
		if mem.devices[r-memorymap.OriginIO] != nil {
			return curated.Errorf(DeviceConflict, r)
		}
	}
	for _, r := range dev.Registers() {
		mem.devices[r-memorymap.OriginIO] = dev
	}
	return nil
}

// RequestInterrupt implements the cpubus.InterruptRequester interface.
func (mem *Memory) RequestInterrupt(irq cpubus.Interrupt) {
	mem.IF |= irq.Bit()
}

// Read implements the cpubus.Memory interface.
func (mem *Memory) Read(address uint16) (uint8, error) {
	return mem.Peek(address), nil
}

// Peek returns the value at the address. Reads of memory on the DMG have no
// side effects so Peek() is the same as Read() but without the error value.
func (mem *Memory) Peek(address uint16) uint8 {
	ma, area := memorymap.MapAddress(address)

	switch area {
	case memorymap.ROM0, memorymap.ROMX, memorymap.ExternalRAM:
		return mem.Cart.Read(ma)
	case memorymap.VRAM:
		return mem.VRAM[ma-memorymap.OriginVRAM]
	case memorymap.WRAM, memorymap.Echo:
		return mem.WRAM[ma-memorymap.OriginWRAM]
	case memorymap.OAM:
		return mem.OAM[ma-memorymap.OriginOAM]
	case memorymap.Unusable:
		return 0xff
	case memorymap.IO:
		return mem.readIO(ma)
	case memorymap.HRAM:
		return mem.HRAM[ma-memorymap.OriginHRAM]
	case memorymap.IE:
		return mem.IE
	}

	return 0xff
}

func (mem *Memory) readIO(address uint16) uint8 {
	idx := address - memorymap.OriginIO

	if dev := mem.devices[idx]; dev != nil {
		return dev.ReadRegister(address)
	}

	switch address {
	case addresses.P1:
		// no buttons are ever pressed
		return 0xc0 | mem.IO[idx]&0x30 | 0x0f
	case addresses.IF:
		return 0xe0 | mem.IF
	}

	return mem.IO[idx]
}

// Write implements the cpubus.Memory interface.
func (mem *Memory) Write(address uint16, data uint8) error {
	mem.Poke(address, data)
	return nil
}

// Poke writes the value to the address.
func (mem *Memory) Poke(address uint16, data uint8) {
	mem.LastWrite = address

	ma, area := memorymap.MapAddress(address)

	switch area {
	case memorymap.ROM0, memorymap.ROMX, memorymap.ExternalRAM:
		mem.Cart.Write(ma, data)
	case memorymap.VRAM:
		mem.VRAM[ma-memorymap.OriginVRAM] = data
	case memorymap.WRAM, memorymap.Echo:
		mem.WRAM[ma-memorymap.OriginWRAM] = data
	case memorymap.OAM:
		mem.OAM[ma-memorymap.OriginOAM] = data
	case memorymap.Unusable:
	case memorymap.IO:
		mem.writeIO(ma, data)
	case memorymap.HRAM:
		mem.HRAM[ma-memorymap.OriginHRAM] = data
	case memorymap.IE:
		mem.IE = data
	}
}

func (mem *Memory) writeIO(address uint16, data uint8) {
	idx := address - memorymap.OriginIO

	if dev := mem.devices[idx]; dev != nil {
		dev.WriteRegister(address, data)
		return
	}

	switch address {
	case addresses.P1:
		mem.IO[idx] = data & 0x30
	case addresses.IF:
		mem.IF = data & cpubus.InterruptMask
	case addresses.DMA:
		mem.IO[idx] = data
		mem.dma(data)
	default:
		mem.IO[idx] = data
	}
}

// dma copies DMALength bytes from the page indicated by the value written to
// the DMA register into OAM. The transfer is immediate.
func (mem *Memory) dma(page uint8) {
	src := uint16(page) << 8
	for i := range uint16(DMALength) {
		mem.OAM[i] = mem.Peek(src + i)
	}
}
