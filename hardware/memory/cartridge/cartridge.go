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

	"github.com/jetsetilly/gopherboy/cartridgeloader"
	"github.com/jetsetilly/gopherboy/curated"
	"github.com/jetsetilly/gopherboy/logger"
)

const ejectedName = "ejected"

// Cartridge defines the information and operations for a Game Boy cartridge.
type Cartridge struct {
	Filename string
	Hash     string
	Header   Header

	// the cartridge data as loaded. the mapper keeps its own copy
	data []uint8

	mapper cartMapper
}

// NewCartridge is the preferred method of initialisation for the Cartridge
// type.
func NewCartridge() *Cartridge {
	cart := &Cartridge{}
	cart.Eject()
	return cart
}

func (cart *Cartridge) String() string {
	return cart.Summary()
}

// Summary returns brief information about the cartridge. Two lines: the
// first is the filename and the second is the mapper, including bank
// information.
func (cart *Cartridge) Summary() string {
	return fmt.Sprintf("%s\n%s", cart.Filename, cart.mapper)
}

// ID returns the short identifier of the mapper.
func (cart *Cartridge) ID() string {
	return cart.mapper.id()
}

// MappedBanks returns the banks currently mapped into the ROM0, ROMX and
// cartridge RAM areas.
func (cart *Cartridge) MappedBanks() (int, int, int) {
	return cart.mapper.mappedBanks()
}

// Eject removes the cartridge. Reads of cartridge space return 0xff.
func (cart *Cartridge) Eject() {
	cart.Filename = ejectedName
	cart.Hash = ""
	cart.Header = Header{}
	cart.data = nil
	cart.mapper = ejected{}
}

// IsEjected returns true if no cartridge is attached.
func (cart *Cartridge) IsEjected() bool {
	_, ok := cart.mapper.(ejected)
	return ok
}

// Attach the cartridge data from the loader. The header is parsed and the
// mapper selected from the cartridge type. On error the cartridge is left
// ejected.
func (cart *Cartridge) Attach(cartload cartridgeloader.Loader, bootCheck bool) error {
	cart.Eject()

	err := cartload.Load()
	if err != nil {
		return curated.Errorf("cartridge: %v", err)
	}

	hdr, err := ParseHeader(cartload.Data, bootCheck)
	if err != nil {
		return err
	}

	mapper, err := newMapper(hdr, cartload.Data)
	if err != nil {
		return err
	}

	cart.Filename = cartload.Filename
	cart.Hash = cartload.Hash
	cart.Header = hdr
	cart.data = cartload.Data
	cart.mapper = mapper

	logger.Logf(logger.Allow, "cartridge", "attached %s (%s)", cartload.ShortName(), mapper)

	if len(cart.data) != hdr.ROMBanks*romBankSize {
		logger.Logf(logger.Allow, "cartridge", "header specifies %d banks but data is %d bytes", hdr.ROMBanks, len(cart.data))
	}

	return nil
}

// Reset volatile areas of the cartridge. The contents of cartridge RAM are
// preserved.
func (cart *Cartridge) Reset() {
	cart.mapper.reset()
}

// Read is an implementation of the cartridge part of the memory bus. The
// address should be in the ROM area (0x0000 to 0x7fff) or the cartridge RAM
// area (0xa000 to 0xbfff).
func (cart *Cartridge) Read(address uint16) uint8 {
	return cart.mapper.read(address)
}

// Write is an implementation of the cartridge part of the memory bus. Writes
// to the ROM area change the mapper registers.
func (cart *Cartridge) Write(address uint16, data uint8) {
	cart.mapper.write(address, data)
}

// NumBanks returns the number of 16KB banks in the cartridge data.
func (cart *Cartridge) NumBanks() int {
	if cart.IsEjected() {
		return 0
	}
	return (len(cart.data) + romBankSize - 1) / romBankSize
}

// Bank returns a copy of the data in the numbered bank. The returned slice
// is always 16KB long. Data that is missing at the end of the cartridge is
// returned as 0xff.
func (cart *Cartridge) Bank(bank int) []uint8 {
	b := make([]uint8, romBankSize)
	for i := range b {
		b[i] = 0xff
	}

	start := bank * romBankSize
	if bank < 0 || start >= len(cart.data) {
		return b
	}
	copy(b, cart.data[start:])

	return b
}
