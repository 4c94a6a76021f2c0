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

package disassembly

import (
	"fmt"

	"github.com/jetsetilly/gopherboy/curated"
	"github.com/jetsetilly/gopherboy/hardware/cpu/instructions"
	"github.com/jetsetilly/gopherboy/hardware/memory/cartridge"
)

// Sentinal error patterns.
const (
	NoCartridge = "disassembly: no cartridge attached"
)

const bankSize = 0x4000

// the header occupies the start of bank zero and is skipped by the linear
// sweep.
const sweepOrigin = 0x0100

// Disassembly is a static disassembly of every ROM bank in a cartridge.
type Disassembly struct {
	Filename string
	Header   cartridge.Header

	// one slice of entries per bank
	Banks [][]Entry
}

// FromCartridge disassembles every bank of the cartridge with a linear
// sweep. Bank zero is addressed from 0x0000 and all other banks from 0x4000,
// which is where they appear when mapped.
//
// Bytes that do not form a valid instruction are listed as data.
func FromCartridge(cart *cartridge.Cartridge) (*Disassembly, error) {
	if cart.IsEjected() {
		return nil, curated.Errorf(NoCartridge)
	}

	defs, err := instructions.GetDefinitions()
	if err != nil {
		return nil, curated.Errorf("disassembly: %v", err)
	}

	dsm := &Disassembly{
		Filename: cart.Filename,
		Header:   cart.Header,
		Banks:    make([][]Entry, cart.NumBanks()),
	}

	for b := range dsm.Banks {
		origin := uint16(bankSize)
		offset := 0
		if b == 0 {
			origin = 0
			offset = sweepOrigin
		}

		data := cart.Bank(b)
		for offset < len(data) {
			e, err := sweep(defs, data, offset, origin)
			if err != nil {
				return nil, curated.Errorf("disassembly: bank %d: %v", b, err)
			}
			e.Bank = b
			dsm.Banks[b] = append(dsm.Banks[b], e)
			offset += len(e.Bytecode)
		}
	}

	return dsm, nil
}

// decode the instruction at offset in data. the origin is the address that
// offset zero appears at.
func sweep(defs *instructions.Table, data []uint8, offset int, origin uint16) (Entry, error) {
	address := origin + uint16(offset)
	opcode := data[offset]

	var defn *instructions.Definition
	var operand [2]uint8

	if opcode == 0xcb {
		if offset+1 >= len(data) {
			return dataByte(address, opcode), nil
		}
		defn = defs.Lookup(data[offset+1], true)
	} else {
		defn = defs.Lookup(opcode, false)
		if defn == nil || offset+defn.Bytes > len(data) {
			return dataByte(address, opcode), nil
		}
		copy(operand[:], data[offset+1:offset+defn.Bytes])
	}

	return Decode(defn, operand, address)
}

// an entry for a byte that is not the start of an instruction.
func dataByte(address uint16, v uint8) Entry {
	return Entry{
		Address:  address,
		Bytecode: []uint8{v},
		Command:  fmt.Sprintf("DB $%02X", v),
	}
}

// NumEntries returns the total number of entries in the disassembly.
func (dsm *Disassembly) NumEntries() int {
	n := 0
	for _, b := range dsm.Banks {
		n += len(b)
	}
	return n
}

// Find the entry in the bank that begins at the address. Returns false if
// there is no entry at the address.
func (dsm *Disassembly) Find(bank int, address uint16) (Entry, bool) {
	if bank < 0 || bank >= len(dsm.Banks) {
		return Entry{}, false
	}
	for _, e := range dsm.Banks[bank] {
		if e.Address == address {
			return e, true
		}
		if e.Address > address {
			break
		}
	}
	return Entry{}, false
}
