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

package cartridge_test

import (
	"testing"

	"github.com/jetsetilly/gopherboy/curated"
	"github.com/jetsetilly/gopherboy/hardware/memory/cartridge"
	"github.com/jetsetilly/gopherboy/test"
)

// makeCartridge creates cartridge data with a valid header. The first byte
// of every bank is the bank number.
func makeCartridge(ctype uint8, romSize uint8, ramSize uint8) []uint8 {
	banks := 2 << romSize
	data := make([]uint8, banks*0x4000)
	for b := 0; b < banks; b++ {
		data[b*0x4000] = uint8(b)
		data[b*0x4000+0x2000] = uint8(b >> 8)
	}

	copy(data[0x0104:], cartridge.Logo[:])
	copy(data[0x0134:], "TESTCART")
	data[0x0147] = ctype
	data[0x0148] = romSize
	data[0x0149] = ramSize
	data[0x014a] = 0x01
	data[0x014d] = cartridge.HeaderChecksum(data)
	data[0x014e] = 0x12
	data[0x014f] = 0x34

	return data
}

func TestHeader(t *testing.T) {
	data := makeCartridge(0x03, 0x02, 0x03)

	hdr, err := cartridge.ParseHeader(data, true)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, hdr.Title, "TESTCART")
	test.ExpectEquality(t, hdr.Type.String(), "MBC1+RAM+BATTERY")
	test.ExpectSuccess(t, hdr.Type.HasRAM())
	test.ExpectSuccess(t, hdr.Type.HasBattery())
	test.ExpectFailure(t, hdr.Type.HasTimer())
	test.ExpectEquality(t, hdr.ROMBanks, 8)
	test.ExpectEquality(t, hdr.RAMSize, 32)
	test.ExpectEquality(t, hdr.Region(), "Non-Japanese")
	test.ExpectEquality(t, hdr.GlobalChecksum, 0x1234)

	data[0x014a] = 0x00
	data[0x014d] = cartridge.HeaderChecksum(data)
	hdr, err = cartridge.ParseHeader(data, true)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, hdr.Japanese)
}

func TestHeaderTooShort(t *testing.T) {
	_, err := cartridge.ParseHeader(make([]uint8, 0x14f), false)
	test.ExpectSuccess(t, curated.Is(err, cartridge.HeaderTooShort))
}

func TestBootCheck(t *testing.T) {
	data := makeCartridge(0x00, 0x00, 0x00)

	// corrupt logo
	data[0x0110] ^= 0xff
	_, err := cartridge.ParseHeader(data, true)
	test.ExpectSuccess(t, curated.Is(err, cartridge.ChecksumFailure))

	// without the boot check the logo is ignored and the title is unknown
	hdr, err := cartridge.ParseHeader(data, false)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, hdr.Title, cartridge.UnknownTitle)

	// bad header checksum
	data = makeCartridge(0x00, 0x00, 0x00)
	data[0x014d]++
	_, err = cartridge.ParseHeader(data, true)
	test.ExpectSuccess(t, curated.Is(err, cartridge.ChecksumFailure))
}

func TestInvalidTitle(t *testing.T) {
	data := makeCartridge(0x00, 0x00, 0x00)
	data[0x0134] = 0xff
	data[0x014d] = cartridge.HeaderChecksum(data)
	_, err := cartridge.ParseHeader(data, true)
	test.ExpectSuccess(t, curated.Is(err, cartridge.InvalidTitle))
}

func TestHeaderFields(t *testing.T) {
	data := makeCartridge(0x00, 0x00, 0x00)

	data[0x0147] = 0x04
	_, err := cartridge.ParseHeader(data, false)
	test.ExpectSuccess(t, curated.Is(err, cartridge.InvalidMapper))
	data[0x0147] = 0x00

	banks := map[uint8]int{0x00: 2, 0x01: 4, 0x05: 64, 0x08: 512, 0x52: 72, 0x53: 80, 0x54: 96}
	for n, b := range banks {
		data[0x0148] = n
		hdr, err := cartridge.ParseHeader(data, false)
		test.ExpectSuccess(t, err, n)
		test.ExpectEquality(t, hdr.ROMBanks, b, n)
	}
	data[0x0148] = 0x09
	_, err = cartridge.ParseHeader(data, false)
	test.ExpectSuccess(t, curated.Is(err, cartridge.InvalidBankCount))
	data[0x0148] = 0x00

	ram := map[uint8]int{0: 0, 1: 2, 2: 8, 3: 32, 4: 128, 5: 64}
	for n, k := range ram {
		data[0x0149] = n
		hdr, err := cartridge.ParseHeader(data, false)
		test.ExpectSuccess(t, err, n)
		test.ExpectEquality(t, hdr.RAMSize, k, n)
	}
	data[0x0149] = 0x06
	_, err = cartridge.ParseHeader(data, false)
	test.ExpectSuccess(t, curated.Is(err, cartridge.InvalidRAMSize))
}

func TestTypes(t *testing.T) {
	test.ExpectSuccess(t, cartridge.Type(0x00).IsSupported())
	test.ExpectSuccess(t, cartridge.Type(0x13).IsSupported())
	test.ExpectSuccess(t, cartridge.Type(0x10).HasTimer())
	test.ExpectSuccess(t, cartridge.Type(0x1c).HasRumble())
	test.ExpectFailure(t, cartridge.Type(0x0b).IsSupported())
	test.ExpectFailure(t, cartridge.Type(0xfc).IsSupported())
	test.ExpectFailure(t, cartridge.Type(0x04).IsValid())
	test.ExpectEquality(t, cartridge.Type(0xfe).String(), "HuC3")
}
