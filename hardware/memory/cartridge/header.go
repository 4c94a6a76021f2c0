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
	"strings"
	"unicode/utf8"

	"github.com/jetsetilly/gopherboy/curated"
)

// Sentinal error patterns.
const (
	HeaderTooShort   = "cartridge: data too short for header (%d bytes)"
	ChecksumFailure  = "cartridge: boot check failed: %v"
	InvalidTitle     = "cartridge: title is not valid UTF-8"
	InvalidMapper    = "cartridge: invalid cartridge type (%#02x)"
	InvalidBankCount = "cartridge: invalid ROM bank count (%#02x)"
	InvalidRAMSize   = "cartridge: invalid RAM size (%#02x)"
)

// Locations of the fields in the cartridge header.
const (
	headerEntry          = 0x0100
	headerLogo           = 0x0104
	headerLogoEnd        = 0x0133
	headerTitle          = 0x0134
	headerTitleEnd       = 0x0143
	headerType           = 0x0147
	headerROMSize        = 0x0148
	headerRAMSize        = 0x0149
	headerRegion         = 0x014a
	headerChecksum       = 0x014d
	headerGlobalChecksum = 0x014e

	// HeaderSize is the smallest amount of data that contains a complete
	// header.
	HeaderSize = 0x0150
)

// Logo is the bitmap that the boot ROM compares with the contents of the
// cartridge header.
var Logo = [48]uint8{
	0xce, 0xed, 0x66, 0x66, 0xcc, 0x0d, 0x00, 0x0b, 0x03, 0x73, 0x00, 0x83, 0x00, 0x0c, 0x00, 0x0d,
	0x00, 0x08, 0x11, 0x1f, 0x88, 0x89, 0x00, 0x0e, 0xdc, 0xcc, 0x6e, 0xe6, 0xdd, 0xdd, 0xd9, 0x99,
	0xbb, 0xbb, 0x67, 0x63, 0x6e, 0x0e, 0xec, 0xcc, 0xdd, 0xdc, 0x99, 0x9f, 0xbb, 0xb9, 0x33, 0x3e,
}

// UnknownTitle is used when the header is not validated.
const UnknownTitle = "UNKNOWN"

// Header contains the information parsed from the cartridge header.
type Header struct {
	Title    string
	Type     Type
	ROMBanks int

	// size of cartridge RAM in kilobytes
	RAMSize int

	Japanese bool

	Checksum       uint8
	GlobalChecksum uint16
}

// Region returns the destination code as a string.
func (hdr Header) Region() string {
	if hdr.Japanese {
		return "Japanese"
	}
	return "Non-Japanese"
}

func (hdr Header) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("%s [%s]", hdr.Title, hdr.Type))
	s.WriteString(fmt.Sprintf(" %d banks", hdr.ROMBanks))
	if hdr.RAMSize > 0 {
		s.WriteString(fmt.Sprintf(" %dKB RAM", hdr.RAMSize))
	}
	s.WriteString(fmt.Sprintf(" (%s)", hdr.Region()))
	return s.String()
}

// HeaderChecksum calculates the checksum of the header in the same way as
// the boot ROM. The data must be at least HeaderSize bytes long.
func HeaderChecksum(data []uint8) uint8 {
	var x uint8
	for _, b := range data[headerTitle:headerChecksum] {
		x = x - b - 1
	}
	return x
}

// ParseHeader extracts the header information from the cartridge data. If
// bootCheck is true the logo and header checksum are validated and the title
// is parsed.
func ParseHeader(data []uint8, bootCheck bool) (Header, error) {
	var hdr Header

	if len(data) < HeaderSize {
		return hdr, curated.Errorf(HeaderTooShort, len(data))
	}

	if bootCheck {
		for i, b := range data[headerLogo : headerLogoEnd+1] {
			if b != Logo[i] {
				return hdr, curated.Errorf(ChecksumFailure, fmt.Sprintf("logo mismatch at %#04x", headerLogo+i))
			}
		}

		if c := HeaderChecksum(data); c != data[headerChecksum] {
			return hdr, curated.Errorf(ChecksumFailure, fmt.Sprintf("header checksum is %#02x but should be %#02x", data[headerChecksum], c))
		}

		title := data[headerTitle : headerTitleEnd+1]
		if !utf8.Valid(title) {
			return hdr, curated.Errorf(InvalidTitle)
		}
		hdr.Title = strings.TrimRight(string(title), "\x00")
	} else {
		hdr.Title = UnknownTitle
	}

	hdr.Type = Type(data[headerType])
	if !hdr.Type.IsValid() {
		return hdr, curated.Errorf(InvalidMapper, data[headerType])
	}

	switch n := data[headerROMSize]; {
	case n <= 8:
		hdr.ROMBanks = 2 << n
	case n == 0x52:
		hdr.ROMBanks = 72
	case n == 0x53:
		hdr.ROMBanks = 80
	case n == 0x54:
		hdr.ROMBanks = 96
	default:
		return hdr, curated.Errorf(InvalidBankCount, n)
	}

	switch n := data[headerRAMSize]; n {
	case 0:
		hdr.RAMSize = 0
	case 1:
		hdr.RAMSize = 2
	case 2:
		hdr.RAMSize = 8
	case 3:
		hdr.RAMSize = 32
	case 4:
		hdr.RAMSize = 128
	case 5:
		hdr.RAMSize = 64
	default:
		return hdr, curated.Errorf(InvalidRAMSize, n)
	}

	hdr.Japanese = data[headerRegion] == 0
	hdr.Checksum = data[headerChecksum]
	hdr.GlobalChecksum = uint16(data[headerGlobalChecksum])<<8 | uint16(data[headerGlobalChecksum+1])

	return hdr, nil
}
