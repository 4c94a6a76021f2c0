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

package registers

import "strings"

// Flags is the F register. The lower nibble of the register is always zero.
type Flags struct {
	Zero      bool
	Subtract  bool
	HalfCarry bool
	Carry     bool
}

// Flag bits as they appear in the F register.
const (
	ZeroBit      = 0x80
	SubtractBit  = 0x40
	HalfCarryBit = 0x20
	CarryBit     = 0x10
)

// Label returns the canonical name for the register.
func (f Flags) Label() string {
	return "F"
}

// String returns the flags as a string. Set flags are shown in upper case and
// unset flags in lower case.
func (f Flags) String() string {
	s := strings.Builder{}
	flag := func(v bool, c string) {
		if v {
			s.WriteString(c)
		} else {
			s.WriteString(strings.ToLower(c))
		}
	}
	flag(f.Zero, "Z")
	flag(f.Subtract, "N")
	flag(f.HalfCarry, "H")
	flag(f.Carry, "C")
	return s.String()
}

// Value returns the flags as an 8 bit value.
func (f Flags) Value() uint8 {
	var v uint8
	if f.Zero {
		v |= ZeroBit
	}
	if f.Subtract {
		v |= SubtractBit
	}
	if f.HalfCarry {
		v |= HalfCarryBit
	}
	if f.Carry {
		v |= CarryBit
	}
	return v
}

// Load flags from an 8 bit value. The lower nibble is ignored.
func (f *Flags) Load(v uint8) {
	f.Zero = v&ZeroBit == ZeroBit
	f.Subtract = v&SubtractBit == SubtractBit
	f.HalfCarry = v&HalfCarryBit == HalfCarryBit
	f.Carry = v&CarryBit == CarryBit
}

// Set all four flags in one go.
func (f *Flags) Set(zero, subtract, halfCarry, carry bool) {
	f.Zero = zero
	f.Subtract = subtract
	f.HalfCarry = halfCarry
	f.Carry = carry
}

// Reset all flags.
func (f *Flags) Reset() {
	*f = Flags{}
}
