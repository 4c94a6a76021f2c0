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

package instructions

import "fmt"

// Operand identifies the source or destination of an instruction.
type Operand int

// List of valid Operand values.
const (
	NoOperand Operand = iota

	// 8 bit registers
	A
	B
	C
	D
	E
	H
	L

	// 16 bit registers
	AF
	BC
	DE
	HL
	SP

	// register indirect
	IndirectBC
	IndirectDE
	IndirectHL
	IndirectHLInc
	IndirectHLDec
	IndirectC

	// operands taken from the bytes following the opcode
	Immediate8
	Immediate16
	Relative8
	IndirectImmediate8
	IndirectImmediate16
	Address16
	SPRelative

	// branch conditions
	CondNZ
	CondZ
	CondNC
	CondC

	// the operand of the PREFIX instruction
	Prefix

	// bit numbers for BIT, RES and SET
	Bit0
	Bit1
	Bit2
	Bit3
	Bit4
	Bit5
	Bit6
	Bit7

	// restart vectors
	Vector00
	Vector08
	Vector10
	Vector18
	Vector20
	Vector28
	Vector30
	Vector38
)

var operandNames = map[Operand]string{
	NoOperand:           "",
	A:                   "A",
	B:                   "B",
	C:                   "C",
	D:                   "D",
	E:                   "E",
	H:                   "H",
	L:                   "L",
	AF:                  "AF",
	BC:                  "BC",
	DE:                  "DE",
	HL:                  "HL",
	SP:                  "SP",
	IndirectBC:          "(BC)",
	IndirectDE:          "(DE)",
	IndirectHL:          "(HL)",
	IndirectHLInc:       "(HL+)",
	IndirectHLDec:       "(HL-)",
	IndirectC:           "(C)",
	Immediate8:          "d8",
	Immediate16:         "d16",
	Relative8:           "r8",
	IndirectImmediate8:  "(a8)",
	IndirectImmediate16: "(a16)",
	Address16:           "a16",
	SPRelative:          "SP+r8",
	CondNZ:              "NZ",
	CondZ:               "Z",
	CondNC:              "NC",
	CondC:               "C",
	Prefix:              "CB",
}

func (o Operand) String() string {
	switch {
	case o.IsBit():
		return fmt.Sprintf("%d", o.Bit())
	case o.IsVector():
		return fmt.Sprintf("%02XH", o.Vector())
	}
	if s, ok := operandNames[o]; ok {
		return s
	}
	return fmt.Sprintf("operand(%d)", int(o))
}

// IsCondition returns true if the operand is a branch condition.
func (o Operand) IsCondition() bool {
	return o >= CondNZ && o <= CondC
}

// IsBit returns true if the operand is a bit number.
func (o Operand) IsBit() bool {
	return o >= Bit0 && o <= Bit7
}

// Bit returns the bit number of the operand. Only meaningful if IsBit() is
// true.
func (o Operand) Bit() int {
	return int(o - Bit0)
}

// IsVector returns true if the operand is a restart vector.
func (o Operand) IsVector() bool {
	return o >= Vector00 && o <= Vector38
}

// Vector returns the address of the restart vector. Only meaningful if
// IsVector() is true.
func (o Operand) Vector() uint16 {
	return uint16(o-Vector00) * 8
}

// Bytes returns the number of bytes following the opcode that the operand
// requires.
func (o Operand) Bytes() int {
	switch o {
	case Immediate8, Relative8, IndirectImmediate8, SPRelative:
		return 1
	case Immediate16, IndirectImmediate16, Address16:
		return 2
	}
	return 0
}

// the 8 bit operand encoded in the low three bits of many opcodes.
var registerEncoding = [8]Operand{B, C, D, E, H, L, IndirectHL, A}

// parseOperand converts the textual representation of an operand into an
// Operand value. The "C" token is ambiguous and is treated as a condition when
// the condition argument is true.
func parseOperand(s string, condition bool) (Operand, bool) {
	if s == "C" && condition {
		return CondC, true
	}

	for o, n := range operandNames {
		if n == s && o != CondC {
			return o, true
		}
	}

	var v int
	if _, err := fmt.Sscanf(s, "%02XH", &v); err == nil && len(s) == 3 && v%8 == 0 && v <= 0x38 {
		return Vector00 + Operand(v/8), true
	}

	return NoOperand, false
}
