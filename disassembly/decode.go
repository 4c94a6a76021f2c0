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
	"github.com/jetsetilly/gopherboy/hardware/memory/addresses"
)

// Describe returns the documentation form of the instruction definition. For
// example, "LD B,d8". An undefined opcode is described as "-".
func Describe(defn *instructions.Definition) string {
	if defn == nil {
		return "-"
	}
	return defn.String()
}

// Decode the instruction definition and its operand bytes into an Entry. The
// address is the location of the opcode and is required to resolve relative
// jumps.
//
// The operand bytes are little-endian as they appear in memory.
func Decode(defn *instructions.Definition, operand [2]uint8, address uint16) (Entry, error) {
	e := Entry{
		Address: address,
		Defn:    defn,
	}

	if defn == nil {
		return e, curated.Errorf(NoDefinition)
	}

	b := entryBuilder{mnemonic: defn.Mnemonic}

	for _, o := range defn.Operands {
		if o == instructions.NoOperand {
			break
		}
		decodeOperand(&b, o, operand, address+uint16(defn.Bytes))
	}

	if defn.Prefixed {
		e.Bytecode = []uint8{0xcb, defn.OpCode}
	} else {
		e.Bytecode = append([]uint8{defn.OpCode}, operand[:defn.OperandBytes()]...)
	}

	return e, b.build(&e)
}

// next is the address of the instruction following the one being decoded.
func decodeOperand(b *entryBuilder, o instructions.Operand, operand [2]uint8, next uint16) {
	v8 := operand[0]
	v16 := uint16(operand[1])<<8 | uint16(operand[0])

	switch o {
	case instructions.Immediate8:
		b.operand(fmt.Sprintf("$%02X", v8))

	case instructions.Immediate16, instructions.Address16:
		b.operand(fmt.Sprintf("$%04X", v16))

	case instructions.IndirectImmediate8:
		b.operand(fmt.Sprintf("($FF%02X)", v8))
		if s := addresses.Symbol(0xff00 | uint16(v8)); s != "" {
			b.comment("%s", s)
		}

	case instructions.IndirectImmediate16:
		b.operand(fmt.Sprintf("($%04X)", v16))
		if s := addresses.Symbol(v16); s != "" {
			b.comment("%s", s)
		}

	case instructions.Relative8:
		offset := int8(v8)
		b.operand(fmt.Sprintf("$%04X", next+uint16(offset)))
		b.comment("%+d", offset)

	case instructions.SPRelative:
		offset := int8(v8)
		if offset < 0 {
			b.operand(fmt.Sprintf("SP-$%02X", -int(offset)))
		} else {
			b.operand(fmt.Sprintf("SP+$%02X", offset))
		}

	case instructions.IndirectC:
		b.operand("($FF00+C)")

	default:
		if o.IsVector() {
			b.operand(fmt.Sprintf("$%02X", o.Vector()))
		} else {
			b.operand(o.String())
		}
	}
}
