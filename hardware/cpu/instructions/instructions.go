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

import (
	"fmt"
	"strings"
)

// EffectCategory categorises an instruction by the effect it has.
type EffectCategory int

// List of valid EffectCategory values.
const (
	// instructions that do not write to memory
	Read EffectCategory = iota

	// instructions that write to memory
	Write

	// instructions that read memory, modify the value and write it back
	RMW

	// instructions that change the flow of the program without using the
	// stack
	Flow

	// instructions that use the stack to change the flow of the program
	Subroutine

	// instructions that change the state of the CPU
	Control
)

var effectNames = map[string]EffectCategory{
	"READ":       Read,
	"WRITE":      Write,
	"RMW":        RMW,
	"FLOW":       Flow,
	"SUBROUTINE": Subroutine,
	"CONTROL":    Control,
}

func (e EffectCategory) String() string {
	for s, v := range effectNames {
		if v == e {
			return s
		}
	}
	return "UNKNOWN"
}

// Definition defines each instruction in the instruction set; one per opcode.
type Definition struct {
	OpCode uint8

	// Prefixed instructions are those in the secondary table, reached with
	// the CB opcode
	Prefixed bool

	Mnemonic string
	Operands [2]Operand

	// number of bytes including the opcode, and for prefixed instructions,
	// the prefix byte
	Bytes int

	// number of clock cycles. for conditional branches this is the number of
	// cycles when the branch is not taken
	Cycles int

	// number of clock cycles when a conditional branch is taken. zero for
	// all other instructions
	BranchCycles int

	Effect EffectCategory
}

// String returns the instruction in the form used by documentation. For
// example, "LD B,d8" or "JP NZ,a16".
func (defn Definition) String() string {
	s := strings.Builder{}
	s.WriteString(defn.Mnemonic)
	for i, o := range defn.Operands {
		if o == NoOperand {
			break
		}
		if i == 0 {
			s.WriteString(" ")
		} else {
			s.WriteString(",")
		}
		s.WriteString(o.String())
	}
	return s.String()
}

// IsBranch returns true if the instruction is a conditional branch.
func (defn Definition) IsBranch() bool {
	return defn.BranchCycles > 0
}

// Condition returns the branch condition of the instruction or NoOperand if
// the instruction is not conditional.
func (defn Definition) Condition() Operand {
	if defn.Operands[0].IsCondition() {
		return defn.Operands[0]
	}
	return NoOperand
}

// OperandBytes returns the number of bytes following the opcode (and prefix)
// that make up the operand of the instruction.
func (defn Definition) OperandBytes() int {
	if defn.Prefixed {
		return 0
	}
	return defn.Bytes - 1
}

// check the internal consistency of the definition.
func (defn Definition) check() error {
	n := 1
	for _, o := range defn.Operands {
		n += o.Bytes()
	}
	if defn.Prefixed {
		n++
	}

	// STOP is followed by a padding byte
	if defn.Mnemonic == "STOP" {
		n++
	}

	if n != defn.Bytes {
		return fmt.Errorf("%02x %s: byte count (%d) does not match operands (%d)", defn.OpCode, defn, defn.Bytes, n)
	}

	if defn.Cycles%4 != 0 || defn.BranchCycles%4 != 0 {
		return fmt.Errorf("%02x %s: cycle count is not a multiple of four", defn.OpCode, defn)
	}

	return nil
}
