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

package execution

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gopherboy/curated"
	"github.com/jetsetilly/gopherboy/hardware/cpu/instructions"
)

// Result records the state/result of each instruction executed on the CPU.
// Including the address it was read from and a reference to the instruction
// definition.
//
// When the CPU services an interrupt or idles while halted, the Defn field is
// nil and one of the Interrupt or Halted fields is set.
type Result struct {
	// the address at which the instruction began
	Address uint16

	// a reference to the instruction definition
	Defn *instructions.Definition

	// the bytes following the opcode (and prefix), little-endian
	Operand [2]uint8

	// the number of bytes read during instruction decode, including the
	// opcode and prefix
	ByteCount int

	// the number of clock cycles consumed
	Cycles int

	// whether a conditional branch was taken
	BranchSuccess bool

	// the interrupt vector that was serviced, if any
	Interrupt uint16

	// the CPU was halted and idled
	Halted bool

	// whether the instruction has been executed completely
	Final bool
}

// Reset nullifies all members of the Result instance.
func (r *Result) Reset() {
	*r = Result{}
}

// OperandValue returns the operand as a 16 bit value. For instructions with
// an 8 bit operand the upper byte is zero.
func (r Result) OperandValue() uint16 {
	return uint16(r.Operand[1])<<8 | uint16(r.Operand[0])
}

func (r Result) String() string {
	switch {
	case r.Interrupt != 0:
		return fmt.Sprintf("interrupt %04x (%d cycles)", r.Interrupt, r.Cycles)
	case r.Halted:
		return fmt.Sprintf("halted (%d cycles)", r.Cycles)
	case r.Defn == nil:
		return "no instruction"
	}

	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("%04x %s", r.Address, r.Defn))
	if r.Defn.IsBranch() {
		if r.BranchSuccess {
			s.WriteString(" [taken]")
		} else {
			s.WriteString(" [not taken]")
		}
	}
	s.WriteString(fmt.Sprintf(" (%d cycles)", r.Cycles))
	return s.String()
}

// IsValid checks whether the instance of Result contains information
// consistent with the instruction definition.
func (r Result) IsValid() error {
	if !r.Final {
		return curated.Errorf("cpu: execution not finalised (bad opcode?)")
	}

	if r.Interrupt != 0 || r.Halted {
		if r.Defn != nil {
			return curated.Errorf("cpu: interrupt or halt result has an instruction definition")
		}
		return nil
	}

	if r.Defn == nil {
		return curated.Errorf("cpu: result has no instruction definition")
	}

	if r.ByteCount != r.Defn.Bytes {
		return curated.Errorf("cpu: unexpected number of bytes read during decode (%d instead of %d)", r.ByteCount, r.Defn.Bytes)
	}

	if r.Defn.IsBranch() {
		if r.BranchSuccess && r.Cycles != r.Defn.BranchCycles {
			return curated.Errorf("cpu: number of cycles wrong for opcode %#02x [%s] (%d instead of %d)",
				r.Defn.OpCode, r.Defn, r.Cycles, r.Defn.BranchCycles)
		}
		if !r.BranchSuccess && r.Cycles != r.Defn.Cycles {
			return curated.Errorf("cpu: number of cycles wrong for opcode %#02x [%s] (%d instead of %d)",
				r.Defn.OpCode, r.Defn, r.Cycles, r.Defn.Cycles)
		}
		return nil
	}

	if r.BranchSuccess {
		return curated.Errorf("cpu: branch success for non-branching opcode %#02x [%s]", r.Defn.OpCode, r.Defn)
	}

	if r.Cycles != r.Defn.Cycles {
		return curated.Errorf("cpu: number of cycles wrong for opcode %#02x [%s] (%d instead of %d)",
			r.Defn.OpCode, r.Defn, r.Cycles, r.Defn.Cycles)
	}

	return nil
}
