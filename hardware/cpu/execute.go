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

package cpu

import (
	"github.com/jetsetilly/gopherboy/curated"
	"github.com/jetsetilly/gopherboy/hardware/cpu/instructions"
	"github.com/jetsetilly/gopherboy/hardware/cpu/registers"
)

// register returns a pointer to the 8 bit register named by the operand.
func (mc *CPU) register(o instructions.Operand) *registers.Register {
	switch o {
	case instructions.A:
		return &mc.A
	case instructions.B:
		return &mc.B
	case instructions.C:
		return &mc.C
	case instructions.D:
		return &mc.D
	case instructions.E:
		return &mc.E
	case instructions.H:
		return &mc.H
	case instructions.L:
		return &mc.L
	}
	mc.setErr(curated.Errorf(InvalidRegister, o))
	return &registers.Register{}
}

func (mc *CPU) setHL(v uint16) {
	hi, lo := registers.Split(v)
	mc.H.Load(hi)
	mc.L.Load(lo)
}

// immediate returns the 16 bit operand of the current instruction.
func (mc *CPU) immediate() uint16 {
	return mc.LastResult.OperandValue()
}

func (mc *CPU) get8(o instructions.Operand) uint8 {
	switch o {
	case instructions.IndirectBC:
		return mc.read(mc.BC())
	case instructions.IndirectDE:
		return mc.read(mc.DE())
	case instructions.IndirectHL:
		return mc.read(mc.HL())
	case instructions.IndirectHLInc:
		hl := mc.HL()
		mc.setHL(hl + 1)
		return mc.read(hl)
	case instructions.IndirectHLDec:
		hl := mc.HL()
		mc.setHL(hl - 1)
		return mc.read(hl)
	case instructions.IndirectC:
		return mc.read(0xff00 | uint16(mc.C.Value()))
	case instructions.Immediate8:
		return mc.LastResult.Operand[0]
	case instructions.IndirectImmediate8:
		return mc.read(0xff00 | uint16(mc.LastResult.Operand[0]))
	case instructions.IndirectImmediate16:
		return mc.read(mc.immediate())
	}
	return mc.register(o).Value()
}

func (mc *CPU) set8(o instructions.Operand, v uint8) {
	switch o {
	case instructions.IndirectBC:
		mc.write(mc.BC(), v)
	case instructions.IndirectDE:
		mc.write(mc.DE(), v)
	case instructions.IndirectHL:
		mc.write(mc.HL(), v)
	case instructions.IndirectHLInc:
		hl := mc.HL()
		mc.setHL(hl + 1)
		mc.write(hl, v)
	case instructions.IndirectHLDec:
		hl := mc.HL()
		mc.setHL(hl - 1)
		mc.write(hl, v)
	case instructions.IndirectC:
		mc.write(0xff00|uint16(mc.C.Value()), v)
	case instructions.IndirectImmediate8:
		mc.write(0xff00|uint16(mc.LastResult.Operand[0]), v)
	case instructions.IndirectImmediate16:
		mc.write(mc.immediate(), v)
	default:
		mc.register(o).Load(v)
	}
}

func isWide(o instructions.Operand) bool {
	switch o {
	case instructions.AF, instructions.BC, instructions.DE, instructions.HL, instructions.SP:
		return true
	}
	return false
}

func (mc *CPU) get16(o instructions.Operand) uint16 {
	switch o {
	case instructions.AF:
		return mc.AF()
	case instructions.BC:
		return mc.BC()
	case instructions.DE:
		return mc.DE()
	case instructions.HL:
		return mc.HL()
	case instructions.SP:
		return mc.SP.Value()
	case instructions.Immediate16:
		return mc.immediate()
	}
	mc.setErr(curated.Errorf(InvalidWideRegister, o))
	return 0
}

func (mc *CPU) set16(o instructions.Operand, v uint16) {
	hi, lo := registers.Split(v)
	switch o {
	case instructions.AF:
		mc.A.Load(hi)
		mc.F.Load(lo)
	case instructions.BC:
		mc.B.Load(hi)
		mc.C.Load(lo)
	case instructions.DE:
		mc.D.Load(hi)
		mc.E.Load(lo)
	case instructions.HL:
		mc.H.Load(hi)
		mc.L.Load(lo)
	case instructions.SP:
		mc.SP.Load(v)
	default:
		mc.setErr(curated.Errorf(InvalidWideRegister, o))
	}
}

// condition returns true if the branch condition is met. An instruction with
// no condition always branches.
func (mc *CPU) condition(o instructions.Operand) bool {
	switch o {
	case instructions.CondNZ:
		return !mc.F.Zero
	case instructions.CondZ:
		return mc.F.Zero
	case instructions.CondNC:
		return !mc.F.Carry
	case instructions.CondC:
		return mc.F.Carry
	}
	return true
}

// branch notes the result of a conditional branch.
func (mc *CPU) branch(defn *instructions.Definition) {
	if defn.IsBranch() {
		mc.LastResult.BranchSuccess = true
	}
}

func (mc *CPU) execute(defn *instructions.Definition) {
	dst := defn.Operands[0]
	src := defn.Operands[1]

	switch defn.Mnemonic {
	case "NOP":

	case "LD", "LDH":
		switch {
		case dst == instructions.IndirectImmediate16 && src == instructions.SP:
			hi, lo := registers.Split(mc.SP.Value())
			mc.write(mc.immediate(), lo)
			mc.write(mc.immediate()+1, hi)
		case src == instructions.SPRelative:
			v, carry, half := registers.AddOffset(mc.SP.Value(), mc.LastResult.Operand[0])
			mc.setHL(v)
			mc.F.Set(false, false, half, carry)
			mc.internal()
		case dst == instructions.SP && src == instructions.HL:
			mc.SP.Load(mc.HL())
			mc.internal()
		case isWide(dst):
			mc.set16(dst, mc.get16(src))
		default:
			mc.set8(dst, mc.get8(src))
		}

	case "PUSH":
		mc.internal()
		mc.push(mc.get16(dst))

	case "POP":
		mc.set16(dst, mc.pop())

	case "ADD":
		switch dst {
		case instructions.HL:
			v, carry, half := registers.AddWide(mc.HL(), mc.get16(src))
			mc.setHL(v)
			mc.F.Subtract = false
			mc.F.HalfCarry = half
			mc.F.Carry = carry
			mc.internal()
		case instructions.SP:
			v, carry, half := registers.AddOffset(mc.SP.Value(), mc.LastResult.Operand[0])
			mc.SP.Load(v)
			mc.F.Set(false, false, half, carry)
			mc.internal()
			mc.internal()
		default:
			carry, half := mc.A.Add(mc.get8(src), false)
			mc.F.Set(mc.A.IsZero(), false, half, carry)
		}

	case "ADC":
		carry, half := mc.A.Add(mc.get8(src), mc.F.Carry)
		mc.F.Set(mc.A.IsZero(), false, half, carry)

	case "SUB":
		carry, half := mc.A.Subtract(mc.get8(dst), false)
		mc.F.Set(mc.A.IsZero(), true, half, carry)

	case "SBC":
		carry, half := mc.A.Subtract(mc.get8(src), mc.F.Carry)
		mc.F.Set(mc.A.IsZero(), true, half, carry)

	case "AND":
		mc.A.AND(mc.get8(dst))
		mc.F.Set(mc.A.IsZero(), false, true, false)

	case "XOR":
		mc.A.XOR(mc.get8(dst))
		mc.F.Set(mc.A.IsZero(), false, false, false)

	case "OR":
		mc.A.OR(mc.get8(dst))
		mc.F.Set(mc.A.IsZero(), false, false, false)

	case "CP":
		zero, carry, half := mc.A.Compare(mc.get8(dst))
		mc.F.Set(zero, true, half, carry)

	case "INC", "DEC":
		inc := defn.Mnemonic == "INC"

		if isWide(dst) {
			if inc {
				mc.set16(dst, mc.get16(dst)+1)
			} else {
				mc.set16(dst, mc.get16(dst)-1)
			}
			mc.internal()
			break // switch
		}

		r := registers.NewRegister(mc.get8(dst), "")
		var half bool
		if inc {
			half = r.Increment()
		} else {
			half = r.Decrement()
		}
		mc.set8(dst, r.Value())
		mc.F.Zero = r.IsZero()
		mc.F.Subtract = !inc
		mc.F.HalfCarry = half

	case "RLCA":
		mc.F.Set(false, false, false, mc.A.RLC())
	case "RRCA":
		mc.F.Set(false, false, false, mc.A.RRC())
	case "RLA":
		mc.F.Set(false, false, false, mc.A.RL(mc.F.Carry))
	case "RRA":
		mc.F.Set(false, false, false, mc.A.RR(mc.F.Carry))

	case "DAA":
		mc.daa()

	case "CPL":
		mc.A.Load(^mc.A.Value())
		mc.F.Subtract = true
		mc.F.HalfCarry = true

	case "SCF":
		mc.F.Subtract = false
		mc.F.HalfCarry = false
		mc.F.Carry = true

	case "CCF":
		mc.F.Subtract = false
		mc.F.HalfCarry = false
		mc.F.Carry = !mc.F.Carry

	case "JR":
		if mc.condition(defn.Condition()) {
			mc.PC.AddSigned(mc.LastResult.Operand[0])
			mc.internal()
			mc.branch(defn)
		}

	case "JP":
		if dst == instructions.IndirectHL {
			mc.PC.Load(mc.HL())
			break // switch
		}
		if mc.condition(defn.Condition()) {
			mc.PC.Load(mc.immediate())
			mc.internal()
			mc.branch(defn)
		}

	case "CALL":
		if mc.condition(defn.Condition()) {
			mc.internal()
			mc.push(mc.PC.Value())
			mc.PC.Load(mc.immediate())
			mc.branch(defn)
		}

	case "RET":
		if defn.IsBranch() {
			mc.internal()
			if !mc.condition(defn.Condition()) {
				break // switch
			}
			mc.branch(defn)
		}
		mc.PC.Load(mc.pop())
		mc.internal()

	case "RETI":
		mc.PC.Load(mc.pop())
		mc.internal()
		mc.IME = true

	case "RST":
		mc.internal()
		mc.push(mc.PC.Value())
		mc.PC.Load(dst.Vector())

	case "DI":
		mc.IME = false
		mc.eiPending = false

	case "EI":
		mc.eiPending = true

	case "HALT":
		mc.Halted = true

	case "STOP":
		mc.IME = false
		mc.eiPending = false
		mc.Halted = true
		mc.Stopped = true

	default:
		mc.setErr(curated.Errorf(InvalidOpcode, defn.OpCode))
	}
}

// daa adjusts the accumulator after a BCD addition or subtraction.
func (mc *CPU) daa() {
	a := mc.A.Value()

	if !mc.F.Subtract {
		if mc.F.Carry || a > 0x99 {
			a += 0x60
			mc.F.Carry = true
		}
		if mc.F.HalfCarry || a&0x0f > 0x09 {
			a += 0x06
		}
	} else {
		if mc.F.Carry {
			a -= 0x60
		}
		if mc.F.HalfCarry {
			a -= 0x06
		}
	}

	mc.A.Load(a)
	mc.F.Zero = a == 0
	mc.F.HalfCarry = false
}

func (mc *CPU) executePrefixed(defn *instructions.Definition) {
	var o instructions.Operand
	var bit int

	if defn.Operands[0].IsBit() {
		bit = defn.Operands[0].Bit()
		o = defn.Operands[1]
	} else {
		o = defn.Operands[0]
	}

	r := registers.NewRegister(mc.get8(o), "")

	var carry bool

	switch defn.Mnemonic {
	case "RLC":
		carry = r.RLC()
	case "RRC":
		carry = r.RRC()
	case "RL":
		carry = r.RL(mc.F.Carry)
	case "RR":
		carry = r.RR(mc.F.Carry)
	case "SLA":
		carry = r.SLA()
	case "SRA":
		carry = r.SRA()
	case "SRL":
		carry = r.SRL()
	case "SWAP":
		r.Swap()
	case "BIT":
		mc.F.Zero = !r.Bit(bit)
		mc.F.Subtract = false
		mc.F.HalfCarry = true
		return
	case "RES":
		r.ResetBit(bit)
		mc.set8(o, r.Value())
		return
	case "SET":
		r.SetBit(bit)
		mc.set8(o, r.Value())
		return
	default:
		mc.setErr(curated.Errorf(InvalidOpcode, defn.OpCode))
		return
	}

	mc.set8(o, r.Value())
	mc.F.Set(r.IsZero(), false, false, carry)
}
