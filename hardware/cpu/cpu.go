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
	"fmt"
	"strings"

	"github.com/jetsetilly/gopherboy/curated"
	"github.com/jetsetilly/gopherboy/hardware/cpu/execution"
	"github.com/jetsetilly/gopherboy/hardware/cpu/instructions"
	"github.com/jetsetilly/gopherboy/hardware/cpu/registers"
	"github.com/jetsetilly/gopherboy/hardware/memory/addresses"
	"github.com/jetsetilly/gopherboy/hardware/memory/cpubus"
)

// Sentinal error patterns.
const (
	InvalidOpcode       = "cpu: '%02X' isn't a valid opcode"
	InvalidRegister     = "cpu: invalid register (%v)"
	InvalidWideRegister = "cpu: invalid wide register (%v)"
)

// CPU implements the LR35902 found in the DMG.
type CPU struct {
	A registers.Register
	F registers.Flags
	B registers.Register
	C registers.Register
	D registers.Register
	E registers.Register
	H registers.Register
	L registers.Register

	SP registers.Wide
	PC registers.Wide

	// interrupt master enable
	IME bool

	// the EI instruction enables interrupts after the following instruction
	eiPending bool

	// Halted is set by the HALT instruction. the CPU wakes when an enabled
	// interrupt is requested
	Halted bool

	// Stopped is set by the STOP instruction. there is no joypad so the CPU
	// never leaves this state
	Stopped bool

	// total number of clock cycles consumed since reset
	Cycles uint64

	// LastResult is the result of the most recent call to
	// ExecuteInstruction()
	LastResult execution.Result

	mem  cpubus.Memory
	defs *instructions.Table

	// the callback for the current instruction
	cycleCallback func() error

	// the first error encountered during the current instruction
	err error
}

// NewCPU is the preferred method of initialisation for the CPU structure.
func NewCPU(mem cpubus.Memory) (*CPU, error) {
	defs, err := instructions.GetDefinitions()
	if err != nil {
		return nil, curated.Errorf("cpu: %v", err)
	}

	mc := &CPU{
		mem:  mem,
		defs: defs,
	}
	mc.Reset()

	return mc, nil
}

// Reset zeroes the CPU registers and state.
func (mc *CPU) Reset() {
	mc.A = registers.NewRegister(0, "A")
	mc.F.Reset()
	mc.B = registers.NewRegister(0, "B")
	mc.C = registers.NewRegister(0, "C")
	mc.D = registers.NewRegister(0, "D")
	mc.E = registers.NewRegister(0, "E")
	mc.H = registers.NewRegister(0, "H")
	mc.L = registers.NewRegister(0, "L")
	mc.SP = registers.NewWide(0, "SP")
	mc.PC = registers.NewWide(0, "PC")
	mc.IME = false
	mc.eiPending = false
	mc.Halted = false
	mc.Stopped = false
	mc.Cycles = 0
	mc.LastResult.Reset()
}

// PostBoot sets the registers to the values left by the DMG boot ROM.
func (mc *CPU) PostBoot() {
	mc.A.Load(0x01)
	mc.F.Load(0xb0)
	mc.B.Load(0x00)
	mc.C.Load(0x13)
	mc.D.Load(0x00)
	mc.E.Load(0xd8)
	mc.H.Load(0x01)
	mc.L.Load(0x4d)
	mc.SP.Load(0xfffe)
	mc.PC.Load(0x0100)
}

// LoadPC loads the program counter with the address.
func (mc *CPU) LoadPC(address uint16) {
	mc.PC.Load(address)
}

// Killed returns true if the CPU has stopped and can not continue.
func (mc *CPU) Killed() bool {
	return mc.Stopped
}

// AF returns the value of the AF register pair.
func (mc *CPU) AF() uint16 {
	return registers.Pair(mc.A.Value(), mc.F.Value())
}

// BC returns the value of the BC register pair.
func (mc *CPU) BC() uint16 {
	return registers.Pair(mc.B.Value(), mc.C.Value())
}

// DE returns the value of the DE register pair.
func (mc *CPU) DE() uint16 {
	return registers.Pair(mc.D.Value(), mc.E.Value())
}

// HL returns the value of the HL register pair.
func (mc *CPU) HL() uint16 {
	return registers.Pair(mc.H.Value(), mc.L.Value())
}

func (mc *CPU) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("A=%s F=%s B=%s C=%s D=%s E=%s H=%s L=%s SP=%s PC=%s",
		mc.A, mc.F, mc.B, mc.C, mc.D, mc.E, mc.H, mc.L, mc.SP, mc.PC))
	if mc.IME {
		s.WriteString(" IME")
	}
	if mc.Stopped {
		s.WriteString(" STOPPED")
	} else if mc.Halted {
		s.WriteString(" HALTED")
	}
	return s.String()
}

// ExecuteInstruction steps the CPU forward one instruction. If an interrupt is
// pending and interrupts are enabled then the interrupt is serviced instead.
// The cycleCallback function is called for every machine cycle.
func (mc *CPU) ExecuteInstruction(cycleCallback func() error) error {
	mc.LastResult.Reset()
	mc.cycleCallback = cycleCallback
	mc.err = nil

	defer func() {
		mc.Cycles += uint64(mc.LastResult.Cycles)
	}()

	if mc.Stopped {
		mc.LastResult.Halted = true
		mc.internal()
		mc.LastResult.Final = true
		return mc.err
	}

	pending := mc.pendingInterrupts()

	if mc.Halted {
		if pending == 0 {
			mc.LastResult.Halted = true
			mc.internal()
			mc.LastResult.Final = true
			return mc.err
		}

		// a pending interrupt ends the halt even if interrupts are disabled
		mc.Halted = false
	}

	if mc.IME && pending != 0 {
		mc.serviceInterrupt(pending)
		mc.LastResult.Final = true
		return mc.err
	}

	// an EI instruction in the previous step takes effect now. the interrupt
	// check has already happened so the next interrupt can be no earlier than
	// after this instruction. a DI in this instruction cancels the EI
	if mc.eiPending {
		mc.IME = true
		mc.eiPending = false
	}

	mc.LastResult.Address = mc.PC.Value()

	opcode := mc.fetch()
	defn := mc.defs.Base[opcode]
	if defn == nil {
		return curated.Errorf(InvalidOpcode, opcode)
	}

	if defn.Operands[0] == instructions.Prefix {
		opcode = mc.fetch()
		defn = mc.defs.Prefixed[opcode]
	}

	mc.LastResult.Defn = defn

	if defn.Mnemonic == "STOP" {
		// the padding byte is skipped without being read
		mc.PC.Increment()
		mc.LastResult.ByteCount++
	} else {
		for i := 0; i < defn.OperandBytes(); i++ {
			mc.LastResult.Operand[i] = mc.fetch()
		}
	}

	if defn.Prefixed {
		mc.executePrefixed(defn)
	} else {
		mc.execute(defn)
	}

	mc.LastResult.Final = true

	return mc.err
}

// the first error during an instruction is the one that is returned.
func (mc *CPU) setErr(err error) {
	if mc.err == nil && err != nil {
		mc.err = err
	}
}

// cycle is called for every machine cycle.
func (mc *CPU) cycle() {
	mc.LastResult.Cycles += 4
	if mc.cycleCallback != nil {
		mc.setErr(mc.cycleCallback())
	}
}

// internal is a machine cycle that does not access memory.
func (mc *CPU) internal() {
	mc.cycle()
}

func (mc *CPU) read(address uint16) uint8 {
	v, err := mc.mem.Read(address)
	mc.setErr(err)
	mc.cycle()
	return v
}

func (mc *CPU) write(address uint16, data uint8) {
	mc.setErr(mc.mem.Write(address, data))
	mc.cycle()
}

// fetch the next byte of the instruction stream.
func (mc *CPU) fetch() uint8 {
	mc.LastResult.ByteCount++
	return mc.read(mc.PC.Increment())
}

func (mc *CPU) push(v uint16) {
	hi, lo := registers.Split(v)
	mc.write(mc.SP.Decrement(), hi)
	mc.write(mc.SP.Decrement(), lo)
}

func (mc *CPU) pop() uint16 {
	lo := mc.read(mc.SP.Increment())
	hi := mc.read(mc.SP.Increment())
	return registers.Pair(hi, lo)
}

// reads of the interrupt registers do not consume cycles.
func (mc *CPU) pendingInterrupts() uint8 {
	ie, err := mc.mem.Read(addresses.IE)
	mc.setErr(err)
	ifr, err := mc.mem.Read(addresses.IF)
	mc.setErr(err)
	return ie & ifr & cpubus.InterruptMask
}

// service the highest priority pending interrupt.
func (mc *CPU) serviceInterrupt(pending uint8) {
	var irq cpubus.Interrupt
	for irq = cpubus.VBlank; irq <= cpubus.Joypad; irq++ {
		if pending&irq.Bit() != 0 {
			break // for loop
		}
	}

	mc.IME = false
	mc.eiPending = false

	ifr, err := mc.mem.Read(addresses.IF)
	mc.setErr(err)
	mc.setErr(mc.mem.Write(addresses.IF, ifr&^irq.Bit()))

	mc.internal()
	mc.internal()
	mc.push(mc.PC.Value())
	mc.internal()
	mc.PC.Load(irq.Vector())

	mc.LastResult.Address = irq.Vector()
	mc.LastResult.Interrupt = irq.Vector()
}
