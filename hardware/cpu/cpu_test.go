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

package cpu_test

import (
	"fmt"
	"testing"

	"github.com/jetsetilly/gopherboy/hardware/cpu"
	"github.com/jetsetilly/gopherboy/hardware/cpu/execution"
	"github.com/jetsetilly/gopherboy/hardware/cpu/instructions"
	"github.com/jetsetilly/gopherboy/hardware/memory/addresses"
	"github.com/jetsetilly/gopherboy/hardware/memory/cpubus"
	"github.com/jetsetilly/gopherboy/test"
)

type mockMem struct {
	internal []uint8
}

func newMockMem() *mockMem {
	return &mockMem{internal: make([]uint8, 0x10000)}
}

func (mem *mockMem) putInstructions(origin uint16, bytes ...uint8) uint16 {
	for i, b := range bytes {
		mem.internal[origin+uint16(i)] = b
	}
	return origin + uint16(len(bytes))
}

func (mem *mockMem) Clear() {
	clear(mem.internal)
}

func (mem *mockMem) Read(address uint16) (uint8, error) {
	return mem.internal[address], nil
}

func (mem *mockMem) Write(address uint16, data uint8) error {
	mem.internal[address] = data
	return nil
}

func newCPU(t *testing.T) (*cpu.CPU, *mockMem) {
	t.Helper()
	mem := newMockMem()
	mc, err := cpu.NewCPU(mem)
	test.DemandSuccess(t, err)
	return mc, mem
}

func step(t *testing.T, mc *cpu.CPU) execution.Result {
	t.Helper()

	var callbacks int
	err := mc.ExecuteInstruction(func() error {
		callbacks++
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}

	err = mc.LastResult.IsValid()
	if err != nil {
		t.Fatal(err)
	}

	if callbacks*4 != mc.LastResult.Cycles {
		t.Fatalf("cycle callbacks (%d) don't match cycle count (%d)", callbacks, mc.LastResult.Cycles)
	}

	return mc.LastResult
}

func TestLoads(t *testing.T) {
	mc, mem := newCPU(t)

	// LD A,$42; LD B,A; LD HL,$C000; LD (HL+),A; LD (HL),$99; LD C,(HL)
	mem.putInstructions(0x0000, 0x3e, 0x42, 0x47, 0x21, 0x00, 0xc0, 0x22, 0x36, 0x99, 0x4e)
	step(t, mc)
	test.ExpectEquality(t, mc.A.Value(), 0x42)
	step(t, mc)
	test.ExpectEquality(t, mc.B.Value(), 0x42)
	step(t, mc)
	test.ExpectEquality(t, mc.HL(), 0xc000)
	step(t, mc)
	test.ExpectEquality(t, mem.internal[0xc000], 0x42)
	test.ExpectEquality(t, mc.HL(), 0xc001)
	step(t, mc)
	test.ExpectEquality(t, mem.internal[0xc001], 0x99)
	step(t, mc)
	test.ExpectEquality(t, mc.C.Value(), 0x99)

	// LD SP,$FFFE; LD ($C010),SP
	mem.putInstructions(0x000a, 0x31, 0xfe, 0xff, 0x08, 0x10, 0xc0)
	step(t, mc)
	test.ExpectEquality(t, mc.SP.Value(), 0xfffe)
	r := step(t, mc)
	test.ExpectEquality(t, r.Cycles, 20)
	test.ExpectEquality(t, mem.internal[0xc010], 0xfe)
	test.ExpectEquality(t, mem.internal[0xc011], 0xff)

	// LDH ($80),A; LDH A,($81)
	mem.internal[0xff81] = 0x17
	mem.putInstructions(0x0010, 0xe0, 0x80, 0xf0, 0x81)
	step(t, mc)
	test.ExpectEquality(t, mem.internal[0xff80], 0x42)
	step(t, mc)
	test.ExpectEquality(t, mc.A.Value(), 0x17)
}

func TestArithmetic(t *testing.T) {
	mc, mem := newCPU(t)

	// LD A,$3A; ADD A,$C6
	mem.putInstructions(0x0000, 0x3e, 0x3a, 0xc6, 0xc6)
	step(t, mc)
	step(t, mc)
	test.ExpectEquality(t, mc.A.Value(), 0x00)
	test.ExpectEquality(t, mc.F.String(), "ZnHC")

	// ADC A,$01 (carry is set from previous instruction)
	mem.putInstructions(0x0004, 0xce, 0x01)
	step(t, mc)
	test.ExpectEquality(t, mc.A.Value(), 0x02)
	test.ExpectEquality(t, mc.F.String(), "znhc")

	// SUB $03
	mem.putInstructions(0x0006, 0xd6, 0x03)
	step(t, mc)
	test.ExpectEquality(t, mc.A.Value(), 0xff)
	test.ExpectEquality(t, mc.F.String(), "zNHC")

	// CP $FF
	mem.putInstructions(0x0008, 0xfe, 0xff)
	step(t, mc)
	test.ExpectEquality(t, mc.A.Value(), 0xff)
	test.ExpectEquality(t, mc.F.String(), "ZNhc")

	// AND $0F; OR $F0; XOR $FF
	mem.putInstructions(0x000a, 0xe6, 0x0f, 0xf6, 0xf0, 0xee, 0xff)
	step(t, mc)
	test.ExpectEquality(t, mc.A.Value(), 0x0f)
	test.ExpectEquality(t, mc.F.String(), "znHc")
	step(t, mc)
	test.ExpectEquality(t, mc.A.Value(), 0xff)
	step(t, mc)
	test.ExpectEquality(t, mc.A.Value(), 0x00)
	test.ExpectEquality(t, mc.F.String(), "Znhc")
}

func TestIncDec(t *testing.T) {
	mc, mem := newCPU(t)

	// SCF; LD B,$0F; INC B; DEC B; LD C,$01; DEC C
	mem.putInstructions(0x0000, 0x37, 0x06, 0x0f, 0x04, 0x05, 0x0e, 0x01, 0x0d)
	step(t, mc)
	step(t, mc)
	step(t, mc)
	test.ExpectEquality(t, mc.B.Value(), 0x10)
	test.ExpectEquality(t, mc.F.String(), "znHC")
	step(t, mc)
	test.ExpectEquality(t, mc.B.Value(), 0x0f)
	test.ExpectEquality(t, mc.F.String(), "zNHC")
	step(t, mc)
	step(t, mc)
	test.ExpectEquality(t, mc.F.String(), "ZNhC")

	// INC BC; DEC DE
	mem.putInstructions(0x0008, 0x03, 0x1b)
	r := step(t, mc)
	test.ExpectEquality(t, r.Cycles, 8)
	test.ExpectEquality(t, mc.BC(), 0x0f01)
	step(t, mc)
	test.ExpectEquality(t, mc.DE(), 0xffff)
}

func TestDAA(t *testing.T) {
	mc, mem := newCPU(t)

	// LD A,$45; ADD A,$38; DAA
	mem.putInstructions(0x0000, 0x3e, 0x45, 0xc6, 0x38, 0x27)
	step(t, mc)
	step(t, mc)
	step(t, mc)
	test.ExpectEquality(t, mc.A.Value(), 0x83)
	test.ExpectSuccess(t, !mc.F.Carry)

	// SUB $84; DAA
	mem.putInstructions(0x0005, 0xd6, 0x84, 0x27)
	step(t, mc)
	step(t, mc)
	test.ExpectEquality(t, mc.A.Value(), 0x99)
	test.ExpectSuccess(t, mc.F.Carry)
}

func TestStack(t *testing.T) {
	mc, mem := newCPU(t)
	mc.SP.Load(0xd000)

	// LD BC,$1234; PUSH BC; POP DE
	mem.putInstructions(0x0000, 0x01, 0x34, 0x12, 0xc5, 0xd1)
	step(t, mc)
	r := step(t, mc)
	test.ExpectEquality(t, r.Cycles, 16)
	test.ExpectEquality(t, mc.SP.Value(), 0xcffe)
	test.ExpectEquality(t, mem.internal[0xcfff], 0x12)
	test.ExpectEquality(t, mem.internal[0xcffe], 0x34)
	step(t, mc)
	test.ExpectEquality(t, mc.DE(), 0x1234)
	test.ExpectEquality(t, mc.SP.Value(), 0xd000)

	// PUSH BC; POP AF. the lower nibble of F is always zero
	mem.putInstructions(0x0005, 0xc5, 0xf1)
	step(t, mc)
	step(t, mc)
	test.ExpectEquality(t, mc.AF(), 0x1230)
}

func TestFlow(t *testing.T) {
	mc, mem := newCPU(t)
	mc.SP.Load(0xd000)

	// JR +2; (skipped) NOP NOP; JP $0100
	mem.putInstructions(0x0000, 0x18, 0x02, 0x00, 0x00, 0xc3, 0x00, 0x01)
	r := step(t, mc)
	test.ExpectEquality(t, r.Cycles, 12)
	test.ExpectEquality(t, mc.PC.Value(), 0x0004)
	step(t, mc)
	test.ExpectEquality(t, mc.PC.Value(), 0x0100)

	// CALL $0200; ... RET
	mem.putInstructions(0x0100, 0xcd, 0x00, 0x02)
	mem.putInstructions(0x0200, 0xc9)
	r = step(t, mc)
	test.ExpectEquality(t, r.Cycles, 24)
	test.ExpectEquality(t, mc.PC.Value(), 0x0200)
	test.ExpectEquality(t, mem.internal[0xcfff], 0x01)
	test.ExpectEquality(t, mem.internal[0xcffe], 0x03)
	step(t, mc)
	test.ExpectEquality(t, mc.PC.Value(), 0x0103)

	// JR backwards
	mem.putInstructions(0x0103, 0x18, 0xfe)
	step(t, mc)
	test.ExpectEquality(t, mc.PC.Value(), 0x0103)

	// RST 38H
	mem.putInstructions(0x0103, 0xff)
	step(t, mc)
	test.ExpectEquality(t, mc.PC.Value(), 0x0038)
}

func TestConditionalBranches(t *testing.T) {
	mc, mem := newCPU(t)

	// XOR A (sets zero); JR NZ,+5; JR Z,+5
	mem.putInstructions(0x0000, 0xaf, 0x20, 0x05, 0x28, 0x05)
	step(t, mc)
	r := step(t, mc)
	test.ExpectFailure(t, r.BranchSuccess)
	test.ExpectEquality(t, r.Cycles, 8)
	r = step(t, mc)
	test.ExpectSuccess(t, r.BranchSuccess)
	test.ExpectEquality(t, r.Cycles, 12)
	test.ExpectEquality(t, mc.PC.Value(), 0x000a)
}

func TestPrefixed(t *testing.T) {
	mc, mem := newCPU(t)

	// LD A,$81; RLC A; SWAP A; BIT 7,A; SET 0,(HL); RES 0,(HL)
	mem.putInstructions(0x0000, 0x3e, 0x81, 0xcb, 0x07, 0xcb, 0x37, 0xcb, 0x7f)
	step(t, mc)
	r := step(t, mc)
	test.ExpectEquality(t, r.ByteCount, 2)
	test.ExpectEquality(t, r.Cycles, 8)
	test.ExpectEquality(t, mc.A.Value(), 0x03)
	test.ExpectSuccess(t, mc.F.Carry)
	step(t, mc)
	test.ExpectEquality(t, mc.A.Value(), 0x30)
	test.ExpectFailure(t, mc.F.Carry)
	step(t, mc)
	test.ExpectSuccess(t, mc.F.Zero)

	mc.H.Load(0xc0)
	mc.L.Load(0x00)
	mem.putInstructions(0x0008, 0xcb, 0xc6, 0xcb, 0x86)
	r = step(t, mc)
	test.ExpectEquality(t, r.Cycles, 16)
	test.ExpectEquality(t, mem.internal[0xc000], 0x01)
	step(t, mc)
	test.ExpectEquality(t, mem.internal[0xc000], 0x00)
}

func TestInterrupts(t *testing.T) {
	mc, mem := newCPU(t)
	mc.SP.Load(0xd000)

	// EI; NOP; NOP
	mem.putInstructions(0x0000, 0xfb, 0x00, 0x00)
	mem.internal[addresses.IE] = cpubus.Timer.Bit()
	mem.internal[addresses.IF] = cpubus.Timer.Bit()

	step(t, mc)
	test.ExpectFailure(t, mc.IME)

	// the instruction after EI is executed before the interrupt
	r := step(t, mc)
	test.ExpectEquality(t, r.Address, 0x0001)
	test.ExpectSuccess(t, mc.IME)

	r = step(t, mc)
	test.ExpectEquality(t, r.Interrupt, cpubus.Timer.Vector())
	test.ExpectEquality(t, r.Cycles, 20)
	test.ExpectEquality(t, mc.PC.Value(), 0x0050)
	test.ExpectFailure(t, mc.IME)
	test.ExpectEquality(t, mem.internal[addresses.IF], 0x00)
	test.ExpectEquality(t, mem.internal[0xcffe], 0x02)

	// RETI
	mem.putInstructions(0x0050, 0xd9)
	step(t, mc)
	test.ExpectSuccess(t, mc.IME)
	test.ExpectEquality(t, mc.PC.Value(), 0x0002)
}

func TestEnableThenDisable(t *testing.T) {
	mc, mem := newCPU(t)
	mc.SP.Load(0xd000)

	// EI; DI; NOP
	mem.putInstructions(0x0000, 0xfb, 0xf3, 0x00)
	mem.internal[addresses.IE] = cpubus.VBlank.Bit()
	mem.internal[addresses.IF] = cpubus.VBlank.Bit()

	step(t, mc)
	step(t, mc)
	test.ExpectFailure(t, mc.IME)

	// the DI cancelled the EI so the interrupt is not serviced
	r := step(t, mc)
	test.ExpectEquality(t, r.Address, 0x0002)
	test.ExpectEquality(t, r.Interrupt, 0)
	test.ExpectEquality(t, mc.PC.Value(), 0x0003)
	test.ExpectFailure(t, mc.IME)
	test.ExpectEquality(t, mem.internal[addresses.IF], cpubus.VBlank.Bit())
}

func TestInterruptPriority(t *testing.T) {
	mc, mem := newCPU(t)
	mc.SP.Load(0xd000)
	mc.IME = true

	mem.internal[addresses.IE] = cpubus.InterruptMask
	mem.internal[addresses.IF] = cpubus.Serial.Bit() | cpubus.LCDStat.Bit()

	r := step(t, mc)
	test.ExpectEquality(t, r.Interrupt, cpubus.LCDStat.Vector())
	test.ExpectEquality(t, mem.internal[addresses.IF], cpubus.Serial.Bit())
}

func TestHalt(t *testing.T) {
	mc, mem := newCPU(t)

	// HALT; NOP
	mem.putInstructions(0x0000, 0x76, 0x00)
	step(t, mc)
	test.ExpectSuccess(t, mc.Halted)

	r := step(t, mc)
	test.ExpectSuccess(t, r.Halted)
	test.ExpectEquality(t, r.Cycles, 4)
	test.ExpectEquality(t, mc.PC.Value(), 0x0001)

	// a pending interrupt wakes the CPU even though IME is false
	mem.internal[addresses.IE] = cpubus.VBlank.Bit()
	mem.internal[addresses.IF] = cpubus.VBlank.Bit()
	r = step(t, mc)
	test.ExpectFailure(t, mc.Halted)
	test.ExpectEquality(t, r.Address, 0x0001)
	test.ExpectEquality(t, r.Interrupt, 0)
}

func TestStop(t *testing.T) {
	mc, mem := newCPU(t)

	// STOP
	mem.putInstructions(0x0000, 0x10, 0x00)
	step(t, mc)
	test.ExpectSuccess(t, mc.Killed())
	test.ExpectEquality(t, mc.PC.Value(), 0x0002)

	r := step(t, mc)
	test.ExpectSuccess(t, r.Halted)
	test.ExpectEquality(t, mc.PC.Value(), 0x0002)
}

func TestInvalidOpcode(t *testing.T) {
	mc, mem := newCPU(t)
	mem.putInstructions(0x0000, 0xd3)
	test.ExpectFailure(t, mc.ExecuteInstruction(nil))
	test.ExpectFailure(t, mc.LastResult.IsValid())
}

func TestCallbackError(t *testing.T) {
	mc, _ := newCPU(t)
	err := mc.ExecuteInstruction(func() error {
		return fmt.Errorf("callback error")
	})
	test.ExpectFailure(t, err)
}

// every defined opcode should produce a valid result, for both outcomes of a
// conditional branch.
func TestAllOpcodes(t *testing.T) {
	mc, mem := newCPU(t)

	defs, err := instructions.GetDefinitions()
	test.DemandSuccess(t, err)

	run := func(defn *instructions.Definition, flags uint8) {
		t.Helper()
		mem.Clear()
		mc.Reset()
		mc.SP.Load(0xd000)
		mc.F.Load(flags)
		mc.LoadPC(0x0100)
		if defn.Prefixed {
			mem.putInstructions(0x0100, 0xcb, defn.OpCode)
		} else {
			mem.putInstructions(0x0100, defn.OpCode)
		}

		err := mc.ExecuteInstruction(nil)
		if err != nil {
			t.Fatalf("%s: %v", defn, err)
		}
		err = mc.LastResult.IsValid()
		if err != nil {
			t.Errorf("%s: %v", defn, err)
		}
	}

	for _, defn := range defs.Base {
		if defn == nil || defn.Operands[0] == instructions.Prefix {
			continue // for loop
		}
		run(defn, 0x00)
		if defn.IsBranch() {
			run(defn, 0xf0)
		}
	}

	for _, defn := range defs.Prefixed {
		if defn != nil {
			run(defn, 0x00)
		}
	}
}
