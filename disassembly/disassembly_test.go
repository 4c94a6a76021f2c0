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

package disassembly_test

import (
	"strings"
	"testing"

	"github.com/jetsetilly/gopherboy/cartridgeloader"
	"github.com/jetsetilly/gopherboy/curated"
	"github.com/jetsetilly/gopherboy/disassembly"
	"github.com/jetsetilly/gopherboy/hardware"
	"github.com/jetsetilly/gopherboy/hardware/cpu/instructions"
	"github.com/jetsetilly/gopherboy/hardware/memory/cartridge"
	"github.com/jetsetilly/gopherboy/test"
)

// a 32KB ROM ONLY cartridge. the entry point jumps past the header to the
// program at 0x0150.
func makeROM(program ...uint8) cartridgeloader.Loader {
	data := make([]uint8, 0x8000)
	copy(data[0x0100:], []uint8{0x00, 0xc3, 0x50, 0x01})
	copy(data[0x0104:], cartridge.Logo[:])
	copy(data[0x0134:], "DSMTEST")
	data[0x014d] = cartridge.HeaderChecksum(data)
	copy(data[0x0150:], program)
	return cartridgeloader.Loader{Filename: "dsmtest.gb", Data: data}
}

func decode(t *testing.T, prefixed bool, opcode uint8, operand [2]uint8, address uint16) disassembly.Entry {
	t.Helper()
	defs, err := instructions.GetDefinitions()
	test.DemandSuccess(t, err)
	e, err := disassembly.Decode(defs.Lookup(opcode, prefixed), operand, address)
	test.DemandSuccess(t, err)
	return e
}

func TestDescribe(t *testing.T) {
	defs, err := instructions.GetDefinitions()
	test.DemandSuccess(t, err)

	test.ExpectEquality(t, disassembly.Describe(defs.Lookup(0x06, false)), "LD B,d8")
	test.ExpectEquality(t, disassembly.Describe(defs.Lookup(0xc2, false)), "JP NZ,a16")
	test.ExpectEquality(t, disassembly.Describe(defs.Lookup(0x7c, true)), "BIT 7,H")
	test.ExpectEquality(t, disassembly.Describe(defs.Lookup(0xd3, false)), "-")
	test.ExpectEquality(t, disassembly.Describe(nil), "-")
}

func TestDecode(t *testing.T) {
	e := decode(t, false, 0x3e, [2]uint8{0x3f}, 0x0150)
	test.ExpectEquality(t, e.String(), "LD A,$3F")
	test.ExpectEquality(t, e.BytecodeString(), "3E 3F")

	e = decode(t, false, 0xc3, [2]uint8{0x50, 0x01}, 0x0101)
	test.ExpectEquality(t, e.String(), "JP $0150")
	test.ExpectEquality(t, e.BytecodeString(), "C3 50 01")

	e = decode(t, false, 0x20, [2]uint8{0xfa}, 0x0150)
	test.ExpectEquality(t, e.Command, "JR NZ,$014C")
	test.ExpectEquality(t, e.Comment, "-6")

	e = decode(t, false, 0x18, [2]uint8{0x02}, 0x0200)
	test.ExpectEquality(t, e.String(), "JR $0204 ; +2")

	e = decode(t, false, 0xe0, [2]uint8{0x40}, 0x0150)
	test.ExpectEquality(t, e.String(), "LDH ($FF40),A ; LCDC")

	e = decode(t, false, 0xe0, [2]uint8{0x80}, 0x0150)
	test.ExpectEquality(t, e.String(), "LDH ($FF80),A")

	e = decode(t, false, 0xea, [2]uint8{0x0f, 0xff}, 0x0150)
	test.ExpectEquality(t, e.String(), "LD ($FF0F),A ; IF")

	e = decode(t, false, 0xe2, [2]uint8{}, 0x0150)
	test.ExpectEquality(t, e.String(), "LD ($FF00+C),A")

	e = decode(t, false, 0xf8, [2]uint8{0xfe}, 0x0150)
	test.ExpectEquality(t, e.String(), "LD HL,SP-$02")

	e = decode(t, false, 0xf8, [2]uint8{0x10}, 0x0150)
	test.ExpectEquality(t, e.String(), "LD HL,SP+$10")

	e = decode(t, false, 0xff, [2]uint8{}, 0x0150)
	test.ExpectEquality(t, e.String(), "RST $38")

	e = decode(t, true, 0x7c, [2]uint8{}, 0x0150)
	test.ExpectEquality(t, e.String(), "BIT 7,H")
	test.ExpectEquality(t, e.BytecodeString(), "CB 7C")

	e = decode(t, true, 0x36, [2]uint8{}, 0x0150)
	test.ExpectEquality(t, e.String(), "SWAP (HL)")

	_, err := disassembly.Decode(nil, [2]uint8{}, 0)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, disassembly.NoDefinition))
}

func TestFromCartridge(t *testing.T) {
	cart := cartridge.NewCartridge()

	_, err := disassembly.FromCartridge(cart)
	test.ExpectSuccess(t, curated.Is(err, disassembly.NoCartridge))

	test.DemandSuccess(t, cart.Attach(makeROM(0x3e, 0x05, 0xd3, 0xcb, 0x37, 0x76), true))

	dsm, err := disassembly.FromCartridge(cart)
	test.DemandSuccess(t, err)
	test.DemandEquality(t, len(dsm.Banks), 2)
	test.ExpectEquality(t, dsm.Header.Title, "DSMTEST")

	// the sweep of bank zero begins at the entry point
	test.ExpectEquality(t, dsm.Banks[0][0].Address, uint16(0x0100))
	test.ExpectEquality(t, dsm.Banks[0][0].String(), "NOP")
	test.ExpectEquality(t, dsm.Banks[1][0].Address, uint16(0x4000))
	test.ExpectEquality(t, dsm.Banks[1][0].Bank, 1)

	e, ok := dsm.Find(0, 0x0101)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, e.String(), "JP $0150")

	e, ok = dsm.Find(0, 0x0150)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, e.String(), "LD A,$05")

	// invalid opcodes are listed as data
	e, ok = dsm.Find(0, 0x0152)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, e.String(), "DB $D3")
	test.ExpectEquality(t, e.Defn == nil, true)

	e, ok = dsm.Find(0, 0x0153)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, e.String(), "SWAP A")

	e, ok = dsm.Find(0, 0x0155)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, e.String(), "HALT")

	// 0x0154 is in the middle of the SWAP instruction
	_, ok = dsm.Find(0, 0x0154)
	test.ExpectFailure(t, ok)

	_, ok = dsm.Find(2, 0x4000)
	test.ExpectFailure(t, ok)

	// every byte in the bank is accounted for
	for b, entries := range dsm.Banks {
		n := 0
		for _, e := range entries {
			n += len(e.Bytecode)
		}
		if b == 0 {
			test.ExpectEquality(t, n, 0x4000-0x0100)
		} else {
			test.ExpectEquality(t, n, 0x4000)
		}
	}
}

func TestWrite(t *testing.T) {
	cart := cartridge.NewCartridge()
	test.DemandSuccess(t, cart.Attach(makeROM(0x3e, 0x05, 0x76), true))

	dsm, err := disassembly.FromCartridge(cart)
	test.DemandSuccess(t, err)

	var out strings.Builder
	test.DemandSuccess(t, dsm.Write(&out, disassembly.WriteAttr{}))

	lines := strings.Split(out.String(), "\n")
	test.DemandSuccess(t, len(lines) > 6)
	test.ExpectEquality(t, lines[0], "; DSMTEST")
	test.ExpectEquality(t, lines[1], "; File: dsmtest.gb")
	test.ExpectEquality(t, lines[2], "; Type: ROM ONLY")
	test.ExpectEquality(t, lines[3], "; Banks: 2")
	test.ExpectEquality(t, lines[4], "; Region: Japanese")
	test.ExpectSuccess(t, strings.Contains(out.String(), "\n0150  LD A,$05\n"))
	test.ExpectSuccess(t, strings.Contains(out.String(), "\n; bank 1\n"))

	out.Reset()
	test.DemandSuccess(t, dsm.WriteBank(&out, disassembly.WriteAttr{ByteCode: true}, 0))
	test.ExpectSuccess(t, strings.Contains(out.String(), "\n00:0150  3E 05     LD A,$05\n"))

	test.ExpectFailure(t, dsm.WriteBank(&out, disassembly.WriteAttr{}, 5))
}

func TestTrace(t *testing.T) {
	gb, err := hardware.NewGameBoy(nil)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, gb.AttachCartridge(makeROM(
		0x3e, 0x05, // LD A,$05
		0xe0, 0x80, // LDH ($FF80),A
		0x76, // HALT
	)))

	out := &test.CompareWriter{}
	test.DemandSuccess(t, disassembly.Trace(gb, out, 0))

	expected := strings.Join([]string{
		"; DSMTEST",
		"; File: dsmtest.gb",
		"; Type: ROM ONLY",
		"; Banks: 2",
		"; Region: Japanese",
		"0100  NOP",
		"0101  JP $0150",
		"0150  LD A,$05",
		"0152  LDH ($FF80),A",
		"0154  HALT",
		"",
	}, "\n")
	test.ExpectEquality(t, out.String(), expected)
	test.ExpectSuccess(t, gb.CPU.Halted)
	test.ExpectEquality(t, gb.Mem.Peek(0xff80), uint8(0x05))
}

func TestTraceLimit(t *testing.T) {
	gb, err := hardware.NewGameBoy(nil)
	test.DemandSuccess(t, err)

	// JR -2 loops forever
	test.DemandSuccess(t, gb.AttachCartridge(makeROM(0x18, 0xfe)))

	var out strings.Builder
	test.DemandSuccess(t, disassembly.TraceWithAttr(gb, &out, disassembly.WriteAttr{}, 10))
	test.ExpectEquality(t, strings.Count(out.String(), "JR $0150 ; -2"), 8)
}

func TestTraceNotReady(t *testing.T) {
	gb, err := hardware.NewGameBoy(nil)
	test.DemandSuccess(t, err)

	var out strings.Builder
	test.ExpectFailure(t, disassembly.Trace(gb, &out, 0))
	test.ExpectEquality(t, out.Len(), 0)
}

func TestOpcodeTable(t *testing.T) {
	grid, err := disassembly.OpcodeTable(false)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, grid[0][0], "NOP")
	test.ExpectEquality(t, grid[0x7][0x6], "HALT")
	test.ExpectEquality(t, grid[0xd][0x3], "-")
	test.ExpectEquality(t, grid[0xc][0xb], "PREFIX CB")

	grid, err = disassembly.OpcodeTable(true)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, grid[0x3][0x7], "SWAP A")
	test.ExpectEquality(t, grid[0xf][0xf], "SET 7,A")

	var out strings.Builder
	test.DemandSuccess(t, disassembly.WriteOpcodeTable(&out, false, false))
	test.ExpectSuccess(t, strings.Contains(out.String(), "LD B,d8"))
	test.ExpectSuccess(t, strings.Contains(out.String(), "xF"))
	test.ExpectSuccess(t, strings.Contains(out.String(), "Fx"))
}

type flatMemory []uint8

func (mem flatMemory) Peek(address uint16) uint8 {
	return mem[int(address)%len(mem)]
}

func TestUpcoming(t *testing.T) {
	mem := make(flatMemory, 0x10000)
	copy(mem[0x0150:], []uint8{0x3e, 0x05, 0xcb, 0x37, 0xd3, 0xc3, 0x50, 0x01})

	entries := disassembly.Upcoming(mem, 0x0150, 4)
	test.DemandEquality(t, len(entries), 4)
	test.ExpectEquality(t, entries[0].String(), "LD A,$05")
	test.ExpectEquality(t, entries[1].String(), "SWAP A")
	test.ExpectEquality(t, entries[1].Address, uint16(0x0152))
	test.ExpectEquality(t, entries[2].String(), "DB $D3")
	test.ExpectEquality(t, entries[3].String(), "JP $0150")
	test.ExpectEquality(t, entries[3].Address, uint16(0x0155))

	// decoding wraps around the end of the address space
	mem[0xffff] = 0x00
	entries = disassembly.Upcoming(mem, 0xffff, 2)
	test.DemandEquality(t, len(entries), 2)
	test.ExpectEquality(t, entries[1].Address, uint16(0x0000))
}
