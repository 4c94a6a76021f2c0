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

package memory_test

import (
	"testing"

	"github.com/jetsetilly/gopherboy/curated"
	"github.com/jetsetilly/gopherboy/hardware/memory"
	"github.com/jetsetilly/gopherboy/hardware/memory/addresses"
	"github.com/jetsetilly/gopherboy/hardware/memory/cpubus"
	"github.com/jetsetilly/gopherboy/test"
)

type mockDevice struct {
	regs []uint16
	data map[uint16]uint8
}

func (dev *mockDevice) Registers() []uint16 {
	return dev.regs
}

func (dev *mockDevice) ReadRegister(address uint16) uint8 {
	return dev.data[address]
}

func (dev *mockDevice) WriteRegister(address uint16, data uint8) {
	dev.data[address] = data + 1
}

func read(t *testing.T, mem *memory.Memory, address uint16) uint8 {
	t.Helper()
	v, err := mem.Read(address)
	test.DemandSuccess(t, err)
	return v
}

func TestNoCartridge(t *testing.T) {
	mem := memory.NewMemory(nil)
	test.ExpectEquality(t, read(t, mem, 0x0000), 0xff)
	test.ExpectEquality(t, read(t, mem, 0x7fff), 0xff)
	test.ExpectEquality(t, read(t, mem, 0xa000), 0xff)
}

func TestRAM(t *testing.T) {
	mem := memory.NewMemory(nil)

	for _, a := range []uint16{0x8000, 0x9fff, 0xc000, 0xdfff, 0xfe00, 0xfe9f, 0xff80, 0xfffe, 0xffff} {
		test.ExpectSuccess(t, mem.Write(a, 0x5a))
		test.ExpectEquality(t, read(t, mem, a), 0x5a, a)
	}
}

func TestEcho(t *testing.T) {
	mem := memory.NewMemory(nil)
	mem.Write(0xc123, 0x42)
	test.ExpectEquality(t, read(t, mem, 0xe123), 0x42)
	mem.Write(0xfdff, 0x24)
	test.ExpectEquality(t, read(t, mem, 0xddff), 0x24)
}

func TestUnusable(t *testing.T) {
	mem := memory.NewMemory(nil)
	mem.Write(0xfea0, 0x00)
	test.ExpectEquality(t, read(t, mem, 0xfea0), 0xff)
	test.ExpectEquality(t, read(t, mem, 0xfeff), 0xff)
}

func TestJoypad(t *testing.T) {
	mem := memory.NewMemory(nil)
	mem.Write(addresses.P1, 0x20)
	test.ExpectEquality(t, read(t, mem, addresses.P1), 0xef)
	mem.Write(addresses.P1, 0x10)
	test.ExpectEquality(t, read(t, mem, addresses.P1), 0xdf)
}

func TestInterruptFlags(t *testing.T) {
	mem := memory.NewMemory(nil)
	test.ExpectEquality(t, read(t, mem, addresses.IF), 0xe0)

	mem.RequestInterrupt(cpubus.Timer)
	mem.RequestInterrupt(cpubus.VBlank)
	test.ExpectEquality(t, read(t, mem, addresses.IF), 0xe5)

	mem.Write(addresses.IF, 0xff)
	test.ExpectEquality(t, mem.IF, 0x1f)
}

func TestDMA(t *testing.T) {
	mem := memory.NewMemory(nil)
	for i := range uint16(memory.DMALength) {
		mem.Write(0xc100+i, uint8(i))
	}
	mem.Write(addresses.DMA, 0xc1)
	test.ExpectEquality(t, read(t, mem, 0xfe00), 0x00)
	test.ExpectEquality(t, read(t, mem, 0xfe9f), 0x9f)
	test.ExpectEquality(t, read(t, mem, addresses.DMA), 0xc1)
}

func TestDevices(t *testing.T) {
	mem := memory.NewMemory(nil)

	dev := &mockDevice{regs: []uint16{0xff50, 0xff51}, data: make(map[uint16]uint8)}
	test.DemandSuccess(t, mem.AttachDevice(dev))

	mem.Write(0xff50, 0x10)
	test.ExpectEquality(t, read(t, mem, 0xff50), 0x11)
	test.ExpectEquality(t, dev.data[0xff50], 0x11)

	// conflict
	err := mem.AttachDevice(&mockDevice{regs: []uint16{0xff51}})
	test.ExpectSuccess(t, curated.Is(err, memory.DeviceConflict))

	// outside of IO space
	err = mem.AttachDevice(&mockDevice{regs: []uint16{0xff80}})
	test.ExpectSuccess(t, curated.Is(err, memory.DeviceAddress))
}

func TestUnclaimedIO(t *testing.T) {
	mem := memory.NewMemory(nil)
	mem.Write(0xff26, 0x80)
	test.ExpectEquality(t, read(t, mem, 0xff26), 0x80)
}
