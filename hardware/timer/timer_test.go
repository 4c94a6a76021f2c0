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

package timer_test

import (
	"testing"

	"github.com/jetsetilly/gopherboy/hardware/memory/addresses"
	"github.com/jetsetilly/gopherboy/hardware/memory/cpubus"
	"github.com/jetsetilly/gopherboy/hardware/timer"
	"github.com/jetsetilly/gopherboy/test"
)

type mockIRQ struct {
	requests []cpubus.Interrupt
}

func (irq *mockIRQ) RequestInterrupt(i cpubus.Interrupt) {
	irq.requests = append(irq.requests, i)
}

func TestDIV(t *testing.T) {
	tmr := timer.NewTimer(&mockIRQ{})
	tmr.Step(255)
	test.ExpectEquality(t, tmr.ReadRegister(addresses.DIV), 0x00)
	tmr.Step(1)
	test.ExpectEquality(t, tmr.ReadRegister(addresses.DIV), 0x01)

	tmr.WriteRegister(addresses.DIV, 0x99)
	test.ExpectEquality(t, tmr.ReadRegister(addresses.DIV), 0x00)
	test.ExpectEquality(t, tmr.Counter, 0)
}

func TestTIMA(t *testing.T) {
	irq := &mockIRQ{}
	tmr := timer.NewTimer(irq)

	// 262144Hz. TIMA increments every 16 cycles
	tmr.WriteRegister(addresses.TAC, 0x05)
	test.ExpectEquality(t, tmr.ReadRegister(addresses.TAC), 0xfd)
	tmr.Step(15)
	test.ExpectEquality(t, tmr.TIMA, 0x00)
	tmr.Step(1)
	test.ExpectEquality(t, tmr.TIMA, 0x01)
	tmr.Step(16 * 9)
	test.ExpectEquality(t, tmr.TIMA, 0x0a)

	// timer disabled
	tmr.WriteRegister(addresses.TAC, 0x01)
	tmr.Step(1024)
	test.ExpectEquality(t, tmr.TIMA, 0x0a)
}

func TestOverflow(t *testing.T) {
	irq := &mockIRQ{}
	tmr := timer.NewTimer(irq)

	tmr.WriteRegister(addresses.TMA, 0x80)
	tmr.WriteRegister(addresses.TIMA, 0xff)
	tmr.WriteRegister(addresses.TAC, 0x05)
	tmr.Step(16)

	test.ExpectEquality(t, tmr.TIMA, 0x80)
	test.DemandEquality(t, len(irq.requests), 1)
	test.ExpectEquality(t, irq.requests[0], cpubus.Timer)
}

func TestDIVResetEdge(t *testing.T) {
	tmr := timer.NewTimer(&mockIRQ{})
	tmr.WriteRegister(addresses.TAC, 0x05)

	// bit 3 of the counter is set after eight cycles. resetting DIV causes a
	// falling edge
	tmr.Step(8)
	test.ExpectEquality(t, tmr.TIMA, 0x00)
	tmr.WriteRegister(addresses.DIV, 0x00)
	test.ExpectEquality(t, tmr.TIMA, 0x01)
}

func TestFrequency(t *testing.T) {
	test.ExpectEquality(t, timer.Frequency(0x00), 4096)
	test.ExpectEquality(t, timer.Frequency(0x01), 262144)
	test.ExpectEquality(t, timer.Frequency(0x02), 65536)
	test.ExpectEquality(t, timer.Frequency(0x03), 16384)
}
