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

package timer

import (
	"fmt"

	"github.com/jetsetilly/gopherboy/hardware/memory/addresses"
	"github.com/jetsetilly/gopherboy/hardware/memory/cpubus"
)

// the bit of the internal counter that clocks TIMA, indexed by the lower two
// bits of TAC.
var tacBits = [4]uint16{1 << 9, 1 << 3, 1 << 5, 1 << 7}

// Frequency returns the TIMA frequency in Hz selected by the lower two bits
// of the TAC value.
func Frequency(tac uint8) int {
	return 4194304 / int(tacBits[tac&0x03]<<1)
}

// Timer implements the timer peripheral.
type Timer struct {
	irq cpubus.InterruptRequester

	// the internal counter. DIV is the upper byte
	Counter uint16

	TIMA uint8
	TMA  uint8
	TAC  uint8
}

// NewTimer is the preferred method of initialisation of the Timer type.
func NewTimer(irq cpubus.InterruptRequester) *Timer {
	return &Timer{irq: irq}
}

func (tmr *Timer) String() string {
	return fmt.Sprintf("DIV=%02x TIMA=%02x TMA=%02x TAC=%02x (%dHz)",
		tmr.DIV(), tmr.TIMA, tmr.TMA, tmr.TAC, Frequency(tmr.TAC))
}

// Reset the timer registers.
func (tmr *Timer) Reset() {
	tmr.Counter = 0
	tmr.TIMA = 0
	tmr.TMA = 0
	tmr.TAC = 0
}

// DIV returns the value of the DIV register.
func (tmr *Timer) DIV() uint8 {
	return uint8(tmr.Counter >> 8)
}

func (tmr *Timer) enabled() bool {
	return tmr.TAC&0x04 == 0x04
}

// the signal that is fed to the falling edge detector.
func (tmr *Timer) signal() bool {
	return tmr.enabled() && tmr.Counter&tacBits[tmr.TAC&0x03] != 0
}

func (tmr *Timer) incrementTIMA() {
	tmr.TIMA++
	if tmr.TIMA == 0 {
		tmr.TIMA = tmr.TMA
		tmr.irq.RequestInterrupt(cpubus.Timer)
	}
}

// Step the timer forward by the number of clock cycles.
func (tmr *Timer) Step(cycles int) {
	for range cycles {
		before := tmr.signal()
		tmr.Counter++
		if before && !tmr.signal() {
			tmr.incrementTIMA()
		}
	}
}

// Registers implements the chipbus.Device interface.
func (tmr *Timer) Registers() []uint16 {
	return []uint16{addresses.DIV, addresses.TIMA, addresses.TMA, addresses.TAC}
}

// ReadRegister implements the chipbus.Device interface.
func (tmr *Timer) ReadRegister(address uint16) uint8 {
	switch address {
	case addresses.DIV:
		return tmr.DIV()
	case addresses.TIMA:
		return tmr.TIMA
	case addresses.TMA:
		return tmr.TMA
	case addresses.TAC:
		return tmr.TAC | 0xf8
	}
	return 0xff
}

// WriteRegister implements the chipbus.Device interface. A write to DIV or
// TAC that causes a falling edge on the selected counter bit increments TIMA.
func (tmr *Timer) WriteRegister(address uint16, data uint8) {
	before := tmr.signal()

	switch address {
	case addresses.DIV:
		tmr.Counter = 0
	case addresses.TIMA:
		tmr.TIMA = data
	case addresses.TMA:
		tmr.TMA = data
	case addresses.TAC:
		tmr.TAC = data & 0x07
	}

	if before && !tmr.signal() {
		tmr.incrementTIMA()
	}
}
