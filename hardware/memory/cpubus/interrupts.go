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

package cpubus

// Interrupt identifies one of the five interrupt sources. The value is the
// bit number in the IE and IF registers.
type Interrupt int

// List of valid Interrupt values in order of priority.
const (
	VBlank Interrupt = iota
	LCDStat
	Timer
	Serial
	Joypad
)

// InterruptMask masks the bits of the IE and IF registers that are used.
const InterruptMask = uint8(0x1f)

func (i Interrupt) String() string {
	switch i {
	case VBlank:
		return "VBlank"
	case LCDStat:
		return "LCD STAT"
	case Timer:
		return "Timer"
	case Serial:
		return "Serial"
	case Joypad:
		return "Joypad"
	}
	return "unknown"
}

// Vector returns the address that the CPU jumps to when servicing the
// interrupt.
func (i Interrupt) Vector() uint16 {
	return 0x0040 + uint16(i)*8
}

// Bit returns the bit value of the interrupt in the IE and IF registers.
func (i Interrupt) Bit() uint8 {
	return 0x01 << uint(i)
}

// InterruptRequester is implemented by the memory system. Peripherals use it
// to set bits in the IF register.
type InterruptRequester interface {
	RequestInterrupt(Interrupt)
}
