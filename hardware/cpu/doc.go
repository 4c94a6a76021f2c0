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

// Package cpu emulates the Sharp LR35902 found in the DMG. The emulation is
// instruction accurate with cycle counts accurate to the machine cycle. Each
// memory access and each internal delay consumes one machine cycle (four
// clock cycles) and the cycle callback passed to ExecuteInstruction() is
// called for every machine cycle. This allows the rest of the system to keep
// in step with the CPU.
//
// The CPU reads and writes memory through the cpubus.Memory interface. The
// interrupt registers (IE and IF) are also accessed through that interface
// when checking for pending interrupts.
//
// The result of the most recent call to ExecuteInstruction() is available in
// the LastResult field.
package cpu
