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

// Package hardware is the base package for the DMG emulation. It and its
// sub-packages contain everything required for a headless emulation.
//
// The GameBoy type is the root of the emulation and contains external
// references to all the sub-systems. From here, the emulation can either be
// started to run continuously (with optional callback to check for
// continuation); or it can be stepped instruction by instruction.
//
// The peripherals (timer, serial port and LCD) are advanced by four clock
// cycles for every machine cycle of the CPU, so the effect of a memory access
// is visible to the peripherals at the correct point in the instruction.
package hardware
