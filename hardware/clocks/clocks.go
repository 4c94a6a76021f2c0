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

// Package clocks defines the constant values that define the speed of the
// main clock in the DMG and the derived rates used by the rest of the
// emulation.
package clocks

// DMG is the main clock speed in MHz.
const DMG = 4.194304

// ClockRate is the number of clock cycles (T-cycles) per second.
const ClockRate = 4194304

// CyclesPerMachineCycle is the number of clock cycles in one machine cycle.
// Every memory access by the CPU takes one machine cycle.
const CyclesPerMachineCycle = 4

// CyclesPerFrame is the number of clock cycles in one video frame.
const CyclesPerFrame = 70224

// FrameRate is the number of video frames per second.
const FrameRate = float64(ClockRate) / float64(CyclesPerFrame)
