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

// Package memory implements the memory bus of the DMG. The Memory type
// satisfies the cpubus.Memory interface and routes every access to the
// correct area of memory, as defined by the memorymap package.
//
// Peripherals with memory mapped registers are attached with AttachDevice().
// IO addresses that are not claimed by a device are stored as plain memory,
// with the exception of the joypad register (P1), the interrupt flag register
// (IF) and the OAM DMA register, which are handled by the memory bus itself.
package memory
