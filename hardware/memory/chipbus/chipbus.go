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

// Package chipbus defines how the peripherals (timer, serial port, LCD)
// connect to the memory system. Each peripheral is attached to the memory
// system as a Device and is responsible for the memory mapped registers it
// lists.
package chipbus

// Device is implemented by peripherals that have memory mapped registers in
// the IO area of memory.
type Device interface {
	// Registers returns the list of addresses handled by the device. The
	// addresses must be in the IO area
	Registers() []uint16

	ReadRegister(address uint16) uint8
	WriteRegister(address uint16, data uint8)
}
