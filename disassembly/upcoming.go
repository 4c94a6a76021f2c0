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

package disassembly

import (
	"github.com/jetsetilly/gopherboy/hardware/cpu/instructions"
)

// Peeker is the part of the memory bus required by Upcoming(). Peeking must
// not have side effects.
type Peeker interface {
	Peek(address uint16) uint8
}

// the longest instruction is three bytes.
const maxInstructionBytes = 3

// Upcoming decodes n instructions from memory, beginning at address. The
// result is only a prediction of what the CPU will execute because it
// follows the instruction stream linearly, ignoring branches.
func Upcoming(mem Peeker, address uint16, n int) []Entry {
	defs, err := instructions.GetDefinitions()
	if err != nil {
		return nil
	}

	entries := make([]Entry, 0, n)
	buf := make([]uint8, maxInstructionBytes)

	for len(entries) < n {
		for i := range buf {
			buf[i] = mem.Peek(address + uint16(i))
		}

		e, err := sweep(defs, buf, 0, address)
		if err != nil {
			e = dataByte(address, buf[0])
		}
		entries = append(entries, e)

		address += uint16(len(e.Bytecode))
	}

	return entries
}
