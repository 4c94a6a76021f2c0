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
	"fmt"
	"io"

	"github.com/jetsetilly/gopherboy/curated"
	"github.com/jetsetilly/gopherboy/hardware"
)

// Trace starts the GameBoy and writes every executed instruction to
// io.Writer, stopping when the CPU halts or stops. A limit greater than zero
// is the maximum number of instructions to trace.
//
// The GameBoy must have a cartridge attached.
func Trace(gb *hardware.GameBoy, output io.Writer, limit int) error {
	return TraceWithAttr(gb, output, WriteAttr{}, limit)
}

// TraceWithAttr is the same as Trace() but with control over how each entry
// is written.
func TraceWithAttr(gb *hardware.GameBoy, output io.Writer, attr WriteAttr, limit int) error {
	err := gb.Start()
	if err != nil {
		return curated.Errorf("disassembly: %v", err)
	}

	cart := gb.Mem.Cart
	writeHeader(output, cart.Filename, cart.Header)

	for n := 0; limit <= 0 || n < limit; n++ {
		if gb.CPU.Halted || gb.Killed() {
			break
		}

		err = gb.Step(nil)
		if err != nil {
			return curated.Errorf("disassembly: %v", err)
		}

		r := gb.CPU.LastResult
		if r.Interrupt != 0 {
			fmt.Fprintf(output, "; interrupt $%04X\n", r.Interrupt)
			continue
		}
		if r.Defn == nil {
			continue
		}

		e, err := Decode(r.Defn, r.Operand, r.Address)
		if err != nil {
			return err
		}

		_, rom, _ := cart.MappedBanks()
		if r.Address >= bankSize {
			e.Bank = rom
		}

		err = WriteEntry(output, attr, e)
		if err != nil {
			return curated.Errorf("disassembly: %v", err)
		}
	}

	return nil
}
