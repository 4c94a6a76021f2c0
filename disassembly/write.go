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
	"github.com/jetsetilly/gopherboy/hardware/memory/cartridge"
)

// WriteAttr controls what is printed by the write functions.
type WriteAttr struct {
	// include the raw bytes of each instruction
	ByteCode bool
}

// the width of the bytecode column. the longest instruction is three bytes.
const bytecodeWidth = 8

// writeHeader outputs the summary of the cartridge that heads every listing.
func writeHeader(output io.Writer, filename string, hdr cartridge.Header) {
	fmt.Fprintf(output, "; %s\n", hdr.Title)
	if filename != "" {
		fmt.Fprintf(output, "; File: %s\n", filename)
	}
	fmt.Fprintf(output, "; Type: %s\n", hdr.Type)
	fmt.Fprintf(output, "; Banks: %d\n", hdr.ROMBanks)
	fmt.Fprintf(output, "; Region: %s\n", hdr.Region())
}

// Write the entire disassembly to io.Writer.
func (dsm *Disassembly) Write(output io.Writer, attr WriteAttr) error {
	writeHeader(output, dsm.Filename, dsm.Header)

	for b := range dsm.Banks {
		err := dsm.WriteBank(output, attr, b)
		if err != nil {
			return err
		}
	}

	return nil
}

// WriteBank writes the disassembly of the selected bank to io.Writer.
func (dsm *Disassembly) WriteBank(output io.Writer, attr WriteAttr, bank int) error {
	if bank < 0 || bank >= len(dsm.Banks) {
		return curated.Errorf("disassembly: no bank %d", bank)
	}

	fmt.Fprintf(output, "\n; bank %d\n", bank)

	for _, e := range dsm.Banks[bank] {
		err := WriteEntry(output, attr, e)
		if err != nil {
			return err
		}
	}

	return nil
}

// WriteEntry writes a single entry to io.Writer.
func WriteEntry(output io.Writer, attr WriteAttr, e Entry) error {
	var err error
	if attr.ByteCode {
		_, err = fmt.Fprintf(output, "%02X:%04X  %-*s  %s\n", e.Bank, e.Address, bytecodeWidth, e.BytecodeString(), e)
	} else {
		_, err = fmt.Fprintf(output, "%04X  %s\n", e.Address, e)
	}
	return err
}
