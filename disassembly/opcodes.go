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

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/jetsetilly/gopherboy/curated"
	"github.com/jetsetilly/gopherboy/hardware/cpu/instructions"
)

var (
	opcodeHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")).Padding(0, 1)
	opcodeCellStyle   = lipgloss.NewStyle().Padding(0, 1)
	opcodeEmptyStyle  = lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("8"))
	opcodeBorderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// OpcodeTable returns the rows of the opcode grid. Row n holds the
// description of opcodes 0xn0 to 0xnF.
func OpcodeTable(prefixed bool) ([16][16]string, error) {
	var grid [16][16]string

	defs, err := instructions.GetDefinitions()
	if err != nil {
		return grid, curated.Errorf("disassembly: %v", err)
	}

	for op := 0; op < 256; op++ {
		grid[op>>4][op&0x0f] = Describe(defs.Lookup(uint8(op), prefixed))
	}

	return grid, nil
}

// WriteOpcodeTable writes the 16x16 grid of instruction descriptions for
// either the base or the prefixed instruction set. If styled is false the
// table is drawn without colour.
func WriteOpcodeTable(output io.Writer, prefixed bool, styled bool) error {
	grid, err := OpcodeTable(prefixed)
	if err != nil {
		return err
	}

	headers := make([]string, 17)
	for c := 0; c < 16; c++ {
		headers[c+1] = fmt.Sprintf("x%X", c)
	}

	tab := table.New().Border(lipgloss.NormalBorder()).Headers(headers...)
	for r := range grid {
		row := append([]string{fmt.Sprintf("%Xx", r)}, grid[r][:]...)
		tab.Row(row...)
	}

	if styled {
		tab.BorderStyle(opcodeBorderStyle)
		tab.StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow || col == 0:
				return opcodeHeaderStyle
			case grid[row][col-1] == "-":
				return opcodeEmptyStyle
			}
			return opcodeCellStyle
		})
	} else {
		tab.StyleFunc(func(_, _ int) lipgloss.Style {
			return opcodeCellStyle
		})
	}

	_, err = fmt.Fprintln(output, tab.String())
	if err != nil {
		return curated.Errorf("disassembly: %v", err)
	}

	return nil
}
