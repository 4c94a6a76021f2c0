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

package catalog

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// Entry is a single cartridge in the catalog.
type Entry struct {
	Hash     string
	Filename string
	Title    string
	Type     string
	Banks    int

	// size of cartridge RAM in kilobytes
	RAM int

	Region string
	Added  time.Time
}

func (e Entry) String() string {
	return fmt.Sprintf("%s [%s] %d banks (%s)", e.Title, e.Type, e.Banks, e.Filename)
}

var headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
var cellStyle = lipgloss.NewStyle().Padding(0, 1)

// Write the list of entries as a table.
func Write(output io.Writer, entries []Entry) error {
	tab := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("Title", "Type", "Banks", "RAM", "Region", "File", "Hash").
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})

	for _, e := range entries {
		ram := "-"
		if e.RAM > 0 {
			ram = fmt.Sprintf("%dKB", e.RAM)
		}

		hash := e.Hash
		if len(hash) > 8 {
			hash = hash[:8]
		}

		tab.Row(e.Title, e.Type, fmt.Sprintf("%d", e.Banks), ram, e.Region, e.Filename, hash)
	}

	_, err := fmt.Fprintln(output, tab.String())
	return err
}
