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

package debugger

import (
	"github.com/charmbracelet/bubbles/key"
)

// keyMap defines the key bindings of the debugger. It satisfies the
// help.KeyMap interface.
type keyMap struct {
	Step  key.Binding
	Frame key.Binding
	Run   key.Binding
	Help  key.Binding
	Quit  key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Step: key.NewBinding(
			key.WithKeys("s", "enter"),
			key.WithHelp("s/enter", "step"),
		),
		Frame: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "frame"),
		),
		Run: key.NewBinding(
			key.WithKeys(" ", "space"),
			key.WithHelp("space", "run/pause"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Step, k.Run, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Step, k.Frame, k.Run},
		{k.Help, k.Quit},
	}
}
