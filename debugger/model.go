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
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/jetsetilly/gopherboy/debugger/govern"
	"github.com/jetsetilly/gopherboy/performance/limiter"
)

// the interval between frames when the emulation is running.
var frameInterval = time.Duration(float64(time.Second) / limiter.DMGFrameRate)

// tickMsg advances a running emulation by one frame. ticks from a previous
// run are identified by their generation and ignored.
type tickMsg struct {
	generation int
}

// model is the bubbletea model for the debugger.
type model struct {
	dbg *Debugger

	keys keyMap
	help help.Model

	width  int
	height int

	// incremented every time the emulation is set running
	generation int
}

func newModel(dbg *Debugger) model {
	return model{
		dbg:  dbg,
		keys: defaultKeyMap(),
		help: help.New(),
	}
}

func (m model) tick() tea.Cmd {
	gen := m.generation
	return tea.Tick(frameInterval, func(time.Time) tea.Msg {
		return tickMsg{generation: gen}
	})
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.dbg.End()
			return m, tea.Quit

		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll

		case key.Matches(msg, m.keys.Run):
			if m.dbg.ToggleRunning() == govern.Running {
				m.generation++
				return m, m.tick()
			}

		case key.Matches(msg, m.keys.Step):
			if m.dbg.State() == govern.Paused {
				m.dbg.Step()
			}

		case key.Matches(msg, m.keys.Frame):
			if m.dbg.State() == govern.Paused {
				m.dbg.Frame()
			}
		}

	case tickMsg:
		if msg.generation != m.generation || m.dbg.State() != govern.Running {
			return m, nil
		}
		m.dbg.Frame()
		if m.dbg.State() == govern.Running {
			return m, m.tick()
		}
	}

	return m, nil
}
