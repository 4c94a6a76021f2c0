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
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/jetsetilly/gopherboy/logger"
)

// the number of log entries shown.
const logTail = 6

func (m model) View() string {
	top := lipgloss.JoinHorizontal(lipgloss.Top,
		m.registersView(),
		m.upcomingView(),
		m.statusView(),
	)

	bottom := lipgloss.JoinHorizontal(lipgloss.Top,
		m.serialView(),
		m.logView(),
	)

	return lipgloss.JoinVertical(lipgloss.Left, top, bottom, m.help.View(m.keys))
}

func (m model) registersView() string {
	cpu := m.dbg.gb.CPU

	s := strings.Builder{}
	reg := func(label string, value string) {
		s.WriteString(labelStyle.Render(label))
		s.WriteString(" ")
		s.WriteString(value)
		s.WriteString("\n")
	}

	reg("AF", fmt.Sprintf("%04x", cpu.AF()))
	reg("BC", fmt.Sprintf("%04x", cpu.BC()))
	reg("DE", fmt.Sprintf("%04x", cpu.DE()))
	reg("HL", fmt.Sprintf("%04x", cpu.HL()))
	reg("SP", fmt.Sprintf("%04x", cpu.SP.Value()))
	reg("PC", fmt.Sprintf("%04x", cpu.PC.Value()))
	s.WriteString(labelStyle.Render("flags"))
	s.WriteString(" ")
	s.WriteString(cpu.F.String())

	return panel("CPU", s.String())
}

func (m model) upcomingView() string {
	s := strings.Builder{}
	for i, e := range m.dbg.Upcoming() {
		if i > 0 {
			s.WriteString("\n")
		}
		line := fmt.Sprintf("%04x  %s", e.Address, e)
		if i == 0 {
			line = currentStyle.Render(line)
		}
		s.WriteString(line)
	}
	return panel("Upcoming", s.String())
}

func (m model) statusView() string {
	gb := m.dbg.gb
	cpu := gb.CPU

	s := strings.Builder{}
	s.WriteString(stateStyle.Render(m.dbg.State().String()))
	s.WriteString("\n")
	s.WriteString(fmt.Sprintf("%s %v\n", labelStyle.Render("IME"), cpu.IME))
	s.WriteString(fmt.Sprintf("%s %v\n", labelStyle.Render("halted"), cpu.Halted))
	s.WriteString(fmt.Sprintf("%s %v\n", labelStyle.Render("stopped"), cpu.Stopped))
	s.WriteString(fmt.Sprintf("%s %d\n", labelStyle.Render("cycles"), cpu.Cycles))
	s.WriteString(fmt.Sprintf("%s %d\n", labelStyle.Render("frame"), gb.FrameNum()))
	s.WriteString(fmt.Sprintf("%s %s", labelStyle.Render("last"), cpu.LastResult))

	if err := m.dbg.Err(); err != nil {
		s.WriteString("\n")
		s.WriteString(errorStyle.Render(err.Error()))
	}

	return panel("Status", s.String())
}

func (m model) serialView() string {
	out := string(m.dbg.gb.Serial.Output())
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) > logTail {
		lines = lines[len(lines)-logTail:]
	}
	return panel("Serial", strings.Join(lines, "\n"))
}

func (m model) logView() string {
	s := strings.Builder{}
	logger.Tail(&s, logTail)
	return panel("Log", strings.TrimRight(s.String(), "\n"))
}
