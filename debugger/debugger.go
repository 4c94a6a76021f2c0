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
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/jetsetilly/gopherboy/curated"
	"github.com/jetsetilly/gopherboy/debugger/govern"
	"github.com/jetsetilly/gopherboy/disassembly"
	"github.com/jetsetilly/gopherboy/hardware"
	"github.com/jetsetilly/gopherboy/logger"
)

// the number of upcoming instructions shown.
const upcomingCount = 8

// Debugger is the governing structure of a debugging session.
type Debugger struct {
	gb *hardware.GameBoy

	state govern.State

	// the most recent error from the emulation. the emulation can not
	// continue while this is not nil
	err error
}

// NewDebugger creates and starts a debugging session for the GameBoy. The
// GameBoy must have a cartridge attached.
func NewDebugger(gb *hardware.GameBoy) (*Debugger, error) {
	dbg := &Debugger{
		gb:    gb,
		state: govern.Initialising,
	}

	err := gb.Start()
	if err != nil {
		return nil, curated.Errorf("debugger: %v", err)
	}

	dbg.state = govern.Paused
	logger.Logf(logger.Allow, "debugger", "debugging %s", gb.Mem.Cart.Header.Title)

	return dbg, nil
}

// GameBoy returns the machine being debugged.
func (dbg *Debugger) GameBoy() *hardware.GameBoy {
	return dbg.gb
}

// State returns the current emulation state.
func (dbg *Debugger) State() govern.State {
	return dbg.state
}

// Err returns the error that stopped the emulation, if any.
func (dbg *Debugger) Err() error {
	return dbg.err
}

// canContinue returns false if the emulation is unable to proceed.
func (dbg *Debugger) canContinue() bool {
	return dbg.err == nil && !dbg.gb.Killed() && dbg.state != govern.Ending
}

// halt the emulation because of an error.
func (dbg *Debugger) halt(err error) {
	dbg.err = err
	dbg.state = govern.Paused
	logger.Log(logger.Allow, "debugger", err)
}

// Step the emulation by one instruction.
func (dbg *Debugger) Step() {
	if !dbg.canContinue() {
		return
	}

	dbg.state = govern.Stepping
	err := dbg.gb.Step(nil)
	if err != nil {
		dbg.halt(err)
		return
	}
	dbg.state = govern.Paused
}

// Frame runs the emulation until the end of the current frame. The state
// of the debugger is unchanged unless an error occurs.
func (dbg *Debugger) Frame() {
	if !dbg.canContinue() {
		return
	}

	err := dbg.gb.RunForFrameCount(1, nil)
	if err != nil {
		dbg.halt(err)
		return
	}

	if dbg.gb.Killed() {
		dbg.state = govern.Paused
	}
}

// ToggleRunning switches between the running and paused states. Returns the
// new state.
func (dbg *Debugger) ToggleRunning() govern.State {
	switch dbg.state {
	case govern.Running:
		dbg.state = govern.Paused
	case govern.Paused:
		if dbg.canContinue() {
			dbg.state = govern.Running
		}
	}
	return dbg.state
}

// End the debugging session.
func (dbg *Debugger) End() {
	dbg.state = govern.Ending
}

// Upcoming returns the instructions in memory at the program counter.
func (dbg *Debugger) Upcoming() []disassembly.Entry {
	return disassembly.Upcoming(dbg.gb.Mem, dbg.gb.CPU.PC.Value(), upcomingCount)
}

// Run the debugger's terminal interface. Returns when the user quits.
func (dbg *Debugger) Run(input io.Reader, output io.Writer) error {
	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if input != nil {
		opts = append(opts, tea.WithInput(input))
	}
	if output != nil {
		opts = append(opts, tea.WithOutput(output))
	}

	p := tea.NewProgram(newModel(dbg), opts...)
	_, err := p.Run()
	if err != nil {
		return curated.Errorf("debugger: %v", err)
	}

	dbg.End()

	return nil
}
