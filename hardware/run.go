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

package hardware

import (
	"github.com/jetsetilly/gopherboy/curated"
	"github.com/jetsetilly/gopherboy/debugger/govern"
	"github.com/jetsetilly/gopherboy/logger"
)

// the machine cycle callback used by Run() and RunForFrameCount().
func (gb *GameBoy) quickCycle() error {
	gb.machineCycle()
	return nil
}

// runFrame executes instructions until the frame number changes or the CPU
// is killed.
func (gb *GameBoy) runFrame() error {
	frame := gb.LCD.Frame
	for frame == gb.LCD.Frame {
		if err := gb.CPU.ExecuteInstruction(gb.quickCycle); err != nil {
			return err
		}
		if gb.CPU.Killed() {
			logger.Logf(gb, "gameboy", "CPU stopped at %04x", gb.CPU.LastResult.Address)
			return nil
		}
	}
	return nil
}

// Run sets the emulation running as quickly as possible. The continueCheck
// function is called once per frame and the emulation ends when it returns
// govern.Ending or an error. While the state is govern.Paused no instructions
// are executed but continueCheck is still called.
//
// A nil continueCheck function runs the emulation until the CPU is killed.
func (gb *GameBoy) Run(continueCheck func() (govern.State, error)) error {
	if continueCheck == nil {
		continueCheck = func() (govern.State, error) {
			if gb.Killed() {
				return govern.Ending, nil
			}
			return govern.Running, nil
		}
	}

	var err error

	state := govern.Running

	for state != govern.Ending {
		switch state {
		case govern.Running:
			if err := gb.runFrame(); err != nil {
				return err
			}
		case govern.Paused:
		default:
			return curated.Errorf("gameboy: unsupported emulation state (%s) in Run() function", state)
		}

		state, err = continueCheck()
		if err != nil {
			return err
		}
	}

	return nil
}

// RunForFrameCount sets emulator running for the specified number of frames.
// Useful for FPS and regression tests. The continueCheck function is called
// with the current frame number at the end of every frame.
func (gb *GameBoy) RunForFrameCount(numFrames int, continueCheck func(frame int) (govern.State, error)) error {
	if continueCheck == nil {
		continueCheck = func(frame int) (govern.State, error) { return govern.Running, nil }
	}

	targetFrame := gb.LCD.Frame + numFrames

	var err error

	state := govern.Running
	for gb.LCD.Frame < targetFrame && state != govern.Ending && !gb.Killed() {
		if err := gb.runFrame(); err != nil {
			return err
		}

		state, err = continueCheck(gb.LCD.Frame)
		if err != nil {
			return err
		}
	}

	return nil
}
