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

import "github.com/jetsetilly/gopherboy/hardware/clocks"

// machineCycle advances the peripherals by one machine cycle. it is called by
// the CPU for every memory access and internal delay.
func (gb *GameBoy) machineCycle() {
	gb.Timer.Step(clocks.CyclesPerMachineCycle)
	gb.Serial.Step(clocks.CyclesPerMachineCycle)
	gb.LCD.Step(clocks.CyclesPerMachineCycle)
}

// Step the emulation forward one CPU instruction. The callback function, if
// not nil, is called after every machine cycle once the peripherals have been
// advanced.
func (gb *GameBoy) Step(callback func() error) error {
	cycle := func() error {
		gb.machineCycle()
		if callback != nil {
			return callback()
		}
		return nil
	}

	return gb.CPU.ExecuteInstruction(cycle)
}
