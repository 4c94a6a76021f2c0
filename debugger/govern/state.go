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

package govern

// State of the emulation.
type State int

// List of possible emulation states. A frontend moves from Initialising to
// Paused once the machine has started. Stepping is a transient state for the
// duration of a single instruction or frame.
const (
	Initialising State = iota
	Paused
	Stepping
	Running
	Ending
)

var stateNames = [...]string{
	Initialising: "Initialising",
	Paused:       "Paused",
	Stepping:     "Stepping",
	Running:      "Running",
	Ending:       "Ending",
}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return ""
	}
	return stateNames[s]
}
