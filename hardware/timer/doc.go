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

// Package timer implements the DIV and TIMA timers of the DMG.
//
// The DIV register is the upper eight bits of a sixteen bit counter that
// increments every clock cycle. TIMA increments on the falling edge of one of
// the bits of that counter, as selected by the TAC register. When TIMA
// overflows it is reloaded from TMA and the timer interrupt is requested.
package timer
