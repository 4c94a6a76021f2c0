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

// Package debugger implements an interactive debugger for the GameBoy. The
// interface is a terminal program built with bubbletea.
//
// The debugger is created with NewDebugger() and started with Run(). The
// emulation can be stepped one instruction at a time, advanced a frame at a
// time or set running at the natural frame rate of the DMG.
//
// Emulation state is governed by the values in the govern sub-package.
package debugger
