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

// Package disassembly produces readable listings of Game Boy machine code.
//
// For a static listing of an entire cartridge the FromCartridge() function
// performs a linear sweep of every ROM bank. The Trace() function meanwhile
// runs the emulation and writes each instruction as it is executed, which is
// more accurate when data and code are interleaved.
//
// The Decode() function is the basis of both methods and can be used
// directly with the results of the CPU, as the debugger does.
package disassembly
