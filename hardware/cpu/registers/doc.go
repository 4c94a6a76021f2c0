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

// Package registers implements the registers of the LR35902.
//
// The 8 bit Register type implements the arithmetic and logic operations of
// the CPU. Operations return the carry and half-carry results and it is the
// responsibility of the caller to update the Flags register. In this way the
// Register type knows nothing about the flags and the caller decides which
// flags each instruction affects.
//
// The 16 bit registers (SP and PC) are represented by the Wide type. The
// register pairs (AF, BC, DE and HL) are formed from two 8 bit registers and
// the Pair() and SetPair() functions are provided for convenience.
package registers
