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

// Package instructions defines the instruction set of the LR35902. The base
// instruction set is described by the embedded base.csv file. Each line of
// the file describes one opcode:
//
//	opcode,mnemonic,operand,operand,bytes,cycles,cycles if branch taken,effect
//
// The prefixed instruction set, reached through the CB opcode, is entirely
// regular and is generated.
//
// Cycle counts are in clock cycles (4194304Hz) and not machine cycles. A
// machine cycle is four clock cycles.
//
// Both tables are parsed once on the first call to GetDefinitions().
package instructions
