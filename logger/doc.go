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

// Package logger is the central log repository for gopherboy. There is only
// one log for the entire application. Entries are added with the Log() and
// Logf() functions.
//
// Each entry has a tag and a detail string. The tag is used to describe the
// part of the emulation that is adding the entry. For example:
//
//	logger.Log(logger.Allow, "cartridge", "using MBC1 mapper")
//
// Consecutive entries with identical tag and detail strings are not repeated.
// Instead a repeat count is incremented.
//
// The Permission interface lets an environment decide whether it is allowed
// to add to the log. A machine used for a disassembly trace for example, does
// not need to add anything to the log. logger.Allow can be used when there is
// no environment to consult.
package logger
