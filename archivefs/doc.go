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

// Package archivefs treats zip archives as directories so that files can be
// opened from inside them with an ordinary looking path. For example:
//
//	roms/collection.zip/puzzle/tetris.gb
//
// A path that names the archive itself can also be opened, in which case a
// selection function chooses which file in the archive is wanted.
package archivefs
