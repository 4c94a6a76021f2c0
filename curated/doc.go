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

// Package curated is a helper package for the plain Go language error type.
// Curated errors are created with Errorf() in the same way as fmt.Errorf()
// but the pattern string is retained so that the error can later be
// identified with the Is() and Has() functions.
//
//	err := curated.Errorf(cartridge.InvalidRAMSize, v)
//	if curated.Is(err, cartridge.InvalidRAMSize) {
//		...
//	}
//
// Patterns are exported as constants from the package that raises the error.
// Wrapping a curated error inside another curated error keeps the inner
// pattern discoverable with Has().
//
// Error messages are normalised when printed. Adjacent duplicate parts of the
// message are removed so that "cartridge: cartridge: no data" is printed as
// "cartridge: no data".
package curated
