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

// Package catalog keeps a record of known cartridges in an SQLite database.
//
// The database is opened with Open() and cartridges are added with Add().
// A cartridge is identified by the hash of its data so adding the same
// cartridge twice updates the existing record rather than creating a new
// one. The added timestamp of an existing record is preserved.
//
//	cat, _ := catalog.Open(catalog.DefaultPath())
//	defer cat.Close()
//	cat.Add(cartload, cart.Header)
package catalog
