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

package catalog_test

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/gopherboy/cartridgeloader"
	"github.com/jetsetilly/gopherboy/catalog"
	"github.com/jetsetilly/gopherboy/curated"
	"github.com/jetsetilly/gopherboy/hardware/memory/cartridge"
	"github.com/jetsetilly/gopherboy/test"
)

func makeCartridge(t *testing.T, title string, ctype uint8) (cartridgeloader.Loader, cartridge.Header) {
	t.Helper()

	data := make([]uint8, 0x8000)
	copy(data[0x0104:], cartridge.Logo[:])
	copy(data[0x0134:], title)
	data[0x0147] = ctype
	data[0x014d] = cartridge.HeaderChecksum(data)

	cartload := cartridgeloader.Loader{Filename: strings.ToLower(title) + ".gb", Data: data}
	test.DemandSuccess(t, cartload.Load())

	hdr, err := cartridge.ParseHeader(cartload.Data, true)
	test.DemandSuccess(t, err)

	return cartload, hdr
}

func open(t *testing.T) *catalog.Catalog {
	t.Helper()
	cat, err := catalog.Open(filepath.Join(t.TempDir(), "sub", catalog.DefaultFile))
	test.DemandSuccess(t, err)
	t.Cleanup(func() { cat.Close() })
	return cat
}

func TestAddAndFind(t *testing.T) {
	cat := open(t)

	cartload, hdr := makeCartridge(t, "ZELDA", 0x01)
	test.DemandSuccess(t, cat.Add(cartload, hdr))

	e, err := cat.Find(cartload.Hash)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, e.Title, "ZELDA")
	test.ExpectEquality(t, e.Type, "MBC1")
	test.ExpectEquality(t, e.Banks, 2)
	test.ExpectEquality(t, e.RAM, 0)
	test.ExpectEquality(t, e.Region, "Japanese")
	test.ExpectEquality(t, e.Filename, "zelda.gb")
	test.ExpectSuccess(t, !e.Added.IsZero())

	_, err = cat.Find("0000")
	test.ExpectSuccess(t, curated.Is(err, catalog.NotFound))
}

func TestUpsert(t *testing.T) {
	cat := open(t)

	cartload, hdr := makeCartridge(t, "TETRIS", 0x00)
	test.DemandSuccess(t, cat.Add(cartload, hdr))

	// same data under a different filename updates the existing record
	cartload.Filename = "renamed.gb"
	test.DemandSuccess(t, cat.Add(cartload, hdr))

	entries, err := cat.List()
	test.DemandSuccess(t, err)
	test.DemandEquality(t, len(entries), 1)
	test.ExpectEquality(t, entries[0].Filename, "renamed.gb")
}

func TestList(t *testing.T) {
	cat := open(t)

	for _, title := range []string{"WARIO", "ALLEYWAY", "MARIO"} {
		cartload, hdr := makeCartridge(t, title, 0x00)
		test.DemandSuccess(t, cat.Add(cartload, hdr))
	}

	entries, err := cat.List()
	test.DemandSuccess(t, err)
	test.DemandEquality(t, len(entries), 3)
	test.ExpectEquality(t, entries[0].Title, "ALLEYWAY")
	test.ExpectEquality(t, entries[1].Title, "MARIO")
	test.ExpectEquality(t, entries[2].Title, "WARIO")

	out := &strings.Builder{}
	test.DemandSuccess(t, catalog.Write(out, entries))
	test.ExpectSuccess(t, strings.Contains(out.String(), "ALLEYWAY"))
	test.ExpectSuccess(t, strings.Contains(out.String(), "ROM ONLY"))
}

func TestRemove(t *testing.T) {
	cat := open(t)

	cartload, hdr := makeCartridge(t, "KIRBY", 0x00)
	test.DemandSuccess(t, cat.Add(cartload, hdr))
	test.DemandSuccess(t, cat.Remove(cartload.Hash))

	entries, err := cat.List()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, len(entries), 0)

	test.ExpectSuccess(t, curated.Is(cat.Remove(cartload.Hash), catalog.NotFound))
}

func TestNoHash(t *testing.T) {
	cat := open(t)

	_, hdr := makeCartridge(t, "KIRBY", 0x00)
	err := cat.Add(cartridgeloader.Loader{Filename: "kirby.gb"}, hdr)
	test.ExpectSuccess(t, curated.Is(err, catalog.NoHash))
}

func TestReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), catalog.DefaultFile)

	cat, err := catalog.Open(path)
	test.DemandSuccess(t, err)
	cartload, hdr := makeCartridge(t, "METROID", 0x00)
	test.DemandSuccess(t, cat.Add(cartload, hdr))
	test.DemandSuccess(t, cat.Close())

	cat, err = catalog.Open(path)
	test.DemandSuccess(t, err)
	defer cat.Close()

	e, err := cat.Find(cartload.Hash)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, e.Title, "METROID")
	test.ExpectEquality(t, cat.Path(), path)
}
