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

package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/gopherboy/hardware/memory/cartridge"
	"github.com/jetsetilly/gopherboy/test"
)

// writes 'O' and 'K' to the serial port and stops.
var serialProgram = []uint8{
	0x3e, 'O', // LD A,'O'
	0xcd, 0x00, 0x02, // CALL $0200
	0x3e, 'K', // LD A,'K'
	0xcd, 0x00, 0x02, // CALL $0200
	0x10, 0x00, // STOP
}

var serialSubroutine = []uint8{
	0xe0, 0x01, // LDH ($01),A
	0x3e, 0x81, // LD A,$81
	0xe0, 0x02, // LDH ($02),A
	0xf0, 0x02, // LDH A,($02)
	0xcb, 0x7f, // BIT 7,A
	0x20, 0xfa, // JR NZ,-6
	0xc9, // RET
}

// prepare a working directory with a local resource directory and write a
// ROM ONLY cartridge into it. returns the path to the cartridge.
func prepare(t *testing.T, title string) string {
	t.Helper()

	dir := t.TempDir()
	t.Chdir(dir)
	test.DemandSuccess(t, os.Mkdir(".gopherboy", 0o700))

	data := make([]uint8, 0x8000)
	copy(data[0x0100:], []uint8{0x00, 0xc3, 0x50, 0x01})
	copy(data[0x0104:], cartridge.Logo[:])
	copy(data[0x0134:], title)
	data[0x014d] = cartridge.HeaderChecksum(data)
	copy(data[0x0150:], serialProgram)
	copy(data[0x0200:], serialSubroutine)

	fn := filepath.Join(dir, strings.ToLower(title)+".gb")
	test.DemandSuccess(t, os.WriteFile(fn, data, 0o600))

	return fn
}

func launchOutput(t *testing.T, args ...string) (int, string) {
	t.Helper()
	out := &strings.Builder{}
	status := launch(args, out)
	return status, out.String()
}

func TestVersion(t *testing.T) {
	status, out := launchOutput(t, "VERSION")
	test.ExpectEquality(t, status, 0)
	test.ExpectSuccess(t, strings.HasPrefix(out, "Gopherboy "))
}

func TestRun(t *testing.T) {
	rom := prepare(t, "SERIAL")

	status, out := launchOutput(t, "RUN", rom)
	test.ExpectEquality(t, status, 0)
	test.ExpectSuccess(t, strings.HasPrefix(out, "OK\n"))
	test.ExpectSuccess(t, strings.Contains(out, "frames"))

	// RUN is the default mode
	status, out = launchOutput(t, "-frames", "1", rom)
	test.ExpectEquality(t, status, 0)
	test.ExpectSuccess(t, strings.HasPrefix(out, "OK\n"))

	status, out = launchOutput(t, "RUN", "-serial=false", rom)
	test.ExpectEquality(t, status, 0)
	test.ExpectFailure(t, strings.Contains(out, "OK"))
}

func TestRunErrors(t *testing.T) {
	prepare(t, "ERRORS")

	status, out := launchOutput(t, "RUN")
	test.ExpectEquality(t, status, errorStatus)
	test.ExpectSuccess(t, strings.HasPrefix(out, "* error in RUN mode: "))

	status, out = launchOutput(t, "RUN", "missing.gb")
	test.ExpectEquality(t, status, errorStatus)
	test.ExpectSuccess(t, strings.HasPrefix(out, "* error in RUN mode: "))
}

func TestDisasm(t *testing.T) {
	rom := prepare(t, "DISASM")

	status, out := launchOutput(t, "DISASM", rom)
	test.ExpectEquality(t, status, 0)
	test.ExpectSuccess(t, strings.HasPrefix(out, "; DISASM\n"))
	test.ExpectSuccess(t, strings.Contains(out, "; Type: ROM ONLY\n"))
	test.ExpectSuccess(t, strings.Contains(out, "0150  LD A,$4F\n"))
	test.ExpectSuccess(t, strings.Contains(out, "; bank 1\n"))

	status, out = launchOutput(t, "DISASM", "-bank", "0", rom)
	test.ExpectEquality(t, status, 0)
	test.ExpectFailure(t, strings.Contains(out, "; bank 1\n"))

	status, out = launchOutput(t, "DISASM", "-trace", rom)
	test.ExpectEquality(t, status, 0)
	test.ExpectSuccess(t, strings.Contains(out, "0152  CALL $0200\n"))
	test.ExpectSuccess(t, strings.HasSuffix(out, "STOP\n"))

	status, out = launchOutput(t, "DISASM", "-trace", "-limit", "3", rom)
	test.ExpectEquality(t, status, 0)
	test.ExpectSuccess(t, strings.HasSuffix(out, "0150  LD A,$4F\n"))
}

func TestCartInfo(t *testing.T) {
	rom := prepare(t, "CARTINFO")

	status, out := launchOutput(t, "CARTINFO", rom)
	test.ExpectEquality(t, status, 0)
	test.ExpectSuccess(t, strings.Contains(out, "CARTINFO"))
	test.ExpectSuccess(t, strings.Contains(out, "ROM ONLY"))
	test.ExpectSuccess(t, strings.Contains(out, "Japanese"))
}

func TestOpcodes(t *testing.T) {
	status, out := launchOutput(t, "OPCODES", "-plain")
	test.ExpectEquality(t, status, 0)
	test.ExpectSuccess(t, strings.Contains(out, "LD B,d8"))

	status, out = launchOutput(t, "OPCODES", "-plain", "-prefixed")
	test.ExpectEquality(t, status, 0)
	test.ExpectSuccess(t, strings.Contains(out, "SWAP A"))

	status, _ = launchOutput(t, "OPCODES", "extra")
	test.ExpectEquality(t, status, errorStatus)
}

func TestCatalog(t *testing.T) {
	rom := prepare(t, "CATALOG")
	db := filepath.Join(t.TempDir(), "catalog.db")

	status, out := launchOutput(t, "CATALOG", "-db", db, "LIST")
	test.ExpectEquality(t, status, 0)
	test.ExpectEquality(t, out, "catalog is empty\n")

	status, out = launchOutput(t, "CATALOG", "-db", db, "ADD", rom)
	test.ExpectEquality(t, status, 0)
	test.ExpectEquality(t, out, "added catalog\n")

	status, out = launchOutput(t, "CATALOG", "-db", db)
	test.ExpectEquality(t, status, 0)
	test.ExpectSuccess(t, strings.Contains(out, "CATALOG"))

	status, out = launchOutput(t, "CATALOG", "-db", db, "ADD", "missing.gb")
	test.ExpectEquality(t, status, errorStatus)
	test.ExpectSuccess(t, strings.Contains(out, "* error in CATALOG/ADD mode: "))

	status, out = launchOutput(t, "CATALOG", "-db", db, "REMOVE", rom)
	test.ExpectEquality(t, status, 0)
	test.ExpectEquality(t, out, "removed CATALOG\n")

	status, out = launchOutput(t, "CATALOG", "-db", db, "REMOVE", rom)
	test.ExpectEquality(t, status, errorStatus)
	test.ExpectSuccess(t, strings.Contains(out, "* error in CATALOG/REMOVE mode: catalog: cartridge not found"))
}
