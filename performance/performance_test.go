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

package performance

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/jetsetilly/gopherboy/cartridgeloader"
	"github.com/jetsetilly/gopherboy/curated"
	"github.com/jetsetilly/gopherboy/hardware/memory/cartridge"
	"github.com/jetsetilly/gopherboy/test"
)

// a cartridge that loops forever.
func loopROM() cartridgeloader.Loader {
	data := make([]uint8, 0x8000)
	copy(data[0x0100:], []uint8{0x00, 0xc3, 0x50, 0x01})
	copy(data[0x0104:], cartridge.Logo[:])
	copy(data[0x0134:], "PERF")
	data[0x014d] = cartridge.HeaderChecksum(data)
	copy(data[0x0150:], []uint8{0x18, 0xfe})
	return cartridgeloader.Loader{Filename: "perf.gb", Data: data}
}

func TestCalcFPS(t *testing.T) {
	fps, accuracy := CalcFPS(600, 10)
	test.ExpectApproximate(t, fps, 60.0, 0.0001)
	test.ExpectApproximate(t, accuracy, 100.457, 0.001)

	fps, accuracy = CalcFPS(100, 0)
	test.ExpectEquality(t, fps, 0.0)
	test.ExpectEquality(t, accuracy, 0.0)
}

func TestParseProfileString(t *testing.T) {
	p, err := ParseProfileString("cpu,mem")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, ProfileCPU|ProfileMem)
	test.ExpectEquality(t, p.String(), "CPU,MEM")

	p, err = ParseProfileString("none")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, ProfileNone)
	test.ExpectEquality(t, p.String(), "NONE")

	p, err = ParseProfileString("ALL")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p.String(), "ALL")

	_, err = ParseProfileString("cpu,disk")
	test.ExpectFailure(t, err)
}

func TestRunProfiler(t *testing.T) {
	t.Chdir(t.TempDir())

	ran := false
	err := RunProfiler(ProfileCPU|ProfileMem, "test", func() error {
		ran = true
		return nil
	})
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, ran)

	_, err = os.Stat(filepath.Join(".", "test_cpu.profile"))
	test.ExpectSuccess(t, err)
	_, err = os.Stat(filepath.Join(".", "test_mem.profile"))
	test.ExpectSuccess(t, err)
	_, err = os.Stat(filepath.Join(".", "test_trace.profile"))
	test.ExpectFailure(t, err)

	// errors from the run function are returned unchanged
	err = RunProfiler(ProfileNone, "test", func() error {
		return curated.Errorf("run failed")
	})
	test.ExpectSuccess(t, curated.Is(err, "run failed"))
}

func TestCheck(t *testing.T) {
	leadTime = 10 * time.Millisecond

	out := &strings.Builder{}
	r, err := Check(out, ProfileNone, loopROM(), true, "100ms")
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, r.Frames > 0)
	test.ExpectSuccess(t, r.FPS > 0)
	test.ExpectSuccess(t, strings.Contains(out.String(), "fps"))

	_, err = Check(out, ProfileNone, loopROM(), true, "soon")
	test.ExpectFailure(t, err)
}
