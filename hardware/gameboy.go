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

package hardware

import (
	"fmt"

	"github.com/jetsetilly/gopherboy/cartridgeloader"
	"github.com/jetsetilly/gopherboy/curated"
	"github.com/jetsetilly/gopherboy/hardware/clocks"
	"github.com/jetsetilly/gopherboy/hardware/cpu"
	"github.com/jetsetilly/gopherboy/hardware/lcd"
	"github.com/jetsetilly/gopherboy/hardware/memory"
	"github.com/jetsetilly/gopherboy/hardware/memory/addresses"
	"github.com/jetsetilly/gopherboy/hardware/memory/cartridge"
	"github.com/jetsetilly/gopherboy/hardware/preferences"
	"github.com/jetsetilly/gopherboy/hardware/serial"
	"github.com/jetsetilly/gopherboy/hardware/timer"
	"github.com/jetsetilly/gopherboy/logger"
)

// Sentinal error patterns.
const (
	NotReady = "gameboy: not ready: %s"
)

// EntryPoint is the address at which execution of the cartridge begins.
const EntryPoint = 0x0100

// GameBoy is the root of the emulation.
type GameBoy struct {
	Prefs *preferences.Preferences

	CPU    *cpu.CPU
	Mem    *memory.Memory
	Timer  *timer.Timer
	Serial *serial.Serial
	LCD    *lcd.LCD

	// whether the emulation is allowed to create log entries
	Logging bool
}

// NewGameBoy creates a new GameBoy and everything associated with the
// hardware. It is used for all aspects of emulation: debugging sessions,
// disassembly traces and regular play.
//
// If prefs is nil then the default preferences are used.
func NewGameBoy(prefs *preferences.Preferences) (*GameBoy, error) {
	if prefs == nil {
		prefs = preferences.NewDefaultPreferences()
	}

	gb := &GameBoy{
		Prefs:   prefs,
		Logging: true,
	}

	var err error

	gb.Mem = memory.NewMemory(cartridge.NewCartridge())

	gb.CPU, err = cpu.NewCPU(gb.Mem)
	if err != nil {
		return nil, curated.Errorf("gameboy: %v", err)
	}

	gb.Timer = timer.NewTimer(gb.Mem)
	gb.Serial = serial.NewSerial(gb.Mem)
	gb.LCD = lcd.NewLCD(gb.Mem)

	err = gb.Mem.AttachDevice(gb.Timer)
	if err != nil {
		return nil, curated.Errorf("gameboy: %v", err)
	}
	err = gb.Mem.AttachDevice(gb.Serial)
	if err != nil {
		return nil, curated.Errorf("gameboy: %v", err)
	}
	err = gb.Mem.AttachDevice(gb.LCD)
	if err != nil {
		return nil, curated.Errorf("gameboy: %v", err)
	}

	return gb, nil
}

// AllowLogging implements the logger.Permission interface.
func (gb *GameBoy) AllowLogging() bool {
	return gb.Logging
}

func (gb *GameBoy) String() string {
	return fmt.Sprintf("%s\n%s\n%s\n%s", gb.CPU, gb.Timer, gb.LCD, gb.Serial)
}

// AttachCartridge loads the cartridge and parses the header. The boot check
// preference decides whether the header is validated. The machine is reset
// but not started.
func (gb *GameBoy) AttachCartridge(cartload cartridgeloader.Loader) error {
	err := gb.Mem.Cart.Attach(cartload, gb.Prefs.BootCheck.Get().(bool))
	if err != nil {
		return curated.Errorf("gameboy: %v", err)
	}
	gb.Reset()
	return nil
}

// Reset the CPU, memory and peripherals. The cartridge remains attached.
func (gb *GameBoy) Reset() {
	gb.CPU.Reset()
	gb.Mem.Reset()
	gb.Mem.Cart.Reset()
	gb.Timer.Reset()
	gb.Serial.Reset()
	gb.LCD.Reset()
}

// Start the emulation from the cartridge entry point. If the post-boot
// preference is set then the registers are initialised to the state the boot
// ROM leaves them in.
func (gb *GameBoy) Start() error {
	if gb.Mem.Cart.IsEjected() {
		return curated.Errorf(NotReady, "no cartridge attached")
	}

	gb.Reset()

	if gb.Prefs.PostBoot.Get().(bool) {
		gb.postBoot()
	} else {
		gb.CPU.LoadPC(EntryPoint)
	}

	logger.Logf(gb, "gameboy", "started %s", gb.Mem.Cart.Header.Title)

	return nil
}

// the IO register values left behind by the DMG boot ROM.
var postBootIO = []struct {
	address uint16
	value   uint8
}{
	{addresses.P1, 0xcf},
	{addresses.TIMA, 0x00},
	{addresses.TMA, 0x00},
	{addresses.TAC, 0xf8},
	{0xff10, 0x80},
	{0xff11, 0xbf},
	{0xff12, 0xf3},
	{0xff14, 0xbf},
	{0xff16, 0x3f},
	{0xff19, 0xbf},
	{0xff1a, 0x7f},
	{0xff1b, 0xff},
	{0xff1c, 0x9f},
	{0xff1e, 0xbf},
	{0xff20, 0xff},
	{0xff23, 0xbf},
	{0xff24, 0x77},
	{0xff25, 0xf3},
	{0xff26, 0xf1},
	{addresses.LCDC, 0x91},
	{addresses.SCY, 0x00},
	{addresses.SCX, 0x00},
	{addresses.LYC, 0x00},
	{addresses.BGP, 0xfc},
	{addresses.OBP0, 0xff},
	{addresses.OBP1, 0xff},
	{addresses.WY, 0x00},
	{addresses.WX, 0x00},
	{addresses.IF, 0xe1},
	{addresses.IE, 0x00},
}

// value of the internal timer counter when the boot ROM hands over.
const postBootCounter = 0xabcc

func (gb *GameBoy) postBoot() {
	gb.CPU.PostBoot()
	for _, r := range postBootIO {
		gb.Mem.Poke(r.address, r.value)
	}
	gb.Timer.Counter = postBootCounter
}

// Killed returns true if the CPU has stopped and can not continue.
func (gb *GameBoy) Killed() bool {
	return gb.CPU.Killed()
}

// FrameNum returns the number of frames since the last reset.
func (gb *GameBoy) FrameNum() int {
	return gb.LCD.Frame
}

// Seconds returns the amount of emulated time since the last reset.
func (gb *GameBoy) Seconds() float64 {
	return float64(gb.CPU.Cycles) / clocks.ClockRate
}
