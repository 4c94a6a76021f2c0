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

package lcd

import (
	"fmt"

	"github.com/jetsetilly/gopherboy/hardware/memory/addresses"
	"github.com/jetsetilly/gopherboy/hardware/memory/cpubus"
)

// Timing constants in clock cycles.
const (
	CyclesPerLine  = 456
	LinesPerFrame  = 154
	VisibleLines   = 144
	CyclesPerFrame = CyclesPerLine * LinesPerFrame

	oamCycles      = 80
	transferCycles = 172
)

// Mode is the value of the lower two bits of the STAT register.
type Mode uint8

// List of valid Mode values.
const (
	HBlank Mode = iota
	VBlank
	OAMSearch
	PixelTransfer
)

func (m Mode) String() string {
	switch m {
	case HBlank:
		return "HBlank"
	case VBlank:
		return "VBlank"
	case OAMSearch:
		return "OAM"
	case PixelTransfer:
		return "Transfer"
	}
	return "unknown"
}

// STAT register bits.
const (
	statCoincidence    = 0x04
	statHBlankIRQ      = 0x08
	statVBlankIRQ      = 0x10
	statOAMIRQ         = 0x20
	statCoincidenceIRQ = 0x40
	statWritable       = 0x78
)

// LCDC bit that switches the LCD on.
const lcdcEnable = 0x80

// LCD implements the timing of the video hardware.
type LCD struct {
	irq cpubus.InterruptRequester

	LCDC uint8
	STAT uint8
	SCY  uint8
	SCX  uint8
	LY   uint8
	LYC  uint8
	BGP  uint8
	OBP0 uint8
	OBP1 uint8
	WY   uint8
	WX   uint8

	// clock cycle within the current scanline. when the LCD is off it is the
	// clock cycle within the current frame
	Dot int

	// number of frames since reset
	Frame int
}

// NewLCD is the preferred method of initialisation of the LCD type.
func NewLCD(irq cpubus.InterruptRequester) *LCD {
	return &LCD{irq: irq}
}

func (lcd *LCD) String() string {
	return fmt.Sprintf("LY=%d LYC=%d mode=%s frame=%d", lcd.LY, lcd.LYC, lcd.Mode(), lcd.Frame)
}

// Reset the LCD registers. The frame counter is also reset.
func (lcd *LCD) Reset() {
	*lcd = LCD{irq: lcd.irq}
}

// Enabled returns true if the LCD is switched on.
func (lcd *LCD) Enabled() bool {
	return lcd.LCDC&lcdcEnable == lcdcEnable
}

// Mode returns the current STAT mode.
func (lcd *LCD) Mode() Mode {
	return Mode(lcd.STAT & 0x03)
}

func (lcd *LCD) modeForDot() Mode {
	switch {
	case lcd.LY >= VisibleLines:
		return VBlank
	case lcd.Dot < oamCycles:
		return OAMSearch
	case lcd.Dot < oamCycles+transferCycles:
		return PixelTransfer
	}
	return HBlank
}

func (lcd *LCD) setMode(m Mode) {
	if lcd.Mode() == m {
		return
	}
	lcd.STAT = lcd.STAT&^0x03 | uint8(m)

	var request bool
	switch m {
	case HBlank:
		request = lcd.STAT&statHBlankIRQ != 0
	case VBlank:
		request = lcd.STAT&statVBlankIRQ != 0
		lcd.irq.RequestInterrupt(cpubus.VBlank)
		lcd.Frame++
	case OAMSearch:
		request = lcd.STAT&statOAMIRQ != 0
	}
	if request {
		lcd.irq.RequestInterrupt(cpubus.LCDStat)
	}
}

// compare LY with LYC and request the STAT interrupt on the rising edge of
// the coincidence flag.
func (lcd *LCD) compare() {
	if lcd.LY != lcd.LYC {
		lcd.STAT &^= statCoincidence
		return
	}
	if lcd.STAT&statCoincidence == 0 {
		lcd.STAT |= statCoincidence
		if lcd.STAT&statCoincidenceIRQ != 0 {
			lcd.irq.RequestInterrupt(cpubus.LCDStat)
		}
	}
}

// Step the LCD forward by the number of clock cycles.
func (lcd *LCD) Step(cycles int) {
	if !lcd.Enabled() {
		lcd.Dot += cycles
		for lcd.Dot >= CyclesPerFrame {
			lcd.Dot -= CyclesPerFrame
			lcd.Frame++
		}
		return
	}

	lcd.Dot += cycles
	for lcd.Dot >= CyclesPerLine {
		lcd.Dot -= CyclesPerLine
		lcd.LY++
		if lcd.LY >= LinesPerFrame {
			lcd.LY = 0
		}
		lcd.compare()
	}
	lcd.setMode(lcd.modeForDot())
}

// Registers implements the chipbus.Device interface.
func (lcd *LCD) Registers() []uint16 {
	return []uint16{
		addresses.LCDC, addresses.STAT, addresses.SCY, addresses.SCX,
		addresses.LY, addresses.LYC, addresses.BGP, addresses.OBP0,
		addresses.OBP1, addresses.WY, addresses.WX,
	}
}

// ReadRegister implements the chipbus.Device interface.
func (lcd *LCD) ReadRegister(address uint16) uint8 {
	switch address {
	case addresses.LCDC:
		return lcd.LCDC
	case addresses.STAT:
		return lcd.STAT | 0x80
	case addresses.SCY:
		return lcd.SCY
	case addresses.SCX:
		return lcd.SCX
	case addresses.LY:
		return lcd.LY
	case addresses.LYC:
		return lcd.LYC
	case addresses.BGP:
		return lcd.BGP
	case addresses.OBP0:
		return lcd.OBP0
	case addresses.OBP1:
		return lcd.OBP1
	case addresses.WY:
		return lcd.WY
	case addresses.WX:
		return lcd.WX
	}
	return 0xff
}

// WriteRegister implements the chipbus.Device interface. LY is read-only.
func (lcd *LCD) WriteRegister(address uint16, data uint8) {
	switch address {
	case addresses.LCDC:
		lcd.writeLCDC(data)
	case addresses.STAT:
		lcd.STAT = lcd.STAT&^statWritable | data&statWritable
	case addresses.SCY:
		lcd.SCY = data
	case addresses.SCX:
		lcd.SCX = data
	case addresses.LYC:
		lcd.LYC = data
		if lcd.Enabled() {
			lcd.compare()
		}
	case addresses.BGP:
		lcd.BGP = data
	case addresses.OBP0:
		lcd.OBP0 = data
	case addresses.OBP1:
		lcd.OBP1 = data
	case addresses.WY:
		lcd.WY = data
	case addresses.WX:
		lcd.WX = data
	}
}

func (lcd *LCD) writeLCDC(data uint8) {
	was := lcd.Enabled()
	lcd.LCDC = data

	switch {
	case was && !lcd.Enabled():
		lcd.LY = 0
		lcd.Dot = 0
		lcd.STAT &^= 0x03 | statCoincidence
	case !was && lcd.Enabled():
		lcd.LY = 0
		lcd.Dot = 0
		lcd.STAT = lcd.STAT&^0x03 | uint8(OAMSearch)
		lcd.STAT &^= statCoincidence
		lcd.compare()
	}
}
