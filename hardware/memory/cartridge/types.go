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

package cartridge

import "fmt"

// Type is the cartridge type byte found in the header.
type Type uint8

// capability flags for each cartridge type.
const (
	capRAM = 1 << iota
	capBattery
	capTimer
	capRumble
)

// the memory bank controller used by a cartridge type.
type controller int

const (
	ctrlNone controller = iota
	ctrlMBC1
	ctrlMBC2
	ctrlMMM01
	ctrlMBC3
	ctrlMBC4
	ctrlMBC5
	ctrlCamera
	ctrlTAMA5
	ctrlHuC3
	ctrlHuC1
)

type typeInfo struct {
	name string
	ctrl controller
	caps int
}

var types = map[Type]typeInfo{
	0x00: {"ROM ONLY", ctrlNone, 0},
	0x01: {"MBC1", ctrlMBC1, 0},
	0x02: {"MBC1+RAM", ctrlMBC1, capRAM},
	0x03: {"MBC1+RAM+BATTERY", ctrlMBC1, capRAM | capBattery},
	0x05: {"MBC2", ctrlMBC2, 0},
	0x06: {"MBC2+BATTERY", ctrlMBC2, capBattery},
	0x08: {"ROM+RAM", ctrlNone, capRAM},
	0x09: {"ROM+RAM+BATTERY", ctrlNone, capRAM | capBattery},
	0x0b: {"MMM01", ctrlMMM01, 0},
	0x0c: {"MMM01+RAM", ctrlMMM01, capRAM},
	0x0d: {"MMM01+RAM+BATTERY", ctrlMMM01, capRAM | capBattery},
	0x0f: {"MBC3+TIMER+BATTERY", ctrlMBC3, capTimer | capBattery},
	0x10: {"MBC3+TIMER+RAM+BATTERY", ctrlMBC3, capTimer | capRAM | capBattery},
	0x11: {"MBC3", ctrlMBC3, 0},
	0x12: {"MBC3+RAM", ctrlMBC3, capRAM},
	0x13: {"MBC3+RAM+BATTERY", ctrlMBC3, capRAM | capBattery},
	0x15: {"MBC4", ctrlMBC4, 0},
	0x16: {"MBC4+RAM", ctrlMBC4, capRAM},
	0x17: {"MBC4+RAM+BATTERY", ctrlMBC4, capRAM | capBattery},
	0x19: {"MBC5", ctrlMBC5, 0},
	0x1a: {"MBC5+RAM", ctrlMBC5, capRAM},
	0x1b: {"MBC5+RAM+BATTERY", ctrlMBC5, capRAM | capBattery},
	0x1c: {"MBC5+RUMBLE", ctrlMBC5, capRumble},
	0x1d: {"MBC5+RUMBLE+RAM", ctrlMBC5, capRumble | capRAM},
	0x1e: {"MBC5+RUMBLE+RAM+BATTERY", ctrlMBC5, capRumble | capRAM | capBattery},
	0xfc: {"POCKET CAMERA", ctrlCamera, 0},
	0xfd: {"BANDAI TAMA5", ctrlTAMA5, 0},
	0xfe: {"HuC3", ctrlHuC3, 0},
	0xff: {"HuC1+RAM+BATTERY", ctrlHuC1, capRAM | capBattery},
}

// IsValid returns true if the type is a known cartridge type.
func (t Type) IsValid() bool {
	_, ok := types[t]
	return ok
}

func (t Type) String() string {
	if info, ok := types[t]; ok {
		return info.name
	}
	return fmt.Sprintf("unknown (%#02x)", uint8(t))
}

func (t Type) has(c int) bool {
	return types[t].caps&c == c
}

// HasRAM returns true if the cartridge contains external RAM.
func (t Type) HasRAM() bool {
	return t.has(capRAM)
}

// HasBattery returns true if the cartridge RAM is battery backed.
func (t Type) HasBattery() bool {
	return t.has(capBattery)
}

// HasTimer returns true if the cartridge contains a real-time clock.
func (t Type) HasTimer() bool {
	return t.has(capTimer)
}

// HasRumble returns true if the cartridge contains a rumble motor.
func (t Type) HasRumble() bool {
	return t.has(capRumble)
}

// IsSupported returns true if there is a mapper for the cartridge type.
func (t Type) IsSupported() bool {
	switch types[t].ctrl {
	case ctrlNone, ctrlMBC1, ctrlMBC2, ctrlMBC3, ctrlMBC5:
		return t.IsValid()
	}
	return false
}
