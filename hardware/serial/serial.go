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

package serial

import (
	"fmt"
	"io"

	"github.com/jetsetilly/gopherboy/hardware/memory/addresses"
	"github.com/jetsetilly/gopherboy/hardware/memory/cpubus"
	"github.com/jetsetilly/gopherboy/logger"
)

// TransferCycles is the number of clock cycles taken to transfer one byte
// with the internal clock (8192Hz).
const TransferCycles = 4096

// SC register bits.
const (
	scStart    = 0x80
	scInternal = 0x01
)

// Serial implements the serial port peripheral.
type Serial struct {
	irq cpubus.InterruptRequester

	SB uint8
	SC uint8

	// number of cycles until the current transfer is complete. zero if there
	// is no transfer in progress
	remaining int

	output []byte

	// optional writer that receives every transferred byte
	echo io.Writer
}

// NewSerial is the preferred method of initialisation of the Serial type.
func NewSerial(irq cpubus.InterruptRequester) *Serial {
	return &Serial{irq: irq}
}

func (ser *Serial) String() string {
	return fmt.Sprintf("SB=%02x SC=%02x", ser.SB, ser.SC)
}

// Reset the serial port. Output already collected is discarded.
func (ser *Serial) Reset() {
	ser.SB = 0
	ser.SC = 0
	ser.remaining = 0
	ser.output = nil
}

// SetEcho sets an io.Writer that receives every transferred byte as it is
// transferred. A nil value stops the echo.
func (ser *Serial) SetEcho(w io.Writer) {
	ser.echo = w
}

// Output returns all the bytes transferred since the last reset. The returned
// slice is not modified by a later reset.
func (ser *Serial) Output() []byte {
	return ser.output
}

// Transferring returns true if a transfer is in progress.
func (ser *Serial) Transferring() bool {
	return ser.remaining > 0
}

// Step the serial port forward by the number of clock cycles.
func (ser *Serial) Step(cycles int) {
	if ser.remaining == 0 {
		return
	}

	ser.remaining -= cycles
	if ser.remaining > 0 {
		return
	}
	ser.remaining = 0

	ser.output = append(ser.output, ser.SB)
	if ser.echo != nil {
		if _, err := ser.echo.Write([]byte{ser.SB}); err != nil {
			logger.Logf(logger.Allow, "serial", "echo: %v", err)
		}
	}

	// nothing is connected to the other end of the link
	ser.SB = 0xff
	ser.SC &^= scStart
	ser.irq.RequestInterrupt(cpubus.Serial)
}

// Registers implements the chipbus.Device interface.
func (ser *Serial) Registers() []uint16 {
	return []uint16{addresses.SB, addresses.SC}
}

// ReadRegister implements the chipbus.Device interface.
func (ser *Serial) ReadRegister(address uint16) uint8 {
	switch address {
	case addresses.SB:
		return ser.SB
	case addresses.SC:
		return ser.SC | 0x7e
	}
	return 0xff
}

// WriteRegister implements the chipbus.Device interface.
func (ser *Serial) WriteRegister(address uint16, data uint8) {
	switch address {
	case addresses.SB:
		ser.SB = data
	case addresses.SC:
		ser.SC = data & (scStart | scInternal)
		if ser.SC == scStart|scInternal {
			ser.remaining = TransferCycles
		} else {
			ser.remaining = 0
		}
	}
}
