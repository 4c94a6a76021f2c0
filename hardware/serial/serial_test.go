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

package serial_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/jetsetilly/gopherboy/hardware/memory/addresses"
	"github.com/jetsetilly/gopherboy/hardware/memory/cpubus"
	"github.com/jetsetilly/gopherboy/hardware/serial"
	"github.com/jetsetilly/gopherboy/logger"
	"github.com/jetsetilly/gopherboy/test"
)

type mockIRQ struct {
	requests []cpubus.Interrupt
}

func (irq *mockIRQ) RequestInterrupt(i cpubus.Interrupt) {
	irq.requests = append(irq.requests, i)
}

func TestTransfer(t *testing.T) {
	irq := &mockIRQ{}
	ser := serial.NewSerial(irq)

	echo := &test.CompareWriter{}
	ser.SetEcho(echo)

	ser.WriteRegister(addresses.SB, 'P')
	ser.WriteRegister(addresses.SC, 0x81)
	test.ExpectSuccess(t, ser.Transferring())
	test.ExpectEquality(t, ser.ReadRegister(addresses.SC), 0xff)

	ser.Step(serial.TransferCycles - 4)
	test.ExpectSuccess(t, ser.Transferring())
	test.ExpectEquality(t, len(irq.requests), 0)

	ser.Step(4)
	test.ExpectFailure(t, ser.Transferring())
	test.ExpectEquality(t, ser.ReadRegister(addresses.SB), 0xff)
	test.ExpectEquality(t, ser.ReadRegister(addresses.SC), 0x7f)
	test.DemandEquality(t, len(irq.requests), 1)
	test.ExpectEquality(t, irq.requests[0], cpubus.Serial)
	test.ExpectEquality(t, string(ser.Output()), "P")
	test.ExpectSuccess(t, echo.Compare("P"))
}

func TestExternalClock(t *testing.T) {
	irq := &mockIRQ{}
	ser := serial.NewSerial(irq)

	// no transfer without the internal clock
	ser.WriteRegister(addresses.SB, 'X')
	ser.WriteRegister(addresses.SC, 0x80)
	ser.Step(serial.TransferCycles * 2)
	test.ExpectFailure(t, ser.Transferring())
	test.ExpectEquality(t, len(ser.Output()), 0)
	test.ExpectEquality(t, len(irq.requests), 0)
}

func TestReset(t *testing.T) {
	ser := serial.NewSerial(&mockIRQ{})
	ser.WriteRegister(addresses.SB, 'A')
	ser.WriteRegister(addresses.SC, 0x81)
	ser.Step(serial.TransferCycles)
	test.ExpectEquality(t, len(ser.Output()), 1)

	before := ser.Output()
	ser.Reset()
	test.ExpectEquality(t, len(ser.Output()), 0)

	// output collected before the reset is not overwritten by later transfers
	ser.WriteRegister(addresses.SB, 'B')
	ser.WriteRegister(addresses.SC, 0x81)
	ser.Step(serial.TransferCycles)
	test.ExpectEquality(t, string(before), "A")
	test.ExpectEquality(t, string(ser.Output()), "B")
}

type brokenWriter struct{}

func (brokenWriter) Write([]byte) (int, error) {
	return 0, errors.New("broken pipe")
}

func TestEchoError(t *testing.T) {
	logger.Clear()

	ser := serial.NewSerial(&mockIRQ{})
	ser.SetEcho(brokenWriter{})
	ser.WriteRegister(addresses.SB, 'E')
	ser.WriteRegister(addresses.SC, 0x81)
	ser.Step(serial.TransferCycles)

	// the transfer completes and the echo failure is logged
	test.ExpectEquality(t, string(ser.Output()), "E")

	tw := &test.CompareWriter{}
	logger.Write(tw)
	test.ExpectSuccess(t, strings.Contains(tw.String(), "serial: echo: broken pipe"))
}
