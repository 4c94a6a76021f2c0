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

package registers

import (
	"fmt"
)

// Register is an 8 bit register.
type Register struct {
	label string
	value uint8
}

// NewRegister is the preferred method of initialisation for Register.
func NewRegister(val uint8, label string) Register {
	return Register{
		label: label,
		value: val,
	}
}

// Label returns the register's label.
func (r Register) Label() string {
	return r.label
}

func (r Register) String() string {
	return fmt.Sprintf("%02x", r.value)
}

// Value returns the current value of the register.
func (r Register) Value() uint8 {
	return r.value
}

// IsZero returns true if register is zero.
func (r Register) IsZero() bool {
	return r.value == 0
}

// Load value into register.
func (r *Register) Load(val uint8) {
	r.value = val
}

// Add value to register. The carry argument is added too. Returns the carry
// and half-carry results.
func (r *Register) Add(val uint8, carry bool) (bool, bool) {
	c := uint8(0)
	if carry {
		c = 1
	}

	half := (r.value&0x0f)+(val&0x0f)+c > 0x0f
	sum := uint16(r.value) + uint16(val) + uint16(c)
	r.value = uint8(sum)

	return sum > 0xff, half
}

// Subtract value from register. The carry argument is subtracted too. Returns
// the borrow and half-borrow results, which are stored in the carry and
// half-carry flags by the CPU.
func (r *Register) Subtract(val uint8, carry bool) (bool, bool) {
	c := 0
	if carry {
		c = 1
	}

	half := int(r.value&0x0f)-int(val&0x0f)-c < 0
	diff := int(r.value) - int(val) - c
	r.value = uint8(diff)

	return diff < 0, half
}

// Compare value with register. The register is not changed. Returns the zero,
// borrow and half-borrow results.
func (r Register) Compare(val uint8) (bool, bool, bool) {
	carry, half := r.Subtract(val, false)
	return r.value == 0, carry, half
}

// Increment register by one. Returns the half-carry result.
func (r *Register) Increment() bool {
	half := r.value&0x0f == 0x0f
	r.value++
	return half
}

// Decrement register by one. Returns the half-borrow result.
func (r *Register) Decrement() bool {
	half := r.value&0x0f == 0x00
	r.value--
	return half
}

// AND value with register.
func (r *Register) AND(val uint8) {
	r.value &= val
}

// OR value with register.
func (r *Register) OR(val uint8) {
	r.value |= val
}

// XOR value with register.
func (r *Register) XOR(val uint8) {
	r.value ^= val
}

// RLC rotates the register left. Bit 7 is moved to bit 0 and is returned as
// the carry.
func (r *Register) RLC() bool {
	carry := r.value&0x80 == 0x80
	r.value = r.value<<1 | r.value>>7
	return carry
}

// RRC rotates the register right. Bit 0 is moved to bit 7 and is returned as
// the carry.
func (r *Register) RRC() bool {
	carry := r.value&0x01 == 0x01
	r.value = r.value>>1 | r.value<<7
	return carry
}

// RL rotates the register left through the carry.
func (r *Register) RL(carry bool) bool {
	c := r.value&0x80 == 0x80
	r.value <<= 1
	if carry {
		r.value |= 0x01
	}
	return c
}

// RR rotates the register right through the carry.
func (r *Register) RR(carry bool) bool {
	c := r.value&0x01 == 0x01
	r.value >>= 1
	if carry {
		r.value |= 0x80
	}
	return c
}

// SLA shifts the register left. Bit 0 is cleared.
func (r *Register) SLA() bool {
	carry := r.value&0x80 == 0x80
	r.value <<= 1
	return carry
}

// SRA shifts the register right. Bit 7 is unchanged.
func (r *Register) SRA() bool {
	carry := r.value&0x01 == 0x01
	r.value = r.value>>1 | r.value&0x80
	return carry
}

// SRL shifts the register right. Bit 7 is cleared.
func (r *Register) SRL() bool {
	carry := r.value&0x01 == 0x01
	r.value >>= 1
	return carry
}

// Swap the upper and lower nibbles of the register.
func (r *Register) Swap() {
	r.value = r.value<<4 | r.value>>4
}

// Bit returns true if the numbered bit is set.
func (r Register) Bit(n int) bool {
	return r.value&(0x01<<n) != 0
}

// SetBit sets the numbered bit.
func (r *Register) SetBit(n int) {
	r.value |= 0x01 << n
}

// ResetBit clears the numbered bit.
func (r *Register) ResetBit(n int) {
	r.value &^= 0x01 << n
}
