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

import "fmt"

// Wide is a 16 bit register. Used for the stack pointer and program counter.
type Wide struct {
	label string
	value uint16
}

// NewWide is the preferred method of initialisation for the Wide type.
func NewWide(val uint16, label string) Wide {
	return Wide{label: label, value: val}
}

// Label returns the register's label.
func (r Wide) Label() string {
	return r.label
}

func (r Wide) String() string {
	return fmt.Sprintf("%04x", r.value)
}

// Value returns the current value of the register.
func (r Wide) Value() uint16 {
	return r.value
}

// Load value into register.
func (r *Wide) Load(val uint16) {
	r.value = val
}

// Increment register by one, returning the value before the increment.
func (r *Wide) Increment() uint16 {
	v := r.value
	r.value++
	return v
}

// Decrement register by one, returning the value after the decrement.
func (r *Wide) Decrement() uint16 {
	r.value--
	return r.value
}

// AddSigned adds a signed 8 bit offset to the register.
func (r *Wide) AddSigned(offset uint8) {
	r.value = uint16(int32(r.value) + int32(int8(offset)))
}

// Pair returns the 16 bit value formed from two 8 bit values.
func Pair(hi, lo uint8) uint16 {
	return uint16(hi)<<8 | uint16(lo)
}

// Split a 16 bit value into its high and low bytes.
func Split(v uint16) (uint8, uint8) {
	return uint8(v >> 8), uint8(v)
}

// AddWide adds two 16 bit values as the ADD HL,rr instruction does. The half
// carry is from bit 11 and the carry from bit 15.
func AddWide(a, b uint16) (uint16, bool, bool) {
	half := (a&0x0fff)+(b&0x0fff) > 0x0fff
	sum := uint32(a) + uint32(b)
	return uint16(sum), sum > 0xffff, half
}

// AddOffset adds a signed 8 bit offset to a 16 bit value as the ADD SP,r8 and
// LD HL,SP+r8 instructions do. The carry and half-carry results are
// calculated from the unsigned addition of the low byte.
func AddOffset(a uint16, offset uint8) (uint16, bool, bool) {
	half := (a&0x000f)+uint16(offset&0x0f) > 0x000f
	carry := (a&0x00ff)+uint16(offset) > 0x00ff
	return uint16(int32(a) + int32(int8(offset))), carry, half
}
