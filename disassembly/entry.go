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

package disassembly

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gopherboy/curated"
	"github.com/jetsetilly/gopherboy/hardware/cpu/instructions"
)

// Sentinal error patterns.
const (
	EmptyCommand = "disassembly: empty command"
	NoDefinition = "disassembly: no instruction definition"
)

// Entry is a single disassembled instruction.
type Entry struct {
	// the bank the entry was found in. for entries created by a trace this
	// is the bank mapped at the time of execution
	Bank    int
	Address uint16

	// the raw bytes of the instruction including the opcode
	Bytecode []uint8

	// Defn is nil for bytes that could not be decoded as an instruction
	Defn *instructions.Definition

	// the instruction with the operands resolved. for example, "LD A,$3F"
	Command string

	// annotation. may be empty
	Comment string
}

func (e Entry) String() string {
	if e.Comment == "" {
		return e.Command
	}
	return fmt.Sprintf("%s ; %s", e.Command, e.Comment)
}

// BytecodeString returns the raw bytes of the entry as hex pairs.
func (e Entry) BytecodeString() string {
	s := strings.Builder{}
	for i, b := range e.Bytecode {
		if i > 0 {
			s.WriteRune(' ')
		}
		s.WriteString(fmt.Sprintf("%02X", b))
	}
	return s.String()
}

// entryBuilder assembles the textual parts of an Entry.
type entryBuilder struct {
	mnemonic string
	operands []string
	comments []string
}

func (b *entryBuilder) operand(s string) {
	b.operands = append(b.operands, s)
}

func (b *entryBuilder) comment(format string, args ...any) {
	b.comments = append(b.comments, fmt.Sprintf(format, args...))
}

func (b *entryBuilder) build(e *Entry) error {
	if b.mnemonic == "" {
		return curated.Errorf(EmptyCommand)
	}

	e.Command = b.mnemonic
	if len(b.operands) > 0 {
		e.Command = fmt.Sprintf("%s %s", b.mnemonic, strings.Join(b.operands, ","))
	}
	e.Comment = strings.Join(b.comments, "; ")

	return nil
}
