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

package instructions

import (
	_ "embed"
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/jetsetilly/gopherboy/curated"
)

// InvalidDefinition is the error pattern for problems with the definitions
// table.
const InvalidDefinition = "instructions: %v"

//go:embed base.csv
var baseCSV string

// Table contains the definitions for the base instruction set and for the
// prefixed instruction set. Undefined opcodes have a nil entry.
type Table struct {
	Base     [256]*Definition
	Prefixed [256]*Definition
}

// Lookup returns the definition for the opcode in the base or the prefixed
// table.
func (tab *Table) Lookup(opcode uint8, prefixed bool) *Definition {
	if prefixed {
		return tab.Prefixed[opcode]
	}
	return tab.Base[opcode]
}

var (
	table     *Table
	tableErr  error
	tableOnce sync.Once
)

// GetDefinitions returns the instruction definitions. The table is shared and
// must not be modified.
func GetDefinitions() (*Table, error) {
	tableOnce.Do(func() {
		table = &Table{}
		tableErr = parseBase(table, baseCSV)
		if tableErr == nil {
			tableErr = generatePrefixed(table)
		}
	})
	return table, tableErr
}

// mnemonics where the first operand may be a branch condition.
var conditional = map[string]bool{
	"JR":   true,
	"JP":   true,
	"CALL": true,
	"RET":  true,
}

func parseBase(tab *Table, data string) error {
	r := csv.NewReader(strings.NewReader(data))
	r.Comment = '#'
	r.FieldsPerRecord = 8

	recs, err := r.ReadAll()
	if err != nil {
		return curated.Errorf(InvalidDefinition, err)
	}

	for _, rec := range recs {
		defn, err := parseRecord(rec)
		if err != nil {
			return curated.Errorf(InvalidDefinition, err)
		}
		if tab.Base[defn.OpCode] != nil {
			return curated.Errorf(InvalidDefinition, fmt.Sprintf("duplicate opcode %02x", defn.OpCode))
		}
		tab.Base[defn.OpCode] = defn
	}

	return nil
}

func parseRecord(rec []string) (*Definition, error) {
	defn := &Definition{}

	op, err := strconv.ParseUint(rec[0], 16, 8)
	if err != nil {
		return nil, fmt.Errorf("opcode: %w", err)
	}
	defn.OpCode = uint8(op)
	defn.Mnemonic = rec[1]

	for i, s := range rec[2:4] {
		if s == "" {
			continue
		}
		o, ok := parseOperand(s, i == 0 && conditional[defn.Mnemonic])
		if !ok {
			return nil, fmt.Errorf("%02x: unknown operand %q", op, s)
		}
		defn.Operands[i] = o
	}

	if defn.Bytes, err = strconv.Atoi(rec[4]); err != nil {
		return nil, fmt.Errorf("%02x bytes: %w", op, err)
	}
	if defn.Cycles, err = strconv.Atoi(rec[5]); err != nil {
		return nil, fmt.Errorf("%02x cycles: %w", op, err)
	}
	if defn.BranchCycles, err = strconv.Atoi(rec[6]); err != nil {
		return nil, fmt.Errorf("%02x branch cycles: %w", op, err)
	}

	var ok bool
	if defn.Effect, ok = effectNames[rec[7]]; !ok {
		return nil, fmt.Errorf("%02x: unknown effect %q", op, rec[7])
	}

	if err := defn.check(); err != nil {
		return nil, err
	}

	return defn, nil
}

// the prefixed instruction set is entirely regular. the low three bits select
// the register and the upper bits select the operation (and bit number).
func generatePrefixed(tab *Table) error {
	shifts := [8]string{"RLC", "RRC", "RL", "RR", "SLA", "SRA", "SWAP", "SRL"}

	for i := 0; i < 256; i++ {
		op := uint8(i)
		reg := registerEncoding[op&0x07]
		indirect := reg == IndirectHL

		defn := &Definition{
			OpCode:   op,
			Prefixed: true,
			Bytes:    2,
			Cycles:   8,
			Effect:   Read,
		}

		switch op >> 6 {
		case 0:
			defn.Mnemonic = shifts[(op>>3)&0x07]
			defn.Operands[0] = reg
			if indirect {
				defn.Cycles = 16
				defn.Effect = RMW
			}
		case 1:
			defn.Mnemonic = "BIT"
			defn.Operands = [2]Operand{Bit0 + Operand((op>>3)&0x07), reg}
			if indirect {
				defn.Cycles = 12
			}
		case 2, 3:
			defn.Mnemonic = "RES"
			if op>>6 == 3 {
				defn.Mnemonic = "SET"
			}
			defn.Operands = [2]Operand{Bit0 + Operand((op>>3)&0x07), reg}
			if indirect {
				defn.Cycles = 16
				defn.Effect = RMW
			}
		}

		if err := defn.check(); err != nil {
			return curated.Errorf(InvalidDefinition, err)
		}

		tab.Prefixed[op] = defn
	}

	return nil
}
