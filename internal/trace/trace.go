// Package trace renders CHIP-8 opcodes as assembly text for execution
// tracing.
package trace

import (
	"fmt"

	"github.com/retroenv/retrogolib/arch/cpu/chip8"
)

// Decode returns the instruction set entry matching the opcode word.
func Decode(opcode uint16) (chip8.Opcode, bool) {
	for _, op := range chip8.Opcodes[int(opcode>>12)] {
		if op.Info.Mask&opcode == op.Info.Value {
			return op, op.Instruction != nil
		}
	}
	return chip8.Opcode{}, false
}

// Format returns the assembly text of an opcode word. Words that do not
// decode to an instruction are rendered as a data word.
func Format(opcode uint16) string {
	op, ok := Decode(opcode)
	if !ok {
		return fmt.Sprintf("dw $%04X", opcode)
	}

	name := op.Instruction.Name
	if params := formatParams(name, opcode); params != "" {
		return name + " " + params
	}
	return name
}

// AccessesMemory returns whether the mnemonic of the opcode belongs to an
// instruction that can read or write memory at I.
func AccessesMemory(opcode uint16) bool {
	op, ok := Decode(opcode)
	if !ok {
		return false
	}
	name := op.Instruction.Name
	return chip8.MemoryReadInstructions.Contains(name) || chip8.MemoryWriteInstructions.Contains(name)
}

// IsSkip returns whether the opcode conditionally skips the next instruction.
func IsSkip(opcode uint16) bool {
	op, ok := Decode(opcode)
	if !ok {
		return false
	}
	return chip8.SkipInstructions.Contains(op.Instruction.Name)
}

func formatParams(name string, opcode uint16) string {
	x := registerX(opcode)
	y := registerY(opcode)

	switch name {
	case chip8.Cls.Name, chip8.Ret.Name:
		return ""
	case chip8.Call.Name:
		return fmt.Sprintf("$%03X", opcode&0x0FFF)
	case chip8.Jp.Name:
		if opcode&0xF000 == 0xB000 {
			return fmt.Sprintf("V0, $%03X", opcode&0x0FFF)
		}
		return fmt.Sprintf("$%03X", opcode&0x0FFF)
	case chip8.Or.Name, chip8.And.Name, chip8.Xor.Name, chip8.Sub.Name, chip8.Subn.Name:
		return fmt.Sprintf("V%X, V%X", x, y)
	case chip8.Shr.Name, chip8.Shl.Name, chip8.Skp.Name, chip8.Sknp.Name:
		return fmt.Sprintf("V%X", x)
	case chip8.Rnd.Name:
		return fmt.Sprintf("V%X, $%02X", x, opcode&0x00FF)
	case chip8.Drw.Name:
		return fmt.Sprintf("V%X, V%X, $%X", x, y, opcode&0x000F)
	}
	return formatOperands(opcode)
}

// formatOperands handles the mnemonics that share a name across several
// encodings, like ld, add, se and sne.
func formatOperands(opcode uint16) string {
	x := registerX(opcode)
	y := registerY(opcode)

	switch opcode & 0xF000 {
	case 0x3000, 0x4000, 0x6000, 0x7000:
		return fmt.Sprintf("V%X, $%02X", x, opcode&0x00FF)
	case 0x5000, 0x8000, 0x9000:
		return fmt.Sprintf("V%X, V%X", x, y)
	case 0xA000:
		return fmt.Sprintf("I, $%03X", opcode&0x0FFF)
	case 0xF000:
		return formatMisc(x, opcode&0x00FF)
	}
	return ""
}

func formatMisc(x uint16, kk uint16) string {
	switch kk {
	case 0x07:
		return fmt.Sprintf("V%X, DT", x)
	case 0x0A:
		return fmt.Sprintf("V%X, K", x)
	case 0x15:
		return fmt.Sprintf("DT, V%X", x)
	case 0x18:
		return fmt.Sprintf("ST, V%X", x)
	case 0x1E:
		return fmt.Sprintf("I, V%X", x)
	case 0x29:
		return fmt.Sprintf("F, V%X", x)
	case 0x33:
		return fmt.Sprintf("B, V%X", x)
	case 0x55:
		return fmt.Sprintf("[I], V%X", x)
	case 0x65:
		return fmt.Sprintf("V%X, [I]", x)
	}
	return ""
}

func registerX(opcode uint16) uint16 {
	return (opcode & 0x0F00) >> 8
}

func registerY(opcode uint16) uint16 {
	return (opcode & 0x00F0) >> 4
}
