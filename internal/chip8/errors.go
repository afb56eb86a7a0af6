package chip8

import (
	"errors"
	"fmt"
)

// Configuration errors, the machine state is unchanged when they are returned.
var (
	ErrUnknownProgram  = errors.New("unknown program")
	ErrEmptyProgram    = errors.New("program contains no code")
	ErrProgramTooLarge = errors.New("program exceeds program memory")
	ErrKeyOutOfRange   = errors.New("key index out of range")
)

// Execution errors, returned wrapped in an ExecutionError by Advance.
var (
	ErrStackOverflow      = errors.New("stack overflow")
	ErrStackUnderflow     = errors.New("stack underflow")
	ErrMisalignedPC       = errors.New("misaligned program counter")
	ErrUnknownInstruction = errors.New("unknown instruction")
	ErrMemoryOutOfBounds  = errors.New("memory access out of bounds")
	ErrInvalidKey         = errors.New("register holds invalid key")
)

// ErrHalted is returned by Advance after an execution error until the
// machine is reset or a program is loaded.
var ErrHalted = errors.New("machine halted")

// ExecutionError describes a fatal condition that occurred while executing
// the instruction at PC.
type ExecutionError struct {
	PC     uint16 // address of the failing instruction
	Opcode uint16 // zero if the fetch itself failed
	Err    error
}

func (e *ExecutionError) Error() string {
	return fmt.Sprintf("executing opcode %04X at %03X: %s", e.Opcode, e.PC, e.Err)
}

func (e *ExecutionError) Unwrap() error {
	return e.Err
}
