package chip8

import "fmt"

// Advance executes exactly one instruction. An error stops the machine,
// every following call returns ErrHalted until Reset or Load is called.
func (c *Chip8) Advance() error {
	if c.halted != nil {
		return fmt.Errorf("%w: %w", ErrHalted, c.halted)
	}

	pc := c.pc
	opcode, err := c.fetch()
	if err == nil {
		err = c.execute(opcode)
	}
	if err != nil {
		c.halted = &ExecutionError{PC: pc, Opcode: opcode, Err: err}
		return c.halted
	}
	return nil
}

// fetch reads the instruction at the program counter and advances the
// program counter past it.
func (c *Chip8) fetch() (uint16, error) {
	if c.config.StrictAlignment && c.pc%2 != 0 {
		return 0, ErrMisalignedPC
	}
	if int(c.pc)+1 >= MemorySize {
		return 0, ErrMemoryOutOfBounds
	}

	opcode := c.readWord(c.pc)
	c.pc += instructSize
	return opcode, nil
}

// execute decodes the opcode nibbles and dispatches to the handler of the
// instruction family.
func (c *Chip8) execute(opcode uint16) error {
	x := (opcode & 0x0F00) >> 8
	y := (opcode & 0x00F0) >> 4
	n := opcode & 0x000F
	kk := byte(opcode)
	nnn := opcode & 0x0FFF

	switch opcode & 0xF000 {
	case 0x0000:
		switch opcode {
		case 0x00E0:
			c.clearDisplay()
		case 0x00EE:
			return c.returnFromSubroutine()
		}
		// remaining 0nnn opcodes called native routines of the host CPU, they are ignored

	case 0x1000:
		c.pc = nnn

	case 0x2000:
		return c.callSubroutine(nnn)

	case 0x3000:
		c.skipIf(c.v[x] == kk)

	case 0x4000:
		c.skipIf(c.v[x] != kk)

	case 0x5000:
		if n != 0 {
			return ErrUnknownInstruction
		}
		c.skipIf(c.v[x] == c.v[y])

	case 0x6000:
		c.v[x] = kk

	case 0x7000:
		c.v[x] += kk // no carry flag

	case 0x8000:
		return c.executeArithmetic(x, y, n)

	case 0x9000:
		if n != 0 {
			return ErrUnknownInstruction
		}
		c.skipIf(c.v[x] != c.v[y])

	case 0xA000:
		c.index = nnn

	case 0xB000:
		c.pc = nnn + uint16(c.v[0])

	case 0xC000:
		c.v[x] = byte(c.random.Uint32()) & kk

	case 0xD000:
		return c.draw(c.v[x], c.v[y], byte(n))

	case 0xE000:
		return c.executeKeySkip(x, kk)

	case 0xF000:
		return c.executeMisc(x, kk)
	}
	return nil
}

// executeArithmetic handles the register to register family 8xyn.
func (c *Chip8) executeArithmetic(x, y, n uint16) error {
	switch n {
	case 0x0:
		c.v[x] = c.v[y]
	case 0x1:
		c.v[x] |= c.v[y]
	case 0x2:
		c.v[x] &= c.v[y]
	case 0x3:
		c.v[x] ^= c.v[y]
	case 0x4:
		result, carry := add(c.v[x], c.v[y])
		c.setWithFlag(x, result, carry)
	case 0x5:
		result, notBorrow := subtract(c.v[x], c.v[y])
		c.setWithFlag(x, result, notBorrow)
	case 0x6:
		src := c.shiftSource(x, y)
		c.setWithFlag(x, src>>1, src&0x01)
	case 0x7:
		result, notBorrow := subtract(c.v[y], c.v[x])
		c.setWithFlag(x, result, notBorrow)
	case 0xE:
		src := c.shiftSource(x, y)
		c.setWithFlag(x, src<<1, src>>7)
	default:
		return ErrUnknownInstruction
	}
	return nil
}

// executeKeySkip handles the keypad conditional skips Ex9E and ExA1.
func (c *Chip8) executeKeySkip(x uint16, kk byte) error {
	switch kk {
	case 0x9E, 0xA1:
	default:
		return ErrUnknownInstruction
	}

	key, err := c.keyFromRegister(x)
	if err != nil {
		return err
	}
	pressed := c.keypad[key]
	if kk == 0x9E {
		c.skipIf(pressed)
	} else {
		c.skipIf(!pressed)
	}
	return nil
}

// executeMisc handles the timer, keypad, index and memory transfer family Fxkk.
func (c *Chip8) executeMisc(x uint16, kk byte) error {
	switch kk {
	case 0x07:
		c.v[x] = c.delay

	case 0x0A:
		key, err := c.keyFromRegister(x)
		if err != nil {
			return err
		}
		if !c.keypad[key] {
			// replay this instruction on the next step until the key is down
			c.pc -= instructSize
		}

	case 0x15:
		c.delay = c.v[x]

	case 0x18:
		c.sound = c.v[x]

	case 0x1E:
		c.index += uint16(c.v[x])

	case 0x29:
		c.index = FontBase + uint16(c.v[x]&0x0F)*glyphSize

	case 0x33:
		dst, err := c.span(c.index, 3)
		if err != nil {
			return err
		}
		value := c.v[x]
		dst[0] = value / 100
		dst[1] = value / 10 % 10
		dst[2] = value % 10

	case 0x55:
		dst, err := c.span(c.index, int(x)+1)
		if err != nil {
			return err
		}
		copy(dst, c.v[:x+1])
		c.advanceIndex(x)

	case 0x65:
		src, err := c.span(c.index, int(x)+1)
		if err != nil {
			return err
		}
		copy(c.v[:x+1], src)
		c.advanceIndex(x)

	default:
		return ErrUnknownInstruction
	}
	return nil
}

// callSubroutine pushes the return address and jumps to address.
func (c *Chip8) callSubroutine(address uint16) error {
	if c.sp < StackBase+instructSize {
		return ErrStackOverflow
	}
	c.sp -= instructSize
	c.writeWord(c.sp, c.pc)
	c.pc = address
	return nil
}

// returnFromSubroutine pops the return address into the program counter.
func (c *Chip8) returnFromSubroutine() error {
	if c.sp >= StackTop {
		return ErrStackUnderflow
	}
	c.pc = c.readWord(c.sp)
	c.sp += instructSize
	return nil
}

func (c *Chip8) skipIf(condition bool) {
	if condition {
		c.pc += instructSize
	}
}

// setWithFlag stores the result in Vx and the flag in VF. The flag is
// written last so it wins when x is VF.
func (c *Chip8) setWithFlag(x uint16, result, flag byte) {
	c.v[x] = result
	c.v[flagRegister] = flag
}

// shiftSource returns the register a shift instruction reads from.
func (c *Chip8) shiftSource(x, y uint16) byte {
	if c.quirks.Shift {
		return c.v[x]
	}
	return c.v[y]
}

// advanceIndex moves the index register past the transferred registers
// unless the load/store quirk is active.
func (c *Chip8) advanceIndex(x uint16) {
	if !c.quirks.LoadStore {
		c.index += x + 1
	}
}

// add returns a+b modulo 256 and the carry flag.
func add(a, b byte) (byte, byte) {
	sum := uint16(a) + uint16(b)
	if sum > 0xFF {
		return byte(sum), 1
	}
	return byte(sum), 0
}

// subtract returns a-b modulo 256 and the not-borrow flag, which is 1 when
// a is not smaller than b.
func subtract(a, b byte) (byte, byte) {
	if a >= b {
		return a - b, 1
	}
	return a - b, 0
}
