package chip8

import "fmt"

// SetKey updates the state of one of the 16 hexadecimal keys.
func (c *Chip8) SetKey(index int, pressed bool) error {
	if index < 0 || index >= keys {
		return fmt.Errorf("%w: %d", ErrKeyOutOfRange, index)
	}
	c.keypad[index] = pressed
	return nil
}

// KeyPressed returns whether the key is currently held down.
func (c *Chip8) KeyPressed(index int) bool {
	if index < 0 || index >= keys {
		return false
	}
	return c.keypad[index]
}

// keyFromRegister returns the key index held in register x.
func (c *Chip8) keyFromRegister(x uint16) (int, error) {
	key := int(c.v[x])
	if key >= keys {
		return 0, ErrInvalidKey
	}
	return key, nil
}
