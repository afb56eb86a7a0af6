package chip8

const spriteWidth = 8

// draw XORs the sprite of height rows at the index register into the
// authoritative frame at the wrapped origin. VF is set when a set pixel
// is erased. The display frame is rebuilt as the OR of the frame before
// and after the blit.
func (c *Chip8) draw(originX, originY, height byte) error {
	src, err := c.span(c.index, int(height))
	if err != nil {
		return err
	}
	var sprite [0x10]byte
	copy(sprite[:], src)

	display := c.memory[DisplayFrameStart:FrameStart]
	frame := c.memory[FrameStart:]
	copy(display, frame)

	c.v[flagRegister] = 0
	for row := range int(height) {
		bits := sprite[row]
		y := (int(originY) + row) % ScreenHeight

		for col := range spriteWidth {
			if bits&(0x80>>col) == 0 {
				continue
			}
			x := (int(originX) + col) % ScreenWidth
			pos := y*ScreenWidth + x
			mask := byte(0x80 >> (pos % 8))

			if frame[pos/8]&mask != 0 {
				c.v[flagRegister] = 1
			}
			frame[pos/8] ^= mask
		}
	}

	blend(display, frame)
	return nil
}

// clearDisplay zeroes the authoritative frame. The pre-clear frame is
// kept in the display frame until the next draw.
func (c *Chip8) clearDisplay() {
	display := c.memory[DisplayFrameStart:FrameStart]
	frame := c.memory[FrameStart:]
	copy(display, frame)
	clear(frame)
}

// blend ORs the current frame into the previous frame in place.
func blend(previous, current []byte) {
	for i, b := range current {
		previous[i] |= b
	}
}

// PixelSet returns whether the pixel at x,y is set in a bit-packed frame.
func PixelSet(frame []byte, x, y int) bool {
	pos := (y%ScreenHeight)*ScreenWidth + x%ScreenWidth
	return frame[pos/8]&(0x80>>(pos%8)) != 0
}
