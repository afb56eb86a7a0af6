package window

import "github.com/retroenv/retrochip8/internal/chip8"

// Pixel colors as RGBA.
var (
	colorOn  = [4]byte{0xE8, 0xE8, 0xE8, 0xFF}
	colorOff = [4]byte{0x10, 0x10, 0x18, 0xFF}
)

// fillPixels converts a bit-packed frame to RGBA pixels.
func fillPixels(dst, frame []byte) {
	for y := range chip8.ScreenHeight {
		for x := range chip8.ScreenWidth {
			color := colorOff
			if chip8.PixelSet(frame, x, y) {
				color = colorOn
			}
			copy(dst[(y*chip8.ScreenWidth+x)*4:], color[:])
		}
	}
}
