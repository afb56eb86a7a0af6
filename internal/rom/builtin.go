package rom

import "github.com/retroenv/retrochip8/internal/chip8"

// Titles of the compiled-in programs.
const (
	Logo    = "LOGO"
	Counter = "COUNTER"
	Keypad  = "KEYPAD"
)

// logoCode draws the hexadecimal font glyphs 0-F in two rows and halts.
var logoCode = []byte{
	0x00, 0xE0, // 200: CLS
	0x60, 0x00, // 202: LD   V0, $00     digit
	0x61, 0x02, // 204: LD   V1, $02     x
	0x62, 0x08, // 206: LD   V2, $08     y
	0xF0, 0x29, // 208: LD   F, V0
	0xD1, 0x25, // 20A: DRW  V1, V2, 5
	0x70, 0x01, // 20C: ADD  V0, $01
	0x71, 0x08, // 20E: ADD  V1, $08
	0x40, 0x08, // 210: SNE  V0, $08
	0x22, 0x1C, // 212: CALL $21C        next row
	0x40, 0x10, // 214: SNE  V0, $10
	0x12, 0x1A, // 216: JP   $21A
	0x12, 0x08, // 218: JP   $208
	0x12, 0x1A, // 21A: JP   $21A        halt
	0x61, 0x02, // 21C: LD   V1, $02
	0x72, 0x0A, // 21E: ADD  V2, $0A
	0x00, 0xEE, // 220: RET
}

// counterCode shows a decimal counter that increments once per second
// using the delay timer.
var counterCode = []byte{
	0x65, 0x00, // 200: LD   V5, $00     counter
	0x00, 0xE0, // 202: CLS
	0xA3, 0x00, // 204: LD   I, $300
	0xF5, 0x33, // 206: LD   B, V5
	0xF2, 0x65, // 208: LD   V2, [I]
	0x63, 0x10, // 20A: LD   V3, $10     x
	0x64, 0x0C, // 20C: LD   V4, $0C     y
	0xF0, 0x29, // 20E: LD   F, V0
	0xD3, 0x45, // 210: DRW  V3, V4, 5
	0x73, 0x06, // 212: ADD  V3, $06
	0xF1, 0x29, // 214: LD   F, V1
	0xD3, 0x45, // 216: DRW  V3, V4, 5
	0x73, 0x06, // 218: ADD  V3, $06
	0xF2, 0x29, // 21A: LD   F, V2
	0xD3, 0x45, // 21C: DRW  V3, V4, 5
	0x66, 0x3C, // 21E: LD   V6, $3C
	0xF6, 0x15, // 220: LD   DT, V6
	0xF6, 0x07, // 222: LD   V6, DT
	0x36, 0x00, // 224: SE   V6, $00
	0x12, 0x22, // 226: JP   $222
	0x75, 0x01, // 228: ADD  V5, $01
	0x12, 0x02, // 22A: JP   $202
}

// keypadCode shows the glyph of the last pressed key.
var keypadCode = []byte{
	0x61, 0x1C, // 200: LD   V1, $1C     x
	0x62, 0x0D, // 202: LD   V2, $0D     y
	0x60, 0x00, // 204: LD   V0, $00     key
	0xE0, 0xA1, // 206: SKNP V0
	0x12, 0x12, // 208: JP   $212
	0x70, 0x01, // 20A: ADD  V0, $01
	0x40, 0x10, // 20C: SNE  V0, $10
	0x60, 0x00, // 20E: LD   V0, $00
	0x12, 0x06, // 210: JP   $206
	0x00, 0xE0, // 212: CLS
	0xF0, 0x29, // 214: LD   F, V0
	0xD1, 0x25, // 216: DRW  V1, V2, 5
	0x12, 0x06, // 218: JP   $206
}

func builtinPrograms() []chip8.Program {
	return []chip8.Program{
		{Title: Logo, Code: logoCode, Quirks: QuirksFor(Logo)},
		{Title: Counter, Code: counterCode, Quirks: QuirksFor(Counter)},
		{Title: Keypad, Code: keypadCode, Quirks: QuirksFor(Keypad)},
	}
}
