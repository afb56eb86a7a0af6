// Package chip8 implements the CHIP-8 virtual machine interpreter.
//
// # Memory Layout
//
// The machine owns a single 4KB memory block:
//
//	0x000-0x1FF: Interpreter area, font glyphs at FontBase
//	0x200-0xDDF: Program area
//	0xDE0-0xDFF: Call stack, 16 big-endian return addresses growing down
//	0xE00-0xEFF: Display frame, exposed to the host
//	0xF00-0xFFF: Authoritative frame, target of the sprite XOR-blit
//
// # Display Smoothing
//
// Every draw snapshots the authoritative frame into the display frame,
// XORs the sprite into the authoritative frame and finally ORs the new
// authoritative frame into the display frame. Sprites that are erased and
// redrawn on consecutive frames therefore do not strobe on the host.
//
// # Execution Model
//
// The interpreter never schedules itself. The host calls Advance for every
// instruction and DecrementTimers at its own fixed rate, usually 60 Hz.
// Fx0A waits for a key by rewinding the program counter, so control
// always returns to the host after one instruction.
//
// # Quirks
//
// Two historical divergences are configurable per loaded program:
//   - Shift: 8xy6/8xyE shift Vx in place instead of Vy into Vx
//   - LoadStore: Fx55/Fx65 leave the index register unchanged
package chip8
