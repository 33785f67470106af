package nes

// RAM is a flat byte array shared by both CPU work RAM and PPU VRAM; the
// caller decides sizing and mirroring.
type RAM struct {
	data []byte
}

// NewRAM creates a RAM of the given size, zeroed.
func NewRAM(size int) *RAM {
	return &RAM{data: make([]byte, size)}
}

// NewRAMFromBytes wraps an existing byte slice as RAM, taking ownership of
// it. Used to back PPU character RAM with a mutable copy of cartridge CHR
// data without a second allocation.
func NewRAMFromBytes(data []byte) *RAM {
	return &RAM{data: data}
}

// read reads one byte.
func (r *RAM) read(address uint16) byte {
	return r.data[address]
}

// write writes one byte.
func (r *RAM) write(address uint16, x byte) {
	r.data[address] = x
}

// readRange reads n contiguous bytes starting at address, used to pull a
// 16-byte sprite pattern out of character RAM without looping single-byte
// reads.
func (r *RAM) readRange(address uint16, n int) []byte {
	return r.data[address : int(address)+n]
}
