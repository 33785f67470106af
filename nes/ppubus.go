package nes

// PPUBus is the PPU's view of its own address space: pattern tables backed
// by cartridge character RAM, a flat 4 KiB nametable VRAM, and palette RAM.
//
// PPU memory map:
//
//	0x0000 - 0x1FFF  pattern tables (character RAM)
//	0x2000 - 0x2FFF  nametable VRAM
//	0x3000 - 0x3EFF  nametable VRAM mirror (offset address-0x3000)
//	0x3F00 - 0x3FFF  palette RAM (modulo 0x20)
type PPUBus struct {
	characterRAM *RAM
	vram         *RAM
	paletteRAM   *paletteRAM
	mirrorMode   MirrorMode
}

// NewPPUBus creates a PPU bus view over the given shared state. mirrorMode
// comes from the cartridge header and determines which physical nametable
// bank a logical nametable ID collapses onto in nametableBase.
func NewPPUBus(characterRAM *RAM, vram *RAM, palette *paletteRAM, mirrorMode MirrorMode) *PPUBus {
	return &PPUBus{characterRAM: characterRAM, vram: vram, paletteRAM: palette, mirrorMode: mirrorMode}
}

func (b *PPUBus) read(address uint16) byte {
	switch {
	case address < 0x2000:
		return b.characterRAM.read(address)
	case address < 0x3000:
		return b.vram.read(address - 0x2000)
	case address < 0x3F00:
		return b.vram.read(address - 0x3000)
	default:
		return b.paletteRAM.read(address)
	}
}

func (b *PPUBus) write(address uint16, data byte) {
	switch {
	case address < 0x2000:
		b.characterRAM.write(address, data)
	case address < 0x3000:
		b.vram.write(address-0x2000, data)
	case address < 0x3F00:
		b.vram.write(address-0x3000, data)
	default:
		b.paletteRAM.write(address, data)
	}
}

// readRange reads n contiguous bytes, used to pull a sprite pattern out of
// character RAM or a nametable row out of VRAM. A range fully inside one
// region delegates to that region's own RAM.readRange instead of looping a
// byte at a time; a range that straddles a boundary (nametable mirror or
// palette wrap) falls back to the byte-at-a-time dispatch in read.
func (b *PPUBus) readRange(address uint16, n int) []byte {
	switch {
	case address < 0x2000 && address+uint16(n) <= 0x2000:
		return b.characterRAM.readRange(address, n)
	case address >= 0x2000 && address < 0x3000 && address+uint16(n) <= 0x3000:
		return b.vram.readRange(address-0x2000, n)
	}
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		out[i] = b.read(address + uint16(i))
	}
	return out
}

// nametableBase returns the VRAM base address for a logical nametable ID
// (0-3), collapsing a mirrored pair of nametables onto the same physical
// 1 KiB bank per the cartridge's declared mirroring arrangement: horizontal
// mirroring shares a bank between the top row of nametables (0,1) and the
// bottom row (2,3); vertical mirroring shares a bank between the left
// column (0,2) and the right column (1,3).
func (b *PPUBus) nametableBase(nametableID byte) uint16 {
	var bank byte
	if b.mirrorMode == MirrorHorizontal {
		bank = (nametableID >> 1) & 0x01
	} else {
		bank = nametableID & 0x01
	}
	return 0x2000 + uint16(bank)*0x0400
}
