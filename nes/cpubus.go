package nes

// CPUBus is the CPU's view of the address space for the duration of one
// step: work RAM, PPU registers, and program ROM. It is constructed fresh
// by the machine loop each step and is never retained past it.
//
// CPU memory map:
//
//	0x0000 - 0x07FF  work RAM
//	0x0800 - 0x1FFF  work RAM mirror (modulo 0x0800)
//	0x2000 - 0x2007  PPU registers
//	0x2008 - 0x3FFF  PPU register mirror (modulo 0x0008)
//	0x8000 - 0xFFFF  program ROM
type CPUBus struct {
	wram      *RAM
	ppu       *PPU
	cartridge *Cartridge
}

// NewCPUBus creates a CPU bus view over the given shared state.
func NewCPUBus(wram *RAM, ppu *PPU, cartridge *Cartridge) *CPUBus {
	return &CPUBus{wram: wram, ppu: ppu, cartridge: cartridge}
}

// programROM maps a CPU address in 0x8000-0xFFFF to an offset into program
// ROM, mirroring a single 16 KiB page across both halves.
func (b *CPUBus) programROM(address uint16) byte {
	offset := int(address - 0x8000)
	if b.cartridge.PRGSize() <= prgROMSizeUnit {
		return b.cartridge.prgROM[offset%prgROMSizeUnit]
	}
	return b.cartridge.prgROM[offset]
}

func (b *CPUBus) read(address uint16) (byte, error) {
	switch {
	case address < 0x2000:
		return b.wram.read(address % 0x0800), nil
	case address < 0x4000:
		return b.ppu.readRegister(0x2000 + (address % 0x0008)), nil
	case address >= 0x8000:
		return b.programROM(address), nil
	default:
		return 0, &UnmappedAccessError{address: address}
	}
}

// readTwice reads a little-endian 16-bit pair: read(a) | (read(a+1) << 8).
// This does not reproduce the 6502 indirect-JMP page-wrap bug; that is the
// addressing-mode resolver's responsibility.
func (b *CPUBus) readTwice(address uint16) (uint16, error) {
	lo, err := b.read(address)
	if err != nil {
		return 0, err
	}
	hi, err := b.read(address + 1)
	if err != nil {
		return 0, err
	}
	return uint16(lo) | uint16(hi)<<8, nil
}

func (b *CPUBus) write(address uint16, data byte) error {
	switch {
	case address < 0x2000:
		b.wram.write(address%0x0800, data)
		return nil
	case address < 0x4000:
		b.ppu.writeRegister(0x2000+(address%0x0008), data)
		return nil
	default:
		return &UnmappedAccessError{address: address, write: true, data: data}
	}
}
