package nes

// https://www.nesdev.org/wiki/PPU_registers

const (
	scanlineCycles    = 341
	scanlinesPerFrame = 262
)

// ppuCtrl is PPUCTRL ($2000, write-only).
type ppuCtrl struct {
	nametableID                byte // bits 0-1
	vramIncrement              byte // bit 2: 0 -> +1, 1 -> +32
	spritePatternTableAddr     byte // bit 3
	backgroundPatternTableAddr byte // bit 4
	spriteSize                 byte // bit 5
	ppuSelect                  byte // bit 6
	extBackdrop                byte // bit 7 (NMI enable, unused by this core)
}

func (c *ppuCtrl) write(data byte) {
	c.nametableID = data & 0x03
	c.vramIncrement = (data >> 2) & 0x01
	c.spritePatternTableAddr = (data >> 3) & 0x01
	c.backgroundPatternTableAddr = (data >> 4) & 0x01
	c.spriteSize = (data >> 5) & 0x01
	c.ppuSelect = (data >> 6) & 0x01
	c.extBackdrop = (data >> 7) & 0x01
}

func (c *ppuCtrl) incrementStep() uint16 {
	if c.vramIncrement == 1 {
		return 32
	}
	return 1
}

// ppuMask is PPUMASK ($2001, write-only). This core does not consult mask
// bits when building tiles; the raw byte is kept for completeness.
type ppuMask struct {
	raw byte
}

func (m *ppuMask) write(data byte) { m.raw = data }

// ppuScroll is PPUSCROLL ($2005, write-only, two-write latch).
type ppuScroll struct {
	x, y    byte
	latched bool
}

func (s *ppuScroll) write(data byte) {
	if !s.latched {
		s.x = data
	} else {
		s.y = data
	}
	s.latched = !s.latched
}

// ppuAddr is PPUADDR ($2006, write-only, two-write latch). The first write
// sets the high byte, the second ORs in the low byte — not "+=" as a naive
// port of an accumulating address register might do.
type ppuAddr struct {
	value   uint16
	latched bool
}

func (a *ppuAddr) write(data byte) {
	if !a.latched {
		a.value = uint16(data) << 8
	} else {
		a.value |= uint16(data)
	}
	a.latched = !a.latched
}

func (a *ppuAddr) increment(step uint16) {
	a.value += step
}

// stepResult reports what, if anything, completed during a Step call.
type stepResult int

const (
	countUpCycle stepResult = iota
	finishedBuildBackgroundLine
	finishedBuildAllBackgroundLine
)

// PPU renders the background plane of a frame, tile row by tile row, driven
// by CPU cycles converted to PPU cycles by the machine loop (1 CPU cycle =
// 3 PPU cycles).
type PPU struct {
	bus *PPUBus

	ctrl   ppuCtrl
	mask   ppuMask
	scroll ppuScroll
	addr   ppuAddr

	readBuffer byte

	line  int
	cycle int

	background []Tile
}

// NewPPU creates a PPU over the given bus.
func NewPPU(bus *PPUBus) *PPU {
	return &PPU{bus: bus}
}

// Reset clears scanline position and the accumulated background.
func (p *PPU) Reset() {
	p.line = 0
	p.cycle = 0
	p.background = nil
}

// writeRegister dispatches a CPU-side write by register index (address mod
// 8, already resolved by the caller).
func (p *PPU) writeRegister(address uint16, data byte) {
	switch address % 8 {
	case 0:
		p.ctrl.write(data)
	case 1:
		p.mask.write(data)
	case 5:
		p.scroll.write(data)
	case 6:
		p.addr.write(data)
	case 7:
		p.writeData(data)
	}
}

// readRegister dispatches a CPU-side read by register index. Registers that
// are write-only on real hardware return 0.
func (p *PPU) readRegister(address uint16) byte {
	switch address % 8 {
	case 7:
		return p.readData()
	default:
		return 0
	}
}

// writeData implements PPUDATA writes: write through to the bus at the
// current address, then advance it by the configured increment.
func (p *PPU) writeData(data byte) {
	p.bus.write(p.addr.value, data)
	p.addr.increment(p.ctrl.incrementStep())
}

// readData implements the PPUDATA buffered read. Reads below the palette
// range return the byte buffered from the *previous* read, refilling the
// buffer from the current address; palette reads bypass buffering and
// return directly, but still refill the buffer from the mirrored VRAM
// address 0x1000 below so a subsequent non-palette read sees a sane value.
func (p *PPU) readData() byte {
	addr := p.addr.value
	var result byte
	if addr >= 0x3F00 {
		result = p.bus.read(addr)
		p.readBuffer = p.bus.read(addr - 0x1000)
	} else {
		result = p.readBuffer
		p.readBuffer = p.bus.read(addr)
	}
	p.addr.increment(p.ctrl.incrementStep())
	return result
}

// Step advances the PPU by ppuCycles PPU-clock cycles, building one 32-tile
// background row whenever the scanline counter lands on a multiple of 8
// within the visible range. The result reports the furthest milestone the
// call reached: nothing (mid-scanline), a completed scanline, or a completed
// frame when the scanline counter wraps at 262.
func (p *PPU) Step(ppuCycles int) stepResult {
	result := countUpCycle
	for i := 0; i < ppuCycles; i++ {
		p.cycle++
		if p.cycle < scanlineCycles {
			continue
		}
		p.cycle = 0
		p.line++
		if p.line >= 1 && p.line <= 240 && p.line%8 == 0 {
			p.buildBackgroundRow()
		}
		if p.line >= scanlinesPerFrame {
			p.line = 0
			result = finishedBuildAllBackgroundLine
		} else if result != finishedBuildAllBackgroundLine {
			result = finishedBuildBackgroundLine
		}
	}
	return result
}

// buildBackgroundRow builds the 32 tiles of the row y = line/8, with x
// running from 0 (even ctrl.nametableID) or 32 (odd ctrl.nametableID).
// Every tile is read at x + y*32 from the one bank nametableID resolves to,
// so x >= 32 does not address a separate nametable bank. That bank is
// resolved by the bus against the cartridge's mirroring arrangement.
func (p *PPU) buildBackgroundRow() {
	y := p.line / 8
	xOffset := int(p.ctrl.nametableID%2) * 32
	nametableBase := p.bus.nametableBase(p.ctrl.nametableID)

	for i := 0; i < 32; i++ {
		pos := tilePosition{x: xOffset + i, y: y}
		p.background = append(p.background, p.buildTile(pos, nametableBase))
	}
}

// buildTile reads the nametable byte, attribute byte, and pattern bytes for
// one tile position and assembles a Tile.
func (p *PPU) buildTile(pos tilePosition, nametableBase uint16) Tile {
	nametableAddr := nametableBase + pos.tileNumber()
	patternIndex := p.bus.read(nametableAddr)

	attributeAddr := nametableBase + 0x03C0 + pos.attributeID()
	attributeByte := p.bus.read(attributeAddr)
	paletteID := pos.paletteID(attributeByte)

	patternBase := uint16(p.ctrl.backgroundPatternTableAddr) * 0x1000
	patternAddr := patternBase + uint16(patternIndex)*16
	pattern := p.bus.readRange(patternAddr, 16)

	kind := backgroundPalette
	var palettes [4]byte
	group := p.paletteGroup(paletteID, kind)
	copy(palettes[:], group[:])

	return Tile{
		Sprite:   buildSpriteMatrix(pattern),
		Position: pos,
		Palettes: palettes,
	}
}

// paletteGroup reads the 4-color group for a palette ID directly off the
// bus's palette RAM, used instead of holding a second reference to it.
func (p *PPU) paletteGroup(paletteID byte, kind paletteType) [4]byte {
	return p.bus.paletteRAM.group(paletteID, kind)
}

// Background returns the tiles accumulated since the last ClearBackground,
// in row-major order, 32 per row.
func (p *PPU) Background() []Tile {
	return p.background
}

// ClearBackground discards the accumulated tiles, called once a completed
// frame has been handed to the screen sink.
func (p *PPU) ClearBackground() {
	p.background = nil
}
