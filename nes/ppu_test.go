package nes

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestPPU() (*PPU, *PPUBus) {
	return newTestPPUWithMirror(MirrorHorizontal)
}

func newTestPPUWithMirror(mirrorMode MirrorMode) (*PPU, *PPUBus) {
	characterRAM := NewRAM(0x2000)
	vram := NewRAM(0x1000)
	palette := newPaletteRAM()
	bus := NewPPUBus(characterRAM, vram, palette, mirrorMode)
	return NewPPU(bus), bus
}

func TestPPU_WriteReadData_Buffered(t *testing.T) {
	p, bus := newTestPPU()
	bus.characterRAM.write(0x000F, 0xEE)

	p.writeRegister(0x2006, 0x00) // ADDR high byte
	p.writeRegister(0x2006, 0x0F) // ADDR low byte -> address 0x000F

	first := p.readData()
	require.Equal(t, byte(0), first, "first read returns the stale buffer, not the fresh byte")

	second := p.readData()
	require.Equal(t, byte(0xEE), second, "second read returns the byte buffered by the first")

	require.Equal(t, uint16(0x0011), p.addr.value, "two DATA reads advance ADDR by 2")
}

func TestPPU_ReadData_AdvancesBy32WhenConfigured(t *testing.T) {
	p, _ := newTestPPU()
	p.ctrl.write(0x04) // vramIncrement = 1 -> +32 per access

	p.writeRegister(0x2006, 0x00)
	p.writeRegister(0x2006, 0x0F)

	p.readData()
	p.readData()
	require.Equal(t, uint16(0x000F+64), p.addr.value)
}

func TestPPU_WriteData_WritesThroughAndAdvances(t *testing.T) {
	p, bus := newTestPPU()

	p.writeRegister(0x2006, 0x21) // ADDR -> 0x2108
	p.writeRegister(0x2006, 0x08)

	p.writeRegister(0x2007, 0xAB)
	p.writeRegister(0x2007, 0xCD)

	require.Equal(t, byte(0xAB), bus.vram.read(0x0108))
	require.Equal(t, byte(0xCD), bus.vram.read(0x0109))
	require.Equal(t, uint16(0x210A), p.addr.value)
}

func TestPPU_ReadData_PaletteBypassesBuffer(t *testing.T) {
	p, bus := newTestPPU()
	bus.paletteRAM.data[0] = 0x16

	p.addr.value = 0x3F00
	got := p.readData()
	require.Equal(t, byte(0x16), got, "palette reads return directly, no buffering delay")
}

func TestPPUAddr_WriteOrsLowByte(t *testing.T) {
	var a ppuAddr
	a.write(0x21)
	require.Equal(t, uint16(0x2100), a.value)
	a.write(0x05)
	require.Equal(t, uint16(0x2105), a.value)
}

func TestPPU_Step_ReportsScanlineCompletion(t *testing.T) {
	p, _ := newTestPPU()
	require.Equal(t, countUpCycle, p.Step(340), "mid-scanline")
	require.Equal(t, finishedBuildBackgroundLine, p.Step(1), "cycle 341 completes the line")
	require.Equal(t, 1, p.line)
	require.Equal(t, 0, p.cycle)
}

func TestPPU_Step_CompletesFrameAfter89342Cycles(t *testing.T) {
	p, _ := newTestPPU()
	var last stepResult
	total := 0
	for total < scanlineCycles*scanlinesPerFrame {
		last = p.Step(1)
		total++
	}
	require.Equal(t, finishedBuildAllBackgroundLine, last)
	require.Len(t, p.background, 30*32, "30 visible rows of 32 tiles each")
}

func TestPPU_BuildBackgroundRow_NametableSpill(t *testing.T) {
	p, bus := newTestPPU()
	p.ctrl.nametableID = 1   // xOffset 32, nametableBase 0x2000 under horizontal mirroring
	bus.vram.write(64, 0xAA) // tileNumber(x=32,y=1) = 32+1*32 = 64
	p.line = 8
	p.buildBackgroundRow()
	require.Len(t, p.background, 32)
	require.Equal(t, 32, p.background[0].Position.x)
}

func TestPPUBus_NametableBase_HorizontalMirroring(t *testing.T) {
	bus := NewPPUBus(NewRAM(0x2000), NewRAM(0x1000), newPaletteRAM(), MirrorHorizontal)
	require.Equal(t, uint16(0x2000), bus.nametableBase(0))
	require.Equal(t, uint16(0x2000), bus.nametableBase(1))
	require.Equal(t, uint16(0x2400), bus.nametableBase(2))
	require.Equal(t, uint16(0x2400), bus.nametableBase(3))
}

func TestPPUBus_NametableBase_VerticalMirroring(t *testing.T) {
	bus := NewPPUBus(NewRAM(0x2000), NewRAM(0x1000), newPaletteRAM(), MirrorVertical)
	require.Equal(t, uint16(0x2000), bus.nametableBase(0))
	require.Equal(t, uint16(0x2400), bus.nametableBase(1))
	require.Equal(t, uint16(0x2000), bus.nametableBase(2))
	require.Equal(t, uint16(0x2400), bus.nametableBase(3))
}

func TestPPUBus_ReadRange_DelegatesToCharacterRAM(t *testing.T) {
	characterRAM := NewRAM(0x2000)
	bus := NewPPUBus(characterRAM, NewRAM(0x1000), newPaletteRAM(), MirrorHorizontal)
	characterRAM.write(0x0010, 0xAB)
	characterRAM.write(0x001F, 0xCD)

	got := bus.readRange(0x0010, 16)
	require.Len(t, got, 16)
	require.Equal(t, byte(0xAB), got[0])
	require.Equal(t, byte(0xCD), got[15])
}

// TestPPU_RegisterDispatch_CtrlMaskScrollAddrData drives every PPU register
// through writeRegister/readRegister by CPU-visible address, covering the
// low-3-bit dispatch switch directly rather than poking the latch structs.
func TestPPU_RegisterDispatch_CtrlMaskScrollAddrData(t *testing.T) {
	p, bus := newTestPPU()
	bus.vram.write(0x0010, 0x99)

	p.writeRegister(0x2000, 0x04) // CTRL: vramIncrement bit set -> +32
	require.Equal(t, byte(1), p.ctrl.vramIncrement)

	p.writeRegister(0x2001, 0x1E) // MASK
	require.Equal(t, byte(0x1E), p.mask.raw)

	p.writeRegister(0x2005, 0x07) // SCROLL first write -> x
	p.writeRegister(0x2005, 0x0B) // SCROLL second write -> y
	require.Equal(t, byte(0x07), p.scroll.x)
	require.Equal(t, byte(0x0B), p.scroll.y)

	p.writeRegister(0x2006, 0x20) // ADDR high byte
	p.writeRegister(0x2006, 0x10) // ADDR low byte -> 0x2010
	require.Equal(t, uint16(0x2010), p.addr.value)

	// Register mirror: 0x2008 + n*8 must dispatch the same as 0x2000 + n.
	before := p.addr.value
	p.writeRegister(0x2008, 0x11) // mirrors CTRL at 0x2000: nametableID=1, backgroundPatternTableAddr=1
	require.Equal(t, byte(1), p.ctrl.nametableID)
	require.Equal(t, byte(1), p.ctrl.backgroundPatternTableAddr)
	require.Equal(t, before, p.addr.value) // unaffected by the CTRL write

	// ADDR still sits at 0x2010 (the CTRL mirror write above didn't touch it),
	// which PPUBus routes to vram offset 0x0010.
	first := p.readRegister(0x2007)
	require.Equal(t, byte(0), first, "first read returns the stale buffer")
	second := p.readRegister(0x2007)
	require.Equal(t, byte(0x99), second, "second read returns the buffered byte from the first read")

	// Unhandled register indices (2,3,4) are no-ops / read as 0.
	p.writeRegister(0x2002, 0xFF)
	require.Equal(t, byte(0), p.readRegister(0x2002))
}
