package nes

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestCPUBus(t *testing.T) (*CPUBus, *RAM, *PPU) {
	t.Helper()
	wram := NewRAM(workRAMSize)
	ppu, _ := newTestPPU()
	cartridge, err := NewCartridge(makeINES(1, 1))
	require.NoError(t, err)
	return NewCPUBus(wram, ppu, cartridge), wram, ppu
}

func TestCPUBus_WRAMMirror(t *testing.T) {
	bus, _, _ := newTestCPUBus(t)
	for addr := uint16(0); addr < 0x0800; addr += 0x0111 {
		require.NoError(t, bus.write(addr, byte(addr)))
		mirrored, err := bus.read(addr | 0x0800)
		require.NoError(t, err)
		require.Equal(t, byte(addr), mirrored, "addr=0x%04x", addr)

		direct, err := bus.read(addr)
		require.NoError(t, err)
		require.Equal(t, mirrored, direct, "addr=0x%04x", addr)
	}
}

// TestCPUBus_PPURegisterMirror checks that a handful of addresses spread
// across 0x2008-0x3FFF dispatch to the same register as 0x2000+(addr%8),
// using CTRL's vramIncrement field as the observable side effect.
func TestCPUBus_PPURegisterMirror(t *testing.T) {
	bus, _, ppu := newTestCPUBus(t)
	mirrors := []uint16{0x2000, 0x2008, 0x2010, 0x2800, 0x3FF8}
	for _, addr := range mirrors {
		require.NoError(t, bus.write(addr, 0x04)) // CTRL: vramIncrement bit set
		require.Equal(t, byte(1), ppu.ctrl.vramIncrement, "addr=0x%04x", addr)
		require.NoError(t, bus.write(addr, 0x00))
		require.Equal(t, byte(0), ppu.ctrl.vramIncrement, "addr=0x%04x", addr)
	}
}

func TestCPUBus_WriteToROM_IsUnmappedAccess(t *testing.T) {
	bus, _, _ := newTestCPUBus(t)
	err := bus.write(0x8000, 0x42)
	require.Error(t, err)
	var ue *UnmappedAccessError
	require.ErrorAs(t, err, &ue)
}

func TestCPUBus_ReadUnmappedRegion_IsUnmappedAccess(t *testing.T) {
	bus, _, _ := newTestCPUBus(t)
	_, err := bus.read(0x4000)
	require.Error(t, err)
	var ue *UnmappedAccessError
	require.ErrorAs(t, err, &ue)
}

func TestCPUBus_ProgramROM_MirrorsSinglePage(t *testing.T) {
	cartridge, err := NewCartridge(makeINES(1, 1))
	require.NoError(t, err)
	cartridge.prgROM[0] = 0xAA
	bus := NewCPUBus(NewRAM(workRAMSize), NewPPU(nil), cartridge)

	lo, err := bus.read(0x8000)
	require.NoError(t, err)
	hi, err := bus.read(0xC000)
	require.NoError(t, err)
	require.Equal(t, byte(0xAA), lo)
	require.Equal(t, lo, hi, "a single 16 KiB PRG page mirrors across both halves")
}
