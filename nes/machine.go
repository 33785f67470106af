package nes

import "github.com/golang/glog"

const (
	workRAMSize = 2048
)

// Screen is the rendering sink the machine loop hands completed background
// frames to. A non-blocking event poll lets the loop notice a quit request
// without blocking instruction execution.
type Screen interface {
	RenderBackground(tiles []Tile)
	PollQuit() bool
}

// Machine owns the CPU, PPU, work RAM, and cartridge for one emulation run
// and drives the fetch/step/render loop described by the core's design.
type Machine struct {
	cpu       *CPU
	ppu       *PPU
	wram      *RAM
	cartridge *Cartridge
	screen    Screen
}

// NewMachine wires a cartridge and a screen sink into a fresh machine: work
// RAM is 2048 zeroed bytes, and the PPU is given its own copy of character
// ROM as pattern memory, keeping the cartridge's slice immutable.
func NewMachine(cartridge *Cartridge, screen Screen) *Machine {
	characterRAM := make([]byte, len(cartridge.chrROM))
	copy(characterRAM, cartridge.chrROM)

	vram := NewRAM(0x1000)
	palette := newPaletteRAM()
	ppuBus := NewPPUBus(NewRAMFromBytes(characterRAM), vram, palette, cartridge.MirrorMode())

	return &Machine{
		cpu:       NewCPU(),
		ppu:       NewPPU(ppuBus),
		wram:      NewRAM(workRAMSize),
		cartridge: cartridge,
		screen:    screen,
	}
}

// Reset returns the PPU to the top of a fresh frame and loads the CPU's
// program counter from the reset vector at 0xFFFC.
func (m *Machine) Reset() error {
	m.ppu.Reset()
	bus := NewCPUBus(m.wram, m.ppu, m.cartridge)
	return m.cpu.Reset(bus)
}

// Run drives the machine until the screen reports a quit event or a fatal
// bus error halts it. UnmappedAccess and UnknownOpcode are, by design,
// unrecoverable: they indicate the loaded program stepped outside the
// regions this core models, so the loop logs and exits rather than
// continuing with undefined state.
func (m *Machine) Run() {
	for {
		if m.screen.PollQuit() {
			glog.Infof("nes: quit event received, stopping")
			return
		}
		bus := NewCPUBus(m.wram, m.ppu, m.cartridge)
		cycles, err := m.cpu.Step(bus)
		if err != nil {
			glog.Fatalf("nes: halted: %v", err)
		}
		result := m.ppu.Step(3 * cycles)
		if result == finishedBuildAllBackgroundLine {
			m.screen.RenderBackground(m.ppu.Background())
			m.ppu.ClearBackground()
		}
	}
}
