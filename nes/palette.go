package nes

// paletteRAM is the PPU's 32-byte palette memory, addressed modulo 0x20
// regardless of which 0x3Fxx mirror the caller used.
type paletteRAM struct {
	data [32]byte
}

func newPaletteRAM() *paletteRAM {
	return &paletteRAM{}
}

func (p *paletteRAM) read(address uint16) byte {
	return p.data[(address-0x3F00)%0x20]
}

func (p *paletteRAM) write(address uint16, data byte) {
	p.data[(address-0x3F00)%0x20] = data
}

// paletteType selects which half of palette RAM a palette group comes
// from: background groups start at 0x00, sprite groups at 0x10.
type paletteType int

const (
	backgroundPalette paletteType = iota
	spritePalette
)

// group returns the 4 palette color indices for paletteID (0..3) from the
// given half of palette RAM.
func (p *paletteRAM) group(paletteID byte, kind paletteType) [4]byte {
	base := int(paletteID) * 4
	if kind == spritePalette {
		base += 0x10
	}
	var g [4]byte
	for i := range g {
		g[i] = p.data[(base+i)%0x20]
	}
	return g
}
