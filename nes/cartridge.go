package nes

// https://www.nesdev.org/wiki/INES
const (
	chrROMSizeUnit      int  = 0x2000 // 8 KiB
	prgROMSizeUnit      int  = 0x4000 // 16 KiB
	inesHeaderSizeBytes int  = 16
	msdosEOF            byte = 0x1A
)

// MirrorMode is the nametable mirroring arrangement declared in flags6.
type MirrorMode int

const (
	MirrorHorizontal MirrorMode = iota
	MirrorVertical
)

// Cartridge is an immutable, already-sliced iNES image: program ROM,
// character ROM, and the header bytes this core does not interpret beyond
// page counts and mirroring.
type Cartridge struct {
	prgROM  []byte
	chrROM  []byte
	flags6  byte // https://www.nesdev.org/wiki/INES#Flags_6
	flags7  byte // https://www.nesdev.org/wiki/INES#Flags_7
	flags8  byte // https://www.nesdev.org/wiki/INES#Flags_8
	flags9  byte // https://www.nesdev.org/wiki/INES#Flags_9
	flags10 byte // https://www.nesdev.org/wiki/INES#Flags_10
}

// isValid checks the 4-byte iNES magic and a minimum header length.
func isValid(data []byte) bool {
	return len(data) >= inesHeaderSizeBytes &&
		data[0] == byte('N') &&
		data[1] == byte('E') &&
		data[2] == byte('S') &&
		data[3] == msdosEOF
}

// readPRGROM slices program ROM out of the raw buffer.
func readPRGROM(data []byte) ([]byte, error) {
	l := inesHeaderSizeBytes
	r := l + int(data[4])*prgROMSizeUnit
	if r > len(data) {
		return nil, &FormatError{reason: "buffer too short for declared PRG ROM size"}
	}
	return data[l:r], nil
}

// readCHRROM slices character ROM out of the raw buffer, immediately
// following program ROM.
func readCHRROM(data []byte) ([]byte, error) {
	l := inesHeaderSizeBytes + int(data[4])*prgROMSizeUnit
	r := l + int(data[5])*chrROMSizeUnit
	if r > len(data) {
		return nil, &FormatError{reason: "buffer too short for declared CHR ROM size"}
	}
	return data[l:r], nil
}

// NewCartridge parses an iNES buffer, rejecting a bad magic number or a
// buffer too short for the page counts it declares. A trainer, if flags6
// bit 2 claims one, is not supported and is not skipped separately; this
// core assumes no trainer.
func NewCartridge(data []byte) (*Cartridge, error) {
	if !isValid(data) {
		return nil, &FormatError{reason: "missing \"NES\\x1A\" magic number"}
	}
	prgROM, err := readPRGROM(data)
	if err != nil {
		return nil, err
	}
	chrROM, err := readCHRROM(data)
	if err != nil {
		return nil, err
	}
	return &Cartridge{
		prgROM:  prgROM,
		chrROM:  chrROM,
		flags6:  data[6],
		flags7:  data[7],
		flags8:  data[8],
		flags9:  data[9],
		flags10: data[10],
	}, nil
}

// MirrorMode reports the nametable mirroring arrangement this cartridge
// declares (flags6 bit 0).
func (c *Cartridge) MirrorMode() MirrorMode {
	if c.flags6&0x01 == 0x01 {
		return MirrorVertical
	}
	return MirrorHorizontal
}

// PRGSize returns the size in bytes of program ROM.
func (c *Cartridge) PRGSize() int {
	return len(c.prgROM)
}
