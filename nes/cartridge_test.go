package nes

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func makeINES(prgPages, chrPages byte) []byte {
	data := make([]byte, inesHeaderSizeBytes+int(prgPages)*prgROMSizeUnit+int(chrPages)*chrROMSizeUnit)
	data[0], data[1], data[2], data[3] = 'N', 'E', 'S', msdosEOF
	data[4] = prgPages
	data[5] = chrPages
	return data
}

func TestNewCartridge_HeaderParse(t *testing.T) {
	data := makeINES(5, 3)
	c, err := NewCartridge(data)
	require.NoError(t, err)
	require.Equal(t, 81920, c.PRGSize())
	require.Len(t, c.prgROM, 81920)
	require.Len(t, c.chrROM, 24576)
}

func TestNewCartridge_BadMagic(t *testing.T) {
	data := makeINES(5, 3)
	data[1] = 'N' // corrupt "NES" -> "NNS"
	_, err := NewCartridge(data)
	require.Error(t, err)
	var fe *FormatError
	require.ErrorAs(t, err, &fe)
}

func TestNewCartridge_ShortBuffer(t *testing.T) {
	data := makeINES(2, 1)
	data = data[:len(data)-10] // truncate past the declared CHR size
	_, err := NewCartridge(data)
	require.Error(t, err)
}

func TestCartridge_MirrorMode(t *testing.T) {
	data := makeINES(1, 1)
	data[6] = 0x00
	c, err := NewCartridge(data)
	require.NoError(t, err)
	require.Equal(t, MirrorHorizontal, c.MirrorMode())

	data[6] = 0x01
	c, err = NewCartridge(data)
	require.NoError(t, err)
	require.Equal(t, MirrorVertical, c.MirrorMode())
}
