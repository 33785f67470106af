package nes

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStatus_RoundTrip(t *testing.T) {
	for b := 0; b <= 0xFF; b++ {
		var s status
		s.decodeFrom(byte(b))
		require.Equal(t, byte(b), s.encode(), "round trip mismatch for 0x%02x", b)
	}
}

func TestRegisters_ResetDefaults(t *testing.T) {
	var r registers
	r.PC = 0x1234 // reset must not touch PC
	r.reset()
	require.Equal(t, byte(0), r.A)
	require.Equal(t, byte(0), r.X)
	require.Equal(t, byte(0), r.Y)
	require.Equal(t, byte(0xFD), r.S)
	require.Equal(t, uint16(0x1234), r.PC)
	require.Equal(t, byte(0x34), r.P.encode())
}
