package nes

import "fmt"

// FormatError is returned when cartridge bytes fail the iNES magic check or
// are too short to contain the slices their own header promises.
type FormatError struct {
	reason string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("nes: invalid cartridge format: %s", e.reason)
}

// UnmappedAccessError is returned by the CPU bus when an address falls
// outside every modeled region, or when a write targets program ROM
// (0x8000-0xFFFF). Per design this is fatal: the machine loop
// logs it and halts rather than continuing with undefined state.
type UnmappedAccessError struct {
	address uint16
	write   bool
	data    byte
}

func (e *UnmappedAccessError) Error() string {
	if e.write {
		return fmt.Sprintf("nes: unmapped CPU bus write: address=0x%04x, data=0x%02x", e.address, e.data)
	}
	return fmt.Sprintf("nes: unmapped CPU bus read: address=0x%04x", e.address)
}

// UnknownOpcodeError is returned when the fetched opcode byte has no entry
// in the instruction table. PC must not advance past the opcode byte when
// this happens.
type UnknownOpcodeError struct {
	Opcode byte
	PC     uint16
}

func (e *UnknownOpcodeError) Error() string {
	return fmt.Sprintf("nes: unknown opcode 0x%02x at PC=0x%04x", e.Opcode, e.PC)
}
