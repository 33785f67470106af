package nes

// addressingMode selects how an instruction's operand is resolved from the
// instruction stream and bus.
type addressingMode int

const (
	implied addressingMode = iota
	accumulator
	immediate
	zeroPage
	zeroPageX
	zeroPageY
	relative
	absolute
	absoluteX
	absoluteY
	indirectAbsolute
	preIndexedIndirect
	postIndexedIndirect
)

// instruction is one entry of the opcode table: a mnemonic, its addressing
// mode, and the executor function bound at table-construction time. An
// empty execute means the opcode is unimplemented in this core.
type instruction struct {
	mnemonic string
	mode     addressingMode
	cycles   int
	execute  func(*CPU, addressingMode, uint16) error
}

// createInstructions builds the 256-entry opcode table. Only the minimal
// working set this core supports has a non-nil execute; every other byte
// decodes to an UnknownOpcodeError when fetched. Cycle counts for the full
// 6502 table are carried even for unimplemented opcodes, since extending
// coverage should only require adding an execute function, not re-deriving
// timing.
func (c *CPU) createInstructions() [256]instruction {
	var t [256]instruction
	cycles := [256]int{
		7, 6, 2, 8, 3, 3, 5, 5, 3, 2, 2, 2, 4, 4, 6, 6, 2, 5, 2, 8, 4, 4, 6, 6, 2, 4, 2, 7,
		4, 4, 6, 7, 6, 6, 2, 8, 3, 3, 5, 5, 4, 2, 2, 2, 4, 4, 6, 6, 2, 5, 2, 8, 4, 4, 6, 6,
		2, 4, 2, 7, 4, 4, 6, 7, 6, 6, 2, 8, 3, 3, 5, 5, 3, 2, 2, 2, 3, 4, 6, 6, 2, 5, 2, 8,
		4, 4, 6, 6, 2, 4, 2, 7, 4, 4, 6, 7, 6, 6, 2, 8, 3, 3, 5, 5, 4, 2, 2, 2, 5, 4, 6, 6,
		2, 5, 2, 8, 4, 4, 6, 6, 2, 4, 2, 7, 4, 4, 6, 7, 2, 6, 2, 6, 3, 3, 3, 3, 2, 2, 2, 2,
		4, 4, 4, 4, 2, 6, 2, 6, 4, 4, 4, 4, 2, 4, 2, 5, 5, 4, 5, 5, 2, 6, 2, 6, 3, 3, 3, 3,
		2, 2, 2, 2, 4, 4, 4, 4, 2, 5, 2, 5, 4, 4, 4, 4, 2, 4, 2, 4, 4, 4, 4, 4, 2, 6, 2, 8,
		3, 3, 5, 5, 2, 2, 2, 2, 4, 4, 6, 6, 2, 5, 2, 8, 4, 4, 6, 6, 2, 4, 2, 7, 4, 4, 7, 7,
		2, 6, 3, 8, 3, 3, 5, 5, 2, 2, 2, 2, 4, 4, 6, 6, 2, 5, 2, 8, 4, 4, 6, 6, 2, 4, 2, 7,
		4, 4, 7, 7,
	}
	set := func(opcode byte, mnemonic string, mode addressingMode, execute func(*CPU, addressingMode, uint16) error) {
		t[opcode] = instruction{mnemonic: mnemonic, mode: mode, cycles: cycles[opcode], execute: execute}
	}
	set(0xA9, "LDA", immediate, (*CPU).lda)
	set(0xA5, "LDA", zeroPage, (*CPU).lda)
	set(0xAD, "LDA", absolute, (*CPU).lda)
	set(0xB5, "LDA", zeroPageX, (*CPU).lda)
	set(0xBD, "LDA", absoluteX, (*CPU).lda)
	set(0xB9, "LDA", absoluteY, (*CPU).lda)
	set(0xA1, "LDA", preIndexedIndirect, (*CPU).lda)
	set(0xB1, "LDA", postIndexedIndirect, (*CPU).lda)
	set(0xA2, "LDX", immediate, (*CPU).ldx)
	set(0xA6, "LDX", zeroPage, (*CPU).ldx)
	set(0xAE, "LDX", absolute, (*CPU).ldx)
	set(0xB6, "LDX", zeroPageY, (*CPU).ldx)
	set(0xBE, "LDX", absoluteY, (*CPU).ldx)
	set(0xA0, "LDY", immediate, (*CPU).ldy)
	set(0xA4, "LDY", zeroPage, (*CPU).ldy)
	set(0xAC, "LDY", absolute, (*CPU).ldy)
	set(0xB4, "LDY", zeroPageX, (*CPU).ldy)
	set(0xBC, "LDY", absoluteX, (*CPU).ldy)
	set(0x85, "STA", zeroPage, (*CPU).sta)
	set(0x8D, "STA", absolute, (*CPU).sta)
	set(0x95, "STA", zeroPageX, (*CPU).sta)
	set(0x9D, "STA", absoluteX, (*CPU).sta)
	set(0x99, "STA", absoluteY, (*CPU).sta)
	set(0x81, "STA", preIndexedIndirect, (*CPU).sta)
	set(0x91, "STA", postIndexedIndirect, (*CPU).sta)
	set(0x9A, "TXS", implied, (*CPU).txs)
	set(0xE8, "INX", implied, (*CPU).inx)
	set(0x88, "DEY", implied, (*CPU).dey)
	set(0x78, "SEI", implied, (*CPU).sei)
	set(0x4C, "JMP", absolute, (*CPU).jmp)
	set(0x6C, "JMP", indirectAbsolute, (*CPU).jmp)
	set(0xD0, "BNE", relative, (*CPU).bne)
	return t
}
