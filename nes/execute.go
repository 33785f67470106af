package nes

// The executor functions below implement the minimal 6502 working set this
// core supports. Each reads whatever registers it needs only after any bus
// call it makes, so nothing is cached across a read/write.

// lda loads A from the operand: the fetched datum itself for Immediate,
// otherwise the byte at the resolved address.
func (c *CPU) lda(mode addressingMode, operand uint16) error {
	data, err := c.operandByte(mode, operand)
	if err != nil {
		return err
	}
	c.A = data
	c.setZN(data)
	return nil
}

// ldx loads X the same way lda loads A.
func (c *CPU) ldx(mode addressingMode, operand uint16) error {
	data, err := c.operandByte(mode, operand)
	if err != nil {
		return err
	}
	c.X = data
	c.setZN(data)
	return nil
}

// ldy loads Y the same way lda loads A.
func (c *CPU) ldy(mode addressingMode, operand uint16) error {
	data, err := c.operandByte(mode, operand)
	if err != nil {
		return err
	}
	c.Y = data
	c.setZN(data)
	return nil
}

// operandByte resolves an operand to the 8-bit value an instruction acts
// on: the operand itself when Immediate, otherwise the byte at that
// address.
func (c *CPU) operandByte(mode addressingMode, operand uint16) (byte, error) {
	if mode == immediate {
		return byte(operand), nil
	}
	return c.bus.read(operand)
}

// sta stores A at the resolved address; no flag effect.
func (c *CPU) sta(_ addressingMode, operand uint16) error {
	return c.bus.write(operand, c.A)
}

// txs copies X into S; no flag effect.
func (c *CPU) txs(_ addressingMode, _ uint16) error {
	c.S = c.X
	return nil
}

// inx increments X modulo 256 and sets Z, N.
func (c *CPU) inx(_ addressingMode, _ uint16) error {
	c.X++
	c.setZN(c.X)
	return nil
}

// dey decrements Y modulo 256 and sets Z, N.
func (c *CPU) dey(_ addressingMode, _ uint16) error {
	c.Y--
	c.setZN(c.Y)
	return nil
}

// sei sets the interrupt-disable flag.
func (c *CPU) sei(_ addressingMode, _ uint16) error {
	c.P.I = true
	return nil
}

// jmp sets PC to the resolved address; works for both Absolute and
// IndirectAbsolute since the addressing resolver already produced the
// final effective address for either.
func (c *CPU) jmp(_ addressingMode, operand uint16) error {
	c.PC = operand
	return nil
}

// bne branches to the resolved address when Z is clear.
func (c *CPU) bne(_ addressingMode, operand uint16) error {
	if !c.P.Z {
		c.PC = operand
	}
	return nil
}
