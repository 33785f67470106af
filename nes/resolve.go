package nes

// fetch reads the byte at PC and advances PC by one.
func (c *CPU) fetch() (byte, error) {
	b, err := c.bus.read(c.PC)
	if err != nil {
		return 0, err
	}
	c.PC++
	return b, nil
}

// resolveOperand produces the operand value for mode: either the resolved
// effective address or, for Immediate, the fetched datum itself. PC is
// advanced by exactly the operand's byte count as a side effect of the
// fetch calls within each branch.
func (c *CPU) resolveOperand(mode addressingMode) (uint16, error) {
	switch mode {
	case implied, accumulator:
		return 0x0000, nil
	case immediate:
		b, err := c.fetch()
		return uint16(b), err
	case relative:
		return c.resolveRelative()
	case zeroPage:
		b, err := c.fetch()
		return uint16(b), err
	case zeroPageX:
		return c.resolveZeroPageIndexed(c.X)
	case zeroPageY:
		return c.resolveZeroPageIndexed(c.Y)
	case absolute:
		return c.resolveAbsolute()
	case absoluteX:
		return c.resolveAbsoluteIndexed(c.X)
	case absoluteY:
		return c.resolveAbsoluteIndexed(c.Y)
	case preIndexedIndirect:
		return c.resolvePreIndexedIndirect()
	case postIndexedIndirect:
		return c.resolvePostIndexedIndirect()
	case indirectAbsolute:
		return c.resolveIndirectAbsolute()
	}
	return 0, nil
}

func (c *CPU) resolveRelative() (uint16, error) {
	offset, err := c.fetch()
	if err != nil {
		return 0, err
	}
	if offset < 0x80 {
		return c.PC + uint16(offset), nil
	}
	return c.PC + uint16(offset) - 0x100, nil
}

// resolveZeroPageIndexed implements both ZeroPageX and ZeroPageY: the index
// register is the caller's choice, so the historical bug where the source
// always indexed by X (even for ZeroPageY) cannot reappear here.
func (c *CPU) resolveZeroPageIndexed(index byte) (uint16, error) {
	b, err := c.fetch()
	if err != nil {
		return 0, err
	}
	return uint16(b + index), nil // byte addition wraps modulo 256
}

func (c *CPU) resolveAbsolute() (uint16, error) {
	lo, err := c.fetch()
	if err != nil {
		return 0, err
	}
	hi, err := c.fetch()
	if err != nil {
		return 0, err
	}
	return uint16(lo) | uint16(hi)<<8, nil
}

func (c *CPU) resolveAbsoluteIndexed(index byte) (uint16, error) {
	addr, err := c.resolveAbsolute()
	if err != nil {
		return 0, err
	}
	return addr + uint16(index), nil
}

func (c *CPU) resolvePreIndexedIndirect() (uint16, error) {
	b, err := c.fetch()
	if err != nil {
		return 0, err
	}
	addr := uint16(b + c.X) // zero-page wrap before widening
	return c.bus.readTwice(addr)
}

func (c *CPU) resolvePostIndexedIndirect() (uint16, error) {
	b, err := c.fetch()
	if err != nil {
		return 0, err
	}
	addr, err := c.bus.readTwice(uint16(b))
	if err != nil {
		return 0, err
	}
	return addr + uint16(c.Y), nil
}

// resolveIndirectAbsolute reproduces the 6502 page-wrap bug: the high byte
// of the effective address is fetched from (pointer & 0xFF00) | ((pointer+1)
// & 0x00FF), not from pointer+1 directly, so a pointer ending in 0xFF wraps
// within its own page instead of carrying into the next one.
func (c *CPU) resolveIndirectAbsolute() (uint16, error) {
	pointer, err := c.resolveAbsolute()
	if err != nil {
		return 0, err
	}
	lo, err := c.bus.read(pointer)
	if err != nil {
		return 0, err
	}
	hiAddr := (pointer & 0xFF00) | ((pointer + 1) & 0x00FF)
	hi, err := c.bus.read(hiAddr)
	if err != nil {
		return 0, err
	}
	return uint16(lo) | uint16(hi)<<8, nil
}
