// cpu_z80_ops_index.go - DD/FD-prefixed instructions: IX/IY forms of
// the 16-bit loads, PUSH/POP, arithmetic, and the (IX+d)/(IY+d)
// indexed memory addressing, including the DDCB/FDCB sub-prefix.
//
// Opcodes with no dedicated IX/IY meaning (the large majority of the
// table) fall through to the main table with H/L substituted for
// IXH/IXL or IYH/IYL - that's opDDUnimplemented/opFDUnimplemented.

package main

func (c *CPU_Z80) initDDOps() {
	for i := range c.ddOps {
		c.ddOps[i] = (*CPU_Z80).opDDUnimplemented
	}
	c.wireIndexedOps(&c.ddOps, true)
}

func (c *CPU_Z80) initFDOps() {
	for i := range c.fdOps {
		c.fdOps[i] = (*CPU_Z80).opFDUnimplemented
	}
	c.wireIndexedOps(&c.fdOps, false)
}

// wireIndexedOps installs the same opcode shapes into either table;
// isIX selects which index register the closures read/write. Keeping
// this in one place means the IX and IY tables can't drift apart.
func (c *CPU_Z80) wireIndexedOps(table *[256]func(*CPU_Z80), isIX bool) {
	ix := func(cpu *CPU_Z80) *uint16 {
		if isIX {
			return &cpu.IX
		}
		return &cpu.IY
	}

	table[0x21] = func(cpu *CPU_Z80) { *ix(cpu) = cpu.fetchWord() }
	table[0x22] = func(cpu *CPU_Z80) {
		addr := cpu.fetchWord()
		cpu.bus.Pokew(addr, *ix(cpu))
		cpu.WZ = addr + 1
	}
	table[0x2A] = func(cpu *CPU_Z80) {
		addr := cpu.fetchWord()
		*ix(cpu) = cpu.bus.Peekw(addr)
		cpu.WZ = addr + 1
	}
	table[0xE5] = func(cpu *CPU_Z80) { cpu.internalCycles(cpu.PC, 1); cpu.pushWord(*ix(cpu)) }
	table[0xE1] = func(cpu *CPU_Z80) { *ix(cpu) = cpu.popWord() }
	table[0xF9] = func(cpu *CPU_Z80) { cpu.SP = *ix(cpu); cpu.internalCycles(cpu.SP, 2) }
	table[0x36] = func(cpu *CPU_Z80) {
		disp := int8(cpu.fetchByte())
		value := cpu.fetchByte()
		addr := uint16(int32(*ix(cpu)) + int32(disp))
		cpu.write(addr, value)
	}
	table[0x34] = func(cpu *CPU_Z80) {
		disp := int8(cpu.fetchByte())
		addr := uint16(int32(*ix(cpu)) + int32(disp))
		cpu.write(addr, cpu.inc8(cpu.read(addr)))
	}
	table[0x35] = func(cpu *CPU_Z80) {
		disp := int8(cpu.fetchByte())
		addr := uint16(int32(*ix(cpu)) + int32(disp))
		cpu.write(addr, cpu.dec8(cpu.read(addr)))
	}
	table[0xE9] = func(cpu *CPU_Z80) { cpu.PC = *ix(cpu) }
	table[0xE3] = func(cpu *CPU_Z80) {
		memVal := cpu.bus.Peekw(cpu.SP)
		cpu.bus.Pokew(cpu.SP, *ix(cpu))
		*ix(cpu) = memVal
		cpu.WZ = memVal
		cpu.internalCycles(cpu.SP, 2)
	}
	table[0x09] = func(cpu *CPU_Z80) { *ix(cpu) = cpu.addHL16(*ix(cpu), cpu.BC()); cpu.internalCycles(*ix(cpu), 7) }
	table[0x19] = func(cpu *CPU_Z80) { *ix(cpu) = cpu.addHL16(*ix(cpu), cpu.DE()); cpu.internalCycles(*ix(cpu), 7) }
	table[0x29] = func(cpu *CPU_Z80) { v := *ix(cpu); *ix(cpu) = cpu.addHL16(v, v); cpu.internalCycles(*ix(cpu), 7) }
	table[0x39] = func(cpu *CPU_Z80) { *ix(cpu) = cpu.addHL16(*ix(cpu), cpu.SP); cpu.internalCycles(*ix(cpu), 7) }
	table[0x23] = func(cpu *CPU_Z80) { *ix(cpu)++; cpu.internalCycles(*ix(cpu), 2) }
	table[0x2B] = func(cpu *CPU_Z80) { *ix(cpu)--; cpu.internalCycles(*ix(cpu), 2) }

	if isIX {
		table[0xCB] = (*CPU_Z80).opDDCBPrefix
	} else {
		table[0xCB] = (*CPU_Z80).opFDCBPrefix
	}

	for opcode := byte(0x46); opcode <= 0x7E; opcode += 0x08 {
		if opcode == 0x76 {
			continue
		}
		dest := (opcode >> 3) & 0x07
		table[opcode] = func(cpu *CPU_Z80) {
			disp := int8(cpu.fetchByte())
			addr := uint16(int32(*ix(cpu)) + int32(disp))
			cpu.writeReg8Plain(dest, cpu.read(addr))
		}
	}
	for opcode := byte(0x70); opcode <= 0x77; opcode++ {
		if opcode == 0x76 {
			continue
		}
		src := opcode & 0x07
		table[opcode] = func(cpu *CPU_Z80) {
			disp := int8(cpu.fetchByte())
			addr := uint16(int32(*ix(cpu)) + int32(disp))
			cpu.write(addr, cpu.readReg8Plain(src))
		}
	}
	for opcode := byte(0x86); opcode <= 0xBE; opcode += 0x08 {
		alu := aluOp((opcode >> 3) & 0x07)
		table[opcode] = func(cpu *CPU_Z80) {
			disp := int8(cpu.fetchByte())
			addr := uint16(int32(*ix(cpu)) + int32(disp))
			cpu.performALU(alu, cpu.read(addr))
		}
	}
}

func (c *CPU_Z80) opDDUnimplemented() { c.baseOps[c.lastPrefixedOpcode](c) }
func (c *CPU_Z80) opFDUnimplemented() { c.baseOps[c.lastPrefixedOpcode](c) }

func (c *CPU_Z80) opDDCBPrefix() {
	disp := int8(c.fetchByte())
	opcode := c.fetchByte()
	addr := uint16(int32(c.IX) + int32(disp))
	c.WZ = addr
	c.cbOpsIndexed(addr, opcode)
}

func (c *CPU_Z80) opFDCBPrefix() {
	disp := int8(c.fetchByte())
	opcode := c.fetchByte()
	addr := uint16(int32(c.IY) + int32(disp))
	c.WZ = addr
	c.cbOpsIndexed(addr, opcode)
}
