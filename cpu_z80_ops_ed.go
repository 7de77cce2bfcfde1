// cpu_z80_ops_ed.go - ED-prefixed instructions: 8-bit IO, NEG, the
// interrupt-mode and I/R transfer ops, RRD/RLD, and the four block
// transfer/compare/IO families with their repeat variants.

package main

func (c *CPU_Z80) initEDOps() {
	for i := range c.edOps {
		c.edOps[i] = (*CPU_Z80).opEDUnimplemented
	}

	regByCode := []*byte{&c.B, &c.C, &c.D, &c.E, &c.H, &c.L, nil, &c.A}
	for code := 0; code <= 7; code++ {
		if code == 6 {
			continue
		}
		dest := regByCode[code]
		c.edOps[0x40+code<<3] = func(cpu *CPU_Z80) { cpu.inRegC(dest) }
		c.edOps[0x41+code<<3] = func(cpu *CPU_Z80) { cpu.outRegC(*dest) }
	}
	c.edOps[0x70] = func(cpu *CPU_Z80) { var junk byte; cpu.inRegC(&junk) }
	c.edOps[0x71] = func(cpu *CPU_Z80) { cpu.outRegC(0) }

	for _, op := range []int{0x44, 0x4C, 0x54, 0x5C, 0x64, 0x6C, 0x74, 0x7C} {
		c.edOps[op] = (*CPU_Z80).opNEG
	}

	c.edOps[0x47] = func(cpu *CPU_Z80) { cpu.I = cpu.A }
	c.edOps[0x4F] = func(cpu *CPU_Z80) { cpu.R = cpu.A }
	c.edOps[0x57] = func(cpu *CPU_Z80) { cpu.A = cpu.I; cpu.updateLDAIRFlags() }
	c.edOps[0x5F] = func(cpu *CPU_Z80) { cpu.A = cpu.R; cpu.updateLDAIRFlags() }

	for _, op := range []int{0x46, 0x66, 0x6E} {
		c.edOps[op] = func(cpu *CPU_Z80) { cpu.IM = 0 }
	}
	for _, op := range []int{0x56, 0x76} {
		c.edOps[op] = func(cpu *CPU_Z80) { cpu.IM = 1 }
	}
	for _, op := range []int{0x5E, 0x7E} {
		c.edOps[op] = func(cpu *CPU_Z80) { cpu.IM = 2 }
	}

	for _, op := range []int{0x45, 0x55, 0x65, 0x75, 0x4D, 0x5D, 0x6D, 0x7D} {
		c.edOps[op] = (*CPU_Z80).opRETN
	}

	c.edOps[0x67] = (*CPU_Z80).opRRD
	c.edOps[0x6F] = (*CPU_Z80).opRLD

	c.edOps[0xA0] = (*CPU_Z80).opLDI
	c.edOps[0xB0] = (*CPU_Z80).opLDIR
	c.edOps[0xA8] = (*CPU_Z80).opLDD
	c.edOps[0xB8] = (*CPU_Z80).opLDDR
	c.edOps[0xA1] = (*CPU_Z80).opCPI
	c.edOps[0xB1] = (*CPU_Z80).opCPIR
	c.edOps[0xA9] = (*CPU_Z80).opCPD
	c.edOps[0xB9] = (*CPU_Z80).opCPDR
	c.edOps[0xA2] = (*CPU_Z80).opINI
	c.edOps[0xB2] = (*CPU_Z80).opINIR
	c.edOps[0xAA] = (*CPU_Z80).opIND
	c.edOps[0xBA] = (*CPU_Z80).opINDR
	c.edOps[0xA3] = (*CPU_Z80).opOUTI
	c.edOps[0xB3] = (*CPU_Z80).opOTIR
	c.edOps[0xAB] = (*CPU_Z80).opOUTD
	c.edOps[0xBB] = (*CPU_Z80).opOTDR

	pairGetSet := []struct {
		get func(*CPU_Z80) uint16
		set func(*CPU_Z80, uint16)
	}{
		{(*CPU_Z80).BC, (*CPU_Z80).SetBC},
		{(*CPU_Z80).DE, (*CPU_Z80).SetDE},
		{(*CPU_Z80).HL, (*CPU_Z80).SetHL},
		{func(cpu *CPU_Z80) uint16 { return cpu.SP }, func(cpu *CPU_Z80, v uint16) { cpu.SP = v }},
	}
	for i, rp := range pairGetSet {
		get, set := rp.get, rp.set
		c.edOps[0x43+i<<3] = func(cpu *CPU_Z80) {
			addr := cpu.fetchWord()
			cpu.bus.Pokew(addr, get(cpu))
			cpu.WZ = addr + 1
		}
		c.edOps[0x4B+i<<3] = func(cpu *CPU_Z80) {
			addr := cpu.fetchWord()
			set(cpu, cpu.bus.Peekw(addr))
			cpu.WZ = addr + 1
		}
	}

	adcSbc := []func(*CPU_Z80) uint16{(*CPU_Z80).BC, (*CPU_Z80).DE, (*CPU_Z80).HL, func(cpu *CPU_Z80) uint16 { return cpu.SP }}
	for i, get := range adcSbc {
		g := get
		c.edOps[0x4A+i<<3] = func(cpu *CPU_Z80) { cpu.adcHL(g(cpu)); cpu.internalCycles(cpu.HL(), 7) }
		c.edOps[0x42+i<<3] = func(cpu *CPU_Z80) { cpu.sbcHL(g(cpu)); cpu.internalCycles(cpu.HL(), 7) }
	}
}

func (c *CPU_Z80) opEDUnimplemented() {} // undocumented ED opcode: documented as an 8T-state no-op

func (c *CPU_Z80) inRegC(dest *byte) {
	value := c.in(c.BC())
	if dest != nil {
		*dest = value
	}
	c.updateInFlags(value)
	c.WZ = c.BC() + 1
}

func (c *CPU_Z80) outRegC(value byte) {
	c.out(c.BC(), value)
	c.WZ = c.BC() + 1
}

func (c *CPU_Z80) opNEG() {
	a := c.A
	res := byte(0) - a
	c.A = res
	c.F = z80FlagN
	if res == 0 {
		c.F |= z80FlagZ
	}
	if res&0x80 != 0 {
		c.F |= z80FlagS
	}
	if a&0x0F != 0 {
		c.F |= z80FlagH
	}
	if a == 0x80 {
		c.F |= z80FlagPV
	}
	if a != 0 {
		c.F |= z80FlagC
	}
	c.F |= res & (z80FlagX | z80FlagY)
	c.markFlagsTouched()
}

func (c *CPU_Z80) opRETN() {
	c.PC = c.popWord()
	c.WZ = c.PC
	c.IFF1 = c.IFF2
}

func (c *CPU_Z80) opRRD() {
	addr := c.HL()
	value := c.read(addr)
	c.write(addr, (value>>4)|(c.A<<4))
	c.A = (c.A & 0xF0) | (value & 0x0F)
	c.WZ = addr + 1
	c.updateAParityFlagsPreserveCarry()
}

func (c *CPU_Z80) opRLD() {
	addr := c.HL()
	value := c.read(addr)
	c.write(addr, (value<<4)|(c.A&0x0F))
	c.A = (c.A & 0xF0) | (value >> 4)
	c.WZ = addr + 1
	c.updateAParityFlagsPreserveCarry()
}

func (c *CPU_Z80) opLDI() {
	value := c.read(c.HL())
	c.write(c.DE(), value)
	c.SetHL(c.HL() + 1)
	c.SetDE(c.DE() + 1)
	bc := c.BC() - 1
	c.SetBC(bc)
	c.updateLDIFlags(value, bc)
}

func (c *CPU_Z80) opLDIR() {
	c.opLDI()
	if c.BC() != 0 {
		c.PC -= 2
		c.WZ = c.PC + 1
		c.internalCycles(c.DE(), 5)
	}
}

func (c *CPU_Z80) opLDD() {
	value := c.read(c.HL())
	c.write(c.DE(), value)
	c.SetHL(c.HL() - 1)
	c.SetDE(c.DE() - 1)
	bc := c.BC() - 1
	c.SetBC(bc)
	c.updateLDIFlags(value, bc)
}

func (c *CPU_Z80) opLDDR() {
	c.opLDD()
	if c.BC() != 0 {
		c.PC -= 2
		c.WZ = c.PC + 1
		c.internalCycles(c.DE(), 5)
	}
}

// cpCompare shares the CPI/CPD flag computation: a documented
// half-carry-adjusted byte feeds the undocumented X/Y bits, same
// trick family as the block-IO ops but derived from the subtraction
// instead of an IO transfer.
func (c *CPU_Z80) cpCompare(value byte, bc uint16) {
	a := c.A
	diff := a - value
	halfCarry := a&0x0F < value&0x0F

	c.F = z80FlagN
	if diff == 0 {
		c.F |= z80FlagZ
	}
	if diff&0x80 != 0 {
		c.F |= z80FlagS
	}
	if halfCarry {
		c.F |= z80FlagH
	}
	if bc != 0 {
		c.F |= z80FlagPV
	}
	n := diff
	if halfCarry {
		n--
	}
	if n&0x02 != 0 {
		c.F |= z80FlagY
	}
	if n&0x08 != 0 {
		c.F |= z80FlagX
	}
	c.markFlagsTouched()
}

func (c *CPU_Z80) opCPI() {
	value := c.read(c.HL())
	c.SetHL(c.HL() + 1)
	bc := c.BC() - 1
	c.SetBC(bc)
	c.WZ++
	c.cpCompare(value, bc)
}

func (c *CPU_Z80) opCPIR() {
	c.opCPI()
	if c.BC() != 0 && !c.Flag(z80FlagZ) {
		c.PC -= 2
		c.WZ = c.PC + 1
		c.internalCycles(c.HL(), 5)
	}
}

func (c *CPU_Z80) opCPD() {
	value := c.read(c.HL())
	c.SetHL(c.HL() - 1)
	bc := c.BC() - 1
	c.SetBC(bc)
	c.WZ--
	c.cpCompare(value, bc)
}

func (c *CPU_Z80) opCPDR() {
	c.opCPD()
	if c.BC() != 0 && !c.Flag(z80FlagZ) {
		c.PC -= 2
		c.WZ = c.PC + 1
		c.internalCycles(c.HL(), 5)
	}
}

func (c *CPU_Z80) opINI() {
	value := c.in(c.BC())
	c.WZ = c.BC() + 1
	c.write(c.HL(), value)
	c.B--
	c.SetHL(c.HL() + 1)
	c.updateBlockIOFlags(value, false)
}

func (c *CPU_Z80) opINIR() {
	c.opINI()
	if c.B != 0 {
		c.PC -= 2
		c.internalCycles(c.HL(), 5)
	}
}

func (c *CPU_Z80) opIND() {
	value := c.in(c.BC())
	c.WZ = c.BC() - 1
	c.write(c.HL(), value)
	c.B--
	c.SetHL(c.HL() - 1)
	c.updateBlockIOFlags(value, true)
}

func (c *CPU_Z80) opINDR() {
	c.opIND()
	if c.B != 0 {
		c.PC -= 2
		c.internalCycles(c.HL(), 5)
	}
}

func (c *CPU_Z80) opOUTI() {
	value := c.read(c.HL())
	c.B--
	c.out(c.BC(), value)
	c.WZ = c.BC() + 1
	c.SetHL(c.HL() + 1)
	c.updateBlockIOFlags(value, false)
}

func (c *CPU_Z80) opOTIR() {
	c.opOUTI()
	if c.B != 0 {
		c.PC -= 2
		c.internalCycles(c.HL(), 5)
	}
}

func (c *CPU_Z80) opOUTD() {
	value := c.read(c.HL())
	c.B--
	c.out(c.BC(), value)
	c.WZ = c.BC() - 1
	c.SetHL(c.HL() - 1)
	c.updateBlockIOFlags(value, true)
}

func (c *CPU_Z80) opOTDR() {
	c.opOUTD()
	if c.B != 0 {
		c.PC -= 2
		c.internalCycles(c.HL(), 5)
	}
}
