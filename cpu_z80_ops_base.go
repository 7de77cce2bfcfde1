// cpu_z80_ops_base.go - the unprefixed (0x00-0xFF) opcode table and
// its handlers: 8/16-bit loads, ALU, control flow, exchanges, and the
// entry points into the CB/DD/ED/FD prefix tables.

package main

// initBaseOps builds the main 256-entry dispatch table. Regular
// groups (LD r,r' / LD r,n / ALU r / INC-DEC r) are built with loops
// over the opcode's bit fields; everything else is a direct
// assignment, matching the opcode map's irregular shape.
func (c *CPU_Z80) initBaseOps() {
	for op := 0x40; op <= 0x7F; op++ {
		if op == 0x76 {
			continue // HALT occupies the LD (HL),(HL) slot
		}
		dest := byte((op >> 3) & 0x07)
		src := byte(op & 0x07)
		c.baseOps[op] = func(cpu *CPU_Z80) {
			cpu.opLDRegReg(dest, src)
		}
	}
	c.baseOps[0x76] = (*CPU_Z80).opHALT

	for _, dest := range []byte{0, 1, 2, 3, 4, 5, 7} {
		op := 0x06 + int(dest)<<3
		d := dest
		c.baseOps[op] = func(cpu *CPU_Z80) { cpu.opLDRegImm(d) }
	}
	c.baseOps[0x36] = (*CPU_Z80).opLDHLImm

	for op := 0x80; op <= 0xBF; op++ {
		alu := aluOp((op >> 3) & 0x07)
		reg := byte(op & 0x07)
		c.baseOps[op] = func(cpu *CPU_Z80) {
			cpu.performALU(alu, cpu.readReg8(reg))
		}
	}

	for _, reg := range []byte{0, 1, 2, 3, 4, 5, 7} {
		op := 0x04 + int(reg)<<3
		r := reg
		c.baseOps[op] = func(cpu *CPU_Z80) { cpu.writeReg8(r, cpu.inc8(cpu.readReg8(r))) }
		op2 := 0x05 + int(reg)<<3
		c.baseOps[op2] = func(cpu *CPU_Z80) { cpu.writeReg8(r, cpu.dec8(cpu.readReg8(r))) }
	}
	c.baseOps[0x34] = (*CPU_Z80).opINCHLMem
	c.baseOps[0x35] = (*CPU_Z80).opDECHLMem

	c.baseOps[0x00] = (*CPU_Z80).opNOP
	c.baseOps[0x01] = (*CPU_Z80).opLDBCNN
	c.baseOps[0x11] = (*CPU_Z80).opLDDENN
	c.baseOps[0x21] = (*CPU_Z80).opLDHLNN
	c.baseOps[0x31] = (*CPU_Z80).opLDSPNN
	c.baseOps[0x02] = (*CPU_Z80).opLDBCA
	c.baseOps[0x12] = (*CPU_Z80).opLDDEA
	c.baseOps[0x0A] = (*CPU_Z80).opLDABC
	c.baseOps[0x1A] = (*CPU_Z80).opLDADE
	c.baseOps[0x03] = (*CPU_Z80).opINCBC
	c.baseOps[0x13] = (*CPU_Z80).opINCDE
	c.baseOps[0x23] = (*CPU_Z80).opINCHL
	c.baseOps[0x33] = (*CPU_Z80).opINCSP
	c.baseOps[0x0B] = (*CPU_Z80).opDECBC
	c.baseOps[0x1B] = (*CPU_Z80).opDECDE
	c.baseOps[0x2B] = (*CPU_Z80).opDECHL
	c.baseOps[0x3B] = (*CPU_Z80).opDECSP
	c.baseOps[0x09] = (*CPU_Z80).opADDHLBC
	c.baseOps[0x19] = (*CPU_Z80).opADDHLDE
	c.baseOps[0x29] = (*CPU_Z80).opADDHLHL
	c.baseOps[0x39] = (*CPU_Z80).opADDHLSP
	c.baseOps[0x22] = (*CPU_Z80).opLDNNHL
	c.baseOps[0x2A] = (*CPU_Z80).opLDHLNNMem
	c.baseOps[0x32] = (*CPU_Z80).opLDNNA
	c.baseOps[0x3A] = (*CPU_Z80).opLDANN
	c.baseOps[0x07] = (*CPU_Z80).opRLCA
	c.baseOps[0x0F] = (*CPU_Z80).opRRCA
	c.baseOps[0x17] = (*CPU_Z80).opRLA
	c.baseOps[0x1F] = (*CPU_Z80).opRRA
	c.baseOps[0x08] = (*CPU_Z80).opEXAFAF
	c.baseOps[0x10] = (*CPU_Z80).opDJNZ
	c.baseOps[0x18] = (*CPU_Z80).opJR
	c.baseOps[0x20] = func(cpu *CPU_Z80) { cpu.jrCond(!cpu.Flag(z80FlagZ)) }
	c.baseOps[0x28] = func(cpu *CPU_Z80) { cpu.jrCond(cpu.Flag(z80FlagZ)) }
	c.baseOps[0x30] = func(cpu *CPU_Z80) { cpu.jrCond(!cpu.Flag(z80FlagC)) }
	c.baseOps[0x38] = func(cpu *CPU_Z80) { cpu.jrCond(cpu.Flag(z80FlagC)) }
	c.baseOps[0x27] = (*CPU_Z80).opDAA
	c.baseOps[0x2F] = (*CPU_Z80).opCPL
	c.baseOps[0x37] = (*CPU_Z80).opSCF
	c.baseOps[0x3F] = (*CPU_Z80).opCCF
	c.baseOps[0xC3] = (*CPU_Z80).opJPNN
	c.baseOps[0xC2] = func(cpu *CPU_Z80) { cpu.jpCond(!cpu.Flag(z80FlagZ)) }
	c.baseOps[0xCA] = func(cpu *CPU_Z80) { cpu.jpCond(cpu.Flag(z80FlagZ)) }
	c.baseOps[0xD2] = func(cpu *CPU_Z80) { cpu.jpCond(!cpu.Flag(z80FlagC)) }
	c.baseOps[0xDA] = func(cpu *CPU_Z80) { cpu.jpCond(cpu.Flag(z80FlagC)) }
	c.baseOps[0xE2] = func(cpu *CPU_Z80) { cpu.jpCond(!cpu.Flag(z80FlagPV)) }
	c.baseOps[0xEA] = func(cpu *CPU_Z80) { cpu.jpCond(cpu.Flag(z80FlagPV)) }
	c.baseOps[0xF2] = func(cpu *CPU_Z80) { cpu.jpCond(!cpu.Flag(z80FlagS)) }
	c.baseOps[0xFA] = func(cpu *CPU_Z80) { cpu.jpCond(cpu.Flag(z80FlagS)) }
	c.baseOps[0xE9] = (*CPU_Z80).opJPHL
	c.baseOps[0xCD] = (*CPU_Z80).opCALLNN
	c.baseOps[0xC4] = func(cpu *CPU_Z80) { cpu.callCond(!cpu.Flag(z80FlagZ)) }
	c.baseOps[0xCC] = func(cpu *CPU_Z80) { cpu.callCond(cpu.Flag(z80FlagZ)) }
	c.baseOps[0xD4] = func(cpu *CPU_Z80) { cpu.callCond(!cpu.Flag(z80FlagC)) }
	c.baseOps[0xDC] = func(cpu *CPU_Z80) { cpu.callCond(cpu.Flag(z80FlagC)) }
	c.baseOps[0xE4] = func(cpu *CPU_Z80) { cpu.callCond(!cpu.Flag(z80FlagPV)) }
	c.baseOps[0xEC] = func(cpu *CPU_Z80) { cpu.callCond(cpu.Flag(z80FlagPV)) }
	c.baseOps[0xF4] = func(cpu *CPU_Z80) { cpu.callCond(!cpu.Flag(z80FlagS)) }
	c.baseOps[0xFC] = func(cpu *CPU_Z80) { cpu.callCond(cpu.Flag(z80FlagS)) }
	c.baseOps[0xC9] = (*CPU_Z80).opRET
	c.baseOps[0xC0] = func(cpu *CPU_Z80) { cpu.retCond(!cpu.Flag(z80FlagZ)) }
	c.baseOps[0xC8] = func(cpu *CPU_Z80) { cpu.retCond(cpu.Flag(z80FlagZ)) }
	c.baseOps[0xD0] = func(cpu *CPU_Z80) { cpu.retCond(!cpu.Flag(z80FlagC)) }
	c.baseOps[0xD8] = func(cpu *CPU_Z80) { cpu.retCond(cpu.Flag(z80FlagC)) }
	c.baseOps[0xE0] = func(cpu *CPU_Z80) { cpu.retCond(!cpu.Flag(z80FlagPV)) }
	c.baseOps[0xE8] = func(cpu *CPU_Z80) { cpu.retCond(cpu.Flag(z80FlagPV)) }
	c.baseOps[0xF0] = func(cpu *CPU_Z80) { cpu.retCond(!cpu.Flag(z80FlagS)) }
	c.baseOps[0xF8] = func(cpu *CPU_Z80) { cpu.retCond(cpu.Flag(z80FlagS)) }
	for i, op := range []int{0xC1, 0xD1, 0xE1, 0xF1} {
		pair := i
		c.baseOps[op] = func(cpu *CPU_Z80) { cpu.opPOP(pair) }
	}
	for i, op := range []int{0xC5, 0xD5, 0xE5, 0xF5} {
		pair := i
		c.baseOps[op] = func(cpu *CPU_Z80) { cpu.opPUSH(pair) }
	}
	for i, op := range []int{0xC7, 0xCF, 0xD7, 0xDF, 0xE7, 0xEF, 0xF7, 0xFF} {
		addr := uint16(i) * 8
		c.baseOps[op] = func(cpu *CPU_Z80) { cpu.opRST(addr) }
	}
	c.baseOps[0xC6] = func(cpu *CPU_Z80) { cpu.performALU(aluAdd, cpu.fetchByte()) }
	c.baseOps[0xCE] = func(cpu *CPU_Z80) { cpu.performALU(aluAdc, cpu.fetchByte()) }
	c.baseOps[0xD6] = func(cpu *CPU_Z80) { cpu.performALU(aluSub, cpu.fetchByte()) }
	c.baseOps[0xDE] = func(cpu *CPU_Z80) { cpu.performALU(aluSbc, cpu.fetchByte()) }
	c.baseOps[0xE6] = func(cpu *CPU_Z80) { cpu.performALU(aluAnd, cpu.fetchByte()) }
	c.baseOps[0xEE] = func(cpu *CPU_Z80) { cpu.performALU(aluXor, cpu.fetchByte()) }
	c.baseOps[0xF6] = func(cpu *CPU_Z80) { cpu.performALU(aluOr, cpu.fetchByte()) }
	c.baseOps[0xFE] = func(cpu *CPU_Z80) { cpu.performALU(aluCp, cpu.fetchByte()) }
	c.baseOps[0xD3] = (*CPU_Z80).opOUTNA
	c.baseOps[0xDB] = (*CPU_Z80).opINAN
	c.baseOps[0xD9] = (*CPU_Z80).opEXX
	c.baseOps[0xE3] = (*CPU_Z80).opEXSPHL
	c.baseOps[0xEB] = (*CPU_Z80).opEXDEHL
	c.baseOps[0xF3] = (*CPU_Z80).opDI
	c.baseOps[0xFB] = (*CPU_Z80).opEI
	c.baseOps[0xF9] = (*CPU_Z80).opLDSPHL
	c.baseOps[0xCB] = (*CPU_Z80).opCBPrefix
	c.baseOps[0xDD] = (*CPU_Z80).opDDPrefix
	c.baseOps[0xED] = (*CPU_Z80).opEDPrefix
	c.baseOps[0xFD] = (*CPU_Z80).opFDPrefix
}

func (c *CPU_Z80) opNOP() {}

// opHALT latches HALT and leaves PC on the HALT opcode itself; the
// interrupt that releases it steps PC past the opcode before pushing.
func (c *CPU_Z80) opHALT() { c.Halted = true; c.PC-- }

func (c *CPU_Z80) opLDRegReg(dest, src byte) { c.writeReg8(dest, c.readReg8(src)) }

func (c *CPU_Z80) opLDRegImm(dest byte) { c.writeReg8(dest, c.fetchByte()) }

func (c *CPU_Z80) opLDHLImm() { c.write(c.HL(), c.fetchByte()) }

func (c *CPU_Z80) opLDBCNN() { c.SetBC(c.fetchWord()) }
func (c *CPU_Z80) opLDDENN() { c.SetDE(c.fetchWord()) }
func (c *CPU_Z80) opLDHLNN() { c.SetHL(c.fetchWord()) }
func (c *CPU_Z80) opLDSPNN() { c.SP = c.fetchWord() }

func (c *CPU_Z80) opLDBCA() { c.write(c.BC(), c.A); c.WZ = uint16(c.A)<<8 | ((c.BC() + 1) & 0xFF) }
func (c *CPU_Z80) opLDDEA() { c.write(c.DE(), c.A); c.WZ = uint16(c.A)<<8 | ((c.DE() + 1) & 0xFF) }
func (c *CPU_Z80) opLDABC() { c.A = c.read(c.BC()); c.WZ = c.BC() + 1 }
func (c *CPU_Z80) opLDADE() { c.A = c.read(c.DE()); c.WZ = c.DE() + 1 }

func (c *CPU_Z80) opINCBC() { c.SetBC(c.BC() + 1); c.internalCycles(c.BC(), 2) }
func (c *CPU_Z80) opINCDE() { c.SetDE(c.DE() + 1); c.internalCycles(c.DE(), 2) }
func (c *CPU_Z80) opINCHL() { c.SetHL(c.HL() + 1); c.internalCycles(c.HL(), 2) }
func (c *CPU_Z80) opINCSP() { c.SP++; c.internalCycles(c.SP, 2) }
func (c *CPU_Z80) opDECBC() { c.SetBC(c.BC() - 1); c.internalCycles(c.BC(), 2) }
func (c *CPU_Z80) opDECDE() { c.SetDE(c.DE() - 1); c.internalCycles(c.DE(), 2) }
func (c *CPU_Z80) opDECHL() { c.SetHL(c.HL() - 1); c.internalCycles(c.HL(), 2) }
func (c *CPU_Z80) opDECSP() { c.SP--; c.internalCycles(c.SP, 2) }

func (c *CPU_Z80) opADDHLBC() { c.addHL(c.BC()); c.internalCycles(c.HL(), 7) }
func (c *CPU_Z80) opADDHLDE() { c.addHL(c.DE()); c.internalCycles(c.HL(), 7) }
func (c *CPU_Z80) opADDHLHL() { c.addHL(c.HL()); c.internalCycles(c.HL(), 7) }
func (c *CPU_Z80) opADDHLSP() { c.addHL(c.SP); c.internalCycles(c.HL(), 7) }

func (c *CPU_Z80) opLDNNHL() {
	addr := c.fetchWord()
	c.bus.Pokew(addr, c.HL())
	c.WZ = addr + 1
}

func (c *CPU_Z80) opLDHLNNMem() {
	addr := c.fetchWord()
	c.SetHL(c.bus.Peekw(addr))
	c.WZ = addr + 1
}

func (c *CPU_Z80) opLDNNA() {
	addr := c.fetchWord()
	c.write(addr, c.A)
	c.WZ = uint16(c.A)<<8 | ((addr + 1) & 0xFF)
}

func (c *CPU_Z80) opLDANN() {
	addr := c.fetchWord()
	c.A = c.read(addr)
	c.WZ = addr + 1
}

func (c *CPU_Z80) opINCHLMem() {
	addr := c.HL()
	c.write(addr, c.inc8(c.read(addr)))
}

func (c *CPU_Z80) opDECHLMem() {
	addr := c.HL()
	c.write(addr, c.dec8(c.read(addr)))
}

func (c *CPU_Z80) opRLCA() {
	res, carry := c.rotate8Left(c.A, c.A&0x80 != 0)
	c.A = res
	c.updateRotateFlags(carry)
}

func (c *CPU_Z80) opRRCA() {
	res, carry := c.rotate8Right(c.A, c.A&0x01 != 0)
	c.A = res
	c.updateRotateFlags(carry)
}

func (c *CPU_Z80) opRLA() {
	res, carry := c.rotate8Left(c.A, c.Flag(z80FlagC))
	c.A = res
	c.updateRotateFlags(carry)
}

func (c *CPU_Z80) opRRA() {
	res, carry := c.rotate8Right(c.A, c.Flag(z80FlagC))
	c.A = res
	c.updateRotateFlags(carry)
}

func (c *CPU_Z80) opEXAFAF() { c.ExAF() }

func (c *CPU_Z80) opDJNZ() {
	c.B--
	disp := int8(c.fetchByte())
	if c.B != 0 {
		c.PC = uint16(int32(c.PC) + int32(disp))
		c.internalCycles(c.PC, 5)
	}
}

func (c *CPU_Z80) opJR() {
	disp := int8(c.fetchByte())
	c.PC = uint16(int32(c.PC) + int32(disp))
	c.internalCycles(c.PC, 5)
}

func (c *CPU_Z80) jrCond(cond bool) {
	disp := int8(c.fetchByte())
	if cond {
		c.PC = uint16(int32(c.PC) + int32(disp))
		c.internalCycles(c.PC, 5)
	}
}

func (c *CPU_Z80) opDAA() { c.daa() }

func (c *CPU_Z80) opCPL() {
	c.A = ^c.A
	c.F |= z80FlagH | z80FlagN
	c.F = (c.F &^ (z80FlagX | z80FlagY)) | (c.A & (z80FlagX | z80FlagY))
	c.markFlagsTouched()
}

// opSCF/opCCF implement the documented undocumented-bit rule: bits 3
// and 5 of the result are ((lastQ XOR F) | A) restricted to those two
// bits, where lastQ is F as it stood after the last instruction that
// actually computed new flags (not merely loaded F, as POP AF does).
func (c *CPU_Z80) opSCF() {
	q, f := c.lastQ, c.F
	c.F = (f &^ (z80FlagH | z80FlagN)) | z80FlagC
	c.F &^= z80FlagX | z80FlagY
	c.F |= ((q ^ f) | c.A) & (z80FlagX | z80FlagY)
	c.markFlagsTouched()
}

func (c *CPU_Z80) opCCF() {
	q, f := c.lastQ, c.F
	wasCarry := f&z80FlagC != 0
	c.F = f &^ (z80FlagH | z80FlagN | z80FlagC)
	if wasCarry {
		c.F |= z80FlagH
	} else {
		c.F |= z80FlagC
	}
	c.F &^= z80FlagX | z80FlagY
	c.F |= ((q ^ f) | c.A) & (z80FlagX | z80FlagY)
	c.markFlagsTouched()
}

func (c *CPU_Z80) opJPNN() { c.PC = c.fetchWord(); c.WZ = c.PC }

func (c *CPU_Z80) jpCond(cond bool) {
	addr := c.fetchWord()
	c.WZ = addr
	if cond {
		c.PC = addr
	}
}

func (c *CPU_Z80) opJPHL() { c.PC = c.HL() }

func (c *CPU_Z80) opCALLNN() {
	addr := c.fetchWord()
	c.WZ = addr
	c.internalCycles(c.PC, 1)
	c.pushWord(c.PC)
	c.PC = addr
}

func (c *CPU_Z80) callCond(cond bool) {
	addr := c.fetchWord()
	c.WZ = addr
	if cond {
		c.internalCycles(c.PC, 1)
		c.pushWord(c.PC)
		c.PC = addr
	}
}

func (c *CPU_Z80) opRET() { c.PC = c.popWord(); c.WZ = c.PC }

func (c *CPU_Z80) retCond(cond bool) {
	c.internalCycles(c.PC, 1)
	if cond {
		c.PC = c.popWord()
		c.WZ = c.PC
	}
}

func (c *CPU_Z80) regPairValue(pair int) uint16 {
	switch pair {
	case 0:
		return c.BC()
	case 1:
		return c.DE()
	case 2:
		return c.HL()
	default:
		return c.AF()
	}
}

func (c *CPU_Z80) setRegPair(pair int, v uint16) {
	switch pair {
	case 0:
		c.SetBC(v)
	case 1:
		c.SetDE(v)
	case 2:
		c.SetHL(v)
	default:
		c.SetAF(v)
	}
}

func (c *CPU_Z80) opPUSH(pair int) {
	c.internalCycles(c.PC, 1)
	c.pushWord(c.regPairValue(pair))
}
func (c *CPU_Z80) opPOP(pair int)  { c.setRegPair(pair, c.popWord()) }

func (c *CPU_Z80) opRST(addr uint16) {
	c.pushWord(c.PC)
	c.PC = addr
	c.WZ = addr
}

func (c *CPU_Z80) opOUTNA() {
	port := uint16(c.A)<<8 | uint16(c.fetchByte())
	c.out(port, c.A)
	c.WZ = (port & 0xFF00) | ((port + 1) & 0xFF)
}

func (c *CPU_Z80) opINAN() {
	low := c.fetchByte()
	port := uint16(c.A)<<8 | uint16(low)
	c.A = c.in(port)
	c.WZ = port + 1
}

func (c *CPU_Z80) opEXX() { c.Exx() }

func (c *CPU_Z80) opEXSPHL() {
	memVal := c.bus.Peekw(c.SP)
	c.bus.Pokew(c.SP, c.HL())
	c.SetHL(memVal)
	c.WZ = memVal
}

func (c *CPU_Z80) opEXDEHL() {
	d, h := c.DE(), c.HL()
	c.SetDE(h)
	c.SetHL(d)
}

func (c *CPU_Z80) opDI() { c.IFF1, c.IFF2 = false, false }

func (c *CPU_Z80) opEI() {
	c.IFF1, c.IFF2 = true, true
	c.pendingEI = true
}

func (c *CPU_Z80) opLDSPHL() { c.SP = c.HL() }

func (c *CPU_Z80) opCBPrefix() {
	opcode := c.fetchOpcode()
	c.cbOps[opcode](c)
}

func (c *CPU_Z80) opDDPrefix() {
	c.prefixMode = z80PrefixDD
	opcode := c.fetchOpcode()
	c.lastPrefixedOpcode = opcode
	c.ddOps[opcode](c)
}

func (c *CPU_Z80) opFDPrefix() {
	c.prefixMode = z80PrefixFD
	opcode := c.fetchOpcode()
	c.lastPrefixedOpcode = opcode
	c.fdOps[opcode](c)
}

func (c *CPU_Z80) opEDPrefix() {
	opcode := c.fetchOpcode()
	c.edOps[opcode](c)
}
