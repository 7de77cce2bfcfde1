package main

import "testing"

func TestLDAFromIXPlusD(t *testing.T) {
	c, bus := newTestCPU()
	c.Reset()
	c.IX = 0x8000
	bus.mem[0x8005] = 0x99
	c.PC = 0xB000
	bus.load(0xB000, 0xDD, 0x7E, 0x05) // LD A,(IX+5)

	c.Step()
	if c.A != 0x99 {
		t.Errorf("A = %#02x, want 0x99", c.A)
	}
}

func TestIncIXPlusD(t *testing.T) {
	c, bus := newTestCPU()
	c.Reset()
	c.IX = 0x8000
	bus.mem[0x7FFE] = 0x10 // IX + (-2)
	c.PC = 0xB000
	bus.load(0xB000, 0xDD, 0x34, 0xFE) // INC (IX-2)

	c.Step()
	if bus.mem[0x7FFE] != 0x11 {
		t.Errorf("(IX-2) = %#02x, want 0x11", bus.mem[0x7FFE])
	}
}

// DD-prefixed opcodes with no indexed meaning fall through to the main
// table with H/L substituted for IXH/IXL.
func TestDDFallthroughSubstitutesIXHL(t *testing.T) {
	c, bus := newTestCPU()
	c.Reset()
	c.PC = 0xB000
	bus.load(0xB000, 0xDD, 0x26, 0x12) // LD IXH,0x12 (falls through to LD H,n)

	c.Step()
	if c.IX>>8 != 0x12 {
		t.Errorf("IXH = %#02x, want 0x12", c.IX>>8)
	}
	if c.H != 0 {
		t.Error("plain H should not have been touched by a DD-prefixed opcode")
	}
}

func TestDDCBBitUsesEffectiveAddressAsWZ(t *testing.T) {
	c, bus := newTestCPU()
	c.Reset()
	c.IX = 0x8000
	bus.mem[0x8003] = 0x00
	c.PC = 0xB000
	bus.load(0xB000, 0xDD, 0xCB, 0x03, 0x46) // BIT 0,(IX+3)

	c.Step()
	if c.WZ != 0x8003 {
		t.Errorf("WZ = %#04x, want 0x8003 (the effective address)", c.WZ)
	}
	if !c.Flag(z80FlagZ) {
		t.Error("Z should be set: tested bit is 0")
	}
}
