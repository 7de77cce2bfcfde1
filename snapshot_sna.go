// snapshot_sna.go - classic 48K .sna snapshot loader: a fixed 27-byte
// register header followed by a flat 48KiB RAM image.

package main

import "fmt"

const snaSize = 27 + 49152

// LoadSNA restores m's CPU registers and RAM from a 49,179-byte .sna
// image, then performs the RETN-equivalent the format expects: pop PC
// off the restored stack and latch the border from the header value.
func LoadSNA(m *Machine, data []byte) error {
	if len(data) != snaSize {
		return fmt.Errorf("%w: sna length %d, want %d", ErrSnapshotMalformed, len(data), snaSize)
	}

	c := m.CPU
	c.I = data[0]
	c.L2, c.H2 = data[1], data[2]
	c.E2, c.D2 = data[3], data[4]
	c.C2, c.B2 = data[5], data[6]
	c.F2, c.A2 = data[7], data[8]
	c.L, c.H = data[9], data[10]
	c.E, c.D = data[11], data[12]
	c.C, c.B = data[13], data[14]
	c.IY = uint16(data[16])<<8 | uint16(data[15])
	c.IX = uint16(data[18])<<8 | uint16(data[17])

	iff := data[19]
	c.IFF2 = iff&0x04 != 0
	c.IFF1 = c.IFF2

	c.R = data[20]
	c.F, c.A = data[21], data[22]
	c.SP = uint16(data[24])<<8 | uint16(data[23])
	c.IM = data[25]
	border := data[26]

	m.Memory.LoadRAM(0x4000, data[27:])

	c.PC = m.Memory.Peekw(c.SP)
	c.SP += 2

	m.Ports.CurrentBorder = border & 0x07
	m.Video.SetBorder(border & 0x07)

	return nil
}
