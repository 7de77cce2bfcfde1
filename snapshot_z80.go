// snapshot_z80.go - the classic .z80 snapshot format: a 30-byte v1
// header (optionally extended by a v2/v3 additional-header block) and
// either a flat or run-length-compressed 48K RAM image. 128K-only
// paging is rejected, matching the 48K-only scope of this core.

package main

import "fmt"

// z80PageInfo maps a v2/v3 page number to the 48K address it loads at.
// Page numbers outside this set belong to 128K bank switching and are
// rejected with ErrUnsupportedSnapshotVersion.
var z80PageInfo = map[byte]uint16{
	4: 0x8000,
	5: 0xC000,
	8: 0x4000,
}

// LoadZ80 restores m's CPU registers and RAM from a .z80 snapshot,
// detecting v1 (plain 30-byte header, PC non-zero) versus v2/v3
// (PC==0 in the base header, real PC in the additional block).
func LoadZ80(m *Machine, data []byte) error {
	if len(data) < 30 {
		return fmt.Errorf("%w: z80 header truncated", ErrSnapshotMalformed)
	}

	c := m.CPU
	c.A, c.F = data[0], data[1]
	c.C, c.B = data[2], data[3]
	c.L, c.H = data[4], data[5]
	pcV1 := uint16(data[7])<<8 | uint16(data[6])
	c.SP = uint16(data[9])<<8 | uint16(data[8])
	c.I = data[10]
	r7 := data[11]

	byte12 := data[12]
	if byte12 == 0xFF {
		byte12 = 1
	}
	border := (byte12 >> 1) & 0x07
	compressedV1 := byte12&0x20 != 0

	c.E, c.D = data[13], data[14]
	c.C2, c.B2 = data[15], data[16]
	c.E2, c.D2 = data[17], data[18]
	c.L2, c.H2 = data[19], data[20]
	c.A2, c.F2 = data[21], data[22]
	c.IY = uint16(data[24])<<8 | uint16(data[23])
	c.IX = uint16(data[26])<<8 | uint16(data[25])

	c.IFF1 = data[27] != 0
	c.IFF2 = data[28] != 0
	c.IM = data[29] & 0x03

	r := r7 & 0x7F
	if byte12&0x01 != 0 {
		r |= 0x80
	}
	c.R = r

	m.Ports.CurrentBorder = border
	m.Video.SetBorder(border)

	if pcV1 != 0 {
		c.PC = pcV1
		payload := data[30:]
		if compressedV1 {
			ram, err := z80Decompress(payload, 49152)
			if err != nil {
				return err
			}
			m.Memory.LoadRAM(0x4000, ram)
		} else {
			if len(payload) != 49152 {
				return fmt.Errorf("%w: v1 uncompressed RAM length %d", ErrSnapshotMalformed, len(payload))
			}
			m.Memory.LoadRAM(0x4000, payload)
		}
		return nil
	}

	return loadZ80V2V3(m, data)
}

func loadZ80V2V3(m *Machine, data []byte) error {
	if len(data) < 32 {
		return fmt.Errorf("%w: z80 v2/v3 missing additional header length", ErrSnapshotMalformed)
	}
	addlLen := int(data[30]) | int(data[31])<<8
	addlStart := 32
	if len(data) < addlStart+addlLen {
		return fmt.Errorf("%w: z80 v2/v3 additional header truncated", ErrSnapshotMalformed)
	}
	addl := data[addlStart : addlStart+addlLen]
	if len(addl) < 4 {
		return fmt.Errorf("%w: z80 v2/v3 additional header too short", ErrSnapshotMalformed)
	}

	m.CPU.PC = uint16(addl[1])<<8 | uint16(addl[0])
	hwMode := addl[2]
	if !z80Is48KMode(addlLen, hwMode) {
		return fmt.Errorf("%w: z80 snapshot targets a non-48K machine", ErrUnsupportedSnapshotVersion)
	}

	pages := data[addlStart+addlLen:]
	for len(pages) > 0 {
		if len(pages) < 3 {
			return fmt.Errorf("%w: z80 page header truncated", ErrSnapshotMalformed)
		}
		length := int(pages[0]) | int(pages[1])<<8
		pageNum := pages[2]
		pages = pages[3:]

		base, ok := z80PageInfo[pageNum]
		if !ok {
			return fmt.Errorf("%w: z80 page %d not part of a 48K map", ErrUnsupportedSnapshotVersion, pageNum)
		}

		var ram []byte
		if length == 0xFFFF {
			if len(pages) < 16384 {
				return fmt.Errorf("%w: z80 uncompressed page truncated", ErrSnapshotMalformed)
			}
			ram = pages[:16384]
			pages = pages[16384:]
		} else {
			if len(pages) < length {
				return fmt.Errorf("%w: z80 page body truncated", ErrSnapshotMalformed)
			}
			decoded, err := z80Decompress(pages[:length], 16384)
			if err != nil {
				return err
			}
			ram = decoded
			pages = pages[length:]
		}
		m.Memory.LoadRAM(base, ram)
	}

	return nil
}

// z80Is48KMode reports whether the additional header's hardware-mode
// byte names a plain 48K machine. v2 uses a different mode numbering
// than v3; both treat 0 as "48K, no add-ons".
func z80Is48KMode(addlLen int, hwMode byte) bool {
	if addlLen <= 23 { // v2
		return hwMode == 0 || hwMode == 1
	}
	return hwMode == 0 // v3: 0 == 48K
}

// z80Decompress expands the Z80 format's run-length scheme
// (ED ED <count> <byte> becomes count copies of byte; a count of 0
// produces no bytes) to exactly want bytes.
func z80Decompress(src []byte, want int) ([]byte, error) {
	out := make([]byte, 0, want)
	for i := 0; i < len(src) && len(out) < want; {
		if i+3 < len(src) && src[i] == 0xED && src[i+1] == 0xED {
			count := int(src[i+2])
			value := src[i+3]
			for j := 0; j < count && len(out) < want; j++ {
				out = append(out, value)
			}
			i += 4
			continue
		}
		out = append(out, src[i])
		i++
	}
	if len(out) != want {
		return nil, fmt.Errorf("%w: decompressed page length %d, want %d", ErrSnapshotMalformed, len(out), want)
	}
	return out, nil
}
