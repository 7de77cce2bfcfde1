package main

import "testing"

func TestZ80DecompressExpandsRunLength(t *testing.T) {
	// A run of 5 copies of 0x42, then two literal bytes.
	src := []byte{0xED, 0xED, 0x05, 0x42, 0x01, 0x02}
	out, err := z80Decompress(src, 7)
	if err != nil {
		t.Fatalf("z80Decompress: %v", err)
	}
	want := []byte{0x42, 0x42, 0x42, 0x42, 0x42, 0x01, 0x02}
	if len(out) != len(want) {
		t.Fatalf("len(out) = %d, want %d", len(out), len(want))
	}
	for i := range want {
		if out[i] != want[i] {
			t.Errorf("out[%d] = %#02x, want %#02x", i, out[i], want[i])
		}
	}
}

func TestZ80DecompressLiteralEDNotMistakenForMarker(t *testing.T) {
	// A lone 0xED (not followed by a second 0xED) is literal data.
	src := []byte{0xED, 0x01, 0x02, 0x03}
	out, err := z80Decompress(src, 4)
	if err != nil {
		t.Fatalf("z80Decompress: %v", err)
	}
	want := []byte{0xED, 0x01, 0x02, 0x03}
	for i := range want {
		if out[i] != want[i] {
			t.Errorf("out[%d] = %#02x, want %#02x", i, out[i], want[i])
		}
	}
}

func TestZ80DecompressWrongLengthErrors(t *testing.T) {
	src := []byte{0x01, 0x02}
	if _, err := z80Decompress(src, 10); err == nil {
		t.Fatal("expected error when decompressed length falls short of want")
	}
}

// buildZ80V1Fixture builds a minimal uncompressed v1 .z80 snapshot: a
// 30-byte header (PC non-zero marks it as v1) followed by a flat,
// uncompressed 48KiB RAM image.
func buildZ80V1Fixture() []byte {
	header := make([]byte, 30)
	header[0], header[1] = 0x11, 0x22 // A, F
	header[2], header[3] = 0x33, 0x44 // BC
	header[6], header[7] = 0x00, 0x90 // PC = 0x9000 (v1 marker: non-zero)
	header[8], header[9] = 0x00, 0xC0 // SP
	header[12] = 0x00                 // border bits 1-3 = 0, not compressed

	ram := make([]byte, 49152)
	ram[0] = 0xAB

	return append(header, ram...)
}

func TestLoadZ80V1Uncompressed(t *testing.T) {
	m := NewMachine()
	data := buildZ80V1Fixture()

	if err := LoadZ80(m, data); err != nil {
		t.Fatalf("LoadZ80: %v", err)
	}
	if m.CPU.PC != 0x9000 {
		t.Errorf("PC = %#04x, want 0x9000", m.CPU.PC)
	}
	if m.CPU.A != 0x11 {
		t.Errorf("A = %#02x, want 0x11", m.CPU.A)
	}
	if m.Memory.Peekb(0x4000) != 0xAB {
		t.Errorf("RAM[0x4000] = %#02x, want 0xAB", m.Memory.Peekb(0x4000))
	}
}

func TestLoadZ80RejectsTruncatedHeader(t *testing.T) {
	m := NewMachine()
	if err := LoadZ80(m, make([]byte, 10)); err == nil {
		t.Fatal("expected error for truncated z80 header")
	}
}

func TestZ80Is48KMode(t *testing.T) {
	if !z80Is48KMode(23, 0) {
		t.Error("v2 hardware mode 0 should be 48K")
	}
	if !z80Is48KMode(23, 1) {
		t.Error("v2 hardware mode 1 should be 48K")
	}
	if z80Is48KMode(23, 4) {
		t.Error("v2 hardware mode 4 (128K) should not be reported as 48K")
	}
	if !z80Is48KMode(54, 0) {
		t.Error("v3 hardware mode 0 should be 48K")
	}
	if z80Is48KMode(54, 4) {
		t.Error("v3 hardware mode 4 (128K) should not be reported as 48K")
	}
}
