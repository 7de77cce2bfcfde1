package main

import "testing"

func TestByteToKeyName(t *testing.T) {
	cases := []struct {
		in     byte
		name   string
		wantOK bool
	}{
		{'\r', "Enter", true},
		{'\n', "Enter", true},
		{' ', "Space", true},
		{'5', "5", true},
		{'a', "A", true},
		{'Z', "Z", true},
		{0x01, "", false},
	}
	for _, tc := range cases {
		name, ok := byteToKeyName(tc.in)
		if ok != tc.wantOK {
			t.Errorf("byteToKeyName(%#02x) ok = %v, want %v", tc.in, ok, tc.wantOK)
			continue
		}
		if ok && name != tc.name {
			t.Errorf("byteToKeyName(%#02x) = %q, want %q", tc.in, name, tc.name)
		}
	}
}

func TestByteToKeyNameMatchesHostKeyTable(t *testing.T) {
	for _, b := range []byte("0123456789") {
		name, ok := byteToKeyName(b)
		if !ok {
			t.Fatalf("digit %q not recognized", b)
		}
		if _, known := hostKeyTable[name]; !known {
			t.Errorf("byteToKeyName(%q) = %q, not present in hostKeyTable", b, name)
		}
	}
	for b := byte('a'); b <= 'z'; b++ {
		name, ok := byteToKeyName(b)
		if !ok {
			t.Fatalf("letter %q not recognized", b)
		}
		if _, known := hostKeyTable[name]; !known {
			t.Errorf("byteToKeyName(%q) = %q, not present in hostKeyTable", b, name)
		}
	}
}

func TestPollDrainsQueuedEvents(t *testing.T) {
	h := NewTerminalHost()
	kbd := NewKeyboard()

	h.events <- KeyEvent{Name: "A", Down: true}
	h.Poll(kbd)

	pos := hostKeyTable["A"]
	if got := kbd.ReadRow(^byte(1 << pos.row)); got&(1<<pos.bit) != 0 {
		t.Error("Poll did not apply the queued key-down event")
	}
}
