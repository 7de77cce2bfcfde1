package main

import "testing"

func newTestMachine() (*Memory, *Keyboard, *Ports, *Video, *BusAccess) {
	mem := NewMemory()
	kbd := NewKeyboard()
	ports := NewPorts(kbd)
	video := NewVideo()
	bus := NewBusAccess(mem, ports, video)
	return mem, kbd, ports, video, bus
}

func TestOutPortPropagatesBorderToVideo(t *testing.T) {
	_, _, ports, video, bus := newTestMachine()

	bus.OutPort(0x00FE, 0x03) // border = green
	if ports.CurrentBorder != 3 {
		t.Fatalf("Ports.CurrentBorder = %d, want 3", ports.CurrentBorder)
	}
	if video.border != 3 {
		t.Fatalf("Video.border = %d, want 3 (border write must propagate from BusAccess.OutPort)", video.border)
	}
}

func TestOutPortIgnoresOtherPorts(t *testing.T) {
	_, _, _, video, bus := newTestMachine()
	video.SetBorder(5)

	bus.OutPort(0x001F, 0x00) // not port 0xFE
	if video.border != 5 {
		t.Fatalf("Video.border changed from a non-0xFE port write: got %d", video.border)
	}
}

func TestEndFrameFoldsClockBack(t *testing.T) {
	_, _, _, _, bus := newTestMachine()
	bus.tstates = TstatesPerInterrupt + 7 // instruction overran the frame boundary

	bus.EndFrame(TstatesPerInterrupt)
	if bus.Tstates() != 7 {
		t.Fatalf("Tstates() after EndFrame = %d, want 7", bus.Tstates())
	}
	if bus.nextScreenByteIndex != 0 {
		t.Fatalf("nextScreenByteIndex not rearmed: %d", bus.nextScreenByteIndex)
	}
}

func TestIsActiveINTWindows(t *testing.T) {
	_, _, _, _, bus := newTestMachine()

	bus.tstates = 0
	if !bus.IsActiveINT() {
		t.Error("INT should be active at T=0")
	}
	bus.tstates = 23
	if !bus.IsActiveINT() {
		t.Error("INT should be active at T=23")
	}
	bus.tstates = 24
	if bus.IsActiveINT() {
		t.Error("INT should not be active at T=24")
	}
	bus.tstates = TstatesPerInterrupt
	if !bus.IsActiveINT() {
		t.Error("INT should be active at the start of the next frame's window")
	}
}

func TestUncontendedAccessHasNoDelay(t *testing.T) {
	_, _, _, _, bus := newTestMachine()
	bus.tstates = contentionFirstTstate

	start := bus.Tstates()
	bus.Peekb(0x8000) // uncontended RAM
	if elapsed := bus.Tstates() - start; elapsed != 3 {
		t.Errorf("uncontended Peekb elapsed = %d, want 3", elapsed)
	}
}
