package main

import "testing"

func TestNewMachineWiring(t *testing.T) {
	m := NewMachine()
	if m.Memory == nil || m.Keyboard == nil || m.Ports == nil || m.Video == nil || m.Bus == nil || m.CPU == nil {
		t.Fatal("NewMachine left a component unwired")
	}
}

func TestRunFrameProducesAPresentedFrame(t *testing.T) {
	m := NewMachine()
	m.CPU.Halted = true // avoid running into unmapped ROM-less memory

	var polled bool
	frame := m.RunFrame(func(kbd *Keyboard) { polled = true })

	if !polled {
		t.Error("RunFrame did not invoke the keyboard poll callback")
	}
	w, h := m.Video.FrameDimensions()
	if len(frame) != w*h*3 {
		t.Errorf("frame length = %d, want %d", len(frame), w*h*3)
	}
	if m.FramesRun() != 1 {
		t.Errorf("FramesRun() = %d, want 1", m.FramesRun())
	}
}

func TestRunFrameNilPollIsFine(t *testing.T) {
	m := NewMachine()
	m.CPU.Halted = true

	if m.RunFrame(nil) == nil {
		t.Fatal("RunFrame(nil) returned no frame")
	}
}

func TestMachineResetReturnsClockToZero(t *testing.T) {
	m := NewMachine()
	m.Bus.tstates = 12345
	m.CPU.PC = 0x9000

	m.Reset()
	if m.Bus.Tstates() != 0 {
		t.Errorf("Tstates() after Reset = %d, want 0", m.Bus.Tstates())
	}
	if m.CPU.PC != 0 {
		t.Errorf("CPU.PC after Reset = %#04x, want 0", m.CPU.PC)
	}
}
