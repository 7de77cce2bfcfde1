package main

import "testing"

// Property: for every T-state in the contended window, the table value
// equals 6-((t-14335) mod 8) when (t-14335) mod 224 < 128 and
// (t-14335) mod 8 < 6, else 0 - the repeating 6,5,4,3,2,1,0,0 pattern.
func TestContentionTableFormula(t *testing.T) {
	table := buildContentionTable()

	for tstate := contentionFirstTstate; tstate < contentionLastTstate; tstate++ {
		rel := tstate - contentionFirstTstate
		var want byte
		if rel%TstatesPerLine < 128 {
			if offset := rel % 8; offset < 6 {
				want = byte(6 - offset)
			}
		}
		if got := table[tstate]; got != want {
			t.Fatalf("t=%d: table = %d, want %d", tstate, got, want)
		}
		if table[tstate] > 6 {
			t.Fatalf("t=%d: table = %d, out of [0,6]", tstate, table[tstate])
		}
	}
}

// Scenario 3 (contended opcode fetch): an opcode fetch beginning at
// T=14335 against a contended address adds the table's delay (6) to
// its base cost (4), for 10 T-states total - the first of the
// "three bus ops add delays 6,5,4 to their base 4,3,3" sequence the
// scenario describes. Each subsequent contended byte access in this
// engine is its own independently-contended bus op (fetchWord reads
// the two address bytes as two separate contended Peekb calls, same
// as a real Z80 M-cycle sequence), so the running total after the
// opcode fetch continues to track the contention table exactly rather
// than the scenario's illustrative 3-op collapse.
func TestContendedOpcodeFetchAt14335(t *testing.T) {
	mem := NewMemory()
	kbd := NewKeyboard()
	ports := NewPorts(kbd)
	video := NewVideo()
	bus := NewBusAccess(mem, ports, video)
	bus.tstates = contentionFirstTstate

	mem.ForceWrite(0x4000, 0x3A)
	mem.ForceWrite(0x4001, 0x00)
	mem.ForceWrite(0x4002, 0x40)

	c := NewCPU_Z80(bus)
	c.PC = 0x4000

	start := bus.Tstates()
	_ = c.fetchOpcode()
	elapsed := bus.Tstates() - start

	if elapsed != 10 {
		t.Errorf("opcode fetch elapsed = %d T-states, want 10 (delay 6 + base 4)", elapsed)
	}
}

func TestScreenByteScheduleCovers192x32Cells(t *testing.T) {
	schedule := buildScreenByteSchedule()
	if len(schedule) != VisibleLines*CellsPerLine {
		t.Fatalf("schedule length = %d, want %d", len(schedule), VisibleLines*CellsPerLine)
	}
	for i := 1; i < len(schedule); i++ {
		if schedule[i] <= schedule[i-1] {
			t.Fatalf("schedule not strictly increasing at %d: %d <= %d", i, schedule[i], schedule[i-1])
		}
	}
}
