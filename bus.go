// bus.go - the shared clock: every timed memory, IO and internal bus
// cycle passes through BusAccess, which is the single place that
// advances the T-state counter and, in lockstep, the ULA raster
// cursor. Nothing else in this module is allowed to touch either.

package main

// Z80Bus is everything the CPU needs from the outside world. Every
// method bills its own T-states onto the shared clock before
// returning - the CPU never calls a tick primitive itself.
type Z80Bus interface {
	FetchOpcode(pc uint16) byte
	Peekb(addr uint16) byte
	Pokeb(addr uint16, value byte)
	Peekw(addr uint16) uint16
	Pokew(addr uint16, value uint16)
	AddressOnBus(addr uint16, cycles int)
	InPort(port uint16) byte
	OutPort(port uint16, value byte)
	IsActiveINT() bool
}

// BusAccess is the concrete Z80Bus: Memory, Ports and Video wired
// together behind one monotonic T-state counter, plus the contention
// and screen-byte-emission tables that make the timing and the
// raster agree with each other.
type BusAccess struct {
	memory *Memory
	ports  *Ports
	video  *Video

	tstates int
	frame   int

	contentionTable     []byte
	screenByteSchedule  []int
	nextScreenByteIndex int
}

func NewBusAccess(memory *Memory, ports *Ports, video *Video) *BusAccess {
	return &BusAccess{
		memory:             memory,
		ports:              ports,
		video:              video,
		contentionTable:    buildContentionTable(),
		screenByteSchedule: buildScreenByteSchedule(),
	}
}

func (b *BusAccess) Reset() {
	b.tstates = 0
	b.frame = 0
	b.nextScreenByteIndex = 0
}

// Tstates is the current position of the shared clock within the
// present frame.
func (b *BusAccess) Tstates() int { return b.tstates }

// tick1 advances the clock by a single T-state and gives the
// rasterizer a chance to catch up - this is the only place tstates
// is ever incremented.
func (b *BusAccess) tick1() {
	b.tstates++
	b.emitDueBytes()
}

// emitDueBytes emits every screen byte whose scheduled T-state has
// now passed, interleaving the raster with CPU execution one array
// lookup at a time.
func (b *BusAccess) emitDueBytes() {
	for b.nextScreenByteIndex < len(b.screenByteSchedule) &&
		b.tstates >= b.screenByteSchedule[b.nextScreenByteIndex] {
		b.video.EmitNextByte(b.memory)
		b.nextScreenByteIndex++
	}
}

// contend applies the contention delay, if any, for a bus cycle
// about to begin at the current T-state against addr.
func (b *BusAccess) contend(addr uint16) {
	if !IsContended(addr) {
		return
	}
	if b.tstates < 0 || b.tstates >= len(b.contentionTable) {
		return
	}
	delay := int(b.contentionTable[b.tstates])
	for i := 0; i < delay; i++ {
		b.tick1()
	}
}

// contendedBlock contends once against addr, then runs n plain
// T-states - the shape of every timed peekb/pokeb/fetch_opcode cycle.
func (b *BusAccess) contendedBlock(addr uint16, n int) {
	b.contend(addr)
	for i := 0; i < n; i++ {
		b.tick1()
	}
}

func (b *BusAccess) plainBlock(n int) {
	for i := 0; i < n; i++ {
		b.tick1()
	}
}

func (b *BusAccess) FetchOpcode(pc uint16) byte {
	b.contendedBlock(pc, 4)
	return b.memory.Peekb(pc)
}

func (b *BusAccess) Peekb(addr uint16) byte {
	b.contendedBlock(addr, 3)
	return b.memory.Peekb(addr)
}

func (b *BusAccess) Pokeb(addr uint16, value byte) {
	b.contendedBlock(addr, 3)
	b.memory.Pokeb(addr, value)
}

// Peekw and Pokew are two independently-contended byte cycles in
// sequence, never a single wide cycle.
func (b *BusAccess) Peekw(addr uint16) uint16 {
	lo := b.Peekb(addr)
	hi := b.Peekb(addr + 1)
	return uint16(hi)<<8 | uint16(lo)
}

func (b *BusAccess) Pokew(addr uint16, value uint16) {
	b.Pokeb(addr, byte(value))
	b.Pokeb(addr+1, byte(value>>8))
}

// AddressOnBus bills n single-T-state internal cycles against addr,
// each independently contended - used for the padding cycles between
// a memory operation and the next opcode fetch (e.g. the two extra
// cycles of INC/DEC rr).
func (b *BusAccess) AddressOnBus(addr uint16, cycles int) {
	for i := 0; i < cycles; i++ {
		b.contend(addr)
		b.tick1()
	}
}

// InPort and OutPort follow the four-way high/low contention split:
// a port is high-contended when it falls in the same 0x4000-0x7FFF
// window as contended memory, low-contended when its bottom address
// bit is clear.
func (b *BusAccess) InPort(port uint16) byte {
	b.ioTiming(port)
	return b.ports.InPort(port)
}

func (b *BusAccess) OutPort(port uint16, value byte) {
	b.ioTiming(port)
	b.ports.OutPort(port, value)
	if port&0xFF == 0xFE {
		b.video.SetBorder(b.ports.CurrentBorder)
	}
}

func (b *BusAccess) ioTiming(port uint16) {
	high := IsContended(port)
	low := port&0x01 == 0

	switch {
	case high && low:
		for i := 0; i < 4; i++ {
			b.contendedBlock(port, 1)
		}
	case high && !low:
		b.contendedBlock(port, 1)
		b.plainBlock(3)
	case !high && low:
		b.plainBlock(1)
		b.contendedBlock(port, 3)
	default:
		b.plainBlock(4)
	}
}

// IsActiveINT reports whether the current T-state falls in one of
// the two windows in which the ULA asserts /INT: the first 24
// T-states of the frame, or the first 24 T-states past the nominal
// frame length (covering an instruction that overran the frame
// boundary before EndFrame folded the counter back).
func (b *BusAccess) IsActiveINT() bool {
	if b.tstates >= 0 && b.tstates < 24 {
		return true
	}
	if b.tstates >= TstatesPerInterrupt && b.tstates < TstatesPerInterrupt+24 {
		return true
	}
	return false
}

// EndFrame folds the clock back by exactly one frame's worth of
// T-states (an instruction straddling the frame boundary keeps
// whatever overrun it produced) and rearms the raster cursor for the
// next frame.
func (b *BusAccess) EndFrame(frameTstates int) {
	b.tstates -= frameTstates
	b.nextScreenByteIndex = 0
	b.frame++
}

func (b *BusAccess) Frame() int { return b.frame }
