// Package ppu implements the core of the NES Picture Processing Unit
// (2C02): the register protocol, OAM, and the frame-at-a-time
// background/sprite renderer. It deliberately does not model
// scanline/dot timing, PAL, 8x16 sprites, sprite priority, or the
// odd-frame skip — see the package-level Non-goals in the project
// documentation.
package ppu

import "github.com/clebern/ppu2c02/ppubus"

// Frame dimensions, in pixels.
const (
	Width  = 256
	Height = 240
)

// Register offsets, at fixed positions on the 8-byte CPU-visible
// register file (spec: $2000-$2007 on real hardware, but this core
// only knows about the offset, not the absolute CPU address).
const (
	RegController uint16 = iota
	RegMask
	RegStatus
	RegOAMAddress
	RegOAMData
	RegScroll
	RegAddress
	RegData
)

// PPUCTRL bit flags.
//
//	7  bit  0
//	---- ----
//	VPHB SINN
//	|||| ||||
//	|||| ||++- Base nametable address (via NametableX/NametableY)
//	|||| |+--- VRAM address increment per PPUDATA access (0: +1, 1: +32)
//	|||| +---- Sprite pattern table address for 8x8 sprites
//	|||+------ Background pattern table address
//	||+------- Sprite size (unused: no 8x16 sprite support)
//	|+-------- PPU master/slave select (unused)
//	+--------- Generate an NMI at the start of vertical blank
const (
	CtrlNametableX             uint8 = 1 << 0
	CtrlNametableY             uint8 = 1 << 1
	CtrlVRAMIncrement32        uint8 = 1 << 2
	CtrlSpritePatternTable     uint8 = 1 << 3
	CtrlBackgroundPatternTable uint8 = 1 << 4
	CtrlSpriteSize             uint8 = 1 << 5 // unused in this core
	CtrlMasterSlave            uint8 = 1 << 6 // unused in this core
	CtrlVBlankNMI              uint8 = 1 << 7
)

// PPUSTATUS bit flags. The low 5 bits are open bus: they always
// reflect the last byte written to any PPU register.
const (
	StatusSpriteOverflow uint8 = 1 << 5
	StatusSprite0Hit     uint8 = 1 << 6
	StatusVBlank         uint8 = 1 << 7

	statusOpenBusMask uint8 = 0x1F
)

// scrollAxis tracks which byte of a SCROLL write pair is expected
// next.
type scrollAxis uint8

const (
	axisX scrollAxis = iota
	axisY
)

// Interrupts is the minimal CPU-interrupt collaborator VblankStart and
// VblankEnd operate on: a value type carrying the NMI line so the PPU
// never holds a long-lived reference to CPU state.
type Interrupts struct {
	NMI bool
}

// FrameSink receives one fully composed frame, one pixel at a time.
// x is in [0, Width), y is in [0, Height), colorIndex is a 6-bit
// index into the 64-entry system palette the frontend owns.
type FrameSink interface {
	SetPixel(x, y int, colorIndex uint8)
}

// PPU is the 2C02 core: register file, internal latches, OAM, and the
// renderer. The zero value (via New) is a correctly initialized,
// freshly powered-on PPU.
type PPU struct {
	bus *ppubus.Bus

	ctrl, mask, status uint8

	oamAddr uint8
	oam     [256]byte

	scrollAxis     scrollAxis
	pendingScrollX uint8
	scrollX        uint8
	scrollY        uint8

	addr        addrLatch
	vramAddress uint16
	dataLatch   uint8
}

// New constructs a zero-initialized PPU wired to the given video bus.
func New(bus *ppubus.Bus) *PPU {
	return &PPU{bus: bus}
}

// CPUWrite handles a CPU-driven write to one of the 8 register
// offsets. Every write first folds the low 5 bits of val into STATUS
// (open-bus simulation), regardless of whether the specific register
// then accepts the write.
func (p *PPU) CPUWrite(reg uint16, val byte) error {
	p.status = (p.status &^ statusOpenBusMask) | (val & statusOpenBusMask)

	switch reg {
	case RegController:
		p.ctrl = val
	case RegMask:
		p.mask = val
	case RegStatus:
		return &RegisterError{Kind: ErrIllegalWrite, Reg: reg}
	case RegOAMAddress:
		p.oamAddr = val
	case RegOAMData:
		p.oam[p.oamAddr] = val
		p.oamAddr++ // wraps modulo 256, since oamAddr is uint8
	case RegScroll:
		p.writeScroll(val)
	case RegAddress:
		if committed, addr := p.addr.write(val); committed {
			p.vramAddress = addr
		}
	case RegData:
		if err := p.bus.Write(p.vramAddress, val); err != nil {
			return err
		}
		p.incrementVRAMAddress()
	default:
		return &RegisterError{Kind: ErrUnimplementedWrite, Reg: reg}
	}

	return nil
}

func (p *PPU) writeScroll(val byte) {
	if p.scrollAxis == axisX {
		p.pendingScrollX = val
		p.scrollAxis = axisY
		return
	}

	p.scrollX, p.scrollY = p.pendingScrollX, val
	p.scrollAxis = axisX
}

// CPURead handles a CPU-driven read of one of the 8 register offsets.
// Reading STATUS clears VBLANK and resets the SCROLL/ADDR write
// toggles (matching real hardware, not just the simplified model some
// software emulators use). Reading DATA returns the previous buffered
// byte and refills the buffer from the bus.
func (p *PPU) CPURead(reg uint16) (byte, error) {
	switch reg {
	case RegStatus:
		v := p.status
		p.status &^= StatusVBlank
		p.scrollAxis = axisX
		p.addr.reset()
		return v, nil
	case RegOAMData:
		return p.oam[p.oamAddr], nil
	case RegData:
		v := p.dataLatch
		data, err := p.bus.Read(p.vramAddress)
		if err != nil {
			return 0, err
		}
		p.dataLatch = data
		p.incrementVRAMAddress()
		return v, nil
	case RegController, RegMask, RegOAMAddress, RegScroll, RegAddress:
		return 0, &RegisterError{Kind: ErrIllegalRead, Reg: reg}
	default:
		return 0, &RegisterError{Kind: ErrUnimplementedRead, Reg: reg}
	}
}

func (p *PPU) incrementVRAMAddress() {
	inc := uint16(1)
	if p.ctrl&CtrlVRAMIncrement32 != 0 {
		inc = 32
	}
	p.vramAddress += inc
}

// VblankStart marks the start of vertical blank, raising NMI on the
// returned interrupt state if CTRL.VBlankNMI is enabled. Called once
// per frame by the host's scheduler.
func (p *PPU) VblankStart(in Interrupts) Interrupts {
	p.status |= StatusVBlank
	if p.ctrl&CtrlVBlankNMI != 0 {
		in.NMI = true
	}
	return in
}

// VblankEnd marks the end of vertical blank. Interrupt state passes
// through unchanged.
func (p *PPU) VblankEnd(in Interrupts) Interrupts {
	p.status &^= StatusVBlank
	return in
}

// RenderEnd clears SPRITE_0_HIT, preparing STATUS for the next
// frame's sprite pass.
func (p *PPU) RenderEnd() {
	p.status &^= StatusSprite0Hit
}

// Render composes one complete frame: the universal background
// color, then the scrolled background tiles, then all 64 sprites in
// ascending OAM order (so sprite 0's hit flag is deterministic).
// Rendering aborts on the first bus error; the frame sink is left
// partially written, which is fine since it will be fully overwritten
// on the next frame.
func (p *PPU) Render(sink FrameSink) error {
	if err := p.renderUniversalBackground(sink); err != nil {
		return err
	}
	if err := p.renderBackground(sink); err != nil {
		return err
	}
	return p.renderSprites(sink)
}
