// Package cartridge provides a minimal ppubus.Cartridge fixture: flat
// CHR storage plus nametable mirroring. It exists to exercise
// ppubus.Bus and ppu.PPU end-to-end, not to parse iNES files or
// implement a real mapper's bank switching — that is out of scope.
package cartridge

// Mirroring selects how the 2KB of nametable VRAM is mirrored across
// the 4 logical nametables: horizontal or vertical arrangement, as
// wired on the cartridge. Single-screen and four-screen modes are not
// provided.
//
// https://www.nesdev.org/wiki/Mirroring#Nametable_Mirroring
type Mirroring uint8

const (
	MirrorHorizontal Mirroring = iota
	MirrorVertical
)

const (
	chrSize    = 0x2000
	nametable0 = 0x2000
)

// Fixture is a writable-CHR-backed Cartridge with a single selectable
// mirroring mode. It has no bank switching and no battery-backed
// save RAM; real mappers would extend this with registers of their
// own, but those are out of scope here.
type Fixture struct {
	CHR       []byte
	Mirroring Mirroring
}

// NewFixture builds a Fixture over the given CHR data (pattern
// tables), padded or truncated to 8KB. chr may be nil, yielding an
// all-zero pattern table.
func NewFixture(chr []byte, mirroring Mirroring) *Fixture {
	buf := make([]byte, chrSize)
	copy(buf, chr)
	return &Fixture{CHR: buf, Mirroring: mirroring}
}

// PPURead implements ppubus.Cartridge.
func (f *Fixture) PPURead(addr uint16, vram []byte) (byte, error) {
	if addr < nametable0 {
		return f.CHR[addr], nil
	}
	return vram[f.mirroredIndex(addr)], nil
}

// PPUWrite implements ppubus.Cartridge. Writes to pattern-table
// addresses are accepted (some real cartridges use CHR RAM); this
// fixture always treats CHR as writable.
func (f *Fixture) PPUWrite(addr uint16, val byte, vram []byte) error {
	if addr < nametable0 {
		f.CHR[addr] = val
		return nil
	}
	vram[f.mirroredIndex(addr)] = val
	return nil
}

// mirroredIndex maps a nametable-space address (already reduced to
// the 0x2000-0x2FFF range by Bus) into the 2KB of physical VRAM
// according to the fixture's mirroring mode.
func (f *Fixture) mirroredIndex(addr uint16) uint16 {
	a := addr - nametable0

	switch f.Mirroring {
	case MirrorHorizontal:
		if a >= 0x800 {
			return 0x400 + (a-0x800)%0x400
		}
		return a % 0x400
	default: // MirrorVertical
		return a % 0x800
	}
}
