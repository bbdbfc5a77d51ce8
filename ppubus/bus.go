// Package ppubus implements the PPU's video address space: the thin
// multiplexer that routes a 16-bit (effectively 14-bit) PPU address
// to the cartridge or to palette RAM, as described by the 2C02's
// memory map.
//
// https://www.nesdev.org/wiki/PPU_memory_map
package ppubus

// Cartridge is the external collaborator that owns CHR data and
// applies its mapper's nametable mirroring policy. addr has already
// been reduced into the 0x0000-0x2FFF range by Bus before the call:
// pattern-table accesses arrive as-is, nametable-mirror accesses
// ($3000-$3EFF) arrive shifted down by 0x1000. vram is the 2KB of
// nametable storage the Bus owns; the cartridge decides how to index
// into it.
type Cartridge interface {
	PPURead(addr uint16, vram []byte) (byte, error)
	PPUWrite(addr uint16, val byte, vram []byte) error
}

// Palette is the 32-byte palette RAM collaborator. offset is already
// reduced to [0, 32) by Bus.
type Palette interface {
	Read(offset int) byte
	Write(offset int, val byte)
}

const (
	vramSize    = 2048
	paletteSize = 32

	nametableMirrorEnd = 0x3EFF
	paletteBase        = 0x3F00
	paletteRangeEnd    = 0x3F1F
	paletteMirrorBase  = 0x3F20
	paletteMirrorEnd   = 0x3FFF
)

// Bus is the PPU's video subsystem. It owns the 2KB of nametable VRAM
// (the cartridge only tells it how to mirror into that storage) and
// dispatches every access to the cartridge or to palette RAM.
type Bus struct {
	Cartridge Cartridge
	Palette   Palette

	vram [vramSize]byte
}

// NewBus builds a Bus over the given cartridge and palette
// collaborators. Nametable VRAM starts zeroed.
func NewBus(cart Cartridge, pal Palette) *Bus {
	return &Bus{Cartridge: cart, Palette: pal}
}

// Read dispatches a PPU-space read per the table in the 2C02's memory
// map: pattern tables and nametables to the cartridge, palette RAM
// (and its mirrors) to Palette.
func (b *Bus) Read(addr uint16) (byte, error) {
	a := addr & 0x3FFF

	switch {
	case a <= 0x2FFF:
		v, err := b.Cartridge.PPURead(a, b.vram[:])
		if err != nil {
			return 0, &BusError{Kind: ErrBusRead, Addr: addr}
		}
		return v, nil
	case a <= nametableMirrorEnd:
		v, err := b.Cartridge.PPURead(a-0x1000, b.vram[:])
		if err != nil {
			return 0, &BusError{Kind: ErrBusRead, Addr: addr}
		}
		return v, nil
	case a <= paletteRangeEnd:
		return b.Palette.Read(int(a - paletteBase)), nil
	case a <= paletteMirrorEnd:
		return b.Palette.Read(int(a-paletteMirrorBase) % paletteSize), nil
	default:
		return 0, &BusError{Kind: ErrBusRead, Addr: addr}
	}
}

// Write dispatches a PPU-space write using the same routing Read
// uses.
func (b *Bus) Write(addr uint16, val byte) error {
	a := addr & 0x3FFF

	switch {
	case a <= 0x2FFF:
		if err := b.Cartridge.PPUWrite(a, val, b.vram[:]); err != nil {
			return &BusError{Kind: ErrBusWrite, Addr: addr}
		}
		return nil
	case a <= nametableMirrorEnd:
		if err := b.Cartridge.PPUWrite(a-0x1000, val, b.vram[:]); err != nil {
			return &BusError{Kind: ErrBusWrite, Addr: addr}
		}
		return nil
	case a <= paletteRangeEnd:
		b.Palette.Write(int(a-paletteBase), val)
		return nil
	case a <= paletteMirrorEnd:
		b.Palette.Write(int(a-paletteMirrorBase)%paletteSize, val)
		return nil
	default:
		return &BusError{Kind: ErrBusWrite, Addr: addr}
	}
}
