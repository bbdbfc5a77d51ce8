package ppubus

// PaletteRAM is the default 32-byte Palette implementation: 6-bit
// color indices, no mirroring logic of its own (Bus already folds the
// $3F20-$3FFF mirror down to [0,32) before calling in).
type PaletteRAM struct {
	ram [paletteSize]byte
}

// NewPaletteRAM returns a zero-initialized palette.
func NewPaletteRAM() *PaletteRAM {
	return &PaletteRAM{}
}

func (p *PaletteRAM) Read(offset int) byte {
	return p.ram[offset]
}

func (p *PaletteRAM) Write(offset int, val byte) {
	p.ram[offset] = val
}
