package ppu

// priority mirrors OAM attribute bit 5. The renderer accepts and
// stores it on every sprite but never consults it during composition
// — background-vs-sprite priority is one of this core's documented
// Non-goals.
type priority uint8

const (
	front priority = iota
	back
)

const (
	oamAttrPaletteMask uint8 = 0x03
	oamAttrPriority    uint8 = 1 << 5
	oamAttrFlipH       uint8 = 1 << 6
	oamAttrFlipV       uint8 = 1 << 7
)

// sprite is one parsed 4-byte OAM record.
type sprite struct {
	y, x    uint8
	tile    uint8
	palette uint8
	pri     priority
	flipH   bool
	flipV   bool
}

// spriteFromOAM parses the 4 bytes [Y, tile, attributes, X] at a
// sprite's OAM slot.
func spriteFromOAM(b []byte) sprite {
	attr := b[2]
	return sprite{
		y:       b[0],
		tile:    b[1],
		x:       b[3],
		palette: attr & oamAttrPaletteMask,
		pri:     priority((attr & oamAttrPriority) >> 5),
		flipH:   attr&oamAttrFlipH != 0,
		flipV:   attr&oamAttrFlipV != 0,
	}
}

// visible reports whether the sprite falls within the hardware's
// visible-Y range. Sprites hide at Y in [0xEF, 0xFF]; a sprite at
// Y=0 is drawn starting on the first line of the picture.
func (s sprite) visible() bool {
	return s.y < 0xEF
}

// attributes reconstructs the OAM attribute byte. Exercised by
// round-trip tests; the renderer itself only reads the parsed fields.
func (s sprite) attributes() uint8 {
	a := s.palette | uint8(s.pri)<<5
	if s.flipH {
		a |= oamAttrFlipH
	}
	if s.flipV {
		a |= oamAttrFlipV
	}
	return a
}
