package ppu

const (
	spriteStride      = 4
	numSprites        = 64
	spritePaletteBase = 0x3F10
)

func (p *PPU) spriteBasePatternTableAddress() uint16 {
	if p.ctrl&CtrlSpritePatternTable == 0 {
		return 0x0000
	}
	return 0x1000
}

// renderSprite draws one 8x8 sprite and reports whether it wrote at
// least one opaque pixel. This core uses that fact, not a
// background-coincidence check, to decide sprite-0 hit — see the
// package documentation's Non-goals.
func (p *PPU) renderSprite(sink FrameSink, s sprite) (hit bool, err error) {
	ptBase := p.spriteBasePatternTableAddress()
	ptAddress := ptBase | (uint16(s.tile) * patternTableEntryBytes)

	paletteBase := uint16(spritePaletteBase) + uint16(s.palette)*paletteStride

	for i := 0; i < tileHeight; i++ {
		row0, err := p.bus.Read(ptAddress + uint16(i))
		if err != nil {
			return false, err
		}
		row1, err := p.bus.Read(ptAddress + tileHeight + uint16(i))
		if err != nil {
			return false, err
		}

		var pixelY int
		if s.flipV {
			pixelY = int(s.y) + tileHeight - 1 - i
		} else {
			pixelY = int(s.y) + i
		}

		for j := 0; j < tileWidth; j++ {
			paletteIndex := (row0 & 1) | ((row1 & 1) << 1)
			row0 >>= 1
			row1 >>= 1

			if paletteIndex == 0 {
				continue
			}

			colour, err := p.bus.Read(paletteBase + uint16(paletteIndex))
			if err != nil {
				return false, err
			}

			var pixelX int
			if s.flipH {
				pixelX = int(s.x) + j
			} else {
				pixelX = int(s.x) + tileWidth - 1 - j
			}

			if pixelX >= 0 && pixelX < Width && pixelY >= 0 && pixelY < Height {
				sink.SetPixel(pixelX, pixelY, colour)
				hit = true
			}
		}
	}

	return hit, nil
}

// renderSprites composites all 64 OAM sprites over the background in
// ascending OAM order, unconditionally (no 8-sprites-per-scanline
// limit, no priority check), setting SPRITE_0_HIT if sprite 0 drew
// any opaque pixel.
func (p *PPU) renderSprites(sink FrameSink) error {
	for i := 0; i < numSprites; i++ {
		index := i * spriteStride
		s := spriteFromOAM(p.oam[index : index+4])

		if !s.visible() {
			continue
		}

		hit, err := p.renderSprite(sink, s)
		if err != nil {
			return err
		}
		if i == 0 && hit {
			p.status |= StatusSprite0Hit
		}
	}

	return nil
}
