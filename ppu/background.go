package ppu

// Background tile-map geometry. The nametable is 32x30 tiles; the
// renderer walks a 33x31 tile window (one more than fits on screen in
// each direction) so a partial tile is always available at the
// scrolled edge.
const (
	widthTiles  = 32
	heightTiles = 30

	tileWidth  = 8
	tileHeight = 8

	patternTableEntryBytes = 16
	attributeTableOffset   = 0x3C0

	paletteStride             = 4
	universalBackgroundColour = 0x3F00
	backgroundPaletteBase     = 0x3F00

	subtileOffsetMask = tileWidth - 1 // TILE_SIZE_BITS = 3
	tileSizeBits      = 3
)

func (p *PPU) backgroundBasePatternTableAddress() uint16 {
	if p.ctrl&CtrlBackgroundPatternTable == 0 {
		return 0x0000
	}
	return 0x1000
}

// backgroundTopLeftCoord returns the pixel coordinate, in the 2x2
// screen of nametables, of the top-left corner of the visible
// background. CTRL's nametable-select bits shift the origin by one
// full screen in each axis; SCROLL provides the sub-screen offset.
func (p *PPU) backgroundTopLeftCoord() (x, y int) {
	x = int(p.scrollX)
	y = int(p.scrollY)

	if p.ctrl&CtrlNametableX != 0 {
		x += Width
	}
	if p.ctrl&CtrlNametableY != 0 {
		y += Height
	}

	return x, y
}

// metatileID identifies which of the 4 two-bit fields of an attribute
// byte covers the tile at (tileX, tileY): attribute bytes each cover a
// 4x4-tile block, subdivided into four 2x2-tile metatiles.
func metatileID(tileX, tileY int) uint {
	x := tileX / 2
	y := tileY / 2
	return uint(((y & 1) << 1) | (x & 1))
}

// tileCoordToNametableBase picks which of the 4 nametables ($2000,
// $2400, $2800, $2C00) a tile coordinate in the 64x60-tile virtual
// screen falls into.
func tileCoordToNametableBase(x, y int) uint16 {
	switch {
	case x < widthTiles && y < heightTiles:
		return 0x2000
	case x < widthTiles:
		return 0x2800
	case y < heightTiles:
		return 0x2400
	default:
		return 0x2C00
	}
}

// renderBackgroundTile draws one 8x8 background tile, reading its
// pattern index from the nametable, its palette selection from the
// attribute table, and its pixel data from the pattern table. pxOffX
// and pxOffY are the tile's top-left corner in screen pixels and may
// fall outside [0, Width) / [0, Height); such pixels are skipped
// rather than written out of bounds.
func (p *PPU) renderBackgroundTile(sink FrameSink, ptBase, ntBase uint16, ntTileX, ntTileY, pxOffX, pxOffY int) error {
	ntOffset := uint16(ntTileY*widthTiles + ntTileX)
	ntAddress := ntBase + ntOffset
	ptIndex, err := p.bus.Read(ntAddress)
	if err != nil {
		return err
	}
	ptAddress := ptBase | (uint16(ptIndex) * patternTableEntryBytes)

	atBase := ntBase + attributeTableOffset
	atIndex := uint16((ntTileY/4)*(widthTiles/4) + ntTileX/4)
	atByte, err := p.bus.Read(atBase + atIndex)
	if err != nil {
		return err
	}

	atBits := (atByte >> (metatileID(ntTileX, ntTileY) * 2)) & 0x03
	paletteBase := uint16(backgroundPaletteBase) + uint16(atBits)*paletteStride

	for i := 0; i < tileHeight; i++ {
		row0, err := p.bus.Read(ptAddress + uint16(i))
		if err != nil {
			return err
		}
		row1, err := p.bus.Read(ptAddress + tileHeight + uint16(i))
		if err != nil {
			return err
		}

		pixelY := pxOffY + i
		if pixelY < 0 || pixelY >= Height {
			continue
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
				return err
			}

			pixelX := pxOffX + (tileWidth - 1 - j)
			if pixelX >= 0 && pixelX < Width {
				sink.SetPixel(pixelX, pixelY, colour)
			}
		}
	}

	return nil
}

// renderUniversalBackground fills the entire frame with the backdrop
// color at $3F00, the base layer every other pass draws over.
func (p *PPU) renderUniversalBackground(sink FrameSink) error {
	colour, err := p.bus.Read(universalBackgroundColour)
	if err != nil {
		return err
	}
	for y := 0; y < Height; y++ {
		for x := 0; x < Width; x++ {
			sink.SetPixel(x, y, colour)
		}
	}
	return nil
}

// renderBackground walks the 33x31 tile window covering the scrolled
// viewport across the 2x2 screen of nametables and renders each tile.
func (p *PPU) renderBackground(sink FrameSink) error {
	ptBase := p.backgroundBasePatternTableAddress()

	topLeftX, topLeftY := p.backgroundTopLeftCoord()

	pixelOffsetX := topLeftX & subtileOffsetMask
	pixelOffsetY := topLeftY & subtileOffsetMask

	tileOffsetX := topLeftX >> tileSizeBits
	tileOffsetY := topLeftY >> tileSizeBits

	for i := 0; i <= heightTiles; i++ {
		absI := (i + tileOffsetY) % (heightTiles * 2)
		for j := 0; j <= widthTiles; j++ {
			absJ := (j + tileOffsetX) % (widthTiles * 2)

			nametableAddress := tileCoordToNametableBase(absJ, absI)

			localX := absJ % widthTiles
			localY := absI % heightTiles

			pxX := j*tileWidth - pixelOffsetX
			pxY := i*tileHeight - pixelOffsetY

			if err := p.renderBackgroundTile(sink, ptBase, nametableAddress, localX, localY, pxX, pxY); err != nil {
				return err
			}
		}
	}

	return nil
}
