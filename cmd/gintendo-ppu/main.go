// Command gintendo-ppu is a standalone demo host for the PPU core: it
// loads a raw CHR-ROM dump, seeds a test pattern into the nametable
// and palette via the DATA port, and displays the result in an ebiten
// window. It has no 6502 CPU and no iNES parsing — both are out of
// scope for this module.
package main

import (
	"flag"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/clebern/ppu2c02/internal/cartridge"
	"github.com/clebern/ppu2c02/internal/frontend"
	"github.com/clebern/ppu2c02/ppu"
	"github.com/clebern/ppu2c02/ppubus"
)

var (
	chrFile   = flag.String("chr_rom", "", "Path to a raw 8KB CHR-ROM dump. Omit for an all-zero pattern table.")
	mirroring = flag.String("mirroring", "vertical", "Nametable mirroring: \"vertical\" or \"horizontal\".")
)

func main() {
	flag.Parse()

	var chr []byte
	if *chrFile != "" {
		data, err := os.ReadFile(*chrFile)
		if err != nil {
			log.Fatalf("Couldn't read CHR ROM: %v", err)
		}
		chr = data
	}

	mm := cartridge.MirrorVertical
	if *mirroring == "horizontal" {
		mm = cartridge.MirrorHorizontal
	}

	cart := cartridge.NewFixture(chr, mm)
	bus := ppubus.NewBus(cart, ppubus.NewPaletteRAM())
	p := ppu.New(bus)

	seedDemoPattern(p)

	ebiten.SetWindowSize(ppu.Width*2, ppu.Height*2)
	ebiten.SetWindowTitle("gintendo-ppu")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(frontend.NewGame(p)); err != nil {
		log.Fatal(err)
	}
}

// seedDemoPattern writes a single visible tile and its palette entry
// through the register protocol, exercising the DATA port's
// auto-increment the same way a running CPU would.
func seedDemoPattern(p *ppu.PPU) {
	writeAddr(p, 0x2000)
	writeData(p, 0x01) // nametable tile (0,0) -> pattern entry 1

	writeAddr(p, 0x0010)
	writeData(p, 0xFF) // pattern entry 1, row 0, plane 0: fully opaque
	writeData(p, 0xFF) // row 1
	writeData(p, 0xFF) // row 2
	writeData(p, 0xFF) // row 3
	writeData(p, 0xFF) // row 4
	writeData(p, 0xFF) // row 5
	writeData(p, 0xFF) // row 6
	writeData(p, 0xFF) // row 7

	writeAddr(p, 0x3F01)
	writeData(p, 0x16) // a visible red
}

func writeAddr(p *ppu.PPU, addr uint16) {
	if err := p.CPUWrite(ppu.RegAddress, byte(addr>>8)); err != nil {
		log.Fatalf("seed: %v", err)
	}
	if err := p.CPUWrite(ppu.RegAddress, byte(addr)); err != nil {
		log.Fatalf("seed: %v", err)
	}
}

func writeData(p *ppu.PPU, val byte) {
	if err := p.CPUWrite(ppu.RegData, val); err != nil {
		log.Fatalf("seed: %v", err)
	}
}
