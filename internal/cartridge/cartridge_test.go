package cartridge

import "testing"

func TestFixtureRoutesCHR(t *testing.T) {
	f := NewFixture(nil, MirrorVertical)
	vram := make([]byte, 2048)

	if err := f.PPUWrite(0x0ABC, 0x42, vram); err != nil {
		t.Fatalf("PPUWrite: %v", err)
	}
	if got, err := f.PPURead(0x0ABC, vram); err != nil || got != 0x42 {
		t.Errorf("PPURead(0x0ABC) = %#02x, %v; want 0x42, nil", got, err)
	}
}

func TestFixtureMirroring(t *testing.T) {
	cases := []struct {
		mirroring Mirroring
		write     uint16
		val, mm   uint8
		wantAlso  uint16
	}{
		{MirrorVertical, 0x2000, 0xF1, 0, 0x2800},
		{MirrorVertical, 0x20FF, 0x1F, 0, 0x28FF},
		{MirrorVertical, 0x2801, 0xE3, 0, 0x2001},
		{MirrorVertical, 0x240F, 0xD1, 0, 0x2C0F},
		{MirrorVertical, 0x2C1E, 0xCC, 0, 0x241E},
		{MirrorHorizontal, 0x2000, 0xF2, 0, 0x2400},
		{MirrorHorizontal, 0x2800, 0x32, 0, 0x2C00},
		{MirrorHorizontal, 0x2C00, 0x41, 0, 0x2800},
		{MirrorHorizontal, 0x2402, 0x56, 0, 0x2002},
		{MirrorHorizontal, 0x2CFF, 0x15, 0, 0x28FF},
	}

	for i, tc := range cases {
		f := NewFixture(nil, tc.mirroring)
		vram := make([]byte, 2048)

		if err := f.PPUWrite(tc.write, tc.val, vram); err != nil {
			t.Fatalf("%d: PPUWrite: %v", i, err)
		}

		got, err := f.PPURead(tc.write, vram)
		gotAlso, err2 := f.PPURead(tc.wantAlso, vram)
		if err != nil || err2 != nil || got != tc.val || gotAlso != tc.val {
			t.Errorf("%d: %04x: %02x, %04x: %02x, wanted %02x", i, tc.write, got, tc.wantAlso, gotAlso, tc.val)
		}
	}
}
