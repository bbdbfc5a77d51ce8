package ppu

import "testing"

func TestAddrLatchWriteTwice(t *testing.T) {
	cases := []struct {
		hi, lo   uint8
		wantAddr uint16
	}{
		{0x3F, 0x00, 0x3F00},
		{0xFF, 0xFF, 0x3FFF}, // top 2 bits of the high byte are discarded
		{0x00, 0x00, 0x0000},
		{0x21, 0x0C, 0x210C},
	}

	for i, tc := range cases {
		var a addrLatch

		if committed, _ := a.write(tc.hi); committed {
			t.Errorf("%d: first write reported committed", i)
		}

		committed, got := a.write(tc.lo)
		if !committed {
			t.Errorf("%d: second write did not report committed", i)
		}
		if got != tc.wantAddr {
			t.Errorf("%d: write(%#02x, %#02x) = %#04x, want %#04x", i, tc.hi, tc.lo, got, tc.wantAddr)
		}
	}
}

func TestAddrLatchReset(t *testing.T) {
	var a addrLatch
	a.write(0x21)
	a.reset()

	// After a reset, the next write should again be treated as the
	// high byte: a second write should commit.
	if committed, _ := a.write(0x30); committed {
		t.Fatal("write after reset reported committed on the first byte")
	}
	if committed, addr := a.write(0x0C); !committed || addr != 0x300C {
		t.Errorf("write after reset = (%t, %#04x), want (true, 0x300C)", committed, addr)
	}
}
