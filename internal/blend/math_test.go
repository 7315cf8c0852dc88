package blend

import "testing"

func TestMulDiv255(t *testing.T) {
	tests := []struct {
		name string
		a, b uint32
		want uint32
	}{
		{"zero * zero", 0, 0, 0},
		{"zero * max", 0, 255, 0},
		{"max * max", 255, 255, 255},
		{"half * half", 128, 128, 64},
		{"255 * 128", 255, 128, 128},
		{"1 * 1", 1, 1, 0},
		{"100 * 100", 100, 100, 39},
		{"200 * 200", 200, 200, 157},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := mulDiv255(tt.a, tt.b); got != tt.want {
				t.Errorf("mulDiv255(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestDiv255Exact(t *testing.T) {
	for x := uint32(0); x <= 255*255+127; x++ {
		if got, want := div255(x), x/255; got != want {
			t.Fatalf("div255(%d) = %d, want %d", x, got, want)
		}
	}
}

func TestMulAlphaMatchesChannels(t *testing.T) {
	colors := []uint32{0x00000000, 0xFFFFFFFF, 0x80402010, 0xFF00FF00, 0x7F7F7F7F, 0x01020304}
	for _, c := range colors {
		for a := uint32(0); a <= 255; a++ {
			want := mulDiv255(c>>24, a)<<24 |
				mulDiv255((c>>16)&0xff, a)<<16 |
				mulDiv255((c>>8)&0xff, a)<<8 |
				mulDiv255(c&0xff, a)
			if got := MulAlpha(c, a); got != want {
				t.Fatalf("MulAlpha(%08x, %d) = %08x, want %08x", c, a, got, want)
			}
		}
	}
}

func TestMul4(t *testing.T) {
	tests := []struct {
		c, col uint32
		want   uint32
	}{
		{0x80402010, 0xFFFFFFFF, 0x80402010},
		{0xFFFFFFFF, 0x80402010, 0x80402010},
		{0xFFFFFFFF, 0x00000000, 0x00000000},
		{0xFF808080, 0xFF808080, 0xFF404040},
	}
	for _, tt := range tests {
		if got := Mul4(tt.c, tt.col); got != tt.want {
			t.Errorf("Mul4(%08x, %08x) = %08x, want %08x", tt.c, tt.col, got, tt.want)
		}
	}
}

func TestAddSat(t *testing.T) {
	tests := []struct {
		a, b uint32
		want uint32
	}{
		{0x00000000, 0x00000000, 0x00000000},
		{0x10203040, 0x01020304, 0x11223344},
		{0xFF808080, 0x01808080, 0xFFFFFFFF},
		{0x80FF0080, 0x80010080, 0xFFFF00FF},
		{0x00FF00FF, 0xFF00FF00, 0xFFFFFFFF},
	}
	for _, tt := range tests {
		if got := AddSat(tt.a, tt.b); got != tt.want {
			t.Errorf("AddSat(%08x, %08x) = %08x, want %08x", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestSubSat(t *testing.T) {
	tests := []struct {
		a, b uint32
		want uint32
	}{
		{0x11223344, 0x01020304, 0x10203040},
		{0x10101010, 0x20202020, 0x00000000},
		{0xFF00FF00, 0x0F10F010, 0xF0000F00},
	}
	for _, tt := range tests {
		if got := SubSat(tt.a, tt.b); got != tt.want {
			t.Errorf("SubSat(%08x, %08x) = %08x, want %08x", tt.a, tt.b, got, tt.want)
		}
	}
}
