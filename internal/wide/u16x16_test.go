package wide

import "testing"

func TestSplatU16(t *testing.T) {
	tests := []struct {
		name  string
		value uint16
	}{
		{"zero", 0},
		{"max", 255},
		{"weight", 256},
		{"one", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := SplatU16(tt.value)
			for i, v := range result {
				if v != tt.value {
					t.Errorf("element %d = %d, want %d", i, v, tt.value)
				}
			}
		})
	}
}

func TestU16x16_Arithmetic(t *testing.T) {
	tests := []struct {
		name string
		got  U16x16
		want U16x16
	}{
		{"add", SplatU16(100).Add(SplatU16(50)), SplatU16(150)},
		{"sub", SplatU16(100).Sub(SplatU16(40)), SplatU16(60)},
		{"mul", SplatU16(255).Mul(SplatU16(256)), SplatU16(65280)},
		{"inv256 zero", SplatU16(0).Inv256(), SplatU16(256)},
		{"inv256 full", SplatU16(256).Inv256(), SplatU16(0)},
		{"shr", SplatU16(65280).Shr(8), SplatU16(255)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %v, want %v", tt.got, tt.want)
			}
		})
	}
}

func TestU16x16_PerLane(t *testing.T) {
	var v U16x16
	for i := range v {
		v[i] = uint16(i * 16)
	}
	got := v.Inv256()
	for i := range got {
		if want := uint16(256 - i*16); got[i] != want {
			t.Errorf("lane %d = %d, want %d", i, got[i], want)
		}
	}
}
