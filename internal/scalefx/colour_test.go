package scalefx

import "testing"

func TestColourAccessors(t *testing.T) {
	c := NewColour(0x11, 0x22, 0x33, 0x44)
	if c.R() != 0x11 || c.G() != 0x22 || c.B() != 0x33 || c.A() != 0x44 {
		t.Fatalf("accessors = %02x %02x %02x %02x, want 11 22 33 44", c.R(), c.G(), c.B(), c.A())
	}
}

func TestColourTransparent(t *testing.T) {
	tests := []struct {
		a    uint8
		want bool
	}{
		{0, true},
		{0x7f, true},
		{0x80, false},
		{0xff, false},
	}
	for _, tt := range tests {
		c := NewColour(1, 2, 3, tt.a)
		if got := c.Transparent(); got != tt.want {
			t.Errorf("alpha %#x: Transparent() = %v, want %v", tt.a, got, tt.want)
		}
	}
}

func TestDistanceIdentity(t *testing.T) {
	c := NewColour(10, 20, 30, 255)
	if d := Distance(c, c); d != 0 {
		t.Errorf("Distance(c, c) = %v, want 0", d)
	}
}

func TestDistanceSymmetric(t *testing.T) {
	a := NewColour(255, 0, 0, 255)
	b := NewColour(0, 255, 128, 255)
	if Distance(a, b) != Distance(b, a) {
		t.Errorf("Distance(a,b) = %v, Distance(b,a) = %v, want equal", Distance(a, b), Distance(b, a))
	}
}

func TestDistanceTransparentIsMax(t *testing.T) {
	opaque := NewColour(10, 20, 30, 255)
	transparent := NewColour(10, 20, 30, 0)
	if d := Distance(opaque, transparent); d != MaxDistance {
		t.Errorf("Distance(opaque, transparent) = %v, want %v", d, MaxDistance)
	}
	if d := Distance(transparent, transparent); d != MaxDistance {
		t.Errorf("Distance(transparent, transparent) = %v, want %v", d, MaxDistance)
	}
}

func TestDistanceBlackWhite(t *testing.T) {
	black := NewColour(0, 0, 0, 255)
	white := NewColour(0xFF, 0xFF, 0xFF, 0xFF)
	d := Distance(black, white)
	if d < 764.5 || d >= 765 {
		t.Errorf("Distance(black, white) = %v, want in [764.5, 765)", d)
	}
}
