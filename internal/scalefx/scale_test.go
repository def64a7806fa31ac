package scalefx

import "testing"

func solidGrid(w, h int, c uint32) []uint32 {
	pixels := make([]uint32, w*h)
	for i := range pixels {
		pixels[i] = c
	}
	return pixels
}

func TestScale3xShape(t *testing.T) {
	cfg := DefaultConfig()
	w, h, out := Scale3x(cfg, 4, 5, solidGrid(4, 5, 0xFF0000FF))
	if w != 12 || h != 15 {
		t.Fatalf("Scale3x dims = %dx%d, want 12x15", w, h)
	}
	if len(out) != w*h {
		t.Fatalf("len(out) = %d, want %d", len(out), w*h)
	}
}

func TestScale9xShape(t *testing.T) {
	cfg := DefaultConfig()
	w, h, out := Scale9x(cfg, 2, 3, solidGrid(2, 3, 0x00FF00FF))
	if w != 18 || h != 27 {
		t.Fatalf("Scale9x dims = %dx%d, want 18x27", w, h)
	}
	if len(out) != w*h {
		t.Fatalf("len(out) = %d, want %d", len(out), w*h)
	}
}

func TestScale9xComposesTwoScale3x(t *testing.T) {
	cfg := DefaultConfig()
	pixels := solidGrid(3, 3, 0x1234ABFF)
	w1, h1, mid := Scale3x(cfg, 3, 3, pixels)
	w2, h2, want := Scale3x(cfg, w1, h1, mid)

	gotW, gotH, got := Scale9x(cfg, 3, 3, pixels)
	if gotW != w2 || gotH != h2 {
		t.Fatalf("Scale9x dims = %dx%d, want %dx%d", gotW, gotH, w2, h2)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("pixel %d = %#x, want %#x", i, got[i], want[i])
		}
	}
}

func TestScale3xSolidColourStaysUniform(t *testing.T) {
	cfg := DefaultConfig()
	colour := uint32(0x80C0FFFF)
	w, h, out := Scale3x(cfg, 5, 5, solidGrid(5, 5, colour))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if got := out[y*w+x]; got != colour {
				t.Fatalf("pixel (%d,%d) = %#x, want uniform %#x", x, y, got, colour)
			}
		}
	}
}

func TestScale3xIsolatedPixelOnTransparentBackground(t *testing.T) {
	cfg := DefaultConfig()
	w, h := 3, 3
	pixels := solidGrid(w, h, 0) // fully transparent
	pixels[1*w+1] = 0xFF0000FF  // a single opaque pixel in the centre

	ow, oh, out := Scale3x(cfg, w, h, pixels)
	if ow != 9 || oh != 9 {
		t.Fatalf("dims = %dx%d, want 9x9", ow, oh)
	}

	// The centre 3x3 block (output pixels 3..5, 3..5) must still be
	// entirely the isolated pixel's own colour: with no same-coloured
	// neighbours, no corner strength can activate, so every subpixel in
	// its own block resolves to tag E (itself).
	for dy := 3; dy < 6; dy++ {
		for dx := 3; dx < 6; dx++ {
			if got := out[dy*ow+dx]; got != 0xFF0000FF {
				t.Errorf("block pixel (%d,%d) = %#x, want 0xFF0000FF", dx, dy, got)
			}
		}
	}
}

func TestScale3xPreservesTransparency(t *testing.T) {
	cfg := DefaultConfig()
	w, h := 2, 2
	pixels := solidGrid(w, h, 0)
	ow, oh, out := Scale3x(cfg, w, h, pixels)
	for i, p := range out {
		if Colour(p).A() != 0 {
			t.Fatalf("output pixel %d alpha = %#x, want 0 (fully transparent in, fully transparent out)", i, Colour(p).A())
		}
	}
	_ = ow
	_ = oh
}

func TestScale3xPanicsOnSizeMismatch(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	Scale3x(DefaultConfig(), 2, 2, []uint32{1, 2, 3})
}

// TestScale3xCheckerboardNeverBlends upscales a 4x4 black/white checkerboard
// and asserts that every output pixel is exactly black or exactly white:
// pass4 only ever copies a raw source colour, so a pattern with no two
// same-coloured pixels adjacent can never bleed into an intermediate shade.
func TestScale3xCheckerboardNeverBlends(t *testing.T) {
	cfg := DefaultConfig()
	const black, white = 0x000000FF, 0xFFFFFFFF
	w, h := 4, 4
	pixels := make([]uint32, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if (x+y)%2 == 0 {
				pixels[y*w+x] = black
			} else {
				pixels[y*w+x] = white
			}
		}
	}

	ow, oh, out := Scale3x(cfg, w, h, pixels)
	for y := 0; y < oh; y++ {
		for x := 0; x < ow; x++ {
			got := out[y*ow+x]
			if got != black && got != white {
				t.Fatalf("pixel (%d,%d) = %#x, want exactly black or white", x, y, got)
			}
		}
	}
}

// TestScale3xSampleGridCentrePixelPreserved builds a 12x12 grid using the
// canonical sample palette (transparent, black, yellow, green, blue, white,
// grey) and checks that the centre source pixel's colour survives into the
// centre output pixel of its own 3x3 block: the fixed subpixel layout (see
// subpixelBlock in pass4.go) always resolves the middle subpixel to tag E,
// so this holds for any source pixel regardless of its neighbourhood.
func TestScale3xSampleGridCentrePixelPreserved(t *testing.T) {
	cfg := DefaultConfig()
	const (
		transparent = 0x00000000
		black       = 0x000000FF
		yellow      = 0xFFFF00FF
		green       = 0x00FF00FF
		blue        = 0x0000FFFF
		white       = 0xFFFFFFFF
		grey        = 0x808080FF
	)
	palette := [7]uint32{transparent, black, yellow, green, blue, white, grey}

	w, h := 12, 12
	pixels := make([]uint32, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			pixels[y*w+x] = palette[(x+2*y)%len(palette)]
		}
	}

	cx, cy := 5, 5
	want := pixels[cy*w+cx]

	ow, oh, out := Scale3x(cfg, w, h, pixels)
	if ow != w*3 || oh != h*3 {
		t.Fatalf("dims = %dx%d, want %dx%d", ow, oh, w*3, h*3)
	}

	outX, outY := cx*3+1, cy*3+1
	if got := out[outY*ow+outX]; got != want {
		t.Fatalf("centre output pixel (%d,%d) = %#x, want %#x", outX, outY, got, want)
	}
}

func TestScale3xDeterministic(t *testing.T) {
	cfg := DefaultConfig()
	pixels := []uint32{
		0xFF0000FF, 0x00FF00FF, 0x0000FFFF,
		0xFFFF00FF, 0x00FFFFFF, 0xFF00FFFF,
		0x000000FF, 0xFFFFFFFF, 0x808080FF,
	}
	_, _, out1 := Scale3x(cfg, 3, 3, append([]uint32(nil), pixels...))
	_, _, out2 := Scale3x(cfg, 3, 3, append([]uint32(nil), pixels...))
	for i := range out1 {
		if out1[i] != out2[i] {
			t.Fatalf("non-deterministic output at pixel %d: %#x vs %#x", i, out1[i], out2[i])
		}
	}
}
