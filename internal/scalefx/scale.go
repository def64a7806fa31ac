package scalefx

// Scale3x runs the five-pass ScaleFX pipeline once, producing a (3*width,
// 3*height) raster from the given row-major packed-RGBA source buffer.
//
// Preconditions: len(pixels) == width*height, width >= 1, height >= 1.
// Violating either is a programmer error and panics; there are no other
// recoverable error states. Returned dimensions are always exactly
// (3*width, 3*height).
func Scale3x(cfg Config, width, height int, pixels []uint32) (int, int, []uint32) {
	src := NewSourceGrid(width, height, pixels)

	p0 := runPass0(src)
	p1 := runPass1(cfg, p0)
	p2 := runPass2(p1)
	p3 := runPass3(cfg, p2)
	out := runPass4(src, p3)

	return out.W, out.H, out.Uint32()
}

// Scale9x composes two Scale3x invocations, producing a (9*width,
// 9*height) raster.
func Scale9x(cfg Config, width, height int, pixels []uint32) (int, int, []uint32) {
	w, h, mid := Scale3x(cfg, width, height, pixels)
	return Scale3x(cfg, w, h, mid)
}
