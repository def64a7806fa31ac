package scalefx

// tagOffset maps a pass-3 tag byte to the (dx,dy) source-pixel offset it
// names.
var tagOffset = [9][2]int{
	TagE:  {0, 0},
	TagD:  {-1, 0},
	TagD0: {-2, 0},
	TagF:  {1, 0},
	TagF0: {2, 0},
	TagB:  {0, -1},
	TagB0: {0, -2},
	TagH:  {0, 1},
	TagH0: {0, 2},
}

// runPass4 emits, for every source pixel, the 3x3 block of output colours
// named by its tag octet and a fixed subpixel layout.
func runPass4(src *SourceGrid, p3 *Pass3Grid) *OutputGrid {
	outW, outH := src.W*3, src.H*3
	return runPass4Into(make([]Colour, outW*outH), src, p3)
}

// runPass4Into is runPass4 but writes into a caller-supplied (typically
// pooled) buffer, which must have length 9*src.W*src.H.
func runPass4Into(pixels []Colour, src *SourceGrid, p3 *Pass3Grid) *OutputGrid {
	outW, outH := src.W*3, src.H*3

	for y := 0; y < src.H; y++ {
		for x := 0; x < src.W; x++ {
			tags := p3.At(x, y)
			block := subpixelBlock(tags)

			for spy := 0; spy < 3; spy++ {
				for spx := 0; spx < 3; spx++ {
					tag := block[spy][spx]
					off := tagOffset[tag]
					colour := src.At(x+off[0], y+off[1])
					outX := x*3 + spx
					outY := y*3 + spy
					pixels[outY*outW+outX] = colour
				}
			}
		}
	}

	return &OutputGrid{W: outW, H: outH, Pixels: pixels}
}

// subpixelBlock lays tags out on the fixed 3x3 grid:
//
//	(0,0)=corners.x  (1,0)=mids.x     (2,0)=corners.y
//	(0,1)=mids.w     (1,1)=0          (2,1)=mids.y
//	(0,2)=corners.w  (1,2)=mids.z     (2,2)=corners.z
func subpixelBlock(tags Pass3Pixel) [3][3]uint8 {
	return [3][3]uint8{
		{tags.Corners[CornerUL], tags.Mids[0], tags.Corners[CornerUR]},
		{tags.Mids[3], TagE, tags.Mids[1]},
		{tags.Corners[CornerDL], tags.Mids[2], tags.Corners[CornerDR]},
	}
}
