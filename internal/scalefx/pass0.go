package scalefx

// runPass0 computes, for every source pixel, the colour distance to its
// up-left, up, up-right, and right neighbours. Neighbours off the grid are
// treated as transparent black and therefore yield MaxDistance.
func runPass0(src *SourceGrid) *Pass0Grid {
	return runPass0Into(make([]Pass0Pixel, src.W*src.H), src)
}

// runPass0Into is runPass0 but writes into a caller-supplied (typically
// pooled) buffer, which must have length src.W*src.H.
func runPass0Into(cells []Pass0Pixel, src *SourceGrid) *Pass0Grid {
	for y := 0; y < src.H; y++ {
		for x := 0; x < src.W; x++ {
			c := src.At(x, y)
			cells[y*src.W+x] = Pass0Pixel{
				Colour: c,
				DistUL: Distance(c, src.At(x-1, y-1)),
				DistU:  Distance(c, src.At(x, y-1)),
				DistUR: Distance(c, src.At(x+1, y-1)),
				DistR:  Distance(c, src.At(x+1, y)),
			}
		}
	}
	return &Pass0Grid{W: src.W, H: src.H, Cells: cells}
}
