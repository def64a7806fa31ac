package scalefx

// Tag values name a source-pixel coordinate offset.
const (
	TagE  uint8 = 0 // this pixel
	TagD  uint8 = 1 // left, distance 1
	TagD0 uint8 = 2 // left, distance 2
	TagF  uint8 = 3 // right, distance 1
	TagF0 uint8 = 4 // right, distance 2
	TagB  uint8 = 5 // up, distance 1
	TagB0 uint8 = 6 // up, distance 2
	TagH  uint8 = 7 // down, distance 1
	TagH0 uint8 = 8 // down, distance 2
)

// runPass3 reads a 7x7 stencil (offsets -3..+3 along each cardinal axis)
// of pass-2 pixels and produces, per pixel, the corner and mid tag octet.
//
// Each corner and mid tag is resolved from a ladder of six boolean
// levels (Level-1 corner existence, Level-2 mid, Level-3 corner, Level-4
// corner, Level-5 mid, Level-6 corner), each a conjunction of Res,
// Horizontal/Vertical, and Orientation components at increasing stencil
// radius, matching the structure described in DESIGN.md (Open Question
// b) rather than the unavailable literal 24-predicate table.
func runPass3(cfg Config, p2 *Pass2Grid) *Pass3Grid {
	return runPass3Into(make([]Pass3Pixel, p2.W*p2.H), cfg, p2)
}

// runPass3Into is runPass3 but writes into a caller-supplied (typically
// pooled) buffer, which must have length p2.W*p2.H.
func runPass3Into(cells []Pass3Pixel, cfg Config, p2 *Pass2Grid) *Pass3Grid {
	for y := 0; y < p2.H; y++ {
		for x := 0; x < p2.W; x++ {
			cells[y*p2.W+x] = tagPixel(cfg, p2, x, y)
		}
	}
	return &Pass3Grid{W: p2.W, H: p2.H, Cells: cells}
}

// axisChain reports, for one of a corner's two incident axes, whether the
// edge/res agreement chain holds at distance 1, 2, and 3 — dist2 implies
// dist1, dist3 implies dist2.
type axisChain struct {
	dist1, dist2, dist3 bool
}

// walkAxis builds an axisChain for one axis of one corner: dist1 holds
// when E's edge flag is set and its distance-1 neighbour's Res flag
// agrees; dist2 and dist3 extend the same test further out, each
// requiring the previous link's edge flag too.
//
// edgeAt(pixel) reports whether the pixel's edge flag (horizontal or
// vertical, whichever matches this axis) is set at the shared corner, and
// resAt(pixel) reports whether that pixel's Res flag is set at the
// corner index the axis continues into.
func walkAxis(e, n1, n2, n3 Pass2Pixel, edgeAt, resAt func(Pass2Pixel) bool) axisChain {
	d1 := edgeAt(e) && resAt(n1)
	d2 := d1 && edgeAt(n1) && resAt(n2)
	d3 := d2 && edgeAt(n2) && resAt(n3)
	return axisChain{dist1: d1, dist2: d2, dist3: d3}
}

// cornerNeighbours is the pair of directly-adjacent (non-diagonal) pixels
// whose Res flags, at the corner index reflected through the shared grid
// junction, gate Level-1 for one of E's four corners. The index pairing
// mirrors the junction assembly already grounded in resolveCorners'
// jsx/jsy/jsz/jsw (pass2.go): the junction at E's UL corner is shared with
// B's DL corner and D's UR corner, and so on by rotation.
func cornerNeighbours(b, d, f, h Pass2Pixel) (ul, ur, dr, dl [2]bool) {
	return [2]bool{b.Res[CornerDL], d.Res[CornerUR]},
		[2]bool{b.Res[CornerDR], f.Res[CornerUL]},
		[2]bool{f.Res[CornerDL], h.Res[CornerUR]},
		[2]bool{d.Res[CornerDR], h.Res[CornerUL]}
}

// tagPixel computes one pixel's Pass3Pixel.
func tagPixel(cfg Config, p2 *Pass2Grid, x, y int) Pass3Pixel {
	e := p2.At(x, y)

	b := p2.At(x, y-1)
	b0 := p2.At(x, y-2)
	b1 := p2.At(x, y-3)
	h := p2.At(x, y+1)
	h0 := p2.At(x, y+2)
	h1 := p2.At(x, y+3)
	d := p2.At(x-1, y)
	d0 := p2.At(x-2, y)
	d1 := p2.At(x-3, y)
	f := p2.At(x+1, y)
	f0 := p2.At(x+2, y)
	f1 := p2.At(x+3, y)

	up := func(corner int) axisChain {
		return walkAxis(e, b, b0, b1,
			func(p Pass2Pixel) bool { return p.Vertical[corner] },
			func(p Pass2Pixel) bool { return p.Res[corner] })
	}
	down := func(corner int) axisChain {
		return walkAxis(e, h, h0, h1,
			func(p Pass2Pixel) bool { return p.Vertical[corner] },
			func(p Pass2Pixel) bool { return p.Res[corner] })
	}
	left := func(corner int) axisChain {
		return walkAxis(e, d, d0, d1,
			func(p Pass2Pixel) bool { return p.Horizontal[corner] },
			func(p Pass2Pixel) bool { return p.Res[corner] })
	}
	right := func(corner int) axisChain {
		return walkAxis(e, f, f0, f1,
			func(p Pass2Pixel) bool { return p.Horizontal[corner] },
			func(p Pass2Pixel) bool { return p.Res[corner] })
	}

	ulN, urN, drN, dlN := cornerNeighbours(b, d, f, h)

	// Level-1: does a corner exist here at all. Gated unconditionally on
	// E's own resolved flag; FilterCorners relaxes only the requirement
	// that a neighbouring corner independently agree.
	lvl1 := func(corner int, neighbours [2]bool) bool {
		return e.Res[corner] && (neighbours[0] || neighbours[1] || cfg.FilterCorners)
	}

	corners := [4]uint8{
		cornerTag(lvl1(CornerUL, ulN), e.Orientation[CornerUL], up(CornerUL), left(CornerUL), TagB, TagB0, TagD, TagD0),
		cornerTag(lvl1(CornerUR, urN), e.Orientation[CornerUR], up(CornerUR), right(CornerUR), TagB, TagB0, TagF, TagF0),
		cornerTag(lvl1(CornerDR, drN), e.Orientation[CornerDR], down(CornerDR), right(CornerDR), TagH, TagH0, TagF, TagF0),
		cornerTag(lvl1(CornerDL, dlN), e.Orientation[CornerDL], down(CornerDL), left(CornerDL), TagH, TagH0, TagD, TagD0),
	}
	mids := [4]uint8{
		midTag(up(CornerUL), up(CornerUR), TagB, TagB0),
		midTag(right(CornerUR), right(CornerDR), TagF, TagF0),
		midTag(down(CornerDL), down(CornerDR), TagH, TagH0),
		midTag(left(CornerUL), left(CornerDL), TagD, TagD0),
	}

	return Pass3Pixel{Corners: corners, Mids: mids}
}

// cornerTag resolves one corner's tag from the Level-1 existence gate plus
// its two incident axis chains. orientation picks which axis is primary:
// Level-3/Level-4 are the dist2 links of the orientation-selected primary
// and secondary axes, and Level-6 is a further dist3 confirmation of
// whichever axis orientation favours — only once Level-6 confirms depth 3
// does the dist-2 tag take precedence over the dist-1 tag.
func cornerTag(lvl1, orientation bool, primary, secondary axisChain, primary1, primary2, secondary1, secondary2 uint8) uint8 {
	if !lvl1 {
		return TagE
	}

	if orientation {
		lvl6 := primary.dist3
		switch {
		case primary.dist2 && lvl6:
			return primary2
		case primary.dist1:
			return primary1
		case secondary.dist1:
			return secondary1
		default:
			return TagE
		}
	}

	lvl6 := secondary.dist3
	switch {
	case secondary.dist2 && lvl6:
		return secondary2
	case secondary.dist1:
		return secondary1
	case primary.dist1:
		return primary1
	default:
		return TagE
	}
}

// midTag resolves one edge midpoint's tag from the two corner chains that
// bound it: Level-2 (both agree at distance 1) and Level-5 (both agree at
// distance 2) must hold for the edge to extend that far.
func midTag(left, right axisChain, tag1, tag2 uint8) uint8 {
	lvl2 := left.dist1 && right.dist1
	lvl5 := left.dist2 && right.dist2
	switch {
	case lvl5:
		return tag2
	case lvl2:
		return tag1
	default:
		return TagE
	}
}
