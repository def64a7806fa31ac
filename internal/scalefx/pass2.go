package scalefx

// runPass2 resolves, for every pixel E and its 3x3 neighbourhood (labelled
// A B C / D E F / G H I), the four corner-configuration quadruples: res,
// horizontal_edges, vertical_edges, orientation.
//
// The junction/dominance/vote/injection/suppression machinery below
// follows shader-style vector algebra literally (including the ge/leq
// helper formulas, reproduced as given rather than "corrected" — see
// vector.go). Per-component index assignments for the strength-injection
// and clear-predicate steps follow a documented, 90°-rotationally-symmetric
// scheme (see DESIGN.md, Open Question a) since no upstream reference
// pinning these bit-for-bit was available.
func runPass2(p1 *Pass1Grid) *Pass2Grid {
	return runPass2Into(make([]Pass2Pixel, p1.W*p1.H), p1)
}

// runPass2Into is runPass2 but writes into a caller-supplied (typically
// pooled) buffer, which must have length p1.W*p1.H.
func runPass2Into(cells []Pass2Pixel, p1 *Pass1Grid) *Pass2Grid {
	for y := 0; y < p1.H; y++ {
		for x := 0; x < p1.W; x++ {
			a := p1.At(x-1, y-1)
			b := p1.At(x, y-1)
			c := p1.At(x+1, y-1)
			d := p1.At(x-1, y)
			e := p1.At(x, y)
			f := p1.At(x+1, y)
			g := p1.At(x-1, y+1)
			h := p1.At(x, y+1)
			i := p1.At(x+1, y+1)

			cells[y*p1.W+x] = resolveCorners(e, a, b, c, d, f, g, h, i)
		}
	}
	return &Pass2Grid{W: p1.W, H: p1.H, Cells: cells}
}

// resolveCorners computes one pixel's Pass2Pixel from its 3x3
// neighbourhood of pass-1 pixels.
func resolveCorners(e, a, b, c, d, f, g, h, i Pass1Pixel) Pass2Pixel {
	// Strength junctions: the four pixels meeting at each of E's diagonal
	// corners, ordered [E, neighbour1, neighbour2, diagonal].
	jsx := Vec4{e.Corner[CornerUL], b.Corner[CornerDL], d.Corner[CornerUR], a.Corner[CornerDR]}
	jsy := Vec4{e.Corner[CornerUR], b.Corner[CornerDR], f.Corner[CornerUL], c.Corner[CornerDL]}
	jsz := Vec4{e.Corner[CornerDR], f.Corner[CornerDL], h.Corner[CornerUR], i.Corner[CornerUL]}
	jsw := Vec4{e.Corner[CornerDL], d.Corner[CornerDR], h.Corner[CornerUL], g.Corner[CornerUR]}

	// Dominance junctions: for each pixel at a junction, 2*its-corner -
	// (its two cyclically-adjacent corners), evaluated at the corner that
	// touches this junction.
	jdx := Vec4{dominance(e, CornerUL), dominance(b, CornerDL), dominance(d, CornerUR), dominance(a, CornerDR)}
	jdy := Vec4{dominance(e, CornerUR), dominance(b, CornerDR), dominance(f, CornerUL), dominance(c, CornerDL)}
	jdz := Vec4{dominance(e, CornerDR), dominance(f, CornerDL), dominance(h, CornerUR), dominance(i, CornerUL)}
	jdw := Vec4{dominance(e, CornerDL), dominance(d, CornerDR), dominance(h, CornerUL), dominance(g, CornerUR)}

	voteX := majorityVote(jdx)
	voteY := majorityVote(jdy)
	voteZ := majorityVote(jdz)
	voteW := majorityVote(jdw)

	resEarly := Vec4{
		injectStrength(voteX, jsx),
		injectStrength(voteY, jsy),
		injectStrength(voteZ, jsz),
		injectStrength(voteW, jsw),
	}

	// Single-pixel / end-of-line suppression: a
	// corner survives if either one fixed slot of its strength junction
	// (pick: jsx.Z, jsy.W, jsz.X, jsw.Y) is strong, or its cyclic neighbours in
	// resEarly aren't both already active (so an isolated corner doesn't
	// get washed out by the "not both neighbours fired" term).
	pick := Vec4{jsx.Z, jsy.W, jsz.X, jsw.Y}
	res := resEarly.Mul(pick.Add(resEarly.Wxyz().Mul(resEarly.Yzwx()).Not())).Clamp01()

	clr := clearVec(e, a, b, c, d, f, g, h, i)

	// ho/v gather the horizontal/vertical colour-distance pair meeting at
	// each junction; e.g. ho.X = min(D.Right, A.Right).
	ho := Vec4{
		minF(d.DistR, a.DistR),
		minF(e.DistR, b.DistR),
		minF(e.DistR, h.DistR),
		minF(d.DistR, g.DistR),
	}
	v := Vec4{
		minF(e.DistU, d.DistU),
		minF(e.DistU, f.DistU),
		minF(h.DistU, i.DistU),
		minF(g.DistU, h.DistU),
	}

	orientation := geV(ho, v)
	horizontal := leqV(ho, v).Mul(clr)
	vertical := geV(ho, v).Mul(clr)

	return Pass2Pixel{
		Res:         res.Bools(),
		Horizontal:  horizontal.Bools(),
		Vertical:    vertical.Bools(),
		Orientation: orientation.Bools(),
	}
}

// dominance returns, for pixel p's corner at index idx, 2*corner -
// (previous-cyclic-corner + next-cyclic-corner), where the four corners
// are cyclically ordered UL, UR, DR, DL.
func dominance(p Pass1Pixel, idx int) float32 {
	v := Vec4{p.Corner[0], p.Corner[1], p.Corner[2], p.Corner[3]}
	d := v.Scale(2).Sub(v.Wxyz().Add(v.Yzwx()))
	switch idx {
	case CornerUL:
		return d.X
	case CornerUR:
		return d.Y
	case CornerDR:
		return d.Z
	default:
		return d.W
	}
}

// majorityVote evaluates whether a junction's four dominance scores agree
// strongly enough to resolve a corner.
func majorityVote(dd Vec4) Vec4 {
	rot1 := dd.Yzwx()
	rot2 := dd.Zwxy()
	rot3 := dd.Wxyz()

	term1 := geVS(dd, 0)
	agreement := leqVS(rot1, 0).Mul(leqVS(rot3, 0))
	spread := geV(dd.Add(rot2), rot1.Add(rot3))
	term2 := agreement.Add(spread)

	return term1.Mul(term2).Clamp01()
}

// injectStrength folds a single junction's vote and strength vectors
// together, producing one component of res_early.
func injectStrength(vote, strength Vec4) float32 {
	gate := (1 - vote.Y) * (1 - vote.W) * ge(strength.X, 0)
	bonus := vote.Z + ge(strength.X+strength.Z, strength.Y+strength.W)
	return clamp(vote.X+gate*bonus, 0, 1)
}

// clearVec evaluates the clear() predicate at each of E's four junctions.
// Each junction's test takes two genuinely distinct colour-distance pairs:
// outer (the pixel diagonal from E at that junction, against each of the
// junction's two cardinal neighbours) and inner (E against its diagonal neighbour,
// and the junction's two cardinal neighbours against each other) — the
// extra pixel reachable one step further at that junction, following
// clear()'s two-argument contract (see DESIGN.md, clearVec entry).
func clearVec(e, a, b, c, d, f, g, h, i Pass1Pixel) Vec4 {
	clear := func(corner, outer, inner Vec2) float32 {
		if corner.X >= maxF(minF(outer.X, outer.Y), minF(inner.X, inner.Y)) &&
			corner.Y >= maxF(minF(outer.X, inner.Y), minF(inner.X, outer.Y)) {
			return 1
		}
		return 0
	}

	ulOuter := Vec2{Distance(a.Colour, b.Colour), Distance(a.Colour, d.Colour)}
	ulInner := Vec2{Distance(e.Colour, a.Colour), Distance(b.Colour, d.Colour)}
	ulClr := clear(Vec2{e.DistU, distance(e, d)}, ulOuter, ulInner)

	urOuter := Vec2{Distance(b.Colour, c.Colour), Distance(c.Colour, f.Colour)}
	urInner := Vec2{Distance(e.Colour, c.Colour), Distance(b.Colour, f.Colour)}
	urClr := clear(Vec2{e.DistU, distance(e, f)}, urOuter, urInner)

	drOuter := Vec2{Distance(h.Colour, i.Colour), Distance(f.Colour, i.Colour)}
	drInner := Vec2{Distance(e.Colour, i.Colour), Distance(h.Colour, f.Colour)}
	drClr := clear(Vec2{distance(h, e), distance(e, f)}, drOuter, drInner)

	dlOuter := Vec2{Distance(g.Colour, h.Colour), Distance(d.Colour, g.Colour)}
	dlInner := Vec2{Distance(e.Colour, g.Colour), Distance(d.Colour, h.Colour)}
	dlClr := clear(Vec2{distance(h, e), distance(e, d)}, dlOuter, dlInner)

	return Vec4{ulClr, urClr, drClr, dlClr}
}

// distance returns the colour distance between two pass-1 pixels.
func distance(p, q Pass1Pixel) float32 { return Distance(p.Colour, q.Colour) }
