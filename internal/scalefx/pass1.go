package scalefx

// cornerStrength scores how strongly a diagonal corner should be treated as
// an edge corner, from five normalised colour distances. d, ax, ay, bx, by
// are all normalised colour distances in [0,1] (raw
// colour distances, which range over [0, MaxDistance], are divided by
// MaxDistance before being passed in — THRESHOLD is itself specified on a
// [0.01, 1.0] scale, which only makes sense against normalised inputs).
func cornerStrength(cfg Config, d, ax, ay, bx, by float32) float32 {
	weight1 := maxF(cfg.Threshold-d, 0) / cfg.Threshold

	diff := ax - ay
	pickXGtY := (minF(ax, bx) + ax) > (minF(ay, by) + ay)
	diffSigned := diff
	if !pickXGtY {
		diffSigned = -diff
	}
	weight2 := clamp((1-d)+diffSigned, 0, 1)

	if cfg.FilterAAEnabled || 2*d < ax+ay {
		return weight1 * weight2 * ax * ay
	}
	return 0
}

// runPass1 computes the four diagonal corner strengths of every pixel from
// its pass-0 3x3 neighbourhood.
//
// The five scalar inputs to cornerStrength per corner are assigned using a
// 90°-rotationally-symmetric convention documented in DESIGN.md (Open
// Question a): for each corner, d is the distance to the diagonal
// neighbour, ax/ay are the distances to the two cardinal neighbours
// sharing that corner, and bx/by are the distances between the diagonal
// neighbour and those same two cardinal neighbours (computed directly from
// colours, since only E-centric distances are materialised in Pass0Pixel).
func runPass1(cfg Config, p0 *Pass0Grid) *Pass1Grid {
	return runPass1Into(make([]Pass1Pixel, p0.W*p0.H), cfg, p0)
}

// runPass1Into is runPass1 but writes into a caller-supplied (typically
// pooled) buffer, which must have length p0.W*p0.H.
func runPass1Into(cells []Pass1Pixel, cfg Config, p0 *Pass0Grid) *Pass1Grid {
	for y := 0; y < p0.H; y++ {
		for x := 0; x < p0.W; x++ {
			e := p0.At(x, y)

			nw := p0.At(x-1, y-1)
			n := p0.At(x, y-1)
			ne := p0.At(x+1, y-1)
			w := p0.At(x-1, y)
			ea := p0.At(x+1, y)
			sw := p0.At(x-1, y+1)
			s := p0.At(x, y+1)
			se := p0.At(x+1, y+1)

			norm := func(d float32) float32 { return d / MaxDistance }

			// ax = dist(E,up), ay = dist(E,left)
			ul := cornerStrength(cfg, norm(e.DistUL), norm(e.DistU), norm(Distance(e.Colour, w.Colour)),
				norm(Distance(nw.Colour, w.Colour)), norm(Distance(nw.Colour, n.Colour)))

			ur := cornerStrength(cfg, norm(e.DistUR), norm(e.DistU), norm(Distance(e.Colour, ea.Colour)),
				norm(Distance(ne.Colour, ea.Colour)), norm(Distance(ne.Colour, n.Colour)))

			dr := cornerStrength(cfg, norm(Distance(e.Colour, se.Colour)), norm(Distance(e.Colour, s.Colour)),
				norm(Distance(e.Colour, ea.Colour)), norm(Distance(se.Colour, ea.Colour)), norm(Distance(se.Colour, s.Colour)))

			dl := cornerStrength(cfg, norm(Distance(e.Colour, sw.Colour)), norm(Distance(e.Colour, s.Colour)),
				norm(Distance(e.Colour, w.Colour)), norm(Distance(sw.Colour, w.Colour)), norm(Distance(sw.Colour, s.Colour)))

			cells[y*p0.W+x] = Pass1Pixel{
				Colour: e.Colour,
				DistUL: e.DistUL, DistU: e.DistU, DistUR: e.DistUR, DistR: e.DistR,
				Corner: [4]float32{
					clamp01(ul),
					clamp01(ur),
					clamp01(dr),
					clamp01(dl),
				},
			}
		}
	}
	return &Pass1Grid{W: p0.W, H: p0.H, Cells: cells}
}
