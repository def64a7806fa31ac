// Package scalefx implements the five-pass ScaleFX stencil pipeline that
// decides, for each of the 9 output subpixels of every source pixel, which
// neighbouring source pixel's colour to copy.
//
// The pipeline is pure: every pass reads an immutable grid produced by its
// predecessor and allocates a fresh grid of its own. Passes never mutate
// their input and never read outside the documented neighbourhood.
package scalefx

import "math"

// Colour packs (R,G,B,A) into a 32-bit word, R in the most-significant
// byte and A in the least-significant byte. The zero Colour is fully
// transparent black and doubles as the offscreen sentinel.
type Colour uint32

// MaxDistance is the maximum possible colour distance, returned whenever
// either operand is transparent.
const MaxDistance = 765

// NewColour packs four 8-bit channels into a Colour.
func NewColour(r, g, b, a uint8) Colour {
	return Colour(uint32(r)<<24 | uint32(g)<<16 | uint32(b)<<8 | uint32(a))
}

// R returns the red channel.
func (c Colour) R() uint8 { return uint8(c >> 24) }

// G returns the green channel.
func (c Colour) G() uint8 { return uint8(c >> 16) }

// B returns the blue channel.
func (c Colour) B() uint8 { return uint8(c >> 8) }

// A returns the alpha channel.
func (c Colour) A() uint8 { return uint8(c) }

// Transparent reports whether c's alpha is below the 0x80 opacity
// threshold.
func (c Colour) Transparent() bool { return c.A() < 0x80 }

// Distance computes the Compuphase "cmetric" perceptual colour distance
// between a and b. It is symmetric and returns MaxDistance whenever either
// colour is transparent.
func Distance(a, b Colour) float32 {
	if a.Transparent() || b.Transparent() {
		return MaxDistance
	}

	ar, ag, ab := int32(a.R()), int32(a.G()), int32(a.B())
	br, bg, bb := int32(b.R()), int32(b.G()), int32(b.B())

	dr := ar - br
	dg := ag - bg
	db := ab - bb
	if dr == 0 && dg == 0 && db == 0 {
		return 0
	}

	rmean := (ar + br) / 2
	t1 := ((512 + rmean) * dr * dr) >> 8
	t2 := 4 * dg * dg
	t3 := ((767 - rmean) * db * db) >> 8

	return float32(math.Sqrt(float64(t1 + t2 + t3)))
}
