package scalefx

// Vec4 is a 4-component float32 vector mirroring the GLSL vec4 values the
// original ScaleFX shader computes per pixel. Components are named X, Y, Z,
// W and, throughout passes 1-3, correspond to the four diagonal corners of
// a pixel in the fixed order UL, UR, DR, DL.
//
// Vec4 is a value type: copy it freely, no ownership concerns.
type Vec4 struct {
	X, Y, Z, W float32
}

// Vec2 is a 2-component float32 vector used by the pass-2 clear predicate.
type Vec2 struct {
	X, Y float32
}

// Yzwx performs the cyclic left-rotate-by-one swizzle (shader name yzwx).
func (v Vec4) Yzwx() Vec4 { return Vec4{v.Y, v.Z, v.W, v.X} }

// Zwxy performs the cyclic left-rotate-by-two swizzle (shader name zwxy).
func (v Vec4) Zwxy() Vec4 { return Vec4{v.Z, v.W, v.X, v.Y} }

// Wxyz performs the cyclic right-rotate-by-one swizzle (shader name wxyz).
func (v Vec4) Wxyz() Vec4 { return Vec4{v.W, v.X, v.Y, v.Z} }

// Add returns the componentwise sum.
func (v Vec4) Add(o Vec4) Vec4 { return Vec4{v.X + o.X, v.Y + o.Y, v.Z + o.Z, v.W + o.W} }

// Sub returns the componentwise difference.
func (v Vec4) Sub(o Vec4) Vec4 { return Vec4{v.X - o.X, v.Y - o.Y, v.Z - o.Z, v.W - o.W} }

// Mul returns the componentwise product.
func (v Vec4) Mul(o Vec4) Vec4 { return Vec4{v.X * o.X, v.Y * o.Y, v.Z * o.Z, v.W * o.W} }

// Scale returns v with every component multiplied by s.
func (v Vec4) Scale(s float32) Vec4 { return Vec4{v.X * s, v.Y * s, v.Z * s, v.W * s} }

// Not returns the componentwise logical complement 1-v, valid when every
// component of v is already in {0,1}.
func (v Vec4) Not() Vec4 { return Vec4{1 - v.X, 1 - v.Y, 1 - v.Z, 1 - v.W} }

// Clamp01 clamps every component to [0,1].
func (v Vec4) Clamp01() Vec4 {
	return Vec4{clamp01(v.X), clamp01(v.Y), clamp01(v.Z), clamp01(v.W)}
}

// Bools projects every component to a bool via the > 0.5 predicate
// mandated for all pass-2 boolean intermediates.
func (v Vec4) Bools() [4]bool {
	return [4]bool{v.X > 0.5, v.Y > 0.5, v.Z > 0.5, v.W > 0.5}
}

func clamp01(x float32) float32 {
	switch {
	case x < 0:
		return 0
	case x > 1:
		return 1
	default:
		return x
	}
}

func clamp(x, lo, hi float32) float32 {
	switch {
	case x < lo:
		return lo
	case x > hi:
		return hi
	default:
		return x
	}
}

// step implements the shader's step(edge, x): 0 if x<edge, else 1.
func step(edge, x float32) float32 {
	if x < edge {
		return 0
	}
	return 1
}

// ge implements the shader-contract helper ge(a,b) = 1 - step(b,a).
// Reproduced literally rather than "corrected" to a more intuitive a>=b,
// since no upstream source was available to verify intent against (see
// DESIGN.md, Open Question a).
func ge(a, b float32) float32 { return 1 - step(b, a) }

// leq implements the shader-contract helper leq(a,b) = step(a,b).
func leq(a, b float32) float32 { return step(a, b) }

func geV(a, b Vec4) Vec4 {
	return Vec4{ge(a.X, b.X), ge(a.Y, b.Y), ge(a.Z, b.Z), ge(a.W, b.W)}
}

func leqV(a, b Vec4) Vec4 {
	return Vec4{leq(a.X, b.X), leq(a.Y, b.Y), leq(a.Z, b.Z), leq(a.W, b.W)}
}

func geVS(a Vec4, b float32) Vec4 { return geV(a, Vec4{b, b, b, b}) }

func leqVS(a Vec4, b float32) Vec4 { return leqV(a, Vec4{b, b, b, b}) }

func minF(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func maxF(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}
