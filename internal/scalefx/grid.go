package scalefx

// SourceGrid is the immutable input to pass 0: a rectangle of packed
// colours in row-major order. Reads outside [0,W)x[0,H) are treated as
// fully transparent, matching the fixed offscreen sentinel the rest of
// the pipeline uses at grid edges.
type SourceGrid struct {
	W, H   int
	Pixels []Colour
}

// NewSourceGrid builds a SourceGrid from a row-major uint32 buffer.
// Panics if len(pixels) != width*height or if width/height aren't
// positive — these are the only precondition violations the core
// recognises, and they are programmer errors.
func NewSourceGrid(width, height int, pixels []uint32) *SourceGrid {
	if width <= 0 || height <= 0 {
		panic("scalefx: width and height must be positive")
	}
	if len(pixels) != width*height {
		panic("scalefx: len(pixels) != width*height")
	}
	cols := make([]Colour, len(pixels))
	for i, p := range pixels {
		cols[i] = Colour(p)
	}
	return &SourceGrid{W: width, H: height, Pixels: cols}
}

// At returns the colour at (x,y), or transparent black if out of bounds.
func (g *SourceGrid) At(x, y int) Colour {
	if x < 0 || x >= g.W || y < 0 || y >= g.H {
		return 0
	}
	return g.Pixels[y*g.W+x]
}

// Pass0Pixel is the pass-0 output: the source colour plus four directional
// colour distances. Only these four directions are materialised; the other
// four (left, down, down-left, down-right) are obtained by reading the
// appropriate neighbour's stored field.
type Pass0Pixel struct {
	Colour Colour
	// DistUL, DistU, DistUR, DistR are the colour distances to the
	// up-left, up, up-right, and right neighbours respectively.
	DistUL, DistU, DistUR, DistR float32
}

// offscreenPass0 is the sentinel pass-0 value for out-of-bounds reads:
// colour 0, distances at the maximum.
var offscreenPass0 = Pass0Pixel{Colour: 0, DistUL: MaxDistance, DistU: MaxDistance, DistUR: MaxDistance, DistR: MaxDistance}

// Pass0Grid is the output of pass 0.
type Pass0Grid struct {
	W, H  int
	Cells []Pass0Pixel
}

// At returns the pass-0 pixel at (x,y), or the offscreen sentinel if out
// of bounds.
func (g *Pass0Grid) At(x, y int) Pass0Pixel {
	if x < 0 || x >= g.W || y < 0 || y >= g.H {
		return offscreenPass0
	}
	return g.Cells[y*g.W+x]
}

// Left returns this pixel's distance to its left neighbour, read through
// that neighbour's stored DistR field.
func (g *Pass0Grid) Left(x, y int) float32 { return g.At(x-1, y).DistR }

// Down returns this pixel's distance to its down neighbour, read through
// that neighbour's stored DistU field.
func (g *Pass0Grid) Down(x, y int) float32 { return g.At(x, y+1).DistU }

// DownLeft returns this pixel's distance to its down-left neighbour, read
// through that neighbour's stored DistUR field.
func (g *Pass0Grid) DownLeft(x, y int) float32 { return g.At(x-1, y+1).DistUR }

// DownRight returns this pixel's distance to its down-right neighbour,
// read through that neighbour's stored DistUL field.
func (g *Pass0Grid) DownRight(x, y int) float32 { return g.At(x+1, y+1).DistUL }

// Corner indices into the 4 corner-ordered arrays/Vec4 components used
// throughout passes 1-3: UL, UR, DR, DL.
const (
	CornerUL = iota
	CornerUR
	CornerDR
	CornerDL
)

// Pass1Pixel is the pass-1 output: pass-0 fields carried through plus four
// corner strengths in [0,1].
type Pass1Pixel struct {
	Colour                       Colour
	DistUL, DistU, DistUR, DistR float32
	Corner                       [4]float32 // UL, UR, DR, DL
}

var offscreenPass1 = Pass1Pixel{Colour: 0, DistUL: MaxDistance, DistU: MaxDistance, DistUR: MaxDistance, DistR: MaxDistance}

// Pass1Grid is the output of pass 1.
type Pass1Grid struct {
	W, H  int
	Cells []Pass1Pixel
}

// At returns the pass-1 pixel at (x,y), or the offscreen sentinel
// (distances at the maximum, corner strengths 0) if out of bounds.
func (g *Pass1Grid) At(x, y int) Pass1Pixel {
	if x < 0 || x >= g.W || y < 0 || y >= g.H {
		return offscreenPass1
	}
	return g.Cells[y*g.W+x]
}

// Pass2Pixel is the pass-2 output: four boolean quadruples, one component
// per diagonal corner (UL, UR, DR, DL).
type Pass2Pixel struct {
	Res         [4]bool
	Horizontal  [4]bool
	Vertical    [4]bool
	Orientation [4]bool
}

var offscreenPass2 Pass2Pixel // all false

// Pass2Grid is the output of pass 2.
type Pass2Grid struct {
	W, H  int
	Cells []Pass2Pixel
}

// At returns the pass-2 pixel at (x,y), or the all-false offscreen
// sentinel if out of bounds.
func (g *Pass2Grid) At(x, y int) Pass2Pixel {
	if x < 0 || x >= g.W || y < 0 || y >= g.H {
		return offscreenPass2
	}
	return g.Cells[y*g.W+x]
}

// Pass3Pixel is the pass-3 output: two tag vectors, corners and mids, each
// naming a source-pixel offset in {0..8}.
type Pass3Pixel struct {
	Corners [4]uint8 // UL, UR, DR, DL
	Mids    [4]uint8 // top, right, bottom, left
}

// Pass3Grid is the output of pass 3.
type Pass3Grid struct {
	W, H  int
	Cells []Pass3Pixel
}

// At returns the pass-3 pixel at (x,y), or the all-zero (tag 0 = "this
// pixel") offscreen sentinel if out of bounds.
func (g *Pass3Grid) At(x, y int) Pass3Pixel {
	if x < 0 || x >= g.W || y < 0 || y >= g.H {
		return Pass3Pixel{}
	}
	return g.Cells[y*g.W+x]
}

// OutputGrid is the pass-4 output: a (3W, 3H) rectangle of copied source
// colours.
type OutputGrid struct {
	W, H   int
	Pixels []Colour
}

// At returns the colour at (x,y) in the output grid.
func (g *OutputGrid) At(x, y int) Colour { return g.Pixels[y*g.W+x] }

// Uint32 returns the output grid's pixels as a row-major uint32 buffer.
func (g *OutputGrid) Uint32() []uint32 {
	out := make([]uint32, len(g.Pixels))
	for i, c := range g.Pixels {
		out[i] = uint32(c)
	}
	return out
}
