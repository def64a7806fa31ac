package scalefx

import "github.com/deepteams/scalefx/internal/pool"

// Pipeline runs the five-pass upscale repeatedly while reusing the
// intermediate per-pass grid buffers, avoiding one allocation per pass per
// call. Safe for concurrent use; each call borrows buffers for its own
// duration and returns them before the call completes.
//
// A Pipeline only helps callers that invoke Scale3x/Scale9x many times,
// such as a CLI batch-converting a directory of sprites or a benchmark
// loop; one-shot callers can use the package-level Scale3x/Scale9x
// instead.
type Pipeline struct {
	p0 *pool.Pool[Pass0Pixel]
	p1 *pool.Pool[Pass1Pixel]
	p2 *pool.Pool[Pass2Pixel]
	p3 *pool.Pool[Pass3Pixel]
	p4 *pool.Pool[Colour]
}

// NewPipeline returns a Pipeline ready for repeated use.
func NewPipeline() *Pipeline {
	return &Pipeline{
		p0: pool.New[Pass0Pixel](),
		p1: pool.New[Pass1Pixel](),
		p2: pool.New[Pass2Pixel](),
		p3: pool.New[Pass3Pixel](),
		p4: pool.New[Colour](),
	}
}

// Scale3x behaves exactly like the package-level Scale3x, but draws its
// intermediate per-pass buffers from the pipeline's pools instead of
// allocating fresh ones. The returned output buffer is not pooled; the
// caller owns it.
func (pl *Pipeline) Scale3x(cfg Config, width, height int, pixels []uint32) (int, int, []uint32) {
	src := NewSourceGrid(width, height, pixels)
	n := width * height

	p0buf := pl.p0.Get(n)
	p0 := runPass0Into(p0buf, src)

	p1buf := pl.p1.Get(n)
	p1 := runPass1Into(p1buf, cfg, p0)
	pl.p0.Put(p0buf)

	p2buf := pl.p2.Get(n)
	p2 := runPass2Into(p2buf, p1)
	pl.p1.Put(p1buf)

	p3buf := pl.p3.Get(n)
	p3 := runPass3Into(p3buf, cfg, p2)
	pl.p2.Put(p2buf)

	outW, outH := width*3, height*3
	p4buf := pl.p4.Get(outW * outH)
	out := runPass4Into(p4buf, src, p3)
	pl.p3.Put(p3buf)

	result := out.Uint32()
	pl.p4.Put(p4buf)

	return out.W, out.H, result
}

// Scale9x composes two pooled Scale3x invocations, producing a (9*width,
// 9*height) raster. Each Scale3x call pools its own per-pass buffers; the
// intermediate 3x-scaled result it hands to the second call is an ordinary
// unpooled slice.
func (pl *Pipeline) Scale9x(cfg Config, width, height int, pixels []uint32) (int, int, []uint32) {
	w, h, mid := pl.Scale3x(cfg, width, height, pixels)
	w2, h2, out := pl.Scale3x(cfg, w, h, mid)
	return w2, h2, out
}
