package scalefx

import (
	"fmt"
	"image"
	"image/color"

	"github.com/deepteams/scalefx/internal/scalefx"
)

// Config holds the tunables that the corner-detection and edge-tagging
// passes read. The zero Config is not valid; use DefaultConfig.
type Config = scalefx.Config

// DefaultConfig returns the default tunables used when callers don't need
// to tune corner or edge-level filtering.
func DefaultConfig() Config { return scalefx.DefaultConfig() }

// colourFromNRGBA packs an image/color.NRGBA into the core's big-endian
// RGBA word, R in the most-significant byte and A in the least.
func colourFromNRGBA(c color.NRGBA) uint32 {
	return uint32(c.R)<<24 | uint32(c.G)<<16 | uint32(c.B)<<8 | uint32(c.A)
}

// colourToNRGBA unpacks the core's big-endian RGBA word back into an
// image/color.NRGBA.
func colourToNRGBA(v uint32) color.NRGBA {
	return color.NRGBA{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}
}

// toPixelBuffer converts an arbitrary image.Image into a row-major packed
// RGBA buffer suitable for the core pipeline, normalising to NRGBA (alpha
// not premultiplied) along the way so Colour.Transparent's threshold test
// behaves predictably regardless of the source image's colour model.
func toPixelBuffer(img image.Image) (width, height int, pixels []uint32) {
	b := img.Bounds()
	width, height = b.Dx(), b.Dy()
	pixels = make([]uint32, width*height)

	nrgba, ok := img.(*image.NRGBA)
	if ok {
		for y := 0; y < height; y++ {
			for x := 0; x < width; x++ {
				pixels[y*width+x] = colourFromNRGBA(nrgba.NRGBAAt(b.Min.X+x, b.Min.Y+y))
			}
		}
		return width, height, pixels
	}

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := color.NRGBAModel.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.NRGBA)
			pixels[y*width+x] = colourFromNRGBA(c)
		}
	}
	return width, height, pixels
}

// fromPixelBuffer builds an *image.NRGBA from a row-major packed RGBA
// buffer produced by the core pipeline.
func fromPixelBuffer(width, height int, pixels []uint32) *image.NRGBA {
	out := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			out.SetNRGBA(x, y, colourToNRGBA(pixels[y*width+x]))
		}
	}
	return out
}

// Scale3x upscales img by 3x in each dimension using the default
// configuration. The source image must have positive width and height;
// violating this is reported as an error rather than a panic, since img
// crosses a package boundary from caller-supplied data.
func Scale3x(img image.Image) (image.Image, error) {
	return scale3xCfg(DefaultConfig(), img)
}

// Scale3xConfig is Scale3x with an explicit Config.
func Scale3xConfig(cfg Config, img image.Image) (image.Image, error) {
	return scale3xCfg(cfg, img)
}

func scale3xCfg(cfg Config, img image.Image) (image.Image, error) {
	w, h, pixels := toPixelBuffer(img)
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("scalefx: image has non-positive dimensions %dx%d", w, h)
	}
	ow, oh, out := scalefx.Scale3x(cfg, w, h, pixels)
	return fromPixelBuffer(ow, oh, out), nil
}

// Scale9x upscales img by 9x in each dimension (two composed 3x passes)
// using the default configuration.
func Scale9x(img image.Image) (image.Image, error) {
	return scale9xCfg(DefaultConfig(), img)
}

// Scale9xConfig is Scale9x with an explicit Config.
func Scale9xConfig(cfg Config, img image.Image) (image.Image, error) {
	return scale9xCfg(cfg, img)
}

func scale9xCfg(cfg Config, img image.Image) (image.Image, error) {
	w, h, pixels := toPixelBuffer(img)
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("scalefx: image has non-positive dimensions %dx%d", w, h)
	}
	ow, oh, out := scalefx.Scale9x(cfg, w, h, pixels)
	return fromPixelBuffer(ow, oh, out), nil
}
