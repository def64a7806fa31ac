// Package scalefx implements ScaleFX pixel-art upscaling.
//
// ScaleFX takes a raster image of small integer pixel coordinates and
// produces a 3x (or 9x, by composing two passes) enlarged raster in which
// single-pixel edges, corners, and thin diagonal features are reconstructed
// as smooth diagonal or stepped edges rather than blocky nearest-neighbour
// staircases. It is adapted from the libretro slang-shaders
// scalefx-pass0..pass4 GPU shader into a CPU data-parallel five-pass stencil
// pipeline.
//
// The core algorithm lives in internal/scalefx and operates on raw packed
// RGBA pixel buffers. This package wraps it for everyday use against
// image.Image values:
//
//	out, err := scalefx.Scale3x(img)
//	out, err := scalefx.Scale9x(img)
//
// See cmd/scalefx for a command-line driver that reads and writes PNG, BMP,
// and TIFF files.
package scalefx
