package main

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/deepteams/scalefx"
)

// config mirrors scalefx.Config, kept as a plain struct here so this
// package doesn't need to import the core's flag-parsing concerns.
type config struct {
	threshold       float32
	filterAAEnabled bool
	filterCorners   bool
}

func (c config) toScaleFX() scalefx.Config {
	return scalefx.Config{
		Threshold:       c.threshold,
		FilterAAEnabled: c.filterAAEnabled,
		FilterCorners:   c.filterCorners,
	}
}

func runScale(factor int, cfg config, inPath, outPath string) error {
	img, err := decodeImage(inPath)
	if err != nil {
		return fmt.Errorf("reading %s: %w", inPath, err)
	}

	var out image.Image
	switch factor {
	case 3:
		out, err = scalefx.Scale3xConfig(cfg.toScaleFX(), img)
	case 9:
		out, err = scalefx.Scale9xConfig(cfg.toScaleFX(), img)
	default:
		return fmt.Errorf("unsupported scale factor %d", factor)
	}
	if err != nil {
		return fmt.Errorf("upscaling %s: %w", inPath, err)
	}

	if err := encodeImage(outPath, out); err != nil {
		return fmt.Errorf("writing %s: %w", outPath, err)
	}

	fmt.Fprintf(os.Stderr, "scalefx: %s (%dx) -> %s\n", inPath, factor, outPath)
	return nil
}

func decodeImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".png":
		return png.Decode(f)
	case ".bmp":
		return bmp.Decode(f)
	case ".tiff", ".tif":
		return tiff.Decode(f)
	default:
		return nil, fmt.Errorf("unsupported input format %q", ext)
	}
}

func encodeImage(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".png":
		return png.Encode(f, img)
	case ".bmp":
		return bmp.Encode(f, img)
	case ".tiff", ".tif":
		return tiff.Encode(f, img, nil)
	default:
		return fmt.Errorf("unsupported output format %q", ext)
	}
}
