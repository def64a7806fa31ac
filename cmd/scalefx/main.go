// Command scalefx upscales pixel-art images from the command line.
//
// Usage:
//
//	scalefx <in> <out>      9x upscale (default, two composed 3x passes)
//	scalefx 3x <in> <out>   3x upscale
//	scalefx 9x <in> <out>   9x upscale (two composed 3x passes)
//
// Input and output format are chosen from the file extension: .png, .bmp,
// and .tiff/.tif are supported for both reading and writing.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "scalefx: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var cfgThreshold float32
	var cfgNoAA bool
	var cfgNoCorners bool
	var buildConfig func() (config, error)

	root := &cobra.Command{
		Use:           "scalefx <in> <out>",
		Short:         "Upscale pixel-art images with edge-aware corner reconstruction",
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := buildConfig()
			if err != nil {
				return err
			}
			return runScale(9, cfg, args[0], args[1])
		},
	}
	root.PersistentFlags().Float32Var(&cfgThreshold, "threshold", 0.5, "corner activation threshold (0.01-1.0)")
	root.PersistentFlags().BoolVar(&cfgNoAA, "no-antialias", false, "disable the antialiasing filter branch")
	root.PersistentFlags().BoolVar(&cfgNoCorners, "no-corner-filter", false, "require independently-resolved neighbouring corners")

	buildConfig = func() (config, error) {
		if cfgThreshold < 0.01 || cfgThreshold > 1.0 {
			return config{}, fmt.Errorf("--threshold must be in [0.01, 1.0], got %v", cfgThreshold)
		}
		return config{
			threshold:       cfgThreshold,
			filterAAEnabled: !cfgNoAA,
			filterCorners:   !cfgNoCorners,
		}, nil
	}

	root.AddCommand(newScaleCmd("3x", "Upscale an image 3x", 3, buildConfig))
	root.AddCommand(newScaleCmd("9x", "Upscale an image 9x (two composed 3x passes)", 9, buildConfig))

	return root
}

func newScaleCmd(use, short string, factor int, buildConfig func() (config, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <in> <out>",
		Short: short,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := buildConfig()
			if err != nil {
				return err
			}
			return runScale(factor, cfg, args[0], args[1])
		},
	}
}
