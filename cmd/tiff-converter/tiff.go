package main

import (
	"github.com/spf13/cobra"

	"github.com/merlinc16/tiff-converter-for-ocr/internal/convert"
	"github.com/merlinc16/tiff-converter-for-ocr/internal/imagetool"
	"github.com/merlinc16/tiff-converter-for-ocr/pkg/types"
)

var tiffCmd = &cobra.Command{
	Use:   "tiff <input_dir> [output_dir]",
	Short: "Re-encode TIFF files into OCR-ready form",
	Long: `Tiff walks input_dir for *.tif and *.tiff files (any case) and re-encodes
each one to 8-bit grayscale with the alpha channel removed and LZW
compression applied, mirroring the directory structure under output_dir.
Multi-page files and resolution metadata are preserved. When output_dir is
omitted it defaults to <input_dir>_converted.

Requires ImageMagick; override the binary with the tools.magick config
key.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runTIFF,
}

func init() {
	tiffCmd.Flags().String("report", "", "write a YAML run report to this path")

	rootCmd.AddCommand(tiffCmd)
}

func runTIFF(cmd *cobra.Command, args []string) error {
	magick, err := imagetool.DetectMagick(toolsCfg.Magick)
	if err != nil {
		return err
	}
	s := convert.NewTIFFStrategy(magick, types.OCRTarget())
	return runBatch(cmd, args, s, s.Extensions(), "_converted", s.Name())
}
