package main

import (
	"github.com/spf13/cobra"

	"github.com/merlinc16/tiff-converter-for-ocr/internal/convert"
	"github.com/merlinc16/tiff-converter-for-ocr/internal/imagetool"
	"github.com/merlinc16/tiff-converter-for-ocr/pkg/types"
)

var pdfCmd = &cobra.Command{
	Use:   "pdf <input_dir> [output_dir]",
	Short: "Rasterize PDF files into OCR-ready multi-page TIFFs",
	Long: `Pdf walks input_dir for *.pdf files (any case) and rasterizes each one at
300 DPI into an 8-bit grayscale, LZW-compressed TIFF with one page per PDF
page, mirroring the directory structure under output_dir. When output_dir
is omitted it defaults to <input_dir>_tiffs_converted.

Requires Ghostscript; override the binary with the tools.ghostscript
config key.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runPDF,
}

func init() {
	pdfCmd.Flags().String("report", "", "write a YAML run report to this path")

	rootCmd.AddCommand(pdfCmd)
}

func runPDF(cmd *cobra.Command, args []string) error {
	gs, err := imagetool.DetectGhostscript(toolsCfg.Ghostscript)
	if err != nil {
		return err
	}
	s := convert.NewPDFStrategy(gs, types.OCRTarget())
	return runBatch(cmd, args, s, s.Extensions(), "_tiffs_converted", s.Name())
}
