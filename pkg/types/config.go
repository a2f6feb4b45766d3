// Package types defines the shared policy and configuration types for the
// batch converter.
package types

// CompressionLZW is the lossless compression scheme applied to every
// output TIFF.
const CompressionLZW = "lzw"

// TargetExt is the extension given to every converted file, regardless of
// the source extension's spelling.
const TargetExt = ".tiff"

// Target describes the output pixel format handed to the external tools.
// It is a fixed policy, constant for the whole run: the converter does not
// expose these as user settings.
type Target struct {
	// ResolutionDPI is the rasterization resolution for PDF sources.
	// Ignored for sources that are already raster images.
	ResolutionDPI int `json:"resolution_dpi" yaml:"resolution_dpi"`

	// BitDepth is the output bit depth per channel.
	BitDepth int `json:"bit_depth" yaml:"bit_depth"`

	// Compression is the TIFF compression scheme.
	Compression string `json:"compression" yaml:"compression"`
}

// OCRTarget returns the fixed conversion policy for OCR-ready output:
// 300 DPI rasterization, 8-bit grayscale, LZW compression, alpha removed.
func OCRTarget() Target {
	return Target{
		ResolutionDPI: 300,
		BitDepth:      8,
		Compression:   CompressionLZW,
	}
}

// ToolsConfig holds overrides for the external conversion binaries,
// resolved from the config file or environment.
type ToolsConfig struct {
	// Ghostscript is the PDF rasterizer binary name or path (default "gs").
	Ghostscript string `json:"ghostscript" yaml:"ghostscript" mapstructure:"ghostscript"`

	// Magick is the image conversion binary name or path (default "magick").
	Magick string `json:"magick" yaml:"magick" mapstructure:"magick"`
}
