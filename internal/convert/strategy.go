// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"github.com/merlinc16/tiff-converter-for-ocr/internal/imagetool"
	"github.com/merlinc16/tiff-converter-for-ocr/pkg/types"
)

// PDFStrategy rasterizes PDF sources through Ghostscript, one TIFF page
// per PDF page.
type PDFStrategy struct {
	gs     *imagetool.Ghostscript
	target types.Target
}

// NewPDFStrategy creates the PDF flow with the given rasterizer and the
// fixed output policy.
func NewPDFStrategy(gs *imagetool.Ghostscript, target types.Target) *PDFStrategy {
	return &PDFStrategy{gs: gs, target: target}
}

// Name returns "pdf".
func (s *PDFStrategy) Name() string { return "pdf" }

// Extensions returns the source extensions the PDF flow discovers.
func (s *PDFStrategy) Extensions() []string { return []string{".pdf"} }

// Convert rasterizes srcPath to destPath.
func (s *PDFStrategy) Convert(srcPath, destPath string) error {
	return s.gs.Rasterize(srcPath, destPath, s.target)
}

// TIFFStrategy re-encodes existing TIFFs through ImageMagick, preserving
// multi-page structure and resolution metadata.
type TIFFStrategy struct {
	magick *imagetool.Magick
	target types.Target
}

// NewTIFFStrategy creates the TIFF flow with the given converter and the
// fixed output policy.
func NewTIFFStrategy(magick *imagetool.Magick, target types.Target) *TIFFStrategy {
	return &TIFFStrategy{magick: magick, target: target}
}

// Name returns "tiff".
func (s *TIFFStrategy) Name() string { return "tiff" }

// Extensions returns the source extensions the TIFF flow discovers.
func (s *TIFFStrategy) Extensions() []string { return []string{".tif", ".tiff"} }

// Convert re-encodes srcPath to destPath.
func (s *TIFFStrategy) Convert(srcPath, destPath string) error {
	return s.magick.Reformat(srcPath, destPath, s.target)
}
