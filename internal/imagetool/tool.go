// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package imagetool wraps the external conversion binaries: Ghostscript
// for PDF rasterization and ImageMagick for raster re-encoding. Both are
// consumed as opaque commands; only their exit status surfaces.
package imagetool

import (
	"fmt"
	"os/exec"
	"strconv"
	"strings"

	"github.com/merlinc16/tiff-converter-for-ocr/pkg/types"
)

const (
	binGhostscript = "gs"
	binMagick      = "magick"
)

// executor abstracts command execution for testing.
type executor interface {
	LookPath(file string) (string, error)
	RunSilent(name string, args ...string) error
}

// osExecutor is the production executor backed by os/exec. RunSilent
// discards the tool's stdout and stderr; diagnostics from the tools never
// reach the user-facing report.
type osExecutor struct{}

func (o *osExecutor) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

func (o *osExecutor) RunSilent(name string, args ...string) error {
	return exec.Command(name, args...).Run()
}

var defaultExec = &osExecutor{}

// Ghostscript rasterizes PDF pages into a single multi-page grayscale TIFF.
type Ghostscript struct {
	bin  string
	exec executor
}

// NewGhostscript returns a Ghostscript wrapper for the given binary name
// or path. An empty bin falls back to "gs". Availability is not checked;
// call Available or use DetectGhostscript.
func NewGhostscript(bin string) *Ghostscript {
	return newGhostscript(bin, defaultExec)
}

func newGhostscript(bin string, exec executor) *Ghostscript {
	if bin == "" {
		bin = binGhostscript
	}
	return &Ghostscript{bin: bin, exec: exec}
}

// Name returns the configured binary name.
func (g *Ghostscript) Name() string { return g.bin }

// Available reports whether the binary exists on PATH and responds to a
// version probe.
func (g *Ghostscript) Available() bool {
	if _, err := g.exec.LookPath(g.bin); err != nil {
		return false
	}
	return g.exec.RunSilent(g.bin, "--version") == nil
}

// Rasterize renders the PDF at srcPath into a TIFF at destPath. The
// tiffgray device produces 8-bit grayscale output with one TIFF page per
// PDF page; transparency is flattened against the page background during
// rendering.
func (g *Ghostscript) Rasterize(srcPath, destPath string, target types.Target) error {
	args := []string{
		"-dSAFER", "-dBATCH", "-dNOPAUSE", "-dQUIET",
		"-sDEVICE=tiffgray",
		"-r" + strconv.Itoa(target.ResolutionDPI),
		"-sCompression=" + target.Compression,
		"-sOutputFile=" + destPath,
		srcPath,
	}
	if err := g.exec.RunSilent(g.bin, args...); err != nil {
		return fmt.Errorf("rasterizing %s with %s: %w", srcPath, g.bin, err)
	}
	return nil
}

// Magick re-encodes raster images through ImageMagick.
type Magick struct {
	bin  string
	exec executor
}

// NewMagick returns an ImageMagick wrapper for the given binary name or
// path. An empty bin falls back to "magick".
func NewMagick(bin string) *Magick {
	return newMagick(bin, defaultExec)
}

func newMagick(bin string, exec executor) *Magick {
	if bin == "" {
		bin = binMagick
	}
	return &Magick{bin: bin, exec: exec}
}

// Name returns the configured binary name.
func (m *Magick) Name() string { return m.bin }

// Available reports whether the binary exists on PATH and responds to a
// version probe.
func (m *Magick) Available() bool {
	if _, err := m.exec.LookPath(m.bin); err != nil {
		return false
	}
	return m.exec.RunSilent(m.bin, "-version") == nil
}

// Reformat rewrites the image at srcPath to destPath with the alpha
// channel removed, the target bit depth, and the target compression.
// Multi-page inputs keep all pages; resolution metadata carries over.
func (m *Magick) Reformat(srcPath, destPath string, target types.Target) error {
	args := []string{
		srcPath,
		"-alpha", "off",
		"-colorspace", "Gray",
		"-depth", strconv.Itoa(target.BitDepth),
		"-compress", strings.ToUpper(target.Compression),
		destPath,
	}
	if err := m.exec.RunSilent(m.bin, args...); err != nil {
		return fmt.Errorf("converting %s with %s: %w", srcPath, m.bin, err)
	}
	return nil
}

// DetectGhostscript verifies that the Ghostscript binary is available
// before any file is processed. A missing or non-operational binary is a
// configuration error, not a per-file one.
func DetectGhostscript(bin string) (*Ghostscript, error) {
	return detectGhostscript(bin, defaultExec)
}

func detectGhostscript(bin string, exec executor) (*Ghostscript, error) {
	g := newGhostscript(bin, exec)
	if !g.Available() {
		return nil, fmt.Errorf("PDF rasterizer %s not found on PATH or not operational", g.bin)
	}
	return g, nil
}

// DetectMagick verifies that the ImageMagick binary is available.
func DetectMagick(bin string) (*Magick, error) {
	return detectMagick(bin, defaultExec)
}

func detectMagick(bin string, exec executor) (*Magick, error) {
	m := newMagick(bin, exec)
	if !m.Available() {
		return nil, fmt.Errorf("image converter %s not found on PATH or not operational", m.bin)
	}
	return m, nil
}
