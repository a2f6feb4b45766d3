// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package report writes a YAML record of one batch run for later
// inspection. The report is an audit artifact only; the skip check never
// reads it.
package report

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/merlinc16/tiff-converter-for-ocr/internal/convert"
)

// Failure identifies one failed file in a run report.
type Failure struct {
	Path  string `yaml:"path"`
	Error string `yaml:"error"`
}

// Report captures the outcome of one batch run.
type Report struct {
	GeneratedAt string    `yaml:"generated_at"`
	Flow        string    `yaml:"flow"`
	InputRoot   string    `yaml:"input_root"`
	OutputRoot  string    `yaml:"output_root"`
	Converted   int       `yaml:"converted"`
	Skipped     int       `yaml:"skipped"`
	Failed      int       `yaml:"failed"`
	Total       int       `yaml:"total"`
	Failures    []Failure `yaml:"failures,omitempty"`
}

// FromResult builds a Report from a batch result, listing failed files by
// their relative path.
func FromResult(flow, inputRoot, outputRoot string, r convert.Result) Report {
	rep := Report{
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
		Flow:        flow,
		InputRoot:   inputRoot,
		OutputRoot:  outputRoot,
		Converted:   r.Converted,
		Skipped:     r.Skipped,
		Failed:      r.Failed,
		Total:       r.Total(),
	}
	for _, o := range r.Outcomes {
		if o.Status == convert.StatusFailed {
			rep.Failures = append(rep.Failures, Failure{Path: o.Job.Rel, Error: o.Err.Error()})
		}
	}
	return rep
}

// Write marshals rep to YAML at path, creating parent directories as
// needed.
func Write(path string, rep Report) error {
	data, err := yaml.Marshal(rep)
	if err != nil {
		return fmt.Errorf("marshaling report: %w", err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating report directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	return nil
}
