// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package convert implements the batch conversion driver: it discovers
// source files under an input root, mirrors them into an output tree, and
// runs a pluggable conversion strategy per file. Existing outputs are
// skipped, so a rerun over a partially converted tree only processes the
// remainder.
package convert

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/merlinc16/tiff-converter-for-ocr/internal/progress"
)

// Status identifies the terminal state of one conversion job.
type Status string

const (
	StatusConverted Status = "converted"
	StatusSkipped   Status = "skipped"
	StatusFailed    Status = "failed"
)

// Job pairs one discovered source file with its mirrored destination.
// Jobs are built once during discovery and consumed once by ConvertJob.
type Job struct {
	// Source is the absolute path of the input file.
	Source string

	// Rel is Source relative to the input root; it fixes where the output
	// lands under the output root.
	Rel string

	// Dest is the absolute path of the output TIFF.
	Dest string
}

// Outcome records the terminal state of one job. Err is set only for
// StatusFailed.
type Outcome struct {
	Job    Job
	Status Status
	Err    error
}

// Result holds the aggregated counters of a batch run.
type Result struct {
	Converted int
	Skipped   int
	Failed    int
	Outcomes  []Outcome
}

// Total returns the total number of jobs processed.
func (r Result) Total() int {
	return r.Converted + r.Skipped + r.Failed
}

// HasFailures reports whether any job failed.
func (r Result) HasFailures() bool {
	return r.Failed > 0
}

// Strategy converts a single source file, writing the result to destPath.
// Implementations invoke an external tool and surface only its exit status.
type Strategy interface {
	// Name identifies the strategy in diagnostics.
	Name() string

	// Convert writes the converted form of srcPath to destPath.
	Convert(srcPath, destPath string) error
}

// ConvertJob processes a single job. When the destination already exists
// the job is skipped without invoking the strategy. Otherwise the
// destination directory is created and the strategy writes through a
// hidden temp file that is renamed into place on success, so a failed or
// interrupted conversion never leaves a destination path behind for a
// later run's skip check to mistake for a finished file.
func ConvertJob(s Strategy, job Job) Outcome {
	if _, err := os.Stat(job.Dest); err == nil {
		return Outcome{Job: job, Status: StatusSkipped}
	}

	if err := os.MkdirAll(filepath.Dir(job.Dest), 0o755); err != nil {
		return Outcome{Job: job, Status: StatusFailed, Err: fmt.Errorf("creating output directory: %w", err)}
	}

	tmp := partialPath(job.Dest)
	if err := s.Convert(job.Source, tmp); err != nil {
		os.Remove(tmp)
		return Outcome{Job: job, Status: StatusFailed, Err: err}
	}
	if err := os.Rename(tmp, job.Dest); err != nil {
		os.Remove(tmp)
		return Outcome{Job: job, Status: StatusFailed, Err: fmt.Errorf("moving output into place: %w", err)}
	}

	return Outcome{Job: job, Status: StatusConverted}
}

// partialPath returns the hidden temp path a conversion writes through
// before the rename into place. The leading dot keeps it out of skip
// checks; the destination extension stays at the end because the external
// tools pick their output encoder from the filename suffix.
func partialPath(dest string) string {
	dir, base := filepath.Split(dest)
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)
	return filepath.Join(dir, "."+stem+".partial"+ext)
}

// ConvertBatch processes jobs sequentially, printing per-file status and
// a final summary through p, and returns the aggregated result. A failure
// marks that job and the run continues; failures never abort the batch.
func ConvertBatch(s Strategy, jobs []Job, outputRoot string, p *progress.Printer) Result {
	result := Result{Outcomes: make([]Outcome, 0, len(jobs))}
	for i, job := range jobs {
		p.Start(i+1, len(jobs), job.Rel)
		out := ConvertJob(s, job)
		switch out.Status {
		case StatusConverted:
			result.Converted++
			p.Done()
		case StatusSkipped:
			result.Skipped++
			p.Skip()
		case StatusFailed:
			result.Failed++
			p.Fail(out.Err)
		}
		result.Outcomes = append(result.Outcomes, out)
	}
	p.Summary(result.Converted, result.Skipped, result.Failed, outputRoot)
	return result
}
