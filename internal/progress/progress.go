// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package progress renders per-file status lines and the run summary for
// batch conversions. Reporting is purely observational: nothing here
// influences outcomes or control flow.
package progress

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// maxPathWidth bounds the relative path shown on a status line.
const maxPathWidth = 48

// Printer writes one status line per job, opened by Start and closed by
// exactly one of Done, Skip, or Fail, followed by a final Summary.
type Printer struct {
	w    io.Writer
	done *color.Color
	fail *color.Color
	skip *color.Color
}

// New returns a Printer writing to w. Colors degrade to plain text when
// the destination is not a terminal.
func New(w io.Writer) *Printer {
	return &Printer{
		w:    w,
		done: color.New(color.FgGreen),
		fail: color.New(color.FgRed, color.Bold),
		skip: color.New(color.FgYellow),
	}
}

// Start opens the status line for job index (1-based) of total.
func (p *Printer) Start(index, total int, rel string) {
	fmt.Fprintf(p.w, "[%d/%d] %s ... ", index, total, truncate(rel, maxPathWidth))
}

// Done closes the current line for a converted file.
func (p *Printer) Done() {
	p.done.Fprintln(p.w, "done")
}

// Skip closes the current line for a file whose output already exists.
func (p *Printer) Skip() {
	p.skip.Fprintln(p.w, "skip (already exists)")
}

// Fail closes the current line with the failure cause.
func (p *Printer) Fail(err error) {
	p.fail.Fprint(p.w, "FAILED")
	fmt.Fprintf(p.w, " (%v)\n", err)
}

// Summary prints the final counters and the output location.
func (p *Printer) Summary(converted, skipped, failed int, outputRoot string) {
	total := converted + skipped + failed
	fmt.Fprintf(p.w, "\nBatch summary: %d converted, %d skipped, %d failed (total: %d)\n",
		converted, skipped, failed, total)
	fmt.Fprintf(p.w, "Output: %s\n", outputRoot)
}

// truncate shortens rel to at most max runes, keeping the tail, which is
// the discriminating part of a mirrored path.
func truncate(rel string, max int) string {
	r := []rune(rel)
	if len(r) <= max {
		return rel
	}
	return "…" + string(r[len(r)-max+1:])
}
