// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDiscover(t *testing.T) {
	tests := []struct {
		name     string
		files    []string
		exts     []string
		wantRels []string
	}{
		{
			name:     "extension match is case-insensitive",
			files:    []string{"a.pdf", "b.PDF", "notes.txt", filepath.Join("sub", "c.pdf")},
			exts:     []string{".pdf"},
			wantRels: []string{"a.pdf", "b.PDF", filepath.Join("sub", "c.pdf")},
		},
		{
			name:     "multiple extensions",
			files:    []string{"scan.tif", "scan2.TIFF", "scan3.tiff", "skip.png"},
			exts:     []string{".tif", ".tiff"},
			wantRels: []string{"scan.tif", "scan2.TIFF", "scan3.tiff"},
		},
		{
			name:     "no matches yields empty sequence",
			files:    []string{"readme.md"},
			exts:     []string{".pdf"},
			wantRels: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := t.TempDir()
			for _, rel := range tt.files {
				writeSource(t, root, rel)
			}

			got, err := Discover(root, tt.exts)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			var want []string
			for _, rel := range tt.wantRels {
				want = append(want, filepath.Join(root, rel))
			}
			if len(got) != len(want) {
				t.Fatalf("discovered %d files, want %d: %v", len(got), len(want), got)
			}
			for i := range want {
				if got[i] != want[i] {
					t.Errorf("got[%d] = %s, want %s", i, got[i], want[i])
				}
			}
		})
	}
}

func TestDiscover_SortedByFullPath(t *testing.T) {
	root := t.TempDir()
	// Created out of order; discovery must return lexicographic order.
	for _, rel := range []string{filepath.Join("z", "a.pdf"), "b.pdf", "a.pdf"} {
		writeSource(t, root, rel)
	}

	got, err := Discover(root, []string{".pdf"})
	if err != nil {
		t.Fatal(err)
	}

	for i := 1; i < len(got); i++ {
		if got[i-1] >= got[i] {
			t.Errorf("order not lexicographic: %s before %s", got[i-1], got[i])
		}
	}
}

func TestDiscover_SkipsDirectories(t *testing.T) {
	root := t.TempDir()
	// A directory whose name carries a matching extension must not be listed.
	if err := os.MkdirAll(filepath.Join(root, "archive.pdf"), 0o755); err != nil {
		t.Fatal(err)
	}
	writeSource(t, root, filepath.Join("archive.pdf", "inner.pdf"))

	got, err := Discover(root, []string{".pdf"})
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || !strings.HasSuffix(got[0], "inner.pdf") {
		t.Errorf("discovered %v, want only inner.pdf", got)
	}
}

func TestDiscover_InvalidInput(t *testing.T) {
	if _, err := Discover(filepath.Join(t.TempDir(), "missing"), []string{".pdf"}); err == nil {
		t.Error("missing root should fail")
	}

	file := writeSource(t, t.TempDir(), "plain.pdf")
	if _, err := Discover(file, []string{".pdf"}); err == nil {
		t.Error("non-directory root should fail")
	} else if !strings.Contains(err.Error(), "not a directory") {
		t.Errorf("error should name the problem, got: %v", err)
	}
}

func TestMapJobs(t *testing.T) {
	inRoot := t.TempDir()
	outRoot := filepath.Join(t.TempDir(), "out")

	files := []string{
		writeSource(t, inRoot, "a.pdf"),
		writeSource(t, inRoot, "B.PDF"),
		writeSource(t, inRoot, filepath.Join("sub", "dir", "doc.pdf")),
	}

	jobs, err := MapJobs(files, inRoot, outRoot)
	if err != nil {
		t.Fatal(err)
	}

	wantDest := []string{
		filepath.Join(outRoot, "a.tiff"),
		filepath.Join(outRoot, "B.tiff"),
		filepath.Join(outRoot, "sub", "dir", "doc.tiff"),
	}
	wantRel := []string{
		"a.pdf",
		"B.PDF",
		filepath.Join("sub", "dir", "doc.pdf"),
	}
	for i, job := range jobs {
		if job.Dest != wantDest[i] {
			t.Errorf("dest[%d] = %s, want %s", i, job.Dest, wantDest[i])
		}
		if job.Rel != wantRel[i] {
			t.Errorf("rel[%d] = %s, want %s", i, job.Rel, wantRel[i])
		}
		if job.Source != files[i] {
			t.Errorf("source[%d] = %s, want %s", i, job.Source, files[i])
		}
	}
}

func TestMapJobs_UppercaseExtensionStripsToSameStem(t *testing.T) {
	inRoot := t.TempDir()
	outRoot := t.TempDir()

	lower := writeSource(t, inRoot, filepath.Join("x", "doc.pdf"))
	upper := writeSource(t, inRoot, filepath.Join("y", "doc.PDF"))

	jobs, err := MapJobs([]string{lower, upper}, inRoot, outRoot)
	if err != nil {
		t.Fatal(err)
	}

	if base := filepath.Base(jobs[0].Dest); base != "doc.tiff" {
		t.Errorf("lowercase source mapped to %s, want doc.tiff", base)
	}
	if base := filepath.Base(jobs[1].Dest); base != "doc.tiff" {
		t.Errorf("uppercase source mapped to %s, want doc.tiff", base)
	}
}
