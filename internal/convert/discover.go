package convert

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/merlinc16/tiff-converter-for-ocr/pkg/types"
)

// Discover walks root and returns the absolute paths of all regular files
// whose extension matches one of exts (case-insensitive). The result is
// deduplicated and sorted lexicographically by full path so repeated runs
// number and process files in the same order.
func Discover(root string, exts []string) ([]string, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("input directory %s: %w", root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("input path %s is not a directory", root)
	}

	seen := make(map[string]bool)
	var files []string
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !matchesExt(path, exts) {
			return nil
		}
		abs, err := filepath.Abs(path)
		if err != nil {
			return err
		}
		if !seen[abs] {
			seen[abs] = true
			files = append(files, abs)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", root, err)
	}

	sort.Strings(files)
	return files, nil
}

// matchesExt reports whether path carries one of the extensions,
// ignoring case.
func matchesExt(path string, exts []string) bool {
	ext := filepath.Ext(path)
	for _, e := range exts {
		if strings.EqualFold(ext, e) {
			return true
		}
	}
	return false
}

// MapJobs computes the mirrored destination for each discovered file: the
// path relative to inputRoot is re-rooted under outputRoot and the source
// extension is replaced by ".tiff". The extension swap goes through
// filepath.Ext, so ".pdf" and ".PDF" strip to the same stem.
func MapJobs(files []string, inputRoot, outputRoot string) ([]Job, error) {
	absIn, err := filepath.Abs(inputRoot)
	if err != nil {
		return nil, fmt.Errorf("resolving input root: %w", err)
	}
	absOut, err := filepath.Abs(outputRoot)
	if err != nil {
		return nil, fmt.Errorf("resolving output root: %w", err)
	}

	jobs := make([]Job, 0, len(files))
	for _, f := range files {
		rel, err := filepath.Rel(absIn, f)
		if err != nil {
			return nil, fmt.Errorf("relativizing %s: %w", f, err)
		}
		stem := strings.TrimSuffix(rel, filepath.Ext(rel))
		jobs = append(jobs, Job{
			Source: f,
			Rel:    rel,
			Dest:   filepath.Join(absOut, stem+types.TargetExt),
		})
	}
	return jobs, nil
}
