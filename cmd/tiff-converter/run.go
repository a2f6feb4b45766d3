package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/merlinc16/tiff-converter-for-ocr/internal/convert"
	"github.com/merlinc16/tiff-converter-for-ocr/internal/progress"
	"github.com/merlinc16/tiff-converter-for-ocr/internal/report"
)

// resolveRoots validates the input directory and picks the output root:
// the second positional argument when given, otherwise the input path with
// the flow's suffix appended.
func resolveRoots(args []string, outputSuffix string) (inputRoot, outputRoot string, err error) {
	inputRoot, err = filepath.Abs(args[0])
	if err != nil {
		return "", "", fmt.Errorf("resolving input directory: %w", err)
	}
	info, err := os.Stat(inputRoot)
	if err != nil {
		return "", "", fmt.Errorf("input directory %s: %w", inputRoot, err)
	}
	if !info.IsDir() {
		return "", "", fmt.Errorf("input path %s is not a directory", inputRoot)
	}

	if len(args) > 1 {
		outputRoot, err = filepath.Abs(args[1])
		if err != nil {
			return "", "", fmt.Errorf("resolving output directory: %w", err)
		}
	} else {
		outputRoot = inputRoot + outputSuffix
	}
	return inputRoot, outputRoot, nil
}

// runBatch drives one conversion flow end to end. Configuration problems
// (bad roots, unwritable output root) return an error and exit 1; per-file
// failures are counted and reported but the run still exits 0.
func runBatch(cmd *cobra.Command, args []string, s convert.Strategy, exts []string, outputSuffix, flow string) error {
	inputRoot, outputRoot, err := resolveRoots(args, outputSuffix)
	if err != nil {
		return err
	}

	// An uncreatable output root is fatal; failures below it are per-file.
	if err := os.MkdirAll(outputRoot, 0o755); err != nil {
		return fmt.Errorf("creating output directory %s: %w", outputRoot, err)
	}

	files, err := convert.Discover(inputRoot, exts)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		fmt.Fprintf(os.Stdout, "no files found under %s\n", inputRoot)
		return nil
	}

	jobs, err := convert.MapJobs(files, inputRoot, outputRoot)
	if err != nil {
		return err
	}

	result := convert.ConvertBatch(s, jobs, outputRoot, progress.New(os.Stdout))

	if reportPath, _ := cmd.Flags().GetString("report"); reportPath != "" {
		if err := report.Write(reportPath, report.FromResult(flow, inputRoot, outputRoot, result)); err != nil {
			return err
		}
	}
	return nil
}
