package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	vocabfmt "github.com/alnah/go-vocabfmt"
	"github.com/alnah/go-vocabfmt/internal/fileutil"
)

// Sentinel errors for file discovery.
var (
	ErrInvalidExtension   = errors.New("input must have a .txt, .json, or .md extension")
	ErrInvalidWorkerCount = errors.New("invalid worker count")
)

// FileToFormat represents a single file to process.
type FileToFormat struct {
	InputPath  string
	OutputPath string
}

// discoverFiles collects input files from paths. Directories are walked
// recursively; their layout is kept under outputDir. Files named twice are
// processed once.
func discoverFiles(paths []string, outputDir, ext string) ([]FileToFormat, error) {
	var files []FileToFormat
	seen := make(map[string]bool)

	add := func(path, base string) {
		if seen[path] {
			return
		}
		seen[path] = true
		files = append(files, FileToFormat{
			InputPath:  path,
			OutputPath: resolveOutputPath(path, outputDir, base, ext),
		})
	}

	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return nil, err
		}

		if !info.IsDir() {
			if !fileutil.IsInputFile(p) {
				return nil, fmt.Errorf("%w: %s", ErrInvalidExtension, p)
			}
			add(p, "")
			continue
		}

		err = filepath.WalkDir(p, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return fmt.Errorf("scanning %s: %w", path, err)
			}
			if d.IsDir() || !fileutil.IsInputFile(path) {
				return nil
			}
			// Skip files produced by a previous run next to their input
			if outputDir == "" && strings.HasSuffix(strings.ToLower(path), ext) {
				return nil
			}
			add(path, p)
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	return files, nil
}

// resolveOutputPath determines the output path for an input file.
// Files found under baseInputDir keep their relative directory in outputDir.
func resolveOutputPath(inputPath, outputDir, baseInputDir, ext string) string {
	if outputDir != "" && baseInputDir != "" {
		if rel, err := filepath.Rel(baseInputDir, filepath.Dir(inputPath)); err == nil {
			return fileutil.OutputPath(inputPath, filepath.Join(outputDir, rel), ext)
		}
	}
	return fileutil.OutputPath(inputPath, outputDir, ext)
}

// textOutputExt keeps plain-text output from overwriting .txt inputs.
const textOutputExt = ".vocab.txt"

// outputExtension returns the file extension for the requested output kind.
func outputExtension(text bool, rf *reportFlags) string {
	switch {
	case text:
		return textOutputExt
	case rf.pdf:
		return ".pdf"
	default:
		return ".html"
	}
}

// validateWorkers checks that the worker count is within valid bounds.
func validateWorkers(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: %d (must be >= 0, 0 means auto)", ErrInvalidWorkerCount, n)
	}
	if n > vocabfmt.MaxPoolSize {
		return fmt.Errorf("%w: %d (maximum is %d)", ErrInvalidWorkerCount, n, vocabfmt.MaxPoolSize)
	}
	return nil
}

// isStdinInput reports whether the input comes from standard input.
func isStdinInput(args []string) bool {
	return len(args) == 0 || (len(args) == 1 && args[0] == "-")
}
