package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/tidwall/gjson"
	"golang.org/x/text/unicode/norm"

	vocabfmt "github.com/alnah/go-vocabfmt"
	"github.com/alnah/go-vocabfmt/internal/fileutil"
)

// File permission constants.
const (
	dirPermissions  = 0o750 // rwxr-x---: owner full, group read+execute
	filePermissions = 0o644 // rw-r--r--: owner read+write, others read
)

// Sentinel errors for batch operations.
var (
	ErrNoInput     = errors.New("no input specified")
	ErrReadInput   = errors.New("failed to read input")
	ErrWriteOutput = errors.New("failed to write output")
)

// reporterPool abstracts ReporterPool for testability.
type reporterPool interface {
	Acquire() (*vocabfmt.Reporter, error)
	Release(*vocabfmt.Reporter)
}

// Compile-time interface implementation check.
var _ reporterPool = (*vocabfmt.ReporterPool)(nil)

// formatJob holds what every file of a run shares.
type formatJob struct {
	formatter *vocabfmt.Formatter
	text      bool                 // plain text output
	report    bool                 // full document output
	input     vocabfmt.ReportInput // report fields shared by all files
}

// render turns one vocabulary input into output bytes.
// rep is only used for reports.
func (j *formatJob) render(ctx context.Context, rep *vocabfmt.Reporter, content string, jsonInput bool, sourceDir string) ([]byte, error) {
	content = norm.NFC.String(content)
	if jsonInput {
		content = vocabfmt.FlattenJSON([]byte(content))
	}

	switch {
	case j.text:
		return []byte(j.formatter.FormatText(content) + "\n"), nil
	case j.report:
		in := j.input
		in.Vocabulary = content
		in.SourceDir = sourceDir
		res, err := rep.Build(ctx, in)
		if err != nil {
			return nil, err
		}
		if !in.HTMLOnly {
			return res.PDF, nil
		}
		return res.HTML, nil
	default:
		return []byte(j.formatter.Format(content) + "\n"), nil
	}
}

// looksLikeJSON reports whether stdin content is a JSON object or array.
func looksLikeJSON(s string) bool {
	t := strings.TrimSpace(s)
	if t == "" || (t[0] != '{' && t[0] != '[') {
		return false
	}
	return gjson.Valid(t)
}

// FormatResult holds the outcome of a single file.
type FormatResult struct {
	InputPath  string
	OutputPath string
	Err        error
	Duration   time.Duration
}

// formatBatch processes files concurrently with the given number of workers.
// pool is nil unless the job builds reports.
func formatBatch(ctx context.Context, job *formatJob, pool reporterPool, files []FileToFormat, workers int) []FormatResult {
	if len(files) == 0 {
		return nil
	}

	concurrency := min(max(workers, 1), len(files))

	results := make([]FormatResult, len(files))
	var wg sync.WaitGroup
	jobs := make(chan int, len(files))

	for range concurrency {
		wg.Add(1)
		go func() {
			defer wg.Done()

			var rep *vocabfmt.Reporter
			if job.report {
				var err error
				rep, err = pool.Acquire()
				if err != nil {
					// Reporter creation failed, mark remaining jobs as failed
					for idx := range jobs {
						results[idx] = FormatResult{InputPath: files[idx].InputPath, Err: err}
					}
					return
				}
				defer pool.Release(rep)
			}

			for idx := range jobs {
				if ctx.Err() != nil {
					results[idx] = FormatResult{InputPath: files[idx].InputPath, Err: ctx.Err()}
					continue
				}
				results[idx] = formatFile(ctx, job, rep, files[idx])
			}
		}()
	}

	for i := range files {
		jobs <- i
	}
	close(jobs)

	wg.Wait()
	return results
}

// formatFile processes a single file and returns the result.
func formatFile(ctx context.Context, job *formatJob, rep *vocabfmt.Reporter, f FileToFormat) FormatResult {
	start := time.Now()
	result := FormatResult{InputPath: f.InputPath, OutputPath: f.OutputPath}
	done := func(err error) FormatResult {
		result.Err = err
		result.Duration = time.Since(start)
		return result
	}

	content, err := os.ReadFile(f.InputPath) // #nosec G304 -- discovered path
	if err != nil {
		return done(fmt.Errorf("%w: %w", ErrReadInput, err))
	}

	out, err := job.render(ctx, rep, string(content), fileutil.IsJSONFile(f.InputPath), filepath.Dir(f.InputPath))
	if err != nil {
		return done(err)
	}

	if err := writeFile(f.OutputPath, out); err != nil {
		return done(err)
	}
	return done(nil)
}

// writeFile writes data to path, creating parent directories.
func writeFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), dirPermissions); err != nil {
		return fmt.Errorf("%w: creating output directory: %w", ErrWriteOutput, err)
	}
	// #nosec G306 -- output files are meant to be readable
	if err := os.WriteFile(path, data, filePermissions); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteOutput, err)
	}
	return nil
}

// ResultSummary holds the count of succeeded and failed files.
type ResultSummary struct {
	Succeeded int
	Failed    int
}

// countResults tallies succeeded and failed files.
func countResults(results []FormatResult) ResultSummary {
	var summary ResultSummary
	for _, r := range results {
		if r.Err != nil {
			summary.Failed++
		} else {
			summary.Succeeded++
		}
	}
	return summary
}

// printResults outputs results and returns the first failure, if any.
func printResults(results []FormatResult, quiet, verbose bool, env *Environment) error {
	summary := countResults(results)
	var firstErr error

	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(env.Stderr, "FAILED %s: %v\n", r.InputPath, r.Err)
			if firstErr == nil {
				firstErr = r.Err
			}
			continue
		}

		if quiet {
			continue
		}

		if verbose {
			fmt.Fprintf(env.Stdout, "%s -> %s (%v)\n", r.InputPath, r.OutputPath, r.Duration.Round(time.Millisecond))
		} else {
			fmt.Fprintf(env.Stdout, "Created %s\n", r.OutputPath)
		}
	}

	if !quiet && len(results) > 1 {
		fmt.Fprintf(env.Stdout, "\n%d succeeded, %d failed\n", summary.Succeeded, summary.Failed)
	}

	if firstErr != nil {
		return fmt.Errorf("%d of %d file(s) failed: %w", summary.Failed, len(results), firstErr)
	}
	return nil
}
