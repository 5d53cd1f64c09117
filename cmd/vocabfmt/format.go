package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	vocabfmt "github.com/alnah/go-vocabfmt"
	"github.com/alnah/go-vocabfmt/internal/config"
)

// maxStdinBytes bounds what is read from standard input.
const maxStdinBytes = 10 << 20

// runFormat orchestrates the format command.
func runFormat(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parseFormatFlags(args, env.Stderr)
	if err != nil {
		return err
	}

	if err := validateWorkers(flags.workers); err != nil {
		return err
	}
	if flags.text && flags.report.wantsReport() {
		return fmt.Errorf("%w: --text cannot be combined with --report or --pdf", ErrUsage)
	}

	cfg, envCfg, err := loadEffectiveConfig(flags.common.config)
	if err != nil {
		return err
	}
	if !flags.common.quiet {
		warnUnknownEnvVars(env.Stderr)
	}

	mergePhraseFlags(&flags.phrases, cfg)
	mergeReportFlags(&flags.report, cfg)
	if flags.timeout != "" {
		cfg.API.Timeout = flags.timeout
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	timeout, _ := cfg.API.TimeoutDuration() // validated above

	job := &formatJob{
		formatter: vocabfmt.NewFormatter(formatterOptions(cfg)...),
		text:      flags.text,
		report:    flags.report.wantsReport(),
		input:     baseReportInput(cfg, &flags.report),
	}

	if isStdinInput(positional) {
		return formatStdin(ctx, job, cfg, timeout, flags.output, env)
	}

	outputDir := flags.output
	if outputDir == "" {
		outputDir = cfg.Output.DefaultDir
	}

	files, err := discoverFiles(positional, outputDir, outputExtension(flags.text, &flags.report))
	if err != nil {
		return fmt.Errorf("discovering files: %w", err)
	}
	if len(files) == 0 {
		return fmt.Errorf("%w: no .txt, .json, or .md files found", ErrNoInput)
	}

	workers := flags.workers
	if workers == 0 {
		workers = envCfg.Workers
	}
	size := min(vocabfmt.ResolvePoolSize(workers), len(files))
	if flags.common.verbose {
		fmt.Fprintf(env.Stderr, "Workers: %d\n", size)
	}

	var pool reporterPool
	if job.report {
		p := vocabfmt.NewReporterPool(size, reporterOptions(cfg, timeout, env)...)
		defer p.Close()
		pool = p
	}

	results := formatBatch(ctx, job, pool, files, size)
	return printResults(results, flags.common.quiet, flags.common.verbose, env)
}

// formatStdin formats standard input to output, or to stdout when output is empty.
func formatStdin(ctx context.Context, job *formatJob, cfg *config.Config, timeout time.Duration, output string, env *Environment) error {
	data, err := readLimited(env.Stdin)
	if err != nil {
		return err
	}

	var rep *vocabfmt.Reporter
	if job.report {
		rep, err = vocabfmt.NewReporter(reporterOptions(cfg, timeout, env)...)
		if err != nil {
			return err
		}
		defer rep.Close()
	}

	wd, _ := os.Getwd()
	content := string(data)
	out, err := job.render(ctx, rep, content, looksLikeJSON(content), wd)
	if err != nil {
		return err
	}

	return writeOutput(output, out, env)
}

// readLimited reads r up to maxStdinBytes.
func readLimited(r io.Reader) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(r, maxStdinBytes+1))
	if err != nil {
		return nil, fmt.Errorf("%w: stdin: %w", ErrReadInput, err)
	}
	if len(data) > maxStdinBytes {
		return nil, fmt.Errorf("%w: stdin exceeds %d bytes", ErrReadInput, maxStdinBytes)
	}
	return data, nil
}

// writeOutput writes data to path, or to stdout when path is empty.
func writeOutput(path string, data []byte, env *Environment) error {
	if path == "" {
		if _, err := env.Stdout.Write(data); err != nil {
			return fmt.Errorf("%w: stdout: %w", ErrWriteOutput, err)
		}
		return nil
	}
	return writeFile(path, data)
}
