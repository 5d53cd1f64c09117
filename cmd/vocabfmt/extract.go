package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/text/unicode/norm"

	vocabfmt "github.com/alnah/go-vocabfmt"
)

// runExtract orchestrates the extract command.
func runExtract(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parseExtractFlags(args, env.Stderr)
	if err != nil {
		return err
	}
	if len(positional) > 1 {
		return fmt.Errorf("%w: extract takes at most one problem file, got %d", ErrUsage, len(positional))
	}
	if flags.raw && flags.report.wantsReport() {
		return fmt.Errorf("%w: --raw cannot be combined with --report or --pdf", ErrUsage)
	}

	cfg, _, err := loadEffectiveConfig(flags.common.config)
	if err != nil {
		return err
	}
	if !flags.common.quiet {
		warnUnknownEnvVars(env.Stderr)
	}

	mergePhraseFlags(&flags.phrases, cfg)
	mergeReportFlags(&flags.report, cfg)
	if flags.apiURL != "" {
		cfg.API.URL = flags.apiURL
	}
	if flags.tenantID != "" {
		cfg.API.TenantID = flags.tenantID
	}
	if flags.timeout != "" {
		cfg.API.Timeout = flags.timeout
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	timeout, _ := cfg.API.TimeoutDuration() // validated above

	statement, sourceDir, err := readProblem(positional, env)
	if err != nil {
		return err
	}

	client, err := vocabfmt.NewClient(vocabfmt.ClientConfig{
		URL:        cfg.API.URL,
		TenantID:   cfg.API.TenantID,
		Token:      cfg.API.Token,
		Timeout:    timeout,
		HTTPClient: env.HTTPClient,
	})
	if err != nil {
		return err
	}

	start := env.Now()
	ext, err := client.Extract(ctx, vocabfmt.Problem{
		Statement: statement,
		Account:   flags.report.account,
		Industry:  flags.report.industry,
	})
	if err != nil {
		return fmt.Errorf("extracting vocabulary: %w", err)
	}
	if flags.common.verbose {
		fmt.Fprintf(env.Stderr, "API answered in %v (%d bytes)\n", env.Now().Sub(start).Round(time.Millisecond), len(ext.Raw))
	}

	var out []byte
	switch {
	case flags.raw:
		out = ext.Raw
	case flags.report.wantsReport():
		rep, err := vocabfmt.NewReporter(reporterOptions(cfg, timeout, env)...)
		if err != nil {
			return err
		}
		defer rep.Close()

		in := baseReportInput(cfg, &flags.report)
		in.Vocabulary = ext.Text
		in.Statement = statement
		in.SourceDir = sourceDir
		res, err := rep.Build(ctx, in)
		if err != nil {
			return err
		}
		out = res.HTML
		if !in.HTMLOnly {
			out = res.PDF
		}
	default:
		f := vocabfmt.NewFormatter(formatterOptions(cfg)...)
		out = []byte(f.Format(ext.Text) + "\n")
	}

	if err := writeOutput(flags.output, out, env); err != nil {
		return err
	}
	if flags.output != "" && !flags.common.quiet {
		fmt.Fprintf(env.Stdout, "Created %s\n", flags.output)
	}
	return nil
}

// readProblem reads the problem statement from a file or stdin and returns
// it with the directory relative links resolve against.
func readProblem(args []string, env *Environment) (statement, sourceDir string, err error) {
	if isStdinInput(args) {
		data, err := readLimited(env.Stdin)
		if err != nil {
			return "", "", err
		}
		wd, _ := os.Getwd()
		return norm.NFC.String(string(data)), wd, nil
	}

	data, err := os.ReadFile(args[0]) // #nosec G304 -- user-provided path
	if err != nil {
		return "", "", fmt.Errorf("%w: %w", ErrReadInput, err)
	}
	return norm.NFC.String(string(data)), filepath.Dir(args[0]), nil
}
