package main

import (
	"errors"
	"fmt"
	"io"

	flag "github.com/spf13/pflag"
)

// ErrUsage marks invalid command-line usage.
var ErrUsage = errors.New("invalid usage")

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// phraseFlags holds vocabulary formatting flags.
type phraseFlags struct {
	phrases          []string
	noDashSeparators bool
}

// pageFlags holds page layout flags.
type pageFlags struct {
	size        string
	orientation string
	margin      float64
}

// footerFlags holds PDF footer flags.
type footerFlags struct {
	position   string
	text       string
	pageNumber bool
}

// reportFlags holds report output flags.
type reportFlags struct {
	report    bool // full HTML document instead of a fragment
	pdf       bool // PDF through headless Chrome
	style     string
	assetPath string
	title     string
	date      string
	account   string
	industry  string
	page      pageFlags
	footer    footerFlags
}

// formatFlags holds all flags for the format command.
type formatFlags struct {
	common  commonFlags
	output  string
	workers int
	timeout string
	text    bool
	phrases phraseFlags
	report  reportFlags
}

// extractFlags holds all flags for the extract command.
type extractFlags struct {
	common   commonFlags
	output   string
	timeout  string
	apiURL   string
	tenantID string
	raw      bool
	phrases  phraseFlags
	report   reportFlags
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show detailed timing")
}

// addPhraseFlags adds vocabulary formatting flags to a FlagSet.
func addPhraseFlags(fs *flag.FlagSet, f *phraseFlags) {
	fs.StringArrayVar(&f.phrases, "phrase", nil, "extra phrase to bold (repeatable, regex allowed)")
	fs.BoolVar(&f.noDashSeparators, "no-dash-separators", false, "keep \"Term - definition\" lines as plain text")
}

// addReportFlags adds report, page, and footer flags to a FlagSet.
func addReportFlags(fs *flag.FlagSet, f *reportFlags) {
	fs.BoolVar(&f.report, "report", false, "write a standalone HTML report")
	fs.BoolVar(&f.pdf, "pdf", false, "write a PDF report (requires Chrome)")
	fs.StringVar(&f.style, "style", "", "report style name, CSS file path, or inline CSS")
	fs.StringVar(&f.assetPath, "asset-path", "", "custom asset directory")
	fs.StringVar(&f.title, "title", "", "report title")
	fs.StringVar(&f.date, "date", "", "report date: \"auto\", \"auto:FORMAT\", or literal")
	fs.StringVar(&f.account, "account", "", "account name")
	fs.StringVar(&f.industry, "industry", "", "industry")

	fs.StringVarP(&f.page.size, "page-size", "p", "", "page size: letter, a4, legal")
	fs.StringVar(&f.page.orientation, "orientation", "", "page orientation: portrait, landscape")
	fs.Float64Var(&f.page.margin, "margin", 0, "page margin in inches (0.25-3.0)")

	fs.StringVar(&f.footer.position, "footer-position", "", "footer position: left, center, right")
	fs.StringVar(&f.footer.text, "footer-text", "", "custom footer text")
	fs.BoolVar(&f.footer.pageNumber, "footer-page-number", false, "show page numbers in footer")
}

// parseFormatFlags parses format command flags and returns positional args.
func parseFormatFlags(args []string, stderr io.Writer) (*formatFlags, []string, error) {
	fs := flag.NewFlagSet("format", flag.ContinueOnError)
	fs.SetOutput(stderr)
	f := &formatFlags{}

	fs.StringVarP(&f.output, "output", "o", "", "output file or directory")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")
	fs.StringVarP(&f.timeout, "timeout", "t", "", "PDF generation timeout (e.g., 30s, 2m)")
	fs.BoolVar(&f.text, "text", false, "write plain text instead of HTML")

	addCommonFlags(fs, &f.common)
	addPhraseFlags(fs, &f.phrases)
	addReportFlags(fs, &f.report)

	fs.Usage = func() { printFormatUsage(stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, wrapParseError(err)
	}
	return f, fs.Args(), nil
}

// parseExtractFlags parses extract command flags and returns positional args.
func parseExtractFlags(args []string, stderr io.Writer) (*extractFlags, []string, error) {
	fs := flag.NewFlagSet("extract", flag.ContinueOnError)
	fs.SetOutput(stderr)
	f := &extractFlags{}

	fs.StringVarP(&f.output, "output", "o", "", "output file")
	fs.StringVarP(&f.timeout, "timeout", "t", "", "API and PDF timeout (e.g., 60s, 2m)")
	fs.StringVar(&f.apiURL, "api-url", "", "reasoning API endpoint")
	fs.StringVar(&f.tenantID, "tenant", "", "tenant ID header value")
	fs.BoolVar(&f.raw, "raw", false, "print the raw API response")

	addCommonFlags(fs, &f.common)
	addPhraseFlags(fs, &f.phrases)
	addReportFlags(fs, &f.report)

	fs.Usage = func() { printExtractUsage(stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, wrapParseError(err)
	}
	return f, fs.Args(), nil
}

// parseConfigFlags parses config command flags.
func parseConfigFlags(args []string, stderr io.Writer) (*commonFlags, error) {
	fs := flag.NewFlagSet("config", flag.ContinueOnError)
	fs.SetOutput(stderr)
	f := &commonFlags{}
	addCommonFlags(fs, f)

	fs.Usage = func() { printConfigUsage(stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, wrapParseError(err)
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("%w: config takes no arguments", ErrUsage)
	}
	return f, nil
}

// wrapParseError keeps flag.ErrHelp intact and marks the rest as usage errors.
func wrapParseError(err error) error {
	if errors.Is(err, flag.ErrHelp) {
		return err
	}
	return fmt.Errorf("%w: %v", ErrUsage, err)
}
