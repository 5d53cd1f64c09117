// Package vocabfmt turns business vocabulary produced by a reasoning API
// into readable HTML, plain text, and PDF reports.
//
// # Quick Start
//
// Format raw vocabulary text into one HTML fragment:
//
//	html := vocabfmt.Format("Step 1: Assess churn\nARPU - average revenue per user")
//	// <strong>Step 1:</strong> Assess churn ... <strong>ARPU:</strong> average revenue per user
//
// Empty input yields SentinelNoData. Format never fails.
//
// # Formatting Rules
//
// Each line is classified by the first matching rule:
//
//  1. Extra phrases (WithExtraPhrases), bolded wherever they occur
//  2. "Step N:" headings
//  3. Numbered headings with or without a colon
//  4. Bulleted "Term: definition" lines
//  5. Short "Heading: text" lines
//  6. Whole-line known phrases (WithKnownPhrases)
//  7. Plain text
//
// Heading lines absorb the plain lines that follow them into one block.
// "Term - definition" lines are rewritten to "Term: definition" first
// unless WithDashSeparators(false) is given.
//
// Use a Formatter to reuse compiled rules:
//
//	f := vocabfmt.NewFormatter(
//	    vocabfmt.WithExtraPhrases("EBITDA", `net\s+revenue`),
//	    vocabfmt.WithDashSeparators(false),
//	)
//	html := f.Format(raw)
//	text := f.FormatText(raw)        // plain text with the same layout
//	html = f.FormatJSON(responseBody) // reasoning API body, flattened first
//
// # Extraction
//
// Client sends a business problem to the reasoning API and returns the
// vocabulary it answers with:
//
//	client, err := vocabfmt.NewClient(vocabfmt.ClientConfig{
//	    URL:   "https://api.example.com/reasoning_api",
//	    Token: os.Getenv("VOCABFMT_API_TOKEN"),
//	})
//	ext, err := client.Extract(ctx, vocabfmt.Problem{
//	    Statement: statement,
//	    Account:   "Acme",
//	    Industry:  "Telecom",
//	})
//	html := vocabfmt.Format(ext.Text)
//
// Non-200 answers are returned as *StatusError, which matches ErrAPIStatus.
//
// # Reports
//
// Reporter wraps the vocabulary in a standalone HTML document and prints it
// to PDF with headless Chrome:
//
//	rep, err := vocabfmt.NewReporter(vocabfmt.WithStyle("compact"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer rep.Close()
//
//	res, err := rep.Build(ctx, vocabfmt.ReportInput{
//	    Vocabulary: ext.Text,
//	    Statement:  statement, // Markdown
//	    Title:      "Churn Glossary",
//	    Date:       "auto",
//	    Page:       &vocabfmt.PageSettings{Size: "a4", Orientation: "portrait", Margin: 0.5},
//	    Footer:     &vocabfmt.Footer{ShowPageNumber: true},
//	})
//	os.WriteFile("glossary.pdf", res.PDF, 0o644)
//
// Set ReportInput.HTMLOnly to skip the browser entirely.
//
// # Parallel Processing
//
// For batches, ReporterPool bounds the number of browsers:
//
//	pool := vocabfmt.NewReporterPool(vocabfmt.ResolvePoolSize(0))
//	defer pool.Close()
//
//	rep, err := pool.Acquire()
//	defer pool.Release(rep)
//
// # Browser Requirements
//
// PDF generation requires Chrome/Chromium. The go-rod library downloads a
// managed Chromium on first run (~/.cache/rod/browser/).
//
// For containers and CI environments, set ROD_NO_SANDBOX=1 to disable the
// Chrome sandbox. Use ROD_BROWSER_BIN to specify a custom Chrome binary.
package vocabfmt
