package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: vocabfmt <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  format     Format vocabulary text into HTML")
	fmt.Fprintln(w, "  extract    Extract vocabulary from a business problem via the reasoning API")
	fmt.Fprintln(w, "  config     Print the effective configuration")
	fmt.Fprintln(w, "  doctor     Check configuration, Chrome, and environment")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'vocabfmt help <command>' for details on a specific command.")
}

// printFormatUsage prints usage for the format command.
func printFormatUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: vocabfmt format [input...] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Format vocabulary text into an HTML fragment or report.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  input    .txt, .json, or .md files or directories; none or \"-\" reads stdin")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -o, --output <path>       Output file (stdin) or directory (files)")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -w, --workers <n>         Parallel workers (0 = auto)")
	fmt.Fprintln(w, "  -t, --timeout <d>         PDF generation timeout (e.g., 30s, 2m)")
	fmt.Fprintln(w, "      --text                Write plain text instead of HTML")
	printPhraseUsage(w)
	printReportUsage(w)
	printOutputControlUsage(w)
}

// printExtractUsage prints usage for the extract command.
func printExtractUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: vocabfmt extract [problem-file] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Send a business problem to the reasoning API and format the vocabulary it returns.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  problem-file    Problem statement (Markdown or text); none or \"-\" reads stdin")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "API:")
	fmt.Fprintln(w, "      --api-url <url>       Reasoning API endpoint (or VOCABFMT_API_URL)")
	fmt.Fprintln(w, "      --tenant <id>         Tenant ID (default: talos)")
	fmt.Fprintln(w, "  -t, --timeout <d>         API and PDF timeout (e.g., 60s, 2m)")
	fmt.Fprintln(w, "      --raw                 Print the raw API response")
	fmt.Fprintln(w, "  Token: set VOCABFMT_API_TOKEN (environment or .env file)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -o, --output <path>       Output file (default: stdout)")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	printPhraseUsage(w)
	printReportUsage(w)
	printOutputControlUsage(w)
}

// printConfigUsage prints usage for the config command.
func printConfigUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: vocabfmt config [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Print the effective configuration as YAML (config file, then environment).")
	fmt.Fprintln(w, "The API token is masked.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
}

// printDoctorUsage prints usage for the doctor command.
func printDoctorUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: vocabfmt doctor [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Check that the configuration loads, the reasoning API is configured,")
	fmt.Fprintln(w, "and Chrome is available for PDF output.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "      --json                Print results as JSON")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Exit codes: 0 = ready (warnings allowed), 1 = errors found")
}

func printPhraseUsage(w io.Writer) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Formatting:")
	fmt.Fprintln(w, "      --phrase <s>          Extra phrase to bold (repeatable, regex allowed)")
	fmt.Fprintln(w, "      --no-dash-separators  Keep \"Term - definition\" lines as plain text")
}

func printReportUsage(w io.Writer) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Report:")
	fmt.Fprintln(w, "      --report              Write a standalone HTML report")
	fmt.Fprintln(w, "      --pdf                 Write a PDF report (requires Chrome)")
	fmt.Fprintln(w, "      --style <s>           Style name, CSS file path, or inline CSS")
	fmt.Fprintln(w, "      --asset-path <dir>    Custom asset directory")
	fmt.Fprintln(w, "      --title <s>           Report title")
	fmt.Fprintln(w, "      --date <s>            Date: \"auto\", \"auto:FORMAT\", or literal")
	fmt.Fprintln(w, "                            Tokens: YYYY, YY, MMMM, MMM, MM, M, DD, D")
	fmt.Fprintln(w, "                            Presets (case-insensitive): iso, european, us, long")
	fmt.Fprintln(w, "      --account <s>         Account name")
	fmt.Fprintln(w, "      --industry <s>        Industry")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Page (PDF):")
	fmt.Fprintln(w, "  -p, --page-size <s>       Page size: letter, a4, legal")
	fmt.Fprintln(w, "      --orientation <s>     Orientation: portrait, landscape")
	fmt.Fprintln(w, "      --margin <f>          Margin in inches (0.25-3.0)")
	fmt.Fprintln(w, "      --footer-position <s> Footer position: left, center, right")
	fmt.Fprintln(w, "      --footer-text <s>     Custom footer text")
	fmt.Fprintln(w, "      --footer-page-number  Show page numbers")
}

func printOutputControlUsage(w io.Writer) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show detailed timing")
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) int {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return ExitSuccess
	}

	switch args[0] {
	case "format":
		printFormatUsage(env.Stdout)
	case "extract":
		printExtractUsage(env.Stdout)
	case "config":
		printConfigUsage(env.Stdout)
	case "doctor":
		printDoctorUsage(env.Stdout)
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: vocabfmt version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: vocabfmt help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", args[0])
		printUsage(env.Stderr)
		return ExitUsage
	}
	return ExitSuccess
}
