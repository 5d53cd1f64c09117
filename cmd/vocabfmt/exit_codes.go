package main

import (
	"errors"
	"os"

	vocabfmt "github.com/alnah/go-vocabfmt"
	"github.com/alnah/go-vocabfmt/internal/config"
)

// Exit codes for the vocabfmt CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Successful run
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or validation
	ExitIO      = 3 // File not found, permission denied
	ExitBrowser = 4 // Browser/Chrome errors
	ExitAPI     = 5 // Reasoning API errors
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// API errors (exit 5)
	if errors.Is(err, vocabfmt.ErrAPIRequest) ||
		errors.Is(err, vocabfmt.ErrAPIStatus) ||
		errors.Is(err, vocabfmt.ErrAPIResponse) ||
		errors.Is(err, vocabfmt.ErrEmptyExtraction) {
		return ExitAPI
	}

	// Browser errors (exit 4)
	if errors.Is(err, vocabfmt.ErrBrowserConnect) ||
		errors.Is(err, vocabfmt.ErrPageCreate) ||
		errors.Is(err, vocabfmt.ErrPageLoad) ||
		errors.Is(err, vocabfmt.ErrPDFGeneration) {
		return ExitBrowser
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrReadInput) ||
		errors.Is(err, ErrWriteOutput) ||
		errors.Is(err, ErrNoInput) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, ErrUsage) ||
		errors.Is(err, ErrInvalidWorkerCount) ||
		errors.Is(err, ErrInvalidExtension) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidValue) ||
		errors.Is(err, vocabfmt.ErrEmptyProblem) ||
		errors.Is(err, vocabfmt.ErrInvalidAPIURL) ||
		errors.Is(err, vocabfmt.ErrInvalidPageSize) ||
		errors.Is(err, vocabfmt.ErrInvalidOrientation) ||
		errors.Is(err, vocabfmt.ErrInvalidMargin) ||
		errors.Is(err, vocabfmt.ErrInvalidFooterPosition) ||
		errors.Is(err, vocabfmt.ErrInvalidDate) ||
		errors.Is(err, vocabfmt.ErrStyleNotFound) ||
		errors.Is(err, vocabfmt.ErrInvalidAssetPath) {
		return ExitUsage
	}

	return ExitGeneral
}
