package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"testing"

	vocabfmt "github.com/alnah/go-vocabfmt"
	"github.com/alnah/go-vocabfmt/internal/config"
)

// ---------------------------------------------------------------------------
// TestExitCodeFor - Error to exit code mapping
// ---------------------------------------------------------------------------

func TestExitCodeFor(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		err  error
		want int
	}{
		// Success
		{"nil error", nil, ExitSuccess},

		// API errors (exit 5)
		{"api request", vocabfmt.ErrAPIRequest, ExitAPI},
		{"api status", &vocabfmt.StatusError{Code: 502}, ExitAPI},
		{"api response", vocabfmt.ErrAPIResponse, ExitAPI},
		{"empty extraction", vocabfmt.ErrEmptyExtraction, ExitAPI},
		{"wrapped api status", fmt.Errorf("extracting vocabulary: %w", &vocabfmt.StatusError{Code: 401}), ExitAPI},

		// Browser errors (exit 4)
		{"browser connect", vocabfmt.ErrBrowserConnect, ExitBrowser},
		{"page create", vocabfmt.ErrPageCreate, ExitBrowser},
		{"page load", vocabfmt.ErrPageLoad, ExitBrowser},
		{"pdf generation", vocabfmt.ErrPDFGeneration, ExitBrowser},
		{"wrapped browser connect", fmt.Errorf("failed: %w", vocabfmt.ErrBrowserConnect), ExitBrowser},

		// I/O errors (exit 3)
		{"file not exist", os.ErrNotExist, ExitIO},
		{"permission denied", os.ErrPermission, ExitIO},
		{"read input", ErrReadInput, ExitIO},
		{"write output", ErrWriteOutput, ExitIO},
		{"no input", ErrNoInput, ExitIO},
		{"batch failure", fmt.Errorf("1 of 2 file(s) failed: %w", ErrWriteOutput), ExitIO},

		// Usage/config/validation errors (exit 2)
		{"usage", ErrUsage, ExitUsage},
		{"worker count", ErrInvalidWorkerCount, ExitUsage},
		{"extension", ErrInvalidExtension, ExitUsage},
		{"config not found", config.ErrConfigNotFound, ExitUsage},
		{"config parse", config.ErrConfigParse, ExitUsage},
		{"field too long", config.ErrFieldTooLong, ExitUsage},
		{"invalid value", config.ErrInvalidValue, ExitUsage},
		{"empty problem", vocabfmt.ErrEmptyProblem, ExitUsage},
		{"invalid api url", vocabfmt.ErrInvalidAPIURL, ExitUsage},
		{"invalid page size", vocabfmt.ErrInvalidPageSize, ExitUsage},
		{"invalid orientation", vocabfmt.ErrInvalidOrientation, ExitUsage},
		{"invalid margin", vocabfmt.ErrInvalidMargin, ExitUsage},
		{"invalid footer position", vocabfmt.ErrInvalidFooterPosition, ExitUsage},
		{"invalid date", vocabfmt.ErrInvalidDate, ExitUsage},
		{"style not found", vocabfmt.ErrStyleNotFound, ExitUsage},
		{"invalid asset path", vocabfmt.ErrInvalidAssetPath, ExitUsage},
		{"wrapped config parse", fmt.Errorf("loading: %w", config.ErrConfigParse), ExitUsage},

		// General errors (exit 1)
		{"cancelled", context.Canceled, ExitGeneral},
		{"unknown error", errors.New("something unexpected"), ExitGeneral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := exitCodeFor(tt.err); got != tt.want {
				t.Errorf("exitCodeFor(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestExitCodeConstants(t *testing.T) {
	t.Parallel()

	codes := []int{ExitSuccess, ExitGeneral, ExitUsage, ExitIO, ExitBrowser, ExitAPI}
	seen := make(map[int]bool)
	for _, c := range codes {
		if c >= 126 {
			t.Errorf("exit code %d collides with shell-reserved codes", c)
		}
		if seen[c] {
			t.Errorf("duplicate exit code %d", c)
		}
		seen[c] = true
	}
}

// ---------------------------------------------------------------------------
// TestHintFor - Error to hint mapping
// ---------------------------------------------------------------------------

func TestHintFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		err     error
		want    string
		wantNil bool
	}{
		{name: "unauthorized", err: &vocabfmt.StatusError{Code: 401}, want: "VOCABFMT_API_TOKEN"},
		{name: "not found status", err: &vocabfmt.StatusError{Code: 404}, want: "api.url"},
		{name: "invalid url", err: vocabfmt.ErrInvalidAPIURL, want: "VOCABFMT_API_URL"},
		{name: "timeout", err: fmt.Errorf("x: %w", context.DeadlineExceeded), want: "--timeout"},
		{name: "config not found", err: fmt.Errorf("%w: tried vocab.yaml", config.ErrConfigNotFound), want: "--config"},
		{name: "style", err: vocabfmt.ErrStyleNotFound, want: "compact"},
		{name: "write output", err: ErrWriteOutput, want: "hint:"},
		{name: "unknown", err: errors.New("boom"), wantNil: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := hintFor(tt.err)
			if tt.wantNil {
				if got != "" {
					t.Errorf("hintFor() = %q, want empty", got)
				}
				return
			}
			if !strings.Contains(got, tt.want) {
				t.Errorf("hintFor() = %q, want substring %q", got, tt.want)
			}
		})
	}
}
