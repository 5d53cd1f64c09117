package vocabfmt

import (
	"errors"

	"github.com/alnah/go-vocabfmt/internal/assets"
	"github.com/alnah/go-vocabfmt/internal/pipeline"
)

// Sentinel errors for library operations.
var (
	// Reasoning API errors.
	ErrEmptyProblem    = errors.New("problem statement cannot be empty")
	ErrInvalidAPIURL   = errors.New("invalid API URL")
	ErrAPIRequest      = errors.New("reasoning API request failed")
	ErrAPIStatus       = errors.New("reasoning API returned an error status")
	ErrAPIResponse     = errors.New("failed to read reasoning API response")
	ErrEmptyExtraction = errors.New("reasoning API returned no vocabulary")

	// Report errors.
	ErrMarkdownConversion = pipeline.ErrMarkdownConversion
	ErrReportRender       = pipeline.ErrReportRender
	ErrInvalidAssetPath   = errors.New("invalid asset path")
	ErrStyleNotFound      = assets.ErrStyleNotFound
	ErrInvalidDate        = errors.New("invalid report date")

	// PDF errors.
	ErrPDFGeneration  = errors.New("PDF generation failed")
	ErrBrowserConnect = errors.New("failed to connect to browser")
	ErrPageCreate     = errors.New("failed to create browser page")
	ErrPageLoad       = errors.New("failed to load page")
	ErrPoolClosed     = errors.New("reporter pool closed")

	// Page settings validation errors.
	ErrInvalidPageSize       = errors.New("invalid page size")
	ErrInvalidOrientation    = errors.New("invalid orientation")
	ErrInvalidMargin         = errors.New("invalid margin")
	ErrInvalidFooterPosition = errors.New("invalid footer position")
)
