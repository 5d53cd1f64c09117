package vocabfmt

import (
	"time"

	"github.com/alnah/go-vocabfmt/internal/pipeline"
)

// Option configures a Formatter or a Reporter.
// Options irrelevant to the receiver are ignored.
type Option func(*settings)

// settings holds the union of Formatter and Reporter configuration.
type settings struct {
	extraPhrases   []string
	knownPhrases   []string
	dashSeparators bool
	timeout        time.Duration
	styleInput     string
	assetPath      string
	now            func() time.Time
	pdfConverter   pdfConverter
}

// defaultTimeout bounds one PDF rendering when no timeout is given.
const defaultTimeout = 30 * time.Second

func newSettings(opts []Option) *settings {
	s := &settings{
		dashSeparators: true,
		timeout:        defaultTimeout,
		now:            time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *settings) normalizerOptions() pipeline.NormalizerOptions {
	return pipeline.NormalizerOptions{
		ExtraPhrases:   s.extraPhrases,
		KnownPhrases:   s.knownPhrases,
		DashSeparators: s.dashSeparators,
	}
}

// WithExtraPhrases adds phrases bolded wherever they occur. Each phrase is a
// literal or a regular-expression fragment, matched case-insensitively.
// Invalid fragments are matched literally.
func WithExtraPhrases(phrases ...string) Option {
	return func(s *settings) {
		s.extraPhrases = append(s.extraPhrases, phrases...)
	}
}

// WithKnownPhrases replaces the terms bolded when they make up a whole line.
// Calling it with no phrases disables whole-line bolding.
func WithKnownPhrases(phrases ...string) Option {
	return func(s *settings) {
		s.knownPhrases = append([]string{}, phrases...)
	}
}

// WithDashSeparators toggles rewriting "Term - definition" lines into
// "Term: definition" before classification. Enabled by default.
func WithDashSeparators(enabled bool) Option {
	return func(s *settings) {
		s.dashSeparators = enabled
	}
}

// WithTimeout sets the PDF rendering timeout.
// Panics if d <= 0 (programmer error, similar to time.NewTicker).
func WithTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("vocabfmt: WithTimeout duration must be positive")
	}
	return func(s *settings) {
		s.timeout = d
	}
}

// WithStyle sets the report stylesheet: an embedded style name ("default",
// "compact"), a path to a CSS file, or inline CSS content.
func WithStyle(style string) Option {
	return func(s *settings) {
		s.styleInput = style
	}
}

// WithAssetPath sets a directory whose styles/ and templates/ override the
// embedded assets. Missing files fall back to the embedded ones.
func WithAssetPath(path string) Option {
	return func(s *settings) {
		s.assetPath = path
	}
}

// WithClock sets the time source used to resolve "auto" report dates.
func WithClock(now func() time.Time) Option {
	return func(s *settings) {
		if now != nil {
			s.now = now
		}
	}
}

// withPDFConverter injects a PDF converter (tests).
func withPDFConverter(c pdfConverter) Option {
	return func(s *settings) {
		s.pdfConverter = c
	}
}
