package vocabfmt

import (
	"strings"

	"github.com/k3a/html2text"

	"github.com/alnah/go-vocabfmt/internal/pipeline"
)

// SentinelNoData is returned by Format when the input holds no vocabulary.
const SentinelNoData = pipeline.SentinelNoData

// Format converts raw vocabulary text into HTML markup using the default
// rules plus extraPhrases. It never fails: empty input yields SentinelNoData.
func Format(raw string, extraPhrases ...string) string {
	return NewFormatter(WithExtraPhrases(extraPhrases...)).Format(raw)
}

// Formatter turns vocabulary text into HTML markup.
// A Formatter is immutable after construction and safe for concurrent use.
type Formatter struct {
	normalizer pipeline.VocabularyNormalizer
}

// NewFormatter creates a Formatter.
// Relevant options: WithExtraPhrases, WithKnownPhrases, WithDashSeparators.
func NewFormatter(opts ...Option) *Formatter {
	s := newSettings(opts)
	return &Formatter{normalizer: pipeline.NewNormalizer(s.normalizerOptions())}
}

// Format converts raw text into one scrollable HTML fragment.
func (f *Formatter) Format(raw string) string {
	return f.normalizer.Normalize(raw)
}

// FormatJSON flattens a reasoning API response body and formats the result.
// Bodies that are not JSON are formatted as plain text.
func (f *Formatter) FormatJSON(body []byte) string {
	return f.Format(FlattenJSON(body))
}

// FormatText formats raw and renders the markup back to plain text with
// the structure (headings, bullets, paragraphs) kept as line layout.
func (f *Formatter) FormatText(raw string) string {
	text := html2text.HTML2Text(f.Format(raw))
	return strings.TrimSpace(strings.ReplaceAll(text, "\r\n", "\n"))
}
