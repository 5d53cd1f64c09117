package pipeline

import "strings"

// VocabularyNormalizer defines the contract for turning raw vocabulary text
// into presentation markup.
type VocabularyNormalizer interface {
	Normalize(raw string) string
}

// NormalizerOptions configures a Normalizer.
type NormalizerOptions struct {
	// ExtraPhrases are literal strings or regex fragments to bold wherever
	// they occur.
	ExtraPhrases []string

	// KnownPhrases are terms bolded when they make up a whole line.
	// nil selects DefaultKnownPhrases; an empty non-nil slice disables the rule.
	KnownPhrases []string

	// DashSeparators rewrites " - " to " : " before classification.
	DashSeparators bool
}

// Normalizer runs the full pipeline: Sanitize, classify, Group, Render.
// It holds only compiled rules, so one value serves concurrent callers.
type Normalizer struct {
	classifier     *Classifier
	dashSeparators bool
}

// NewNormalizer creates a Normalizer from opts.
func NewNormalizer(opts NormalizerOptions) *Normalizer {
	known := opts.KnownPhrases
	if known == nil {
		known = DefaultKnownPhrases
	}
	return &Normalizer{
		classifier:     NewClassifier(opts.ExtraPhrases, known),
		dashSeparators: opts.DashSeparators,
	}
}

// Normalize converts raw vocabulary text into HTML markup.
// Returns SentinelNoData when the input is empty or sanitizes to nothing.
func (n *Normalizer) Normalize(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return SentinelNoData
	}

	text := Sanitize(raw)
	if n.dashSeparators {
		text = NormalizeSeparators(text)
	}

	doc := n.Parse(text)
	return Render(doc)
}

// Parse classifies sanitized text and groups it into a Document.
func (n *Normalizer) Parse(sanitized string) Document {
	lines := n.classifier.ClassifyAll(SplitLines(sanitized))
	return Group(lines)
}
