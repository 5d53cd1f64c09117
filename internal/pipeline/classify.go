package pipeline

import (
	"regexp"
	"strings"
)

// Classification tags a line with the rule that matched it.
type Classification uint8

// Classifications in rule priority order. BlankLine is assigned before any
// rule runs.
const (
	ExtraPhraseMatch Classification = iota
	StepHeading
	NumberedHeadingWithColon
	NumberedHeadingNoColon
	BulletHeadingWithColon
	GenericShortHeading
	KnownPhraseLine
	PlainLine
	BlankLine
)

var classificationNames = [...]string{
	ExtraPhraseMatch:         "ExtraPhraseMatch",
	StepHeading:              "StepHeading",
	NumberedHeadingWithColon: "NumberedHeadingWithColon",
	NumberedHeadingNoColon:   "NumberedHeadingNoColon",
	BulletHeadingWithColon:   "BulletHeadingWithColon",
	GenericShortHeading:      "GenericShortHeading",
	KnownPhraseLine:          "KnownPhraseLine",
	PlainLine:                "PlainLine",
	BlankLine:                "BlankLine",
}

func (c Classification) String() string {
	if int(c) < len(classificationNames) {
		return classificationNames[c]
	}
	return "Classification(unknown)"
}

// MaxShortHeadingWords is the word limit for the left side of a generic
// "left: right" heading.
const MaxShortHeadingWords = 8

// DefaultKnownPhrases lists terms bolded when they make up a whole line.
var DefaultKnownPhrases = []string{
	"EBITDA",
	"Net Present Value",
	"Internal Rate of Return",
	"Return on Investment",
	"Gross Margin",
	"Operating Margin",
	"Free Cash Flow",
}

// Line is one newline-delimited segment of sanitized text.
type Line struct {
	Index int
	Text  string
}

// ClassifiedLine is a Line with its classification and the spans the
// matching rule decided on. Lead, Heading, and Rest render in sequence with
// Heading bolded. Marked holds the line with inline bold placeholders for
// ExtraPhraseMatch.
type ClassifiedLine struct {
	Line
	Class   Classification
	Lead    string
	Heading string
	Rest    string
	Marked  string

	// Continuation is set on lines absorbed into a heading block by Collect.
	Continuation bool
}

var (
	stepPattern              = regexp.MustCompile(`(?i)\bstep\s*\d+\s*:`)
	numberedWithColonPattern = regexp.MustCompile(`^(\d+\.\s+[^:]+:)\s*(.*)$`)
	numberedPattern          = regexp.MustCompile(`^\d+\.\s+\S`)
	bulletWithColonPattern   = regexp.MustCompile(`^(` + Bullet + `|\d+\.)\s*([^:]+):\s*(.*)$`)
	sideHeadingPattern       = regexp.MustCompile(`^([^:]+):\s*(.*)$`)
	listMarkerPattern        = regexp.MustCompile(`^(?:` + Bullet + `|[-*](?:\s|$)|\d+\.)`)
)

// rule is one classifier step. match receives the trimmed line text.
type rule struct {
	name  string
	match func(text string) (ClassifiedLine, bool)
}

// Classifier assigns one Classification per line by evaluating its rules in
// a fixed order; the first match wins. A Classifier is immutable after
// construction and safe for concurrent use.
type Classifier struct {
	rules []rule
}

// NewClassifier builds the rule list. extraPhrases are literal strings or
// regex fragments bolded wherever they occur; knownPhrases are whole-line
// terms. Invalid fragments fall back to literal matching.
func NewClassifier(extraPhrases, knownPhrases []string) *Classifier {
	phrases := compilePhrases(extraPhrases)
	known := normalizeKnownPhrases(knownPhrases)

	return &Classifier{
		rules: []rule{
			{name: ExtraPhraseMatch.String(), match: func(text string) (ClassifiedLine, bool) {
				return matchExtraPhrase(phrases, text)
			}},
			{name: StepHeading.String(), match: matchStep},
			{name: NumberedHeadingWithColon.String(), match: matchNumberedWithColon},
			{name: NumberedHeadingNoColon.String(), match: matchNumberedNoColon},
			{name: BulletHeadingWithColon.String(), match: matchBulletWithColon},
			{name: GenericShortHeading.String(), match: matchShortHeading},
			{name: KnownPhraseLine.String(), match: func(text string) (ClassifiedLine, bool) {
				return matchKnownPhrase(known, text)
			}},
		},
	}
}

// Rules returns the rule names in evaluation order.
func (c *Classifier) Rules() []string {
	names := make([]string, 0, len(c.rules)+1)
	for _, r := range c.rules {
		names = append(names, r.name)
	}
	return append(names, PlainLine.String())
}

// Classify returns the classification of a single line.
func (c *Classifier) Classify(l Line) ClassifiedLine {
	text := strings.TrimSpace(l.Text)
	if text == "" {
		return ClassifiedLine{Line: l, Class: BlankLine}
	}

	for _, r := range c.rules {
		if cl, ok := r.match(text); ok {
			cl.Line = l
			return cl
		}
	}
	return ClassifiedLine{Line: l, Class: PlainLine, Rest: text}
}

// ClassifyAll classifies every line independently.
func (c *Classifier) ClassifyAll(lines []Line) []ClassifiedLine {
	out := make([]ClassifiedLine, len(lines))
	for i, l := range lines {
		out[i] = c.Classify(l)
	}
	return out
}

// SplitLines splits sanitized text into indexed lines.
func SplitLines(text string) []Line {
	if text == "" {
		return nil
	}
	parts := strings.Split(text, "\n")
	lines := make([]Line, len(parts))
	for i, p := range parts {
		lines[i] = Line{Index: i, Text: p}
	}
	return lines
}

func matchExtraPhrase(phrases *regexp.Regexp, text string) (ClassifiedLine, bool) {
	if phrases == nil {
		return ClassifiedLine{}, false
	}
	marked, ok := markPhrases(phrases, text)
	if !ok {
		return ClassifiedLine{}, false
	}
	return ClassifiedLine{Class: ExtraPhraseMatch, Marked: marked}, true
}

func matchStep(text string) (ClassifiedLine, bool) {
	loc := stepPattern.FindStringIndex(text)
	if loc == nil {
		return ClassifiedLine{}, false
	}
	return ClassifiedLine{
		Class:   StepHeading,
		Lead:    text[:loc[0]],
		Heading: text[loc[0]:loc[1]],
		Rest:    strings.TrimSpace(text[loc[1]:]),
	}, true
}

func matchNumberedWithColon(text string) (ClassifiedLine, bool) {
	m := numberedWithColonPattern.FindStringSubmatch(text)
	if m == nil {
		return ClassifiedLine{}, false
	}
	return ClassifiedLine{
		Class:   NumberedHeadingWithColon,
		Heading: m[1],
		Rest:    strings.TrimSpace(m[2]),
	}, true
}

func matchNumberedNoColon(text string) (ClassifiedLine, bool) {
	if strings.Contains(text, ":") || !numberedPattern.MatchString(text) {
		return ClassifiedLine{}, false
	}
	return ClassifiedLine{Class: NumberedHeadingNoColon, Heading: text}, true
}

func matchBulletWithColon(text string) (ClassifiedLine, bool) {
	m := bulletWithColonPattern.FindStringSubmatch(text)
	if m == nil {
		return ClassifiedLine{}, false
	}
	heading := strings.TrimSpace(m[2])
	if heading == "" {
		return ClassifiedLine{}, false
	}
	return ClassifiedLine{
		Class:   BulletHeadingWithColon,
		Lead:    m[1] + " ",
		Heading: heading + ":",
		Rest:    strings.TrimSpace(m[3]),
	}, true
}

func matchShortHeading(text string) (ClassifiedLine, bool) {
	if listMarkerPattern.MatchString(text) {
		return ClassifiedLine{}, false
	}
	m := sideHeadingPattern.FindStringSubmatch(text)
	if m == nil {
		return ClassifiedLine{}, false
	}
	left := strings.TrimSpace(m[1])
	if words := len(strings.Fields(left)); words == 0 || words > MaxShortHeadingWords {
		return ClassifiedLine{}, false
	}
	return ClassifiedLine{
		Class:   GenericShortHeading,
		Heading: left + ":",
		Rest:    strings.TrimSpace(m[2]),
	}, true
}

func matchKnownPhrase(known []string, text string) (ClassifiedLine, bool) {
	for _, phrase := range known {
		if strings.EqualFold(text, phrase) {
			return ClassifiedLine{Class: KnownPhraseLine, Heading: text}, true
		}
	}
	return ClassifiedLine{}, false
}

func normalizeKnownPhrases(phrases []string) []string {
	out := make([]string, 0, len(phrases))
	for _, p := range phrases {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// isListMarker reports whether a raw line opens a bullet or numbered item.
func isListMarker(raw string) bool {
	return listMarkerPattern.MatchString(strings.TrimLeft(raw, " \t"))
}

func (l Line) trimmedText() string {
	return strings.TrimSpace(l.Text)
}
