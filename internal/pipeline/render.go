package pipeline

import (
	"html"
	"regexp"
	"strings"
)

// SentinelNoData is returned in place of markup when there is no text.
const SentinelNoData = "No vocabulary data available"

// LineBreak separates lines inside a block and blocks inside a paragraph.
const LineBreak = "<br>"

// Inline styles for the rendered fragment. Paragraph margins are slightly
// larger than the line spacing inside a paragraph.
const (
	paragraphStyle = "margin:6px 0; line-height:1.45; font-size:0.98rem;"
	containerStyle = "background: var(--bg-card); " +
		"border: 1px solid rgba(139,30,30,0.06); " +
		"border-radius: 10px; " +
		"padding: 12px 14px; " +
		"font-family: Inter, sans-serif; " +
		"color: var(--text-primary); " +
		"max-height: 650px; " +
		"overflow-y: auto; " +
		"white-space: normal; " +
		"word-break: break-word;"
)

// Three or more line breaks, possibly separated by whitespace
var excessLineBreaks = regexp.MustCompile(`(` + LineBreak + `\s*){3,}`)

// Render serializes a document into HTML markup: bold heading spans, blocks
// joined by line breaks, paragraphs in <p> wrappers, and one scrollable
// outer container. An empty document renders as SentinelNoData.
func Render(doc Document) string {
	if len(doc) == 0 {
		return SentinelNoData
	}

	paragraphs := make([]string, 0, len(doc))
	for _, p := range doc {
		paragraphs = append(paragraphs, renderParagraph(p))
	}

	var b strings.Builder
	b.WriteString(`<div style="` + containerStyle + `">`)
	b.WriteString("\n")
	b.WriteString(strings.Join(paragraphs, "\n"))
	b.WriteString("\n</div>")

	out := ConvertBoldPlaceholders(b.String())
	return excessLineBreaks.ReplaceAllString(out, LineBreak+LineBreak)
}

func renderParagraph(p Paragraph) string {
	blocks := make([]string, 0, len(p))
	for _, block := range p {
		blocks = append(blocks, renderBlock(block))
	}
	return "<p style='" + paragraphStyle + "'>" + strings.Join(blocks, LineBreak) + "</p>"
}

// renderBlock renders one block. NumberedHeadingNoColon and KnownPhraseLine
// blocks are bolded as a whole; other blocks bold only the head's heading
// span and leave continuation lines plain.
func renderBlock(block Block) string {
	head := block.Head()
	lines := make([]string, 0, len(block))

	switch head.Class {
	case NumberedHeadingNoColon, KnownPhraseLine:
		for _, l := range block {
			lines = append(lines, escapeEntities(l.plainText()))
		}
		return BoldStartPlaceholder + strings.Join(lines, LineBreak) + BoldEndPlaceholder
	}

	for _, l := range block {
		lines = append(lines, escapeEntities(l.markup()))
	}
	return strings.Join(lines, LineBreak)
}

// markup returns the line text with bold placeholders around its heading.
func (l ClassifiedLine) markup() string {
	switch {
	case l.Marked != "":
		return l.Marked
	case l.Heading == "" || l.Continuation:
		return l.plainText()
	}

	s := l.Lead + bold(l.Heading)
	if l.Rest != "" {
		s += " " + l.Rest
	}
	return s
}

// plainText returns the line without any bold markers.
func (l ClassifiedLine) plainText() string {
	if l.Heading == "" {
		return l.Rest
	}
	s := l.Lead + l.Heading
	if l.Rest != "" {
		s += " " + l.Rest
	}
	return s
}

// escapeEntities normalizes entities in one step: existing entities are
// decoded, then the text is escaped exactly once. Bold placeholders pass
// through untouched.
func escapeEntities(s string) string {
	return html.EscapeString(html.UnescapeString(s))
}
