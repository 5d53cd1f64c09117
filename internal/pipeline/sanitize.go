package pipeline

import (
	"regexp"
	"strings"
)

// Bullet is the normalized list marker.
const Bullet = "•"

// Precompiled regex patterns for performance.
var (
	// Line ending normalization
	crlfOrCR = regexp.MustCompile(`\r\n?`)

	// A lone "s" token at line start, left behind by upstream generation
	strayS = regexp.MustCompile(`(?m)^[ \t]*(?:s(?:[ \t]+|$))+`)

	// "Q3 Answer Explanation:" scaffolding
	qaScaffold = regexp.MustCompile(`(?i)Q\d+\s*Answer\s*Explanation\s*:`)

	// Markdown emphasis and code. Italic requires non-space inner edges so a
	// "* item" bullet marker is never taken for an opening asterisk.
	boldMarkdown   = regexp.MustCompile(`\*\*(.+?)\*\*`)
	italicMarkdown = regexp.MustCompile(`\*([^\s*](?:[^*\n]*?[^\s*])?)\*`)
	inlineCode     = regexp.MustCompile("`([^`\n]*)`")

	// ATX heading hashes at line start
	headingHashes = regexp.MustCompile(`(?m)^[ \t]*#+[ \t]*`)

	// Images are dropped, links keep their text
	imageMarkdown = regexp.MustCompile(`!\[[^\]\n]*\]\([^)\n]*\)`)
	linkMarkdown  = regexp.MustCompile(`\[([^\]\n]*)\]\([^)\n]*\)`)

	// Whitespace cleanup
	trailingSpace      = regexp.MustCompile(`(?m)[ \t]+$`)
	multipleBlankLines = regexp.MustCompile(`\n{3,}`)
	multipleSpaces     = regexp.MustCompile(` {2,}`)

	// "-" or "*" list marker at line start
	bulletMarker = regexp.MustCompile(`(?m)^[ \t]*[-*][ \t]+`)

	// Residual HTML tags
	htmlTag = regexp.MustCompile(`</?[a-zA-Z][^<>]*>`)
)

// Sanitize strips markdown artifacts, residual HTML, and known generation
// noise from raw vocabulary text. It never fails; empty input yields "".
//
// A rewrite can expose a new match for an earlier one (a removed tag may
// leave a fresh run of blank lines), so passes repeat until the text settles.
// This makes Sanitize idempotent.
func Sanitize(raw string) string {
	text := raw
	for {
		next := sanitizePass(text)
		if next == text {
			return text
		}
		text = next
	}
}

// sanitizePass applies every rewrite once, in order.
func sanitizePass(text string) string {
	if text == "" {
		return ""
	}

	text = stripPlaceholders(text)
	text = normalizeLineEndings(text)
	text = strings.TrimSpace(text)
	text = strayS.ReplaceAllString(text, "")
	text = qaScaffold.ReplaceAllString(text, "")
	text = stripMarkdown(text)
	text = compressWhitespace(text)
	text = normalizeBullets(text)
	text = htmlTag.ReplaceAllString(text, "")
	text = unescapeAmp(text)
	text = strings.ReplaceAll(text, "& Key Takeaway:", "Key Takeaway:")
	return strings.TrimSpace(text)
}

// unescapeAmp unwraps nested "&amp;amp;..." down to a bare "&".
func unescapeAmp(text string) string {
	for strings.Contains(text, "&amp;") {
		text = strings.ReplaceAll(text, "&amp;", "&")
	}
	return text
}

// normalizeLineEndings converts \r\n and \r to \n.
func normalizeLineEndings(text string) string {
	return crlfOrCR.ReplaceAllString(text, "\n")
}

// stripMarkdown unwraps emphasis and code, removes heading hashes and images,
// and collapses links to their text.
func stripMarkdown(text string) string {
	text = boldMarkdown.ReplaceAllString(text, "$1")
	text = italicMarkdown.ReplaceAllString(text, "$1")
	text = inlineCode.ReplaceAllString(text, "$1")
	text = headingHashes.ReplaceAllString(text, "")
	text = imageMarkdown.ReplaceAllString(text, "")
	return linkMarkdown.ReplaceAllString(text, "$1")
}

// compressWhitespace limits blank lines to one and space runs to a single space.
func compressWhitespace(text string) string {
	text = trailingSpace.ReplaceAllString(text, "")
	text = multipleBlankLines.ReplaceAllString(text, "\n\n")
	return multipleSpaces.ReplaceAllString(text, " ")
}

// normalizeBullets rewrites "-" and "*" list markers to "• ".
func normalizeBullets(text string) string {
	return bulletMarker.ReplaceAllString(text, Bullet+" ")
}

// NormalizeSeparators rewrites " - " term separators to " : " so that
// "Term - definition" lines classify as short headings.
func NormalizeSeparators(text string) string {
	return strings.ReplaceAll(text, " - ", " : ")
}
