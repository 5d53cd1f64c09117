package pipeline

import "strings"

// Bold placeholders use Unicode Private Use Area characters.
// Classification marks bold spans with them; Render escapes the text and
// only then turns them into <strong> tags, so entity handling never touches
// generated markup.
const (
	BoldStartPlaceholder = "\uE000" // U+E000: Private Use Area start
	BoldEndPlaceholder   = "\uE001" // U+E001: Private Use Area end
)

var placeholderStripper = strings.NewReplacer(BoldStartPlaceholder, "", BoldEndPlaceholder, "")

var placeholderConverter = strings.NewReplacer(
	BoldStartPlaceholder, "<strong>",
	BoldEndPlaceholder, "</strong>",
)

// bold wraps s in bold placeholders. Empty input stays empty.
func bold(s string) string {
	if s == "" {
		return ""
	}
	return BoldStartPlaceholder + s + BoldEndPlaceholder
}

// stripPlaceholders removes placeholder runes from untrusted text.
func stripPlaceholders(s string) string {
	return placeholderStripper.Replace(s)
}

// ConvertBoldPlaceholders converts placeholder markers to <strong> tags.
func ConvertBoldPlaceholders(s string) string {
	return placeholderConverter.Replace(s)
}
