package pipeline

import (
	"regexp"
	"strings"
)

// compilePhrases joins caller phrases into one case-insensitive alternation.
// A fragment that does not compile on its own is matched literally.
// Returns nil when no usable phrase remains.
func compilePhrases(phrases []string) *regexp.Regexp {
	fragments := make([]string, 0, len(phrases))
	literals := make([]string, 0, len(phrases))
	for _, p := range phrases {
		if strings.TrimSpace(p) == "" {
			continue
		}
		literal := regexp.QuoteMeta(p)
		literals = append(literals, "(?:"+literal+")")
		if _, err := regexp.Compile(p); err != nil {
			fragments = append(fragments, "(?:"+literal+")")
			continue
		}
		fragments = append(fragments, "(?:"+p+")")
	}
	if len(fragments) == 0 {
		return nil
	}

	if re, err := regexp.Compile("(?i)" + strings.Join(fragments, "|")); err == nil {
		return re
	}
	return regexp.MustCompile("(?i)" + strings.Join(literals, "|"))
}

// markPhrases wraps every non-empty match of re in bold placeholders.
// Reports false when nothing matched.
func markPhrases(re *regexp.Regexp, text string) (string, bool) {
	locs := re.FindAllStringIndex(text, -1)

	var b strings.Builder
	last := 0
	for _, loc := range locs {
		if loc[0] == loc[1] {
			continue
		}
		b.WriteString(text[last:loc[0]])
		b.WriteString(bold(text[loc[0]:loc[1]]))
		last = loc[1]
	}
	if last == 0 {
		return text, false
	}
	b.WriteString(text[last:])
	return b.String(), true
}
