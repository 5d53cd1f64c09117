// Package dateutil resolves report date values such as "auto" or
// "auto:Q YYYY" against a clock.
package dateutil

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidDateFormat indicates an invalid date format string.
var ErrInvalidDateFormat = errors.New("invalid date format")

// MaxDateFormatLength limits format string length.
const MaxDateFormatLength = 50

// DefaultDateFormat is used when "auto" is given without a format.
const DefaultDateFormat = "YYYY-MM-DD"

// token renders one placeholder of a date format.
type token struct {
	text   string
	render func(t time.Time) string
}

// tokens is ordered longest first for greedy matching.
var tokens = []token{
	{"YYYY", func(t time.Time) string { return t.Format("2006") }},
	{"MMMM", func(t time.Time) string { return t.Format("January") }},
	{"MMM", func(t time.Time) string { return t.Format("Jan") }},
	{"YY", func(t time.Time) string { return t.Format("06") }},
	{"MM", func(t time.Time) string { return t.Format("01") }},
	{"DD", func(t time.Time) string { return t.Format("02") }},
	{"M", func(t time.Time) string { return t.Format("1") }},
	{"D", func(t time.Time) string { return t.Format("2") }},
	{"Q", func(t time.Time) string { return strconv.Itoa((int(t.Month())-1)/3 + 1) }},
}

// Presets are named shortcuts for common formats.
var Presets = map[string]string{
	"iso":      "YYYY-MM-DD",
	"european": "DD/MM/YYYY",
	"us":       "MM/DD/YYYY",
	"long":     "MMMM D, YYYY",
	"quarter":  "[Q]Q YYYY",
}

// Format renders t using a token format.
// Tokens: YYYY, YY, MMMM, MMM, MM, M, DD, D, Q (quarter 1-4).
// Text inside brackets is copied literally: "[Week of] MMM D".
func Format(format string, t time.Time) (string, error) {
	if format == "" {
		return "", fmt.Errorf("%w: format cannot be empty", ErrInvalidDateFormat)
	}
	if len(format) > MaxDateFormatLength {
		return "", fmt.Errorf("%w: format exceeds %d characters", ErrInvalidDateFormat, MaxDateFormatLength)
	}

	var b strings.Builder
	for i := 0; i < len(format); {
		if format[i] == '[' {
			end := strings.IndexByte(format[i+1:], ']')
			if end == -1 {
				return "", fmt.Errorf("%w: unclosed bracket at position %d", ErrInvalidDateFormat, i)
			}
			b.WriteString(format[i+1 : i+1+end])
			i += end + 2
			continue
		}

		matched := false
		for _, tok := range tokens {
			if strings.HasPrefix(format[i:], tok.text) {
				b.WriteString(tok.render(t))
				i += len(tok.text)
				matched = true
				break
			}
		}
		if !matched {
			b.WriteByte(format[i])
			i++
		}
	}
	return b.String(), nil
}

// Resolve expands "auto" date values:
//   - "auto" gives now in DefaultDateFormat
//   - "auto:FORMAT" gives now in FORMAT, or in a named preset
//   - "" and any other value are returned unchanged
func Resolve(value string, now time.Time) (string, error) {
	lower := strings.ToLower(value)
	if !strings.HasPrefix(lower, "auto") {
		return value, nil
	}
	if lower == "auto" {
		return Format(DefaultDateFormat, now)
	}

	format, ok := strings.CutPrefix(value, value[:len("auto")]+":")
	if !ok {
		return "", fmt.Errorf("%w: invalid auto syntax %q, use \"auto\" or \"auto:FORMAT\"", ErrInvalidDateFormat, value)
	}
	if format == "" {
		return "", fmt.Errorf("%w: format cannot be empty after \"auto:\"", ErrInvalidDateFormat)
	}
	if preset, ok := Presets[strings.ToLower(format)]; ok {
		format = preset
	}
	return Format(format, now)
}
