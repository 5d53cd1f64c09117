package vocabfmt

import (
	"strings"

	"github.com/tidwall/gjson"
)

// responseTextKeys are object keys searched, in order, for the answer text.
var responseTextKeys = []string{"result", "output", "content", "text"}

// FlattenJSON reduces a reasoning API response to plain text:
//   - null is empty, a string is itself;
//   - an object yields its first non-empty result/output/content/text
//     field, else its data field when present, else "key: value" lines
//     for its non-empty fields;
//   - an array yields its non-empty items, one per line;
//   - other scalars yield their JSON text.
//
// A body that is not valid JSON is returned unchanged.
func FlattenJSON(body []byte) string {
	if !gjson.ValidBytes(body) {
		return string(body)
	}
	return flattenValue(gjson.ParseBytes(body))
}

func flattenValue(v gjson.Result) string {
	switch {
	case v.Type == gjson.Null:
		return ""
	case v.Type == gjson.String:
		return v.Str
	case v.IsObject():
		return flattenObject(v)
	case v.IsArray():
		var lines []string
		for _, item := range v.Array() {
			if isTruthy(item) {
				lines = append(lines, flattenValue(item))
			}
		}
		return strings.Join(lines, "\n")
	default:
		return v.Raw
	}
}

func flattenObject(v gjson.Result) string {
	for _, key := range responseTextKeys {
		if field := v.Get(key); isTruthy(field) {
			return flattenValue(field)
		}
	}
	if data := v.Get("data"); data.Exists() {
		return flattenValue(data)
	}

	var lines []string
	v.ForEach(func(key, value gjson.Result) bool {
		if isTruthy(value) {
			lines = append(lines, key.String()+": "+flattenValue(value))
		}
		return true
	})
	return strings.Join(lines, "\n")
}

// isTruthy reports whether a value is non-empty: not null, false, zero,
// an empty string, an empty array, or an empty object.
func isTruthy(v gjson.Result) bool {
	switch v.Type {
	case gjson.Null, gjson.False:
		return false
	case gjson.True:
		return true
	case gjson.Number:
		return v.Num != 0
	case gjson.String:
		return v.Str != ""
	case gjson.JSON:
		empty := true
		v.ForEach(func(_, _ gjson.Result) bool {
			empty = false
			return false
		})
		return !empty
	}
	return v.Exists()
}
