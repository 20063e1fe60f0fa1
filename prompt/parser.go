package prompt

import (
	"strings"

	"github.com/spektr-org/bikeshare/schema"
)

// Normalize lowercases an answer and trims surrounding whitespace.
func Normalize(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

// Validate checks a normalized answer against a field's allowed values and
// returns its canonical form: the region key, the month or day name (or
// "all"), or "y"/"n" for confirmations.
func Validate(f Field, answer string) (string, bool) {
	switch f {
	case FieldRegion:
		if r, ok := schema.LookupRegion(answer); ok {
			return r.Key, true
		}
	case FieldMonth:
		if _, ok := schema.MonthNumber(answer); ok {
			return answer, true
		}
	case FieldDay:
		if _, ok := schema.DayIndex(answer); ok {
			return answer, true
		}
	case FieldConfirm:
		switch answer {
		case "y", "yes":
			return "y", true
		case "n", "no":
			return "n", true
		}
	}
	return "", false
}
