package sanitize

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var strict = bluemonday.StrictPolicy()

// Text strips every HTML element from user supplied free text (names,
// departments) and trims surrounding whitespace. The result is plain text,
// not HTML, so entities escaped by the policy are decoded again.
func Text(input string) string {
	return strings.TrimSpace(html.UnescapeString(strict.Sanitize(input)))
}

// OptionalText applies Text to a non-nil pointer. Empty results become nil.
func OptionalText(input *string) *string {
	if input == nil {
		return nil
	}
	cleaned := Text(*input)
	if cleaned == "" {
		return nil
	}
	return &cleaned
}
