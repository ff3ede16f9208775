package genai

import (
	"regexp"
	"strings"
)

var fenceOpen = regexp.MustCompile("```(json|JSON)?\n")

// Sanitize strips the markdown code fences models like to wrap JSON in,
// with or without a language tag after the opening fence, and trims
// surrounding whitespace. It never fails; text it cannot improve passes
// through unchanged for the validator to reject.
func Sanitize(raw string) string {
	s := fenceOpen.ReplaceAllString(raw, "")
	s = strings.ReplaceAll(s, "```", "")
	return strings.TrimSpace(s)
}
