package naming

import (
	"regexp"
	"strings"
)

var (
	lowerUpper      = regexp.MustCompile(`([a-z0-9])([A-Z])`)
	upperUpperLower = regexp.MustCompile(`([A-Z])([A-Z][a-z])`)
	nonAlnumRun     = regexp.MustCompile(`[^A-Za-z0-9]+`)
	nonAlnum        = regexp.MustCompile(`(?i)[^a-z0-9]`)
)

// splitWords breaks s into its ASCII alphanumeric words.
//
// Word boundaries are separator runs, a lower-case letter or digit followed by
// an upper-case letter, and the last letter of an upper-case run that starts a
// new capitalised word ("HTTPServer" -> "HTTP", "Server").
func splitWords(s string) []string {
	s = lowerUpper.ReplaceAllString(s, "$1 $2")
	s = upperUpperLower.ReplaceAllString(s, "$1 $2")
	s = nonAlnumRun.ReplaceAllString(s, " ")
	return strings.Fields(s)
}

// PascalCase converts s to PascalCase: every word capitalised, the rest of
// each word lower-cased, no separators. Non-alphanumeric characters never
// survive the conversion.
func PascalCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, word := range splitWords(s) {
		b.WriteString(strings.ToUpper(word[:1]))
		b.WriteString(strings.ToLower(word[1:]))
	}
	return b.String()
}

// KebabCase converts s to lower-case words joined by "-".
func KebabCase(s string) string {
	words := splitWords(s)
	for i, word := range words {
		words[i] = strings.ToLower(word)
	}
	return strings.Join(words, "-")
}

func stripNonAlphanumeric(s string) string {
	return nonAlnum.ReplaceAllString(s, "")
}
