package matcher

import (
	"strings"

	"github.com/gosimple/unidecode"
)

// Normalize renders a raw title or artist name into its canonical
// comparable form: ASCII-transliterated, lower-cased, stripped of
// anything but letters, digits and single spaces. It is idempotent.
func Normalize(value string) string {
	var builder strings.Builder
	for _, character := range strings.ToLower(unidecode.Unidecode(value)) {
		switch {
		case character >= 'a' && character <= 'z',
			character >= '0' && character <= '9':
			builder.WriteRune(character)
		case character == ' ', character == '\t', character == '\n':
			builder.WriteRune(' ')
		}
	}
	return strings.Join(strings.Fields(builder.String()), " ")
}

// tokens splits a normalized string into its word tokens.
func tokens(normalized string) []string {
	return strings.Fields(normalized)
}

// sharesToken reports whether the two normalized strings have at
// least one word token in common.
func sharesToken(a, b string) bool {
	words := map[string]bool{}
	for _, token := range tokens(a) {
		words[token] = true
	}
	for _, token := range tokens(b) {
		if words[token] {
			return true
		}
	}
	return false
}
