package matcher

import (
	"unicode"

	"github.com/agnivade/levenshtein"
)

// Similarity computes a partial-ratio score in [0, 100] measuring how
// well the shorter of the two strings aligns within the longer one.
// Scores below cutoff collapse to 0.
//
// Inputs holding characters outside the comparator's alphabet (runes
// beyond the Basic Multilingual Plane, e.g. emoji) are checked for up
// front and compared through stripped-down copies instead, so exotic
// titles degrade gracefully rather than erroring.
func Similarity(a, b string, cutoff float64) float64 {
	if !comparable(a) || !comparable(b) {
		a, b = stripUncomparable(a), stripUncomparable(b)
	}

	score := partialRatio(a, b)
	if score < cutoff {
		return 0
	}
	return score
}

// comparable reports whether every rune fits the comparator's
// supported alphabet.
func comparable(value string) bool {
	for _, character := range value {
		if character > 0xFFFF {
			return false
		}
	}
	return true
}

// stripUncomparable drops everything but letters, digits and spaces
// within the supported alphabet.
func stripUncomparable(value string) string {
	var stripped []rune
	for _, character := range value {
		if character <= 0xFFFF &&
			(unicode.IsLetter(character) || unicode.IsDigit(character) || character == ' ') {
			stripped = append(stripped, character)
		}
	}
	return string(stripped)
}

// partialRatio slides the shorter string over every equally sized
// window of the longer one, keeping the best plain ratio found.
func partialRatio(a, b string) float64 {
	shorter, longer := []rune(a), []rune(b)
	if len(shorter) > len(longer) {
		shorter, longer = longer, shorter
	}

	if len(shorter) == 0 {
		if len(longer) == 0 {
			return 100
		}
		return 0
	}

	var best float64
	for offset := 0; offset+len(shorter) <= len(longer); offset++ {
		window := string(longer[offset : offset+len(shorter)])
		if score := ratio(string(shorter), window); score > best {
			best = score
		}
		if best == 100 {
			break
		}
	}
	return best
}

// ratio is the plain edit-distance similarity of two strings, scaled
// to [0, 100].
func ratio(a, b string) float64 {
	if a == b {
		return 100
	}

	length := len([]rune(a))
	if l := len([]rune(b)); l > length {
		length = l
	}
	if length == 0 {
		return 100
	}

	distance := levenshtein.ComputeDistance(a, b)
	return (1 - float64(distance)/float64(length)) * 100
}
