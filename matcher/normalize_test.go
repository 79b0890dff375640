package matcher

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	for input, expected := range map[string]string{
		"":                      "",
		"Spectre":               "spectre",
		"Beyoncé - Héllo!":      "beyonce hello",
		"  Faded   (Remix)  ":   "faded remix",
		"Sigur Rós: Ágætis":     "sigur ros agaetis",
		"AC/DC":                 "acdc",
		"99 Luftballons":        "99 luftballons",
		"T\tN\nL":               "t n l",
	} {
		assert.Equal(t, expected, Normalize(input))
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	for _, input := range []string{
		"",
		"Spectre",
		"Beyoncé - Héllo!",
		"Mëtàl Ümläüts!!!",
		"multi   space   input",
	} {
		once := Normalize(input)
		assert.Equal(t, once, Normalize(once))
	}
}

func TestSharesToken(t *testing.T) {
	assert.True(t, sharesToken("spectre live", "spectre"))
	assert.True(t, sharesToken("alan walker faded", "faded restrung"))
	assert.False(t, sharesToken("completely unrelated", "spectre"))
	assert.False(t, sharesToken("", "spectre"))
	assert.False(t, sharesToken("", ""))
}
