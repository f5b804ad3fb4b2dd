package slug

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var slugRegexp = regexp.MustCompile(`[^a-z0-9]+`)

// special covers letters that NFD does not decompose into base + mark.
var special = strings.NewReplacer(
	"ß", "ss", "æ", "ae", "ø", "o", "œ", "oe", "ł", "l", "đ", "d", "ı", "i",
)

// fold strips combining marks after canonical decomposition.
func fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

// Generate creates a URL-friendly slug from the given name.
//
// Examples:
//   - "Classic White T-Shirt" → "classic-white-t-shirt"
//   - "Crème Brûlée" → "creme-brulee"
//   - "Hello   World!" → "hello-world"
func Generate(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = special.Replace(fold(s))
	s = slugRegexp.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// Normalize canonicalises a slug received from a client so it can be matched
// against stored slugs: trimmed, lower-cased and diacritic-free. Hyphens are
// preserved as they are significant.
func Normalize(s string) string {
	return Generate(s)
}
