package tools

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Slugify converts text into a URL slug.
//
// Rules:
//   - NFKC-normalize, so compatibility forms ("ﬁ", full-width letters) fold
//     into their plain equivalents.
//   - Drop every rune that is not a letter, digit, underscore, whitespace or hyphen.
//   - Trim and lower-case. Letters keep their diacritics.
//   - Collapse each run of whitespace, underscores and hyphens into one "-".
//
// The result may start or end with "-" when the input does (after trimming
// whitespace), matching the collapse rule applied to the edges.
func Slugify(text string) string {
	text = norm.NFKC.String(text)

	var kept strings.Builder
	kept.Grow(len(text))
	for _, r := range text {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || r == '-' || unicode.IsSpace(r) {
			kept.WriteRune(r)
		}
	}
	cleaned := strings.ToLower(strings.TrimSpace(kept.String()))

	var out strings.Builder
	out.Grow(len(cleaned))
	inSeparator := false
	for _, r := range cleaned {
		if r == '_' || r == '-' || unicode.IsSpace(r) {
			if !inSeparator {
				out.WriteByte('-')
				inSeparator = true
			}
			continue
		}
		inSeparator = false
		out.WriteRune(r)
	}
	return out.String()
}
