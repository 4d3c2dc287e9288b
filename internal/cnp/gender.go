package cnp

import "strings"

// Gender is the decoded sex of the holder.
type Gender string

const (
	GenderMale    Gender = "male"
	GenderFemale  Gender = "female"
	GenderUnknown Gender = "unknown"
)

// ParseGender accepts "male" or "female" after trimming and lower-casing.
// Unknown is a decode-only value and is not accepted here.
func ParseGender(raw string) (Gender, bool) {
	switch Gender(strings.ToLower(strings.TrimSpace(raw))) {
	case GenderMale:
		return GenderMale, true
	case GenderFemale:
		return GenderFemale, true
	default:
		return "", false
	}
}

// GenderCode is the leading digit of an identifier. It encodes both sex and
// birth century.
type GenderCode int

// Gender reports the sex encoded by the code: 9 is unknown, odd codes are
// male and even codes female.
func (c GenderCode) Gender() Gender {
	switch {
	case c == 9:
		return GenderUnknown
	case c%2 == 1:
		return GenderMale
	default:
		return GenderFemale
	}
}

// Century returns the first year of the century the code places the birth
// date in. Codes 7, 8 and 9 fall into the 2000s bucket.
func (c GenderCode) Century() int {
	switch c {
	case 1, 2:
		return 1900
	case 3, 4:
		return 1800
	default:
		return 2000
	}
}

// Reserved reports codes 7 and 8. They are accepted on decode but never
// generated.
func (c GenderCode) Reserved() bool {
	return c == 7 || c == 8
}

// genderCodeFor picks the code for a sex and a birth year in [MinYear, MaxYear].
func genderCodeFor(g Gender, year int) GenderCode {
	var base GenderCode
	switch {
	case year < 1900:
		base = 3
	case year < 2000:
		base = 1
	default:
		base = 5
	}
	if g == GenderFemale {
		return base + 1
	}
	return base
}
