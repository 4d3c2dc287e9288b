package cnp

import "time"

const (
	// MinYear and MaxYear bound the birth years an identifier can encode.
	MinYear = 1800
	MaxYear = 2099

	// Length is the number of digits in an identifier.
	Length = 13

	// DateLayout is the ISO calendar date format used for birth dates.
	DateLayout = "2006-01-02"
)

// Record is a decoded or freshly generated identifier together with its fields.
type Record struct {
	Identifier string
	GenderCode GenderCode
	Gender     Gender
	BirthDate  time.Time
	RegionCode string
	RegionName string
	Serial     string
	CheckDigit int
}

// BirthDateString formats BirthDate as YYYY-MM-DD.
func (r Record) BirthDateString() string {
	return r.BirthDate.Format(DateLayout)
}
