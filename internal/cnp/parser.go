package cnp

import (
	"strconv"
	"strings"
	"time"
)

// Parse validates a candidate identifier and decodes its fields. Surrounding
// whitespace is ignored. Every failure carries dErrors.CodeInvalidIdentifier;
// use ReasonOf for the specific check that failed.
func Parse(candidate string) (Record, error) {
	s := strings.TrimSpace(candidate)
	if len(s) != Length {
		return Record{}, invalidIdentifier(ReasonMalformed, "length "+strconv.Itoa(len(s)))
	}
	for i := 0; i < Length; i++ {
		if s[i] < '0' || s[i] > '9' {
			return Record{}, invalidIdentifier(ReasonMalformed, "non-digit at position "+strconv.Itoa(i))
		}
	}

	code := GenderCode(s[0] - '0')
	yy := atoi2(s[1:3])
	month := atoi2(s[3:5])
	day := atoi2(s[5:7])
	region := s[7:9]
	serial := s[9:12]
	check := int(s[12] - '0')

	if code < 1 || code > 9 {
		return Record{}, invalidIdentifier(ReasonGenderCode, "code "+s[:1])
	}

	year := code.Century() + yy
	birth := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if month < 1 || month > 12 || birth.Year() != year || int(birth.Month()) != month || birth.Day() != day {
		return Record{}, invalidIdentifier(ReasonBirthDate, s[1:7])
	}

	regionName, ok := LookupRegion(region)
	if !ok {
		return Record{}, invalidIdentifier(ReasonRegion, "code "+region)
	}

	if expected := checksumOf(s[:12]); expected != check {
		return Record{}, invalidIdentifier(ReasonChecksum, "expected "+strconv.Itoa(expected))
	}

	return Record{
		Identifier: s,
		GenderCode: code,
		Gender:     code.Gender(),
		BirthDate:  birth,
		RegionCode: region,
		RegionName: regionName,
		Serial:     serial,
		CheckDigit: check,
	}, nil
}

func atoi2(s string) int {
	return int(s[0]-'0')*10 + int(s[1]-'0')
}
