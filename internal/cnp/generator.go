package cnp

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"time"
)

// Source is the randomness the generator draws from. IntN returns a value in
// [0, n). *rand.Rand from math/rand/v2 satisfies it.
type Source interface {
	IntN(n int) int
}

// Clock returns the current time; only its calendar date is used.
type Clock func() time.Time

// globalSource uses the math/rand/v2 top-level functions, which are safe for
// concurrent use.
type globalSource struct{}

func (globalSource) IntN(n int) int { return rand.IntN(n) }

// randomDateStart is the lower bound for defaulted birth dates.
var randomDateStart = time.Date(1970, time.January, 1, 0, 0, 0, 0, time.UTC)

// GenerateRequest holds the optional inputs. Zero values mean "pick at random".
type GenerateRequest struct {
	Gender     string
	BirthDate  time.Time
	RegionCode string
}

// Generator builds identifiers. It is safe for concurrent use when its
// Source is.
type Generator struct {
	source Source
	clock  Clock
}

// Option configures a Generator.
type Option func(*Generator)

// WithSource replaces the default random source (tests use a seeded PCG).
func WithSource(s Source) Option {
	return func(g *Generator) {
		if s != nil {
			g.source = s
		}
	}
}

// WithClock sets the clock that bounds randomly chosen birth dates.
func WithClock(c Clock) Option {
	return func(g *Generator) {
		if c != nil {
			g.clock = c
		}
	}
}

func NewGenerator(opts ...Option) *Generator {
	g := &Generator{source: globalSource{}, clock: time.Now}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate returns a new identifier. Missing inputs are drawn uniformly at
// random: a birth date in [1970-01-01, today], a sex, a region and always the
// serial. It fails with invalid_gender, invalid_region or invalid_birth_date.
func (g *Generator) Generate(req GenerateRequest) (Record, error) {
	return g.GenerateAt(req, g.clock())
}

// GenerateAt is Generate with an explicit "today", used by handlers so one
// request sees one clock reading.
func (g *Generator) GenerateAt(req GenerateRequest, now time.Time) (Record, error) {
	birth := req.BirthDate
	if birth.IsZero() {
		birth = g.randomBirthDate(now)
	} else {
		birth = dateOnly(birth)
	}

	var gender Gender
	if strings.TrimSpace(req.Gender) == "" {
		gender = []Gender{GenderMale, GenderFemale}[g.source.IntN(2)]
	} else {
		parsed, ok := ParseGender(req.Gender)
		if !ok {
			return Record{}, errInvalidGender
		}
		gender = parsed
	}

	region := strings.TrimSpace(req.RegionCode)
	if region == "" {
		region = regionCodes[g.source.IntN(len(regionCodes))]
	}
	regionName, ok := LookupRegion(region)
	if !ok {
		return Record{}, errInvalidRegion
	}

	year := birth.Year()
	if year < MinYear || year > MaxYear {
		return Record{}, errInvalidBirthDate
	}
	code := genderCodeFor(gender, year)

	serial := fmt.Sprintf("%03d", g.source.IntN(999)+1)
	prefix := fmt.Sprintf("%d%02d%02d%02d%s%s", code, year%100, int(birth.Month()), birth.Day(), region, serial)
	check := checksumOf(prefix)

	return Record{
		Identifier: fmt.Sprintf("%s%d", prefix, check),
		GenderCode: code,
		Gender:     gender,
		BirthDate:  birth,
		RegionCode: region,
		RegionName: regionName,
		Serial:     serial,
		CheckDigit: check,
	}, nil
}

func (g *Generator) randomBirthDate(now time.Time) time.Time {
	today := dateOnly(now)
	if today.Before(randomDateStart) {
		return randomDateStart
	}
	days := int(today.Sub(randomDateStart).Hours() / 24)
	return randomDateStart.AddDate(0, 0, g.source.IntN(days+1))
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
