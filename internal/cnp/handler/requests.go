package handler

import (
	"strings"
	"time"

	"normalro/internal/cnp"
	dErrors "normalro/pkg/domain-errors"
)

// GenerateRequest is the HTTP request body for POST /api/tools/cnp-generator.
// Every field is optional.
type GenerateRequest struct {
	Gender     string `json:"gender"`
	BirthDate  string `json:"birthDate"`
	RegionCode string `json:"regionCode"`
	// CountyCode is the older name for RegionCode.
	CountyCode string `json:"countyCode"`

	parsedBirthDate time.Time
}

func (r *GenerateRequest) Normalize() {
	r.Gender = strings.TrimSpace(r.Gender)
	r.BirthDate = strings.TrimSpace(r.BirthDate)
	r.RegionCode = strings.TrimSpace(r.RegionCode)
	r.CountyCode = strings.TrimSpace(r.CountyCode)
	if r.RegionCode == "" {
		r.RegionCode = r.CountyCode
	}
}

// Validate parses the birth date. Gender and region are checked by the generator.
func (r *GenerateRequest) Validate() error {
	if len(r.Gender) > 16 {
		return dErrors.New(dErrors.CodeInvalidGender, "gender must be male or female")
	}
	if len(r.RegionCode) > 2 {
		return dErrors.New(dErrors.CodeInvalidRegion, "region code must be two digits")
	}
	if r.BirthDate == "" {
		return nil
	}
	parsed, err := time.Parse(cnp.DateLayout, r.BirthDate)
	if err != nil {
		return dErrors.New(dErrors.CodeInvalidBirthDate, "birthDate must be YYYY-MM-DD")
	}
	if parsed.Year() < cnp.MinYear || parsed.Year() > cnp.MaxYear {
		return dErrors.New(dErrors.CodeInvalidBirthDate, "birth year must be between 1800 and 2099")
	}
	r.parsedBirthDate = parsed
	return nil
}

// toDomain maps the validated request onto the generator input.
func (r *GenerateRequest) toDomain() cnp.GenerateRequest {
	return cnp.GenerateRequest{
		Gender:     r.Gender,
		BirthDate:  r.parsedBirthDate,
		RegionCode: r.RegionCode,
	}
}

func (r *GenerateRequest) defaulted() bool {
	return r.Gender == "" || r.BirthDate == "" || r.RegionCode == ""
}

// ValidateRequest is the HTTP request body for POST /api/tools/cnp-validator.
type ValidateRequest struct {
	CNP string `json:"cnp"`
}

func (r *ValidateRequest) Normalize() {
	r.CNP = strings.TrimSpace(r.CNP)
}

func (r *ValidateRequest) Validate() error {
	if r.CNP == "" {
		return dErrors.New(dErrors.CodeIdentifierMissing, "cnp is required")
	}
	return nil
}
