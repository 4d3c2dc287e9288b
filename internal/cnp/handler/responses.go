package handler

import (
	"strconv"

	"normalro/internal/cnp"
)

// RecordResponse is returned by both the generator and the validator.
type RecordResponse struct {
	Identifier string          `json:"identifier"`
	Details    DetailsResponse `json:"details"`
}

type DetailsResponse struct {
	Gender     string `json:"gender"`
	BirthDate  string `json:"birthDate"`
	RegionCode string `json:"regionCode"`
	RegionName string `json:"regionName"`
	Serial     string `json:"serial"`
	CheckDigit string `json:"checkDigit"`
}

// FromRecord converts a codec record to its HTTP shape.
func FromRecord(rec cnp.Record) *RecordResponse {
	return &RecordResponse{
		Identifier: rec.Identifier,
		Details: DetailsResponse{
			Gender:     string(rec.Gender),
			BirthDate:  rec.BirthDateString(),
			RegionCode: rec.RegionCode,
			RegionName: rec.RegionName,
			Serial:     rec.Serial,
			CheckDigit: strconv.Itoa(rec.CheckDigit),
		},
	}
}
