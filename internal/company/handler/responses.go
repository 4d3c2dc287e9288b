package handler

import "normalro/internal/company"

// LookupResponse wraps a found company.
type LookupResponse struct {
	Success bool             `json:"success"`
	Data    *company.Company `json:"data"`
}
