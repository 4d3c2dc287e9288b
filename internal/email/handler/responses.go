package handler

import "normalro/internal/email"

// UploadResponse identifies a stored attachment.
type UploadResponse struct {
	FileID   string `json:"fileId"`
	Filename string `json:"filename"`
	Size     int64  `json:"size"`
}

func toUploadResponse(f *email.TempFile) *UploadResponse {
	return &UploadResponse{
		FileID:   f.ID,
		Filename: f.Filename,
		Size:     f.Size,
	}
}

// SendResponse confirms a delivered message.
type SendResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// DeleteResponse confirms a removed attachment.
type DeleteResponse struct {
	Success bool `json:"success"`
}
