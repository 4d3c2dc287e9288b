package handler

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"strconv"
	"strings"

	"normalro/internal/email"
	dErrors "normalro/pkg/domain-errors"
)

// UploadRequest is the body for POST /api/email/upload-temp-file. FileBase64
// may carry a data URL prefix such as "data:application/pdf;base64,".
type UploadRequest struct {
	FileBase64 string `json:"fileBase64"`
	Filename   string `json:"filename"`

	data []byte
}

func (r *UploadRequest) Normalize() {
	r.FileBase64 = strings.TrimSpace(r.FileBase64)
	if strings.HasPrefix(r.FileBase64, "data:") {
		if idx := strings.Index(r.FileBase64, ","); idx != -1 {
			r.FileBase64 = r.FileBase64[idx+1:]
		}
	}
	r.Filename = strings.TrimSpace(r.Filename)
}

func (r *UploadRequest) Validate() error {
	if r.FileBase64 == "" {
		return dErrors.New(dErrors.CodeFileRequired, "fileBase64 is required")
	}
	data, err := base64.StdEncoding.DecodeString(stripWhitespace(r.FileBase64))
	if err != nil {
		return dErrors.Wrap(err, dErrors.CodeInvalidFile, "fileBase64 is not valid base64")
	}
	if len(data) == 0 {
		return dErrors.New(dErrors.CodeFileRequired, "file is empty")
	}
	r.data = data
	return nil
}

func stripWhitespace(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\n', '\r', '\t':
			return -1
		}
		return r
	}, s)
}

// SendRequest is the body for POST /api/email/send. Port accepts a number or
// a numeric string.
type SendRequest struct {
	Provider string          `json:"provider"`
	To       string          `json:"to"`
	Subject  string          `json:"subject"`
	Body     string          `json:"body"`
	FileID   string          `json:"fileId"`
	Filename string          `json:"filename"`
	FromName string          `json:"fromName"`
	Username string          `json:"username"`
	Password string          `json:"password"`
	Host     string          `json:"host"`
	Port     json.RawMessage `json:"port"`

	port int
}

func (r *SendRequest) Normalize() {
	r.Provider = strings.ToLower(strings.TrimSpace(r.Provider))
	r.To = strings.TrimSpace(r.To)
	r.FileID = strings.TrimSpace(r.FileID)
	r.Filename = strings.TrimSpace(r.Filename)
	r.FromName = strings.TrimSpace(r.FromName)
	r.Username = strings.TrimSpace(r.Username)
	r.Host = strings.TrimSpace(r.Host)
}

func (r *SendRequest) Validate() error {
	if r.Provider == "" {
		return dErrors.New(dErrors.CodeInvalidProvider, "provider is required")
	}
	port, err := parsePort(r.Port)
	if err != nil {
		return err
	}
	r.port = port
	return nil
}

func (r *SendRequest) toCommand() email.SendCommand {
	return email.SendCommand{
		Provider: r.Provider,
		To:       r.To,
		Subject:  r.Subject,
		Body:     r.Body,
		FileID:   r.FileID,
		Filename: r.Filename,
		FromName: r.FromName,
		Username: r.Username,
		Password: r.Password,
		Host:     r.Host,
		Port:     r.port,
	}
}

func parsePort(raw json.RawMessage) (int, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return 0, nil
	}
	invalid := dErrors.New(dErrors.CodeInvalidProvider, "port must be a number between 1 and 65535")

	var text string
	if err := json.Unmarshal(raw, &text); err == nil {
		text = strings.TrimSpace(text)
		if text == "" {
			return 0, nil
		}
		raw = []byte(text)
	}
	port, err := strconv.Atoi(string(raw))
	if err != nil || port < 1 || port > 65535 {
		return 0, invalid
	}
	return port, nil
}
