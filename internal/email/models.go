// Package email relays messages through SMTP presets, optionally attaching a
// file uploaded earlier and held in a short-lived temporary area.
package email

import "time"

// CustomProvider selects a caller-supplied SMTP host and port.
const CustomProvider = "custom"

// Provider is an SMTP endpoint plus the credentials used to log in.
type Provider struct {
	Name     string
	Host     string
	Port     int
	Username string
	Password string
}

// Configured reports whether server-side credentials are present.
func (p Provider) Configured() bool {
	return p.Username != "" && p.Password != ""
}

// ProviderInfo is the public view of a preset. Credentials never leave the server.
type ProviderInfo struct {
	Name       string `json:"name"`
	Host       string `json:"host"`
	Port       int    `json:"port"`
	Configured bool   `json:"configured"`
}

// RelayConfig summarizes which presets are usable.
type RelayConfig struct {
	HasAnyProvider bool           `json:"hasAnyProvider"`
	Providers      []ProviderInfo `json:"providers"`
}

// TempFile is the metadata of an uploaded attachment. The bytes live on disk at Path.
type TempFile struct {
	ID        string    `json:"id"`
	Filename  string    `json:"filename"`
	Size      int64     `json:"size"`
	Path      string    `json:"path"`
	CreatedAt time.Time `json:"createdAt"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// Expired reports whether the file has outlived its retention window at now.
func (f *TempFile) Expired(now time.Time) bool {
	return !now.Before(f.ExpiresAt)
}

// SendCommand carries one send request after transport decoding.
type SendCommand struct {
	Provider string
	To       string
	Subject  string
	Body     string
	FileID   string
	Filename string
	FromName string

	// Optional per-request SMTP overrides.
	Username string
	Password string
	Host     string
	Port     int
}

// Envelope is a fully resolved message ready for the SMTP sender.
type Envelope struct {
	Server         Provider
	FromName       string
	To             string
	Subject        string
	Body           string
	AttachmentPath string
	AttachmentName string
}
