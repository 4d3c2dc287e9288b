package email

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"

	"normalro/internal/email/metrics"
	dErrors "normalro/pkg/domain-errors"
	pkgemail "normalro/pkg/email"
	"normalro/pkg/platform/sentinel"
	"normalro/pkg/requestcontext"
)

const (
	defaultTempTTL      = time.Hour
	defaultMaxFileBytes = 10 << 20
	maxFilenameRunes    = 255
	fallbackFilename    = "attachment"
)

// FileStore keeps temp file metadata. Get and Delete return
// sentinel.ErrNotFound for unknown or expired IDs.
type FileStore interface {
	Save(ctx context.Context, file *TempFile) error
	Get(ctx context.Context, id string) (*TempFile, error)
	Delete(ctx context.Context, id string) error
}

// Purger is implemented by stores that need explicit expiry sweeps.
type Purger interface {
	Purge(ctx context.Context, now time.Time) int
}

// Sender delivers a resolved envelope.
type Sender interface {
	Send(ctx context.Context, env Envelope) error
}

// Service coordinates uploads, sends and cleanup of temporary attachments.
type Service struct {
	providers    *Providers
	files        FileStore
	disk         *DiskStorage
	sender       Sender
	logger       *slog.Logger
	metrics      *metrics.Metrics
	tempTTL      time.Duration
	maxFileBytes int64
}

// Option configures a Service.
type Option func(*Service)

// WithMetrics attaches relay metrics.
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

// WithTempTTL sets how long uploaded files are kept.
func WithTempTTL(ttl time.Duration) Option {
	return func(s *Service) {
		if ttl > 0 {
			s.tempTTL = ttl
		}
	}
}

// WithMaxFileBytes caps the decoded size of an upload.
func WithMaxFileBytes(n int64) Option {
	return func(s *Service) {
		if n > 0 {
			s.maxFileBytes = n
		}
	}
}

// NewService builds the relay service.
func NewService(providers *Providers, files FileStore, disk *DiskStorage, sender Sender, logger *slog.Logger, opts ...Option) *Service {
	s := &Service{
		providers:    providers,
		files:        files,
		disk:         disk,
		sender:       sender,
		logger:       logger,
		tempTTL:      defaultTempTTL,
		maxFileBytes: defaultMaxFileBytes,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Config reports the presets and whether any has server-side credentials.
func (s *Service) Config(_ context.Context) RelayConfig {
	return s.providers.Config()
}

// MaxFileBytes is the upload size limit.
func (s *Service) MaxFileBytes() int64 {
	return s.maxFileBytes
}

// Upload stores data as a temporary attachment.
func (s *Service) Upload(ctx context.Context, filename string, data []byte) (*TempFile, error) {
	if len(data) == 0 {
		return nil, dErrors.New(dErrors.CodeFileRequired, "file content is required")
	}
	if int64(len(data)) > s.maxFileBytes {
		return nil, dErrors.New(dErrors.CodeFileTooLarge, fmt.Sprintf("file exceeds %d bytes", s.maxFileBytes))
	}

	now := requestcontext.Now(ctx)
	id := uuid.NewString()
	path, err := s.disk.Write(id, data)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to store file")
	}

	file := &TempFile{
		ID:        id,
		Filename:  SanitizeFilename(filename),
		Size:      int64(len(data)),
		Path:      path,
		CreatedAt: now,
		ExpiresAt: now.Add(s.tempTTL),
	}
	if err := s.files.Save(ctx, file); err != nil {
		if rmErr := s.disk.Remove(path); rmErr != nil {
			s.logger.WarnContext(ctx, "failed to remove orphaned temp file",
				"request_id", requestcontext.RequestID(ctx),
				"file_id", id,
				"error", rmErr.Error(),
			)
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to record file")
	}

	s.metrics.ObserveUpload(file.Size)
	return file, nil
}

// Send validates cmd, resolves the provider and attachment, and delivers the
// message in a single attempt.
func (s *Service) Send(ctx context.Context, cmd SendCommand) error {
	to := strings.TrimSpace(cmd.To)
	if !pkgemail.ValidAddress(to) {
		return dErrors.New(dErrors.CodeInvalidRecipient, "recipient address is not valid")
	}
	subject := strings.TrimSpace(cmd.Subject)
	if subject == "" {
		return dErrors.New(dErrors.CodeSubjectRequired, "subject is required")
	}

	server, err := s.providers.Resolve(cmd)
	if err != nil {
		return err
	}

	env := Envelope{
		Server:   server,
		FromName: strings.TrimSpace(cmd.FromName),
		To:       to,
		Subject:  subject,
		Body:     cmd.Body,
	}

	if cmd.FileID != "" {
		file, err := s.lookupFile(ctx, cmd.FileID)
		if err != nil {
			return err
		}
		env.AttachmentPath = file.Path
		env.AttachmentName = file.Filename
		if name := strings.TrimSpace(cmd.Filename); name != "" {
			env.AttachmentName = SanitizeFilename(name)
		}
	}

	if err := s.sender.Send(ctx, env); err != nil {
		s.metrics.IncrementSend(server.Name, false)
		return dErrors.Wrap(err, dErrors.CodeEmailSendFailed, "the SMTP server rejected or did not accept the message")
	}
	s.metrics.IncrementSend(server.Name, true)
	return nil
}

// DeleteFile removes an uploaded attachment and its metadata.
func (s *Service) DeleteFile(ctx context.Context, id string) error {
	file, err := s.lookupFile(ctx, id)
	if err != nil {
		return err
	}
	if err := s.disk.Remove(file.Path); err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to remove file")
	}
	if err := s.files.Delete(ctx, id); err != nil && !errors.Is(err, sentinel.ErrNotFound) {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to remove file record")
	}
	s.metrics.AddRemoved("deleted", 1)
	return nil
}

// RemoveExpiredAt deletes attachments older than the retention window as of now.
// Exported for testability; the sweeper passes wall-clock time.
func (s *Service) RemoveExpiredAt(ctx context.Context, now time.Time) (int, error) {
	if purger, ok := s.files.(Purger); ok {
		purger.Purge(ctx, now)
	}
	removed, err := s.disk.RemoveOlderThan(now.Add(-s.tempTTL))
	s.metrics.AddRemoved("expired", removed)
	return removed, err
}

func (s *Service) lookupFile(ctx context.Context, id string) (*TempFile, error) {
	notFound := dErrors.New(dErrors.CodeFileNotFound, "file not found or expired")
	if _, err := uuid.Parse(id); err != nil {
		return nil, notFound
	}
	file, err := s.files.Get(ctx, id)
	if errors.Is(err, sentinel.ErrNotFound) {
		return nil, notFound
	}
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to read file record")
	}
	if file.Expired(requestcontext.Now(ctx)) {
		return nil, notFound
	}
	if _, err := os.Stat(file.Path); err != nil {
		return nil, notFound
	}
	return file, nil
}

// SanitizeFilename reduces a client-supplied name to a safe base name.
func SanitizeFilename(name string) string {
	name = strings.ReplaceAll(name, "\\", "/")
	name = filepath.Base(strings.TrimSpace(name))
	name = strings.Map(func(r rune) rune {
		if unicode.IsControl(r) || r == '"' {
			return -1
		}
		return r
	}, name)
	name = strings.TrimSpace(name)
	if name == "" || name == "." || name == "/" || name == ".." {
		return fallbackFilename
	}
	if runes := []rune(name); len(runes) > maxFilenameRunes {
		name = string(runes[len(runes)-maxFilenameRunes:])
	}
	return name
}
