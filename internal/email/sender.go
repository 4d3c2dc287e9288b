package email

import (
	"context"
	"fmt"
	"time"

	"github.com/wneessen/go-mail"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"normalro/internal/platform/tracing"
	pkgemail "normalro/pkg/email"
)

const implicitTLSPort = 465

// SMTPSender delivers envelopes with one SMTP session per message.
type SMTPSender struct {
	timeout time.Duration
	dial    mail.DialContextFunc
}

// SenderOption configures an SMTPSender.
type SenderOption func(*SMTPSender)

// WithDialer overrides how connections are opened, for tests.
func WithDialer(dial mail.DialContextFunc) SenderOption {
	return func(s *SMTPSender) {
		s.dial = dial
	}
}

// NewSMTPSender builds a sender whose connections time out after timeout.
func NewSMTPSender(timeout time.Duration, opts ...SenderOption) *SMTPSender {
	s := &SMTPSender{timeout: timeout}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Send dials the envelope's server, authenticates and delivers the message.
func (s *SMTPSender) Send(ctx context.Context, env Envelope) error {
	ctx, span := tracing.Tracer().Start(ctx, "smtp.send",
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("smtp.provider", env.Server.Name),
			attribute.String("smtp.host", env.Server.Host),
			attribute.Int("smtp.port", env.Server.Port),
			attribute.Bool("smtp.attachment", env.AttachmentPath != ""),
		),
	)
	defer span.End()

	msg, err := BuildMessage(env)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "build message")
		return err
	}

	client, err := mail.NewClient(env.Server.Host, s.clientOptions(env.Server)...)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "configure client")
		return fmt.Errorf("configure smtp client: %w", err)
	}
	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "send")
		return fmt.Errorf("smtp send via %s: %w", env.Server.Name, err)
	}
	span.SetStatus(codes.Ok, "")
	return nil
}

func (s *SMTPSender) clientOptions(server Provider) []mail.Option {
	opts := []mail.Option{
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(server.Username),
		mail.WithPassword(server.Password),
	}
	if s.timeout > 0 {
		opts = append(opts, mail.WithTimeout(s.timeout))
	}
	if server.Port == implicitTLSPort {
		opts = append(opts, mail.WithSSLPort(false))
	} else {
		opts = append(opts, mail.WithTLSPortPolicy(mail.TLSMandatory))
	}
	opts = append(opts, mail.WithPort(server.Port))
	if s.dial != nil {
		opts = append(opts, mail.WithDialContextFunc(s.dial))
	}
	return opts
}

// BuildMessage renders env as a plain-text message from the login address.
// Without an explicit sender name one is derived from the address.
func BuildMessage(env Envelope) (*mail.Msg, error) {
	msg := mail.NewMsg()

	fromName := env.FromName
	if fromName == "" {
		fromName = pkgemail.DisplayNameFromAddress(env.Server.Username)
	}
	if err := msg.FromFormat(fromName, env.Server.Username); err != nil {
		return nil, fmt.Errorf("set sender: %w", err)
	}
	if err := msg.To(env.To); err != nil {
		return nil, fmt.Errorf("set recipient: %w", err)
	}
	msg.Subject(env.Subject)
	msg.SetDate()
	msg.SetMessageID()
	msg.SetBodyString(mail.TypeTextPlain, env.Body)

	if env.AttachmentPath != "" {
		msg.AttachFile(env.AttachmentPath, mail.WithFileName(env.AttachmentName))
	}
	return msg, nil
}
