package notifications

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/wneessen/go-mail"
)

// SMTPConfig holds outbound mail settings
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	Timeout  time.Duration
	Retries  int
}

type mailSender interface {
	DialAndSendWithContext(ctx context.Context, messages ...*mail.Msg) error
}

// SMTPMailer delivers HTML email over SMTP
type SMTPMailer struct {
	client  mailSender
	from    string
	retries int
	backoff time.Duration
	log     zerolog.Logger
}

// NewSMTPMailer creates a mailer. With no host configured, mails are logged
// instead of sent.
func NewSMTPMailer(cfg SMTPConfig, log zerolog.Logger) (*SMTPMailer, error) {
	m := &SMTPMailer{
		from:    cfg.From,
		retries: cfg.Retries,
		backoff: 500 * time.Millisecond,
		log:     log.With().Str("component", "mail").Logger(),
	}
	if cfg.Host == "" {
		return m, nil
	}

	opts := []mail.Option{mail.WithTLSPortPolicy(mail.TLSMandatory)}
	if cfg.Port > 0 {
		opts = append(opts, mail.WithPort(cfg.Port))
	}
	if cfg.Timeout > 0 {
		opts = append(opts, mail.WithTimeout(cfg.Timeout))
	}
	if cfg.Username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(cfg.Username),
			mail.WithPassword(cfg.Password),
		)
	}
	client, err := mail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create smtp client: %w", err)
	}
	m.client = client
	return m, nil
}

// SendEmail sends an HTML message, retrying transient failures up to the
// configured number of times.
func (s *SMTPMailer) SendEmail(ctx context.Context, to, subject, body string) error {
	if s.client == nil {
		s.log.Info().Str("to", to).Str("subject", subject).Msg("mail transport not configured, message logged only")
		return nil
	}

	msg := mail.NewMsg()
	if err := msg.From(s.from); err != nil {
		return fmt.Errorf("invalid sender address: %w", err)
	}
	if err := msg.To(to); err != nil {
		return fmt.Errorf("invalid recipient address: %w", err)
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextHTML, body)

	var err error
	for attempt := 0; attempt <= s.retries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(s.backoff * time.Duration(attempt)):
			}
		}
		if err = s.client.DialAndSendWithContext(ctx, msg); err == nil {
			return nil
		}
		s.log.Warn().Err(err).Str("to", to).Int("attempt", attempt+1).Msg("mail delivery failed")
	}
	return fmt.Errorf("failed to send email: %w", err)
}
