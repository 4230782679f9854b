// Package mail sends and dispatches account verification messages.
package mail

import (
	"context"
	"log/slog"
	"sync"

	"contactbook/config"
	"contactbook/internal/domain/service"

	"github.com/pkg/errors"
	gomail "github.com/wneessen/go-mail"
)

// smtpSender is the part of *gomail.Client the mailer needs.
type smtpSender interface {
	DialAndSendWithContext(ctx context.Context, messages ...*gomail.Msg) error
}

type smtpMailer struct {
	mu      sync.Mutex
	sender  smtpSender
	from    string
	baseURL string
	logger  *slog.Logger
}

// NewSMTPMailer creates a service.Mailer delivering through the configured SMTP server.
func NewSMTPMailer(cfg *config.MailConfig, logger *slog.Logger) (service.Mailer, error) {
	opts := []gomail.Option{
		gomail.WithTLSPortPolicy(gomail.TLSOpportunistic),
	}
	if cfg.Port != 0 {
		opts = append(opts, gomail.WithPort(cfg.Port))
	}
	if cfg.Username != "" {
		opts = append(opts,
			gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
			gomail.WithUsername(cfg.Username),
			gomail.WithPassword(cfg.Password),
		)
	}

	client, err := gomail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create SMTP client")
	}

	return newSMTPMailer(client, cfg, logger), nil
}

func newSMTPMailer(sender smtpSender, cfg *config.MailConfig, logger *slog.Logger) *smtpMailer {
	from := cfg.From
	if from == "" {
		from = cfg.Username
	}

	return &smtpMailer{
		sender:  sender,
		from:    from,
		baseURL: cfg.BaseURL,
		logger:  logger,
	}
}

// SendVerification renders and sends the verification message for mail.
func (m *smtpMailer) SendVerification(ctx context.Context, mail service.VerificationMail) error {
	msg, err := m.buildVerification(mail)
	if err != nil {
		return err
	}

	// One SMTP session at a time per client.
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.sender.DialAndSendWithContext(ctx, msg); err != nil {
		return errors.Wrapf(err, "send verification mail to %s", mail.To)
	}

	m.logger.DebugContext(ctx, "Verification mail sent", slog.String("to", mail.To))

	return nil
}

func (m *smtpMailer) buildVerification(mail service.VerificationMail) (*gomail.Msg, error) {
	body, err := renderVerification(VerificationLink(m.baseURL, mail.VerificationToken))
	if err != nil {
		return nil, err
	}

	msg := gomail.NewMsg()
	if err := msg.From(m.from); err != nil {
		return nil, errors.Wrap(err, "invalid sender address")
	}
	if err := msg.To(mail.To); err != nil {
		return nil, errors.Wrap(err, "invalid recipient address")
	}
	msg.Subject(VerificationSubject)
	msg.SetBodyString(gomail.TypeTextHTML, body)

	return msg, nil
}

// logMailer stands in when no SMTP host is configured and only logs the link.
type logMailer struct {
	baseURL string
	logger  *slog.Logger
}

func (m *logMailer) SendVerification(ctx context.Context, mail service.VerificationMail) error {
	m.logger.InfoContext(ctx, "SMTP not configured, verification mail not sent",
		slog.String("to", mail.To),
		slog.String("link", VerificationLink(m.baseURL, mail.VerificationToken)),
	)

	return nil
}
