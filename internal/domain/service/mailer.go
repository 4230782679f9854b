package service

import "context"

// VerificationMail is everything needed to send an email-verification message.
type VerificationMail struct {
	To                string `json:"to"`
	VerificationToken string `json:"verificationToken"`
}

// Mailer delivers a verification message synchronously.
type Mailer interface {
	SendVerification(ctx context.Context, mail VerificationMail) error
}

// MailDispatcher hands a message off for delivery without waiting for it.
// A returned error means the hand-off failed; delivery failures are only logged.
type MailDispatcher interface {
	DispatchVerification(ctx context.Context, mail VerificationMail) error
	Close() error
}
