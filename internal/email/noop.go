package email

import "scholar_backend/internal/logger"

// NoopProvider logs instead of sending. Used when SMTP is not
// configured so the reminder worker can run everywhere.
type NoopProvider struct{}

func (p *NoopProvider) Validate() error {
	return nil
}

func (p *NoopProvider) Send(msg *Message) error {
	logger.Info("email suppressed (no SMTP configured)",
		"to", msg.To,
		"subject", msg.Subject,
	)
	return nil
}
