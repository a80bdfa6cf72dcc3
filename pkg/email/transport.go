package email

import (
	"fmt"

	"landing_backend/pkg/config"
)

// NewTransport picks the transport named by EMAIL_TRANSPORT.
func NewTransport(cfg config.EmailConfig) (Transport, error) {
	switch cfg.Transport {
	case config.TransportSMTP:
		return NewSMTPTransport(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword), nil
	case config.TransportResend:
		if cfg.ResendAPIKey == "" {
			return nil, fmt.Errorf("resend API key is required")
		}
		return NewResendTransport(cfg.ResendAPIKey), nil
	default:
		return nil, fmt.Errorf("unsupported email transport %q", cfg.Transport)
	}
}
