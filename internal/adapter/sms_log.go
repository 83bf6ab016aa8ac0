package adapter

import (
	"context"

	"github.com/MKhiriev/messagely/internal/config"
	"github.com/MKhiriev/messagely/internal/logger"
)

type logSender struct {
	logger *logger.Logger
}

// NewLogSender returns an [SMSSender] that only logs the messages it is given.
func NewLogSender(logger *logger.Logger) SMSSender {
	return &logSender{logger: logger}
}

func (s *logSender) Send(ctx context.Context, to, body string) error {
	if to == "" {
		return ErrEmptyDestination
	}

	s.logger.Info().Str("to", to).Str("body", body).Msg("sms delivery disabled, message logged")
	return nil
}

// NewSMSSender picks the Twilio sender when credentials are configured and
// the logging sender otherwise.
func NewSMSSender(cfg config.Notifier, logger *logger.Logger) (SMSSender, error) {
	if !cfg.IsSMSEnabled() {
		logger.Warn().Msg("twilio is not configured, sms notifications are logged only")
		return NewLogSender(logger), nil
	}

	return NewTwilioSender(cfg, logger)
}
