package adapter

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/messagely/internal/config"
	"github.com/MKhiriev/messagely/internal/logger"
	"github.com/MKhiriev/messagely/internal/utils"
)

const twilioMessagesPath = "/2010-04-01/Accounts/{sid}/Messages.json"

type twilioSender struct {
	client *utils.HTTPClient

	accountSID          string
	messagingServiceSID string

	logger *logger.Logger
}

// twilioMessage is the part of the created message resource the sender logs.
type twilioMessage struct {
	SID    string `json:"sid"`
	Status string `json:"status"`
}

// NewTwilioSender constructs an [SMSSender] backed by the Twilio Messages API.
// Requests authenticate with the account SID and auth token and are bounded
// by cfg.Timeout.
//
// Returns ErrIncompleteConfig if any of the credentials is missing.
func NewTwilioSender(cfg config.Notifier, logger *logger.Logger) (SMSSender, error) {
	if cfg.TwilioAccountSID == "" || cfg.TwilioAuthToken == "" || cfg.TwilioMessagingServiceSID == "" {
		return nil, ErrIncompleteConfig
	}

	client := utils.NewHTTPClient(strings.TrimRight(cfg.TwilioBaseURL, "/"), cfg.Timeout)
	client.SetBasicAuth(cfg.TwilioAccountSID, cfg.TwilioAuthToken)

	return &twilioSender{
		client:              client,
		accountSID:          cfg.TwilioAccountSID,
		messagingServiceSID: cfg.TwilioMessagingServiceSID,
		logger:              logger,
	}, nil
}

// Send implements [SMSSender]. It POSTs a form with To, MessagingServiceSid
// and Body to the account's Messages resource.
func (s *twilioSender) Send(ctx context.Context, to, body string) error {
	if strings.TrimSpace(to) == "" {
		return ErrEmptyDestination
	}

	var created twilioMessage
	resp, err := s.client.R().
		SetContext(ctx).
		SetPathParam("sid", s.accountSID).
		SetFormData(map[string]string{
			"To":                  to,
			"MessagingServiceSid": s.messagingServiceSID,
			"Body":                body,
		}).
		SetResult(&created).
		SetError(&providerError{}).
		Post(twilioMessagesPath)
	if err != nil {
		return fmt.Errorf("send sms request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	logger.FromContext(ctx).Debug().
		Str("sid", created.SID).
		Str("status", created.Status).
		Msg("sms accepted by provider")
	return nil
}
