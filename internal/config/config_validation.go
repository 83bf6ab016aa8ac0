// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"
)

const (
	defaultHTTPAddress           = ":3000"
	defaultTokenIssuer           = "messagely"
	defaultTokenDuration         = time.Hour
	defaultBcryptCost            = 12
	defaultLogLevel              = "info"
	defaultVersion               = "1.0.0"
	defaultDriver                = DriverPostgres
	defaultRequestTimeout        = 30 * time.Second
	defaultTwilioBaseURL         = "https://api.twilio.com"
	defaultNotifierTimeout       = 10 * time.Second
	defaultNotificationQueueSize = 100
	defaultNotificationWorkers   = 2
)

// defaults returns the values used for every field no source has set.
func defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:   defaultTokenIssuer,
			TokenDuration: defaultTokenDuration,
			BcryptCost:    defaultBcryptCost,
			LogLevel:      defaultLogLevel,
			Version:       defaultVersion,
		},
		Storage: Storage{
			DB: DB{
				Driver: defaultDriver,
			},
		},
		Server: Server{
			HTTPAddress:    defaultHTTPAddress,
			RequestTimeout: defaultRequestTimeout,
		},
		Notifier: Notifier{
			TwilioBaseURL: defaultTwilioBaseURL,
			Timeout:       defaultNotifierTimeout,
		},
		Workers: Workers{
			NotificationQueueSize: defaultNotificationQueueSize,
			NotificationWorkers:   defaultNotificationWorkers,
		},
	}
}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.TokenSignKey == "" || cfg.App.TokenDuration <= 0 {
		return fmt.Errorf("%w: token sign key and positive token duration are required", ErrInvalidAppConfigs)
	}

	if cfg.App.BcryptCost < bcrypt.MinCost || cfg.App.BcryptCost > bcrypt.MaxCost {
		return fmt.Errorf("%w: bcrypt cost %d is out of range", ErrInvalidAppConfigs, cfg.App.BcryptCost)
	}

	switch cfg.Storage.DB.Driver {
	case DriverPostgres, DriverSQLite:
	default:
		return fmt.Errorf("%w: unsupported driver %q", ErrInvalidStorageConfigs, cfg.Storage.DB.Driver)
	}

	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: empty DSN", ErrInvalidStorageConfigs)
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.Notifier.IsSMSEnabled() &&
		(cfg.Notifier.TwilioAuthToken == "" || cfg.Notifier.TwilioMessagingServiceSID == "") {
		return fmt.Errorf("%w: twilio auth token and messaging service sid are required", ErrInvalidNotifierConfigs)
	}

	if cfg.Workers.NotificationQueueSize < 1 || cfg.Workers.NotificationWorkers < 1 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
