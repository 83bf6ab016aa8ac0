// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"CONFIG": "/path/to/config.json",

		"APP_TOKEN_SIGN_KEY": "jwt_secret",
		"APP_TOKEN_ISSUER":   "test_issuer",
		"APP_TOKEN_DURATION": "1h",
		"APP_BCRYPT_COST":    "10",
		"APP_LOG_LEVEL":      "debug",
		"APP_VERSION":        "2.0.0",

		"SERVER_ADDRESS":         "localhost:8080",
		"SERVER_REQUEST_TIMEOUT": "30s",

		"STORAGE_DB_DRIVER":       "sqlite3",
		"STORAGE_DB_DATABASE_URI": "messagely.db",

		"NOTIFIER_TWILIO_ACCOUNT_SID":           "AC123",
		"NOTIFIER_TWILIO_AUTH_TOKEN":            "auth",
		"NOTIFIER_TWILIO_MESSAGING_SERVICE_SID": "MG123",
		"NOTIFIER_ALLOWED_PHONES":               "+15550001,+15550002",
		"NOTIFIER_TIMEOUT":                      "5s",

		"WORKERS_NOTIFICATION_QUEUE_SIZE": "50",
		"WORKERS_NOTIFICATION_WORKERS":    "4",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)

	assert.Equal(t, "jwt_secret", cfg.App.TokenSignKey)
	assert.Equal(t, "test_issuer", cfg.App.TokenIssuer)
	assert.Equal(t, time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, 10, cfg.App.BcryptCost)
	assert.Equal(t, "debug", cfg.App.LogLevel)
	assert.Equal(t, "2.0.0", cfg.App.Version)

	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)

	assert.Equal(t, DriverSQLite, cfg.Storage.DB.Driver)
	assert.Equal(t, "messagely.db", cfg.Storage.DB.DSN)

	assert.Equal(t, "AC123", cfg.Notifier.TwilioAccountSID)
	assert.Equal(t, "auth", cfg.Notifier.TwilioAuthToken)
	assert.Equal(t, "MG123", cfg.Notifier.TwilioMessagingServiceSID)
	assert.Equal(t, []string{"+15550001", "+15550002"}, cfg.Notifier.AllowedPhones)
	assert.Equal(t, 5*time.Second, cfg.Notifier.Timeout)
	assert.True(t, cfg.Notifier.IsSMSEnabled())

	assert.Equal(t, 50, cfg.Workers.NotificationQueueSize)
	assert.Equal(t, 4, cfg.Workers.NotificationWorkers)
}

func TestParseEnv_PartialFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"APP_TOKEN_SIGN_KEY": "jwt_secret",
		"SERVER_ADDRESS":     "localhost:8080",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "jwt_secret", cfg.App.TokenSignKey)
	assert.Empty(t, cfg.App.TokenIssuer)
	assert.Zero(t, cfg.App.TokenDuration)

	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Zero(t, cfg.Server.RequestTimeout)

	assert.Empty(t, cfg.Storage.DB.DSN)
	assert.False(t, cfg.Notifier.IsSMSEnabled())
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseEnv_EmptyEnv(t *testing.T) {
	// Arrange
	clearEnvVars(t)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "", cfg.JSONFilePath)
	assert.Equal(t, App{}, cfg.App)
	assert.Equal(t, Server{}, cfg.Server)
	assert.Equal(t, Storage{}, cfg.Storage)
	assert.Equal(t, Workers{}, cfg.Workers)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"APP_TOKEN_DURATION": "invalid_duration",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.Error(t, err)
	assert.Contains(t, err.Error(), "env")
}

func TestParseEnv_InvalidInteger(t *testing.T) {
	// Arrange
	setEnvVars(t, map[string]string{
		"APP_BCRYPT_COST": "twelve",
	})

	// Act
	err := parseEnv(&StructuredConfig{})

	// Assert
	require.Error(t, err)
}

func TestParseEnv_DurationFormats(t *testing.T) {
	tests := []struct {
		name     string
		envValue string
		expected time.Duration
	}{
		{"hours", "2h", 2 * time.Hour},
		{"minutes", "45m", 45 * time.Minute},
		{"seconds", "30s", 30 * time.Second},
		{"combined", "1h30m", 90 * time.Minute},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			envVars := map[string]string{
				"SERVER_REQUEST_TIMEOUT": tt.envValue,
			}
			setEnvVars(t, envVars)

			// Act
			cfg := &StructuredConfig{}
			err := parseEnv(cfg)

			// Assert
			require.NoError(t, err)
			assert.Equal(t, tt.expected, cfg.Server.RequestTimeout)
		})
	}
}

// Helpers

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	clearEnvVars(t)
	for k, v := range vars {
		require.NoError(t, os.Setenv(k, v))
		t.Cleanup(func() { _ = os.Unsetenv(k) })
	}
}

func clearEnvVars(t *testing.T) {
	t.Helper()
	keys := []string{
		"CONFIG",

		"APP_TOKEN_SIGN_KEY",
		"APP_TOKEN_ISSUER",
		"APP_TOKEN_DURATION",
		"APP_BCRYPT_COST",
		"APP_LOG_LEVEL",
		"APP_VERSION",

		"SERVER_ADDRESS",
		"SERVER_REQUEST_TIMEOUT",

		"STORAGE_DB_DRIVER",
		"STORAGE_DB_DATABASE_URI",

		"NOTIFIER_TWILIO_ACCOUNT_SID",
		"NOTIFIER_TWILIO_AUTH_TOKEN",
		"NOTIFIER_TWILIO_MESSAGING_SERVICE_SID",
		"NOTIFIER_TWILIO_BASE_URL",
		"NOTIFIER_ALLOWED_PHONES",
		"NOTIFIER_TIMEOUT",

		"WORKERS_NOTIFICATION_QUEUE_SIZE",
		"WORKERS_NOTIFICATION_WORKERS",
	}
	for _, k := range keys {
		_ = os.Unsetenv(k)
	}
}

func TestParseEnv_AllowedPhonesTrimmed(t *testing.T) {
	setEnvVars(t, map[string]string{
		"NOTIFIER_ALLOWED_PHONES": "+15550001, +15550002,,",
	})

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, []string{"+15550001", "+15550002"}, cfg.Notifier.AllowedPhones)
}
