// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/messagely/internal/config"
	"github.com/MKhiriev/messagely/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testNotifierConfig(baseURL string) config.Notifier {
	return config.Notifier{
		TwilioAccountSID:          "AC123",
		TwilioAuthToken:           "token",
		TwilioMessagingServiceSID: "MG456",
		TwilioBaseURL:             baseURL,
		Timeout:                   2 * time.Second,
	}
}

// newTestSender creates a twilioSender pointed at the test server
func newTestSender(t *testing.T, serverURL string) SMSSender {
	t.Helper()

	s, err := NewTwilioSender(testNotifierConfig(serverURL), logger.Nop())
	require.NoError(t, err)
	return s
}

func TestTwilioSender_Send_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/2010-04-01/Accounts/AC123/Messages.json", r.URL.Path)

		user, pass, ok := r.BasicAuth()
		assert.True(t, ok)
		assert.Equal(t, "AC123", user)
		assert.Equal(t, "token", pass)

		assert.NoError(t, r.ParseForm())
		assert.Equal(t, "+15550001", r.PostForm.Get("To"))
		assert.Equal(t, "MG456", r.PostForm.Get("MessagingServiceSid"))
		assert.Equal(t, "hello", r.PostForm.Get("Body"))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"sid":"SM1","status":"queued"}`))
	}))
	defer srv.Close()

	err := newTestSender(t, srv.URL).Send(context.Background(), "+15550001", "hello")

	require.NoError(t, err)
}

func TestTwilioSender_Send_ErrorStatuses(t *testing.T) {
	tests := []struct {
		status  int
		wantErr error
	}{
		{status: http.StatusBadRequest, wantErr: ErrBadRequest},
		{status: http.StatusUnauthorized, wantErr: ErrUnauthorized},
		{status: http.StatusTooManyRequests, wantErr: ErrTooManyRequests},
		{status: http.StatusInternalServerError, wantErr: ErrInternalServerError},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(`{"code":21211,"message":"Invalid 'To' Phone Number","status":400}`))
			}))
			defer srv.Close()

			err := newTestSender(t, srv.URL).Send(context.Background(), "+1", "hello")

			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Contains(t, err.Error(), "Invalid 'To' Phone Number")
		})
	}
}

func TestTwilioSender_Send_UnexpectedStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	defer srv.Close()

	err := newTestSender(t, srv.URL).Send(context.Background(), "+1", "hello")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "http 418")
}

func TestTwilioSender_Send_EmptyDestination(t *testing.T) {
	err := newTestSender(t, "http://127.0.0.1:1").Send(context.Background(), " ", "hello")

	assert.ErrorIs(t, err, ErrEmptyDestination)
}

func TestTwilioSender_Send_CancelledContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := newTestSender(t, srv.URL).Send(ctx, "+1", "hello")

	assert.Error(t, err)
}

func TestNewTwilioSender_IncompleteConfig(t *testing.T) {
	cfg := testNotifierConfig("http://localhost")
	cfg.TwilioAuthToken = ""

	_, err := NewTwilioSender(cfg, logger.Nop())

	assert.ErrorIs(t, err, ErrIncompleteConfig)
}

func TestNewSMSSender(t *testing.T) {
	s, err := NewSMSSender(config.Notifier{}, logger.Nop())
	require.NoError(t, err)
	assert.IsType(t, &logSender{}, s)
	assert.NoError(t, s.Send(context.Background(), "+1", "hello"))
	assert.ErrorIs(t, s.Send(context.Background(), "", "hello"), ErrEmptyDestination)

	s, err = NewSMSSender(testNotifierConfig("http://localhost"), logger.Nop())
	require.NoError(t, err)
	assert.IsType(t, &twilioSender{}, s)
}
