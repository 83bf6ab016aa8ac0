package service

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/messagely/internal/config"
	"github.com/MKhiriev/messagely/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testAppConfig() config.App {
	return config.App{
		TokenSignKey:  "test-sign-key",
		TokenIssuer:   "messagely",
		TokenDuration: time.Hour,
	}
}

func TestAuthService_CreateAndParseToken(t *testing.T) {
	svc := NewAuthService(testAppConfig(), logger.Nop())
	ctx := context.Background()

	token, err := svc.CreateToken(ctx, "alice")
	require.NoError(t, err)
	require.NotEmpty(t, token.SignedString)

	parsed, err := svc.ParseToken(ctx, token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, "alice", parsed.Username)
}

func TestAuthService_ParseToken_Rejections(t *testing.T) {
	ctx := context.Background()
	token, err := NewAuthService(testAppConfig(), logger.Nop()).CreateToken(ctx, "alice")
	require.NoError(t, err)

	otherKey := testAppConfig()
	otherKey.TokenSignKey = "another-key"
	otherIssuer := testAppConfig()
	otherIssuer.TokenIssuer = "someone-else"

	tests := []struct {
		name  string
		cfg   config.App
		token string
	}{
		{name: "garbage", cfg: testAppConfig(), token: "not.a.jwt"},
		{name: "empty", cfg: testAppConfig(), token: ""},
		{name: "wrong key", cfg: otherKey, token: token.SignedString},
		{name: "wrong issuer", cfg: otherIssuer, token: token.SignedString},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewAuthService(tt.cfg, logger.Nop()).ParseToken(ctx, tt.token)
			assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
		})
	}
}

func TestAuthService_CreateToken_EmptyUsername(t *testing.T) {
	_, err := NewAuthService(testAppConfig(), logger.Nop()).CreateToken(context.Background(), "")
	assert.ErrorIs(t, err, ErrTokenCreationFailed)
}
