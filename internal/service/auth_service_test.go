package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Nearak/Journal/internal/config"
)

func newTestAuthService(secret string) *AuthService {
	return NewAuthService(zap.NewNop(), &config.Config{
		Auth: config.AuthConf{JWTSecret: secret},
	})
}

func TestLogin_AnyNonEmptyCredentialsAccepted(t *testing.T) {
	s := newTestAuthService("test-secret")

	resp, err := s.Login(context.Background(), LoginRequest{
		Username: "trader",
		Password: "anything-goes",
	}, "127.0.0.1")
	require.NoError(t, err)

	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "trader", resp.Username)
	assert.True(t, resp.ExpiresAt.After(time.Now()))
}

func TestLogin_RejectsEmptyCredentials(t *testing.T) {
	s := newTestAuthService("test-secret")

	tests := []struct {
		name string
		req  LoginRequest
	}{
		{"empty username", LoginRequest{Username: "", Password: "pw"}},
		{"blank username", LoginRequest{Username: "   ", Password: "pw"}},
		{"empty password", LoginRequest{Username: "trader", Password: ""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.Login(context.Background(), tt.req, "127.0.0.1")
			assert.ErrorIs(t, err, ErrEmptyCredentials)
		})
	}
}

func TestValidateToken_Roundtrip(t *testing.T) {
	s := newTestAuthService("test-secret")

	resp, err := s.Login(context.Background(), LoginRequest{
		Username: "trader",
		Password: "pw",
	}, "127.0.0.1")
	require.NoError(t, err)

	claims, err := s.ValidateToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "trader", claims.Username)
	assert.Equal(t, "journal", claims.Issuer)
}

func TestValidateToken_RejectsForeignToken(t *testing.T) {
	issuer := newTestAuthService("secret-a")
	verifier := newTestAuthService("secret-b")

	resp, err := issuer.Login(context.Background(), LoginRequest{
		Username: "trader",
		Password: "pw",
	}, "127.0.0.1")
	require.NoError(t, err)

	_, err = verifier.ValidateToken(resp.Token)
	assert.Error(t, err)
}

func TestValidateToken_RejectsGarbage(t *testing.T) {
	s := newTestAuthService("test-secret")

	_, err := s.ValidateToken("not-a-token")
	assert.Error(t, err)
}
