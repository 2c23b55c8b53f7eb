// Copyright (c) 2026 Hoikunavi. All rights reserved.
// Author: dev@hoikunavi.jp

package admin_test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hoikunavi/hoikunavi/internal/admin"
	"github.com/hoikunavi/hoikunavi/internal/platform/apperr"
	"github.com/hoikunavi/hoikunavi/internal/platform/config"
	"github.com/hoikunavi/hoikunavi/internal/platform/sec"
)

// stubIssuer records the last token request instead of signing anything.
type stubIssuer struct {
	username string
	role     string
	ttl      time.Duration
}

func (s *stubIssuer) GenerateAccessToken(username, role string, timeToLive time.Duration) (string, error) {
	s.username = username
	s.role = role
	s.ttl = timeToLive
	return "stub-token", nil
}

func newTestService(t *testing.T, issuer admin.TokenIssuer) *admin.Service {
	t.Helper()

	hash, err := sec.HashPassword("correct-horse")
	require.NoError(t, err)

	cfg := &config.Config{
		AdminUsername:     "operator",
		AdminPasswordHash: hash,
	}
	return admin.NewService(cfg, issuer, nil, slog.Default())
}

/*
TestLogin_Success verifies that valid credentials produce a bearer token
carrying the admin role.
*/
func TestLogin_Success(t *testing.T) {
	issuer := &stubIssuer{}
	service := newTestService(t, issuer)

	result, err := service.Login(context.Background(), "operator", "correct-horse")
	require.NoError(t, err)

	assert.Equal(t, "stub-token", result.AccessToken)
	assert.Equal(t, "Bearer", result.TokenType)
	assert.Greater(t, result.ExpiresIn, 0)

	assert.Equal(t, "operator", issuer.username)
	assert.Equal(t, sec.RoleAdmin, issuer.role)
}

/*
TestLogin_Rejections verifies that wrong usernames and wrong passwords are
indistinguishable to the caller.
*/
func TestLogin_Rejections(t *testing.T) {
	tests := []struct {
		name     string
		username string
		password string
	}{
		{"wrong_password", "operator", "incorrect"},
		{"wrong_username", "intruder", "correct-horse"},
		{"both_wrong", "intruder", "incorrect"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := newTestService(t, &stubIssuer{})

			result, err := service.Login(context.Background(), tt.username, tt.password)
			require.Error(t, err)
			assert.Nil(t, result)

			ae := apperr.As(err)
			require.NotNil(t, ae)
			assert.Equal(t, "UNAUTHORIZED", ae.Code)
			assert.Equal(t, "Invalid credentials", ae.Message)
		})
	}
}

/*
TestLogin_MissingFields verifies the validation short-circuit before any
credential comparison happens.
*/
func TestLogin_MissingFields(t *testing.T) {
	service := newTestService(t, &stubIssuer{})

	_, err := service.Login(context.Background(), "", "")
	require.Error(t, err)

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "VALIDATION_ERROR", ae.Code)
	assert.Len(t, ae.Details, 2)
}
