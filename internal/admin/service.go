// Copyright (c) 2026 Hoikunavi. All rights reserved.
// Author: dev@hoikunavi.jp

/*
Package admin implements the operator surface of the API: login, manual
master-data corrections, and cache maintenance.

There is exactly one admin account, configured via environment variables.
No user table exists; the credential check compares against the configured
bcrypt hash and issues a short-lived RS256 token.
*/
package admin

import (
	"context"
	"log/slog"
	"time"

	"github.com/hoikunavi/hoikunavi/internal/core/facility"
	"github.com/hoikunavi/hoikunavi/internal/platform/apperr"
	"github.com/hoikunavi/hoikunavi/internal/platform/config"
	"github.com/hoikunavi/hoikunavi/internal/platform/constants"
	"github.com/hoikunavi/hoikunavi/internal/platform/sec"
	"github.com/hoikunavi/hoikunavi/internal/platform/validate"
)

// TokenIssuer abstracts token generation so tests can avoid real RSA keys.
type TokenIssuer interface {
	GenerateAccessToken(username, role string, timeToLive time.Duration) (string, error)
}

// Service holds the admin credential configuration and its collaborators.
type Service struct {
	cfg        *config.Config
	tokens     TokenIssuer
	facilities *facility.Service
	logger     *slog.Logger
}

// NewService constructs the admin service.
func NewService(cfg *config.Config, tokens TokenIssuer, facilities *facility.Service, logger *slog.Logger) *Service {
	return &Service{
		cfg:        cfg,
		tokens:     tokens,
		facilities: facilities,
		logger:     logger,
	}
}

// LoginResult carries the issued token back to the handler.
type LoginResult struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

// Login checks the operator credentials and issues an access token.
//
// A wrong username and a wrong password return the same error, so the
// response does not reveal which half was wrong.
func (service *Service) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	v := &validate.Validator{}
	if err := v.Required("username", username).Required("password", password).Err(); err != nil {
		return nil, err
	}

	if username != service.cfg.AdminUsername || !sec.CheckPasswordHash(password, service.cfg.AdminPasswordHash) {
		service.logger.Warn("admin_login_rejected", slog.String("username", username))
		return nil, apperr.Unauthorized("Invalid credentials")
	}

	token, err := service.tokens.GenerateAccessToken(username, sec.RoleAdmin, constants.AdminTokenTTL)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	service.logger.Info("admin_login_succeeded", slog.String("username", username))

	return &LoginResult{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   int(constants.AdminTokenTTL.Seconds()),
	}, nil
}

// UpdateFacility applies a manual correction to one master record.
func (service *Service) UpdateFacility(ctx context.Context, f *facility.Facility) error {
	return service.facilities.UpsertMaster(ctx, f)
}

// FlushCache drops the cached search corpus so the next search re-reads
// from PostgreSQL.
func (service *Service) FlushCache(ctx context.Context) {
	service.facilities.InvalidateCache(ctx)
	service.logger.Info("admin_cache_flushed")
}
