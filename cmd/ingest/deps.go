// Copyright (c) 2026 Hoikunavi. All rights reserved.
// Author: dev@hoikunavi.jp

package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/caarlos0/env/v11"
	goredis "github.com/redis/go-redis/v9"

	"github.com/hoikunavi/hoikunavi/internal/core/facility"
	"github.com/hoikunavi/hoikunavi/internal/core/snapshot"
	"github.com/hoikunavi/hoikunavi/internal/ingest"
	pgstore "github.com/hoikunavi/hoikunavi/internal/platform/postgres"
	redisstore "github.com/hoikunavi/hoikunavi/internal/platform/redis"
)

// ingestConfig is the subset of the server configuration the CLI needs.
// The admin credentials and JWT keys are deliberately not required here.
type ingestConfig struct {
	DatabaseURL string `env:"DATABASE_URL,required"`
	RedisURL    string `env:"REDIS_URL"`
}

// dependencies bundles the wired services plus a cleanup function.
type dependencies struct {
	service *ingest.Service
	close   func()
}

// buildDependencies connects to PostgreSQL (and Redis when configured) and
// wires the ingest service on top of the shared domain services.
func buildDependencies(ctx context.Context) (*dependencies, error) {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, nil)).With(slog.String("app", "hoikunavi-ingest"))
	slog.SetDefault(logger)

	cfg := &ingestConfig{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}

	pool, err := pgstore.NewPool(ctx, cfg.DatabaseURL, logger)
	if err != nil {
		return nil, err
	}

	var rdb *goredis.Client
	if cfg.RedisURL != "" {
		rdb, err = redisstore.NewClient(ctx, cfg.RedisURL, logger)
		if err != nil {
			pool.Close()
			return nil, err
		}
	}

	facilityService := facility.NewService(facility.NewPostgresRepository(pool), rdb, logger)
	snapshotService := snapshot.NewService(snapshot.NewPostgresRepository(pool), logger)

	return &dependencies{
		service: ingest.NewService(facilityService, snapshotService, logger),
		close: func() {
			if rdb != nil {
				_ = rdb.Close()
			}
			pool.Close()
		},
	}, nil
}

// openFile is a small helper keeping the command funcs terse.
func openFile(path string) (*os.File, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	return file, nil
}
