// Copyright (c) 2026 Hoikunavi. All rights reserved.
// Author: dev@hoikunavi.jp

// Command ingest loads the city's open-data CSV exports into the database.
//
// It shares the service layer with the API server, so every row passes the
// same validation and derives the same search keys as an admin edit would.
//
// Usage:
//
//	ingest master <facilities.csv>
//	ingest month <YYYY-MM> --accept accept.csv --wait wait.csv [--enrolled enrolled.csv]
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var version = "0.1.0-dev"

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	rootCmd := &cobra.Command{
		Use:     "ingest",
		Short:   "Load Yokohama childcare open-data CSV files into the facility database",
		Version: version,
	}

	rootCmd.AddCommand(
		newMasterCmd(),
		newMonthCmd(),
	)

	return rootCmd.ExecuteContext(ctx)
}
