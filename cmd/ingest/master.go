// Copyright (c) 2026 Hoikunavi. All rights reserved.
// Author: dev@hoikunavi.jp

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newMasterCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "master <facilities.csv>",
		Short: "Load or refresh the facility master data",
		Long: "Reads the city's facility master CSV (UTF-8 or Shift_JIS), " +
			"validates every row, derives the kana search keys, and upserts " +
			"the records into PostgreSQL.",
		Args: cobra.ExactArgs(1),
		RunE: runMaster,
	}
}

func runMaster(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	deps, err := buildDependencies(ctx)
	if err != nil {
		return err
	}
	defer deps.close()

	file, err := openFile(args[0])
	if err != nil {
		return err
	}
	defer file.Close()

	result, err := deps.service.Master(ctx, file)
	if err != nil {
		return fmt.Errorf("ingesting master data: %w", err)
	}

	fmt.Printf("master: %d written, %d skipped\n", result.Written, result.Skipped)
	return nil
}
