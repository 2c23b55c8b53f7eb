// Copyright (c) 2026 Hoikunavi. All rights reserved.
// Author: dev@hoikunavi.jp

package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

func newMonthCmd() *cobra.Command {
	var acceptPath, waitPath, enrolledPath string

	cmd := &cobra.Command{
		Use:   "month <YYYY-MM>",
		Short: "Load one month of availability snapshots",
		Long: "Combines the city's acceptance, waiting-list, and optional " +
			"enrollment CSVs for one month into per-facility snapshots.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMonth(cmd, args[0], acceptPath, waitPath, enrolledPath)
		},
	}

	cmd.Flags().StringVar(&acceptPath, "accept", "", "CSV with acceptable child counts (required)")
	cmd.Flags().StringVar(&waitPath, "wait", "", "CSV with waiting child counts (required)")
	cmd.Flags().StringVar(&enrolledPath, "enrolled", "", "CSV with enrolled child counts (optional)")
	_ = cmd.MarkFlagRequired("accept")
	_ = cmd.MarkFlagRequired("wait")

	return cmd
}

func runMonth(cmd *cobra.Command, month, acceptPath, waitPath, enrolledPath string) error {
	ctx := cmd.Context()

	deps, err := buildDependencies(ctx)
	if err != nil {
		return err
	}
	defer deps.close()

	acceptFile, err := openFile(acceptPath)
	if err != nil {
		return err
	}
	defer acceptFile.Close()

	waitFile, err := openFile(waitPath)
	if err != nil {
		return err
	}
	defer waitFile.Close()

	var enrolled io.Reader
	if enrolledPath != "" {
		enrolledFile, err := openFile(enrolledPath)
		if err != nil {
			return err
		}
		defer enrolledFile.Close()
		enrolled = enrolledFile
	}

	result, err := deps.service.Month(ctx, month, acceptFile, waitFile, enrolled)
	if err != nil {
		return fmt.Errorf("ingesting month %s: %w", month, err)
	}

	fmt.Printf("month %s: %d written, %d skipped\n", month, result.Written, result.Skipped)
	return nil
}
