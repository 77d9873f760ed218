package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"casecrawler/internal/validator"
)

var errReportInvalid = errors.New("report is invalid")

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <report.txt>",
		Short: "Validate the structure of a written report",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, args[0])
		},
	}
}

func runCheck(cmd *cobra.Command, path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read report: %w", err)
	}

	result := validator.NewReportValidator().ValidateReport(string(content))

	fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", path, result)
	result.PrintWarnings(cmd.OutOrStdout())

	if !result.IsValid {
		result.PrintErrors(cmd.ErrOrStderr())

		return fmt.Errorf("%w: %s", errReportInvalid, path)
	}

	return nil
}
