package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/hafiz/internal/cli"
)

func newReportCommand() *cobra.Command {
	var withPDF bool

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Write a markdown progress report",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.Close()

			paths, err := cli.WriteProgressReportFiles(
				a.store,
				a.cfg.Outputs.ReportDirectory,
				a.cfg.Templates.ProgressReportTemplate,
				withPDF,
			)
			for _, path := range paths {
				fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s\n", path)
			}
			if err != nil {
				return fmt.Errorf("failed to write the progress report: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&withPDF, "pdf", false, "Also convert the report to PDF")

	return cmd
}

func newExportCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "export",
		Short: "Export pages, daily logs and settings as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.Close()

			if err := cli.WriteExport(cmd.OutOrStdout(), a.store); err != nil {
				return fmt.Errorf("failed to export: %w", err)
			}
			return nil
		},
	}
}
