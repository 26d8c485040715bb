package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/hafiz/internal/cli"
	"github.com/at-ishikawa/hafiz/internal/statistics"
)

func newStatsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show memorization progress, streaks and today's targets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.Close()

			cli.WriteStats(cmd.OutOrStdout(), statistics.Calculate(statistics.InputOf(a.store)), a.store.Location())
			return nil
		},
	}
}

func newJuzCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "juz [n]",
		Short: "Show memorization progress per juz",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.Close()

			pages := a.store.Pages()
			if len(args) == 0 {
				cli.WriteJuzProgress(cmd.OutOrStdout(), statistics.AllJuzProgress(pages))
				return nil
			}
			juz, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("%w: %q is not a number", statistics.ErrInvalidJuz, args[0])
			}
			progress, err := statistics.JuzProgressOf(pages, juz)
			if err != nil {
				return err
			}
			cli.WriteJuzProgress(cmd.OutOrStdout(), []statistics.JuzProgress{progress})
			return nil
		},
	}
}

func newActivityCommand() *cobra.Command {
	var year, month int

	cmd := &cobra.Command{
		Use:   "activity",
		Short: "Show monthly/yearly report of memorization and revision activity",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if month != 0 && year == 0 {
				return fmt.Errorf("--month requires --year to be specified")
			}
			if month < 0 || month > 12 {
				return fmt.Errorf("--month must be between 1 and 12")
			}

			a, err := openApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.Close()

			cli.WriteActivity(cmd.OutOrStdout(), statistics.CalculateActivity(a.store.Logs(), year, month))
			return nil
		},
	}

	cmd.Flags().IntVar(&year, "year", 0, "Filter by year (e.g., 2025)")
	cmd.Flags().IntVar(&month, "month", 0, "Filter by month (1-12), requires --year")

	return cmd
}
