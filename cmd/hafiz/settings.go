package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/hafiz/internal/hifz"
)

func newSettingsCommand() *cobra.Command {
	var memorizeTarget, reviseTarget int
	var notifications bool

	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show or update daily targets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var update hifz.SettingsUpdate
			flags := cmd.Flags()
			if flags.Changed("memorize-target") {
				update.DailyMemorizeTarget = &memorizeTarget
			}
			if flags.Changed("revise-target") {
				update.DailyReviseTarget = &reviseTarget
			}
			if flags.Changed("notifications") {
				update.NotificationsEnabled = &notifications
			}

			a, err := openApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.Close()

			settings := a.store.Settings()
			if update != (hifz.SettingsUpdate{}) {
				if settings, err = a.store.UpdateSettings(cmd.Context(), update); err != nil {
					return fmt.Errorf("failed to update settings: %w", err)
				}
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "Daily memorize target: %d\n", settings.DailyMemorizeTarget)
			fmt.Fprintf(w, "Daily revise target:   %d\n", settings.DailyReviseTarget)
			fmt.Fprintf(w, "Notifications:         %t\n", settings.NotificationsEnabled)
			return nil
		},
	}

	cmd.Flags().IntVar(&memorizeTarget, "memorize-target", 0, "Pages to memorize per day")
	cmd.Flags().IntVar(&reviseTarget, "revise-target", 0, "Pages to revise per day")
	cmd.Flags().BoolVar(&notifications, "notifications", false, "Enable revision reminders")

	return cmd
}

func newResetCommand() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Delete every page record and daily log",
		Long:  "Delete every page record and daily log. Settings are kept.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return fmt.Errorf("reset deletes all progress, pass --yes to confirm")
			}

			a, err := openApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.Close()

			if err := a.store.ResetAll(cmd.Context()); err != nil {
				return fmt.Errorf("failed to reset: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "All progress has been reset")
			return nil
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "Confirm the reset")

	return cmd
}
