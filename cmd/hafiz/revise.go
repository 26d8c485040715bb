package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/at-ishikawa/hafiz/internal/cli"
	"github.com/at-ishikawa/hafiz/internal/hifz"
)

type ModeFlag hifz.FilterMode

// Set implements pflag.Value.
func (m *ModeFlag) Set(v string) error {
	mode, err := hifz.ParseFilterMode(v)
	if err != nil {
		return err
	}
	*m = ModeFlag(mode)
	return nil
}

// String implements pflag.Value.
func (m *ModeFlag) String() string {
	if m == nil {
		return ""
	}
	return string(*m)
}

// Type implements pflag.Value.
func (m *ModeFlag) Type() string {
	return "ModeFlag"
}

var (
	_ pflag.Value = (*ModeFlag)(nil)
)

func newStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status <page> <memorized|weak|strong>",
		Short: "Set the status of a page",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			page, err := parsePage(args[0])
			if err != nil {
				return err
			}
			status, err := hifz.ParseStatus(args[1])
			if err != nil {
				return err
			}

			a, err := openApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.Close()

			if err := a.store.SetStatus(cmd.Context(), page, status); err != nil {
				return fmt.Errorf("failed to set the status of page %d: %w", page, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Page %d is now %s\n", page, status)
			return nil
		},
	}
}

func newReviseCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "revise <page> <again|hard|good|easy>",
		Short: "Record a revision of a page",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			page, err := parsePage(args[0])
			if err != nil {
				return err
			}
			quality, err := hifz.ParseQuality(args[1])
			if err != nil {
				return err
			}

			a, err := openApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.Close()

			record, err := a.store.RecordRevision(cmd.Context(), page, quality)
			if err != nil {
				return fmt.Errorf("failed to record a revision of page %d: %w", page, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Page %d revised (%s): next revision in %d days on %s\n",
				page,
				quality,
				record.Interval,
				record.NextRevisionDue.In(a.store.Location()).Format("2006-01-02"),
			)
			return nil
		},
	}
}

func newSessionCommand() *cobra.Command {
	mode := ModeFlag(hifz.FilterDue)

	cmd := &cobra.Command{
		Use:   "session",
		Short: "Start an interactive revision session",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.Close()

			session, err := hifz.NewRevisionSession(a.store, hifz.FilterMode(mode))
			if err != nil {
				return fmt.Errorf("failed to start a revision session: %w", err)
			}
			if session.Len() > 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "Starting a revision session with %d pages\n\n", session.Len())
			}
			sessionCLI := cli.NewRevisionSessionCLI(session, a.store.Location(), cmd.InOrStdin(), cmd.OutOrStdout())
			return sessionCLI.Run(cmd.Context())
		},
	}

	cmd.Flags().Var(&mode, "mode", "Pages to revise: due, weak or all")

	return cmd
}
