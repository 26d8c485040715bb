package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/hafiz/internal/cli"
)

func newPageCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "page <page>",
		Short: "Show the record of a page",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			page, err := parsePage(args[0])
			if err != nil {
				return err
			}

			a, err := openApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.Close()

			record, err := a.store.Record(page)
			if err != nil {
				return fmt.Errorf("failed to get page %d: %w", page, err)
			}
			cli.WritePageDetail(cmd.OutOrStdout(), record, a.store.Location())
			return nil
		},
	}
}

func newDueCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "due",
		Short: "List pages due for revision",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.Close()

			cli.WritePageList(cmd.OutOrStdout(), "Due for revision", a.store.PagesForRevision(), a.store.Now(), a.store.Location())
			return nil
		},
	}
}

func newOverdueCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "overdue",
		Short: "List pages whose revision is overdue",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.Close()

			cli.WritePageList(cmd.OutOrStdout(), "Overdue", a.store.OverduePages(), a.store.Now(), a.store.Location())
			return nil
		},
	}
}
