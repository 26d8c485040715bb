package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/hafiz/internal/quran"
)

func newMemorizeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "memorize [page]",
		Short: "Mark a page as memorized",
		Long:  "Mark a page as memorized and schedule its first revision for tomorrow. Defaults to the first page not memorized yet.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.Close()

			page := a.store.FirstUnmemorizedPage()
			if len(args) > 0 {
				if page, err = parsePage(args[0]); err != nil {
					return err
				}
			}
			if err := a.store.MarkMemorized(cmd.Context(), page); err != nil {
				return fmt.Errorf("failed to mark page %d as memorized: %w", page, err)
			}

			surah := quran.SurahByPage(page)
			fmt.Fprintf(cmd.OutOrStdout(), "Page %d (%s, juz %d) memorized\n", page, surah.EnglishName, quran.JuzOfPage(page))
			return nil
		},
	}
}

func newMemorizeRangeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "memorize-range <from> <to>",
		Short: "Mark an inclusive range of pages as memorized",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, err := parsePage(args[0])
			if err != nil {
				return err
			}
			to, err := parsePage(args[1])
			if err != nil {
				return err
			}

			a, err := openApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.Close()

			changed, err := a.store.MarkRangeMemorized(cmd.Context(), from, to)
			if err != nil {
				return fmt.Errorf("failed to mark pages %d-%d as memorized: %w", from, to, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d of %d pages marked as memorized\n", len(changed), to-from+1)
			return nil
		},
	}
}
