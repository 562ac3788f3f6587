package cmd

import (
	"fmt"

	"clearahead/internal/source"

	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import <file.csv>",
	Short: "Import a spending log from CSV (date, amount, note)",
	Args:  cobra.ExactArgs(1),
	RunE:  runImport,
}

func init() {
	rootCmd.AddCommand(importCmd)
}

func runImport(_ *cobra.Command, args []string) error {
	result, err := source.ReadSpendingCSV(args[0])
	if err != nil {
		return err
	}

	s, _, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	for _, e := range result.Entries {
		if err := s.AddSpending(e); err != nil {
			return fmt.Errorf("saving %s: %w", e.ID, err)
		}
	}

	fmt.Printf("  Imported %d entries", len(result.Entries))
	if result.Skipped > 0 {
		fmt.Printf(" (%d rows skipped)", result.Skipped)
	}
	fmt.Println(".")
	return nil
}
