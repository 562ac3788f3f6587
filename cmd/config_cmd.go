package cmd

import (
	"fmt"

	"clearahead/internal/cli"
	"clearahead/internal/config"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	fmt.Printf("  Config file: %s\n", config.ConfigPath())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	fmt.Println("  [General]")
	fmt.Printf("    Window:   %s\n", cli.FormatWeeks(config.ClampWindow(cfg.General.WindowWeeks)))
	fmt.Printf("    Buffer:   %s\n", cli.FormatMoney(cfg.General.Currency, cfg.General.Buffer))
	fmt.Printf("    Currency: %s\n", cfg.General.Currency)
	fmt.Printf("    Profile:  %s\n", config.DataPath(cfg))
	fmt.Println()

	fmt.Println("  [Appearance]")
	fmt.Printf("    Theme: %s\n", cfg.Appearance.Theme)
	fmt.Println()

	fmt.Println("  Run `clearahead setup` to reconfigure.")
	return nil
}
