package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"clearahead/internal/config"
	"clearahead/internal/dateutil"
	"clearahead/internal/money"

	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "First-time setup wizard",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(_ *cobra.Command, _ []string) error {
	reader := bufio.NewReader(os.Stdin)

	cfg, _ := config.Load()

	fmt.Println()
	fmt.Println("  Welcome to clearahead!")
	fmt.Println()

	// 1. Current balance
	fmt.Println("  1. Current balance")
	fmt.Println("     What's in the account right now? (2900, 2,900.50, 2 900,50 all work)")
	fmt.Print("     > ")
	balance, _ := reader.ReadString('\n')
	balance = strings.TrimSpace(balance)
	fmt.Println()

	// 2. Start date
	today := dateutil.Today()
	fmt.Println("  2. Projection start date")
	fmt.Printf("     YYYY-MM-DD, or blank for today (%s)\n", today)
	fmt.Print("     > ")
	start, _ := reader.ReadString('\n')
	start = strings.TrimSpace(start)
	if start == "" {
		start = today
	}
	if !dateutil.Valid(start) {
		fmt.Printf("     Couldn't read that date, using today (%s).\n", today)
		start = today
	}
	fmt.Println()

	// 3. Window
	fmt.Println("  3. Lookahead window")
	fmt.Printf("     Weeks to project, %d-%d [default %d]\n",
		config.MinWindowWeeks, config.MaxWindowWeeks, config.DefaultWindowWeeks)
	fmt.Print("     > ")
	weeksStr, _ := reader.ReadString('\n')
	if n, err := strconv.Atoi(strings.TrimSpace(weeksStr)); err == nil {
		cfg.General.WindowWeeks = config.ClampWindow(n)
	}
	fmt.Println()

	// 4. Currency
	fmt.Println("  4. Currency symbol")
	fmt.Printf("     [default %s]\n", cfg.General.Currency)
	fmt.Print("     > ")
	currency, _ := reader.ReadString('\n')
	currency = strings.TrimSpace(currency)
	if currency != "" {
		cfg.General.Currency = currency
	}
	fmt.Println()

	// 5. Theme
	fmt.Println("  5. Color theme")
	fmt.Println("     (1) Flexoki Dark [default]")
	fmt.Println("     (2) Catppuccin Mocha")
	fmt.Println("     (3) Tokyo Night")
	fmt.Println("     (4) Terminal (ANSI 16)")
	fmt.Print("     > ")
	themeChoice, _ := reader.ReadString('\n')
	switch strings.TrimSpace(themeChoice) {
	case "2":
		cfg.Appearance.Theme = "catppuccin-mocha"
	case "3":
		cfg.Appearance.Theme = "tokyo-night"
	case "4":
		cfg.Appearance.Theme = "terminal"
	default:
		cfg.Appearance.Theme = "flexoki-dark"
	}

	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	s, _, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	if balance != "" {
		if _, ok := money.Parse(balance); !ok {
			fmt.Printf("  Couldn't read %q as an amount; leaving the balance unset.\n", balance)
		} else if err := s.SetSetting("balance", balance); err != nil {
			return err
		}
	}
	if err := s.SetSetting("start_date", start); err != nil {
		return err
	}

	fmt.Println()
	fmt.Printf("  Saved to %s\n", config.ConfigPath())
	fmt.Println("  Switch on your income and bills next:")
	fmt.Println("    clearahead income")
	fmt.Println("    clearahead bills")
	fmt.Println("  Run `clearahead setup` anytime to reconfigure.")
	fmt.Println()

	return nil
}
