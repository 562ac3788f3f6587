package cmd

import (
	"fmt"

	"clearahead/internal/cli"
	"clearahead/internal/config"
	"clearahead/internal/dateutil"
	"clearahead/internal/model"
	"clearahead/internal/money"

	"github.com/spf13/cobra"
)

func init() {
	var amount, date, name string
	var adopt bool

	cmd := &cobra.Command{
		Use:   "whatif",
		Short: "Try a hypothetical purchase against the projection",
		Long:  "Injects a one-off purchase into the lookahead without saving it, so you can see the impact before committing. Use --adopt to log it for real.",
		RunE: func(_ *cobra.Command, _ []string) error {
			amt, ok := money.Parse(amount)
			if !ok || amt == 0 {
				return fmt.Errorf("cannot read %q as an amount", amount)
			}
			if date == "" {
				date = dateutil.Today()
			}
			if !dateutil.Valid(date) {
				return fmt.Errorf("invalid date %q (want YYYY-MM-DD)", date)
			}
			label := name
			if label == "" {
				label = "Purchase"
			}

			extra := []model.Event{{Date: date, Kind: model.EventWhatIf, Label: label, Amount: -amt}}

			_, with, cfg, err := loadProjection(extra)
			if err != nil {
				return err
			}
			_, without, _, err := loadProjection(nil)
			if err != nil {
				return err
			}

			currency := cfg.General.Currency
			buffer := cfg.General.Buffer

			fmt.Println()
			fmt.Println(cli.RenderTitle(fmt.Sprintf("WHAT IF: %s for %s on %s",
				label, cli.FormatMoney(currency, amt), cli.FormatDate(date))))
			fmt.Println()

			fmt.Print(cli.RenderTable(cli.Table{
				Headers: []string{"", "Without", "With"},
				Rows: [][]string{
					{"Safe to spend",
						cli.FormatMoney(currency, config.SafeNumber(without.Lowest, buffer)),
						cli.FormatMoney(currency, config.SafeNumber(with.Lowest, buffer))},
					{"Lowest point",
						cli.FormatMoney(currency, without.Lowest),
						cli.FormatMoney(currency, with.Lowest)},
					{"Lowest on",
						cli.FormatDate(without.LowestDate),
						cli.FormatDate(with.LowestDate)},
				},
			}))

			if with.Lowest < 0 && without.Lowest >= 0 {
				fmt.Printf("\n  %s\n", cli.Negative("This purchase would take the projection into overdraft."))
			}

			if adopt {
				s, _, err := openStore()
				if err != nil {
					return err
				}
				defer func() { _ = s.Close() }()

				e := model.SpendingEntry{ID: newID("spend"), Date: date, Amount: amount, Note: label}
				if err := s.AddSpending(e); err != nil {
					return err
				}
				fmt.Printf("\n  Logged to spending as %s.\n", e.ID)
			}
			fmt.Println()
			return nil
		},
	}

	cmd.Flags().StringVar(&amount, "amount", "", "Purchase amount")
	cmd.Flags().StringVar(&date, "date", "", "Purchase date (default: today)")
	cmd.Flags().StringVar(&name, "name", "", "What it would be")
	cmd.Flags().BoolVar(&adopt, "adopt", false, "Also log the purchase to the spending log")
	_ = cmd.MarkFlagRequired("amount")

	rootCmd.AddCommand(cmd)
}
