package cmd

import (
	"fmt"

	"clearahead/internal/cli"
	"clearahead/internal/dateutil"
	"clearahead/internal/model"
	"clearahead/internal/money"

	"github.com/spf13/cobra"
)

var spendCmd = &cobra.Command{
	Use:   "spend",
	Short: "Show and log day-to-day spending",
	RunE:  runSpendList,
}

func init() {
	spendCmd.AddCommand(spendAddCmd(), spendRemoveCmd())
	rootCmd.AddCommand(spendCmd)
}

func runSpendList(_ *cobra.Command, _ []string) error {
	s, cfg, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	entries, err := s.Spending()
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Println("\n  Nothing logged yet. Log purchases with `clearahead spend add`.")
		fmt.Println("  Recent spending makes the projection more trustworthy.")
		fmt.Println()
		return nil
	}

	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		amount := e.Amount
		if v, ok := money.Parse(e.Amount); ok {
			amount = cli.FormatMoney(cfg.General.Currency, v)
		}
		note := e.Note
		if note == "" {
			note = cli.Muted("—")
		}
		rows = append(rows, []string{e.ID, cli.FormatDate(e.Date), amount, note})
	}

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "SPENDING LOG",
		Headers: []string{"ID", "Date", "Amount", "Note"},
		Rows:    rows,
	}))
	fmt.Println()
	return nil
}

func spendAddCmd() *cobra.Command {
	var date, amount, note string
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Log a purchase",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			s, _, err := openStore()
			if err != nil {
				return err
			}
			defer func() { _ = s.Close() }()

			if date == "" {
				date = dateutil.Today()
			}
			if !dateutil.Valid(date) {
				return fmt.Errorf("invalid date %q (want YYYY-MM-DD)", date)
			}
			amt, ok := money.Parse(amount)
			if !ok || amt == 0 {
				return fmt.Errorf("cannot read %q as an amount", amount)
			}

			e := model.SpendingEntry{ID: newID("spend"), Date: date, Amount: amount, Note: note}
			if err := s.AddSpending(e); err != nil {
				return err
			}
			fmt.Printf("  Logged %s on %s.\n", amount, cli.FormatDate(date))
			return nil
		},
	}
	cmd.Flags().StringVar(&date, "date", "", "Purchase date (default: today)")
	cmd.Flags().StringVar(&amount, "amount", "", "Amount spent")
	cmd.Flags().StringVar(&note, "note", "", "What it was")
	_ = cmd.MarkFlagRequired("amount")
	return cmd
}

func spendRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <id>",
		Short: "Delete a logged purchase",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			s, _, err := openStore()
			if err != nil {
				return err
			}
			defer func() { _ = s.Close() }()

			if err := s.DeleteSpending(args[0]); err != nil {
				return err
			}
			fmt.Printf("  Removed %s.\n", args[0])
			return nil
		},
	}
}
